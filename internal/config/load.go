package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalidSettings is returned when loaded settings fail validation.
var ErrInvalidSettings = errors.New("config: invalid settings")

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "MEMORIZE"

var keys = []string{
	"game.theme",
	"game.theme_file",
	"game.pairs",
	"game.bonus_time_limit",
	"game.disable_bonus",
	"game.seed",
	"game.notify_on_noop",
	"log.level",
	"log.format",
}

// Load reads settings from defaults, the YAML file at path (if path is not
// empty) and the environment. Environment variables take precedence, e.g.
// MEMORIZE_GAME_PAIRS overrides game.pairs.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("game.theme", "faces")
	v.SetDefault("game.theme_file", "")
	v.SetDefault("game.pairs", 0)
	v.SetDefault("game.bonus_time_limit", "6s")
	v.SetDefault("game.disable_bonus", false)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.notify_on_noop", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}
