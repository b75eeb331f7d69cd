package config

import (
	"time"
)

// Config holds all settings.
type Config struct {
	Game GameConfig `mapstructure:"game" validate:"required"`
	Log  LogConfig  `mapstructure:"log" validate:"required"`
}

// GameConfig contains the settings for dealing a game.
type GameConfig struct {
	Theme          string        `mapstructure:"theme" validate:"required"`
	ThemeFile      string        `mapstructure:"theme_file" validate:"omitempty,file"`
	Pairs          int           `mapstructure:"pairs" validate:"gte=0"` // 0 → theme decides.
	BonusTimeLimit time.Duration `mapstructure:"bonus_time_limit" validate:"gte=0"`
	DisableBonus   bool          `mapstructure:"disable_bonus"`
	Seed           int64         `mapstructure:"seed"` // 0 → seeded from the clock.
	NotifyOnNoop   bool          `mapstructure:"notify_on_noop"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}
