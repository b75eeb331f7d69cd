package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestLoadDefaults verifies the values used when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "faces", cfg.Game.Theme)
	assert.Zero(t, cfg.Game.Pairs)
	assert.Equal(t, 6*time.Second, cfg.Game.BonusTimeLimit)
	assert.False(t, cfg.Game.DisableBonus)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, "memorize.yaml", `
game:
  theme: animals
  pairs: 4
  bonus_time_limit: 10s
  seed: 99
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "animals", cfg.Game.Theme)
	assert.Equal(t, 4, cfg.Game.Pairs)
	assert.Equal(t, 10*time.Second, cfg.Game.BonusTimeLimit)
	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

// TestLoadEnvOverridesFile verifies environment variables take precedence.
func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "memorize.yaml", "game:\n  theme: animals\n  pairs: 4\n")
	t.Setenv("MEMORIZE_GAME_PAIRS", "2")
	t.Setenv("MEMORIZE_GAME_DISABLE_BONUS", "true")
	t.Setenv("MEMORIZE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "animals", cfg.Game.Theme)
	assert.Equal(t, 2, cfg.Game.Pairs)
	assert.True(t, cfg.Game.DisableBonus)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"negative pairs", map[string]string{"MEMORIZE_GAME_PAIRS": "-1"}},
		{"negative bonus", map[string]string{"MEMORIZE_GAME_BONUS_TIME_LIMIT": "-2s"}},
		{"bad level", map[string]string{"MEMORIZE_LOG_LEVEL": "fatal"}},
		{"bad format", map[string]string{"MEMORIZE_LOG_FORMAT": "xml"}},
		{"missing theme file", map[string]string{"MEMORIZE_GAME_THEME_FILE": "/nonexistent/themes.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
