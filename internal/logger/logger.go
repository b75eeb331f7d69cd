// Package logger builds the structured logger shared by memory games.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/sky-flux/memorize/internal/config"
)

// New returns a logger writing to w at the configured level and format.
// An unknown level falls back to info and is reported on the new logger.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level, known := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if !known {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}
	return logger
}

// ParseLevel maps a level name (case-insensitive) to a slog.Level.
// It reports false and returns slog.LevelInfo for unknown names.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
