package config

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/sky-flux/memorize"
	"github.com/sky-flux/memorize/theme"
)

// Options maps the game settings onto a memorize.Config.
// clock may be nil for the system clock.
func (g GameConfig) Options(clock memorize.Clock, logger *slog.Logger) memorize.Config {
	cfg := memorize.Config{
		BonusTimeLimit: g.BonusTimeLimit,
		DisableBonus:   g.DisableBonus,
		Clock:          clock,
		Logger:         logger,
		NotifyOnNoop:   g.NotifyOnNoop,
	}
	if g.Seed != 0 {
		cfg.Rand = rand.New(rand.NewSource(g.Seed))
	}
	return cfg
}

// Themes returns the built-in themes followed by those in ThemeFile, if set.
func (g GameConfig) Themes() ([]theme.Theme, error) {
	themes := theme.Defaults()
	if g.ThemeFile == "" {
		return themes, nil
	}
	extra, err := theme.Load(g.ThemeFile)
	if err != nil {
		return nil, err
	}
	for _, t := range extra {
		if _, err := theme.Find(themes, t.Name); err == nil {
			return nil, fmt.Errorf("%w: %q in %s", theme.ErrDuplicateTheme, t.Name, g.ThemeFile)
		}
		themes = append(themes, t)
	}
	return themes, nil
}

// SelectedTheme resolves the configured theme, applying the Pairs override.
func (g GameConfig) SelectedTheme() (theme.Theme, error) {
	themes, err := g.Themes()
	if err != nil {
		return theme.Theme{}, err
	}
	t, err := theme.Find(themes, g.Theme)
	if err != nil {
		return theme.Theme{}, err
	}
	if g.Pairs != 0 {
		t.Pairs = g.Pairs
	}
	if err := t.Validate(); err != nil {
		return theme.Theme{}, err
	}
	return t, nil
}
