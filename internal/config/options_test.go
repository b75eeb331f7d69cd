package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sky-flux/memorize"
	"github.com/sky-flux/memorize/theme"
)

func TestOptions(t *testing.T) {
	g := GameConfig{BonusTimeLimit: 3 * time.Second, NotifyOnNoop: true}
	clock := memorize.FixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	opts := g.Options(clock, nil)

	assert.Equal(t, 3*time.Second, opts.BonusTimeLimit)
	assert.True(t, opts.NotifyOnNoop)
	assert.Equal(t, clock, opts.Clock)
	assert.Nil(t, opts.Rand)
}

func TestOptionsSeedIsDeterministic(t *testing.T) {
	g := GameConfig{Seed: 5}
	deal := func() []memorize.Card[int] {
		game, err := memorize.New(6, func(i int) int { return i }, g.Options(nil, nil))
		require.NoError(t, err)
		return game.Cards()
	}
	assert.Equal(t, deal(), deal())
}

func TestSelectedTheme(t *testing.T) {
	th, err := GameConfig{Theme: "animals"}.SelectedTheme()
	require.NoError(t, err)
	assert.Equal(t, 6, th.PairCount())

	th, err = GameConfig{Theme: "animals", Pairs: 2}.SelectedTheme()
	require.NoError(t, err)
	assert.Equal(t, 2, th.PairCount())

	_, err = GameConfig{Theme: "animals", Pairs: 50}.SelectedTheme()
	assert.ErrorIs(t, err, theme.ErrInvalidTheme)

	_, err = GameConfig{Theme: "missing"}.SelectedTheme()
	assert.ErrorIs(t, err, theme.ErrThemeNotFound)
}

func TestThemesFromFile(t *testing.T) {
	path := writeFile(t, "themes.yaml", "themes:\n  - name: fruit\n    emojis: [\"🍎\", \"🍌\"]\n")
	th, err := GameConfig{Theme: "fruit", ThemeFile: path}.SelectedTheme()
	require.NoError(t, err)
	assert.Equal(t, 2, th.PairCount())

	dup := writeFile(t, "dup.yaml", "themes:\n  - name: faces\n    emojis: [a]\n")
	_, err = GameConfig{Theme: "faces", ThemeFile: dup}.Themes()
	assert.ErrorIs(t, err, theme.ErrDuplicateTheme)
}
