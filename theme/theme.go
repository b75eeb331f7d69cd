// Package theme provides emoji themes for memory games: the set of card
// contents, how many pairs to deal and a display colour.
package theme

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for the theme package.
var (
	ErrInvalidTheme   = errors.New("theme: invalid theme")
	ErrDuplicateTheme = errors.New("theme: duplicate theme name")
	ErrThemeNotFound  = errors.New("theme: not found")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Theme is a named set of card contents.
type Theme struct {
	Name   string   `yaml:"name" mapstructure:"name" validate:"required"`
	Emojis []string `yaml:"emojis" mapstructure:"emojis" validate:"required,min=1,unique,dive,required"`
	Pairs  int      `yaml:"pairs,omitempty" mapstructure:"pairs" validate:"gte=0"` // 0 → one pair per emoji.
	Color  string   `yaml:"color,omitempty" mapstructure:"color" validate:"omitempty,hexcolor|alpha"`
}

// Validate checks the theme's fields and that it has enough emojis for its pairs.
func (t Theme) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidTheme, t.Name, err)
	}
	if t.Pairs > len(t.Emojis) {
		return fmt.Errorf("%w: %q: %d pairs but only %d emojis", ErrInvalidTheme, t.Name, t.Pairs, len(t.Emojis))
	}
	return nil
}

// PairCount returns how many pairs a game with this theme deals.
func (t Theme) PairCount() int {
	if t.Pairs == 0 {
		return len(t.Emojis)
	}
	return t.Pairs
}

// ContentFor returns a content source for memorize.New that deals
// PairCount emojis. The theme must be valid. With a non-nil rng a random subset is picked in random
// order; with nil the first emojis are used in theme order.
func (t Theme) ContentFor(rng *rand.Rand) func(int) string {
	emojis := append([]string(nil), t.Emojis...)
	if rng != nil {
		rng.Shuffle(len(emojis), func(i, j int) {
			emojis[i], emojis[j] = emojis[j], emojis[i]
		})
	}
	emojis = emojis[:t.PairCount()]
	return func(i int) string {
		return emojis[i]
	}
}

// Find returns the theme with the given name.
func Find(themes []Theme, name string) (Theme, error) {
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
}

// Pick returns a random theme. It panics if themes is empty.
func Pick(themes []Theme, rng *rand.Rand) Theme {
	return themes[rng.Intn(len(themes))]
}
