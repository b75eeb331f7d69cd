package memorize

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// stepClock is a Clock that only moves when told to.
type stepClock struct {
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: t0}
}

func (c *stepClock) Now() time.Time {
	return c.now
}

func (c *stepClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func letters(i int) string {
	return string(rune('A' + i))
}

func testConfig(clock Clock) Config {
	return Config{
		Clock: clock,
		Rand:  rand.New(rand.NewSource(1)),
	}
}

func mustGame(t testing.TB, pairs int, clock Clock) *Game[string] {
	t.Helper()
	g, err := New(pairs, letters, testConfig(clock))
	require.NoError(t, err)
	return g
}

func mustCard(t testing.TB, g *Game[string], id int) Card[string] {
	t.Helper()
	c, ok := g.Card(id)
	require.True(t, ok, "card %d not found", id)
	return c
}

func mustChoose(t testing.TB, g *Game[string], id int) Move {
	t.Helper()
	m, err := g.Choose(id)
	require.NoError(t, err)
	return m
}

// byID returns the cards sorted by ID.
func byID[C comparable](cards []Card[C]) []Card[C] {
	out := append([]Card[C](nil), cards...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// unmatchedFaceUp counts cards that are face-up but not yet matched.
func unmatchedFaceUp[C comparable](cards []Card[C]) int {
	n := 0
	for _, c := range cards {
		if c.FaceUp && !c.Matched {
			n++
		}
	}
	return n
}
