package memorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSession(t *testing.T, pairs int) *Session[string] {
	t.Helper()
	s, err := NewSession(pairs, letters, testConfig(newStepClock()))
	require.NoError(t, err)
	return s
}

func TestNewSessionInvalid(t *testing.T) {
	_, err := NewSession(-2, letters, Config{})
	assert.ErrorIs(t, err, ErrInvalidPairCount)
}

func TestSessionForwards(t *testing.T) {
	s := mustSession(t, 2)
	assert.Len(t, s.Cards(), 4)

	m, err := s.Choose(0)
	require.NoError(t, err)
	assert.Equal(t, Flipped, m.Outcome)
	assert.True(t, s.Game().Cards()[s.Game().position[0]].FaceUp)

	s.Shuffle()
	snap := s.Snapshot()
	assert.Equal(t, s.GameID(), snap.GameID)
	assert.Equal(t, OneRevealed, snap.Phase)
}

func TestSessionRestart(t *testing.T) {
	s := mustSession(t, 2)
	first := s.GameID()
	_, err := s.Choose(0)
	require.NoError(t, err)

	require.NoError(t, s.Restart())
	assert.NotEqual(t, first, s.GameID())
	assert.Len(t, s.Cards(), 4)
	assert.Zero(t, unmatchedFaceUp(s.Cards()), "restarted game starts face-down")
}

func TestSessionRestartWith(t *testing.T) {
	s := mustSession(t, 2)
	require.NoError(t, s.RestartWith(3, func(i int) string { return "xyz"[i : i+1] }))
	assert.Equal(t, 3, s.Game().PairCount())

	// The new source is kept for later restarts.
	require.NoError(t, s.Restart())
	c, ok := s.Game().Card(5)
	require.True(t, ok)
	assert.Equal(t, "z", c.Content)
}

func TestSessionRestartWithErrorKeepsGame(t *testing.T) {
	s := mustSession(t, 2)
	id := s.GameID()

	err := s.RestartWith(-1, letters)
	assert.ErrorIs(t, err, ErrInvalidPairCount)
	assert.Equal(t, id, s.GameID())
	assert.Equal(t, 2, s.Game().PairCount())
}

func TestSessionObserversSurviveRestart(t *testing.T) {
	s := mustSession(t, 2)
	notified := 0
	s.Subscribe(func() { notified++ })

	_, err := s.Choose(0)
	require.NoError(t, err)
	assert.Equal(t, 1, notified)

	old := s.Game()
	require.NoError(t, s.Restart())
	assert.Equal(t, 2, notified, "restart notifies once")

	_, err = s.Choose(1)
	require.NoError(t, err)
	assert.Equal(t, 3, notified)

	// The discarded game no longer reaches session observers.
	old.Shuffle()
	assert.Equal(t, 3, notified)
}

func TestSessionRestartErrorDoesNotNotify(t *testing.T) {
	s := mustSession(t, 1)
	notified := 0
	s.Subscribe(func() { notified++ })
	assert.Error(t, s.RestartWith(1, nil))
	assert.Zero(t, notified)
}
