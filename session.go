package memorize

import "github.com/google/uuid"

// Session owns the current game and rebuilds it on restart.
// Observers registered on a Session survive restarts.
type Session[C comparable] struct {
	pairCount  int
	contentFor func(int) C
	cfg        Config

	game      *Game[C]
	detach    func()
	observers observers
}

// NewSession starts a session with a fresh game built from pairCount and contentFor.
func NewSession[C comparable](pairCount int, contentFor func(int) C, cfg Config) (*Session[C], error) {
	s := &Session[C]{cfg: cfg}
	if err := s.start(pairCount, contentFor); err != nil {
		return nil, err
	}
	return s, nil
}

// Game returns the current game.
func (s *Session[C]) Game() *Game[C] {
	return s.game
}

// GameID returns the ID of the current game.
func (s *Session[C]) GameID() uuid.UUID {
	return s.game.ID()
}

// Cards returns a copy of the current deck.
func (s *Session[C]) Cards() []Card[C] {
	return s.game.Cards()
}

// Snapshot captures the current game.
func (s *Session[C]) Snapshot() Snapshot[C] {
	return s.game.Snapshot()
}

// Choose forwards to the current game.
func (s *Session[C]) Choose(id int) (Move, error) {
	return s.game.Choose(id)
}

// Shuffle forwards to the current game.
func (s *Session[C]) Shuffle() {
	s.game.Shuffle()
}

// Restart discards the current game and deals a new one with the same
// pair count and content source.
func (s *Session[C]) Restart() error {
	return s.RestartWith(s.pairCount, s.contentFor)
}

// RestartWith discards the current game and deals a new one from the given
// source. On error the current game is kept.
func (s *Session[C]) RestartWith(pairCount int, contentFor func(int) C) error {
	if err := s.start(pairCount, contentFor); err != nil {
		return err
	}
	s.observers.notify()
	return nil
}

// Subscribe registers fn to be called after every change to the session's
// current game and after every restart.
func (s *Session[C]) Subscribe(fn func()) (cancel func()) {
	return s.observers.add(fn)
}

func (s *Session[C]) start(pairCount int, contentFor func(int) C) error {
	g, err := New(pairCount, contentFor, s.cfg)
	if err != nil {
		return err
	}
	if s.detach != nil {
		s.detach()
	}
	s.pairCount = pairCount
	s.contentFor = contentFor
	s.game = g
	s.detach = g.Subscribe(s.observers.notify)
	return nil
}
