package memorize

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Game is the state of one memory game: an ordered deck of cards, the
// selection/matching state machine and per-card bonus-time bookkeeping.
//
// A Game has a single owner. It is not safe for concurrent use.
type Game[C comparable] struct {
	id        uuid.UUID
	pairCount int
	cards     []Card[C]
	position  []int // card ID → index in cards.

	clock        Clock
	rng          *rand.Rand
	logger       *slog.Logger
	notifyOnNoop bool
	observers    observers
}

// New creates a game with pairCount pairs. contentFor is called exactly once
// per pair index, in order from 0 to pairCount-1, before the deck is shuffled.
// Cards 2i and 2i+1 share contentFor(i). Content distinctness is not checked.
func New[C comparable](pairCount int, contentFor func(int) C, cfg Config) (*Game[C], error) {
	if pairCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPairCount, pairCount)
	}
	if contentFor == nil && pairCount > 0 {
		return nil, ErrNoContentSource
	}
	r, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	g := &Game[C]{
		id:           uuid.New(),
		pairCount:    pairCount,
		cards:        make([]Card[C], 0, 2*pairCount),
		position:     make([]int, 2*pairCount),
		clock:        r.clock,
		rng:          r.rng,
		logger:       r.logger,
		notifyOnNoop: r.notifyOnNoop,
	}
	g.logger = g.logger.With("component", "memorize", "game_id", g.id)

	for i := 0; i < pairCount; i++ {
		content := contentFor(i)
		g.cards = append(g.cards,
			Card[C]{ID: 2 * i, Content: content, BonusTimeLimit: r.bonusTimeLimit},
			Card[C]{ID: 2*i + 1, Content: content, BonusTimeLimit: r.bonusTimeLimit},
		)
	}
	g.shuffle()

	g.logger.Debug("game created", "pairs", pairCount, "bonus_time_limit", r.bonusTimeLimit)
	return g, nil
}

// ID returns the identity of this game instance. A restarted game has a new ID.
func (g *Game[C]) ID() uuid.UUID {
	return g.id
}

// PairCount returns the number of pairs the game was created with.
func (g *Game[C]) PairCount() int {
	return g.pairCount
}

// Len returns the number of cards in the deck.
func (g *Game[C]) Len() int {
	return len(g.cards)
}

// Cards returns a copy of the deck in its current order.
func (g *Game[C]) Cards() []Card[C] {
	out := make([]Card[C], len(g.cards))
	for i, c := range g.cards {
		out[i] = c.clone()
	}
	return out
}

// Card returns a copy of the card with the given ID.
func (g *Game[C]) Card(id int) (Card[C], bool) {
	i, ok := g.indexOf(id)
	if !ok {
		return Card[C]{}, false
	}
	return g.cards[i].clone(), true
}

// ActiveCard returns the one-and-only unmatched face-up card, if there is one.
func (g *Game[C]) ActiveCard() (Card[C], bool) {
	i, ok := g.activeIndex()
	if !ok {
		return Card[C]{}, false
	}
	return g.cards[i].clone(), true
}

// Phase reports whether a card is waiting for its partner.
func (g *Game[C]) Phase() Phase {
	if _, ok := g.activeIndex(); ok {
		return OneRevealed
	}
	return Idle
}

// IsOver reports whether every card has been matched. An empty game is over.
func (g *Game[C]) IsOver() bool {
	for _, c := range g.cards {
		if !c.Matched {
			return false
		}
	}
	return true
}

// MatchedPairs returns the number of pairs found so far.
func (g *Game[C]) MatchedPairs() int {
	n := 0
	for _, c := range g.cards {
		if c.Matched {
			n++
		}
	}
	return n / 2
}

// EarnedBonuses returns the number of matched cards that beat their bonus time.
func (g *Game[C]) EarnedBonuses() int {
	n := 0
	for _, c := range g.cards {
		if c.HasEarnedBonus() {
			n++
		}
	}
	return n
}

// Subscribe registers fn to be called after every change to the game.
// Observers run synchronously, in registration order, before the mutating
// call returns. The returned function unregisters fn and may be called more
// than once.
func (g *Game[C]) Subscribe(fn func()) (cancel func()) {
	cancel = g.observers.add(fn)
	g.logger.Debug("registered observer", "observer_count", g.observers.len())
	return cancel
}

// Choose handles a tap on the card with the given ID.
//
// The active card is recomputed from the deck on every call: it is the
// unique unmatched face-up card, if exactly one exists. With no active card
// the chosen card is turned face-up alone, hiding any unmatched pair left
// showing by an earlier mismatch. With an active card the two are compared;
// both stay face-up and both bonus clocks stop.
//
// Choosing a face-up or matched card is a no-op reported as Ignored.
// An unknown ID returns ErrUnknownCard and leaves the game untouched.
func (g *Game[C]) Choose(id int) (Move, error) {
	chosen, ok := g.indexOf(id)
	if !ok {
		return Move{}, fmt.Errorf("%w: card %d not in game %s", ErrUnknownCard, id, g.id)
	}

	now := g.clock.Now()
	move := Move{CardID: id, At: now}

	if g.cards[chosen].FaceUp || g.cards[chosen].Matched {
		move.Outcome = Ignored
		g.logger.Debug("choose ignored", "card_id", id)
		if g.notifyOnNoop {
			g.observers.notify()
		}
		return move, nil
	}

	if active, ok := g.activeIndex(); ok {
		move.Outcome = g.compare(active, chosen, now)
		activeID := g.cards[active].ID
		move.ComparedWith = &activeID
	} else {
		g.reveal(chosen, now)
		move.Outcome = Flipped
	}

	g.logger.Debug("card chosen",
		"card_id", id,
		"outcome", move.Outcome,
		"phase", g.Phase())
	g.observers.notify()
	return move, nil
}

// reveal turns every other unmatched card face-down and the chosen one face-up.
func (g *Game[C]) reveal(chosen int, now time.Time) {
	for i := range g.cards {
		c := &g.cards[i]
		if i == chosen || c.Matched || !c.FaceUp {
			continue
		}
		c.stopUsingBonusTime(now)
		c.FaceUp = false
	}
	c := &g.cards[chosen]
	c.FaceUp = true
	c.startUsingBonusTime(now)
}

// compare turns chosen face-up next to the active card and settles the pair.
func (g *Game[C]) compare(active, chosen int, now time.Time) Outcome {
	a, c := &g.cards[active], &g.cards[chosen]
	outcome := Mismatched
	if a.Content == c.Content {
		a.Matched = true
		c.Matched = true
		outcome = Matched
	}
	a.stopUsingBonusTime(now)
	c.stopUsingBonusTime(now)
	c.FaceUp = true
	return outcome
}

// Shuffle reorders the deck uniformly at random. Card identity, content,
// face state and bonus bookkeeping are unchanged.
func (g *Game[C]) Shuffle() {
	g.shuffle()
	g.logger.Debug("deck shuffled", "cards", len(g.cards))
	g.observers.notify()
}

func (g *Game[C]) shuffle() {
	g.rng.Shuffle(len(g.cards), func(i, j int) {
		g.cards[i], g.cards[j] = g.cards[j], g.cards[i]
	})
	for i, c := range g.cards {
		g.position[c.ID] = i
	}
}

func (g *Game[C]) indexOf(id int) (int, bool) {
	if id < 0 || id >= len(g.position) {
		return 0, false
	}
	return g.position[id], true
}

// activeIndex returns the index of the one-and-only unmatched face-up card.
func (g *Game[C]) activeIndex() (int, bool) {
	found := -1
	for i, c := range g.cards {
		if c.FaceUp && !c.Matched {
			if found >= 0 {
				return 0, false
			}
			found = i
		}
	}
	return found, found >= 0
}
