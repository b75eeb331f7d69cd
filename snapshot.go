package memorize

import (
	"time"

	"github.com/google/uuid"
)

// CardView is the read-only, Presenter-facing view of a card.
type CardView[C comparable] struct {
	ID                 int           `json:"id"`
	Content            C             `json:"content"`
	FaceUp             bool          `json:"face_up"`
	Matched            bool          `json:"matched"`
	BonusRemaining     float64       `json:"bonus_remaining"`
	BonusTimeRemaining time.Duration `json:"bonus_time_remaining"`
	EarnedBonus        bool          `json:"earned_bonus"`
}

// Snapshot is an immutable view of a game at a single instant.
// Cards are in deck order.
type Snapshot[C comparable] struct {
	GameID uuid.UUID     `json:"game_id"`
	Phase  Phase         `json:"phase"`
	Over   bool          `json:"over"`
	At     time.Time     `json:"at"`
	Cards  []CardView[C] `json:"cards"`
}

// Snapshot captures the game at the clock's current time.
func (g *Game[C]) Snapshot() Snapshot[C] {
	return g.SnapshotAt(g.clock.Now())
}

// SnapshotAt captures the game with bonus time evaluated at now.
func (g *Game[C]) SnapshotAt(now time.Time) Snapshot[C] {
	views := make([]CardView[C], len(g.cards))
	for i, c := range g.cards {
		views[i] = CardView[C]{
			ID:                 c.ID,
			Content:            c.Content,
			FaceUp:             c.FaceUp,
			Matched:            c.Matched,
			BonusRemaining:     c.BonusRemaining(now),
			BonusTimeRemaining: c.BonusTimeRemaining(now),
			EarnedBonus:        c.HasEarnedBonus(),
		}
	}
	return Snapshot[C]{
		GameID: g.id,
		Phase:  g.Phase(),
		Over:   g.IsOver(),
		At:     now,
		Cards:  views,
	}
}

// Card returns the view of the card with the given ID.
func (s Snapshot[C]) Card(id int) (CardView[C], bool) {
	for _, c := range s.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return CardView[C]{}, false
}
