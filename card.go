package memorize

import "time"

// Card is one card of a memory game deck.
//
// Bonus time is consumed while a card is face-up and unmatched. The open
// interval is tracked by FaceUpSince; closed intervals are folded into
// PastFaceUpTime.
type Card[C comparable] struct {
	ID             int           `json:"id"`
	Content        C             `json:"content"`
	FaceUp         bool          `json:"face_up"`
	Matched        bool          `json:"matched"`
	BonusTimeLimit time.Duration `json:"bonus_time_limit"` // 0 → not bonus eligible.
	PastFaceUpTime time.Duration `json:"past_face_up_time"`
	FaceUpSince    *time.Time    `json:"face_up_since,omitempty"` // nil unless the bonus clock is running.
}

// FaceUpDuration returns how long the card has been face-up while unmatched,
// including the currently open interval.
func (c Card[C]) FaceUpDuration(now time.Time) time.Duration {
	if c.FaceUpSince == nil {
		return c.PastFaceUpTime
	}
	return c.PastFaceUpTime + now.Sub(*c.FaceUpSince)
}

// BonusTimeRemaining returns the bonus time left at now, never negative.
func (c Card[C]) BonusTimeRemaining(now time.Time) time.Duration {
	return max(0, c.BonusTimeLimit-c.FaceUpDuration(now))
}

// BonusRemaining returns the fraction of bonus time left at now, in [0, 1].
// Cards without a bonus limit report 0.
func (c Card[C]) BonusRemaining(now time.Time) float64 {
	if c.BonusTimeLimit <= 0 {
		return 0
	}
	return float64(c.BonusTimeRemaining(now)) / float64(c.BonusTimeLimit)
}

// HasEarnedBonus reports whether the card was matched before its bonus time ran out.
// A matched card never has an open interval, so no time argument is needed.
func (c Card[C]) HasEarnedBonus() bool {
	return c.Matched && c.PastFaceUpTime < c.BonusTimeLimit
}

// IsConsumingBonusTime reports whether the card's bonus clock is running.
func (c Card[C]) IsConsumingBonusTime() bool {
	return c.FaceUpSince != nil
}

func (c Card[C]) hasBonusTime(now time.Time) bool {
	return c.BonusTimeLimit > 0 && c.FaceUpDuration(now) < c.BonusTimeLimit
}

// startUsingBonusTime opens a bonus interval at now if the card is eligible.
func (c *Card[C]) startUsingBonusTime(now time.Time) {
	if c.FaceUp && !c.Matched && c.FaceUpSince == nil && c.hasBonusTime(now) {
		t := now
		c.FaceUpSince = &t
	}
}

// stopUsingBonusTime folds the open interval, if any, into PastFaceUpTime.
func (c *Card[C]) stopUsingBonusTime(now time.Time) {
	c.PastFaceUpTime = c.FaceUpDuration(now)
	c.FaceUpSince = nil
}

// clone returns a deep copy of the card. Pointer fields are copied by value.
func (c Card[C]) clone() Card[C] {
	out := c
	if c.FaceUpSince != nil {
		v := *c.FaceUpSince
		out.FaceUpSince = &v
	}
	return out
}
