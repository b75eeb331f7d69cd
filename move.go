package memorize

import "time"

// Move records the effect of a single Choose call.
type Move struct {
	CardID       int       `json:"card_id"`
	Outcome      Outcome   `json:"outcome"`
	ComparedWith *int      `json:"compared_with,omitempty"` // nil unless a comparison happened.
	At           time.Time `json:"at"`
}
