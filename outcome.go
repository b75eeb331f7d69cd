package memorize

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Outcome describes what a single Choose did to the game.
type Outcome int

const (
	Flipped    Outcome = iota + 1 // Card turned face-up and became the active card.
	Matched                       // Card matched the active card.
	Mismatched                    // Card was compared with the active card and did not match.
	Ignored                       // Card was already face-up or matched; nothing changed.
)

var (
	outcomeNames  = [...]string{Flipped: "Flipped", Matched: "Matched", Mismatched: "Mismatched", Ignored: "Ignored"}
	outcomeByName = map[string]Outcome{
		"Flipped":    Flipped,
		"Matched":    Matched,
		"Mismatched": Mismatched,
		"Ignored":    Ignored,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Outcome(0)
	_ json.Marshaler           = Outcome(0)
	_ json.Unmarshaler         = (*Outcome)(nil)
	_ encoding.TextMarshaler   = Outcome(0)
	_ encoding.TextUnmarshaler = (*Outcome)(nil)
)

// String returns the name of the outcome.
// For invalid values it returns "Outcome(n)".
func (o Outcome) String() string {
	if o.IsValid() {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// IsValid reports whether o is a valid outcome (Flipped through Ignored).
func (o Outcome) IsValid() bool {
	return o >= Flipped && o <= Ignored
}

// Changed reports whether the move mutated the game.
func (o Outcome) Changed() bool {
	return o.IsValid() && o != Ignored
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOutcome, int(o))
	}
	return []byte(outcomeNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	v, ok := outcomeByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, text)
	}
	*o = v
	return nil
}

// MarshalJSON implements json.Marshaler. Outcome serializes as a JSON string.
func (o Outcome) MarshalJSON() ([]byte, error) {
	text, err := o.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOutcome, data)
	}
	return o.UnmarshalText([]byte(s))
}
