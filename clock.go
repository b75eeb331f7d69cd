package memorize

import "time"

// Clock supplies the current time for bonus-time accounting.
// Game reads it once per state transition and never schedules timers.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock, backed by time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// FixedClock always reports the same instant.
type FixedClock time.Time

// Now returns the fixed time.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

var (
	_ Clock = systemClock{}
	_ Clock = ClockFunc(nil)
	_ Clock = FixedClock{}
)
