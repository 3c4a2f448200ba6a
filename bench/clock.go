package bench

import "time"

// Clock supplies timestamps to the Runner. The system clock carries a
// monotonic reading, so Sub between two Now calls never goes backwards.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the default Runner clock.
var SystemClock Clock = systemClock{}
