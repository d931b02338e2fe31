package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic
// heuristic windows and alert lead times.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for status inference. Pass nil to reset to
// real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Now returns the current time from the injected clock. Exposed so callers
// stamp lastUpdated with the same source the heuristics read.
func Now() time.Time {
	return clock.Now()
}
