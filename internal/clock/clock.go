// Package clock provides the time source consumed by the session timing
// logic. Sessions take a Clock instead of calling time.Now directly so
// tests can drive the timing state machine deterministically.
package clock

import "time"

// Clock returns the current time. time.Time carries a monotonic reading
// when it comes from time.Now, so subtractions are safe against wall
// clock adjustments.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by time.Now.
func System() Clock { return systemClock{} }
