package session

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds returned by the builder and the instance state machine.
// Callers classify with errors.Is; the wrapped message carries the
// offending detail. No error here is fatal: a failed operation leaves
// the instance in its prior state.
var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrAlreadyPlaying    = errors.New("already playing")
	ErrInvalidState      = errors.New("invalid state")
	ErrNotPlaying        = errors.New("not playing")
)

func validateVolume(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
		return fmt.Errorf("%w: volume %v out of range [0, 1]", ErrInvalidConfig, v)
	}
	return nil
}

func validateLoopCount(n int) error {
	if n < -1 {
		return fmt.Errorf("%w: loop count %d, want -1 or >= 0", ErrInvalidConfig, n)
	}
	return nil
}
