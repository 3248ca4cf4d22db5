package session

// State represents the playback state machine.
//
// Valid transitions:
//   - Stopped  → Playing  (via Play)
//   - Playing  → Paused   (via Pause)
//   - Paused   → Playing  (via Resume)
//   - Playing  → Finished (elapsed reached the duration, no loop left)
//   - any      → Stopped  (via Stop; Stop on Stopped is a no-op)
//
// Playing → Playing also happens on a loop rollover: the cycle clock
// resets and LoopsCompleted increments, the state does not change.
//
// Invalid transitions return errors instead of being ignored: Play when
// not Stopped is ErrAlreadyPlaying, Pause/Resume in the wrong state is
// ErrInvalidState.
type State int

const (
	Stopped State = iota
	Playing
	Paused
	Finished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is underway (Playing or Paused).
// Timing queries are only defined in active states.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows resuming.
func (s State) CanResume() bool {
	return s == Paused
}
