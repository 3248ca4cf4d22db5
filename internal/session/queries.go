package session

import (
	"fmt"
	"time"

	"github.com/avessier/chime/internal/source"
)

// Queries derive values from the stored state plus a fresh clock read.
// None of them mutate the instance; a Finished state observed here is
// derived and only committed by the next mutating call or Tick.

// Name returns the instance name, generated unless overridden at build.
func (inst *Instance) Name() string { return inst.name }

// Source returns the immutable source descriptor.
func (inst *Instance) Source() source.Source { return inst.src }

// Title returns the display title: the tagged title for file sources,
// the tone description otherwise.
func (inst *Instance) Title() string { return inst.title }

// Volume returns the configured volume level.
func (inst *Instance) Volume() float64 { return inst.volume }

// DoesLoop returns whether looping is enabled.
func (inst *Instance) DoesLoop() bool { return inst.doesLoop }

// LoopCount returns the configured loop count: -1 loops forever, N
// plays N additional cycles.
func (inst *Instance) LoopCount() int { return inst.loopCount }

// Duration returns the fixed duration of one playback cycle. It is
// known from construction and defined in every state.
func (inst *Instance) Duration() time.Duration { return inst.total }

// State returns the current state, including a derived Finished when
// wall time has passed the last permitted cycle.
func (inst *Instance) State() State {
	return inst.snapshotAt(inst.clk.Now()).state
}

// IsPaused returns whether the instance is paused.
func (inst *Instance) IsPaused() bool { return inst.state == Paused }

// LoopsCompleted returns the number of full cycles played so far,
// including cycles wall time has crossed since the last Tick.
func (inst *Instance) LoopsCompleted() int {
	return inst.snapshotAt(inst.clk.Now()).loops
}

// Elapsed returns the active playback time within the current cycle.
// Fails with ErrNotPlaying when the instance is Stopped or Finished.
func (inst *Instance) Elapsed() (time.Duration, error) {
	snap, err := inst.activeSnapshot()
	if err != nil {
		return 0, err
	}
	return snap.elapsed, nil
}

// Remaining returns the active playback time left in the current cycle.
func (inst *Instance) Remaining() (time.Duration, error) {
	snap, err := inst.activeSnapshot()
	if err != nil {
		return 0, err
	}
	return inst.total - snap.elapsed, nil
}

// StartTime returns the wall-clock start of the current cycle.
func (inst *Instance) StartTime() (time.Time, error) {
	snap, err := inst.activeSnapshot()
	if err != nil {
		return time.Time{}, err
	}
	return snap.cycleStart, nil
}

// EndTime returns the projected wall-clock end of the current cycle,
// assuming uninterrupted playback from now. Pause gaps already taken
// are accounted for; while paused the projection slides with the clock.
func (inst *Instance) EndTime() (time.Time, error) {
	snap, err := inst.activeSnapshot()
	if err != nil {
		return time.Time{}, err
	}
	return inst.clk.Now().Add(inst.total - snap.elapsed), nil
}

func (inst *Instance) activeSnapshot() (snapshot, error) {
	snap := inst.snapshotAt(inst.clk.Now())
	if !snap.state.IsActive() {
		return snapshot{}, fmt.Errorf("%w: state is %s", ErrNotPlaying, snap.state)
	}
	return snap, nil
}
