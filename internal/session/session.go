// Package session implements the playback instance state machine and
// its timing model. An Instance tracks elapsed time itself from an
// injected clock; the sink is a dumb output device and is never asked
// for timing.
//
// An Instance is not safe for concurrent mutation: callers serialize
// Play, Pause, Resume, Update, Tick and Stop themselves. Queries may run
// concurrently with each other, but not with a mutating call, because
// they read several related timing fields as one snapshot.
package session

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/avessier/chime/internal/clock"
	"github.com/avessier/chime/internal/sink"
	"github.com/avessier/chime/internal/source"
)

// Instance is one playback session: an immutable source bound to a sink
// and a clock, with mutable volume, pause and loop configuration.
// Instances are created by Builder.Build, never directly.
type Instance struct {
	name  string
	src   source.Source
	title string

	clk clock.Clock
	out sink.Sink

	stream beep.StreamSeeker
	closer io.Closer
	format beep.Format

	// mutable configuration
	volume    float64
	doesLoop  bool
	loopCount int

	// timing state; startedAt is the current cycle baseline and moves
	// forward by total on each loop rollover
	state     State
	startedAt time.Time
	pausedAt  time.Time
	pausedFor time.Duration
	total     time.Duration
	loopsDone int
}

// Play starts playback. Only valid in the Stopped state; construction
// and Stop leave the instance there.
func (inst *Instance) Play() error {
	if inst.state != Stopped {
		return fmt.Errorf("%w: state is %s", ErrAlreadyPlaying, inst.state)
	}

	inst.out.SetVolume(inst.volume)
	if err := inst.out.Start(inst.format, inst.playStream()); err != nil {
		return err
	}

	inst.startedAt = inst.clk.Now()
	inst.pausedAt = time.Time{}
	inst.pausedFor = 0
	inst.loopsDone = 0
	inst.state = Playing
	return nil
}

// playStream wraps the one-cycle stream with the loop policy so the
// audible output matches the timing bookkeeping. The core still owns
// the loop and finish decisions.
func (inst *Instance) playStream() beep.Streamer {
	if !inst.doesLoop {
		return inst.stream
	}
	if inst.loopCount < 0 {
		return beep.Loop(-1, inst.stream)
	}
	return beep.Loop(inst.loopCount+1, inst.stream)
}

// Pause suspends playback. Paused time does not count toward elapsed.
func (inst *Instance) Pause() error {
	inst.settle()
	if !inst.state.CanPause() {
		return fmt.Errorf("%w: cannot pause while %s", ErrInvalidState, inst.state)
	}
	inst.pausedAt = inst.clk.Now()
	inst.state = Paused
	inst.out.Pause()
	return nil
}

// Resume continues paused playback, folding the pause gap into the
// accumulated pause duration.
func (inst *Instance) Resume() error {
	if !inst.state.CanResume() {
		return fmt.Errorf("%w: cannot resume while %s", ErrInvalidState, inst.state)
	}
	inst.pausedFor += inst.clk.Now().Sub(inst.pausedAt)
	inst.pausedAt = time.Time{}
	inst.state = Playing
	inst.out.Resume()
	return nil
}

// Stop halts the sink and resets timing, returning the instance to
// Stopped. Calling Stop on an already stopped instance is a no-op.
func (inst *Instance) Stop() error {
	if inst.state == Stopped {
		return nil
	}
	inst.out.Stop()
	// Rewind so a later Play starts from the beginning.
	_ = inst.stream.Seek(0)
	inst.state = Stopped
	inst.startedAt = time.Time{}
	inst.pausedAt = time.Time{}
	inst.pausedFor = 0
	inst.loopsDone = 0
	return nil
}

// Tick commits any loop rollover or finish that wall time has crossed
// since the last mutating call. Queries never mutate, so a caller that
// wants the Finished transition (and the sink halt that comes with it)
// to take effect drives Tick periodically.
func (inst *Instance) Tick() {
	inst.settle()
}

// Close stops playback and releases the decoded stream.
func (inst *Instance) Close() error {
	_ = inst.Stop()
	if inst.closer != nil {
		return inst.closer.Close()
	}
	return nil
}

// settle folds completed cycles into the loop bookkeeping and commits
// the Finished transition, stopping the sink.
func (inst *Instance) settle() {
	if inst.state != Playing {
		return
	}
	snap := inst.snapshotAt(inst.clk.Now())
	if cycles := snap.loops - inst.loopsDone; cycles > 0 {
		inst.startedAt = inst.startedAt.Add(time.Duration(cycles) * inst.total)
		inst.loopsDone = snap.loops
	}
	if snap.state == Finished {
		inst.state = Finished
		inst.out.Stop()
	}
}

// snapshot is the derived view of the timing state at one instant.
type snapshot struct {
	state      State
	elapsed    time.Duration // within the current cycle
	loops      int
	cycleStart time.Time
}

// snapshotAt derives the cycle position at now without mutating the
// instance. While Playing, elapsed cycles beyond the stored baseline are
// attributed to loops as the loop policy allows; past the last permitted
// cycle the derived state is Finished.
func (inst *Instance) snapshotAt(now time.Time) snapshot {
	switch inst.state {
	case Playing:
		// fall through to the derivation below
	case Paused:
		return snapshot{
			state:      Paused,
			elapsed:    inst.pausedAt.Sub(inst.startedAt) - inst.pausedFor,
			loops:      inst.loopsDone,
			cycleStart: inst.startedAt,
		}
	default:
		return snapshot{state: inst.state, loops: inst.loopsDone}
	}

	elapsed := now.Sub(inst.startedAt) - inst.pausedFor
	if elapsed < 0 {
		elapsed = 0
	}
	loops := inst.loopsDone
	start := inst.startedAt

	cycles := int(elapsed / inst.total)
	if cycles == 0 {
		return snapshot{state: Playing, elapsed: elapsed, loops: loops, cycleStart: start}
	}

	if inst.doesLoop && inst.loopCount < 0 {
		return snapshot{
			state:      Playing,
			elapsed:    elapsed % inst.total,
			loops:      loops + cycles,
			cycleStart: start.Add(time.Duration(cycles) * inst.total),
		}
	}

	allowed := 0
	if inst.doesLoop {
		allowed = inst.loopCount - loops
		// An Update may lower the loop count below the cycles already
		// committed; the allowance never goes negative so derived loops
		// and cycleStart cannot move backwards.
		if allowed < 0 {
			allowed = 0
		}
	}
	if cycles > allowed {
		return snapshot{
			state:      Finished,
			elapsed:    inst.total,
			loops:      loops + allowed,
			cycleStart: start.Add(time.Duration(allowed) * inst.total),
		}
	}
	return snapshot{
		state:      Playing,
		elapsed:    elapsed - time.Duration(cycles)*inst.total,
		loops:      loops + cycles,
		cycleStart: start.Add(time.Duration(cycles) * inst.total),
	}
}
