package session

import "fmt"

// Update is a partial configuration delta. Nil fields are left
// untouched. The pause field routes through Pause/Resume so the
// accumulated-pause bookkeeping stays correct.
type Update struct {
	Volume    *float64
	Paused    *bool
	DoesLoop  *bool
	LoopCount *int
}

// Update applies the delta all-or-nothing: every present field is
// validated (range and state applicability) before any is applied, and
// the first invalid field's error is returned with nothing changed.
func (inst *Instance) Update(u Update) error {
	inst.settle()

	if u.Volume != nil {
		if err := validateVolume(*u.Volume); err != nil {
			return err
		}
	}
	if u.Paused != nil && *u.Paused != (inst.state == Paused) {
		if *u.Paused && !inst.state.CanPause() {
			return fmt.Errorf("%w: cannot pause while %s", ErrInvalidState, inst.state)
		}
		if !*u.Paused && !inst.state.CanResume() {
			return fmt.Errorf("%w: cannot resume while %s", ErrInvalidState, inst.state)
		}
	}
	if u.LoopCount != nil {
		if err := validateLoopCount(*u.LoopCount); err != nil {
			return err
		}
	}

	if u.Volume != nil {
		inst.volume = *u.Volume
		inst.out.SetVolume(inst.volume)
	}
	if u.Paused != nil {
		switch {
		case *u.Paused && inst.state == Playing:
			_ = inst.Pause()
		case !*u.Paused && inst.state == Paused:
			_ = inst.Resume()
		}
	}
	if u.DoesLoop != nil {
		inst.doesLoop = *u.DoesLoop
	}
	if u.LoopCount != nil {
		inst.loopCount = *u.LoopCount
	}
	return nil
}
