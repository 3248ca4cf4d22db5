package session

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/avessier/chime/internal/clock"
	"github.com/avessier/chime/internal/loader"
	"github.com/avessier/chime/internal/sink"
	"github.com/avessier/chime/internal/source"
	"github.com/avessier/chime/internal/tone"
)

// nameCounter feeds generated instance names. Process-wide so every
// unnamed instance gets a distinct name.
var nameCounter atomic.Uint64

// Builder validates a source plus configuration overrides and constructs
// a playback Instance. Defaults: volume 1.0, looping off, loop count -1
// (loop forever once looping is enabled).
type Builder struct {
	src       source.Source
	name      string
	volume    float64
	doesLoop  bool
	loopCount int

	clk   clock.Clock
	out   sink.Sink
	files loader.Loader
}

// NewBuilder creates a builder for the given source with default
// configuration and real collaborators.
func NewBuilder(src source.Source) *Builder {
	return &Builder{
		src:       src,
		volume:    1.0,
		loopCount: -1,
		clk:       clock.System(),
		out:       sink.NewSpeaker(),
		files:     loader.FileLoader{},
	}
}

// Name overrides the generated instance name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Volume sets the initial volume, 0.0 to 1.0.
func (b *Builder) Volume(volume float64) *Builder {
	b.volume = volume
	return b
}

// Loop sets whether playback restarts when a cycle completes.
func (b *Builder) Loop(doesLoop bool) *Builder {
	b.doesLoop = doesLoop
	return b
}

// LoopCount sets how many extra cycles to play when looping is enabled:
// -1 loops forever, 0 plays once, N plays N additional cycles.
func (b *Builder) LoopCount(count int) *Builder {
	b.loopCount = count
	return b
}

// WithClock injects a time source.
func (b *Builder) WithClock(clk clock.Clock) *Builder {
	b.clk = clk
	return b
}

// WithSink injects an output sink.
func (b *Builder) WithSink(out sink.Sink) *Builder {
	b.out = out
	return b
}

// WithLoader injects a file loader.
func (b *Builder) WithLoader(files loader.Loader) *Builder {
	b.files = files
	return b
}

// Build validates the configuration, resolves the source and returns an
// Instance in the Stopped state. Construction never starts playback.
func (b *Builder) Build() (*Instance, error) {
	if err := validateVolume(b.volume); err != nil {
		return nil, err
	}
	if err := validateLoopCount(b.loopCount); err != nil {
		return nil, err
	}

	name := b.name
	if name == "" {
		name = fmt.Sprintf("chime_%d", nameCounter.Add(1))
	}

	inst := &Instance{
		name:      name,
		src:       b.src,
		clk:       b.clk,
		out:       b.out,
		volume:    b.volume,
		doesLoop:  b.doesLoop,
		loopCount: b.loopCount,
		state:     Stopped,
	}

	switch b.src.Kind {
	case source.KindTone:
		if b.src.Pitch <= 0 || math.IsNaN(b.src.Pitch) || math.IsInf(b.src.Pitch, 0) {
			return nil, fmt.Errorf("%w: tone pitch %v, want > 0", ErrInvalidConfig, b.src.Pitch)
		}
		if b.src.Duration <= 0 {
			return nil, fmt.Errorf("%w: tone duration %v, want > 0", ErrInvalidConfig, b.src.Duration)
		}
		inst.stream = tone.New(b.src.Wave, b.src.Pitch, b.src.Duration, tone.SampleRate)
		inst.format = tone.Format()
		inst.total = b.src.Duration
		inst.title = b.src.String()

	case source.KindFile:
		h, err := b.files.Resolve(b.src.Path, b.src.Format)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, b.src.Path, err)
		}
		inst.stream = h.Stream
		inst.closer = h.Closer
		inst.format = h.Format
		inst.total = h.Duration
		inst.title = h.Title

	default:
		return nil, fmt.Errorf("%w: unknown source kind %d", ErrInvalidConfig, b.src.Kind)
	}

	if inst.total <= 0 {
		return nil, fmt.Errorf("%w: %s resolved to an empty stream", ErrSourceUnavailable, b.src)
	}
	return inst, nil
}
