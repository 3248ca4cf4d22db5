// Package tone synthesizes fixed-duration waveforms as beep streams.
// A Streamer covers exactly one playback cycle; looping is handled by
// the session, which replays the same cycle.
package tone

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/avessier/chime/internal/source"
)

// SampleRate is the rate tones are synthesized at. Tones are generated,
// not decoded, so there is no source rate to honor.
const SampleRate = beep.SampleRate(44100)

// Format returns the beep format of synthesized tones.
func Format() beep.Format {
	return beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
}

// Streamer produces one cycle of a waveform at a fixed pitch. It
// implements beep.StreamSeeker so a sink can rewind and replay it.
type Streamer struct {
	wave   source.Wave
	pitch  float64
	sr     beep.SampleRate
	length int
	pos    int
}

// New creates a tone streamer of the given waveform, pitch in Hz and
// duration, synthesized at rate sr.
func New(wave source.Wave, pitch float64, duration time.Duration, sr beep.SampleRate) *Streamer {
	return &Streamer{
		wave:   wave,
		pitch:  pitch,
		sr:     sr,
		length: sr.N(duration),
	}
}

func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.length {
		return 0, false
	}
	n = min(len(samples), s.length-s.pos)
	for i := range n {
		v := s.sample(s.pos + i)
		samples[i] = [2]float64{v, v}
	}
	s.pos += n
	return n, true
}

func (s *Streamer) Err() error { return nil }

func (s *Streamer) Len() int { return s.length }

func (s *Streamer) Position() int { return s.pos }

func (s *Streamer) Seek(p int) error {
	if p < 0 || p > s.length {
		return fmt.Errorf("seek position %d out of range [0, %d]", p, s.length)
	}
	s.pos = p
	return nil
}

// sample returns the waveform value at sample index i, in [-1, 1].
func (s *Streamer) sample(i int) float64 {
	// Phase within one waveform period, in [0, 1).
	phase := math.Mod(float64(i)*s.pitch/float64(s.sr), 1)
	switch s.wave {
	case source.Sine:
		return math.Sin(2 * math.Pi * phase)
	case source.Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	case source.Saw:
		return 2*phase - 1
	case source.Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	default:
		return 0
	}
}

// Verify Streamer implements the seeker contract at compile time.
var _ beep.StreamSeeker = (*Streamer)(nil)
