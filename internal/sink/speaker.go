package sink

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// The speaker device is process-wide and initialized once, at the sample
// rate of the first stream. Later streams at other rates are resampled.
var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Speaker plays streams on the default audio device through beep.
type Speaker struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
	level  float64
}

// NewSpeaker creates a speaker sink at full volume.
func NewSpeaker() *Speaker {
	return &Speaker{level: 1.0}
}

func (s *Speaker) Start(format beep.Format, stream beep.Streamer) error {
	s.Stop()

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
			return err
		}
		speakerInitialized = true
	}

	play := stream
	if format.SampleRate != speakerSampleRate {
		play = beep.Resample(4, format.SampleRate, speakerSampleRate, stream)
	}

	s.ctrl = &beep.Ctrl{Streamer: play}
	s.volume = &effects.Volume{
		Streamer: s.ctrl,
		Base:     2,
		Volume:   levelToVolume(s.level),
		Silent:   s.level <= 0,
	}
	speaker.Play(s.volume)
	return nil
}

func (s *Speaker) Pause() {
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

func (s *Speaker) Resume() {
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()
}

// SetVolume sets the output level (0.0 to 1.0, clamped). The level is
// remembered across Start calls.
func (s *Speaker) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	s.level = level

	if s.volume != nil {
		speaker.Lock()
		s.volume.Volume = levelToVolume(level)
		s.volume.Silent = level <= 0
		speaker.Unlock()
	}
}

func (s *Speaker) Stop() {
	if s.ctrl == nil {
		return
	}
	speaker.Clear()
	s.ctrl = nil
	s.volume = nil
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale with base 2: 0 means no change, -1 half
// volume, -2 quarter. We map 1.0 -> 0, 0.5 -> -1, 0 -> -10 (silent).
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}

// Verify Speaker implements Sink at compile time.
var _ Sink = (*Speaker)(nil)
