package sink

import "github.com/gopxl/beep/v2"

// Mock is a test double for Sink. It records control calls so tests can
// assert on what the session pushed to the output device.
type Mock struct {
	StartCalls  int
	PauseCalls  int
	ResumeCalls int
	StopCalls   int

	LastFormat beep.Format
	LastStream beep.Streamer
	Level      float64

	Playing bool
	Paused  bool

	StartErr error
}

// NewMock creates a mock sink.
func NewMock() *Mock {
	return &Mock{Level: 1.0}
}

func (m *Mock) Start(format beep.Format, stream beep.Streamer) error {
	m.StartCalls++
	if m.StartErr != nil {
		return m.StartErr
	}
	m.LastFormat = format
	m.LastStream = stream
	m.Playing = true
	m.Paused = false
	return nil
}

func (m *Mock) Pause() {
	m.PauseCalls++
	if m.Playing {
		m.Paused = true
	}
}

func (m *Mock) Resume() {
	m.ResumeCalls++
	if m.Playing {
		m.Paused = false
	}
}

func (m *Mock) SetVolume(level float64) { m.Level = level }

func (m *Mock) Stop() {
	m.StopCalls++
	m.Playing = false
	m.Paused = false
}

// Verify Mock implements Sink at compile time.
var _ Sink = (*Mock)(nil)
