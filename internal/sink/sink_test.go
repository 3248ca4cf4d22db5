package sink

import (
	"errors"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
)

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{1.0, 0},
		{0.5, -1},
		{0.25, -2},
		{0, -10},
		{-3, -10},
		{1.7, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, levelToVolume(tt.level), 1e-9, "level %v", tt.level)
	}
}

func TestMock_RecordsCalls(t *testing.T) {
	m := NewMock()
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}

	assert.NoError(t, m.Start(format, nil))
	assert.True(t, m.Playing)
	assert.Equal(t, format, m.LastFormat)

	m.Pause()
	assert.True(t, m.Paused)
	m.Resume()
	assert.False(t, m.Paused)

	m.SetVolume(0.3)
	assert.Equal(t, 0.3, m.Level)

	m.Stop()
	assert.False(t, m.Playing)
	assert.Equal(t, 1, m.StopCalls)
}

func TestMock_StartError(t *testing.T) {
	m := NewMock()
	m.StartErr = errors.New("no device")

	err := m.Start(beep.Format{}, nil)
	assert.Error(t, err)
	assert.False(t, m.Playing)
}
