package loader

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avessier/chime/internal/source"
)

// writeWAV writes a minimal 16-bit mono PCM WAV file with the given
// samples at 8000 Hz.
func writeWAV(t *testing.T, path string, samples []int16) {
	t.Helper()

	var buf bytes.Buffer
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(8000))
	binary.Write(&buf, binary.LittleEndian, uint32(16000)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))     // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))    // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	binary.Write(&buf, binary.LittleEndian, samples)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestFileLoader_ResolveWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.wav")
	writeWAV(t, path, make([]int16, 800)) // 100ms at 8000 Hz

	h, err := FileLoader{}.Resolve(path, source.FormatWAV)
	require.NoError(t, err)
	defer h.Closer.Close()

	assert.Equal(t, 800, h.Stream.Len())
	assert.Equal(t, 100, int(h.Duration.Milliseconds()))
	assert.Equal(t, 8000, int(h.Format.SampleRate))
	// No tags in a bare WAV; title falls back to the file name.
	assert.Equal(t, "beep.wav", h.Title)
}

func TestFileLoader_MissingFile(t *testing.T) {
	_, err := FileLoader{}.Resolve(filepath.Join(t.TempDir(), "nope.wav"), source.FormatWAV)
	assert.Error(t, err)
}

func TestFileLoader_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.wav")
	writeWAV(t, path, make([]int16, 8))

	_, err := FileLoader{}.Resolve(path, source.Format(99))
	assert.ErrorContains(t, err, "unsupported format")
}

func TestFileLoader_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav at all"), 0o644))

	_, err := FileLoader{}.Resolve(path, source.FormatWAV)
	assert.Error(t, err)
}

func TestMock_Resolve(t *testing.T) {
	m := &Mock{Handle: &Handle{Title: "stub"}}

	h, err := m.Resolve("/a.wav", source.FormatWAV)
	require.NoError(t, err)
	assert.Equal(t, "stub", h.Title)
	assert.Equal(t, []string{"/a.wav"}, m.ResolveCalls)

	m.Err = os.ErrNotExist
	_, err = m.Resolve("/b.wav", source.FormatWAV)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
