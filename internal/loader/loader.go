// Package loader resolves file sources into decoded sample streams.
// Decoding is delegated to the beep decoders; the session core only sees
// the resolved handle.
package loader

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"

	"github.com/avessier/chime/internal/source"
)

// Handle is a resolved file source ready to stream.
type Handle struct {
	Stream   beep.StreamSeeker
	Closer   io.Closer // releases the underlying file, may be nil
	Format   beep.Format
	Duration time.Duration
	Title    string
}

// Loader is the file-loading collaborator consumed by the session
// builder.
type Loader interface {
	Resolve(path string, format source.Format) (*Handle, error)
}

// FileLoader decodes local files with the beep decoders.
type FileLoader struct{}

func (FileLoader) Resolve(path string, format source.Format) (*Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var stream beep.StreamSeekCloser
	var fm beep.Format

	switch format {
	case source.FormatWAV:
		stream, fm, err = wav.Decode(f)
	case source.FormatMP3:
		stream, fm, err = mp3.Decode(f)
	case source.FormatFLAC:
		stream, fm, err = flac.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Handle{
		Stream:   stream,
		Closer:   stream,
		Format:   fm,
		Duration: fm.SampleRate.D(stream.Len()),
		Title:    readTitle(path),
	}, nil
}

// Verify FileLoader implements Loader at compile time.
var _ Loader = FileLoader{}
