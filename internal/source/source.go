// Package source describes what a playback session plays: either an
// encoded audio file or a synthesized tone. A Source is immutable once
// constructed; runtime properties like volume and looping live on the
// session, not here.
package source

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the source variants.
type Kind int

const (
	KindFile Kind = iota
	KindTone
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindTone:
		return "Tone"
	default:
		return "Unknown"
	}
}

// Source is a tagged variant: exactly one of the File or Tone field sets
// is meaningful, selected by Kind. Use the File and Tone constructors.
type Source struct {
	Kind Kind

	// File fields
	Format Format
	Path   string

	// Tone fields
	Wave     Wave
	Pitch    float64 // Hz
	Duration time.Duration
}

// File describes an encoded audio file on disk.
func File(format Format, path string) Source {
	return Source{Kind: KindFile, Format: format, Path: path}
}

// Tone describes a synthesized tone of a fixed pitch and duration.
func Tone(wave Wave, pitch float64, duration time.Duration) Source {
	return Source{Kind: KindTone, Wave: wave, Pitch: pitch, Duration: duration}
}

// String returns a short human-readable description, used for display
// and for the persisted last-source record.
func (s Source) String() string {
	switch s.Kind {
	case KindFile:
		return fmt.Sprintf("%s:%s", s.Format, s.Path)
	case KindTone:
		return fmt.Sprintf("%s %gHz %s", s.Wave, s.Pitch, s.Duration)
	default:
		return "unknown source"
	}
}

// DisplayName returns a name suitable for a player bar: the base file
// name for files, the tone description for tones.
func (s Source) DisplayName() string {
	if s.Kind == KindFile {
		return filepath.Base(s.Path)
	}
	return s.String()
}

// FormatForPath maps a file extension to its Format.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return FormatWAV, nil
	case ".mp3":
		return FormatMP3, nil
	case ".flac":
		return FormatFLAC, nil
	default:
		return 0, fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}
}

// ParseWave maps a waveform name to its Wave.
func ParseWave(name string) (Wave, error) {
	switch strings.ToLower(name) {
	case "sine":
		return Sine, nil
	case "triangle":
		return Triangle, nil
	case "saw":
		return Saw, nil
	case "square":
		return Square, nil
	default:
		return 0, fmt.Errorf("unknown waveform: %s", name)
	}
}

// Parse reverses String, reconstructing a Source from a persisted
// description: "format:path" for files, "wave pitchHz duration" for
// tones.
func Parse(desc string) (Source, error) {
	if fields := strings.Fields(desc); len(fields) == 3 && strings.HasSuffix(fields[1], "Hz") {
		wave, err := ParseWave(fields[0])
		if err != nil {
			return Source{}, fmt.Errorf("parse %q: %w", desc, err)
		}
		pitch, err := strconv.ParseFloat(strings.TrimSuffix(fields[1], "Hz"), 64)
		if err != nil {
			return Source{}, fmt.Errorf("parse %q: bad pitch", desc)
		}
		duration, err := time.ParseDuration(fields[2])
		if err != nil {
			return Source{}, fmt.Errorf("parse %q: bad duration", desc)
		}
		return Tone(wave, pitch, duration), nil
	}

	if name, path, ok := strings.Cut(desc, ":"); ok && path != "" {
		for _, f := range []Format{FormatWAV, FormatMP3, FormatFLAC} {
			if f.String() == name {
				return File(f, path), nil
			}
		}
	}
	return Source{}, fmt.Errorf("unrecognized source description: %q", desc)
}
