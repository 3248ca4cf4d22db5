package source

import (
	"testing"
	"time"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatWAV, "wav"},
		{FormatMP3, "mp3"},
		{FormatFLAC, "flac"},
		{Format(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestWave_String(t *testing.T) {
	tests := []struct {
		wave Wave
		want string
	}{
		{Sine, "sine"},
		{Triangle, "triangle"},
		{Saw, "saw"},
		{Square, "square"},
		{Wave(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.wave.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.wave, got, tt.want)
		}
	}
}

func TestSource_String(t *testing.T) {
	file := File(FormatFLAC, "/music/track.flac")
	if got, want := file.String(), "flac:/music/track.flac"; got != want {
		t.Errorf("file.String() = %q, want %q", got, want)
	}

	tone := Tone(Square, 440, 2*time.Second)
	if got, want := tone.String(), "square 440Hz 2s"; got != want {
		t.Errorf("tone.String() = %q, want %q", got, want)
	}
}

func TestSource_DisplayName(t *testing.T) {
	file := File(FormatMP3, "/music/album/song.mp3")
	if got, want := file.DisplayName(), "song.mp3"; got != want {
		t.Errorf("file.DisplayName() = %q, want %q", got, want)
	}

	tone := Tone(Sine, 220, time.Second)
	if got, want := tone.DisplayName(), "sine 220Hz 1s"; got != want {
		t.Errorf("tone.DisplayName() = %q, want %q", got, want)
	}
}

func TestParseWave(t *testing.T) {
	tests := []struct {
		name    string
		want    Wave
		wantErr bool
	}{
		{"sine", Sine, false},
		{"Square", Square, false},
		{"TRIANGLE", Triangle, false},
		{"saw", Saw, false},
		{"noise", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseWave(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWave(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseWave(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	sources := []Source{
		File(FormatFLAC, "/music/track.flac"),
		File(FormatWAV, "/tmp/beep.wav"),
		Tone(Square, 440, 2*time.Second),
		Tone(Sine, 220.5, 1500*time.Millisecond),
	}
	for _, want := range sources {
		got, err := Parse(want.String())
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", want.String(), err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %+v, want %+v", want.String(), got, want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, desc := range []string{
		"",
		"not a source",
		"ogg:/music/track.ogg",
		"flac:",
		"noise 440Hz 2s",
		"sine xHz 2s",
		"sine 440Hz soon",
	} {
		if _, err := Parse(desc); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", desc)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"track.wav", FormatWAV, false},
		{"track.WAV", FormatWAV, false},
		{"/a/b/track.mp3", FormatMP3, false},
		{"track.flac", FormatFLAC, false},
		{"track.ogg", 0, true},
		{"track", 0, true},
	}
	for _, tt := range tests {
		got, err := FormatForPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatForPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
