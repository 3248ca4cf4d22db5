package source

// Format identifies the encoded file formats the loader can decode.
type Format int

const (
	FormatWAV Format = iota
	FormatMP3
	FormatFLAC
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatMP3:
		return "mp3"
	case FormatFLAC:
		return "flac"
	default:
		return "unknown"
	}
}

// Wave identifies the waveforms the tone synthesizer can produce.
type Wave int

const (
	Sine Wave = iota
	Triangle
	Saw
	Square
)

// String returns the waveform name.
func (w Wave) String() string {
	switch w {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Saw:
		return "saw"
	case Square:
		return "square"
	default:
		return "unknown"
	}
}
