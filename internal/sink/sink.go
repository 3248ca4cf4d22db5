// Package sink abstracts the audio output device. The session core
// treats the sink as a dumb sample consumer: it pushes streams and
// control calls in, and never reads timing back, so correctness does not
// depend on driver clock drift.
package sink

import "github.com/gopxl/beep/v2"

// Sink is the output collaborator consumed by the session core. All
// calls are synchronous; Pause, Resume, SetVolume and Stop are safe to
// call regardless of whether a stream is active.
type Sink interface {
	Start(format beep.Format, stream beep.Streamer) error
	Pause()
	Resume()
	SetVolume(level float64)
	Stop()
}
