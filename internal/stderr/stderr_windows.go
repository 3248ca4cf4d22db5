//go:build windows

// Windows audio backends don't produce the ALSA-style stderr noise,
// so capture is a no-op there.
package stderr

import "os"

var Messages = make(chan string, 100)

func Start() error { return nil }

func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

func Stop() {}
