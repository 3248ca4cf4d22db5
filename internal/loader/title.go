package loader

import (
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
)

// readTitle returns the tagged track title, falling back to the base
// file name. Tag errors are not fatal; the title is display-only.
func readTitle(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return filepath.Base(path)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil || m.Title() == "" {
		return filepath.Base(path)
	}
	return m.Title()
}
