package loader

import "github.com/avessier/chime/internal/source"

// Mock is a test double for Loader.
type Mock struct {
	Handle       *Handle
	Err          error
	ResolveCalls []string
}

func (m *Mock) Resolve(path string, _ source.Format) (*Handle, error) {
	m.ResolveCalls = append(m.ResolveCalls, path)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Handle, nil
}

// Verify Mock implements Loader at compile time.
var _ Loader = (*Mock)(nil)
