package clock

import "time"

// Mock is a test double for Clock. Time only moves when the test says so.
type Mock struct {
	now time.Time
}

// NewMock creates a mock clock at a fixed arbitrary instant.
func NewMock() *Mock {
	return &Mock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (m *Mock) Now() time.Time { return m.now }

// Advance moves the clock forward by d.
func (m *Mock) Advance(d time.Duration) { m.now = m.now.Add(d) }

// Set moves the clock to t.
func (m *Mock) Set(t time.Time) { m.now = t }

// Verify Mock implements Clock at compile time.
var _ Clock = (*Mock)(nil)
