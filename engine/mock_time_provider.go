package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually driven TimeProvider for tests
type MockTimeProvider struct {
	epoch  time.Time
	offset atomic.Int64 // nanoseconds since epoch
}

// NewMockTimeProvider starts the mock clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{epoch: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.epoch.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.epoch)))
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}
