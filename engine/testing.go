package engine

import "time"

// testEpoch is the fixed start time used by deterministic worlds
var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestWorld creates a world on a mock clock for deterministic tests
// Returns the world and the mock provider driving its game time
func NewTestWorld() (*World, *MockTimeProvider) {
	mock := NewMockTimeProvider(testEpoch)
	return NewWorldWithClock(NewPausableClockWithProvider(mock)), mock
}
