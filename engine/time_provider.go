package engine

import "time"

// TimeProvider abstracts the wall clock so time-dependent pieces can be
// tested with a controllable source.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns the real system time with monotonic
// clock readings.
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a real time provider.
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading.
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a controllable time source for tests. Like the
// world it is goroutine-confined and carries no synchronization.
type MockTimeProvider struct {
	currentTime time.Time
}

// NewMockTimeProvider creates a mock provider starting at startTime.
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the current mocked time.
func (m *MockTimeProvider) Now() time.Time {
	return m.currentTime
}

// SetTime sets the current mocked time.
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.currentTime = t
}

// Advance moves the mocked time forward by d.
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.currentTime = m.currentTime.Add(d)
}
