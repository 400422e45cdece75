package loop

import (
	"sync"
	"time"
)

// Clock is the time source of the loop
type Clock interface {
	Now() time.Time

	// After waits for the duration and then sends the current time
	After(d time.Duration) <-chan time.Time
}

// SystemClock reads the wall clock with its monotonic component
type SystemClock struct{}

// Now returns time.Now
func (SystemClock) Now() time.Time {
	return time.Now()
}

// After returns time.After
func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// ManualClock provides a controllable time source for testing. After
// advances the clock by the requested duration and fires immediately.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

// NewManualClock creates a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current mocked time
func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// After advances the clock by d, records the sleep and fires at once
func (m *ManualClock) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.sleeps = append(m.sleeps, d)
	now := m.now
	m.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

// Sleeps returns every duration passed to After so far
func (m *ManualClock) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.sleeps...)
}
