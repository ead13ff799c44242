// Package clock provides the time source consumed by the LWW element graph.
//
// Every local mutation stamps a new element with Clock.Now(). The graph never
// generates time itself, so replicas can share a wall clock in production and
// a Manual clock in tests or simulations.
package clock

import (
	"sync"
	"time"
)

// Clock produces the current instant on demand.
type Clock interface {
	Now() time.Time
}

// System is the wall clock. Instants are reported in UTC.
type System struct{}

// Now returns time.Now in UTC.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// DefaultStep is the increment used by Manual.Tick when no step was set.
const DefaultStep = time.Millisecond

// Manual is a settable clock. It never moves on its own.
// Safe for concurrent use.
type Manual struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewManual returns a Manual clock positioned at start.
// A non-positive step falls back to DefaultStep.
func NewManual(start time.Time, step time.Duration) *Manual {
	if step <= 0 {
		step = DefaultStep
	}

	return &Manual{now: start, step: step}
}

// Now returns the current instant without advancing it.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

// Set moves the clock to t, backwards or forwards.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new instant.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)

	return m.now
}

// Tick advances by the configured step and returns the new instant.
func (m *Manual) Tick() time.Time {
	return m.Advance(m.step)
}

// Ticking wraps a Manual clock so that every Now call first advances it by
// one step. Useful when a sequence of local mutations must carry strictly
// increasing timestamps.
type Ticking struct {
	*Manual
}

// Now advances the wrapped clock by one step and returns the new instant.
func (t Ticking) Now() time.Time {
	return t.Manual.Tick()
}
