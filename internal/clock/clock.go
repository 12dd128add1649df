// Package clock provides the time source used by controllers and the control loop.
// Production code uses the system clock, tests and offline simulations use a
// manually advanced clock so that every time delta is known in advance.
package clock

import (
	"context"
	"sync"
	"time"
)

type Clock interface {
	// Now returns the current time of this clock
	Now() time.Time
	// Sleep blocks for the given duration or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

// System is backed by the wall clock
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

func (System) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Manual only moves forward when told to. Sleep advances the clock
// instantly, which turns a paced loop into a virtual-time simulation.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

func (m *Manual) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d > 0 {
		m.Advance(d)
	}
	return nil
}
