package testutil

import (
	"context"
	"sync"
	"time"
)

// Clock is a manual clock for code that waits. Sleep advances the clock instantly and records
// the requested duration.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func NewClock() *Clock {
	return NewClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

// NewClockAt returns a clock whose time starts at now.
func NewClockAt(now time.Time) *Clock {
	return &Clock{now: now}
}

func (x *Clock) Now() time.Time {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.now
}

func (x *Clock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	x.sleeps = append(x.sleeps, d)
	x.now = x.now.Add(d)
	return nil
}

// Sleeps returns the durations passed to Sleep so far.
func (x *Clock) Sleeps() []time.Duration {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]time.Duration{}, x.sleeps...)
}

// Elapsed is the sum of all sleeps.
func (x *Clock) Elapsed() time.Duration {
	var total time.Duration
	for _, d := range x.Sleeps() {
		total += d
	}
	return total
}
