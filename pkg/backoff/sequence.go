// Package backoff provides lazily evaluated sequences of wait durations.
package backoff

import (
	"math"
	"time"

	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// Unbounded as a count makes a sequence infinite.
	Unbounded = -1

	// NoLimit as a maximum leaves an exponential sequence uncapped.
	NoLimit = time.Duration(math.MaxInt64)
)

// Sequence yields wait durations one at a time. A consumer that stops before Next reports
// exhaustion must call Close. Close is idempotent and Next reports exhaustion after it.
type Sequence interface {
	Next() (time.Duration, bool)
	Close()
}

func validateCount(count int) error {
	if count < Unbounded {
		return goerr.New("count must be non-negative or Unbounded",
			goerr.V("count", count),
			goerr.T(types.ErrTagConfiguration),
		)
	}
	return nil
}

// counter tracks how many values a bounded sequence may still produce.
type counter struct {
	remaining int
	closed    bool
}

func (x *counter) take() bool {
	if x.closed || x.remaining == 0 {
		return false
	}
	if x.remaining > 0 {
		x.remaining--
	}
	return true
}

func (x *counter) Close() {
	x.closed = true
}

// Exponential yields initial, initial*factor, initial*factor^2, ... each capped at max.
type Exponential struct {
	counter
	factor  float64
	max     float64
	current float64
}

// NewExponential creates a sequence whose first value is min(initial, max) and whose every next
// value is min(previous*factor, max). The arithmetic is done in float64 nanoseconds, so a negative
// factor alternates the sign and a NaN or infinite factor propagates.
func NewExponential(factor float64, initial, max time.Duration, count int) (*Exponential, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	maxValue := float64(max)
	if max == NoLimit {
		maxValue = math.Inf(1)
	}

	return &Exponential{
		counter: counter{remaining: count},
		factor:  factor,
		max:     maxValue,
		current: math.Min(float64(initial), maxValue),
	}, nil
}

func (x *Exponential) Next() (time.Duration, bool) {
	if !x.take() {
		return 0, false
	}
	v := x.current
	x.current = math.Min(x.current*x.factor, x.max)
	return toDuration(v), true
}

// Constant yields the same value count times.
type Constant struct {
	counter
	value time.Duration
}

func NewConstant(value time.Duration, count int) (*Constant, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}
	return &Constant{counter: counter{remaining: count}, value: value}, nil
}

func (x *Constant) Next() (time.Duration, bool) {
	if !x.take() {
		return 0, false
	}
	return x.value, true
}

type sliceSequence struct {
	values []time.Duration
	closed bool
}

// Slice yields the given values in order.
func Slice(values ...time.Duration) Sequence {
	copied := make([]time.Duration, len(values))
	copy(copied, values)
	return &sliceSequence{values: copied}
}

func (x *sliceSequence) Next() (time.Duration, bool) {
	if x.closed || len(x.values) == 0 {
		return 0, false
	}
	v := x.values[0]
	x.values = x.values[1:]
	return v, true
}

func (x *sliceSequence) Close() {
	x.closed = true
	x.values = nil
}

type funcSequence struct {
	next    func() (time.Duration, bool)
	release func()
	done    bool
}

// FromFunc adapts a generator function. release, if not nil, runs exactly once: when next reports
// exhaustion or when the consumer closes the sequence early.
func FromFunc(next func() (time.Duration, bool), release func()) Sequence {
	return &funcSequence{next: next, release: release}
}

func (x *funcSequence) Next() (time.Duration, bool) {
	if x.done {
		return 0, false
	}
	v, ok := x.next()
	if !ok {
		x.Close()
		return 0, false
	}
	return v, true
}

func (x *funcSequence) Close() {
	if x.done {
		return
	}
	x.done = true
	if x.release != nil {
		x.release()
	}
}

// toDuration saturates out of range values. NaN has no duration and becomes zero.
func toDuration(v float64) time.Duration {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case v <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(v)
}
