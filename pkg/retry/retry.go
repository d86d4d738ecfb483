// Package retry repeats an operation while its result asks for another attempt.
package retry

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/m-mizutani/appveyor-status/pkg/backoff"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultFactor  = 2
	DefaultInitial = 4 * time.Second
	DefaultMaxWait = 60 * time.Second
	DefaultMinWait = 4 * time.Second

	// Unbounded as the total wait budget disables the deadline.
	Unbounded = time.Duration(-1)
)

type config struct {
	waits    func() (backoff.Sequence, error)
	maxTotal time.Duration
	minWait  time.Duration
	clock    Clock
	err      error
}

type Option func(cfg *config)

// WithWaits uses the given sequence as the source of waits between attempts. It is closed when Do
// returns.
func WithWaits(seq backoff.Sequence) Option {
	return func(cfg *config) {
		if seq == nil {
			cfg.err = goerr.New("wait sequence is nil", goerr.T(types.ErrTagConfiguration))
			return
		}
		cfg.waits = func() (backoff.Sequence, error) { return seq, nil }
	}
}

// WithConstantWait waits d between every attempt.
func WithConstantWait(d time.Duration) Option {
	return func(cfg *config) {
		cfg.waits = func() (backoff.Sequence, error) {
			return backoff.NewConstant(d, backoff.Unbounded)
		}
	}
}

// WithMaxTotal bounds the time spent between the first attempt and the last wait.
func WithMaxTotal(d time.Duration) Option {
	return func(cfg *config) {
		cfg.maxTotal = d
	}
}

// WithMinWait sets the floor below which the remaining budget is not worth another attempt.
func WithMinWait(d time.Duration) Option {
	return func(cfg *config) {
		cfg.minWait = d
	}
}

func WithClock(clock Clock) Option {
	return func(cfg *config) {
		cfg.clock = clock
	}
}

func defaultWaits() (backoff.Sequence, error) {
	return backoff.NewExponential(DefaultFactor, DefaultInitial, DefaultMaxWait, backoff.Unbounded)
}

// Do calls op until shouldRetry reports false for its result, the deadline leaves less than the
// minimum wait, or the wait sequence is exhausted, and returns the last result. An error from op
// ends the loop immediately and is never retried. An interrupted wait returns the last result with
// the error. A nil shouldRetry retries while the result is the zero value.
func Do[T any](ctx context.Context, op func(ctx context.Context) (T, error), shouldRetry func(T) bool, options ...Option) (T, error) {
	var zero T

	cfg := config{
		waits:    defaultWaits,
		maxTotal: Unbounded,
		minWait:  DefaultMinWait,
		clock:    SystemClock{},
	}
	for _, opt := range options {
		opt(&cfg)
	}

	waits, err := cfg.waits()
	if err != nil {
		return zero, err
	}
	defer waits.Close()

	if cfg.err != nil {
		return zero, cfg.err
	}
	if op == nil {
		return zero, goerr.New("operation is nil", goerr.T(types.ErrTagConfiguration))
	}
	if cfg.clock == nil {
		return zero, goerr.New("clock is nil", goerr.T(types.ErrTagConfiguration))
	}
	if shouldRetry == nil {
		shouldRetry = isZero[T]
	}

	bounded := cfg.maxTotal >= 0
	var deadline time.Time
	if bounded {
		deadline = cfg.clock.Now().Add(cfg.maxTotal)
	}

	logger := logging.From(ctx)
	for attempt := 1; ; attempt++ {
		result, err := op(ctx)
		if err != nil {
			return zero, err
		}
		if !shouldRetry(result) {
			return result, nil
		}

		remaining := time.Duration(-1)
		if bounded {
			remaining = deadline.Sub(cfg.clock.Now())
			if remaining < cfg.minWait {
				logger.Debug("retry budget exhausted", "attempt", attempt, "remaining", remaining)
				return result, nil
			}
		}

		wait, ok := waits.Next()
		if !ok {
			logger.Debug("wait sequence exhausted", "attempt", attempt)
			return result, nil
		}
		if remaining >= 0 && wait > remaining {
			wait = remaining
		}

		logger.Debug("waiting before next attempt",
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
		)
		if err := cfg.clock.Sleep(ctx, wait); err != nil {
			return result, goerr.Wrap(err, "interrupted while waiting to retry", goerr.V("attempt", attempt))
		}
	}
}

func isZero[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	return rv.IsZero()
}
