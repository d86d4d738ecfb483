package testutil_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/appveyor-status/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Run("Returns value when env var is set", func(t *testing.T) {
		key := "TEST_ENV_VAR_SET"
		expected := "test_value"
		t.Setenv(key, expected)

		value := testutil.GetEnvOrSkip(t, key)
		gt.V(t, value).Equal(expected)
	})
}

func TestClock(t *testing.T) {
	clock := testutil.NewClock()
	start := clock.Now()

	gt.NoError(t, clock.Sleep(context.Background(), 4*time.Second))
	gt.NoError(t, clock.Sleep(context.Background(), time.Second))

	gt.V(t, clock.Now().Sub(start)).Equal(5 * time.Second)
	gt.V(t, clock.Sleeps()).Equal([]time.Duration{4 * time.Second, time.Second})
	gt.V(t, clock.Elapsed()).Equal(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gt.True(t, errors.Is(clock.Sleep(ctx, time.Second), context.Canceled))
	gt.A(t, clock.Sleeps()).Length(2)
}
