package logging_test

import (
	"path/filepath"
	"testing"

	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestConfigure(t *testing.T) {
	t.Run("configure with json format to stderr", func(t *testing.T) {
		gt.NoError(t, logging.Configure("json", "info", "stderr"))
	})

	t.Run("configure with text format to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.log")
		gt.NoError(t, logging.Configure("text", "debug", path))
		logging.Default().Debug("written to file")
	})

	t.Run("configure with invalid format returns error", func(t *testing.T) {
		err := logging.Configure("invalid", "info", "stderr")
		gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
	})

	t.Run("configure with invalid level returns error", func(t *testing.T) {
		err := logging.Configure("json", "invalid", "stderr")
		gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
	})

	gt.NoError(t, logging.Configure("text", "warn", "stderr"))
}

func TestShiftLevel(t *testing.T) {
	testCases := []struct {
		name   string
		level  string
		delta  int
		expect string
	}{
		{name: "no change", level: "warn", delta: 0, expect: "warn"},
		{name: "one verbose", level: "warn", delta: -1, expect: "info"},
		{name: "clamped at debug", level: "warn", delta: -5, expect: "debug"},
		{name: "one quiet", level: "warn", delta: 1, expect: "error"},
		{name: "clamped at error", level: "info", delta: 9, expect: "error"},
		{name: "unknown level", level: "trace", delta: 1, expect: "trace"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, logging.ShiftLevel(tc.level, tc.delta)).Equal(tc.expect)
		})
	}
}
