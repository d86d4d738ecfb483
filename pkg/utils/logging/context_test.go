package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/appveyor-status/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestWith(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	newCtx := logging.With(ctx, logger)
	retrieved := logging.From(newCtx)
	gt.V(t, retrieved).Equal(logger)
}

func TestFrom(t *testing.T) {
	t.Run("get logger from context with logger", func(t *testing.T) {
		ctx := context.Background()
		logger := slog.Default()
		ctx = logging.With(ctx, logger)

		retrieved := logging.From(ctx)
		gt.V(t, retrieved).Equal(logger)
	})

	t.Run("get logger from context without logger", func(t *testing.T) {
		ctx := context.Background()
		retrieved := logging.From(ctx)
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxSessionID(t *testing.T) {
	t.Run("generate new ID when missing", func(t *testing.T) {
		id, ctx := logging.CtxSessionID(context.Background())
		gt.V(t, id).NotEqual("")

		again, _ := logging.CtxSessionID(ctx)
		gt.V(t, again).Equal(id)
	})

	t.Run("different contexts get different IDs", func(t *testing.T) {
		id1, _ := logging.CtxSessionID(context.Background())
		id2, _ := logging.CtxSessionID(context.Background())
		gt.V(t, id1).NotEqual(id2)
	})
}

func TestWithSession(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := logging.WithSession(logging.With(context.Background(), logger))
	id, _ := logging.CtxSessionID(ctx)

	logging.From(ctx).Info("hello")
	gt.S(t, buf.String()).Contains("session_id=" + id)
}

func TestWithSessionIsIdempotent(t *testing.T) {
	ctx := logging.WithSession(context.Background())
	gt.V(t, logging.WithSession(ctx)).Equal(ctx)
}
