package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxSessionIDKey struct{}

// CtxSessionID returns the query session ID from context. If it is not set, a new ID is generated
// and returned with a context holding it.
func CtxSessionID(ctx context.Context) (string, context.Context) {
	if id, ok := ctx.Value(ctxSessionIDKey{}).(string); ok {
		return id, ctx
	}

	newID := uuid.NewString()
	return newID, context.WithValue(ctx, ctxSessionIDKey{}, newID)
}

// SessionID returns the query session ID if ctx has one.
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxSessionIDKey{}).(string)
	return id, ok
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

// WithSession attaches a new session ID to ctx and binds it to the context logger. A context that
// already has a session is returned as is.
func WithSession(ctx context.Context) context.Context {
	if _, ok := SessionID(ctx); ok {
		return ctx
	}
	id, ctx := CtxSessionID(ctx)
	return With(ctx, From(ctx).With(slog.String("session_id", id)))
}
