package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/sitecloner/pkg/domain/types"
)

type (
	ctxRequestIDKey struct{}
	ctxLoggerKey    struct{}
	ctxTimeKey      struct{}
)

// CtxRequestID returns the request ID of ctx. When none is set, a new ID is
// generated and returned together with a context carrying it.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, CtxWithRequestID(ctx, newID)
}

// CtxWithRequestID sets an ID given by the caller, e.g. from X-Request-ID.
func CtxWithRequestID(ctx context.Context, id types.RequestID) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey{}, id)
}

func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns the logger of ctx, or the default logger.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type TimeFunc func() time.Time

// CtxTime returns the current time of ctx. Tests pin it with CtxWithTime.
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}

// InheritContextValues copies the logger, request ID and time function of src
// into dst. Cancellation and deadline of src are not carried over.
func InheritContextValues(dst, src context.Context) context.Context {
	if logger, ok := src.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		dst = With(dst, logger)
	}
	if reqID, ok := src.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		dst = CtxWithRequestID(dst, reqID)
	}
	if timeFunc, ok := src.Value(ctxTimeKey{}).(TimeFunc); ok {
		dst = CtxWithTime(dst, timeFunc)
	}
	return dst
}
