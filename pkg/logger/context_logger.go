package logger

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID stores the request id for retrieval by ContextLogger.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request id stored on the context, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ContextLogger decorates log entries with the request id and, when
// tracing is on, the active trace id, so one request can be followed
// across log lines and spans.
type ContextLogger struct {
	base *zap.SugaredLogger
}

func NewContextLogger(base *zap.SugaredLogger) *ContextLogger {
	return &ContextLogger{base: base}
}

// With returns the base logger enriched with whatever correlation ids
// the context carries.
func (cl *ContextLogger) With(ctx context.Context) *zap.SugaredLogger {
	log := cl.base
	if id := RequestID(ctx); id != "" {
		log = log.With("request_id", id)
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		log = log.With("trace_id", sc.TraceID().String())
	}
	return log
}

// RequestCompleted logs one line per finished HTTP request.
func (cl *ContextLogger) RequestCompleted(ctx context.Context, method, path string, status int, duration time.Duration) {
	cl.With(ctx).Infow("request completed",
		"method", method,
		"path", path,
		"status", status,
		"duration_ms", duration.Milliseconds(),
	)
}
