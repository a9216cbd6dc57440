package logger

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ContextLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return NewContextLogger(zap.New(core).Sugar()), logs
}

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req_42")
	if got := RequestID(ctx); got != "req_42" {
		t.Errorf("RequestID() = %q, want req_42", got)
	}
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() on bare context = %q, want empty", got)
	}
}

func TestContextLogger_AttachesRequestID(t *testing.T) {
	cl, logs := newObservedLogger()
	ctx := WithRequestID(context.Background(), "req_7")

	cl.With(ctx).Infow("stored build")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req_7" {
		t.Errorf("request_id field = %v, want req_7", fields["request_id"])
	}
}

func TestContextLogger_BareContextAddsNothing(t *testing.T) {
	cl, logs := newObservedLogger()

	cl.With(context.Background()).Infow("plain entry")

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["request_id"]; ok {
		t.Error("request_id attached without one on the context")
	}
	if _, ok := fields["trace_id"]; ok {
		t.Error("trace_id attached without an active span")
	}
}

func TestContextLogger_RequestCompleted(t *testing.T) {
	cl, logs := newObservedLogger()

	ctx := WithRequestID(context.Background(), "req_9")
	cl.RequestCompleted(ctx, "POST", "/api/v1/builds", 201, 15*time.Millisecond)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "POST" {
		t.Errorf("method field = %v, want POST", fields["method"])
	}
	if fields["path"] != "/api/v1/builds" {
		t.Errorf("path field = %v", fields["path"])
	}
	if fields["status"] != int64(201) {
		t.Errorf("status field = %v, want 201", fields["status"])
	}
	if fields["duration_ms"] != int64(15) {
		t.Errorf("duration_ms field = %v, want 15", fields["duration_ms"])
	}
}
