package ctxutil

import (
	"context"
	"testing"
)

func TestWithSessionID_And_SessionIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithSessionID(context.Background(), "sess-1")

	got, ok := SessionIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for stored session id")
	}
	if got != "sess-1" {
		t.Fatalf("expected sess-1, got %s", got)
	}
}

func TestSessionIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := SessionIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestSessionIDFromCtx_EmptyValue(t *testing.T) {
	t.Parallel()

	if _, ok := SessionIDFromCtx(WithSessionID(context.Background(), "")); ok {
		t.Fatal("expected ok=false for empty session id")
	}
}

func TestSessionIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("session_id"), 42)

	if _, ok := SessionIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got := RequestIDFromCtx(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 12345)

	got := RequestIDFromCtx(ctx)
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}
