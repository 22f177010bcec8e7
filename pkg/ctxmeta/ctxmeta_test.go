package ctxmeta_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Gunvolt24/pos_printer/pkg/ctxmeta"
)

func TestWithRequestID_PutAndGet(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithRequestID(parent, "req-123")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-123" {
		t.Fatalf("want ok=true, id=req-123; got ok=%v id=%q", ok, got)
	}

	// Родитель не должен содержать request_id
	if _, parentOk := ctxmeta.RequestIDFromContext(parent); parentOk {
		t.Fatalf("parent context must not contain request_id")
	}
}

func TestWithRequestID_EmptyID_NoChange(t *testing.T) {
	parent := context.Background()
	ctx := ctxmeta.WithRequestID(parent, "")
	if ctx != parent {
		t.Fatalf("WithRequestID with empty id must return the same ctx")
	}
}

func TestWithRequestID_NilCtx(t *testing.T) {
	var nilCtx context.Context
	ctx := ctxmeta.WithRequestID(nilCtx, "req-1")
	if ctx != nil {
		t.Fatalf("WithRequestID(nil, ...) must return nil")
	}
	id, ok := ctxmeta.RequestIDFromContext(context.Background())
	if ok || id != "" {
		t.Fatalf("RequestIDFromContext(nil) must be empty/false, got id=%q ok=%v", id, ok)
	}
}

func TestRequestIDFromContext_NoValue(t *testing.T) {
	id, ok := ctxmeta.RequestIDFromContext(context.Background())
	if ok || id != "" {
		t.Fatalf("empty ctx must return empty/false, got id=%q ok=%v", id, ok)
	}
}

func TestRequestIDFromContext_EmptyStoredValue(t *testing.T) {
	// Даже если ключ верный, пустое значение считаем отсутствующим
	ctx := context.WithValue(context.Background(), ctxmeta.KeyRequestID, "")
	id, ok := ctxmeta.RequestIDFromContext(ctx)
	if ok || id != "" {
		t.Fatalf("empty stored value must be treated as absent, got id=%q ok=%v", id, ok)
	}
}

func TestRequestIDFromContext_StringKeyDoesNotWork(t *testing.T) {
	type otherKey struct{}
	// Кладём по строковому ключу — не должен доставаться,
	// т.к. библиотека использует собственный тип ключа (ctxKey)
	ctx := context.WithValue(context.Background(), otherKey{}, "req-xyz")
	id, ok := ctxmeta.RequestIDFromContext(ctx)
	if ok || id != "" {
		t.Fatalf("string key must not be recognized, got id=%q ok=%v", id, ok)
	}
}

func TestOrderIDAndRole_PutAndGet(t *testing.T) {
	ctx := ctxmeta.WithRole(ctxmeta.WithOrderID(context.Background(), "abc123"), "kitchen")

	if id, ok := ctxmeta.OrderIDFromContext(ctx); !ok || id != "abc123" {
		t.Fatalf("order id: got ok=%v id=%q", ok, id)
	}
	if role, ok := ctxmeta.RoleFromContext(ctx); !ok || role != "kitchen" {
		t.Fatalf("role: got ok=%v role=%q", ok, role)
	}
	// ключи не пересекаются с request_id
	if _, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		t.Fatalf("request_id must be absent")
	}
}

func TestWithOrderID_EmptyID_NoChange(t *testing.T) {
	parent := context.Background()
	if ctx := ctxmeta.WithOrderID(parent, ""); ctx != parent {
		t.Fatalf("WithOrderID with empty id must return the same ctx")
	}
}

func TestEnsureRequestID(t *testing.T) {
	ctx, id := ctxmeta.EnsureRequestID(context.Background(), "till-7:42")
	if id != "till-7:42" {
		t.Fatalf("valid candidate must be kept, got %q", id)
	}
	if got, _ := ctxmeta.RequestIDFromContext(ctx); got != id {
		t.Fatalf("ctx request id=%q, want %q", got, id)
	}

	for _, bad := range []string{"", "has space", "line\nbreak", "кириллица", strings.Repeat("x", ctxmeta.MaxRequestIDLen+1)} {
		_, id := ctxmeta.EnsureRequestID(context.Background(), bad)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("candidate %q must be replaced by uuid, got %q", bad, id)
		}
	}
}
