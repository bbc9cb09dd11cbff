package ctxutil

import (
	"context"
	"testing"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/viewer"
)

func TestWithViewer_And_ViewerFromCtx(t *testing.T) {
	t.Parallel()

	v := viewer.New(&domain.User{ID: 7, OrganizationID: 1}, []int64{3})
	ctx := WithViewer(context.Background(), v)

	got := ViewerFromCtx(ctx)
	if got != v {
		t.Fatalf("expected the stored viewer, got %v", got)
	}
	if !got.Authenticated() {
		t.Fatal("expected stored viewer to be authenticated")
	}
}

func TestViewerFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got := ViewerFromCtx(context.Background())
	if got != nil {
		t.Fatalf("expected nil viewer, got %v", got)
	}
	if got.Authenticated() {
		t.Fatal("expected nil viewer to read as anonymous")
	}
}

func TestViewerFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("viewer"), "not-a-viewer")

	got := ViewerFromCtx(ctx)
	if got != nil {
		t.Fatalf("expected nil viewer, got %v", got)
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
