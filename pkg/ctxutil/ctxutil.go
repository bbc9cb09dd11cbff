package ctxutil

import (
	"context"

	"github.com/michaelschade/kenchi-sub000/internal/viewer"
)

type ctxKey string

const (
	viewerKey    ctxKey = "viewer"
	requestIDKey ctxKey = "request_id"
)

// WithViewer stores the request-scoped viewer in the context.
func WithViewer(ctx context.Context, v *viewer.Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, v)
}

// ViewerFromCtx extracts the viewer from the context. Returns nil when the
// request is anonymous; callers treat nil as unauthenticated, never as an
// error.
func ViewerFromCtx(ctx context.Context) *viewer.Viewer {
	v, _ := ctx.Value(viewerKey).(*viewer.Viewer)
	return v
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
