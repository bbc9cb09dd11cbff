package middleware

import (
	"context"
	"sync"

	"github.com/michaelschade/kenchi-sub000/internal/viewer"
)

var _ viewerLoader = &viewerLoaderMock{}

type viewerLoaderMock struct {
	ViewerFromTokenFunc func(ctx context.Context, token string) (*viewer.Viewer, error)

	calls struct {
		ViewerFromToken []struct {
			Token string
		}
	}
	lockViewerFromToken sync.RWMutex
}

func (mock *viewerLoaderMock) ViewerFromToken(ctx context.Context, token string) (*viewer.Viewer, error) {
	if mock.ViewerFromTokenFunc == nil {
		panic("viewerLoaderMock.ViewerFromTokenFunc: method is nil but viewerLoader.ViewerFromToken was just called")
	}
	mock.lockViewerFromToken.Lock()
	mock.calls.ViewerFromToken = append(mock.calls.ViewerFromToken, struct{ Token string }{Token: token})
	mock.lockViewerFromToken.Unlock()
	return mock.ViewerFromTokenFunc(ctx, token)
}

func (mock *viewerLoaderMock) ViewerFromTokenCalls() []struct {
	Token string
} {
	mock.lockViewerFromToken.RLock()
	calls := mock.calls.ViewerFromToken
	mock.lockViewerFromToken.RUnlock()
	return calls
}
