package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/michaelschade/kenchi-sub000/internal/viewer"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

type viewerLoader interface {
	ViewerFromToken(ctx context.Context, token string) (*viewer.Viewer, error)
}

// Auth resolves the bearer token into a viewer and stores it on the request
// context. Requests without an Authorization header pass through anonymously;
// requests with an invalid token are rejected with 401.
func Auth(loader viewerLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			v, err := loader.ViewerFromToken(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithViewer(r.Context(), v)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
