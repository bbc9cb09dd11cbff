package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/viewer"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

//go:generate moq -out viewer_loader_mock_test.go -pkg middleware . viewerLoader

func TestAuth_ValidToken(t *testing.T) {
	user := &domain.User{ID: 7, OrganizationID: 1, Email: "ops@example.com"}
	loader := &viewerLoaderMock{
		ViewerFromTokenFunc: func(ctx context.Context, token string) (*viewer.Viewer, error) {
			if token == "valid-token" {
				return viewer.New(user, []int64{3}), nil
			}
			return nil, errors.New("invalid token")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := ctxutil.ViewerFromCtx(r.Context())
		if !v.Authenticated() {
			t.Error("expected viewer in context")
			return
		}
		if v.UserID() != user.ID {
			t.Errorf("expected userID %d, got %d", user.ID, v.UserID())
		}
		w.WriteHeader(http.StatusOK)
	})

	middleware := Auth(loader)
	wrappedHandler := middleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	loader := &viewerLoaderMock{
		ViewerFromTokenFunc: func(ctx context.Context, token string) (*viewer.Viewer, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for invalid token")
	})

	middleware := Auth(loader)
	wrappedHandler := middleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuth_NoAuthHeader(t *testing.T) {
	loader := &viewerLoaderMock{
		ViewerFromTokenFunc: func(ctx context.Context, token string) (*viewer.Viewer, error) {
			t.Error("ViewerFromToken should not be called when no header present")
			return nil, errors.New("should not be called")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctxutil.ViewerFromCtx(r.Context()).Authenticated() {
			t.Error("expected no viewer in context for anonymous request")
		}
		w.WriteHeader(http.StatusOK)
	})

	middleware := Auth(loader)
	wrappedHandler := middleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	if len(loader.ViewerFromTokenCalls()) > 0 {
		t.Error("ViewerFromToken should not be called for anonymous request")
	}
}

func TestAuth_NonBearerToken(t *testing.T) {
	loader := &viewerLoaderMock{
		ViewerFromTokenFunc: func(ctx context.Context, token string) (*viewer.Viewer, error) {
			t.Error("ViewerFromToken should not be called for non-Bearer auth")
			return nil, errors.New("should not be called")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctxutil.ViewerFromCtx(r.Context()).Authenticated() {
			t.Error("expected no viewer in context for non-Bearer auth")
		}
		w.WriteHeader(http.StatusOK)
	})

	middleware := Auth(loader)
	wrappedHandler := middleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	if len(loader.ViewerFromTokenCalls()) > 0 {
		t.Error("ViewerFromToken should not be called for non-Bearer auth")
	}
}

func TestExtractBearerToken_Cases(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"bearer with token", "Bearer valid-token", "valid-token"},
		{"basic auth", "Basic dXNlcjpwYXNz", ""},
		{"bearer no space", "Bearertoken", ""},
		{"just bearer", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			got := extractBearerToken(req)
			if got != tc.want {
				t.Errorf("extractBearerToken(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestRequireOrgAdmin(t *testing.T) {
	admin := &domain.User{ID: 1, IsOrganizationAdmin: true}
	member := &domain.User{ID: 2}

	if err := RequireOrgAdmin(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for anonymous context, got %v", err)
	}

	memberCtx := ctxutil.WithViewer(context.Background(), viewer.New(member, nil))
	if err := RequireOrgAdmin(memberCtx); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for member, got %v", err)
	}

	adminCtx := ctxutil.WithViewer(context.Background(), viewer.New(admin, nil))
	if err := RequireOrgAdmin(adminCtx); err != nil {
		t.Errorf("expected nil for org admin, got %v", err)
	}
}
