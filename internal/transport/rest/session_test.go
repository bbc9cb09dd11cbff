package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/service/auth"
)

type sessionServiceMock struct {
	LoginWithPasswordFunc func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
}

func (m *sessionServiceMock) LoginWithPassword(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	return m.LoginWithPasswordFunc(ctx, input)
}

func newSessionHandler(svc sessionService) *SessionHandler {
	return NewSessionHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := &sessionServiceMock{
		LoginWithPasswordFunc: func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
			if input.Email != "ops@example.com" || input.Password != "secret" {
				t.Errorf("unexpected input: %+v", input)
			}
			return &auth.LoginResult{
				AccessToken: "signed-token",
				User:        &domain.User{ID: 7, Email: "ops@example.com"},
			}, nil
		},
	}
	h := newSessionHandler(svc)

	body := `{"email":"ops@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AccessToken != "signed-token" {
		t.Errorf("expected access token 'signed-token', got %q", resp.AccessToken)
	}
	if resp.User.Email != "ops@example.com" {
		t.Errorf("expected user email, got %q", resp.User.Email)
	}
	if gotID, err := ids.DecodeNodeIDAs(ids.TagUser, resp.User.ID); err != nil || gotID != 7 {
		t.Errorf("expected encoded user node id for 7, got %q (%v)", resp.User.ID, err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	svc := &sessionServiceMock{
		LoginWithPasswordFunc: func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	h := newSessionHandler(svc)

	body := `{"email":"ops@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestLogin_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &sessionServiceMock{
		LoginWithPasswordFunc: func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
			return nil, domain.NewValidationError("email", "required")
		},
	}
	h := newSessionHandler(svc)

	body := `{"password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	t.Parallel()

	h := newSessionHandler(&sessionServiceMock{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
