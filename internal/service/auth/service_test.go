package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg auth . userRepo jwtManager

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func hashPassword(t *testing.T, password string) *string {
	t.Helper()
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(digest)
	return &s
}

func testUser(t *testing.T) *domain.User {
	return &domain.User{
		ID:             7,
		OrganizationID: 1,
		Email:          "ops@example.com",
		PasswordDigest: hashPassword(t, "correct horse"),
	}
}

// ---------------------------------------------------------------------------
// LoginWithPassword
// ---------------------------------------------------------------------------

func TestLoginWithPassword_Success(t *testing.T) {
	t.Parallel()

	user := testUser(t)
	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			assert.Equal(t, "ops@example.com", email)
			return user, nil
		},
	}
	jwt := &jwtManagerMock{
		GenerateAccessTokenFunc: func(userID int64) (string, error) {
			assert.Equal(t, int64(7), userID)
			return "signed-token", nil
		},
	}
	svc := NewService(testLogger(), users, jwt)

	result, err := svc.LoginWithPassword(context.Background(), LoginInput{
		Email:    "  ops@example.com ", // whitespace is trimmed before lookup
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.AccessToken)
	assert.Equal(t, user, result.User)
}

func TestLoginWithPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return testUser(t), nil
		},
	}
	svc := NewService(testLogger(), users, &jwtManagerMock{})

	_, err := svc.LoginWithPassword(context.Background(), LoginInput{
		Email:    "ops@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginWithPassword_UnknownEmail(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(testLogger(), users, &jwtManagerMock{})

	_, err := svc.LoginWithPassword(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	// Indistinguishable from a wrong password.
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginWithPassword_NoPasswordDigest(t *testing.T) {
	t.Parallel()

	user := testUser(t)
	user.PasswordDigest = nil
	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return user, nil
		},
	}
	svc := NewService(testLogger(), users, &jwtManagerMock{})

	_, err := svc.LoginWithPassword(context.Background(), LoginInput{
		Email:    "ops@example.com",
		Password: "correct horse",
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginWithPassword_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &userRepoMock{}, &jwtManagerMock{})

	_, err := svc.LoginWithPassword(context.Background(), LoginInput{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 2)
}

// ---------------------------------------------------------------------------
// ViewerFromToken
// ---------------------------------------------------------------------------

func TestViewerFromToken_Success(t *testing.T) {
	t.Parallel()

	user := testUser(t)
	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			assert.Equal(t, int64(7), id)
			return user, nil
		},
		GroupIDsFunc: func(ctx context.Context, userID int64) ([]int64, error) {
			return []int64{3, 9}, nil
		},
	}
	jwt := &jwtManagerMock{
		ValidateAccessTokenFunc: func(token string) (int64, error) {
			assert.Equal(t, "signed-token", token)
			return 7, nil
		},
	}
	svc := NewService(testLogger(), users, jwt)

	v, err := svc.ViewerFromToken(context.Background(), "signed-token")
	require.NoError(t, err)
	assert.Equal(t, user, v.User)
	assert.Equal(t, []int64{3, 9}, v.GroupIDs)
}

func TestViewerFromToken_InvalidToken(t *testing.T) {
	t.Parallel()

	jwt := &jwtManagerMock{
		ValidateAccessTokenFunc: func(token string) (int64, error) {
			return 0, assert.AnError
		},
	}
	svc := NewService(testLogger(), &userRepoMock{}, jwt)

	_, err := svc.ViewerFromToken(context.Background(), "garbage")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestViewerFromToken_DeletedUser(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}
	jwt := &jwtManagerMock{
		ValidateAccessTokenFunc: func(token string) (int64, error) { return 7, nil },
	}
	svc := NewService(testLogger(), users, jwt)

	_, err := svc.ViewerFromToken(context.Background(), "signed-token")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
