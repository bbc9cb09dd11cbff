package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/viewer"
)

// ViewerFromToken resolves an access token into the acting viewer: it
// validates the token, loads the user row and the user's group memberships.
// Returns ErrUnauthorized for any token that does not map to a live user.
func (s *Service) ViewerFromToken(ctx context.Context, token string) (*viewer.Viewer, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Token outlived the account.
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.ViewerFromToken get user: %w", err)
	}

	groupIDs, err := s.users.GroupIDs(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.ViewerFromToken load groups: %w", err)
	}

	return viewer.New(user, groupIDs), nil
}
