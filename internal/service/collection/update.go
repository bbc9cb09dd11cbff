package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// UpdateInput carries the inputs of Update. Nil pointer fields are left
// unchanged.
type UpdateInput struct {
	ID                 string
	Name               *string
	Description        *string
	Icon               *string
	DefaultPermissions []domain.PermissionGroup
}

// Update edits a collection's attributes. Requires the collection's
// manage_collection_permissions grant or the org-level override. A collection
// the viewer cannot manage reads as absent.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*domain.Collection, error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return nil, fmt.Errorf("update collection: %w", domain.ErrUnauthorized)
	}

	id, err := ids.DecodeNodeIDAs(ids.TagCollection, in.ID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canManage(ctx, v, id)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("collection %d: %w", id, domain.ErrNotFound)
	}

	collection, err := s.collections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "is required")
		}
		collection.Name = *in.Name
	}
	if in.Description != nil {
		collection.Description = *in.Description
	}
	if in.Icon != nil {
		collection.Icon = in.Icon
	}
	if in.DefaultPermissions != nil {
		if err := validatePermissionGroups("defaultPermissions", in.DefaultPermissions); err != nil {
			return nil, err
		}
		collection.DefaultPermissions = in.DefaultPermissions
	}

	updated, err := s.collections.Update(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("update collection: %w", err)
	}

	s.log.InfoContext(ctx, "collection updated",
		slog.Int64("collection_id", updated.ID),
		slog.Int64("user_id", v.UserID()),
	)
	return updated, nil
}
