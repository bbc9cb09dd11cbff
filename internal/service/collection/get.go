package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// Get returns one collection by external node id, subject to visibility.
// Collections the viewer cannot see read as absent.
func (s *Service) Get(ctx context.Context, nodeID string) (*domain.Collection, error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return nil, fmt.Errorf("get collection: %w", domain.ErrUnauthorized)
	}

	id, err := ids.DecodeNodeIDAs(ids.TagCollection, nodeID)
	if err != nil {
		return nil, err
	}

	visible, err := s.perms.HasCollectionPermission(ctx, v, id, domain.PermissionSeeCollection)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, fmt.Errorf("collection %d: %w", id, domain.ErrNotFound)
	}

	return s.collections.GetByID(ctx, id)
}

// List returns the collections of the viewer's organization the viewer may
// see. Archived collections are included only on request.
func (s *Service) List(ctx context.Context, includeArchived bool) ([]domain.Collection, error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return nil, fmt.Errorf("list collections: %w", domain.ErrUnauthorized)
	}

	all, err := s.collections.ListByOrganization(ctx, v.OrganizationID(), includeArchived)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Collection, 0, len(all))
	for _, c := range all {
		ok, err := s.perms.HasCollectionPermission(ctx, v, c.ID, domain.PermissionSeeCollection)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if ok {
			visible = append(visible, c)
		}
	}
	return visible, nil
}
