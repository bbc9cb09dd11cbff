package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// Archive soft-deletes a collection. Its tools and workflows keep their
// rows; they simply stop being listed. Archiving an archived collection is a
// no-op.
func (s *Service) Archive(ctx context.Context, nodeID string) (*domain.Collection, error) {
	return s.setArchived(ctx, nodeID, true)
}

// Unarchive reverses Archive.
func (s *Service) Unarchive(ctx context.Context, nodeID string) (*domain.Collection, error) {
	return s.setArchived(ctx, nodeID, false)
}

func (s *Service) setArchived(ctx context.Context, nodeID string, archived bool) (*domain.Collection, error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return nil, fmt.Errorf("archive collection: %w", domain.ErrUnauthorized)
	}

	id, err := ids.DecodeNodeIDAs(ids.TagCollection, nodeID)
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
	if collection.IsArchived == archived {
		return collection, nil
	}

	collection.IsArchived = archived
	updated, err := s.collections.Update(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("archive collection: %w", err)
	}

	s.log.InfoContext(ctx, "collection archive state changed",
		slog.Int64("collection_id", updated.ID),
		slog.Bool("archived", archived),
		slog.Int64("user_id", v.UserID()),
	)
	return updated, nil
}
