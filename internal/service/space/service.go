// Package space exposes the versioned, org-scoped space operations.
package space

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/observe"
	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// Service wraps the versioning engine instantiated for spaces.
type Service struct {
	log    *slog.Logger
	store  versioning.Store[*domain.Space]
	engine *versioning.Engine[*domain.Space]
}

// NewService creates the space service.
func NewService(
	log *slog.Logger,
	store versioning.Store[*domain.Space],
	perms versioning.PermissionOracle,
	tx versioning.TxManager,
	sink observe.Sink,
) *Service {
	return &Service{
		log:    log.With("service", "space"),
		store:  store,
		engine: versioning.NewEngine(log, spaceKind{}, store, perms, tx, sink),
	}
}

// Create births a new space in the viewer's organization.
func (s *Service) Create(ctx context.Context, in versioning.CreateInput) (versioning.Result[*domain.Space], error) {
	return s.engine.Create(ctx, in)
}

// Update supersedes the latest version of a space lineage.
func (s *Service) Update(ctx context.Context, in versioning.UpdateInput) (versioning.Result[*domain.Space], error) {
	return s.engine.Update(ctx, in)
}

// Merge folds a draft or suggestion into the published lineage.
func (s *Service) Merge(ctx context.Context, in versioning.MergeInput) (versioning.Result[*domain.Space], error) {
	return s.engine.Merge(ctx, in)
}

// Delete archives the latest row of a lineage.
func (s *Service) Delete(ctx context.Context, nodeID string) (versioning.Result[*domain.Space], error) {
	return s.engine.Delete(ctx, nodeID)
}

// Restore un-archives the latest row of a lineage.
func (s *Service) Restore(ctx context.Context, nodeID string) (versioning.Result[*domain.Space], error) {
	return s.engine.Restore(ctx, nodeID)
}

// Get returns one physical row by external node id, subject to visibility.
func (s *Service) Get(ctx context.Context, nodeID string) (*domain.Space, error) {
	id, err := ids.DecodeNodeIDAs(ids.PrefixSpace, nodeID)
	if err != nil {
		return nil, err
	}

	row, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	visible, err := s.engine.CanView(ctx, ctxutil.ViewerFromCtx(ctx), row)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, fmt.Errorf("space %d: %w", id, domain.ErrNotFound)
	}

	return row, nil
}

// ListLatest returns the active published spaces of the viewer's
// organization.
func (s *Service) ListLatest(ctx context.Context) ([]*domain.Space, error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return nil, fmt.Errorf("listing spaces: %w", domain.ErrUnauthorized)
	}

	return s.store.FindMany(ctx, versioning.Filter{
		OrganizationID: ptrInt64(v.OrganizationID()),
		BranchType:     branchTypePtr(domain.BranchTypePublished),
		IsLatest:       boolPtr(true),
		IsArchived:     boolPtr(false),
	})
}

// ListVersions returns the version history of one lineage, newest first.
// Rows outside the viewer's organization are filtered out.
func (s *Service) ListVersions(ctx context.Context, staticID string, limit int) ([]*domain.Space, error) {
	if ids.Prefix(staticID) != ids.PrefixSpace {
		return nil, fmt.Errorf("static id %q: %w", staticID, domain.ErrNotFound)
	}

	rows, err := s.store.FindMany(ctx, versioning.Filter{
		StaticID:      &staticID,
		OrderByIDDesc: true,
		Limit:         limit,
	})
	if err != nil {
		return nil, err
	}

	v := ctxutil.ViewerFromCtx(ctx)
	visible := make([]*domain.Space, 0, len(rows))
	for _, row := range rows {
		canView, err := s.engine.CanView(ctx, v, row)
		if err != nil {
			return nil, err
		}
		if canView {
			visible = append(visible, row)
		}
	}
	return visible, nil
}

func branchTypePtr(b domain.BranchType) *domain.BranchType { return &b }
func boolPtr(b bool) *bool                                 { return &b }
func ptrInt64(v int64) *int64                              { return &v }
