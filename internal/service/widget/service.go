// Package widget exposes the versioned, org-scoped widget operations.
package widget

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

// Service wraps the versioning engine instantiated for widgets.
type Service struct {
	log    *slog.Logger
	store  versioning.Store[*domain.Widget]
	engine *versioning.Engine[*domain.Widget]
}

// NewService creates the widget service.
func NewService(
	log *slog.Logger,
	store versioning.Store[*domain.Widget],
	perms versioning.PermissionOracle,
	tx versioning.TxManager,
	sink observe.Sink,
) *Service {
	return &Service{
		log:    log.With("service", "widget"),
		store:  store,
		engine: versioning.NewEngine(log, widgetKind{}, store, perms, tx, sink),
	}
}

// Create births a new widget in the viewer's organization.
func (s *Service) Create(ctx context.Context, in versioning.CreateInput) (versioning.Result[*domain.Widget], error) {
	return s.engine.Create(ctx, in)
}

// Update supersedes the latest version of a widget lineage.
func (s *Service) Update(ctx context.Context, in versioning.UpdateInput) (versioning.Result[*domain.Widget], error) {
	return s.engine.Update(ctx, in)
}

// Merge folds a draft or suggestion into the published lineage.
func (s *Service) Merge(ctx context.Context, in versioning.MergeInput) (versioning.Result[*domain.Widget], error) {
	return s.engine.Merge(ctx, in)
}

// Delete archives the latest row of a lineage.
func (s *Service) Delete(ctx context.Context, nodeID string) (versioning.Result[*domain.Widget], error) {
	return s.engine.Delete(ctx, nodeID)
}

// Restore un-archives the latest row of a lineage.
func (s *Service) Restore(ctx context.Context, nodeID string) (versioning.Result[*domain.Widget], error) {
	return s.engine.Restore(ctx, nodeID)
}

// Get returns one physical row by external node id, subject to visibility.
func (s *Service) Get(ctx context.Context, nodeID string) (*domain.Widget, error) {
	id, err := ids.DecodeNodeIDAs(ids.PrefixWidget, nodeID)
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
		return nil, fmt.Errorf("widget %d: %w", id, domain.ErrNotFound)
	}

	return row, nil
}

// ListLatest returns the active published widgets of the viewer's
// organization.
func (s *Service) ListLatest(ctx context.Context) ([]*domain.Widget, error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return nil, fmt.Errorf("listing widgets: %w", domain.ErrUnauthorized)
	}

	return s.store.FindMany(ctx, versioning.Filter{
		OrganizationID: ptrInt64(v.OrganizationID()),
		BranchType:     branchTypePtr(domain.BranchTypePublished),
		IsLatest:       boolPtr(true),
		IsArchived:     boolPtr(false),
	})
}

func branchTypePtr(b domain.BranchType) *domain.BranchType { return &b }
func boolPtr(b bool) *bool                                 { return &b }
func ptrInt64(v int64) *int64                              { return &v }
