// Package workflow exposes the versioned workflow (playbook) operations.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/observe"
	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// Service wraps the versioning engine instantiated for workflows.
type Service struct {
	log    *slog.Logger
	store  versioning.Store[*domain.Workflow]
	engine *versioning.Engine[*domain.Workflow]
}

// NewService creates the workflow service.
func NewService(
	log *slog.Logger,
	store versioning.Store[*domain.Workflow],
	perms versioning.PermissionOracle,
	tx versioning.TxManager,
	sink observe.Sink,
) *Service {
	return &Service{
		log:    log.With("service", "workflow"),
		store:  store,
		engine: versioning.NewEngine(log, workflowKind{}, store, perms, tx, sink),
	}
}

// Create births a new workflow.
func (s *Service) Create(ctx context.Context, in versioning.CreateInput) (versioning.Result[*domain.Workflow], error) {
	return s.engine.Create(ctx, in)
}

// Update supersedes the latest version of a workflow lineage.
func (s *Service) Update(ctx context.Context, in versioning.UpdateInput) (versioning.Result[*domain.Workflow], error) {
	return s.engine.Update(ctx, in)
}

// Merge folds a draft or suggestion into the published lineage.
func (s *Service) Merge(ctx context.Context, in versioning.MergeInput) (versioning.Result[*domain.Workflow], error) {
	return s.engine.Merge(ctx, in)
}

// Delete archives the latest row of a lineage.
func (s *Service) Delete(ctx context.Context, nodeID string) (versioning.Result[*domain.Workflow], error) {
	return s.engine.Delete(ctx, nodeID)
}

// Restore un-archives the latest row of a lineage.
func (s *Service) Restore(ctx context.Context, nodeID string) (versioning.Result[*domain.Workflow], error) {
	return s.engine.Restore(ctx, nodeID)
}

// Get returns one physical row by external node id, subject to visibility.
func (s *Service) Get(ctx context.Context, nodeID string) (*domain.Workflow, error) {
	id, err := ids.DecodeNodeIDAs(ids.PrefixWorkflow, nodeID)
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
		return nil, fmt.Errorf("workflow %d: %w", id, domain.ErrNotFound)
	}

	return row, nil
}

// ListLatest returns the active published workflows of a collection the
// viewer may see.
func (s *Service) ListLatest(ctx context.Context, collectionNodeID string) ([]*domain.Workflow, error) {
	collectionID, err := ids.DecodeNodeIDAs(ids.TagCollection, collectionNodeID)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.FindMany(ctx, versioning.Filter{
		CollectionID: &collectionID,
		BranchType:   branchTypePtr(domain.BranchTypePublished),
		IsLatest:     boolPtr(true),
		IsArchived:   boolPtr(false),
	})
	if err != nil {
		return nil, err
	}

	return s.visibleOnly(ctx, rows)
}

// ListVersions returns the version history of one lineage, newest first,
// subject to visibility.
func (s *Service) ListVersions(ctx context.Context, staticID string, limit int) ([]*domain.Workflow, error) {
	if ids.Prefix(staticID) != ids.PrefixWorkflow {
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

	return s.visibleOnly(ctx, rows)
}

func (s *Service) visibleOnly(ctx context.Context, rows []*domain.Workflow) ([]*domain.Workflow, error) {
	v := ctxutil.ViewerFromCtx(ctx)
	visible := make([]*domain.Workflow, 0, len(rows))
	for _, row := range rows {
		canView, err := s.engine.CanView(ctx, v, row)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
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
