package resolver

import (
	"context"
	"log/slog"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/service/collection"
	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/generated"
)

// toolService defines what the resolver needs from the tool service.
type toolService interface {
	Create(ctx context.Context, in versioning.CreateInput) (versioning.Result[*domain.Tool], error)
	Update(ctx context.Context, in versioning.UpdateInput) (versioning.Result[*domain.Tool], error)
	Merge(ctx context.Context, in versioning.MergeInput) (versioning.Result[*domain.Tool], error)
	Delete(ctx context.Context, nodeID string) (versioning.Result[*domain.Tool], error)
	Restore(ctx context.Context, nodeID string) (versioning.Result[*domain.Tool], error)
	Get(ctx context.Context, nodeID string) (*domain.Tool, error)
	ListLatest(ctx context.Context, collectionNodeID string) ([]*domain.Tool, error)
	ListVersions(ctx context.Context, staticID string, limit int) ([]*domain.Tool, error)
}

// workflowService defines what the resolver needs from the workflow service.
type workflowService interface {
	Create(ctx context.Context, in versioning.CreateInput) (versioning.Result[*domain.Workflow], error)
	Update(ctx context.Context, in versioning.UpdateInput) (versioning.Result[*domain.Workflow], error)
	Merge(ctx context.Context, in versioning.MergeInput) (versioning.Result[*domain.Workflow], error)
	Delete(ctx context.Context, nodeID string) (versioning.Result[*domain.Workflow], error)
	Restore(ctx context.Context, nodeID string) (versioning.Result[*domain.Workflow], error)
	Get(ctx context.Context, nodeID string) (*domain.Workflow, error)
	ListLatest(ctx context.Context, collectionNodeID string) ([]*domain.Workflow, error)
	ListVersions(ctx context.Context, staticID string, limit int) ([]*domain.Workflow, error)
}

// spaceService defines what the resolver needs from the space service.
type spaceService interface {
	Create(ctx context.Context, in versioning.CreateInput) (versioning.Result[*domain.Space], error)
	Update(ctx context.Context, in versioning.UpdateInput) (versioning.Result[*domain.Space], error)
	Merge(ctx context.Context, in versioning.MergeInput) (versioning.Result[*domain.Space], error)
	Delete(ctx context.Context, nodeID string) (versioning.Result[*domain.Space], error)
	Restore(ctx context.Context, nodeID string) (versioning.Result[*domain.Space], error)
	Get(ctx context.Context, nodeID string) (*domain.Space, error)
	ListLatest(ctx context.Context) ([]*domain.Space, error)
	ListVersions(ctx context.Context, staticID string, limit int) ([]*domain.Space, error)
}

// widgetService defines what the resolver needs from the widget service.
type widgetService interface {
	Create(ctx context.Context, in versioning.CreateInput) (versioning.Result[*domain.Widget], error)
	Update(ctx context.Context, in versioning.UpdateInput) (versioning.Result[*domain.Widget], error)
	Merge(ctx context.Context, in versioning.MergeInput) (versioning.Result[*domain.Widget], error)
	Delete(ctx context.Context, nodeID string) (versioning.Result[*domain.Widget], error)
	Restore(ctx context.Context, nodeID string) (versioning.Result[*domain.Widget], error)
	Get(ctx context.Context, nodeID string) (*domain.Widget, error)
	ListLatest(ctx context.Context) ([]*domain.Widget, error)
}

// collectionService defines what the resolver needs from the collection
// service.
type collectionService interface {
	Create(ctx context.Context, in collection.CreateInput) (*domain.Collection, error)
	Update(ctx context.Context, in collection.UpdateInput) (*domain.Collection, error)
	Archive(ctx context.Context, nodeID string) (*domain.Collection, error)
	Unarchive(ctx context.Context, nodeID string) (*domain.Collection, error)
	Get(ctx context.Context, nodeID string) (*domain.Collection, error)
	List(ctx context.Context, includeArchived bool) ([]domain.Collection, error)
	SetACL(ctx context.Context, collectionNodeID string, inputs []collection.ACLEntryInput) ([]domain.CollectionACLEntry, error)
	ListACL(ctx context.Context, collectionNodeID string) ([]domain.CollectionACLEntry, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	tools       toolService
	workflows   workflowService
	spaces      spaceService
	widgets     widgetService
	collections collectionService
	log         *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	tools toolService,
	workflows workflowService,
	spaces spaceService,
	widgets widgetService,
	collections collectionService,
) *Resolver {
	return &Resolver{
		tools:       tools,
		workflows:   workflows,
		spaces:      spaces,
		widgets:     widgets,
		collections: collections,
		log:         log.With("component", "graphql"),
	}
}

type queryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }

// Per-type resolvers for loader-backed fields.
type toolResolver struct{ *Resolver }
type workflowResolver struct{ *Resolver }
type collectionResolver struct{ *Resolver }

// Query returns the query resolver.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// Mutation returns the mutation resolver.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Tool returns the tool field resolver.
func (r *Resolver) Tool() generated.ToolResolver { return &toolResolver{r} }

// Workflow returns the workflow field resolver.
func (r *Resolver) Workflow() generated.WorkflowResolver { return &workflowResolver{r} }

// Collection returns the collection field resolver.
func (r *Resolver) Collection() generated.CollectionResolver { return &collectionResolver{r} }
