package resolver

import (
	"context"

	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/dataloader"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/model"
)

// defaultVersionLimit bounds version-history queries with no explicit limit.
const defaultVersionLimit = 50

// CreateTool is the resolver for the createTool mutation.
func (r *mutationResolver) CreateTool(ctx context.Context, input model.ToolCreateInput) (*model.ToolOutput, error) {
	fields := map[string]any{
		"name":      input.Name,
		"component": input.Component,
	}
	putOpt(fields, "description", input.Description)
	putOpt(fields, "icon", input.Icon)
	if input.Inputs != nil {
		fields["inputs"] = input.Inputs
	}
	if input.Configuration != nil {
		fields["configuration"] = input.Configuration
	}
	if input.Keywords != nil {
		fields["keywords"] = input.Keywords
	}

	res, err := r.tools.Create(ctx, versioning.CreateInput{
		CollectionID: input.CollectionID,
		BranchType:   domainBranchType(input.BranchType),
		Fields:       fields,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.ToolOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.ToolOutput{Tool: toolToModel(res.Row)}, nil
}

// UpdateTool is the resolver for the updateTool mutation.
func (r *mutationResolver) UpdateTool(ctx context.Context, input model.ToolUpdateInput) (*model.ToolOutput, error) {
	fields := map[string]any{}
	putPtr(fields, "name", input.Name)
	putPtr(fields, "description", input.Description)
	putPtr(fields, "icon", input.Icon)
	putPtr(fields, "component", input.Component)
	putVal(fields, "inputs", input.Inputs)
	putVal(fields, "configuration", input.Configuration)
	putVal(fields, "keywords", input.Keywords)

	res, err := r.tools.Update(ctx, versioning.UpdateInput{
		ID:                     input.ID,
		BranchType:             domainBranchType(input.BranchType),
		CollectionID:           input.CollectionID,
		MajorChangeDescription: input.MajorChangeDescription,
		Fields:                 fields,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.ToolOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.ToolOutput{Tool: toolToModel(res.Row)}, nil
}

// MergeTool is the resolver for the mergeTool mutation.
func (r *mutationResolver) MergeTool(ctx context.Context, input model.MergeInput) (*model.ToolOutput, error) {
	res, err := r.tools.Merge(ctx, versioning.MergeInput{
		FromID: input.FromID,
		ToID:   input.ToID,
		Fields: input.Fields,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.ToolOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.ToolOutput{Tool: toolToModel(res.Row)}, nil
}

// DeleteTool is the resolver for the deleteTool mutation.
func (r *mutationResolver) DeleteTool(ctx context.Context, id string) (*model.ToolOutput, error) {
	res, err := r.tools.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.ToolOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.ToolOutput{Tool: toolToModel(res.Row)}, nil
}

// RestoreTool is the resolver for the restoreTool mutation.
func (r *mutationResolver) RestoreTool(ctx context.Context, id string) (*model.ToolOutput, error) {
	res, err := r.tools.Restore(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.ToolOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.ToolOutput{Tool: toolToModel(res.Row)}, nil
}

// Tool is the resolver for the tool query.
func (r *queryResolver) Tool(ctx context.Context, id string) (*model.Tool, error) {
	t, err := r.tools.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toolToModel(t), nil
}

// Tools is the resolver for the tools query: the latest published tools of a
// collection the viewer can see.
func (r *queryResolver) Tools(ctx context.Context, collectionID string) ([]*model.Tool, error) {
	rows, err := r.tools.ListLatest(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Tool, len(rows))
	for i, row := range rows {
		out[i] = toolToModel(row)
	}
	return out, nil
}

// ToolVersions is the resolver for the toolVersions query.
func (r *queryResolver) ToolVersions(ctx context.Context, staticID string, limit *int) ([]*model.Tool, error) {
	n := defaultVersionLimit
	if limit != nil && *limit > 0 {
		n = *limit
	}
	rows, err := r.tools.ListVersions(ctx, staticID, n)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Tool, len(rows))
	for i, row := range rows {
		out[i] = toolToModel(row)
	}
	return out, nil
}

// Collection resolves the tool's owning collection through the per-request
// loader.
func (r *toolResolver) Collection(ctx context.Context, obj *model.Tool) (*model.Collection, error) {
	c, err := dataloader.FromContext(ctx).CollectionByID.Load(ctx, obj.CollectionRowID)()
	if err != nil {
		return nil, err
	}
	return collectionToModel(c), nil
}

// CreatedByUser resolves the version author through the per-request loader.
func (r *toolResolver) CreatedByUser(ctx context.Context, obj *model.Tool) (*model.User, error) {
	u, err := dataloader.FromContext(ctx).UserByID.Load(ctx, obj.CreatedByUserRowID)()
	if err != nil {
		return nil, err
	}
	return userToModel(u), nil
}

// SuggestedByUser resolves the suggesting user, if any.
func (r *toolResolver) SuggestedByUser(ctx context.Context, obj *model.Tool) (*model.User, error) {
	if obj.SuggestedByUserRowID == nil {
		return nil, nil
	}
	u, err := dataloader.FromContext(ctx).UserByID.Load(ctx, *obj.SuggestedByUserRowID)()
	if err != nil {
		return nil, err
	}
	return userToModel(u), nil
}


