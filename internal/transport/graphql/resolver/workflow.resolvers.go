package resolver

import (
	"context"

	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/dataloader"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/model"
)

// CreateWorkflow is the resolver for the createWorkflow mutation.
func (r *mutationResolver) CreateWorkflow(ctx context.Context, input model.WorkflowCreateInput) (*model.WorkflowOutput, error) {
	fields := map[string]any{
		"name": input.Name,
	}
	putOpt(fields, "description", input.Description)
	putOpt(fields, "icon", input.Icon)
	if input.Contents != nil {
		fields["contents"] = input.Contents
	}
	if input.Keywords != nil {
		fields["keywords"] = input.Keywords
	}

	res, err := r.workflows.Create(ctx, versioning.CreateInput{
		CollectionID: input.CollectionID,
		BranchType:   domainBranchType(input.BranchType),
		Fields:       fields,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.WorkflowOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.WorkflowOutput{Workflow: workflowToModel(res.Row)}, nil
}

// UpdateWorkflow is the resolver for the updateWorkflow mutation.
func (r *mutationResolver) UpdateWorkflow(ctx context.Context, input model.WorkflowUpdateInput) (*model.WorkflowOutput, error) {
	fields := map[string]any{}
	putPtr(fields, "name", input.Name)
	putPtr(fields, "description", input.Description)
	putPtr(fields, "icon", input.Icon)
	putVal(fields, "contents", input.Contents)
	putVal(fields, "keywords", input.Keywords)

	res, err := r.workflows.Update(ctx, versioning.UpdateInput{
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
		return &model.WorkflowOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.WorkflowOutput{Workflow: workflowToModel(res.Row)}, nil
}

// MergeWorkflow is the resolver for the mergeWorkflow mutation.
func (r *mutationResolver) MergeWorkflow(ctx context.Context, input model.MergeInput) (*model.WorkflowOutput, error) {
	res, err := r.workflows.Merge(ctx, versioning.MergeInput{
		FromID: input.FromID,
		ToID:   input.ToID,
		Fields: input.Fields,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.WorkflowOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.WorkflowOutput{Workflow: workflowToModel(res.Row)}, nil
}

// DeleteWorkflow is the resolver for the deleteWorkflow mutation.
func (r *mutationResolver) DeleteWorkflow(ctx context.Context, id string) (*model.WorkflowOutput, error) {
	res, err := r.workflows.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.WorkflowOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.WorkflowOutput{Workflow: workflowToModel(res.Row)}, nil
}

// RestoreWorkflow is the resolver for the restoreWorkflow mutation.
func (r *mutationResolver) RestoreWorkflow(ctx context.Context, id string) (*model.WorkflowOutput, error) {
	res, err := r.workflows.Restore(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.WorkflowOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.WorkflowOutput{Workflow: workflowToModel(res.Row)}, nil
}

// Workflow is the resolver for the workflow query.
func (r *queryResolver) Workflow(ctx context.Context, id string) (*model.Workflow, error) {
	w, err := r.workflows.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return workflowToModel(w), nil
}

// Workflows is the resolver for the workflows query.
func (r *queryResolver) Workflows(ctx context.Context, collectionID string) ([]*model.Workflow, error) {
	rows, err := r.workflows.ListLatest(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Workflow, len(rows))
	for i, row := range rows {
		out[i] = workflowToModel(row)
	}
	return out, nil
}

// WorkflowVersions is the resolver for the workflowVersions query.
func (r *queryResolver) WorkflowVersions(ctx context.Context, staticID string, limit *int) ([]*model.Workflow, error) {
	n := defaultVersionLimit
	if limit != nil && *limit > 0 {
		n = *limit
	}
	rows, err := r.workflows.ListVersions(ctx, staticID, n)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Workflow, len(rows))
	for i, row := range rows {
		out[i] = workflowToModel(row)
	}
	return out, nil
}

// Collection resolves the workflow's owning collection through the
// per-request loader.
func (r *workflowResolver) Collection(ctx context.Context, obj *model.Workflow) (*model.Collection, error) {
	c, err := dataloader.FromContext(ctx).CollectionByID.Load(ctx, obj.CollectionRowID)()
	if err != nil {
		return nil, err
	}
	return collectionToModel(c), nil
}

// CreatedByUser resolves the version author through the per-request loader.
func (r *workflowResolver) CreatedByUser(ctx context.Context, obj *model.Workflow) (*model.User, error) {
	u, err := dataloader.FromContext(ctx).UserByID.Load(ctx, obj.CreatedByUserRowID)()
	if err != nil {
		return nil, err
	}
	return userToModel(u), nil
}

// SuggestedByUser resolves the suggesting user, if any.
func (r *workflowResolver) SuggestedByUser(ctx context.Context, obj *model.Workflow) (*model.User, error) {
	if obj.SuggestedByUserRowID == nil {
		return nil, nil
	}
	u, err := dataloader.FromContext(ctx).UserByID.Load(ctx, *obj.SuggestedByUserRowID)()
	if err != nil {
		return nil, err
	}
	return userToModel(u), nil
}


