package resolver

import (
	"context"

	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/model"
)

// CreateSpace is the resolver for the createSpace mutation.
func (r *mutationResolver) CreateSpace(ctx context.Context, input model.SpaceCreateInput) (*model.SpaceOutput, error) {
	fields := map[string]any{
		"name": input.Name,
	}
	putOpt(fields, "icon", input.Icon)
	if input.VisibleToGroups != nil {
		fields["visibleToGroups"] = input.VisibleToGroups
	}
	if input.Widgets != nil {
		fields["widgets"] = input.Widgets
	}

	res, err := r.spaces.Create(ctx, versioning.CreateInput{
		BranchType: domainBranchType(input.BranchType),
		Fields:     fields,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.SpaceOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.SpaceOutput{Space: spaceToModel(res.Row)}, nil
}

// UpdateSpace is the resolver for the updateSpace mutation.
func (r *mutationResolver) UpdateSpace(ctx context.Context, input model.SpaceUpdateInput) (*model.SpaceOutput, error) {
	fields := map[string]any{}
	putPtr(fields, "name", input.Name)
	putPtr(fields, "icon", input.Icon)
	putVal(fields, "visibleToGroups", input.VisibleToGroups)
	putVal(fields, "widgets", input.Widgets)

	res, err := r.spaces.Update(ctx, versioning.UpdateInput{
		ID:                     input.ID,
		BranchType:             domainBranchType(input.BranchType),
		MajorChangeDescription: input.MajorChangeDescription,
		Fields:                 fields,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.SpaceOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.SpaceOutput{Space: spaceToModel(res.Row)}, nil
}

// MergeSpace is the resolver for the mergeSpace mutation.
func (r *mutationResolver) MergeSpace(ctx context.Context, input model.MergeInput) (*model.SpaceOutput, error) {
	res, err := r.spaces.Merge(ctx, versioning.MergeInput{
		FromID: input.FromID,
		ToID:   input.ToID,
		Fields: input.Fields,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.SpaceOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.SpaceOutput{Space: spaceToModel(res.Row)}, nil
}

// DeleteSpace is the resolver for the deleteSpace mutation.
func (r *mutationResolver) DeleteSpace(ctx context.Context, id string) (*model.SpaceOutput, error) {
	res, err := r.spaces.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.SpaceOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.SpaceOutput{Space: spaceToModel(res.Row)}, nil
}

// RestoreSpace is the resolver for the restoreSpace mutation.
func (r *mutationResolver) RestoreSpace(ctx context.Context, id string) (*model.SpaceOutput, error) {
	res, err := r.spaces.Restore(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.SpaceOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.SpaceOutput{Space: spaceToModel(res.Row)}, nil
}

// Space is the resolver for the space query.
func (r *queryResolver) Space(ctx context.Context, id string) (*model.Space, error) {
	s, err := r.spaces.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return spaceToModel(s), nil
}

// Spaces is the resolver for the spaces query: the latest published spaces
// visible to the viewer's organization.
func (r *queryResolver) Spaces(ctx context.Context) ([]*model.Space, error) {
	rows, err := r.spaces.ListLatest(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Space, len(rows))
	for i, row := range rows {
		out[i] = spaceToModel(row)
	}
	return out, nil
}

// SpaceVersions is the resolver for the spaceVersions query.
func (r *queryResolver) SpaceVersions(ctx context.Context, staticID string, limit *int) ([]*model.Space, error) {
	n := defaultVersionLimit
	if limit != nil && *limit > 0 {
		n = *limit
	}
	rows, err := r.spaces.ListVersions(ctx, staticID, n)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Space, len(rows))
	for i, row := range rows {
		out[i] = spaceToModel(row)
	}
	return out, nil
}


