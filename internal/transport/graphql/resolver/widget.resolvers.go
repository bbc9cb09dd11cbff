package resolver

import (
	"context"

	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/model"
)

// CreateWidget is the resolver for the createWidget mutation.
func (r *mutationResolver) CreateWidget(ctx context.Context, input model.WidgetCreateInput) (*model.WidgetOutput, error) {
	fields := map[string]any{
		"contents": input.Contents,
	}
	if input.Inputs != nil {
		fields["inputs"] = input.Inputs
	}

	res, err := r.widgets.Create(ctx, versioning.CreateInput{
		BranchType: domainBranchType(input.BranchType),
		Fields:     fields,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.WidgetOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.WidgetOutput{Widget: widgetToModel(res.Row)}, nil
}

// UpdateWidget is the resolver for the updateWidget mutation.
func (r *mutationResolver) UpdateWidget(ctx context.Context, input model.WidgetUpdateInput) (*model.WidgetOutput, error) {
	fields := map[string]any{}
	putVal(fields, "contents", input.Contents)
	putVal(fields, "inputs", input.Inputs)

	res, err := r.widgets.Update(ctx, versioning.UpdateInput{
		ID:                     input.ID,
		BranchType:             domainBranchType(input.BranchType),
		MajorChangeDescription: input.MajorChangeDescription,
		Fields:                 fields,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.WidgetOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.WidgetOutput{Widget: widgetToModel(res.Row)}, nil
}

// MergeWidget is the resolver for the mergeWidget mutation.
func (r *mutationResolver) MergeWidget(ctx context.Context, input model.MergeInput) (*model.WidgetOutput, error) {
	res, err := r.widgets.Merge(ctx, versioning.MergeInput{
		FromID: input.FromID,
		ToID:   input.ToID,
		Fields: input.Fields,
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.WidgetOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.WidgetOutput{Widget: widgetToModel(res.Row)}, nil
}

// DeleteWidget is the resolver for the deleteWidget mutation.
func (r *mutationResolver) DeleteWidget(ctx context.Context, id string) (*model.WidgetOutput, error) {
	res, err := r.widgets.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.WidgetOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.WidgetOutput{Widget: widgetToModel(res.Row)}, nil
}

// RestoreWidget is the resolver for the restoreWidget mutation.
func (r *mutationResolver) RestoreWidget(ctx context.Context, id string) (*model.WidgetOutput, error) {
	res, err := r.widgets.Restore(ctx, id)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return &model.WidgetOutput{Error: errFromFailure(res.Failure)}, nil
	}
	return &model.WidgetOutput{Widget: widgetToModel(res.Row)}, nil
}

// Widget is the resolver for the widget query.
func (r *queryResolver) Widget(ctx context.Context, id string) (*model.Widget, error) {
	w, err := r.widgets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return widgetToModel(w), nil
}

// Widgets is the resolver for the widgets query.
func (r *queryResolver) Widgets(ctx context.Context) ([]*model.Widget, error) {
	rows, err := r.widgets.ListLatest(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Widget, len(rows))
	for i, row := range rows {
		out[i] = widgetToModel(row)
	}
	return out, nil
}


