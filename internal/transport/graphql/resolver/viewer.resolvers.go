package resolver

import (
	"context"

	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/model"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// Viewer is the resolver for the viewer query. Anonymous requests get an
// empty viewer rather than an error so the client can render a logged-out
// state.
func (r *queryResolver) Viewer(ctx context.Context) (*model.Viewer, error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return &model.Viewer{}, nil
	}
	return &model.Viewer{
		User:           userToModel(v.User),
		OrganizationID: ids.EncodeNodeID(ids.TagOrganization, v.OrganizationID()),
	}, nil
}


