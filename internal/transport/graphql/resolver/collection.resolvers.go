package resolver

import (
	"context"

	"github.com/michaelschade/kenchi-sub000/internal/service/collection"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/model"
)

// CreateCollection is the resolver for the createCollection mutation.
func (r *mutationResolver) CreateCollection(ctx context.Context, input model.CollectionCreateInput) (*model.CollectionOutput, error) {
	in := collection.CreateInput{
		Name:               input.Name,
		Icon:               input.Icon,
		DefaultPermissions: domainPerms(input.DefaultPermissions),
	}
	if input.Description != nil {
		in.Description = *input.Description
	}
	c, err := r.collections.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return &model.CollectionOutput{Collection: collectionToModel(c)}, nil
}

// UpdateCollection is the resolver for the updateCollection mutation.
func (r *mutationResolver) UpdateCollection(ctx context.Context, input model.CollectionUpdateInput) (*model.CollectionOutput, error) {
	c, err := r.collections.Update(ctx, collection.UpdateInput{
		ID:                 input.ID,
		Name:               input.Name,
		Description:        input.Description,
		Icon:               input.Icon,
		DefaultPermissions: domainPerms(input.DefaultPermissions),
	})
	if err != nil {
		return nil, err
	}
	return &model.CollectionOutput{Collection: collectionToModel(c)}, nil
}

// ArchiveCollection is the resolver for the archiveCollection mutation.
func (r *mutationResolver) ArchiveCollection(ctx context.Context, id string) (*model.CollectionOutput, error) {
	c, err := r.collections.Archive(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.CollectionOutput{Collection: collectionToModel(c)}, nil
}

// UnarchiveCollection is the resolver for the unarchiveCollection mutation.
func (r *mutationResolver) UnarchiveCollection(ctx context.Context, id string) (*model.CollectionOutput, error) {
	c, err := r.collections.Unarchive(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.CollectionOutput{Collection: collectionToModel(c)}, nil
}

// SetCollectionACL is the resolver for the setCollectionAcl mutation. The
// entry list replaces the collection's ACL wholesale.
func (r *mutationResolver) SetCollectionACL(ctx context.Context, collectionID string, entries []*model.ACLEntryInput) ([]*model.CollectionACLEntry, error) {
	in := make([]collection.ACLEntryInput, len(entries))
	for i, e := range entries {
		in[i] = collection.ACLEntryInput{
			UserID:          e.UserID,
			UserGroupID:     e.UserGroupID,
			PermissionGroup: permToDomain[e.PermissionGroup],
		}
	}
	out, err := r.collections.SetACL(ctx, collectionID, in)
	if err != nil {
		return nil, err
	}
	return aclToModel(out), nil
}

// Collection is the resolver for the collection query.
func (r *queryResolver) Collection(ctx context.Context, id string) (*model.Collection, error) {
	c, err := r.collections.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return collectionToModel(c), nil
}

// Collections is the resolver for the collections query.
func (r *queryResolver) Collections(ctx context.Context, includeArchived *bool) ([]*model.Collection, error) {
	withArchived := includeArchived != nil && *includeArchived
	rows, err := r.collections.List(ctx, withArchived)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Collection, len(rows))
	for i := range rows {
		out[i] = collectionToModel(&rows[i])
	}
	return out, nil
}

// ACL resolves the collection's access-control entries.
func (r *collectionResolver) ACL(ctx context.Context, obj *model.Collection) ([]*model.CollectionACLEntry, error) {
	entries, err := r.collections.ListACL(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return aclToModel(entries), nil
}


