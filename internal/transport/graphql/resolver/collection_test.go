package resolver

//go:generate moq -out collection_service_mock_test.go -pkg resolver . collectionService

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/service/collection"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/model"
)

func supportCollection(id int64) *domain.Collection {
	return &domain.Collection{
		ID:                 id,
		OrganizationID:     1,
		Name:               "Support",
		DefaultPermissions: []domain.PermissionGroup{domain.PermissionGroupViewer},
		CreatedAt:          time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:          time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// TestCreateCollection_Success tests input mapping including the optional
// description.
func TestCreateCollection_Success(t *testing.T) {
	t.Parallel()

	mock := &collectionServiceMock{
		CreateFunc: func(ctx context.Context, in collection.CreateInput) (*domain.Collection, error) {
			assert.Equal(t, "Support", in.Name)
			assert.Equal(t, "Macros for the support team", in.Description)
			assert.Equal(t, []domain.PermissionGroup{domain.PermissionGroupViewer}, in.DefaultPermissions)
			return supportCollection(42), nil
		},
	}

	resolver := &mutationResolver{&Resolver{collections: mock}}
	out, err := resolver.CreateCollection(context.Background(), model.CollectionCreateInput{
		Name:               "Support",
		Description:        ptr("Macros for the support team"),
		DefaultPermissions: []model.CollectionPermission{model.CollectionPermissionViewer},
	})

	require.NoError(t, err)
	require.NotNil(t, out.Collection)
	assert.Equal(t, ids.EncodeNodeID(ids.TagCollection, 42), out.Collection.ID)
	assert.Equal(t, []model.CollectionPermission{model.CollectionPermissionViewer}, out.Collection.DefaultPermissions)
}

// TestCreateCollection_Forbidden tests permission error propagation.
func TestCreateCollection_Forbidden(t *testing.T) {
	t.Parallel()

	mock := &collectionServiceMock{
		CreateFunc: func(ctx context.Context, in collection.CreateInput) (*domain.Collection, error) {
			return nil, domain.ErrForbidden
		},
	}

	resolver := &mutationResolver{&Resolver{collections: mock}}
	_, err := resolver.CreateCollection(context.Background(), model.CollectionCreateInput{Name: "Support"})

	require.ErrorIs(t, err, domain.ErrForbidden)
}

// TestUpdateCollection_Success tests a partial update.
func TestUpdateCollection_Success(t *testing.T) {
	t.Parallel()

	nodeID := ids.EncodeNodeID(ids.TagCollection, 42)
	mock := &collectionServiceMock{
		UpdateFunc: func(ctx context.Context, in collection.UpdateInput) (*domain.Collection, error) {
			assert.Equal(t, nodeID, in.ID)
			require.NotNil(t, in.Name)
			assert.Equal(t, "Support EMEA", *in.Name)
			assert.Nil(t, in.Description)
			return supportCollection(42), nil
		},
	}

	resolver := &mutationResolver{&Resolver{collections: mock}}
	out, err := resolver.UpdateCollection(context.Background(), model.CollectionUpdateInput{
		ID:   nodeID,
		Name: ptr("Support EMEA"),
	})

	require.NoError(t, err)
	require.NotNil(t, out.Collection)
}

// TestArchiveCollection_Success tests the archive passthrough.
func TestArchiveCollection_Success(t *testing.T) {
	t.Parallel()

	c := supportCollection(42)
	c.IsArchived = true
	mock := &collectionServiceMock{
		ArchiveFunc: func(ctx context.Context, nodeID string) (*domain.Collection, error) {
			return c, nil
		},
	}

	resolver := &mutationResolver{&Resolver{collections: mock}}
	out, err := resolver.ArchiveCollection(context.Background(), ids.EncodeNodeID(ids.TagCollection, 42))

	require.NoError(t, err)
	require.NotNil(t, out.Collection)
	assert.True(t, out.Collection.IsArchived)
}

// TestSetCollectionACL_Success tests node-id passthrough and entry mapping.
func TestSetCollectionACL_Success(t *testing.T) {
	t.Parallel()

	userNodeID := ids.EncodeNodeID(ids.TagUser, 7)
	mock := &collectionServiceMock{
		SetACLFunc: func(ctx context.Context, collectionNodeID string, inputs []collection.ACLEntryInput) ([]domain.CollectionACLEntry, error) {
			require.Len(t, inputs, 1)
			require.NotNil(t, inputs[0].UserID)
			assert.Equal(t, userNodeID, *inputs[0].UserID)
			assert.Equal(t, domain.PermissionGroupAdmin, inputs[0].PermissionGroup)
			return []domain.CollectionACLEntry{
				{ID: 1, CollectionID: 42, UserID: ptr(int64(7)), PermissionGroup: domain.PermissionGroupAdmin},
			}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{collections: mock}}
	out, err := resolver.SetCollectionACL(context.Background(), ids.EncodeNodeID(ids.TagCollection, 42), []*model.ACLEntryInput{
		{UserID: &userNodeID, PermissionGroup: model.CollectionPermissionAdmin},
	})

	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].UserID)
	assert.Equal(t, userNodeID, *out[0].UserID)
	assert.Equal(t, model.CollectionPermissionAdmin, out[0].PermissionGroup)
}

// TestCollections_IncludeArchivedDefault tests that the flag defaults to
// false when absent.
func TestCollections_IncludeArchivedDefault(t *testing.T) {
	t.Parallel()

	mock := &collectionServiceMock{
		ListFunc: func(ctx context.Context, includeArchived bool) ([]domain.Collection, error) {
			assert.False(t, includeArchived)
			return []domain.Collection{*supportCollection(42)}, nil
		},
	}

	resolver := &queryResolver{&Resolver{collections: mock}}
	result, err := resolver.Collections(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, result, 1)
}

// TestCollectionACLField tests the acl field resolver.
func TestCollectionACLField(t *testing.T) {
	t.Parallel()

	nodeID := ids.EncodeNodeID(ids.TagCollection, 42)
	mock := &collectionServiceMock{
		ListACLFunc: func(ctx context.Context, collectionNodeID string) ([]domain.CollectionACLEntry, error) {
			assert.Equal(t, nodeID, collectionNodeID)
			return []domain.CollectionACLEntry{
				{ID: 1, CollectionID: 42, UserGroupID: ptr(int64(3)), PermissionGroup: domain.PermissionGroupPublisher},
			}, nil
		},
	}

	resolver := &collectionResolver{&Resolver{collections: mock}}
	out, err := resolver.ACL(context.Background(), &model.Collection{ID: nodeID, RowID: 42})

	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].UserGroupID)
	assert.Equal(t, ids.EncodeNodeID(ids.TagUserGroup, 3), *out[0].UserGroupID)
	assert.Equal(t, model.CollectionPermissionPublisher, out[0].PermissionGroup)
}
