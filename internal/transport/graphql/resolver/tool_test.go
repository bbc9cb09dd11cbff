package resolver

//go:generate moq -out tool_service_mock_test.go -pkg resolver . toolService

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/model"
)

func ptr[T any](v T) *T {
	return &v
}

func publishedTool(id int64) *domain.Tool {
	return &domain.Tool{
		VersionMeta: domain.VersionMeta{
			ID:              id,
			StaticID:        "tool_0123456789abcdefghijkl",
			BranchType:      domain.BranchTypePublished,
			IsLatest:        true,
			CreatedByUserID: 7,
			CreatedAt:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		CollectionID: 42,
		Name:         "Refund macro",
		Component:    "GmailAction",
	}
}

// TestCreateTool_Success tests that a successful create maps the row into the
// output union.
func TestCreateTool_Success(t *testing.T) {
	t.Parallel()

	mock := &toolServiceMock{
		CreateFunc: func(ctx context.Context, in versioning.CreateInput) (versioning.Result[*domain.Tool], error) {
			assert.Equal(t, "coll-node-id", in.CollectionID)
			assert.Equal(t, "Refund macro", in.Fields["name"])
			assert.Equal(t, "GmailAction", in.Fields["component"])
			assert.NotContains(t, in.Fields, "description")
			return versioning.Result[*domain.Tool]{Row: publishedTool(11)}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{tools: mock}}
	out, err := resolver.CreateTool(context.Background(), model.ToolCreateInput{
		CollectionID: "coll-node-id",
		Name:         "Refund macro",
		Component:    "GmailAction",
	})

	require.NoError(t, err)
	require.NotNil(t, out.Tool)
	assert.Nil(t, out.Error)
	assert.Equal(t, ids.EncodeNodeID(ids.PrefixTool, 11), out.Tool.ID)
	assert.Equal(t, model.BranchTypePublished, out.Tool.BranchType)
	assert.True(t, out.Tool.IsLatest)
}

// TestCreateTool_ExpectedFailure tests that a Failure becomes a typed error
// value, not a transport error.
func TestCreateTool_ExpectedFailure(t *testing.T) {
	t.Parallel()

	mock := &toolServiceMock{
		CreateFunc: func(ctx context.Context, in versioning.CreateInput) (versioning.Result[*domain.Tool], error) {
			return versioning.Result[*domain.Tool]{Failure: &versioning.Failure{
				Code:    versioning.FailPermission,
				Param:   "collectionId",
				Message: "publish requires the publisher permission",
			}}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{tools: mock}}
	out, err := resolver.CreateTool(context.Background(), model.ToolCreateInput{
		CollectionID: "coll-node-id",
		Name:         "Refund macro",
		Component:    "GmailAction",
	})

	require.NoError(t, err)
	assert.Nil(t, out.Tool)
	require.NotNil(t, out.Error)
	assert.Equal(t, "permission_error", out.Error.Type)
	assert.Equal(t, "insufficient_permission", out.Error.Code)
	require.NotNil(t, out.Error.Param)
	assert.Equal(t, "collectionId", *out.Error.Param)
}

// TestCreateTool_ServiceError tests infrastructure error propagation.
func TestCreateTool_ServiceError(t *testing.T) {
	t.Parallel()

	mock := &toolServiceMock{
		CreateFunc: func(ctx context.Context, in versioning.CreateInput) (versioning.Result[*domain.Tool], error) {
			return versioning.Result[*domain.Tool]{}, errors.New("connection refused")
		},
	}

	resolver := &mutationResolver{&Resolver{tools: mock}}
	_, err := resolver.CreateTool(context.Background(), model.ToolCreateInput{
		CollectionID: "coll-node-id",
		Name:         "Refund macro",
		Component:    "GmailAction",
	})

	require.Error(t, err)
}

// TestUpdateTool_FieldSemantics tests that absent, null, and set fields map
// to preserve, clear, and overwrite respectively.
func TestUpdateTool_FieldSemantics(t *testing.T) {
	t.Parallel()

	mock := &toolServiceMock{
		UpdateFunc: func(ctx context.Context, in versioning.UpdateInput) (versioning.Result[*domain.Tool], error) {
			assert.Equal(t, "New name", in.Fields["name"])
			require.Contains(t, in.Fields, "icon")
			assert.Nil(t, in.Fields["icon"])
			assert.NotContains(t, in.Fields, "description")
			return versioning.Result[*domain.Tool]{Row: publishedTool(12)}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{tools: mock}}
	out, err := resolver.UpdateTool(context.Background(), model.ToolUpdateInput{
		ID:   ids.EncodeNodeID(ids.PrefixTool, 11),
		Name: graphql.OmittableOf(ptr("New name")),
		Icon: graphql.OmittableOf[*string](nil),
	})

	require.NoError(t, err)
	require.NotNil(t, out.Tool)
}

// TestUpdateTool_AlreadyModified tests the optimistic-concurrency failure.
func TestUpdateTool_AlreadyModified(t *testing.T) {
	t.Parallel()

	mock := &toolServiceMock{
		UpdateFunc: func(ctx context.Context, in versioning.UpdateInput) (versioning.Result[*domain.Tool], error) {
			return versioning.Result[*domain.Tool]{Failure: &versioning.Failure{
				Code:    versioning.FailAlreadyModified,
				Message: "modified by another request",
			}}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{tools: mock}}
	out, err := resolver.UpdateTool(context.Background(), model.ToolUpdateInput{
		ID: ids.EncodeNodeID(ids.PrefixTool, 11),
	})

	require.NoError(t, err)
	require.NotNil(t, out.Error)
	assert.Equal(t, "conflict_error", out.Error.Type)
	assert.Equal(t, "already_modified", out.Error.Code)
}

// TestMergeTool_Success tests a merge passthrough.
func TestMergeTool_Success(t *testing.T) {
	t.Parallel()

	toID := ids.EncodeNodeID(ids.PrefixTool, 11)
	mock := &toolServiceMock{
		MergeFunc: func(ctx context.Context, in versioning.MergeInput) (versioning.Result[*domain.Tool], error) {
			assert.Equal(t, "from-node-id", in.FromID)
			require.NotNil(t, in.ToID)
			assert.Equal(t, toID, *in.ToID)
			return versioning.Result[*domain.Tool]{Row: publishedTool(13)}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{tools: mock}}
	out, err := resolver.MergeTool(context.Background(), model.MergeInput{
		FromID: "from-node-id",
		ToID:   &toID,
	})

	require.NoError(t, err)
	require.NotNil(t, out.Tool)
}

// TestDeleteTool_NotFound tests that deleting a missing node reports an
// expected failure.
func TestDeleteTool_NotFound(t *testing.T) {
	t.Parallel()

	mock := &toolServiceMock{
		DeleteFunc: func(ctx context.Context, nodeID string) (versioning.Result[*domain.Tool], error) {
			return versioning.Result[*domain.Tool]{Failure: &versioning.Failure{
				Code:    versioning.FailNotFound,
				Param:   "id",
				Message: "not found",
			}}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{tools: mock}}
	out, err := resolver.DeleteTool(context.Background(), "missing")

	require.NoError(t, err)
	require.NotNil(t, out.Error)
	assert.Equal(t, "invalid_request_error", out.Error.Type)
	assert.Equal(t, "not_found", out.Error.Code)
}

// TestToolQuery_NotFound tests that queries surface domain errors as errors.
func TestToolQuery_NotFound(t *testing.T) {
	t.Parallel()

	mock := &toolServiceMock{
		GetFunc: func(ctx context.Context, nodeID string) (*domain.Tool, error) {
			return nil, domain.ErrNotFound
		},
	}

	resolver := &queryResolver{&Resolver{tools: mock}}
	_, err := resolver.Tool(context.Background(), "missing")

	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestTools_Success tests listing the latest tools of a collection.
func TestTools_Success(t *testing.T) {
	t.Parallel()

	mock := &toolServiceMock{
		ListLatestFunc: func(ctx context.Context, collectionNodeID string) ([]*domain.Tool, error) {
			assert.Equal(t, "coll-node-id", collectionNodeID)
			return []*domain.Tool{publishedTool(11), publishedTool(12)}, nil
		},
	}

	resolver := &queryResolver{&Resolver{tools: mock}}
	result, err := resolver.Tools(context.Background(), "coll-node-id")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, ids.EncodeNodeID(ids.PrefixTool, 11), result[0].ID)
}

// TestToolVersions_DefaultLimit tests that the default history limit applies.
func TestToolVersions_DefaultLimit(t *testing.T) {
	t.Parallel()

	mock := &toolServiceMock{
		ListVersionsFunc: func(ctx context.Context, staticID string, limit int) ([]*domain.Tool, error) {
			assert.Equal(t, defaultVersionLimit, limit)
			return []*domain.Tool{publishedTool(11)}, nil
		},
	}

	resolver := &queryResolver{&Resolver{tools: mock}}
	result, err := resolver.ToolVersions(context.Background(), "tool_0123456789abcdefghijkl", nil)

	require.NoError(t, err)
	require.Len(t, result, 1)
}
