package versioning

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

func TestEngine_Create_Unauthenticated(t *testing.T) {
	t.Parallel()

	engine := newNoteEngine(newNoteStore(), &fakePerms{})

	res, err := engine.Create(context.Background(), CreateInput{
		CollectionID: collectionNodeID(testCollectionID),
		Fields:       map[string]any{"name": "Greeting"},
	})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailUnauthenticated, res.Failure.Code)
}

func TestEngine_Create_InvisibleCollection(t *testing.T) {
	t.Parallel()

	// No see_collection grant: the collection must read as absent, not as
	// forbidden.
	engine := newNoteEngine(newNoteStore(), &fakePerms{collection: grants()})

	res, err := engine.Create(ctxWith(testViewer(1)), CreateInput{
		CollectionID: collectionNodeID(testCollectionID),
		Fields:       map[string]any{"name": "Greeting"},
	})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailNotFound, res.Failure.Code)
	assert.Equal(t, "collectionId", res.Failure.Param)
}

func TestEngine_Create_PublishedWithoutPublishPermission(t *testing.T) {
	t.Parallel()

	engine := newNoteEngine(newNoteStore(), &fakePerms{
		collection: grants(domain.PermissionSeeCollection),
	})

	res, err := engine.Create(ctxWith(testViewer(1)), CreateInput{
		CollectionID: collectionNodeID(testCollectionID),
		Fields:       map[string]any{"name": "Greeting"},
	})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailPermission, res.Failure.Code)
}

func TestEngine_Create_Published(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, &fakePerms{
		collection: grants(domain.PermissionSeeCollection, domain.PermissionPublishTool),
	})

	res, err := engine.Create(ctxWith(testViewer(1)), CreateInput{
		CollectionID: collectionNodeID(testCollectionID),
		Fields:       map[string]any{"name": "Greeting", "body": "hello"},
	})
	require.NoError(t, err)
	require.True(t, res.OK())

	row := res.Row
	assert.True(t, strings.HasPrefix(row.StaticID, "note_"))
	assert.Equal(t, domain.BranchTypePublished, row.BranchType)
	assert.True(t, row.IsLatest)
	assert.Nil(t, row.BranchID)
	assert.Nil(t, row.SuggestedByUserID)
	assert.Equal(t, int64(1), row.CreatedByUserID)
	assert.Equal(t, testCollectionID, row.CollectionID)
	assert.Equal(t, "Greeting", row.Name)
	assert.Equal(t, "hello", row.Body)
}

func TestEngine_Create_Draft(t *testing.T) {
	t.Parallel()

	// Drafts need only see_collection, not publish.
	store := newNoteStore()
	engine := newNoteEngine(store, &fakePerms{
		collection: grants(domain.PermissionSeeCollection),
	})

	res, err := engine.Create(ctxWith(testViewer(1)), CreateInput{
		CollectionID: collectionNodeID(testCollectionID),
		BranchType:   ptr(domain.BranchTypeDraft),
		Fields:       map[string]any{"name": "WIP"},
	})
	require.NoError(t, err)
	require.True(t, res.OK())

	row := res.Row
	require.NotNil(t, row.BranchID)
	assert.True(t, strings.HasPrefix(*row.BranchID, "nbrch_"))
	assert.Equal(t, domain.BranchTypeDraft, row.BranchType)
	require.NotNil(t, row.SuggestedByUserID)
	assert.Equal(t, int64(1), *row.SuggestedByUserID)
}

func TestEngine_Create_SystemManagedKey(t *testing.T) {
	t.Parallel()

	engine := newNoteEngine(newNoteStore(), &fakePerms{
		collection: grants(domain.PermissionSeeCollection, domain.PermissionPublishTool),
	})

	// A payload carrying system-managed state is a caller bug, not user
	// input: it must surface as a hard error, not a failure value.
	_, err := engine.Create(ctxWith(testViewer(1)), CreateInput{
		CollectionID: collectionNodeID(testCollectionID),
		Fields:       map[string]any{"name": "Greeting", "isArchived": true},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "system-managed")
}

func TestEngine_Create_RemixUnimplemented(t *testing.T) {
	t.Parallel()

	engine := newNoteEngine(newNoteStore(), &fakePerms{
		collection: grants(domain.PermissionSeeCollection),
	})

	_, err := engine.Create(ctxWith(testViewer(1)), CreateInput{
		CollectionID: collectionNodeID(testCollectionID),
		BranchType:   ptr(domain.BranchTypeRemix),
		Fields:       map[string]any{"name": "Greeting"},
	})
	require.Error(t, err)
}

func TestEngine_Create_InvalidPayload(t *testing.T) {
	t.Parallel()

	engine := newNoteEngine(newNoteStore(), &fakePerms{
		collection: grants(domain.PermissionSeeCollection, domain.PermissionPublishTool),
	})

	res, err := engine.Create(ctxWith(testViewer(1)), CreateInput{
		CollectionID: collectionNodeID(testCollectionID),
		Fields:       map[string]any{"name": 42},
	})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailInvalidValue, res.Failure.Code)
}

func TestEngine_Create_OrgScoped(t *testing.T) {
	t.Parallel()

	store := newBannerStore()

	t.Run("member without manage permission", func(t *testing.T) {
		engine := newBannerEngine(store, &fakePerms{})
		res, err := engine.Create(ctxWith(testViewer(1)), CreateInput{
			Fields: map[string]any{"title": "Welcome"},
		})
		require.NoError(t, err)
		require.False(t, res.OK())
		assert.Equal(t, FailPermission, res.Failure.Code)
	})

	t.Run("org admin", func(t *testing.T) {
		engine := newBannerEngine(store, &fakePerms{orgAdmin: true})
		res, err := engine.Create(ctxWith(testViewer(1)), CreateInput{
			Fields: map[string]any{"title": "Welcome"},
		})
		require.NoError(t, err)
		require.True(t, res.OK())
		assert.Equal(t, testOrgID, res.Row.OrganizationID)
		assert.Equal(t, "Welcome", res.Row.Title)
	})
}
