package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

func publisherPerms() *fakePerms {
	return &fakePerms{collection: grants(
		domain.PermissionSeeCollection,
		domain.PermissionPublishTool,
	)}
}

func viewerPerms() *fakePerms {
	return &fakePerms{collection: grants(domain.PermissionSeeCollection)}
}

func TestEngine_Update_PublishedInPlace(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	published := seedPublished(store, 1)

	res, err := engine.Update(ctxWith(testViewer(1)), UpdateInput{
		ID:     noteNodeID(published.ID),
		Fields: map[string]any{"body": "updated"},
	})
	require.NoError(t, err)
	require.True(t, res.OK())

	row := res.Row
	assert.Equal(t, published.StaticID, row.StaticID)
	assert.True(t, row.IsLatest)
	require.NotNil(t, row.PreviousVersionID)
	assert.Equal(t, published.ID, *row.PreviousVersionID)
	assert.Equal(t, "updated", row.Body)
	// Absent keys preserve the previous version's value.
	assert.Equal(t, "Greeting", row.Name)

	old, err := store.FindByID(ctxWith(testViewer(1)), published.ID)
	require.NoError(t, err)
	assert.False(t, old.IsLatest, "superseded row must be retired")
}

func TestEngine_Update_NilValueClearsField(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	published := seedPublished(store, 1)

	res, err := engine.Update(ctxWith(testViewer(1)), UpdateInput{
		ID:     noteNodeID(published.ID),
		Fields: map[string]any{"body": nil},
	})
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, "", res.Row.Body)
	assert.Equal(t, "Greeting", res.Row.Name)
}

func TestEngine_Update_StaleRow(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	published := seedPublished(store, 1)

	first, err := engine.Update(ctxWith(testViewer(1)), UpdateInput{
		ID:     noteNodeID(published.ID),
		Fields: map[string]any{"body": "first"},
	})
	require.NoError(t, err)
	require.True(t, first.OK())

	// A second update against the now-superseded row loses the race.
	second, err := engine.Update(ctxWith(testViewer(1)), UpdateInput{
		ID:     noteNodeID(published.ID),
		Fields: map[string]any{"body": "second"},
	})
	require.NoError(t, err)
	require.False(t, second.OK())
	assert.Equal(t, FailAlreadyModified, second.Failure.Code)
}

func TestEngine_Update_WithoutPublishPermission(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, viewerPerms())
	published := seedPublished(store, 1)

	res, err := engine.Update(ctxWith(testViewer(1)), UpdateInput{
		ID:     noteNodeID(published.ID),
		Fields: map[string]any{"body": "updated"},
	})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailPermission, res.Failure.Code)
}

func TestEngine_Update_BranchOffDraft(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, viewerPerms())
	published := seedPublished(store, 1)

	res, err := engine.Update(ctxWith(testViewer(2)), UpdateInput{
		ID:         noteNodeID(published.ID),
		BranchType: ptr(domain.BranchTypeDraft),
		Fields:     map[string]any{"body": "my edit"},
	})
	require.NoError(t, err)
	require.True(t, res.OK())

	row := res.Row
	assert.Equal(t, published.StaticID, row.StaticID)
	assert.Equal(t, domain.BranchTypeDraft, row.BranchType)
	require.NotNil(t, row.BranchID)
	require.NotNil(t, row.BranchedFromID)
	assert.Equal(t, published.ID, *row.BranchedFromID)
	assert.Equal(t, "my edit", row.Body)

	// Branching must not disturb the published lineage.
	pub, err := store.FindByID(ctxWith(testViewer(2)), published.ID)
	require.NoError(t, err)
	assert.True(t, pub.IsLatest)
}

func TestEngine_Update_SecondOpenBranchRejected(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, viewerPerms())
	published := seedPublished(store, 1)
	seedBranch(store, published, domain.BranchTypeSuggestion, 2)

	res, err := engine.Update(ctxWith(testViewer(2)), UpdateInput{
		ID:         noteNodeID(published.ID),
		BranchType: ptr(domain.BranchTypeSuggestion),
		Fields:     map[string]any{"body": "another"},
	})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailInvalidValue, res.Failure.Code)
	assert.Equal(t, "branchType", res.Failure.Param)
}

func TestEngine_Update_BranchByNonAuthor(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, viewerPerms())
	published := seedPublished(store, 1)
	branch := seedBranch(store, published, domain.BranchTypeDraft, 2)

	// Someone else's draft must read as absent, not as forbidden.
	res, err := engine.Update(ctxWith(testViewer(3)), UpdateInput{
		ID:     noteNodeID(branch.ID),
		Fields: map[string]any{"body": "hijack"},
	})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailNotFound, res.Failure.Code)
}

func TestEngine_Update_BranchByAuthor(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, viewerPerms())
	published := seedPublished(store, 1)
	branch := seedBranch(store, published, domain.BranchTypeDraft, 2)

	res, err := engine.Update(ctxWith(testViewer(2)), UpdateInput{
		ID:     noteNodeID(branch.ID),
		Fields: map[string]any{"body": "second pass"},
	})
	require.NoError(t, err)
	require.True(t, res.OK())

	row := res.Row
	require.NotNil(t, row.BranchID)
	assert.Equal(t, *branch.BranchID, *row.BranchID, "branch lineage continues under the same branch id")
	assert.Equal(t, "second pass", row.Body)
	require.NotNil(t, row.SuggestedByUserID)
	assert.Equal(t, int64(2), *row.SuggestedByUserID)

	old, err := store.FindByID(ctxWith(testViewer(2)), branch.ID)
	require.NoError(t, err)
	assert.False(t, old.IsLatest)
}

func TestEngine_Update_BranchCannotPublishDirectly(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	published := seedPublished(store, 1)
	branch := seedBranch(store, published, domain.BranchTypeDraft, 1)

	res, err := engine.Update(ctxWith(testViewer(1)), UpdateInput{
		ID:         noteNodeID(branch.ID),
		BranchType: ptr(domain.BranchTypePublished),
		Fields:     map[string]any{"body": "straight to prod"},
	})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailInvalidValue, res.Failure.Code)
	assert.Equal(t, "branchType", res.Failure.Param)
}

func TestEngine_Update_MoveCollection(t *testing.T) {
	t.Parallel()

	const otherCollectionID = int64(20)

	setup := func(targetPerms domain.PermissionSet) (*memStore[*noteRow], *Engine[*noteRow], *noteRow) {
		store := newNoteStore()
		perms := publisherPerms()
		perms.collection[otherCollectionID] = targetPerms
		engine := newNoteEngine(store, perms)
		return store, engine, seedPublished(store, 1)
	}

	t.Run("without permission on target", func(t *testing.T) {
		_, engine, published := setup(nil)
		res, err := engine.Update(ctxWith(testViewer(1)), UpdateInput{
			ID:           noteNodeID(published.ID),
			CollectionID: ptr(collectionNodeID(otherCollectionID)),
		})
		require.NoError(t, err)
		require.False(t, res.OK())
		assert.Equal(t, FailPermission, res.Failure.Code)
		assert.Equal(t, "collectionId", res.Failure.Param)
	})

	t.Run("with permission on target", func(t *testing.T) {
		target := make(domain.PermissionSet)
		target.Add(domain.PermissionSeeCollection)
		target.Add(domain.PermissionPublishTool)

		_, engine, published := setup(target)
		res, err := engine.Update(ctxWith(testViewer(1)), UpdateInput{
			ID:           noteNodeID(published.ID),
			CollectionID: ptr(collectionNodeID(otherCollectionID)),
		})
		require.NoError(t, err)
		require.True(t, res.OK())
		assert.Equal(t, otherCollectionID, res.Row.CollectionID)
	})
}
