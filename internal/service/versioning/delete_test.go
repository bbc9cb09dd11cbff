package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

func TestEngine_Delete_Published(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	ctx := ctxWith(testViewer(1))
	published := seedPublished(store, 1)

	res, err := engine.Delete(ctx, noteNodeID(published.ID))
	require.NoError(t, err)
	require.True(t, res.OK())

	row := res.Row
	assert.True(t, row.IsArchived)
	assert.True(t, row.IsLatest)
	assert.Equal(t, domain.BranchTypePublished, row.BranchType)
	require.NotNil(t, row.PreviousVersionID)
	assert.Equal(t, published.ID, *row.PreviousVersionID)
	// The payload survives archival untouched.
	assert.Equal(t, "hello", row.Body)

	old, err := store.FindByID(ctx, published.ID)
	require.NoError(t, err)
	assert.False(t, old.IsLatest)
}

func TestEngine_Delete_PublishedWithoutPermission(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, viewerPerms())
	published := seedPublished(store, 1)

	res, err := engine.Delete(ctxWith(testViewer(1)), noteNodeID(published.ID))
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailPermission, res.Failure.Code)
}

func TestEngine_Delete_AlreadyArchived(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	ctx := ctxWith(testViewer(1))
	published := seedPublished(store, 1)

	first, err := engine.Delete(ctx, noteNodeID(published.ID))
	require.NoError(t, err)
	require.True(t, first.OK())

	second, err := engine.Delete(ctx, noteNodeID(first.Row.ID))
	require.NoError(t, err)
	require.False(t, second.OK())
	assert.Equal(t, FailInvalidValue, second.Failure.Code)
}

func TestEngine_Delete_SuggestionWithdrawnByAuthor(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, viewerPerms())
	published := seedPublished(store, 1)
	suggestion := seedBranch(store, published, domain.BranchTypeSuggestion, 2)

	res, err := engine.Delete(ctxWith(testViewer(2)), noteNodeID(suggestion.ID))
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.True(t, res.Row.IsArchived)
	// Withdrawing one's own suggestion is not a rejection.
	assert.Nil(t, res.Row.Metadata[domain.MetadataArchiveReason])
}

func TestEngine_Delete_SuggestionRejectedByReviewer(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, reviewerPerms())
	published := seedPublished(store, 1)
	suggestion := seedBranch(store, published, domain.BranchTypeSuggestion, 2)

	res, err := engine.Delete(ctxWith(testViewer(1)), noteNodeID(suggestion.ID))
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.True(t, res.Row.IsArchived)
	assert.Equal(t, domain.ArchiveReasonRejected, res.Row.Metadata[domain.MetadataArchiveReason])
}

func TestEngine_Delete_SuggestionWithoutReviewPermission(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, viewerPerms())
	published := seedPublished(store, 1)
	suggestion := seedBranch(store, published, domain.BranchTypeSuggestion, 2)

	res, err := engine.Delete(ctxWith(testViewer(3)), noteNodeID(suggestion.ID))
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailPermission, res.Failure.Code)
}

func TestEngine_Delete_DraftByNonAuthor(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, viewerPerms())
	published := seedPublished(store, 1)
	draft := seedBranch(store, published, domain.BranchTypeDraft, 2)

	res, err := engine.Delete(ctxWith(testViewer(3)), noteNodeID(draft.ID))
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailNotFound, res.Failure.Code)
}

func TestEngine_Delete_UnknownID(t *testing.T) {
	t.Parallel()

	engine := newNoteEngine(newNoteStore(), publisherPerms())

	res, err := engine.Delete(ctxWith(testViewer(1)), "not-a-node-id")
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailNotFound, res.Failure.Code)
}
