package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

func TestEngine_Restore_Published(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	ctx := ctxWith(testViewer(1))
	published := seedPublished(store, 1)

	archived, err := engine.Delete(ctx, noteNodeID(published.ID))
	require.NoError(t, err)
	require.True(t, archived.OK())

	res, err := engine.Restore(ctx, noteNodeID(archived.Row.ID))
	require.NoError(t, err)
	require.True(t, res.OK())

	row := res.Row
	assert.False(t, row.IsArchived)
	assert.True(t, row.IsLatest)
	require.NotNil(t, row.PreviousVersionID)
	assert.Equal(t, archived.Row.ID, *row.PreviousVersionID)
	assert.Equal(t, "hello", row.Body)
}

func TestEngine_Restore_NotArchived(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	published := seedPublished(store, 1)

	res, err := engine.Restore(ctxWith(testViewer(1)), noteNodeID(published.ID))
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailInvalidValue, res.Failure.Code)
}

func TestEngine_Restore_SuggestionStaysClosed(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, reviewerPerms())
	published := seedPublished(store, 1)
	suggestion := seedBranch(store, published, domain.BranchTypeSuggestion, 2)

	closed, err := engine.Delete(ctxWith(testViewer(1)), noteNodeID(suggestion.ID))
	require.NoError(t, err)
	require.True(t, closed.OK())

	res, err := engine.Restore(ctxWith(testViewer(2)), noteNodeID(closed.Row.ID))
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailInvalidValue, res.Failure.Code)
}

func TestEngine_Restore_DraftByAuthor(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, viewerPerms())
	published := seedPublished(store, 1)
	draft := seedBranch(store, published, domain.BranchTypeDraft, 2)

	closed, err := engine.Delete(ctxWith(testViewer(2)), noteNodeID(draft.ID))
	require.NoError(t, err)
	require.True(t, closed.OK())

	res, err := engine.Restore(ctxWith(testViewer(2)), noteNodeID(closed.Row.ID))
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.False(t, res.Row.IsArchived)
}

func TestEngine_Restore_DraftByNonAuthor(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, viewerPerms())
	published := seedPublished(store, 1)
	draft := seedBranch(store, published, domain.BranchTypeDraft, 2)

	closed, err := engine.Delete(ctxWith(testViewer(2)), noteNodeID(draft.ID))
	require.NoError(t, err)
	require.True(t, closed.OK())

	res, err := engine.Restore(ctxWith(testViewer(3)), noteNodeID(closed.Row.ID))
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailNotFound, res.Failure.Code)
}
