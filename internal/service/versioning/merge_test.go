package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
)

func reviewerPerms() *fakePerms {
	return &fakePerms{collection: grants(
		domain.PermissionSeeCollection,
		domain.PermissionPublishTool,
		domain.PermissionReviewSuggestions,
	)}
}

func TestEngine_Merge_DraftIntoPublished(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	ctx := ctxWith(testViewer(1))

	published := seedPublished(store, 1)
	branch := seedBranch(store, published, domain.BranchTypeDraft, 1)

	res, err := engine.Merge(ctx, MergeInput{
		FromID: noteNodeID(branch.ID),
		ToID:   ptr(noteNodeID(published.ID)),
	})
	require.NoError(t, err)
	require.True(t, res.OK())

	merged := res.Row
	assert.Equal(t, domain.BranchTypePublished, merged.BranchType)
	assert.True(t, merged.IsLatest)
	assert.Nil(t, merged.BranchID)
	assert.Equal(t, "branch edit", merged.Body, "published row carries the branch content")
	require.NotNil(t, merged.PreviousVersionID)
	assert.Equal(t, published.ID, *merged.PreviousVersionID)
	assert.Equal(t, branch.ID, merged.Metadata[domain.MetadataMergedFromID])

	// The previous published row and the branch head are both retired.
	oldPub, err := store.FindByID(ctx, published.ID)
	require.NoError(t, err)
	assert.False(t, oldPub.IsLatest)
	oldBranch, err := store.FindByID(ctx, branch.ID)
	require.NoError(t, err)
	assert.False(t, oldBranch.IsLatest)

	// The branch is closed with an archived head linking to the merge.
	closed, err := store.FindFirst(ctx, Filter{
		BranchID: branch.BranchID,
		IsLatest: ptr(true),
	})
	require.NoError(t, err)
	assert.True(t, closed.IsArchived)
	assert.Equal(t, domain.ArchiveReasonApproved, closed.Metadata[domain.MetadataArchiveReason])
	assert.Equal(t, merged.ID, closed.Metadata[domain.MetadataMergedToID])
}

func TestEngine_Merge_FirstPublish(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	ctx := ctxWith(testViewer(1))

	// A draft lineage that was never published: no base row exists.
	branchID := ids.NewStaticID("nbrch")
	draft, err := store.Create(ctx, &noteRow{
		VersionMeta: domain.VersionMeta{
			StaticID:          ids.NewStaticID("note"),
			BranchID:          &branchID,
			BranchType:        domain.BranchTypeDraft,
			IsLatest:          true,
			CreatedByUserID:   1,
			SuggestedByUserID: ptr(int64(1)),
		},
		CollectionID: testCollectionID,
		Name:         "Fresh",
		Body:         "first content",
	})
	require.NoError(t, err)

	res, err := engine.Merge(ctx, MergeInput{FromID: noteNodeID(draft.ID)})
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, domain.BranchTypePublished, res.Row.BranchType)
	assert.Nil(t, res.Row.PreviousVersionID)
	assert.Equal(t, "first content", res.Row.Body)
}

func TestEngine_Merge_FirstPublishRace(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	ctx := ctxWith(testViewer(1))

	published := seedPublished(store, 1)
	branch := seedBranch(store, published, domain.BranchTypeDraft, 1)

	// Omitting toId asserts "never published"; an existing published head
	// makes that assertion stale.
	res, err := engine.Merge(ctx, MergeInput{FromID: noteNodeID(branch.ID)})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailAlreadyModified, res.Failure.Code)
	assert.Equal(t, "toId", res.Failure.Param)
}

func TestEngine_Merge_TargetFromDifferentLineage(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	ctx := ctxWith(testViewer(1))

	published := seedPublished(store, 1)
	branch := seedBranch(store, published, domain.BranchTypeDraft, 1)
	unrelated := seedPublished(store, 1)

	res, err := engine.Merge(ctx, MergeInput{
		FromID: noteNodeID(branch.ID),
		ToID:   ptr(noteNodeID(unrelated.ID)),
	})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailInvalidValue, res.Failure.Code)
	assert.Equal(t, "toId", res.Failure.Param)
}

func TestEngine_Merge_TargetNotPublished(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	ctx := ctxWith(testViewer(1))

	published := seedPublished(store, 1)
	first := seedBranch(store, published, domain.BranchTypeDraft, 1)
	second := seedBranch(store, published, domain.BranchTypeDraft, 2)

	res, err := engine.Merge(ctx, MergeInput{
		FromID: noteNodeID(first.ID),
		ToID:   ptr(noteNodeID(second.ID)),
	})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailInvalidValue, res.Failure.Code)
}

func TestEngine_Merge_SuggestionNeedsReviewPermission(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	ctx := ctxWith(testViewer(1))

	published := seedPublished(store, 1)
	suggestion := seedBranch(store, published, domain.BranchTypeSuggestion, 2)

	// publish_tool alone is not enough to accept someone's suggestion.
	res, err := newNoteEngine(store, publisherPerms()).Merge(ctx, MergeInput{
		FromID: noteNodeID(suggestion.ID),
		ToID:   ptr(noteNodeID(published.ID)),
	})
	require.NoError(t, err)
	require.False(t, res.OK())
	assert.Equal(t, FailPermission, res.Failure.Code)

	res, err = newNoteEngine(store, reviewerPerms()).Merge(ctx, MergeInput{
		FromID: noteNodeID(suggestion.ID),
		ToID:   ptr(noteNodeID(published.ID)),
	})
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, "branch edit", res.Row.Body)
}

func TestEngine_Merge_FieldOverrides(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	ctx := ctxWith(testViewer(1))

	published := seedPublished(store, 1)
	branch := seedBranch(store, published, domain.BranchTypeDraft, 1)

	res, err := engine.Merge(ctx, MergeInput{
		FromID: noteNodeID(branch.ID),
		ToID:   ptr(noteNodeID(published.ID)),
		Fields: map[string]any{"body": "final copy"},
	})
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, "final copy", res.Row.Body)
}
