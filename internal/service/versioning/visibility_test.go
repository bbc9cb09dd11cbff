package versioning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/viewer"
)

func TestEngine_CanView_Unauthenticated(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, publisherPerms())
	published := seedPublished(store, 1)

	visible, err := engine.CanView(context.Background(), nil, published)
	require.NoError(t, err)
	assert.False(t, visible)
}

func TestEngine_CanView_Published(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	published := seedPublished(store, 1)

	visible, err := newNoteEngine(store, viewerPerms()).CanView(context.Background(), testViewer(2), published)
	require.NoError(t, err)
	assert.True(t, visible)

	hidden, err := newNoteEngine(store, &fakePerms{}).CanView(context.Background(), testViewer(2), published)
	require.NoError(t, err)
	assert.False(t, hidden)
}

func TestEngine_CanView_Draft(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	engine := newNoteEngine(store, viewerPerms())
	published := seedPublished(store, 1)
	draft := seedBranch(store, published, domain.BranchTypeDraft, 2)

	author, err := engine.CanView(context.Background(), testViewer(2), draft)
	require.NoError(t, err)
	assert.True(t, author)

	other, err := engine.CanView(context.Background(), testViewer(3), draft)
	require.NoError(t, err)
	assert.False(t, other, "drafts are private to their author")

	// Organization admins of the governing collection's org see drafts.
	admin := viewer.New(&domain.User{ID: 4, OrganizationID: testOrgID, IsOrganizationAdmin: true}, nil)
	adminSees, err := engine.CanView(context.Background(), admin, draft)
	require.NoError(t, err)
	assert.True(t, adminSees)
}

func TestEngine_CanView_Suggestion(t *testing.T) {
	t.Parallel()

	store := newNoteStore()
	published := seedPublished(store, 1)
	suggestion := seedBranch(store, published, domain.BranchTypeSuggestion, 2)

	reviewer, err := newNoteEngine(store, reviewerPerms()).CanView(context.Background(), testViewer(3), suggestion)
	require.NoError(t, err)
	assert.True(t, reviewer)

	plain, err := newNoteEngine(store, viewerPerms()).CanView(context.Background(), testViewer(3), suggestion)
	require.NoError(t, err)
	assert.False(t, plain, "see_collection alone does not reveal suggestions")
}

func TestEngine_CanView_OrgScoped(t *testing.T) {
	t.Parallel()

	store := newBannerStore()
	engine := newBannerEngine(store, &fakePerms{})

	banner, err := store.Create(context.Background(), &bannerRow{
		VersionMeta: domain.VersionMeta{
			StaticID:        "bnnr_x",
			BranchType:      domain.BranchTypePublished,
			IsLatest:        true,
			CreatedByUserID: 1,
		},
		OrganizationID: testOrgID,
		Title:          "Welcome",
	})
	require.NoError(t, err)

	member, err := engine.CanView(context.Background(), testViewer(2), banner)
	require.NoError(t, err)
	assert.True(t, member, "org-scoped rows are visible to any org member")

	outsider := viewer.New(&domain.User{ID: 9, OrganizationID: 99}, nil)
	cross, err := engine.CanView(context.Background(), outsider, banner)
	require.NoError(t, err)
	assert.False(t, cross)
}

func TestEngine_CanView_GovernedByPublishedCollection(t *testing.T) {
	t.Parallel()

	const movedCollectionID = int64(20)

	store := newNoteStore()
	published := seedPublished(store, 1)
	suggestion := seedBranch(store, published, domain.BranchTypeSuggestion, 2)

	// Move the published head to another collection. The suggestion's own
	// row still points at the original collection, but permissions must
	// follow the current placement.
	require.NoError(t, store.Retire(context.Background(), published.ID))
	moved := *published
	moved.ID = 0
	moved.IsLatest = true
	moved.CollectionID = movedCollectionID
	_, err := store.Create(context.Background(), &moved)
	require.NoError(t, err)

	// Reviewer of the old collection only: no longer enough.
	oldOnly := &fakePerms{collection: grants(
		domain.PermissionSeeCollection,
		domain.PermissionReviewSuggestions,
	)}
	visible, err := newNoteEngine(store, oldOnly).CanView(context.Background(), testViewer(3), suggestion)
	require.NoError(t, err)
	assert.False(t, visible)

	// Reviewer of the new collection: governs.
	newSet := make(domain.PermissionSet)
	newSet.Add(domain.PermissionSeeCollection)
	newSet.Add(domain.PermissionReviewSuggestions)
	newOnly := &fakePerms{collection: map[int64]domain.PermissionSet{movedCollectionID: newSet}}
	visible, err = newNoteEngine(store, newOnly).CanView(context.Background(), testViewer(3), suggestion)
	require.NoError(t, err)
	assert.True(t, visible)
}
