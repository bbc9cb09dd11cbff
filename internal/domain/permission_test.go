package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPermissions_Viewer(t *testing.T) {
	t.Parallel()

	set := GroupPermissions(PermissionGroupViewer)
	assert.True(t, set.Has(PermissionSeeCollection))
	assert.False(t, set.Has(PermissionPublishTool))
	assert.False(t, set.Has(PermissionManageCollectionPerms))
}

func TestGroupPermissions_PublisherIncludesViewer(t *testing.T) {
	t.Parallel()

	set := GroupPermissions(PermissionGroupPublisher)
	assert.True(t, set.Has(PermissionSeeCollection))
	assert.True(t, set.Has(PermissionPublishTool))
	assert.True(t, set.Has(PermissionPublishWorkflow))
	assert.False(t, set.Has(PermissionReviewSuggestions))
}

func TestGroupPermissions_AdminIncludesEverything(t *testing.T) {
	t.Parallel()

	set := GroupPermissions(PermissionGroupAdmin)
	for _, p := range []CollectionPermission{
		PermissionSeeCollection,
		PermissionPublishTool,
		PermissionPublishWorkflow,
		PermissionManageCollectionPerms,
		PermissionReviewSuggestions,
	} {
		assert.True(t, set.Has(p), "admin should hold %s", p)
	}
}

func TestGroupPermissions_UnknownGroup(t *testing.T) {
	t.Parallel()

	set := GroupPermissions(PermissionGroup("owner"))
	assert.Empty(t, set)
}

func TestResolvePermissions_Union(t *testing.T) {
	t.Parallel()

	set := ResolvePermissions([]PermissionGroup{PermissionGroupViewer, PermissionGroupPublisher})
	assert.True(t, set.Has(PermissionSeeCollection))
	assert.True(t, set.Has(PermissionPublishTool))
	assert.False(t, set.Has(PermissionManageCollectionPerms))
}

func TestResolvePermissions_Empty(t *testing.T) {
	t.Parallel()

	set := ResolvePermissions(nil)
	assert.Empty(t, set)
}

func TestGroupPermissions_ReturnsCopy(t *testing.T) {
	t.Parallel()

	set := GroupPermissions(PermissionGroupViewer)
	set.Add(PermissionManageCollectionPerms)

	fresh := GroupPermissions(PermissionGroupViewer)
	require.False(t, fresh.Has(PermissionManageCollectionPerms))
}
