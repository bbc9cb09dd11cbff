package domain

// BranchType classifies a physical row within a logical entity's lifecycle.
type BranchType string

const (
	BranchTypeDraft      BranchType = "draft"
	BranchTypeSuggestion BranchType = "suggestion"
	BranchTypePublished  BranchType = "published"
	// BranchTypeRemix is representable but has no implemented transitions.
	BranchTypeRemix BranchType = "remix"
)

func (b BranchType) String() string { return string(b) }

func (b BranchType) IsValid() bool {
	switch b {
	case BranchTypeDraft, BranchTypeSuggestion, BranchTypePublished, BranchTypeRemix:
		return true
	}
	return false
}

// IsPublished reports whether rows of this branch type live on the published lineage.
func (b BranchType) IsPublished() bool { return b == BranchTypePublished }

// OrgPermission is an organization-level capability. There is no
// per-permission granularity in storage: organization admins hold all of
// them, everyone else holds none.
type OrgPermission string

const (
	OrgPermissionManageUsers        OrgPermission = "manage_users"
	OrgPermissionManageCollections  OrgPermission = "manage_collections"
	OrgPermissionManageSpaces       OrgPermission = "manage_spaces"
	OrgPermissionManageWidgets      OrgPermission = "manage_widgets"
	OrgPermissionManageDataSources  OrgPermission = "manage_data_sources"
	OrgPermissionManageOrgShortcuts OrgPermission = "manage_org_shortcuts"
	OrgPermissionManageOrgSettings  OrgPermission = "manage_org_settings"
)

func (p OrgPermission) String() string { return string(p) }

// CollectionPermission is a collection-scoped capability. Permissions are
// never granted individually in storage; only PermissionGroups are.
type CollectionPermission string

const (
	PermissionSeeCollection         CollectionPermission = "see_collection"
	PermissionManageCollectionPerms CollectionPermission = "manage_collection_permissions"
	PermissionReviewSuggestions     CollectionPermission = "review_suggestions"
	PermissionPublishTool           CollectionPermission = "publish_tool"
	PermissionPublishWorkflow       CollectionPermission = "publish_workflow"
)

func (p CollectionPermission) String() string { return string(p) }

// PermissionGroup is the unit of grant attached to ACL rows and collection
// default-permission lists.
type PermissionGroup string

const (
	PermissionGroupViewer    PermissionGroup = "viewer"
	PermissionGroupPublisher PermissionGroup = "publisher"
	PermissionGroupAdmin     PermissionGroup = "admin"
)

func (g PermissionGroup) String() string { return string(g) }

func (g PermissionGroup) IsValid() bool {
	switch g {
	case PermissionGroupViewer, PermissionGroupPublisher, PermissionGroupAdmin:
		return true
	}
	return false
}
