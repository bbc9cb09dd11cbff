package domain

import "time"

// Collection is the permission-scoping container for tools and workflows.
// DefaultPermissions grants the listed permission groups to every member of
// the owning organization without an explicit ACL row.
type Collection struct {
	ID                 int64
	OrganizationID     int64
	Name               string
	Description        string
	Icon               *string
	DefaultPermissions []PermissionGroup
	IsArchived         bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CollectionACLEntry attaches a permission group to either a user or a user
// group for one collection. Exactly one of UserID / UserGroupID is set;
// a group-scoped row may also name a user to narrow it.
type CollectionACLEntry struct {
	ID              int64
	CollectionID    int64
	UserID          *int64
	UserGroupID     *int64
	PermissionGroup PermissionGroup
	CreatedAt       time.Time
}
