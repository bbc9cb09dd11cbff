package domain

import "time"

// User is an authenticated member of an organization.
type User struct {
	ID                  int64
	OrganizationID      int64
	Email               string
	Name                *string
	PasswordDigest      *string
	IsOrganizationAdmin bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// UserGroup is a named set of users within an organization. ACL rows may be
// scoped to a group instead of an individual user.
type UserGroup struct {
	ID             int64
	OrganizationID int64
	Name           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
