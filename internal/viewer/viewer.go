// Package viewer carries the authenticated actor through one request.
//
// A Viewer is constructed once per request by the auth middleware and passed
// by reference down the call chain. Its permission cache is a plain map owned
// by the struct: valid for one request lifetime, never shared across
// concurrent requests, and therefore unsynchronized.
package viewer

import "github.com/michaelschade/kenchi-sub000/internal/domain"

// CollectionGrant is a resolved, flattened permission set for one collection
// together with the collection's owning organization.
type CollectionGrant struct {
	Permissions    domain.PermissionSet
	OrganizationID int64
}

// Viewer is the request-scoped actor context. A nil *Viewer (or one with a
// nil User) means the request is unauthenticated.
type Viewer struct {
	User     *domain.User
	GroupIDs []int64

	permCache map[int64]CollectionGrant
}

// New builds a Viewer for an authenticated user.
func New(user *domain.User, groupIDs []int64) *Viewer {
	return &Viewer{User: user, GroupIDs: groupIDs}
}

// Authenticated reports whether the viewer represents a signed-in user.
func (v *Viewer) Authenticated() bool {
	return v != nil && v.User != nil
}

// UserID returns the acting user's id; 0 when unauthenticated.
func (v *Viewer) UserID() int64 {
	if !v.Authenticated() {
		return 0
	}
	return v.User.ID
}

// OrganizationID returns the acting user's organization id; 0 when
// unauthenticated.
func (v *Viewer) OrganizationID() int64 {
	if !v.Authenticated() {
		return 0
	}
	return v.User.OrganizationID
}

// CachedGrant returns the memoized permission grant for a collection, if the
// permission oracle already resolved it during this request.
func (v *Viewer) CachedGrant(collectionID int64) (CollectionGrant, bool) {
	if v == nil || v.permCache == nil {
		return CollectionGrant{}, false
	}
	g, ok := v.permCache[collectionID]
	return g, ok
}

// StoreGrant memoizes a resolved permission grant for a collection.
func (v *Viewer) StoreGrant(collectionID int64, g CollectionGrant) {
	if v == nil {
		return
	}
	if v.permCache == nil {
		v.permCache = make(map[int64]CollectionGrant)
	}
	v.permCache[collectionID] = g
}
