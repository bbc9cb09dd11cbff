// Package permission resolves what a viewer may do to organizations and
// collections. Collection grants are resolved once per collection per
// request and memoized on the viewer context.
package permission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/observe"
	"github.com/michaelschade/kenchi-sub000/internal/viewer"
)

// collectionRepo is what the oracle needs from collection storage.
type collectionRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Collection, error)
	ACLForViewer(ctx context.Context, collectionID, userID int64, groupIDs []int64) ([]domain.CollectionACLEntry, error)
}

// Service is the permission oracle.
type Service struct {
	log         *slog.Logger
	collections collectionRepo
	sink        observe.Sink
}

// NewService creates the permission oracle.
func NewService(log *slog.Logger, collections collectionRepo, sink observe.Sink) *Service {
	return &Service{
		log:         log.With("service", "permission"),
		collections: collections,
		sink:        sink,
	}
}

// HasOrgPermission reports whether the viewer holds an organization-level
// permission over the target organization. There is no per-permission
// granularity: organization admins of the same organization hold every org
// permission. A cross-organization probe is anomalous and is captured.
func (s *Service) HasOrgPermission(ctx context.Context, v *viewer.Viewer, p domain.OrgPermission, organizationID int64) bool {
	if !v.Authenticated() {
		return false
	}
	if v.OrganizationID() != organizationID {
		s.sink.CaptureMessage(ctx, "org permission check across organizations",
			slog.String("permission", p.String()),
			slog.Int64("user_id", v.UserID()),
			slog.Int64("user_org_id", v.OrganizationID()),
			slog.Int64("target_org_id", organizationID),
		)
		return false
	}
	return v.User.IsOrganizationAdmin
}

// CollectionPermissions resolves the viewer's flattened permission set on a
// collection together with the collection's owning organization. The result
// is memoized on the viewer for the rest of the request.
func (s *Service) CollectionPermissions(ctx context.Context, v *viewer.Viewer, collectionID int64) (viewer.CollectionGrant, error) {
	if !v.Authenticated() {
		return viewer.CollectionGrant{}, nil
	}

	if grant, hit := v.CachedGrant(collectionID); hit {
		return grant, nil
	}

	collection, err := s.collections.GetByID(ctx, collectionID)
	if err != nil {
		return viewer.CollectionGrant{}, fmt.Errorf("load collection: %w", err)
	}

	entries, err := s.collections.ACLForViewer(ctx, collectionID, v.UserID(), v.GroupIDs)
	if err != nil {
		return viewer.CollectionGrant{}, fmt.Errorf("load collection acl: %w", err)
	}

	groups := make([]domain.PermissionGroup, 0, len(entries)+len(collection.DefaultPermissions))
	for _, entry := range entries {
		if !entry.PermissionGroup.IsValid() {
			s.sink.CaptureMessage(ctx, "unknown permission group on acl entry",
				slog.Int64("acl_id", entry.ID),
				slog.String("group", entry.PermissionGroup.String()),
			)
			continue
		}
		groups = append(groups, entry.PermissionGroup)
	}

	// Org-wide defaults apply only to members of the owning organization.
	if collection.OrganizationID == v.OrganizationID() {
		groups = append(groups, collection.DefaultPermissions...)
	}

	grant := viewer.CollectionGrant{
		Permissions:    domain.ResolvePermissions(groups),
		OrganizationID: collection.OrganizationID,
	}
	v.StoreGrant(collectionID, grant)
	return grant, nil
}

// HasCollectionPermission reports whether the viewer holds a collection
// permission, either through the flattened ACL grant or through the
// org-level manage_collections override. An absent viewer or an absent
// collection yields false, never an error.
func (s *Service) HasCollectionPermission(ctx context.Context, v *viewer.Viewer, collectionID int64, p domain.CollectionPermission) (bool, error) {
	if !v.Authenticated() {
		return false, nil
	}

	grant, err := s.CollectionPermissions(ctx, v, collectionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if grant.Permissions.Has(p) {
		return true, nil
	}

	return s.HasOrgPermission(ctx, v, domain.OrgPermissionManageCollections, grant.OrganizationID), nil
}
