// Package collection implements CRUD and access-control management for
// collections, the permission-scoping containers of tools and workflows.
package collection

import (
	"context"
	"log/slog"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/viewer"
)

// collectionRepo is what the service needs from collection storage.
type collectionRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Collection, error)
	ListByOrganization(ctx context.Context, organizationID int64, includeArchived bool) ([]domain.Collection, error)
	Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	Update(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	ACLForCollection(ctx context.Context, collectionID int64) ([]domain.CollectionACLEntry, error)
	ReplaceACL(ctx context.Context, collectionID int64, entries []domain.CollectionACLEntry) error
}

// permissionOracle is what the service needs from the permission layer.
type permissionOracle interface {
	HasCollectionPermission(ctx context.Context, v *viewer.Viewer, collectionID int64, p domain.CollectionPermission) (bool, error)
	HasOrgPermission(ctx context.Context, v *viewer.Viewer, p domain.OrgPermission, orgID int64) bool
}

// Service manages collections.
type Service struct {
	log         *slog.Logger
	collections collectionRepo
	perms       permissionOracle
}

// NewService creates the collection service.
func NewService(log *slog.Logger, collections collectionRepo, perms permissionOracle) *Service {
	return &Service{
		log:         log.With("service", "collection"),
		collections: collections,
		perms:       perms,
	}
}

// canManage reports whether the viewer may administer a collection: either
// through the collection-level admin grant or the org-level override.
func (s *Service) canManage(ctx context.Context, v *viewer.Viewer, collectionID int64) (bool, error) {
	return s.perms.HasCollectionPermission(ctx, v, collectionID, domain.PermissionManageCollectionPerms)
}

func validatePermissionGroups(field string, groups []domain.PermissionGroup) error {
	for _, g := range groups {
		if !g.IsValid() {
			return domain.NewValidationError(field, "unknown permission group "+g.String())
		}
	}
	return nil
}
