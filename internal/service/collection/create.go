package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// CreateInput carries the inputs of Create.
type CreateInput struct {
	Name               string
	Description        string
	Icon               *string
	DefaultPermissions []domain.PermissionGroup
}

// Create makes a new collection in the viewer's organization. Requires the
// org-level manage_collections permission. The creator additionally receives
// an explicit admin ACL entry so the collection stays manageable even with
// empty default permissions.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Collection, error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return nil, fmt.Errorf("create collection: %w", domain.ErrUnauthorized)
	}
	if !s.perms.HasOrgPermission(ctx, v, domain.OrgPermissionManageCollections, v.OrganizationID()) {
		return nil, fmt.Errorf("create collection: %w", domain.ErrForbidden)
	}

	if in.Name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if err := validatePermissionGroups("defaultPermissions", in.DefaultPermissions); err != nil {
		return nil, err
	}

	created, err := s.collections.Create(ctx, &domain.Collection{
		OrganizationID:     v.OrganizationID(),
		Name:               in.Name,
		Description:        in.Description,
		Icon:               in.Icon,
		DefaultPermissions: in.DefaultPermissions,
	})
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	creatorEntry := []domain.CollectionACLEntry{{
		CollectionID:    created.ID,
		UserID:          ptrInt64(v.UserID()),
		PermissionGroup: domain.PermissionGroupAdmin,
	}}
	if err := s.collections.ReplaceACL(ctx, created.ID, creatorEntry); err != nil {
		return nil, fmt.Errorf("grant creator acl: %w", err)
	}

	s.log.InfoContext(ctx, "collection created",
		slog.Int64("collection_id", created.ID),
		slog.Int64("user_id", v.UserID()),
	)
	return created, nil
}

func ptrInt64(v int64) *int64 { return &v }
