package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// ACLEntryInput names one grantee and the permission group it receives.
// Exactly one of UserID / UserGroupID must be set.
type ACLEntryInput struct {
	UserID          *string
	UserGroupID     *string
	PermissionGroup domain.PermissionGroup
}

// SetACL replaces the full access-control list of a collection. Requires
// manage_collection_permissions. The caller cannot lock themselves out: their
// own admin entry is re-added when the new list would drop it and they hold
// no org-level override.
func (s *Service) SetACL(ctx context.Context, collectionNodeID string, inputs []ACLEntryInput) ([]domain.CollectionACLEntry, error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return nil, fmt.Errorf("set collection acl: %w", domain.ErrUnauthorized)
	}

	id, err := ids.DecodeNodeIDAs(ids.TagCollection, collectionNodeID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canManage(ctx, v, id)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("collection %d: %w", id, domain.ErrNotFound)
	}

	entries := make([]domain.CollectionACLEntry, 0, len(inputs))
	viewerKeepsAdmin := false
	for i, in := range inputs {
		if (in.UserID == nil) == (in.UserGroupID == nil) {
			return nil, domain.NewValidationError(
				fmt.Sprintf("entries[%d]", i), "exactly one of userId and userGroupId must be set")
		}
		if !in.PermissionGroup.IsValid() {
			return nil, domain.NewValidationError(
				fmt.Sprintf("entries[%d].permissionGroup", i), "unknown permission group "+in.PermissionGroup.String())
		}

		entry := domain.CollectionACLEntry{CollectionID: id, PermissionGroup: in.PermissionGroup}
		if in.UserID != nil {
			userID, err := ids.DecodeNodeIDAs(ids.TagUser, *in.UserID)
			if err != nil {
				return nil, err
			}
			entry.UserID = &userID
			if userID == v.UserID() && in.PermissionGroup == domain.PermissionGroupAdmin {
				viewerKeepsAdmin = true
			}
		} else {
			groupID, err := ids.DecodeNodeIDAs(ids.TagUserGroup, *in.UserGroupID)
			if err != nil {
				return nil, err
			}
			entry.UserGroupID = &groupID
		}
		entries = append(entries, entry)
	}

	if !viewerKeepsAdmin && !s.perms.HasOrgPermission(ctx, v, domain.OrgPermissionManageCollections, v.OrganizationID()) {
		entries = append(entries, domain.CollectionACLEntry{
			CollectionID:    id,
			UserID:          ptrInt64(v.UserID()),
			PermissionGroup: domain.PermissionGroupAdmin,
		})
	}

	if err := s.collections.ReplaceACL(ctx, id, entries); err != nil {
		return nil, fmt.Errorf("set collection acl: %w", err)
	}

	s.log.InfoContext(ctx, "collection acl replaced",
		slog.Int64("collection_id", id),
		slog.Int("entries", len(entries)),
		slog.Int64("user_id", v.UserID()),
	)

	return s.collections.ACLForCollection(ctx, id)
}

// ListACL returns the collection's access-control list. Requires
// manage_collection_permissions; others get not-found.
func (s *Service) ListACL(ctx context.Context, collectionNodeID string) ([]domain.CollectionACLEntry, error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return nil, fmt.Errorf("list collection acl: %w", domain.ErrUnauthorized)
	}

	id, err := ids.DecodeNodeIDAs(ids.TagCollection, collectionNodeID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canManage(ctx, v, id)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("collection %d: %w", id, domain.ErrNotFound)
	}

	return s.collections.ACLForCollection(ctx, id)
}
