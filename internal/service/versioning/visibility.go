package versioning

import (
	"context"
	"errors"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/viewer"
)

// CanView decides whether the viewer may see one physical row.
//
// Organization admins bypass every rule. Org-scoped rows are visible to any
// member of the owning organization. Collection-scoped rows depend on branch
// type: drafts (and remixes) belong to their creator alone; suggestions are
// visible to their creator and suggester, and to suggestion reviewers of the
// permission-relevant collection; published rows require see_collection
// there.
func (e *Engine[R]) CanView(ctx context.Context, v *viewer.Viewer, row R) (bool, error) {
	meta := row.Meta()
	scope := row.Scope()

	if !v.Authenticated() {
		return false, nil
	}

	if scope.OrganizationID != nil {
		if e.perms.HasOrgPermission(ctx, v, e.kind.OrgManagePermission(), *scope.OrganizationID) {
			return true, nil
		}
		return v.OrganizationID() == *scope.OrganizationID, nil
	}

	switch meta.BranchType {
	case domain.BranchTypeDraft, domain.BranchTypeRemix:
		if isAuthor(v, meta) {
			return true, nil
		}
		// Administrative bypass: organization admins of the governing
		// collection's organization see everything in it.
		if !v.User.IsOrganizationAdmin {
			return false, nil
		}
		collectionID, err := e.relevantCollection(ctx, row)
		if err != nil {
			return false, err
		}
		return e.perms.HasCollectionPermission(ctx, v, collectionID, domain.PermissionSeeCollection)

	case domain.BranchTypeSuggestion:
		if isAuthor(v, meta) {
			return true, nil
		}
		collectionID, err := e.relevantCollection(ctx, row)
		if err != nil {
			return false, err
		}
		return e.perms.HasCollectionPermission(ctx, v, collectionID, domain.PermissionReviewSuggestions)

	default:
		collectionID, err := e.relevantCollection(ctx, row)
		if err != nil {
			return false, err
		}
		return e.perms.HasCollectionPermission(ctx, v, collectionID, domain.PermissionSeeCollection)
	}
}

// relevantCollection resolves the collection whose permissions govern a row.
// A row's own collection id may reflect a now-superseded placement, so the
// latest published row's collection wins, then the latest row of the same
// branch, then the row's own.
func (e *Engine[R]) relevantCollection(ctx context.Context, row R) (int64, error) {
	meta := row.Meta()

	if meta.BranchType.IsPublished() && meta.IsLatest {
		return ownCollection(row)
	}

	published, err := e.store.FindFirst(ctx, Filter{
		StaticID:   ptr(meta.StaticID),
		BranchType: ptr(domain.BranchTypePublished),
		IsLatest:   ptr(true),
	})
	if err == nil {
		return ownCollection(published)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}

	if meta.BranchID != nil {
		head, err := e.store.FindFirst(ctx, Filter{
			BranchID: meta.BranchID,
			IsLatest: ptr(true),
		})
		if err == nil {
			return ownCollection(head)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return 0, err
		}
	}

	return ownCollection(row)
}

func ownCollection[R Row](row R) (int64, error) {
	scope := row.Scope()
	if scope.CollectionID == nil {
		return 0, errors.New("row has no collection")
	}
	return *scope.CollectionID, nil
}
