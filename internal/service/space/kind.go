package space

import (
	"fmt"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
)

// spaceKind binds the versioning engine to the space tables and payload.
// Spaces live at the organization scope: there is no per-collection
// permission, only manage_spaces.
type spaceKind struct{}

func (spaceKind) Name() string         { return "space" }
func (spaceKind) StaticPrefix() string { return ids.PrefixSpace }
func (spaceKind) BranchPrefix() string { return ids.PrefixSpaceBranch }
func (spaceKind) NodeTag() string      { return ids.PrefixSpace }

func (spaceKind) CollectionScoped() bool { return false }
func (spaceKind) PublishPermission() domain.CollectionPermission {
	// Never consulted: org-scoped kinds publish via OrgManagePermission.
	return ""
}
func (spaceKind) OrgManagePermission() domain.OrgPermission {
	return domain.OrgPermissionManageSpaces
}

func (spaceKind) New() *domain.Space { return &domain.Space{} }

func (spaceKind) Preserved(s *domain.Space) map[string]any {
	return map[string]any{
		"organizationId":  s.OrganizationID,
		"name":            s.Name,
		"icon":            stringPtrValue(s.Icon),
		"visibleToGroups": s.VisibleToGroups,
		"widgets":         s.Widgets,
	}
}

func (spaceKind) Apply(s *domain.Space, fields map[string]any) error {
	var err error
	if s.OrganizationID, _, err = versioning.FieldInt64(fields, "organizationId"); err != nil {
		return err
	}
	if s.Name, _, err = versioning.FieldString(fields, "name"); err != nil {
		return err
	}
	if s.Icon, _, err = versioning.FieldStringPtr(fields, "icon"); err != nil {
		return err
	}
	if s.VisibleToGroups, _, err = versioning.FieldMapSlice(fields, "visibleToGroups"); err != nil {
		return err
	}
	if s.Widgets, _, err = versioning.FieldMapSlice(fields, "widgets"); err != nil {
		return err
	}

	if s.Name == "" {
		return fmt.Errorf("field %q: required: %w", "name", domain.ErrValidation)
	}
	return nil
}

func stringPtrValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
