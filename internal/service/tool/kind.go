package tool

import (
	"fmt"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
)

// toolKind binds the versioning engine to the tool tables and payload.
type toolKind struct{}

func (toolKind) Name() string         { return "tool" }
func (toolKind) StaticPrefix() string { return ids.PrefixTool }
func (toolKind) BranchPrefix() string { return ids.PrefixToolBranch }
func (toolKind) NodeTag() string      { return ids.PrefixTool }

func (toolKind) CollectionScoped() bool { return true }
func (toolKind) PublishPermission() domain.CollectionPermission {
	return domain.PermissionPublishTool
}
func (toolKind) OrgManagePermission() domain.OrgPermission {
	return domain.OrgPermissionManageCollections
}

func (toolKind) New() *domain.Tool { return &domain.Tool{} }

func (toolKind) Preserved(t *domain.Tool) map[string]any {
	return map[string]any{
		"collectionId":  t.CollectionID,
		"name":          t.Name,
		"description":   t.Description,
		"icon":          stringPtrValue(t.Icon),
		"component":     t.Component,
		"inputs":        t.Inputs,
		"configuration": t.Configuration,
		"keywords":      t.Keywords,
	}
}

func (toolKind) Apply(t *domain.Tool, fields map[string]any) error {
	var err error
	if t.CollectionID, _, err = versioning.FieldInt64(fields, "collectionId"); err != nil {
		return err
	}
	if t.Name, _, err = versioning.FieldString(fields, "name"); err != nil {
		return err
	}
	if t.Description, _, err = versioning.FieldString(fields, "description"); err != nil {
		return err
	}
	if t.Icon, _, err = versioning.FieldStringPtr(fields, "icon"); err != nil {
		return err
	}
	if t.Component, _, err = versioning.FieldString(fields, "component"); err != nil {
		return err
	}
	if t.Inputs, _, err = versioning.FieldMapSlice(fields, "inputs"); err != nil {
		return err
	}
	if t.Configuration, _, err = versioning.FieldMap(fields, "configuration"); err != nil {
		return err
	}
	if t.Keywords, _, err = versioning.FieldStringSlice(fields, "keywords"); err != nil {
		return err
	}

	if t.Name == "" {
		return fmt.Errorf("field %q: required: %w", "name", domain.ErrValidation)
	}
	if t.Component == "" {
		return fmt.Errorf("field %q: required: %w", "component", domain.ErrValidation)
	}
	return nil
}

func stringPtrValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
