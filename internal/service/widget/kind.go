package widget

import (
	"fmt"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
)

// widgetKind binds the versioning engine to the widget tables and payload.
// Widgets are org-scoped building blocks embedded into spaces.
type widgetKind struct{}

func (widgetKind) Name() string         { return "widget" }
func (widgetKind) StaticPrefix() string { return ids.PrefixWidget }
func (widgetKind) BranchPrefix() string { return ids.PrefixWidgetBranch }
func (widgetKind) NodeTag() string      { return ids.PrefixWidget }

func (widgetKind) CollectionScoped() bool { return false }
func (widgetKind) PublishPermission() domain.CollectionPermission {
	// Never consulted: org-scoped kinds publish via OrgManagePermission.
	return ""
}
func (widgetKind) OrgManagePermission() domain.OrgPermission {
	return domain.OrgPermissionManageWidgets
}

func (widgetKind) New() *domain.Widget { return &domain.Widget{} }

func (widgetKind) Preserved(w *domain.Widget) map[string]any {
	return map[string]any{
		"organizationId": w.OrganizationID,
		"contents":       w.Contents,
		"inputs":         w.Inputs,
	}
}

func (widgetKind) Apply(w *domain.Widget, fields map[string]any) error {
	var err error
	if w.OrganizationID, _, err = versioning.FieldInt64(fields, "organizationId"); err != nil {
		return err
	}
	if w.Contents, _, err = versioning.FieldMap(fields, "contents"); err != nil {
		return err
	}
	if w.Inputs, _, err = versioning.FieldMapSlice(fields, "inputs"); err != nil {
		return err
	}

	return validateContents(w.Contents)
}

// validateContents requires a document-shaped contents value: an object whose
// "children" entry is an array. Anything else renders as nothing on the
// client side, so reject it up front.
func validateContents(contents map[string]any) error {
	if contents == nil {
		return fmt.Errorf("field %q: required: %w", "contents", domain.ErrValidation)
	}
	children, ok := contents["children"]
	if !ok {
		return fmt.Errorf("field %q: missing children array: %w", "contents", domain.ErrValidation)
	}
	switch children.(type) {
	case []any, []map[string]any:
		return nil
	default:
		return fmt.Errorf("field %q: children must be an array: %w", "contents", domain.ErrValidation)
	}
}
