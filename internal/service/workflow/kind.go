package workflow

import (
	"fmt"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
)

// workflowKind binds the versioning engine to the workflow tables and payload.
type workflowKind struct{}

func (workflowKind) Name() string         { return "workflow" }
func (workflowKind) StaticPrefix() string { return ids.PrefixWorkflow }
func (workflowKind) BranchPrefix() string { return ids.PrefixWorkflowBranch }
func (workflowKind) NodeTag() string      { return ids.PrefixWorkflow }

func (workflowKind) CollectionScoped() bool { return true }
func (workflowKind) PublishPermission() domain.CollectionPermission {
	return domain.PermissionPublishWorkflow
}
func (workflowKind) OrgManagePermission() domain.OrgPermission {
	return domain.OrgPermissionManageCollections
}

func (workflowKind) New() *domain.Workflow { return &domain.Workflow{} }

func (workflowKind) Preserved(w *domain.Workflow) map[string]any {
	return map[string]any{
		"collectionId": w.CollectionID,
		"name":         w.Name,
		"description":  w.Description,
		"icon":         stringPtrValue(w.Icon),
		"contents":     w.Contents,
		"keywords":     w.Keywords,
	}
}

func (workflowKind) Apply(w *domain.Workflow, fields map[string]any) error {
	var err error
	if w.CollectionID, _, err = versioning.FieldInt64(fields, "collectionId"); err != nil {
		return err
	}
	if w.Name, _, err = versioning.FieldString(fields, "name"); err != nil {
		return err
	}
	if w.Description, _, err = versioning.FieldString(fields, "description"); err != nil {
		return err
	}
	if w.Icon, _, err = versioning.FieldStringPtr(fields, "icon"); err != nil {
		return err
	}
	if w.Contents, _, err = versioning.FieldMapSlice(fields, "contents"); err != nil {
		return err
	}
	if w.Keywords, _, err = versioning.FieldStringSlice(fields, "keywords"); err != nil {
		return err
	}

	if w.Name == "" {
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
