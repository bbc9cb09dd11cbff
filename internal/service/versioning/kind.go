package versioning

import (
	"fmt"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

// Kind describes one concrete versioned entity kind. The engine holds the
// branch-type state machine once; a Kind contributes only names, prefixes,
// the permission bindings, and the payload projector/validator.
type Kind[R Row] interface {
	// Name is the kind's singular name used in logs and error params.
	Name() string
	// StaticPrefix and BranchPrefix tag generated static and branch ids.
	StaticPrefix() string
	BranchPrefix() string
	// NodeTag is the kind tag expected when decoding external node ids.
	NodeTag() string

	// CollectionScoped reports whether rows are permission-scoped through a
	// collection (tools, workflows) or directly through an organization
	// (spaces, widgets).
	CollectionScoped() bool
	// PublishPermission is the collection permission required to publish.
	// Meaningful only for collection-scoped kinds.
	PublishPermission() domain.CollectionPermission
	// OrgManagePermission gates every publish-grade transition of
	// org-scoped kinds.
	OrgManagePermission() domain.OrgPermission

	// New returns a zero row of the kind.
	New() R
	// Preserved projects the row's preservable payload fields: everything
	// kind-specific that is carried forward across versions unless the
	// caller supplies a replacement. System-managed state and
	// majorChangeDescription/metadata are never part of it.
	Preserved(row R) map[string]any
	// Apply writes payload fields onto the row, validating shape per kind.
	// A nil field value clears; an absent key leaves the zero value.
	// Returns an error wrapping domain.ErrValidation on malformed payloads.
	Apply(row R, fields map[string]any) error
}

// systemManagedKeys is the fixed denylist of keys a caller-supplied payload
// may never contain. Hitting it is a programming-contract violation in the
// caller, not user input validation, so it surfaces as a hard internal error.
var systemManagedKeys = map[string]struct{}{
	"id":                     {},
	"staticId":               {},
	"branchId":               {},
	"branchType":             {},
	"isLatest":               {},
	"isArchived":             {},
	"previousVersionId":      {},
	"branchedFromId":         {},
	"createdByUserId":        {},
	"suggestedByUserId":      {},
	"createdAt":              {},
	"metadata":               {},
	"majorChangeDescription": {},
}

// assertNoSystemKeys rejects payloads carrying system-managed keys.
func assertNoSystemKeys(fields map[string]any) error {
	for k := range fields {
		if _, bad := systemManagedKeys[k]; bad {
			return fmt.Errorf("payload key %q is system-managed and must not be supplied by callers", k)
		}
	}
	return nil
}

// mergeFields lays caller overrides over the preserved projection. A key
// present with a nil value clears the field; an absent key preserves it.
func mergeFields(preserved, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(preserved)+len(overrides))
	for k, v := range preserved {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
