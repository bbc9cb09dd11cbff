// Package model holds the hand-written GraphQL models the gqlgen config
// binds against. Row ids carried for field resolvers (loader lookups) are
// suffixed RowID and never appear in the schema.
package model

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/99designs/gqlgen/graphql"
)

// BranchType is the lineage kind of a versioned row.
type BranchType string

const (
	BranchTypePublished  BranchType = "PUBLISHED"
	BranchTypeDraft      BranchType = "DRAFT"
	BranchTypeSuggestion BranchType = "SUGGESTION"
	BranchTypeRemix      BranchType = "REMIX"
)

var AllBranchType = []BranchType{
	BranchTypePublished,
	BranchTypeDraft,
	BranchTypeSuggestion,
	BranchTypeRemix,
}

func (e BranchType) IsValid() bool {
	switch e {
	case BranchTypePublished, BranchTypeDraft, BranchTypeSuggestion, BranchTypeRemix:
		return true
	}
	return false
}

func (e BranchType) String() string {
	return string(e)
}

func (e *BranchType) UnmarshalGQL(v any) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("enums must be strings")
	}

	*e = BranchType(str)
	if !e.IsValid() {
		return fmt.Errorf("%s is not a valid BranchTypeEnum", str)
	}
	return nil
}

func (e BranchType) MarshalGQL(w io.Writer) {
	fmt.Fprint(w, strconv.Quote(e.String()))
}

// CollectionPermission is a collection-level permission group.
type CollectionPermission string

const (
	CollectionPermissionViewer    CollectionPermission = "VIEWER"
	CollectionPermissionPublisher CollectionPermission = "PUBLISHER"
	CollectionPermissionAdmin     CollectionPermission = "ADMIN"
)

var AllCollectionPermission = []CollectionPermission{
	CollectionPermissionViewer,
	CollectionPermissionPublisher,
	CollectionPermissionAdmin,
}

func (e CollectionPermission) IsValid() bool {
	switch e {
	case CollectionPermissionViewer, CollectionPermissionPublisher, CollectionPermissionAdmin:
		return true
	}
	return false
}

func (e CollectionPermission) String() string {
	return string(e)
}

func (e *CollectionPermission) UnmarshalGQL(v any) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("enums must be strings")
	}

	*e = CollectionPermission(str)
	if !e.IsValid() {
		return fmt.Errorf("%s is not a valid CollectionPermissionEnum", str)
	}
	return nil
}

func (e CollectionPermission) MarshalGQL(w io.Writer) {
	fmt.Fprint(w, strconv.Quote(e.String()))
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

// KenchiError is the structured, expected-failure arm of every mutation
// output. Transport-level 500s never take this shape.
type KenchiError struct {
	Type    string  `json:"type"`
	Code    string  `json:"code"`
	Param   *string `json:"param,omitempty"`
	Message string  `json:"message"`
}

// ---------------------------------------------------------------------------
// Entity views
// ---------------------------------------------------------------------------

// User is the GraphQL view of a user.
type User struct {
	ID                  string  `json:"id"`
	Email               string  `json:"email"`
	Name                *string `json:"name,omitempty"`
	IsOrganizationAdmin bool    `json:"isOrganizationAdmin"`
}

// Viewer is the acting user with their organization context.
type Viewer struct {
	User           *User  `json:"user,omitempty"`
	OrganizationID string `json:"organizationId,omitempty"`
}

// Collection is the GraphQL view of a collection.
type Collection struct {
	ID                 string                 `json:"id"`
	Name               string                 `json:"name"`
	Description        string                 `json:"description"`
	Icon               *string                `json:"icon,omitempty"`
	DefaultPermissions []CollectionPermission `json:"defaultPermissions"`
	IsArchived         bool                   `json:"isArchived"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`

	RowID int64 `json:"-"`
}

// CollectionACLEntry is one grantee of a collection.
type CollectionACLEntry struct {
	ID              string               `json:"id"`
	UserID          *string              `json:"userId,omitempty"`
	UserGroupID     *string              `json:"userGroupId,omitempty"`
	PermissionGroup CollectionPermission `json:"permissionGroup"`
}

// VersionedNode carries the system-managed versioning state shared by every
// versioned entity view.
type VersionedNode struct {
	ID                     string         `json:"id"`
	StaticID               string         `json:"staticId"`
	BranchID               *string        `json:"branchId,omitempty"`
	BranchType             BranchType     `json:"branchType"`
	IsLatest               bool           `json:"isLatest"`
	IsArchived             bool           `json:"isArchived"`
	PreviousVersionID      *string        `json:"previousVersionId,omitempty"`
	BranchedFromID         *string        `json:"branchedFromId,omitempty"`
	Metadata               map[string]any `json:"metadata,omitempty"`
	MajorChangeDescription map[string]any `json:"majorChangeDescription,omitempty"`
	CreatedAt              time.Time      `json:"createdAt"`

	CreatedByUserRowID   int64  `json:"-"`
	SuggestedByUserRowID *int64 `json:"-"`
}

// Tool is the GraphQL view of one tool version.
type Tool struct {
	VersionedNode

	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Icon          *string          `json:"icon,omitempty"`
	Component     string           `json:"component"`
	Inputs        []map[string]any `json:"inputs"`
	Configuration map[string]any   `json:"configuration"`
	Keywords      []string         `json:"keywords"`

	CollectionRowID int64 `json:"-"`
}

// Workflow is the GraphQL view of one workflow version.
type Workflow struct {
	VersionedNode

	Name        string           `json:"name"`
	Description string           `json:"description"`
	Icon        *string          `json:"icon,omitempty"`
	Contents    []map[string]any `json:"contents"`
	Keywords    []string         `json:"keywords"`

	CollectionRowID int64 `json:"-"`
}

// Space is the GraphQL view of one space version.
type Space struct {
	VersionedNode

	Name            string           `json:"name"`
	Icon            *string          `json:"icon,omitempty"`
	VisibleToGroups []map[string]any `json:"visibleToGroups"`
	Widgets         []map[string]any `json:"widgets"`
}

// Widget is the GraphQL view of one widget version.
type Widget struct {
	VersionedNode

	Contents map[string]any   `json:"contents"`
	Inputs   []map[string]any `json:"inputs"`
}

// ---------------------------------------------------------------------------
// Mutation outputs
// ---------------------------------------------------------------------------

// ToolOutput carries either the resulting tool version or an expected error.
type ToolOutput struct {
	Tool  *Tool        `json:"tool,omitempty"`
	Error *KenchiError `json:"error,omitempty"`
}

// WorkflowOutput carries either the resulting workflow version or an
// expected error.
type WorkflowOutput struct {
	Workflow *Workflow    `json:"workflow,omitempty"`
	Error    *KenchiError `json:"error,omitempty"`
}

// SpaceOutput carries either the resulting space version or an expected error.
type SpaceOutput struct {
	Space *Space       `json:"space,omitempty"`
	Error *KenchiError `json:"error,omitempty"`
}

// WidgetOutput carries either the resulting widget version or an expected
// error.
type WidgetOutput struct {
	Widget *Widget      `json:"widget,omitempty"`
	Error  *KenchiError `json:"error,omitempty"`
}

// CollectionOutput carries the resulting collection.
type CollectionOutput struct {
	Collection *Collection  `json:"collection,omitempty"`
	Error      *KenchiError `json:"error,omitempty"`
}

// ---------------------------------------------------------------------------
// Inputs
// ---------------------------------------------------------------------------

// ToolCreateInput is the payload of createTool.
type ToolCreateInput struct {
	CollectionID  string           `json:"collectionId"`
	BranchType    *BranchType      `json:"branchType,omitempty"`
	Name          string           `json:"name"`
	Description   *string          `json:"description,omitempty"`
	Icon          *string          `json:"icon,omitempty"`
	Component     string           `json:"component"`
	Inputs        []map[string]any `json:"inputs,omitempty"`
	Configuration map[string]any   `json:"configuration,omitempty"`
	Keywords      []string         `json:"keywords,omitempty"`
}

// ToolUpdateInput is the partial payload of updateTool. Omittable fields
// distinguish "leave unchanged" (absent) from "clear" (explicit null).
type ToolUpdateInput struct {
	ID                     string                              `json:"id"`
	BranchType             *BranchType                         `json:"branchType,omitempty"`
	CollectionID           *string                             `json:"collectionId,omitempty"`
	Name                   graphql.Omittable[*string]          `json:"name,omitempty"`
	Description            graphql.Omittable[*string]          `json:"description,omitempty"`
	Icon                   graphql.Omittable[*string]          `json:"icon,omitempty"`
	Component              graphql.Omittable[*string]          `json:"component,omitempty"`
	Inputs                 graphql.Omittable[[]map[string]any] `json:"inputs,omitempty"`
	Configuration          graphql.Omittable[map[string]any]   `json:"configuration,omitempty"`
	Keywords               graphql.Omittable[[]string]         `json:"keywords,omitempty"`
	MajorChangeDescription map[string]any                      `json:"majorChangeDescription,omitempty"`
}

// WorkflowCreateInput is the payload of createWorkflow.
type WorkflowCreateInput struct {
	CollectionID string           `json:"collectionId"`
	BranchType   *BranchType      `json:"branchType,omitempty"`
	Name         string           `json:"name"`
	Description  *string          `json:"description,omitempty"`
	Icon         *string          `json:"icon,omitempty"`
	Contents     []map[string]any `json:"contents,omitempty"`
	Keywords     []string         `json:"keywords,omitempty"`
}

// WorkflowUpdateInput is the partial payload of updateWorkflow.
type WorkflowUpdateInput struct {
	ID                     string                              `json:"id"`
	BranchType             *BranchType                         `json:"branchType,omitempty"`
	CollectionID           *string                             `json:"collectionId,omitempty"`
	Name                   graphql.Omittable[*string]          `json:"name,omitempty"`
	Description            graphql.Omittable[*string]          `json:"description,omitempty"`
	Icon                   graphql.Omittable[*string]          `json:"icon,omitempty"`
	Contents               graphql.Omittable[[]map[string]any] `json:"contents,omitempty"`
	Keywords               graphql.Omittable[[]string]         `json:"keywords,omitempty"`
	MajorChangeDescription map[string]any                      `json:"majorChangeDescription,omitempty"`
}

// SpaceCreateInput is the payload of createSpace.
type SpaceCreateInput struct {
	BranchType      *BranchType      `json:"branchType,omitempty"`
	Name            string           `json:"name"`
	Icon            *string          `json:"icon,omitempty"`
	VisibleToGroups []map[string]any `json:"visibleToGroups,omitempty"`
	Widgets         []map[string]any `json:"widgets,omitempty"`
}

// SpaceUpdateInput is the partial payload of updateSpace.
type SpaceUpdateInput struct {
	ID                     string                              `json:"id"`
	BranchType             *BranchType                         `json:"branchType,omitempty"`
	Name                   graphql.Omittable[*string]          `json:"name,omitempty"`
	Icon                   graphql.Omittable[*string]          `json:"icon,omitempty"`
	VisibleToGroups        graphql.Omittable[[]map[string]any] `json:"visibleToGroups,omitempty"`
	Widgets                graphql.Omittable[[]map[string]any] `json:"widgets,omitempty"`
	MajorChangeDescription map[string]any                      `json:"majorChangeDescription,omitempty"`
}

// WidgetCreateInput is the payload of createWidget.
type WidgetCreateInput struct {
	BranchType *BranchType      `json:"branchType,omitempty"`
	Contents   map[string]any   `json:"contents"`
	Inputs     []map[string]any `json:"inputs,omitempty"`
}

// WidgetUpdateInput is the partial payload of updateWidget.
type WidgetUpdateInput struct {
	ID                     string                              `json:"id"`
	BranchType             *BranchType                         `json:"branchType,omitempty"`
	Contents               graphql.Omittable[map[string]any]   `json:"contents,omitempty"`
	Inputs                 graphql.Omittable[[]map[string]any] `json:"inputs,omitempty"`
	MajorChangeDescription map[string]any                      `json:"majorChangeDescription,omitempty"`
}

// MergeInput is the payload of the merge mutations.
type MergeInput struct {
	FromID string         `json:"fromId"`
	ToID   *string        `json:"toId,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

// CollectionCreateInput is the payload of createCollection.
type CollectionCreateInput struct {
	Name               string                 `json:"name"`
	Description        *string                `json:"description,omitempty"`
	Icon               *string                `json:"icon,omitempty"`
	DefaultPermissions []CollectionPermission `json:"defaultPermissions,omitempty"`
}

// CollectionUpdateInput is the partial payload of updateCollection.
type CollectionUpdateInput struct {
	ID                 string                 `json:"id"`
	Name               *string                `json:"name,omitempty"`
	Description        *string                `json:"description,omitempty"`
	Icon               *string                `json:"icon,omitempty"`
	DefaultPermissions []CollectionPermission `json:"defaultPermissions,omitempty"`
}

// ACLEntryInput names one grantee for setCollectionAcl.
type ACLEntryInput struct {
	UserID          *string              `json:"userId,omitempty"`
	UserGroupID     *string              `json:"userGroupId,omitempty"`
	PermissionGroup CollectionPermission `json:"permissionGroup"`
}
