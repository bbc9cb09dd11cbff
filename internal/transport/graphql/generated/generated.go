// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package generated

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/model"
	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// region    ************************** generated!.gotpl **************************

// NewExecutableSchema creates an ExecutableSchema from the ResolverRoot interface.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{
		schema:     cfg.Schema,
		resolvers:  cfg.Resolvers,
		directives: cfg.Directives,
		complexity: cfg.Complexity,
	}
}

type Config struct {
	Schema     *ast.Schema
	Resolvers  ResolverRoot
	Directives DirectiveRoot
	Complexity ComplexityRoot
}

type ResolverRoot interface {
	Collection() CollectionResolver
	Mutation() MutationResolver
	Query() QueryResolver
	Tool() ToolResolver
	Workflow() WorkflowResolver
}

type DirectiveRoot struct {
}

type ComplexityRoot struct {
	Collection struct {
		ACL                func(childComplexity int) int
		CreatedAt          func(childComplexity int) int
		DefaultPermissions func(childComplexity int) int
		Description        func(childComplexity int) int
		ID                 func(childComplexity int) int
		Icon               func(childComplexity int) int
		IsArchived         func(childComplexity int) int
		Name               func(childComplexity int) int
		UpdatedAt          func(childComplexity int) int
	}

	CollectionACLEntry struct {
		ID              func(childComplexity int) int
		PermissionGroup func(childComplexity int) int
		UserGroupID     func(childComplexity int) int
		UserID          func(childComplexity int) int
	}

	CollectionOutput struct {
		Collection func(childComplexity int) int
		Error      func(childComplexity int) int
	}

	KenchiError struct {
		Code    func(childComplexity int) int
		Message func(childComplexity int) int
		Param   func(childComplexity int) int
		Type    func(childComplexity int) int
	}

	Mutation struct {
		ArchiveCollection   func(childComplexity int, id string) int
		CreateCollection    func(childComplexity int, input model.CollectionCreateInput) int
		CreateSpace         func(childComplexity int, input model.SpaceCreateInput) int
		CreateTool          func(childComplexity int, input model.ToolCreateInput) int
		CreateWidget        func(childComplexity int, input model.WidgetCreateInput) int
		CreateWorkflow      func(childComplexity int, input model.WorkflowCreateInput) int
		DeleteSpace         func(childComplexity int, id string) int
		DeleteTool          func(childComplexity int, id string) int
		DeleteWidget        func(childComplexity int, id string) int
		DeleteWorkflow      func(childComplexity int, id string) int
		MergeSpace          func(childComplexity int, input model.MergeInput) int
		MergeTool           func(childComplexity int, input model.MergeInput) int
		MergeWidget         func(childComplexity int, input model.MergeInput) int
		MergeWorkflow       func(childComplexity int, input model.MergeInput) int
		RestoreSpace        func(childComplexity int, id string) int
		RestoreTool         func(childComplexity int, id string) int
		RestoreWidget       func(childComplexity int, id string) int
		RestoreWorkflow     func(childComplexity int, id string) int
		SetCollectionACL    func(childComplexity int, collectionID string, entries []*model.ACLEntryInput) int
		UnarchiveCollection func(childComplexity int, id string) int
		UpdateCollection    func(childComplexity int, input model.CollectionUpdateInput) int
		UpdateSpace         func(childComplexity int, input model.SpaceUpdateInput) int
		UpdateTool          func(childComplexity int, input model.ToolUpdateInput) int
		UpdateWidget        func(childComplexity int, input model.WidgetUpdateInput) int
		UpdateWorkflow      func(childComplexity int, input model.WorkflowUpdateInput) int
	}

	Query struct {
		Collection       func(childComplexity int, id string) int
		Collections      func(childComplexity int, includeArchived *bool) int
		Space            func(childComplexity int, id string) int
		SpaceVersions    func(childComplexity int, staticID string, limit *int) int
		Spaces           func(childComplexity int) int
		Tool             func(childComplexity int, id string) int
		ToolVersions     func(childComplexity int, staticID string, limit *int) int
		Tools            func(childComplexity int, collectionID string) int
		Viewer           func(childComplexity int) int
		Widget           func(childComplexity int, id string) int
		Widgets          func(childComplexity int) int
		Workflow         func(childComplexity int, id string) int
		WorkflowVersions func(childComplexity int, staticID string, limit *int) int
		Workflows        func(childComplexity int, collectionID string) int
	}

	Space struct {
		BranchID               func(childComplexity int) int
		BranchType             func(childComplexity int) int
		BranchedFromID         func(childComplexity int) int
		CreatedAt              func(childComplexity int) int
		ID                     func(childComplexity int) int
		Icon                   func(childComplexity int) int
		IsArchived             func(childComplexity int) int
		IsLatest               func(childComplexity int) int
		MajorChangeDescription func(childComplexity int) int
		Metadata               func(childComplexity int) int
		Name                   func(childComplexity int) int
		PreviousVersionID      func(childComplexity int) int
		StaticID               func(childComplexity int) int
		VisibleToGroups        func(childComplexity int) int
		Widgets                func(childComplexity int) int
	}

	SpaceOutput struct {
		Error func(childComplexity int) int
		Space func(childComplexity int) int
	}

	Tool struct {
		BranchID               func(childComplexity int) int
		BranchType             func(childComplexity int) int
		BranchedFromID         func(childComplexity int) int
		Collection             func(childComplexity int) int
		Component              func(childComplexity int) int
		Configuration          func(childComplexity int) int
		CreatedAt              func(childComplexity int) int
		CreatedByUser          func(childComplexity int) int
		Description            func(childComplexity int) int
		ID                     func(childComplexity int) int
		Icon                   func(childComplexity int) int
		Inputs                 func(childComplexity int) int
		IsArchived             func(childComplexity int) int
		IsLatest               func(childComplexity int) int
		Keywords               func(childComplexity int) int
		MajorChangeDescription func(childComplexity int) int
		Metadata               func(childComplexity int) int
		Name                   func(childComplexity int) int
		PreviousVersionID      func(childComplexity int) int
		StaticID               func(childComplexity int) int
		SuggestedByUser        func(childComplexity int) int
	}

	ToolOutput struct {
		Error func(childComplexity int) int
		Tool  func(childComplexity int) int
	}

	User struct {
		Email               func(childComplexity int) int
		ID                  func(childComplexity int) int
		IsOrganizationAdmin func(childComplexity int) int
		Name                func(childComplexity int) int
	}

	Viewer struct {
		OrganizationID func(childComplexity int) int
		User           func(childComplexity int) int
	}

	Widget struct {
		BranchID               func(childComplexity int) int
		BranchType             func(childComplexity int) int
		BranchedFromID         func(childComplexity int) int
		Contents               func(childComplexity int) int
		CreatedAt              func(childComplexity int) int
		ID                     func(childComplexity int) int
		Inputs                 func(childComplexity int) int
		IsArchived             func(childComplexity int) int
		IsLatest               func(childComplexity int) int
		MajorChangeDescription func(childComplexity int) int
		Metadata               func(childComplexity int) int
		PreviousVersionID      func(childComplexity int) int
		StaticID               func(childComplexity int) int
	}

	WidgetOutput struct {
		Error  func(childComplexity int) int
		Widget func(childComplexity int) int
	}

	Workflow struct {
		BranchID               func(childComplexity int) int
		BranchType             func(childComplexity int) int
		BranchedFromID         func(childComplexity int) int
		Collection             func(childComplexity int) int
		Contents               func(childComplexity int) int
		CreatedAt              func(childComplexity int) int
		CreatedByUser          func(childComplexity int) int
		Description            func(childComplexity int) int
		ID                     func(childComplexity int) int
		Icon                   func(childComplexity int) int
		IsArchived             func(childComplexity int) int
		IsLatest               func(childComplexity int) int
		Keywords               func(childComplexity int) int
		MajorChangeDescription func(childComplexity int) int
		Metadata               func(childComplexity int) int
		Name                   func(childComplexity int) int
		PreviousVersionID      func(childComplexity int) int
		StaticID               func(childComplexity int) int
		SuggestedByUser        func(childComplexity int) int
	}

	WorkflowOutput struct {
		Error    func(childComplexity int) int
		Workflow func(childComplexity int) int
	}
}

type CollectionResolver interface {
	ACL(ctx context.Context, obj *model.Collection) ([]*model.CollectionACLEntry, error)
}
type MutationResolver interface {
	CreateCollection(ctx context.Context, input model.CollectionCreateInput) (*model.CollectionOutput, error)
	UpdateCollection(ctx context.Context, input model.CollectionUpdateInput) (*model.CollectionOutput, error)
	ArchiveCollection(ctx context.Context, id string) (*model.CollectionOutput, error)
	UnarchiveCollection(ctx context.Context, id string) (*model.CollectionOutput, error)
	SetCollectionACL(ctx context.Context, collectionID string, entries []*model.ACLEntryInput) ([]*model.CollectionACLEntry, error)
	CreateSpace(ctx context.Context, input model.SpaceCreateInput) (*model.SpaceOutput, error)
	UpdateSpace(ctx context.Context, input model.SpaceUpdateInput) (*model.SpaceOutput, error)
	MergeSpace(ctx context.Context, input model.MergeInput) (*model.SpaceOutput, error)
	DeleteSpace(ctx context.Context, id string) (*model.SpaceOutput, error)
	RestoreSpace(ctx context.Context, id string) (*model.SpaceOutput, error)
	CreateTool(ctx context.Context, input model.ToolCreateInput) (*model.ToolOutput, error)
	UpdateTool(ctx context.Context, input model.ToolUpdateInput) (*model.ToolOutput, error)
	MergeTool(ctx context.Context, input model.MergeInput) (*model.ToolOutput, error)
	DeleteTool(ctx context.Context, id string) (*model.ToolOutput, error)
	RestoreTool(ctx context.Context, id string) (*model.ToolOutput, error)
	CreateWidget(ctx context.Context, input model.WidgetCreateInput) (*model.WidgetOutput, error)
	UpdateWidget(ctx context.Context, input model.WidgetUpdateInput) (*model.WidgetOutput, error)
	MergeWidget(ctx context.Context, input model.MergeInput) (*model.WidgetOutput, error)
	DeleteWidget(ctx context.Context, id string) (*model.WidgetOutput, error)
	RestoreWidget(ctx context.Context, id string) (*model.WidgetOutput, error)
	CreateWorkflow(ctx context.Context, input model.WorkflowCreateInput) (*model.WorkflowOutput, error)
	UpdateWorkflow(ctx context.Context, input model.WorkflowUpdateInput) (*model.WorkflowOutput, error)
	MergeWorkflow(ctx context.Context, input model.MergeInput) (*model.WorkflowOutput, error)
	DeleteWorkflow(ctx context.Context, id string) (*model.WorkflowOutput, error)
	RestoreWorkflow(ctx context.Context, id string) (*model.WorkflowOutput, error)
}
type QueryResolver interface {
	Collection(ctx context.Context, id string) (*model.Collection, error)
	Collections(ctx context.Context, includeArchived *bool) ([]*model.Collection, error)
	Space(ctx context.Context, id string) (*model.Space, error)
	Spaces(ctx context.Context) ([]*model.Space, error)
	SpaceVersions(ctx context.Context, staticID string, limit *int) ([]*model.Space, error)
	Tool(ctx context.Context, id string) (*model.Tool, error)
	Tools(ctx context.Context, collectionID string) ([]*model.Tool, error)
	ToolVersions(ctx context.Context, staticID string, limit *int) ([]*model.Tool, error)
	Viewer(ctx context.Context) (*model.Viewer, error)
	Widget(ctx context.Context, id string) (*model.Widget, error)
	Widgets(ctx context.Context) ([]*model.Widget, error)
	Workflow(ctx context.Context, id string) (*model.Workflow, error)
	Workflows(ctx context.Context, collectionID string) ([]*model.Workflow, error)
	WorkflowVersions(ctx context.Context, staticID string, limit *int) ([]*model.Workflow, error)
}
type ToolResolver interface {
	Collection(ctx context.Context, obj *model.Tool) (*model.Collection, error)
	CreatedByUser(ctx context.Context, obj *model.Tool) (*model.User, error)
	SuggestedByUser(ctx context.Context, obj *model.Tool) (*model.User, error)
}
type WorkflowResolver interface {
	Collection(ctx context.Context, obj *model.Workflow) (*model.Collection, error)
	CreatedByUser(ctx context.Context, obj *model.Workflow) (*model.User, error)
	SuggestedByUser(ctx context.Context, obj *model.Workflow) (*model.User, error)
}

type executableSchema struct {
	schema     *ast.Schema
	resolvers  ResolverRoot
	directives DirectiveRoot
	complexity ComplexityRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	if e.schema != nil {
		return e.schema
	}
	return parsedSchema
}

func (e *executableSchema) Complexity(ctx context.Context, typeName, field string, childComplexity int, rawArgs map[string]any) (int, bool) {
	ec := executionContext{nil, e, 0, 0, nil}
	_ = ec
	switch typeName + "." + field {

	case "Collection.acl":
		if e.complexity.Collection.ACL == nil {
			break
		}

		return e.complexity.Collection.ACL(childComplexity), true
	case "Collection.createdAt":
		if e.complexity.Collection.CreatedAt == nil {
			break
		}

		return e.complexity.Collection.CreatedAt(childComplexity), true
	case "Collection.defaultPermissions":
		if e.complexity.Collection.DefaultPermissions == nil {
			break
		}

		return e.complexity.Collection.DefaultPermissions(childComplexity), true
	case "Collection.description":
		if e.complexity.Collection.Description == nil {
			break
		}

		return e.complexity.Collection.Description(childComplexity), true
	case "Collection.id":
		if e.complexity.Collection.ID == nil {
			break
		}

		return e.complexity.Collection.ID(childComplexity), true
	case "Collection.icon":
		if e.complexity.Collection.Icon == nil {
			break
		}

		return e.complexity.Collection.Icon(childComplexity), true
	case "Collection.isArchived":
		if e.complexity.Collection.IsArchived == nil {
			break
		}

		return e.complexity.Collection.IsArchived(childComplexity), true
	case "Collection.name":
		if e.complexity.Collection.Name == nil {
			break
		}

		return e.complexity.Collection.Name(childComplexity), true
	case "Collection.updatedAt":
		if e.complexity.Collection.UpdatedAt == nil {
			break
		}

		return e.complexity.Collection.UpdatedAt(childComplexity), true

	case "CollectionACLEntry.id":
		if e.complexity.CollectionACLEntry.ID == nil {
			break
		}

		return e.complexity.CollectionACLEntry.ID(childComplexity), true
	case "CollectionACLEntry.permissionGroup":
		if e.complexity.CollectionACLEntry.PermissionGroup == nil {
			break
		}

		return e.complexity.CollectionACLEntry.PermissionGroup(childComplexity), true
	case "CollectionACLEntry.userGroupId":
		if e.complexity.CollectionACLEntry.UserGroupID == nil {
			break
		}

		return e.complexity.CollectionACLEntry.UserGroupID(childComplexity), true
	case "CollectionACLEntry.userId":
		if e.complexity.CollectionACLEntry.UserID == nil {
			break
		}

		return e.complexity.CollectionACLEntry.UserID(childComplexity), true

	case "CollectionOutput.collection":
		if e.complexity.CollectionOutput.Collection == nil {
			break
		}

		return e.complexity.CollectionOutput.Collection(childComplexity), true
	case "CollectionOutput.error":
		if e.complexity.CollectionOutput.Error == nil {
			break
		}

		return e.complexity.CollectionOutput.Error(childComplexity), true

	case "KenchiError.code":
		if e.complexity.KenchiError.Code == nil {
			break
		}

		return e.complexity.KenchiError.Code(childComplexity), true
	case "KenchiError.message":
		if e.complexity.KenchiError.Message == nil {
			break
		}

		return e.complexity.KenchiError.Message(childComplexity), true
	case "KenchiError.param":
		if e.complexity.KenchiError.Param == nil {
			break
		}

		return e.complexity.KenchiError.Param(childComplexity), true
	case "KenchiError.type":
		if e.complexity.KenchiError.Type == nil {
			break
		}

		return e.complexity.KenchiError.Type(childComplexity), true

	case "Mutation.archiveCollection":
		if e.complexity.Mutation.ArchiveCollection == nil {
			break
		}

		args, err := ec.field_Mutation_archiveCollection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.ArchiveCollection(childComplexity, args["id"].(string)), true
	case "Mutation.createCollection":
		if e.complexity.Mutation.CreateCollection == nil {
			break
		}

		args, err := ec.field_Mutation_createCollection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateCollection(childComplexity, args["input"].(model.CollectionCreateInput)), true
	case "Mutation.createSpace":
		if e.complexity.Mutation.CreateSpace == nil {
			break
		}

		args, err := ec.field_Mutation_createSpace_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateSpace(childComplexity, args["input"].(model.SpaceCreateInput)), true
	case "Mutation.createTool":
		if e.complexity.Mutation.CreateTool == nil {
			break
		}

		args, err := ec.field_Mutation_createTool_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateTool(childComplexity, args["input"].(model.ToolCreateInput)), true
	case "Mutation.createWidget":
		if e.complexity.Mutation.CreateWidget == nil {
			break
		}

		args, err := ec.field_Mutation_createWidget_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateWidget(childComplexity, args["input"].(model.WidgetCreateInput)), true
	case "Mutation.createWorkflow":
		if e.complexity.Mutation.CreateWorkflow == nil {
			break
		}

		args, err := ec.field_Mutation_createWorkflow_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.CreateWorkflow(childComplexity, args["input"].(model.WorkflowCreateInput)), true
	case "Mutation.deleteSpace":
		if e.complexity.Mutation.DeleteSpace == nil {
			break
		}

		args, err := ec.field_Mutation_deleteSpace_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteSpace(childComplexity, args["id"].(string)), true
	case "Mutation.deleteTool":
		if e.complexity.Mutation.DeleteTool == nil {
			break
		}

		args, err := ec.field_Mutation_deleteTool_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteTool(childComplexity, args["id"].(string)), true
	case "Mutation.deleteWidget":
		if e.complexity.Mutation.DeleteWidget == nil {
			break
		}

		args, err := ec.field_Mutation_deleteWidget_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteWidget(childComplexity, args["id"].(string)), true
	case "Mutation.deleteWorkflow":
		if e.complexity.Mutation.DeleteWorkflow == nil {
			break
		}

		args, err := ec.field_Mutation_deleteWorkflow_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.DeleteWorkflow(childComplexity, args["id"].(string)), true
	case "Mutation.mergeSpace":
		if e.complexity.Mutation.MergeSpace == nil {
			break
		}

		args, err := ec.field_Mutation_mergeSpace_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.MergeSpace(childComplexity, args["input"].(model.MergeInput)), true
	case "Mutation.mergeTool":
		if e.complexity.Mutation.MergeTool == nil {
			break
		}

		args, err := ec.field_Mutation_mergeTool_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.MergeTool(childComplexity, args["input"].(model.MergeInput)), true
	case "Mutation.mergeWidget":
		if e.complexity.Mutation.MergeWidget == nil {
			break
		}

		args, err := ec.field_Mutation_mergeWidget_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.MergeWidget(childComplexity, args["input"].(model.MergeInput)), true
	case "Mutation.mergeWorkflow":
		if e.complexity.Mutation.MergeWorkflow == nil {
			break
		}

		args, err := ec.field_Mutation_mergeWorkflow_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.MergeWorkflow(childComplexity, args["input"].(model.MergeInput)), true
	case "Mutation.restoreSpace":
		if e.complexity.Mutation.RestoreSpace == nil {
			break
		}

		args, err := ec.field_Mutation_restoreSpace_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RestoreSpace(childComplexity, args["id"].(string)), true
	case "Mutation.restoreTool":
		if e.complexity.Mutation.RestoreTool == nil {
			break
		}

		args, err := ec.field_Mutation_restoreTool_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RestoreTool(childComplexity, args["id"].(string)), true
	case "Mutation.restoreWidget":
		if e.complexity.Mutation.RestoreWidget == nil {
			break
		}

		args, err := ec.field_Mutation_restoreWidget_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RestoreWidget(childComplexity, args["id"].(string)), true
	case "Mutation.restoreWorkflow":
		if e.complexity.Mutation.RestoreWorkflow == nil {
			break
		}

		args, err := ec.field_Mutation_restoreWorkflow_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.RestoreWorkflow(childComplexity, args["id"].(string)), true
	case "Mutation.setCollectionAcl":
		if e.complexity.Mutation.SetCollectionACL == nil {
			break
		}

		args, err := ec.field_Mutation_setCollectionAcl_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.SetCollectionACL(childComplexity, args["collectionId"].(string), args["entries"].([]*model.ACLEntryInput)), true
	case "Mutation.unarchiveCollection":
		if e.complexity.Mutation.UnarchiveCollection == nil {
			break
		}

		args, err := ec.field_Mutation_unarchiveCollection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UnarchiveCollection(childComplexity, args["id"].(string)), true
	case "Mutation.updateCollection":
		if e.complexity.Mutation.UpdateCollection == nil {
			break
		}

		args, err := ec.field_Mutation_updateCollection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateCollection(childComplexity, args["input"].(model.CollectionUpdateInput)), true
	case "Mutation.updateSpace":
		if e.complexity.Mutation.UpdateSpace == nil {
			break
		}

		args, err := ec.field_Mutation_updateSpace_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateSpace(childComplexity, args["input"].(model.SpaceUpdateInput)), true
	case "Mutation.updateTool":
		if e.complexity.Mutation.UpdateTool == nil {
			break
		}

		args, err := ec.field_Mutation_updateTool_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateTool(childComplexity, args["input"].(model.ToolUpdateInput)), true
	case "Mutation.updateWidget":
		if e.complexity.Mutation.UpdateWidget == nil {
			break
		}

		args, err := ec.field_Mutation_updateWidget_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateWidget(childComplexity, args["input"].(model.WidgetUpdateInput)), true
	case "Mutation.updateWorkflow":
		if e.complexity.Mutation.UpdateWorkflow == nil {
			break
		}

		args, err := ec.field_Mutation_updateWorkflow_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Mutation.UpdateWorkflow(childComplexity, args["input"].(model.WorkflowUpdateInput)), true

	case "Query.collection":
		if e.complexity.Query.Collection == nil {
			break
		}

		args, err := ec.field_Query_collection_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Collection(childComplexity, args["id"].(string)), true
	case "Query.collections":
		if e.complexity.Query.Collections == nil {
			break
		}

		args, err := ec.field_Query_collections_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Collections(childComplexity, args["includeArchived"].(*bool)), true
	case "Query.space":
		if e.complexity.Query.Space == nil {
			break
		}

		args, err := ec.field_Query_space_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Space(childComplexity, args["id"].(string)), true
	case "Query.spaceVersions":
		if e.complexity.Query.SpaceVersions == nil {
			break
		}

		args, err := ec.field_Query_spaceVersions_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.SpaceVersions(childComplexity, args["staticId"].(string), args["limit"].(*int)), true
	case "Query.spaces":
		if e.complexity.Query.Spaces == nil {
			break
		}

		return e.complexity.Query.Spaces(childComplexity), true
	case "Query.tool":
		if e.complexity.Query.Tool == nil {
			break
		}

		args, err := ec.field_Query_tool_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Tool(childComplexity, args["id"].(string)), true
	case "Query.toolVersions":
		if e.complexity.Query.ToolVersions == nil {
			break
		}

		args, err := ec.field_Query_toolVersions_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.ToolVersions(childComplexity, args["staticId"].(string), args["limit"].(*int)), true
	case "Query.tools":
		if e.complexity.Query.Tools == nil {
			break
		}

		args, err := ec.field_Query_tools_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Tools(childComplexity, args["collectionId"].(string)), true
	case "Query.viewer":
		if e.complexity.Query.Viewer == nil {
			break
		}

		return e.complexity.Query.Viewer(childComplexity), true
	case "Query.widget":
		if e.complexity.Query.Widget == nil {
			break
		}

		args, err := ec.field_Query_widget_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Widget(childComplexity, args["id"].(string)), true
	case "Query.widgets":
		if e.complexity.Query.Widgets == nil {
			break
		}

		return e.complexity.Query.Widgets(childComplexity), true
	case "Query.workflow":
		if e.complexity.Query.Workflow == nil {
			break
		}

		args, err := ec.field_Query_workflow_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Workflow(childComplexity, args["id"].(string)), true
	case "Query.workflowVersions":
		if e.complexity.Query.WorkflowVersions == nil {
			break
		}

		args, err := ec.field_Query_workflowVersions_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.WorkflowVersions(childComplexity, args["staticId"].(string), args["limit"].(*int)), true
	case "Query.workflows":
		if e.complexity.Query.Workflows == nil {
			break
		}

		args, err := ec.field_Query_workflows_args(ctx, rawArgs)
		if err != nil {
			return 0, false
		}

		return e.complexity.Query.Workflows(childComplexity, args["collectionId"].(string)), true

	case "Space.branchId":
		if e.complexity.Space.BranchID == nil {
			break
		}

		return e.complexity.Space.BranchID(childComplexity), true
	case "Space.branchType":
		if e.complexity.Space.BranchType == nil {
			break
		}

		return e.complexity.Space.BranchType(childComplexity), true
	case "Space.branchedFromId":
		if e.complexity.Space.BranchedFromID == nil {
			break
		}

		return e.complexity.Space.BranchedFromID(childComplexity), true
	case "Space.createdAt":
		if e.complexity.Space.CreatedAt == nil {
			break
		}

		return e.complexity.Space.CreatedAt(childComplexity), true
	case "Space.id":
		if e.complexity.Space.ID == nil {
			break
		}

		return e.complexity.Space.ID(childComplexity), true
	case "Space.icon":
		if e.complexity.Space.Icon == nil {
			break
		}

		return e.complexity.Space.Icon(childComplexity), true
	case "Space.isArchived":
		if e.complexity.Space.IsArchived == nil {
			break
		}

		return e.complexity.Space.IsArchived(childComplexity), true
	case "Space.isLatest":
		if e.complexity.Space.IsLatest == nil {
			break
		}

		return e.complexity.Space.IsLatest(childComplexity), true
	case "Space.majorChangeDescription":
		if e.complexity.Space.MajorChangeDescription == nil {
			break
		}

		return e.complexity.Space.MajorChangeDescription(childComplexity), true
	case "Space.metadata":
		if e.complexity.Space.Metadata == nil {
			break
		}

		return e.complexity.Space.Metadata(childComplexity), true
	case "Space.name":
		if e.complexity.Space.Name == nil {
			break
		}

		return e.complexity.Space.Name(childComplexity), true
	case "Space.previousVersionId":
		if e.complexity.Space.PreviousVersionID == nil {
			break
		}

		return e.complexity.Space.PreviousVersionID(childComplexity), true
	case "Space.staticId":
		if e.complexity.Space.StaticID == nil {
			break
		}

		return e.complexity.Space.StaticID(childComplexity), true
	case "Space.visibleToGroups":
		if e.complexity.Space.VisibleToGroups == nil {
			break
		}

		return e.complexity.Space.VisibleToGroups(childComplexity), true
	case "Space.widgets":
		if e.complexity.Space.Widgets == nil {
			break
		}

		return e.complexity.Space.Widgets(childComplexity), true

	case "SpaceOutput.error":
		if e.complexity.SpaceOutput.Error == nil {
			break
		}

		return e.complexity.SpaceOutput.Error(childComplexity), true
	case "SpaceOutput.space":
		if e.complexity.SpaceOutput.Space == nil {
			break
		}

		return e.complexity.SpaceOutput.Space(childComplexity), true

	case "Tool.branchId":
		if e.complexity.Tool.BranchID == nil {
			break
		}

		return e.complexity.Tool.BranchID(childComplexity), true
	case "Tool.branchType":
		if e.complexity.Tool.BranchType == nil {
			break
		}

		return e.complexity.Tool.BranchType(childComplexity), true
	case "Tool.branchedFromId":
		if e.complexity.Tool.BranchedFromID == nil {
			break
		}

		return e.complexity.Tool.BranchedFromID(childComplexity), true
	case "Tool.collection":
		if e.complexity.Tool.Collection == nil {
			break
		}

		return e.complexity.Tool.Collection(childComplexity), true
	case "Tool.component":
		if e.complexity.Tool.Component == nil {
			break
		}

		return e.complexity.Tool.Component(childComplexity), true
	case "Tool.configuration":
		if e.complexity.Tool.Configuration == nil {
			break
		}

		return e.complexity.Tool.Configuration(childComplexity), true
	case "Tool.createdAt":
		if e.complexity.Tool.CreatedAt == nil {
			break
		}

		return e.complexity.Tool.CreatedAt(childComplexity), true
	case "Tool.createdByUser":
		if e.complexity.Tool.CreatedByUser == nil {
			break
		}

		return e.complexity.Tool.CreatedByUser(childComplexity), true
	case "Tool.description":
		if e.complexity.Tool.Description == nil {
			break
		}

		return e.complexity.Tool.Description(childComplexity), true
	case "Tool.id":
		if e.complexity.Tool.ID == nil {
			break
		}

		return e.complexity.Tool.ID(childComplexity), true
	case "Tool.icon":
		if e.complexity.Tool.Icon == nil {
			break
		}

		return e.complexity.Tool.Icon(childComplexity), true
	case "Tool.inputs":
		if e.complexity.Tool.Inputs == nil {
			break
		}

		return e.complexity.Tool.Inputs(childComplexity), true
	case "Tool.isArchived":
		if e.complexity.Tool.IsArchived == nil {
			break
		}

		return e.complexity.Tool.IsArchived(childComplexity), true
	case "Tool.isLatest":
		if e.complexity.Tool.IsLatest == nil {
			break
		}

		return e.complexity.Tool.IsLatest(childComplexity), true
	case "Tool.keywords":
		if e.complexity.Tool.Keywords == nil {
			break
		}

		return e.complexity.Tool.Keywords(childComplexity), true
	case "Tool.majorChangeDescription":
		if e.complexity.Tool.MajorChangeDescription == nil {
			break
		}

		return e.complexity.Tool.MajorChangeDescription(childComplexity), true
	case "Tool.metadata":
		if e.complexity.Tool.Metadata == nil {
			break
		}

		return e.complexity.Tool.Metadata(childComplexity), true
	case "Tool.name":
		if e.complexity.Tool.Name == nil {
			break
		}

		return e.complexity.Tool.Name(childComplexity), true
	case "Tool.previousVersionId":
		if e.complexity.Tool.PreviousVersionID == nil {
			break
		}

		return e.complexity.Tool.PreviousVersionID(childComplexity), true
	case "Tool.staticId":
		if e.complexity.Tool.StaticID == nil {
			break
		}

		return e.complexity.Tool.StaticID(childComplexity), true
	case "Tool.suggestedByUser":
		if e.complexity.Tool.SuggestedByUser == nil {
			break
		}

		return e.complexity.Tool.SuggestedByUser(childComplexity), true

	case "ToolOutput.error":
		if e.complexity.ToolOutput.Error == nil {
			break
		}

		return e.complexity.ToolOutput.Error(childComplexity), true
	case "ToolOutput.tool":
		if e.complexity.ToolOutput.Tool == nil {
			break
		}

		return e.complexity.ToolOutput.Tool(childComplexity), true

	case "User.email":
		if e.complexity.User.Email == nil {
			break
		}

		return e.complexity.User.Email(childComplexity), true
	case "User.id":
		if e.complexity.User.ID == nil {
			break
		}

		return e.complexity.User.ID(childComplexity), true
	case "User.isOrganizationAdmin":
		if e.complexity.User.IsOrganizationAdmin == nil {
			break
		}

		return e.complexity.User.IsOrganizationAdmin(childComplexity), true
	case "User.name":
		if e.complexity.User.Name == nil {
			break
		}

		return e.complexity.User.Name(childComplexity), true

	case "Viewer.organizationId":
		if e.complexity.Viewer.OrganizationID == nil {
			break
		}

		return e.complexity.Viewer.OrganizationID(childComplexity), true
	case "Viewer.user":
		if e.complexity.Viewer.User == nil {
			break
		}

		return e.complexity.Viewer.User(childComplexity), true

	case "Widget.branchId":
		if e.complexity.Widget.BranchID == nil {
			break
		}

		return e.complexity.Widget.BranchID(childComplexity), true
	case "Widget.branchType":
		if e.complexity.Widget.BranchType == nil {
			break
		}

		return e.complexity.Widget.BranchType(childComplexity), true
	case "Widget.branchedFromId":
		if e.complexity.Widget.BranchedFromID == nil {
			break
		}

		return e.complexity.Widget.BranchedFromID(childComplexity), true
	case "Widget.contents":
		if e.complexity.Widget.Contents == nil {
			break
		}

		return e.complexity.Widget.Contents(childComplexity), true
	case "Widget.createdAt":
		if e.complexity.Widget.CreatedAt == nil {
			break
		}

		return e.complexity.Widget.CreatedAt(childComplexity), true
	case "Widget.id":
		if e.complexity.Widget.ID == nil {
			break
		}

		return e.complexity.Widget.ID(childComplexity), true
	case "Widget.inputs":
		if e.complexity.Widget.Inputs == nil {
			break
		}

		return e.complexity.Widget.Inputs(childComplexity), true
	case "Widget.isArchived":
		if e.complexity.Widget.IsArchived == nil {
			break
		}

		return e.complexity.Widget.IsArchived(childComplexity), true
	case "Widget.isLatest":
		if e.complexity.Widget.IsLatest == nil {
			break
		}

		return e.complexity.Widget.IsLatest(childComplexity), true
	case "Widget.majorChangeDescription":
		if e.complexity.Widget.MajorChangeDescription == nil {
			break
		}

		return e.complexity.Widget.MajorChangeDescription(childComplexity), true
	case "Widget.metadata":
		if e.complexity.Widget.Metadata == nil {
			break
		}

		return e.complexity.Widget.Metadata(childComplexity), true
	case "Widget.previousVersionId":
		if e.complexity.Widget.PreviousVersionID == nil {
			break
		}

		return e.complexity.Widget.PreviousVersionID(childComplexity), true
	case "Widget.staticId":
		if e.complexity.Widget.StaticID == nil {
			break
		}

		return e.complexity.Widget.StaticID(childComplexity), true

	case "WidgetOutput.error":
		if e.complexity.WidgetOutput.Error == nil {
			break
		}

		return e.complexity.WidgetOutput.Error(childComplexity), true
	case "WidgetOutput.widget":
		if e.complexity.WidgetOutput.Widget == nil {
			break
		}

		return e.complexity.WidgetOutput.Widget(childComplexity), true

	case "Workflow.branchId":
		if e.complexity.Workflow.BranchID == nil {
			break
		}

		return e.complexity.Workflow.BranchID(childComplexity), true
	case "Workflow.branchType":
		if e.complexity.Workflow.BranchType == nil {
			break
		}

		return e.complexity.Workflow.BranchType(childComplexity), true
	case "Workflow.branchedFromId":
		if e.complexity.Workflow.BranchedFromID == nil {
			break
		}

		return e.complexity.Workflow.BranchedFromID(childComplexity), true
	case "Workflow.collection":
		if e.complexity.Workflow.Collection == nil {
			break
		}

		return e.complexity.Workflow.Collection(childComplexity), true
	case "Workflow.contents":
		if e.complexity.Workflow.Contents == nil {
			break
		}

		return e.complexity.Workflow.Contents(childComplexity), true
	case "Workflow.createdAt":
		if e.complexity.Workflow.CreatedAt == nil {
			break
		}

		return e.complexity.Workflow.CreatedAt(childComplexity), true
	case "Workflow.createdByUser":
		if e.complexity.Workflow.CreatedByUser == nil {
			break
		}

		return e.complexity.Workflow.CreatedByUser(childComplexity), true
	case "Workflow.description":
		if e.complexity.Workflow.Description == nil {
			break
		}

		return e.complexity.Workflow.Description(childComplexity), true
	case "Workflow.id":
		if e.complexity.Workflow.ID == nil {
			break
		}

		return e.complexity.Workflow.ID(childComplexity), true
	case "Workflow.icon":
		if e.complexity.Workflow.Icon == nil {
			break
		}

		return e.complexity.Workflow.Icon(childComplexity), true
	case "Workflow.isArchived":
		if e.complexity.Workflow.IsArchived == nil {
			break
		}

		return e.complexity.Workflow.IsArchived(childComplexity), true
	case "Workflow.isLatest":
		if e.complexity.Workflow.IsLatest == nil {
			break
		}

		return e.complexity.Workflow.IsLatest(childComplexity), true
	case "Workflow.keywords":
		if e.complexity.Workflow.Keywords == nil {
			break
		}

		return e.complexity.Workflow.Keywords(childComplexity), true
	case "Workflow.majorChangeDescription":
		if e.complexity.Workflow.MajorChangeDescription == nil {
			break
		}

		return e.complexity.Workflow.MajorChangeDescription(childComplexity), true
	case "Workflow.metadata":
		if e.complexity.Workflow.Metadata == nil {
			break
		}

		return e.complexity.Workflow.Metadata(childComplexity), true
	case "Workflow.name":
		if e.complexity.Workflow.Name == nil {
			break
		}

		return e.complexity.Workflow.Name(childComplexity), true
	case "Workflow.previousVersionId":
		if e.complexity.Workflow.PreviousVersionID == nil {
			break
		}

		return e.complexity.Workflow.PreviousVersionID(childComplexity), true
	case "Workflow.staticId":
		if e.complexity.Workflow.StaticID == nil {
			break
		}

		return e.complexity.Workflow.StaticID(childComplexity), true
	case "Workflow.suggestedByUser":
		if e.complexity.Workflow.SuggestedByUser == nil {
			break
		}

		return e.complexity.Workflow.SuggestedByUser(childComplexity), true

	case "WorkflowOutput.error":
		if e.complexity.WorkflowOutput.Error == nil {
			break
		}

		return e.complexity.WorkflowOutput.Error(childComplexity), true
	case "WorkflowOutput.workflow":
		if e.complexity.WorkflowOutput.Workflow == nil {
			break
		}

		return e.complexity.WorkflowOutput.Workflow(childComplexity), true

	}
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := executionContext{opCtx, e, 0, 0, make(chan graphql.DeferredResult)}
	inputUnmarshalMap := graphql.BuildUnmarshalerMap(
		ec.unmarshalInputACLEntryInput,
		ec.unmarshalInputCollectionCreateInput,
		ec.unmarshalInputCollectionUpdateInput,
		ec.unmarshalInputMergeInput,
		ec.unmarshalInputSpaceCreateInput,
		ec.unmarshalInputSpaceUpdateInput,
		ec.unmarshalInputToolCreateInput,
		ec.unmarshalInputToolUpdateInput,
		ec.unmarshalInputWidgetCreateInput,
		ec.unmarshalInputWidgetUpdateInput,
		ec.unmarshalInputWorkflowCreateInput,
		ec.unmarshalInputWorkflowUpdateInput,
	)
	first := true

	switch opCtx.Operation.Operation {
	case ast.Query:
		return func(ctx context.Context) *graphql.Response {
			var response graphql.Response
			var data graphql.Marshaler
			if first {
				first = false
				ctx = graphql.WithUnmarshalerMap(ctx, inputUnmarshalMap)
				data = ec._Query(ctx, opCtx.Operation.SelectionSet)
			} else {
				if atomic.LoadInt32(&ec.pendingDeferred) > 0 {
					result := <-ec.deferredResults
					atomic.AddInt32(&ec.pendingDeferred, -1)
					data = result.Result
					response.Path = result.Path
					response.Label = result.Label
					response.Errors = result.Errors
				} else {
					return nil
				}
			}
			var buf bytes.Buffer
			data.MarshalGQL(&buf)
			response.Data = buf.Bytes()
			if atomic.LoadInt32(&ec.deferred) > 0 {
				hasNext := atomic.LoadInt32(&ec.pendingDeferred) > 0
				response.HasNext = &hasNext
			}

			return &response
		}
	case ast.Mutation:
		return func(ctx context.Context) *graphql.Response {
			if !first {
				return nil
			}
			first = false
			ctx = graphql.WithUnmarshalerMap(ctx, inputUnmarshalMap)
			data := ec._Mutation(ctx, opCtx.Operation.SelectionSet)
			var buf bytes.Buffer
			data.MarshalGQL(&buf)

			return &graphql.Response{
				Data: buf.Bytes(),
			}
		}

	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}
}

type executionContext struct {
	*graphql.OperationContext
	*executableSchema
	deferred        int32
	pendingDeferred int32
	deferredResults chan graphql.DeferredResult
}

func (ec *executionContext) processDeferredGroup(dg graphql.DeferredGroup) {
	atomic.AddInt32(&ec.pendingDeferred, 1)
	go func() {
		ctx := graphql.WithFreshResponseContext(dg.Context)
		dg.FieldSet.Dispatch(ctx)
		ds := graphql.DeferredResult{
			Path:   dg.Path,
			Label:  dg.Label,
			Result: dg.FieldSet,
			Errors: graphql.GetErrors(ctx),
		}
		// null fields should bubble up
		if dg.FieldSet.Invalids > 0 {
			ds.Result = graphql.Null
		}
		ec.deferredResults <- ds
	}()
}

func (ec *executionContext) introspectSchema() (*introspection.Schema, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapSchema(ec.Schema()), nil
}

func (ec *executionContext) introspectType(name string) (*introspection.Type, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapTypeFromDef(ec.Schema(), ec.Schema().Types[name]), nil
}

var sources = []*ast.Source{
	{Name: "../schema/collection.graphql", Input: `enum CollectionPermission {
  VIEWER
  PUBLISHER
  ADMIN
}

type Collection {
  id: ID!
  name: String!
  description: String!
  icon: String
  defaultPermissions: [CollectionPermission!]!
  isArchived: Boolean!
  createdAt: DateTime!
  updatedAt: DateTime!
  acl: [CollectionACLEntry!]!
}

type CollectionACLEntry {
  id: ID!
  userId: ID
  userGroupId: ID
  permissionGroup: CollectionPermission!
}

type CollectionOutput {
  collection: Collection
  error: KenchiError
}

input CollectionCreateInput {
  name: String!
  description: String
  icon: String
  defaultPermissions: [CollectionPermission!]
}

input CollectionUpdateInput {
  id: ID!
  name: String
  description: String
  icon: String
  defaultPermissions: [CollectionPermission!]
}

input ACLEntryInput {
  userId: ID
  userGroupId: ID
  permissionGroup: CollectionPermission!
}

extend type Query {
  collection(id: ID!): Collection
  collections(includeArchived: Boolean): [Collection!]!
}

extend type Mutation {
  createCollection(input: CollectionCreateInput!): CollectionOutput!
  updateCollection(input: CollectionUpdateInput!): CollectionOutput!
  archiveCollection(id: ID!): CollectionOutput!
  unarchiveCollection(id: ID!): CollectionOutput!
  setCollectionAcl(collectionId: ID!, entries: [ACLEntryInput!]!): [CollectionACLEntry!]!
}
`, BuiltIn: false},
	{Name: "../schema/schema.graphql", Input: `scalar DateTime
scalar JSONObject
scalar SlateNodes

type Query
type Mutation

enum BranchType {
  PUBLISHED
  DRAFT
  SUGGESTION
  REMIX
}

"""
KenchiError is the expected-failure arm of every mutation output.
Transport-level errors never take this shape.
"""
type KenchiError {
  type: String!
  code: String!
  param: String
  message: String!
}

type User {
  id: ID!
  email: String!
  name: String
  isOrganizationAdmin: Boolean!
}

input MergeInput {
  fromId: ID!
  toId: ID
  fields: JSONObject
}
`, BuiltIn: false},
	{Name: "../schema/space.graphql", Input: `type Space {
  id: ID!
  staticId: String!
  branchId: String
  branchType: BranchType!
  isLatest: Boolean!
  isArchived: Boolean!
  previousVersionId: ID
  branchedFromId: ID
  metadata: JSONObject
  majorChangeDescription: JSONObject
  createdAt: DateTime!
  name: String!
  icon: String
  visibleToGroups: [JSONObject!]
  widgets: [JSONObject!]
}

type SpaceOutput {
  space: Space
  error: KenchiError
}

input SpaceCreateInput {
  branchType: BranchType
  name: String!
  icon: String
  visibleToGroups: [JSONObject!]
  widgets: [JSONObject!]
}

input SpaceUpdateInput {
  id: ID!
  branchType: BranchType
  name: String
  icon: String
  visibleToGroups: [JSONObject!]
  widgets: [JSONObject!]
  majorChangeDescription: JSONObject
}

extend type Query {
  space(id: ID!): Space
  spaces: [Space!]!
  spaceVersions(staticId: String!, limit: Int): [Space!]!
}

extend type Mutation {
  createSpace(input: SpaceCreateInput!): SpaceOutput!
  updateSpace(input: SpaceUpdateInput!): SpaceOutput!
  mergeSpace(input: MergeInput!): SpaceOutput!
  deleteSpace(id: ID!): SpaceOutput!
  restoreSpace(id: ID!): SpaceOutput!
}
`, BuiltIn: false},
	{Name: "../schema/tool.graphql", Input: `type Tool {
  id: ID!
  staticId: String!
  branchId: String
  branchType: BranchType!
  isLatest: Boolean!
  isArchived: Boolean!
  previousVersionId: ID
  branchedFromId: ID
  metadata: JSONObject
  majorChangeDescription: JSONObject
  createdAt: DateTime!
  name: String!
  description: String!
  icon: String
  component: String!
  inputs: [JSONObject!]
  configuration: JSONObject
  keywords: [String!]
  collection: Collection!
  createdByUser: User!
  suggestedByUser: User
}

type ToolOutput {
  tool: Tool
  error: KenchiError
}

input ToolCreateInput {
  collectionId: ID!
  branchType: BranchType
  name: String!
  description: String
  icon: String
  component: String!
  inputs: [JSONObject!]
  configuration: JSONObject
  keywords: [String!]
}

input ToolUpdateInput {
  id: ID!
  branchType: BranchType
  collectionId: ID
  name: String
  description: String
  icon: String
  component: String
  inputs: [JSONObject!]
  configuration: JSONObject
  keywords: [String!]
  majorChangeDescription: JSONObject
}

extend type Query {
  tool(id: ID!): Tool
  tools(collectionId: ID!): [Tool!]!
  toolVersions(staticId: String!, limit: Int): [Tool!]!
}

extend type Mutation {
  createTool(input: ToolCreateInput!): ToolOutput!
  updateTool(input: ToolUpdateInput!): ToolOutput!
  mergeTool(input: MergeInput!): ToolOutput!
  deleteTool(id: ID!): ToolOutput!
  restoreTool(id: ID!): ToolOutput!
}
`, BuiltIn: false},
	{Name: "../schema/viewer.graphql", Input: `type Viewer {
  user: User
  organizationId: String!
}

extend type Query {
  viewer: Viewer!
}
`, BuiltIn: false},
	{Name: "../schema/widget.graphql", Input: `type Widget {
  id: ID!
  staticId: String!
  branchId: String
  branchType: BranchType!
  isLatest: Boolean!
  isArchived: Boolean!
  previousVersionId: ID
  branchedFromId: ID
  metadata: JSONObject
  majorChangeDescription: JSONObject
  createdAt: DateTime!
  contents: JSONObject!
  inputs: [JSONObject!]
}

type WidgetOutput {
  widget: Widget
  error: KenchiError
}

input WidgetCreateInput {
  branchType: BranchType
  contents: JSONObject!
  inputs: [JSONObject!]
}

input WidgetUpdateInput {
  id: ID!
  branchType: BranchType
  contents: JSONObject
  inputs: [JSONObject!]
  majorChangeDescription: JSONObject
}

extend type Query {
  widget(id: ID!): Widget
  widgets: [Widget!]!
}

extend type Mutation {
  createWidget(input: WidgetCreateInput!): WidgetOutput!
  updateWidget(input: WidgetUpdateInput!): WidgetOutput!
  mergeWidget(input: MergeInput!): WidgetOutput!
  deleteWidget(id: ID!): WidgetOutput!
  restoreWidget(id: ID!): WidgetOutput!
}
`, BuiltIn: false},
	{Name: "../schema/workflow.graphql", Input: `type Workflow {
  id: ID!
  staticId: String!
  branchId: String
  branchType: BranchType!
  isLatest: Boolean!
  isArchived: Boolean!
  previousVersionId: ID
  branchedFromId: ID
  metadata: JSONObject
  majorChangeDescription: JSONObject
  createdAt: DateTime!
  name: String!
  description: String!
  icon: String
  contents: SlateNodes
  keywords: [String!]
  collection: Collection!
  createdByUser: User!
  suggestedByUser: User
}

type WorkflowOutput {
  workflow: Workflow
  error: KenchiError
}

input WorkflowCreateInput {
  collectionId: ID!
  branchType: BranchType
  name: String!
  description: String
  icon: String
  contents: SlateNodes
  keywords: [String!]
}

input WorkflowUpdateInput {
  id: ID!
  branchType: BranchType
  collectionId: ID
  name: String
  description: String
  icon: String
  contents: SlateNodes
  keywords: [String!]
  majorChangeDescription: JSONObject
}

extend type Query {
  workflow(id: ID!): Workflow
  workflows(collectionId: ID!): [Workflow!]!
  workflowVersions(staticId: String!, limit: Int): [Workflow!]!
}

extend type Mutation {
  createWorkflow(input: WorkflowCreateInput!): WorkflowOutput!
  updateWorkflow(input: WorkflowUpdateInput!): WorkflowOutput!
  mergeWorkflow(input: MergeInput!): WorkflowOutput!
  deleteWorkflow(id: ID!): WorkflowOutput!
  restoreWorkflow(id: ID!): WorkflowOutput!
}
`, BuiltIn: false},
}
var parsedSchema = gqlparser.MustLoadSchema(sources...)

// endregion ************************** generated!.gotpl **************************

// region    ***************************** args.gotpl *****************************

func (ec *executionContext) field_Mutation_archiveCollection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createCollection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCollectionCreateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionCreateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createSpace_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNSpaceCreateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceCreateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createTool_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNToolCreateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolCreateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createWidget_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNWidgetCreateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetCreateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_createWorkflow_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNWorkflowCreateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowCreateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteSpace_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteTool_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteWidget_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_deleteWorkflow_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_mergeSpace_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNMergeInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐMergeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_mergeTool_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNMergeInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐMergeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_mergeWidget_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNMergeInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐMergeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_mergeWorkflow_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNMergeInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐMergeInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_restoreSpace_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_restoreTool_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_restoreWidget_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_restoreWorkflow_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_setCollectionAcl_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "collectionId", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["collectionId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "entries", ec.unmarshalNACLEntryInput2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐACLEntryInputᚄ)
	if err != nil {
		return nil, err
	}
	args["entries"] = arg1
	return args, nil
}

func (ec *executionContext) field_Mutation_unarchiveCollection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateCollection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNCollectionUpdateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionUpdateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateSpace_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNSpaceUpdateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceUpdateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateTool_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNToolUpdateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolUpdateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateWidget_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNWidgetUpdateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetUpdateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Mutation_updateWorkflow_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "input", ec.unmarshalNWorkflowUpdateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowUpdateInput)
	if err != nil {
		return nil, err
	}
	args["input"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query___type_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "name", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["name"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_collection_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_collections_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeArchived", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeArchived"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_spaceVersions_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "staticId", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["staticId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_space_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_toolVersions_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "staticId", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["staticId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_tool_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_tools_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "collectionId", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["collectionId"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_widget_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_workflowVersions_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "staticId", ec.unmarshalNString2string)
	if err != nil {
		return nil, err
	}
	args["staticId"] = arg0
	arg1, err := graphql.ProcessArgField(ctx, rawArgs, "limit", ec.unmarshalOInt2ᚖint)
	if err != nil {
		return nil, err
	}
	args["limit"] = arg1
	return args, nil
}

func (ec *executionContext) field_Query_workflow_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "id", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["id"] = arg0
	return args, nil
}

func (ec *executionContext) field_Query_workflows_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "collectionId", ec.unmarshalNID2string)
	if err != nil {
		return nil, err
	}
	args["collectionId"] = arg0
	return args, nil
}

func (ec *executionContext) field___Directive_args_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Field_args_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2ᚖbool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Type_enumValues_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

func (ec *executionContext) field___Type_fields_args(ctx context.Context, rawArgs map[string]any) (map[string]any, error) {
	var err error
	args := map[string]any{}
	arg0, err := graphql.ProcessArgField(ctx, rawArgs, "includeDeprecated", ec.unmarshalOBoolean2bool)
	if err != nil {
		return nil, err
	}
	args["includeDeprecated"] = arg0
	return args, nil
}

// endregion ***************************** args.gotpl *****************************

// region    ************************** directives.gotpl **************************

// endregion ************************** directives.gotpl **************************

// region    **************************** field.gotpl *****************************

func (ec *executionContext) _Collection_id(ctx context.Context, field graphql.CollectedField, obj *model.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_name(ctx context.Context, field graphql.CollectedField, obj *model.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_description(ctx context.Context, field graphql.CollectedField, obj *model.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_description,
		func(ctx context.Context) (any, error) {
			return obj.Description, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_icon(ctx context.Context, field graphql.CollectedField, obj *model.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_icon,
		func(ctx context.Context) (any, error) {
			return obj.Icon, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Collection_icon(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_defaultPermissions(ctx context.Context, field graphql.CollectedField, obj *model.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_defaultPermissions,
		func(ctx context.Context) (any, error) {
			return obj.DefaultPermissions, nil
		},
		nil,
		ec.marshalNCollectionPermission2ᚕgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermissionᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_defaultPermissions(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type CollectionPermission does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_isArchived(ctx context.Context, field graphql.CollectedField, obj *model.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_isArchived,
		func(ctx context.Context) (any, error) {
			return obj.IsArchived, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_isArchived(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_createdAt(ctx context.Context, field graphql.CollectedField, obj *model.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_updatedAt(ctx context.Context, field graphql.CollectedField, obj *model.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_updatedAt,
		func(ctx context.Context) (any, error) {
			return obj.UpdatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_updatedAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Collection_acl(ctx context.Context, field graphql.CollectedField, obj *model.Collection) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Collection_acl,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Collection().ACL(ctx, obj)
		},
		nil,
		ec.marshalNCollectionACLEntry2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionACLEntryᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Collection_acl(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Collection",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionACLEntry_id(ctx, field)
			case "userId":
				return ec.fieldContext_CollectionACLEntry_userId(ctx, field)
			case "userGroupId":
				return ec.fieldContext_CollectionACLEntry_userGroupId(ctx, field)
			case "permissionGroup":
				return ec.fieldContext_CollectionACLEntry_permissionGroup(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionACLEntry", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionACLEntry_id(ctx context.Context, field graphql.CollectedField, obj *model.CollectionACLEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionACLEntry_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionACLEntry_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionACLEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionACLEntry_userId(ctx context.Context, field graphql.CollectedField, obj *model.CollectionACLEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionACLEntry_userId,
		func(ctx context.Context) (any, error) {
			return obj.UserID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_CollectionACLEntry_userId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionACLEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionACLEntry_userGroupId(ctx context.Context, field graphql.CollectedField, obj *model.CollectionACLEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionACLEntry_userGroupId,
		func(ctx context.Context) (any, error) {
			return obj.UserGroupID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_CollectionACLEntry_userGroupId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionACLEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionACLEntry_permissionGroup(ctx context.Context, field graphql.CollectedField, obj *model.CollectionACLEntry) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionACLEntry_permissionGroup,
		func(ctx context.Context) (any, error) {
			return obj.PermissionGroup, nil
		},
		nil,
		ec.marshalNCollectionPermission2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermission,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_CollectionACLEntry_permissionGroup(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionACLEntry",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type CollectionPermission does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionOutput_collection(ctx context.Context, field graphql.CollectedField, obj *model.CollectionOutput) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionOutput_collection,
		func(ctx context.Context) (any, error) {
			return obj.Collection, nil
		},
		nil,
		ec.marshalOCollection2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollection,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_CollectionOutput_collection(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionOutput",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "name":
				return ec.fieldContext_Collection_name(ctx, field)
			case "description":
				return ec.fieldContext_Collection_description(ctx, field)
			case "icon":
				return ec.fieldContext_Collection_icon(ctx, field)
			case "defaultPermissions":
				return ec.fieldContext_Collection_defaultPermissions(ctx, field)
			case "isArchived":
				return ec.fieldContext_Collection_isArchived(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Collection_updatedAt(ctx, field)
			case "acl":
				return ec.fieldContext_Collection_acl(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _CollectionOutput_error(ctx context.Context, field graphql.CollectedField, obj *model.CollectionOutput) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_CollectionOutput_error,
		func(ctx context.Context) (any, error) {
			return obj.Error, nil
		},
		nil,
		ec.marshalOKenchiError2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐKenchiError,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_CollectionOutput_error(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "CollectionOutput",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "type":
				return ec.fieldContext_KenchiError_type(ctx, field)
			case "code":
				return ec.fieldContext_KenchiError_code(ctx, field)
			case "param":
				return ec.fieldContext_KenchiError_param(ctx, field)
			case "message":
				return ec.fieldContext_KenchiError_message(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type KenchiError", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _KenchiError_type(ctx context.Context, field graphql.CollectedField, obj *model.KenchiError) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_KenchiError_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_KenchiError_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "KenchiError",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _KenchiError_code(ctx context.Context, field graphql.CollectedField, obj *model.KenchiError) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_KenchiError_code,
		func(ctx context.Context) (any, error) {
			return obj.Code, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_KenchiError_code(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "KenchiError",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _KenchiError_param(ctx context.Context, field graphql.CollectedField, obj *model.KenchiError) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_KenchiError_param,
		func(ctx context.Context) (any, error) {
			return obj.Param, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_KenchiError_param(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "KenchiError",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _KenchiError_message(ctx context.Context, field graphql.CollectedField, obj *model.KenchiError) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_KenchiError_message,
		func(ctx context.Context) (any, error) {
			return obj.Message, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_KenchiError_message(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "KenchiError",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createCollection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createCollection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateCollection(ctx, fc.Args["input"].(model.CollectionCreateInput))
		},
		nil,
		ec.marshalNCollectionOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createCollection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "collection":
				return ec.fieldContext_CollectionOutput_collection(ctx, field)
			case "error":
				return ec.fieldContext_CollectionOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createCollection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateCollection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateCollection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateCollection(ctx, fc.Args["input"].(model.CollectionUpdateInput))
		},
		nil,
		ec.marshalNCollectionOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateCollection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "collection":
				return ec.fieldContext_CollectionOutput_collection(ctx, field)
			case "error":
				return ec.fieldContext_CollectionOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateCollection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_archiveCollection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_archiveCollection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().ArchiveCollection(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNCollectionOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_archiveCollection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "collection":
				return ec.fieldContext_CollectionOutput_collection(ctx, field)
			case "error":
				return ec.fieldContext_CollectionOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_archiveCollection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_unarchiveCollection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_unarchiveCollection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UnarchiveCollection(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNCollectionOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_unarchiveCollection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "collection":
				return ec.fieldContext_CollectionOutput_collection(ctx, field)
			case "error":
				return ec.fieldContext_CollectionOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_unarchiveCollection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_setCollectionAcl(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_setCollectionAcl,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().SetCollectionACL(ctx, fc.Args["collectionId"].(string), fc.Args["entries"].([]*model.ACLEntryInput))
		},
		nil,
		ec.marshalNCollectionACLEntry2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionACLEntryᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_setCollectionAcl(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_CollectionACLEntry_id(ctx, field)
			case "userId":
				return ec.fieldContext_CollectionACLEntry_userId(ctx, field)
			case "userGroupId":
				return ec.fieldContext_CollectionACLEntry_userGroupId(ctx, field)
			case "permissionGroup":
				return ec.fieldContext_CollectionACLEntry_permissionGroup(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type CollectionACLEntry", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_setCollectionAcl_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createSpace(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createSpace,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateSpace(ctx, fc.Args["input"].(model.SpaceCreateInput))
		},
		nil,
		ec.marshalNSpaceOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createSpace(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "space":
				return ec.fieldContext_SpaceOutput_space(ctx, field)
			case "error":
				return ec.fieldContext_SpaceOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SpaceOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createSpace_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateSpace(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateSpace,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateSpace(ctx, fc.Args["input"].(model.SpaceUpdateInput))
		},
		nil,
		ec.marshalNSpaceOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateSpace(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "space":
				return ec.fieldContext_SpaceOutput_space(ctx, field)
			case "error":
				return ec.fieldContext_SpaceOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SpaceOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateSpace_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_mergeSpace(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_mergeSpace,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().MergeSpace(ctx, fc.Args["input"].(model.MergeInput))
		},
		nil,
		ec.marshalNSpaceOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_mergeSpace(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "space":
				return ec.fieldContext_SpaceOutput_space(ctx, field)
			case "error":
				return ec.fieldContext_SpaceOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SpaceOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_mergeSpace_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteSpace(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteSpace,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteSpace(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNSpaceOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteSpace(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "space":
				return ec.fieldContext_SpaceOutput_space(ctx, field)
			case "error":
				return ec.fieldContext_SpaceOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SpaceOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteSpace_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_restoreSpace(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_restoreSpace,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RestoreSpace(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNSpaceOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_restoreSpace(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "space":
				return ec.fieldContext_SpaceOutput_space(ctx, field)
			case "error":
				return ec.fieldContext_SpaceOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type SpaceOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_restoreSpace_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createTool(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createTool,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateTool(ctx, fc.Args["input"].(model.ToolCreateInput))
		},
		nil,
		ec.marshalNToolOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createTool(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "tool":
				return ec.fieldContext_ToolOutput_tool(ctx, field)
			case "error":
				return ec.fieldContext_ToolOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ToolOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createTool_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateTool(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateTool,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateTool(ctx, fc.Args["input"].(model.ToolUpdateInput))
		},
		nil,
		ec.marshalNToolOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateTool(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "tool":
				return ec.fieldContext_ToolOutput_tool(ctx, field)
			case "error":
				return ec.fieldContext_ToolOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ToolOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateTool_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_mergeTool(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_mergeTool,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().MergeTool(ctx, fc.Args["input"].(model.MergeInput))
		},
		nil,
		ec.marshalNToolOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_mergeTool(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "tool":
				return ec.fieldContext_ToolOutput_tool(ctx, field)
			case "error":
				return ec.fieldContext_ToolOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ToolOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_mergeTool_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteTool(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteTool,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteTool(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNToolOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteTool(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "tool":
				return ec.fieldContext_ToolOutput_tool(ctx, field)
			case "error":
				return ec.fieldContext_ToolOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ToolOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteTool_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_restoreTool(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_restoreTool,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RestoreTool(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNToolOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_restoreTool(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "tool":
				return ec.fieldContext_ToolOutput_tool(ctx, field)
			case "error":
				return ec.fieldContext_ToolOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type ToolOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_restoreTool_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createWidget(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createWidget,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateWidget(ctx, fc.Args["input"].(model.WidgetCreateInput))
		},
		nil,
		ec.marshalNWidgetOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createWidget(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "widget":
				return ec.fieldContext_WidgetOutput_widget(ctx, field)
			case "error":
				return ec.fieldContext_WidgetOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type WidgetOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createWidget_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateWidget(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateWidget,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateWidget(ctx, fc.Args["input"].(model.WidgetUpdateInput))
		},
		nil,
		ec.marshalNWidgetOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateWidget(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "widget":
				return ec.fieldContext_WidgetOutput_widget(ctx, field)
			case "error":
				return ec.fieldContext_WidgetOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type WidgetOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateWidget_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_mergeWidget(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_mergeWidget,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().MergeWidget(ctx, fc.Args["input"].(model.MergeInput))
		},
		nil,
		ec.marshalNWidgetOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_mergeWidget(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "widget":
				return ec.fieldContext_WidgetOutput_widget(ctx, field)
			case "error":
				return ec.fieldContext_WidgetOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type WidgetOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_mergeWidget_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteWidget(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteWidget,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteWidget(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNWidgetOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteWidget(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "widget":
				return ec.fieldContext_WidgetOutput_widget(ctx, field)
			case "error":
				return ec.fieldContext_WidgetOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type WidgetOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteWidget_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_restoreWidget(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_restoreWidget,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RestoreWidget(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNWidgetOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_restoreWidget(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "widget":
				return ec.fieldContext_WidgetOutput_widget(ctx, field)
			case "error":
				return ec.fieldContext_WidgetOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type WidgetOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_restoreWidget_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_createWorkflow(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_createWorkflow,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().CreateWorkflow(ctx, fc.Args["input"].(model.WorkflowCreateInput))
		},
		nil,
		ec.marshalNWorkflowOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_createWorkflow(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "workflow":
				return ec.fieldContext_WorkflowOutput_workflow(ctx, field)
			case "error":
				return ec.fieldContext_WorkflowOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type WorkflowOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_createWorkflow_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_updateWorkflow(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_updateWorkflow,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().UpdateWorkflow(ctx, fc.Args["input"].(model.WorkflowUpdateInput))
		},
		nil,
		ec.marshalNWorkflowOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_updateWorkflow(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "workflow":
				return ec.fieldContext_WorkflowOutput_workflow(ctx, field)
			case "error":
				return ec.fieldContext_WorkflowOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type WorkflowOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_updateWorkflow_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_mergeWorkflow(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_mergeWorkflow,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().MergeWorkflow(ctx, fc.Args["input"].(model.MergeInput))
		},
		nil,
		ec.marshalNWorkflowOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_mergeWorkflow(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "workflow":
				return ec.fieldContext_WorkflowOutput_workflow(ctx, field)
			case "error":
				return ec.fieldContext_WorkflowOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type WorkflowOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_mergeWorkflow_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_deleteWorkflow(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_deleteWorkflow,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().DeleteWorkflow(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNWorkflowOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_deleteWorkflow(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "workflow":
				return ec.fieldContext_WorkflowOutput_workflow(ctx, field)
			case "error":
				return ec.fieldContext_WorkflowOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type WorkflowOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_deleteWorkflow_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Mutation_restoreWorkflow(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Mutation_restoreWorkflow,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Mutation().RestoreWorkflow(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalNWorkflowOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowOutput,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Mutation_restoreWorkflow(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Mutation",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "workflow":
				return ec.fieldContext_WorkflowOutput_workflow(ctx, field)
			case "error":
				return ec.fieldContext_WorkflowOutput_error(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type WorkflowOutput", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Mutation_restoreWorkflow_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_collection(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_collection,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Collection(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalOCollection2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollection,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_collection(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "name":
				return ec.fieldContext_Collection_name(ctx, field)
			case "description":
				return ec.fieldContext_Collection_description(ctx, field)
			case "icon":
				return ec.fieldContext_Collection_icon(ctx, field)
			case "defaultPermissions":
				return ec.fieldContext_Collection_defaultPermissions(ctx, field)
			case "isArchived":
				return ec.fieldContext_Collection_isArchived(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Collection_updatedAt(ctx, field)
			case "acl":
				return ec.fieldContext_Collection_acl(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_collection_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_collections(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_collections,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Collections(ctx, fc.Args["includeArchived"].(*bool))
		},
		nil,
		ec.marshalNCollection2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_collections(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "name":
				return ec.fieldContext_Collection_name(ctx, field)
			case "description":
				return ec.fieldContext_Collection_description(ctx, field)
			case "icon":
				return ec.fieldContext_Collection_icon(ctx, field)
			case "defaultPermissions":
				return ec.fieldContext_Collection_defaultPermissions(ctx, field)
			case "isArchived":
				return ec.fieldContext_Collection_isArchived(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Collection_updatedAt(ctx, field)
			case "acl":
				return ec.fieldContext_Collection_acl(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_collections_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_space(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_space,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Space(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalOSpace2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpace,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_space(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Space_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Space_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Space_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Space_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Space_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Space_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Space_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Space_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Space_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Space_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Space_createdAt(ctx, field)
			case "name":
				return ec.fieldContext_Space_name(ctx, field)
			case "icon":
				return ec.fieldContext_Space_icon(ctx, field)
			case "visibleToGroups":
				return ec.fieldContext_Space_visibleToGroups(ctx, field)
			case "widgets":
				return ec.fieldContext_Space_widgets(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Space", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_space_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_spaces(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_spaces,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Query().Spaces(ctx)
		},
		nil,
		ec.marshalNSpace2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_spaces(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Space_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Space_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Space_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Space_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Space_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Space_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Space_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Space_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Space_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Space_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Space_createdAt(ctx, field)
			case "name":
				return ec.fieldContext_Space_name(ctx, field)
			case "icon":
				return ec.fieldContext_Space_icon(ctx, field)
			case "visibleToGroups":
				return ec.fieldContext_Space_visibleToGroups(ctx, field)
			case "widgets":
				return ec.fieldContext_Space_widgets(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Space", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query_spaceVersions(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_spaceVersions,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().SpaceVersions(ctx, fc.Args["staticId"].(string), fc.Args["limit"].(*int))
		},
		nil,
		ec.marshalNSpace2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_spaceVersions(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Space_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Space_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Space_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Space_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Space_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Space_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Space_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Space_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Space_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Space_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Space_createdAt(ctx, field)
			case "name":
				return ec.fieldContext_Space_name(ctx, field)
			case "icon":
				return ec.fieldContext_Space_icon(ctx, field)
			case "visibleToGroups":
				return ec.fieldContext_Space_visibleToGroups(ctx, field)
			case "widgets":
				return ec.fieldContext_Space_widgets(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Space", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_spaceVersions_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_tool(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_tool,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Tool(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalOTool2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐTool,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_tool(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Tool_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Tool_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Tool_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Tool_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Tool_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Tool_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Tool_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Tool_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Tool_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Tool_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Tool_createdAt(ctx, field)
			case "name":
				return ec.fieldContext_Tool_name(ctx, field)
			case "description":
				return ec.fieldContext_Tool_description(ctx, field)
			case "icon":
				return ec.fieldContext_Tool_icon(ctx, field)
			case "component":
				return ec.fieldContext_Tool_component(ctx, field)
			case "inputs":
				return ec.fieldContext_Tool_inputs(ctx, field)
			case "configuration":
				return ec.fieldContext_Tool_configuration(ctx, field)
			case "keywords":
				return ec.fieldContext_Tool_keywords(ctx, field)
			case "collection":
				return ec.fieldContext_Tool_collection(ctx, field)
			case "createdByUser":
				return ec.fieldContext_Tool_createdByUser(ctx, field)
			case "suggestedByUser":
				return ec.fieldContext_Tool_suggestedByUser(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Tool", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_tool_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_tools(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_tools,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Tools(ctx, fc.Args["collectionId"].(string))
		},
		nil,
		ec.marshalNTool2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_tools(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Tool_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Tool_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Tool_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Tool_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Tool_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Tool_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Tool_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Tool_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Tool_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Tool_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Tool_createdAt(ctx, field)
			case "name":
				return ec.fieldContext_Tool_name(ctx, field)
			case "description":
				return ec.fieldContext_Tool_description(ctx, field)
			case "icon":
				return ec.fieldContext_Tool_icon(ctx, field)
			case "component":
				return ec.fieldContext_Tool_component(ctx, field)
			case "inputs":
				return ec.fieldContext_Tool_inputs(ctx, field)
			case "configuration":
				return ec.fieldContext_Tool_configuration(ctx, field)
			case "keywords":
				return ec.fieldContext_Tool_keywords(ctx, field)
			case "collection":
				return ec.fieldContext_Tool_collection(ctx, field)
			case "createdByUser":
				return ec.fieldContext_Tool_createdByUser(ctx, field)
			case "suggestedByUser":
				return ec.fieldContext_Tool_suggestedByUser(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Tool", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_tools_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_toolVersions(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_toolVersions,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().ToolVersions(ctx, fc.Args["staticId"].(string), fc.Args["limit"].(*int))
		},
		nil,
		ec.marshalNTool2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_toolVersions(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Tool_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Tool_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Tool_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Tool_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Tool_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Tool_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Tool_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Tool_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Tool_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Tool_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Tool_createdAt(ctx, field)
			case "name":
				return ec.fieldContext_Tool_name(ctx, field)
			case "description":
				return ec.fieldContext_Tool_description(ctx, field)
			case "icon":
				return ec.fieldContext_Tool_icon(ctx, field)
			case "component":
				return ec.fieldContext_Tool_component(ctx, field)
			case "inputs":
				return ec.fieldContext_Tool_inputs(ctx, field)
			case "configuration":
				return ec.fieldContext_Tool_configuration(ctx, field)
			case "keywords":
				return ec.fieldContext_Tool_keywords(ctx, field)
			case "collection":
				return ec.fieldContext_Tool_collection(ctx, field)
			case "createdByUser":
				return ec.fieldContext_Tool_createdByUser(ctx, field)
			case "suggestedByUser":
				return ec.fieldContext_Tool_suggestedByUser(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Tool", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_toolVersions_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_viewer(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_viewer,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Query().Viewer(ctx)
		},
		nil,
		ec.marshalNViewer2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐViewer,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_viewer(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "user":
				return ec.fieldContext_Viewer_user(ctx, field)
			case "organizationId":
				return ec.fieldContext_Viewer_organizationId(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Viewer", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query_widget(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_widget,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Widget(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalOWidget2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidget,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_widget(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Widget_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Widget_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Widget_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Widget_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Widget_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Widget_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Widget_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Widget_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Widget_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Widget_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Widget_createdAt(ctx, field)
			case "contents":
				return ec.fieldContext_Widget_contents(ctx, field)
			case "inputs":
				return ec.fieldContext_Widget_inputs(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Widget", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_widget_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_widgets(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_widgets,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Query().Widgets(ctx)
		},
		nil,
		ec.marshalNWidget2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_widgets(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Widget_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Widget_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Widget_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Widget_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Widget_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Widget_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Widget_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Widget_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Widget_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Widget_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Widget_createdAt(ctx, field)
			case "contents":
				return ec.fieldContext_Widget_contents(ctx, field)
			case "inputs":
				return ec.fieldContext_Widget_inputs(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Widget", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Query_workflow(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_workflow,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Workflow(ctx, fc.Args["id"].(string))
		},
		nil,
		ec.marshalOWorkflow2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflow,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query_workflow(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Workflow_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Workflow_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Workflow_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Workflow_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Workflow_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Workflow_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Workflow_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Workflow_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Workflow_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Workflow_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Workflow_createdAt(ctx, field)
			case "name":
				return ec.fieldContext_Workflow_name(ctx, field)
			case "description":
				return ec.fieldContext_Workflow_description(ctx, field)
			case "icon":
				return ec.fieldContext_Workflow_icon(ctx, field)
			case "contents":
				return ec.fieldContext_Workflow_contents(ctx, field)
			case "keywords":
				return ec.fieldContext_Workflow_keywords(ctx, field)
			case "collection":
				return ec.fieldContext_Workflow_collection(ctx, field)
			case "createdByUser":
				return ec.fieldContext_Workflow_createdByUser(ctx, field)
			case "suggestedByUser":
				return ec.fieldContext_Workflow_suggestedByUser(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Workflow", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_workflow_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_workflows(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_workflows,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().Workflows(ctx, fc.Args["collectionId"].(string))
		},
		nil,
		ec.marshalNWorkflow2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_workflows(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Workflow_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Workflow_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Workflow_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Workflow_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Workflow_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Workflow_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Workflow_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Workflow_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Workflow_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Workflow_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Workflow_createdAt(ctx, field)
			case "name":
				return ec.fieldContext_Workflow_name(ctx, field)
			case "description":
				return ec.fieldContext_Workflow_description(ctx, field)
			case "icon":
				return ec.fieldContext_Workflow_icon(ctx, field)
			case "contents":
				return ec.fieldContext_Workflow_contents(ctx, field)
			case "keywords":
				return ec.fieldContext_Workflow_keywords(ctx, field)
			case "collection":
				return ec.fieldContext_Workflow_collection(ctx, field)
			case "createdByUser":
				return ec.fieldContext_Workflow_createdByUser(ctx, field)
			case "suggestedByUser":
				return ec.fieldContext_Workflow_suggestedByUser(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Workflow", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_workflows_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query_workflowVersions(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query_workflowVersions,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.resolvers.Query().WorkflowVersions(ctx, fc.Args["staticId"].(string), fc.Args["limit"].(*int))
		},
		nil,
		ec.marshalNWorkflow2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Query_workflowVersions(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Workflow_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Workflow_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Workflow_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Workflow_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Workflow_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Workflow_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Workflow_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Workflow_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Workflow_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Workflow_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Workflow_createdAt(ctx, field)
			case "name":
				return ec.fieldContext_Workflow_name(ctx, field)
			case "description":
				return ec.fieldContext_Workflow_description(ctx, field)
			case "icon":
				return ec.fieldContext_Workflow_icon(ctx, field)
			case "contents":
				return ec.fieldContext_Workflow_contents(ctx, field)
			case "keywords":
				return ec.fieldContext_Workflow_keywords(ctx, field)
			case "collection":
				return ec.fieldContext_Workflow_collection(ctx, field)
			case "createdByUser":
				return ec.fieldContext_Workflow_createdByUser(ctx, field)
			case "suggestedByUser":
				return ec.fieldContext_Workflow_suggestedByUser(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Workflow", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query_workflowVersions_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query___type(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query___type,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return ec.introspectType(fc.Args["name"].(string))
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query___type(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field_Query___type_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) _Query___schema(ctx context.Context, field graphql.CollectedField) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Query___schema,
		func(ctx context.Context) (any, error) {
			return ec.introspectSchema()
		},
		nil,
		ec.marshalO__Schema2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐSchema,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Query___schema(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Query",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "description":
				return ec.fieldContext___Schema_description(ctx, field)
			case "types":
				return ec.fieldContext___Schema_types(ctx, field)
			case "queryType":
				return ec.fieldContext___Schema_queryType(ctx, field)
			case "mutationType":
				return ec.fieldContext___Schema_mutationType(ctx, field)
			case "subscriptionType":
				return ec.fieldContext___Schema_subscriptionType(ctx, field)
			case "directives":
				return ec.fieldContext___Schema_directives(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Schema", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_id(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Space_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_staticId(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_staticId,
		func(ctx context.Context) (any, error) {
			return obj.StaticID, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Space_staticId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_branchId(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_branchId,
		func(ctx context.Context) (any, error) {
			return obj.BranchID, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Space_branchId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_branchType(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_branchType,
		func(ctx context.Context) (any, error) {
			return obj.BranchType, nil
		},
		nil,
		ec.marshalNBranchType2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Space_branchType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type BranchType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_isLatest(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_isLatest,
		func(ctx context.Context) (any, error) {
			return obj.IsLatest, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Space_isLatest(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_isArchived(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_isArchived,
		func(ctx context.Context) (any, error) {
			return obj.IsArchived, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Space_isArchived(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_previousVersionId(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_previousVersionId,
		func(ctx context.Context) (any, error) {
			return obj.PreviousVersionID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Space_previousVersionId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_branchedFromId(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_branchedFromId,
		func(ctx context.Context) (any, error) {
			return obj.BranchedFromID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Space_branchedFromId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_metadata(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_metadata,
		func(ctx context.Context) (any, error) {
			return obj.Metadata, nil
		},
		nil,
		ec.marshalOJSONObject2map,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Space_metadata(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_majorChangeDescription(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_majorChangeDescription,
		func(ctx context.Context) (any, error) {
			return obj.MajorChangeDescription, nil
		},
		nil,
		ec.marshalOJSONObject2map,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Space_majorChangeDescription(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_createdAt(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Space_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_name(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Space_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_icon(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_icon,
		func(ctx context.Context) (any, error) {
			return obj.Icon, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Space_icon(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_visibleToGroups(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_visibleToGroups,
		func(ctx context.Context) (any, error) {
			return obj.VisibleToGroups, nil
		},
		nil,
		ec.marshalOJSONObject2ᚕmapᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Space_visibleToGroups(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Space_widgets(ctx context.Context, field graphql.CollectedField, obj *model.Space) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Space_widgets,
		func(ctx context.Context) (any, error) {
			return obj.Widgets, nil
		},
		nil,
		ec.marshalOJSONObject2ᚕmapᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Space_widgets(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Space",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _SpaceOutput_space(ctx context.Context, field graphql.CollectedField, obj *model.SpaceOutput) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SpaceOutput_space,
		func(ctx context.Context) (any, error) {
			return obj.Space, nil
		},
		nil,
		ec.marshalOSpace2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpace,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_SpaceOutput_space(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SpaceOutput",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Space_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Space_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Space_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Space_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Space_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Space_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Space_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Space_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Space_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Space_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Space_createdAt(ctx, field)
			case "name":
				return ec.fieldContext_Space_name(ctx, field)
			case "icon":
				return ec.fieldContext_Space_icon(ctx, field)
			case "visibleToGroups":
				return ec.fieldContext_Space_visibleToGroups(ctx, field)
			case "widgets":
				return ec.fieldContext_Space_widgets(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Space", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _SpaceOutput_error(ctx context.Context, field graphql.CollectedField, obj *model.SpaceOutput) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_SpaceOutput_error,
		func(ctx context.Context) (any, error) {
			return obj.Error, nil
		},
		nil,
		ec.marshalOKenchiError2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐKenchiError,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_SpaceOutput_error(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "SpaceOutput",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "type":
				return ec.fieldContext_KenchiError_type(ctx, field)
			case "code":
				return ec.fieldContext_KenchiError_code(ctx, field)
			case "param":
				return ec.fieldContext_KenchiError_param(ctx, field)
			case "message":
				return ec.fieldContext_KenchiError_message(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type KenchiError", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_id(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Tool_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_staticId(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_staticId,
		func(ctx context.Context) (any, error) {
			return obj.StaticID, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Tool_staticId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_branchId(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_branchId,
		func(ctx context.Context) (any, error) {
			return obj.BranchID, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Tool_branchId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_branchType(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_branchType,
		func(ctx context.Context) (any, error) {
			return obj.BranchType, nil
		},
		nil,
		ec.marshalNBranchType2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Tool_branchType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type BranchType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_isLatest(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_isLatest,
		func(ctx context.Context) (any, error) {
			return obj.IsLatest, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Tool_isLatest(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_isArchived(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_isArchived,
		func(ctx context.Context) (any, error) {
			return obj.IsArchived, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Tool_isArchived(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_previousVersionId(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_previousVersionId,
		func(ctx context.Context) (any, error) {
			return obj.PreviousVersionID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Tool_previousVersionId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_branchedFromId(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_branchedFromId,
		func(ctx context.Context) (any, error) {
			return obj.BranchedFromID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Tool_branchedFromId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_metadata(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_metadata,
		func(ctx context.Context) (any, error) {
			return obj.Metadata, nil
		},
		nil,
		ec.marshalOJSONObject2map,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Tool_metadata(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_majorChangeDescription(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_majorChangeDescription,
		func(ctx context.Context) (any, error) {
			return obj.MajorChangeDescription, nil
		},
		nil,
		ec.marshalOJSONObject2map,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Tool_majorChangeDescription(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_createdAt(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Tool_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_name(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Tool_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_description(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_description,
		func(ctx context.Context) (any, error) {
			return obj.Description, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Tool_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_icon(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_icon,
		func(ctx context.Context) (any, error) {
			return obj.Icon, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Tool_icon(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_component(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_component,
		func(ctx context.Context) (any, error) {
			return obj.Component, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Tool_component(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_inputs(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_inputs,
		func(ctx context.Context) (any, error) {
			return obj.Inputs, nil
		},
		nil,
		ec.marshalOJSONObject2ᚕmapᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Tool_inputs(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_configuration(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_configuration,
		func(ctx context.Context) (any, error) {
			return obj.Configuration, nil
		},
		nil,
		ec.marshalOJSONObject2map,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Tool_configuration(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_keywords(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_keywords,
		func(ctx context.Context) (any, error) {
			return obj.Keywords, nil
		},
		nil,
		ec.marshalOString2ᚕstringᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Tool_keywords(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_collection(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_collection,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Tool().Collection(ctx, obj)
		},
		nil,
		ec.marshalNCollection2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Tool_collection(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "name":
				return ec.fieldContext_Collection_name(ctx, field)
			case "description":
				return ec.fieldContext_Collection_description(ctx, field)
			case "icon":
				return ec.fieldContext_Collection_icon(ctx, field)
			case "defaultPermissions":
				return ec.fieldContext_Collection_defaultPermissions(ctx, field)
			case "isArchived":
				return ec.fieldContext_Collection_isArchived(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Collection_updatedAt(ctx, field)
			case "acl":
				return ec.fieldContext_Collection_acl(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_createdByUser(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_createdByUser,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Tool().CreatedByUser(ctx, obj)
		},
		nil,
		ec.marshalNUser2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUser,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Tool_createdByUser(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_User_id(ctx, field)
			case "email":
				return ec.fieldContext_User_email(ctx, field)
			case "name":
				return ec.fieldContext_User_name(ctx, field)
			case "isOrganizationAdmin":
				return ec.fieldContext_User_isOrganizationAdmin(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type User", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Tool_suggestedByUser(ctx context.Context, field graphql.CollectedField, obj *model.Tool) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Tool_suggestedByUser,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Tool().SuggestedByUser(ctx, obj)
		},
		nil,
		ec.marshalOUser2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUser,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Tool_suggestedByUser(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Tool",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_User_id(ctx, field)
			case "email":
				return ec.fieldContext_User_email(ctx, field)
			case "name":
				return ec.fieldContext_User_name(ctx, field)
			case "isOrganizationAdmin":
				return ec.fieldContext_User_isOrganizationAdmin(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type User", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _ToolOutput_tool(ctx context.Context, field graphql.CollectedField, obj *model.ToolOutput) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ToolOutput_tool,
		func(ctx context.Context) (any, error) {
			return obj.Tool, nil
		},
		nil,
		ec.marshalOTool2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐTool,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ToolOutput_tool(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ToolOutput",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Tool_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Tool_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Tool_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Tool_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Tool_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Tool_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Tool_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Tool_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Tool_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Tool_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Tool_createdAt(ctx, field)
			case "name":
				return ec.fieldContext_Tool_name(ctx, field)
			case "description":
				return ec.fieldContext_Tool_description(ctx, field)
			case "icon":
				return ec.fieldContext_Tool_icon(ctx, field)
			case "component":
				return ec.fieldContext_Tool_component(ctx, field)
			case "inputs":
				return ec.fieldContext_Tool_inputs(ctx, field)
			case "configuration":
				return ec.fieldContext_Tool_configuration(ctx, field)
			case "keywords":
				return ec.fieldContext_Tool_keywords(ctx, field)
			case "collection":
				return ec.fieldContext_Tool_collection(ctx, field)
			case "createdByUser":
				return ec.fieldContext_Tool_createdByUser(ctx, field)
			case "suggestedByUser":
				return ec.fieldContext_Tool_suggestedByUser(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Tool", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _ToolOutput_error(ctx context.Context, field graphql.CollectedField, obj *model.ToolOutput) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_ToolOutput_error,
		func(ctx context.Context) (any, error) {
			return obj.Error, nil
		},
		nil,
		ec.marshalOKenchiError2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐKenchiError,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_ToolOutput_error(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "ToolOutput",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "type":
				return ec.fieldContext_KenchiError_type(ctx, field)
			case "code":
				return ec.fieldContext_KenchiError_code(ctx, field)
			case "param":
				return ec.fieldContext_KenchiError_param(ctx, field)
			case "message":
				return ec.fieldContext_KenchiError_message(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type KenchiError", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_id(ctx context.Context, field graphql.CollectedField, obj *model.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_User_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_email(ctx context.Context, field graphql.CollectedField, obj *model.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_email,
		func(ctx context.Context) (any, error) {
			return obj.Email, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_User_email(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_name(ctx context.Context, field graphql.CollectedField, obj *model.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_User_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _User_isOrganizationAdmin(ctx context.Context, field graphql.CollectedField, obj *model.User) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_User_isOrganizationAdmin,
		func(ctx context.Context) (any, error) {
			return obj.IsOrganizationAdmin, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_User_isOrganizationAdmin(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "User",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Viewer_user(ctx context.Context, field graphql.CollectedField, obj *model.Viewer) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Viewer_user,
		func(ctx context.Context) (any, error) {
			return obj.User, nil
		},
		nil,
		ec.marshalOUser2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUser,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Viewer_user(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Viewer",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_User_id(ctx, field)
			case "email":
				return ec.fieldContext_User_email(ctx, field)
			case "name":
				return ec.fieldContext_User_name(ctx, field)
			case "isOrganizationAdmin":
				return ec.fieldContext_User_isOrganizationAdmin(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type User", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Viewer_organizationId(ctx context.Context, field graphql.CollectedField, obj *model.Viewer) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Viewer_organizationId,
		func(ctx context.Context) (any, error) {
			return obj.OrganizationID, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Viewer_organizationId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Viewer",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_id(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Widget_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_staticId(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_staticId,
		func(ctx context.Context) (any, error) {
			return obj.StaticID, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Widget_staticId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_branchId(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_branchId,
		func(ctx context.Context) (any, error) {
			return obj.BranchID, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Widget_branchId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_branchType(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_branchType,
		func(ctx context.Context) (any, error) {
			return obj.BranchType, nil
		},
		nil,
		ec.marshalNBranchType2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Widget_branchType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type BranchType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_isLatest(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_isLatest,
		func(ctx context.Context) (any, error) {
			return obj.IsLatest, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Widget_isLatest(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_isArchived(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_isArchived,
		func(ctx context.Context) (any, error) {
			return obj.IsArchived, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Widget_isArchived(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_previousVersionId(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_previousVersionId,
		func(ctx context.Context) (any, error) {
			return obj.PreviousVersionID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Widget_previousVersionId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_branchedFromId(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_branchedFromId,
		func(ctx context.Context) (any, error) {
			return obj.BranchedFromID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Widget_branchedFromId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_metadata(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_metadata,
		func(ctx context.Context) (any, error) {
			return obj.Metadata, nil
		},
		nil,
		ec.marshalOJSONObject2map,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Widget_metadata(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_majorChangeDescription(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_majorChangeDescription,
		func(ctx context.Context) (any, error) {
			return obj.MajorChangeDescription, nil
		},
		nil,
		ec.marshalOJSONObject2map,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Widget_majorChangeDescription(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_createdAt(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Widget_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_contents(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_contents,
		func(ctx context.Context) (any, error) {
			return obj.Contents, nil
		},
		nil,
		ec.marshalNJSONObject2map,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Widget_contents(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Widget_inputs(ctx context.Context, field graphql.CollectedField, obj *model.Widget) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Widget_inputs,
		func(ctx context.Context) (any, error) {
			return obj.Inputs, nil
		},
		nil,
		ec.marshalOJSONObject2ᚕmapᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Widget_inputs(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Widget",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _WidgetOutput_widget(ctx context.Context, field graphql.CollectedField, obj *model.WidgetOutput) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_WidgetOutput_widget,
		func(ctx context.Context) (any, error) {
			return obj.Widget, nil
		},
		nil,
		ec.marshalOWidget2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidget,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_WidgetOutput_widget(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "WidgetOutput",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Widget_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Widget_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Widget_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Widget_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Widget_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Widget_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Widget_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Widget_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Widget_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Widget_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Widget_createdAt(ctx, field)
			case "contents":
				return ec.fieldContext_Widget_contents(ctx, field)
			case "inputs":
				return ec.fieldContext_Widget_inputs(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Widget", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _WidgetOutput_error(ctx context.Context, field graphql.CollectedField, obj *model.WidgetOutput) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_WidgetOutput_error,
		func(ctx context.Context) (any, error) {
			return obj.Error, nil
		},
		nil,
		ec.marshalOKenchiError2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐKenchiError,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_WidgetOutput_error(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "WidgetOutput",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "type":
				return ec.fieldContext_KenchiError_type(ctx, field)
			case "code":
				return ec.fieldContext_KenchiError_code(ctx, field)
			case "param":
				return ec.fieldContext_KenchiError_param(ctx, field)
			case "message":
				return ec.fieldContext_KenchiError_message(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type KenchiError", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_id(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_id,
		func(ctx context.Context) (any, error) {
			return obj.ID, nil
		},
		nil,
		ec.marshalNID2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Workflow_id(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_staticId(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_staticId,
		func(ctx context.Context) (any, error) {
			return obj.StaticID, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Workflow_staticId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_branchId(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_branchId,
		func(ctx context.Context) (any, error) {
			return obj.BranchID, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Workflow_branchId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_branchType(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_branchType,
		func(ctx context.Context) (any, error) {
			return obj.BranchType, nil
		},
		nil,
		ec.marshalNBranchType2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Workflow_branchType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type BranchType does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_isLatest(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_isLatest,
		func(ctx context.Context) (any, error) {
			return obj.IsLatest, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Workflow_isLatest(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_isArchived(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_isArchived,
		func(ctx context.Context) (any, error) {
			return obj.IsArchived, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Workflow_isArchived(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_previousVersionId(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_previousVersionId,
		func(ctx context.Context) (any, error) {
			return obj.PreviousVersionID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Workflow_previousVersionId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_branchedFromId(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_branchedFromId,
		func(ctx context.Context) (any, error) {
			return obj.BranchedFromID, nil
		},
		nil,
		ec.marshalOID2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Workflow_branchedFromId(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type ID does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_metadata(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_metadata,
		func(ctx context.Context) (any, error) {
			return obj.Metadata, nil
		},
		nil,
		ec.marshalOJSONObject2map,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Workflow_metadata(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_majorChangeDescription(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_majorChangeDescription,
		func(ctx context.Context) (any, error) {
			return obj.MajorChangeDescription, nil
		},
		nil,
		ec.marshalOJSONObject2map,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Workflow_majorChangeDescription(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type JSONObject does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_createdAt(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_createdAt,
		func(ctx context.Context) (any, error) {
			return obj.CreatedAt, nil
		},
		nil,
		ec.marshalNDateTime2timeᚐTime,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Workflow_createdAt(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type DateTime does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_name(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Workflow_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_description(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_description,
		func(ctx context.Context) (any, error) {
			return obj.Description, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Workflow_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_icon(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_icon,
		func(ctx context.Context) (any, error) {
			return obj.Icon, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Workflow_icon(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_contents(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_contents,
		func(ctx context.Context) (any, error) {
			return obj.Contents, nil
		},
		nil,
		ec.marshalOSlateNodes2ᚕmap,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Workflow_contents(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type SlateNodes does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_keywords(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_keywords,
		func(ctx context.Context) (any, error) {
			return obj.Keywords, nil
		},
		nil,
		ec.marshalOString2ᚕstringᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Workflow_keywords(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_collection(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_collection,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Workflow().Collection(ctx, obj)
		},
		nil,
		ec.marshalNCollection2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollection,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Workflow_collection(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Collection_id(ctx, field)
			case "name":
				return ec.fieldContext_Collection_name(ctx, field)
			case "description":
				return ec.fieldContext_Collection_description(ctx, field)
			case "icon":
				return ec.fieldContext_Collection_icon(ctx, field)
			case "defaultPermissions":
				return ec.fieldContext_Collection_defaultPermissions(ctx, field)
			case "isArchived":
				return ec.fieldContext_Collection_isArchived(ctx, field)
			case "createdAt":
				return ec.fieldContext_Collection_createdAt(ctx, field)
			case "updatedAt":
				return ec.fieldContext_Collection_updatedAt(ctx, field)
			case "acl":
				return ec.fieldContext_Collection_acl(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Collection", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_createdByUser(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_createdByUser,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Workflow().CreatedByUser(ctx, obj)
		},
		nil,
		ec.marshalNUser2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUser,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext_Workflow_createdByUser(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_User_id(ctx, field)
			case "email":
				return ec.fieldContext_User_email(ctx, field)
			case "name":
				return ec.fieldContext_User_name(ctx, field)
			case "isOrganizationAdmin":
				return ec.fieldContext_User_isOrganizationAdmin(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type User", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _Workflow_suggestedByUser(ctx context.Context, field graphql.CollectedField, obj *model.Workflow) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_Workflow_suggestedByUser,
		func(ctx context.Context) (any, error) {
			return ec.resolvers.Workflow().SuggestedByUser(ctx, obj)
		},
		nil,
		ec.marshalOUser2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUser,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_Workflow_suggestedByUser(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "Workflow",
		Field:      field,
		IsMethod:   true,
		IsResolver: true,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_User_id(ctx, field)
			case "email":
				return ec.fieldContext_User_email(ctx, field)
			case "name":
				return ec.fieldContext_User_name(ctx, field)
			case "isOrganizationAdmin":
				return ec.fieldContext_User_isOrganizationAdmin(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type User", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _WorkflowOutput_workflow(ctx context.Context, field graphql.CollectedField, obj *model.WorkflowOutput) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_WorkflowOutput_workflow,
		func(ctx context.Context) (any, error) {
			return obj.Workflow, nil
		},
		nil,
		ec.marshalOWorkflow2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflow,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_WorkflowOutput_workflow(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "WorkflowOutput",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "id":
				return ec.fieldContext_Workflow_id(ctx, field)
			case "staticId":
				return ec.fieldContext_Workflow_staticId(ctx, field)
			case "branchId":
				return ec.fieldContext_Workflow_branchId(ctx, field)
			case "branchType":
				return ec.fieldContext_Workflow_branchType(ctx, field)
			case "isLatest":
				return ec.fieldContext_Workflow_isLatest(ctx, field)
			case "isArchived":
				return ec.fieldContext_Workflow_isArchived(ctx, field)
			case "previousVersionId":
				return ec.fieldContext_Workflow_previousVersionId(ctx, field)
			case "branchedFromId":
				return ec.fieldContext_Workflow_branchedFromId(ctx, field)
			case "metadata":
				return ec.fieldContext_Workflow_metadata(ctx, field)
			case "majorChangeDescription":
				return ec.fieldContext_Workflow_majorChangeDescription(ctx, field)
			case "createdAt":
				return ec.fieldContext_Workflow_createdAt(ctx, field)
			case "name":
				return ec.fieldContext_Workflow_name(ctx, field)
			case "description":
				return ec.fieldContext_Workflow_description(ctx, field)
			case "icon":
				return ec.fieldContext_Workflow_icon(ctx, field)
			case "contents":
				return ec.fieldContext_Workflow_contents(ctx, field)
			case "keywords":
				return ec.fieldContext_Workflow_keywords(ctx, field)
			case "collection":
				return ec.fieldContext_Workflow_collection(ctx, field)
			case "createdByUser":
				return ec.fieldContext_Workflow_createdByUser(ctx, field)
			case "suggestedByUser":
				return ec.fieldContext_Workflow_suggestedByUser(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type Workflow", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) _WorkflowOutput_error(ctx context.Context, field graphql.CollectedField, obj *model.WorkflowOutput) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext_WorkflowOutput_error,
		func(ctx context.Context) (any, error) {
			return obj.Error, nil
		},
		nil,
		ec.marshalOKenchiError2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐKenchiError,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext_WorkflowOutput_error(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "WorkflowOutput",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "type":
				return ec.fieldContext_KenchiError_type(ctx, field)
			case "code":
				return ec.fieldContext_KenchiError_code(ctx, field)
			case "param":
				return ec.fieldContext_KenchiError_param(ctx, field)
			case "message":
				return ec.fieldContext_KenchiError_message(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type KenchiError", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Directive_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_isRepeatable(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_isRepeatable,
		func(ctx context.Context) (any, error) {
			return obj.IsRepeatable, nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_isRepeatable(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_locations(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_locations,
		func(ctx context.Context) (any, error) {
			return obj.Locations, nil
		},
		nil,
		ec.marshalN__DirectiveLocation2ᚕstringᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_locations(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type __DirectiveLocation does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Directive_args(ctx context.Context, field graphql.CollectedField, obj *introspection.Directive) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Directive_args,
		func(ctx context.Context) (any, error) {
			return obj.Args, nil
		},
		nil,
		ec.marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Directive_args(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Directive",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Directive_args_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_name(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___EnumValue_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_description(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___EnumValue_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___EnumValue_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___EnumValue_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.EnumValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___EnumValue_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___EnumValue_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__EnumValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Field_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_args(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_args,
		func(ctx context.Context) (any, error) {
			return obj.Args, nil
		},
		nil,
		ec.marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_args(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Field_args_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Field_type(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Field_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Field_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.Field) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Field_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Field_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Field",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_name(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_name,
		func(ctx context.Context) (any, error) {
			return obj.Name, nil
		},
		nil,
		ec.marshalNString2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_description(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_type(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_type,
		func(ctx context.Context) (any, error) {
			return obj.Type, nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_type(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_defaultValue(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_defaultValue,
		func(ctx context.Context) (any, error) {
			return obj.DefaultValue, nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_defaultValue(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   false,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_isDeprecated(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_isDeprecated,
		func(ctx context.Context) (any, error) {
			return obj.IsDeprecated(), nil
		},
		nil,
		ec.marshalNBoolean2bool,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___InputValue_isDeprecated(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___InputValue_deprecationReason(ctx context.Context, field graphql.CollectedField, obj *introspection.InputValue) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___InputValue_deprecationReason,
		func(ctx context.Context) (any, error) {
			return obj.DeprecationReason(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___InputValue_deprecationReason(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__InputValue",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_types(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_types,
		func(ctx context.Context) (any, error) {
			return obj.Types(), nil
		},
		nil,
		ec.marshalN__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_types(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_queryType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_queryType,
		func(ctx context.Context) (any, error) {
			return obj.QueryType(), nil
		},
		nil,
		ec.marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_queryType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_mutationType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_mutationType,
		func(ctx context.Context) (any, error) {
			return obj.MutationType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_mutationType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_subscriptionType(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_subscriptionType,
		func(ctx context.Context) (any, error) {
			return obj.SubscriptionType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Schema_subscriptionType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Schema_directives(ctx context.Context, field graphql.CollectedField, obj *introspection.Schema) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Schema_directives,
		func(ctx context.Context) (any, error) {
			return obj.Directives(), nil
		},
		nil,
		ec.marshalN__Directive2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirectiveᚄ,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Schema_directives(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Schema",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___Directive_name(ctx, field)
			case "description":
				return ec.fieldContext___Directive_description(ctx, field)
			case "isRepeatable":
				return ec.fieldContext___Directive_isRepeatable(ctx, field)
			case "locations":
				return ec.fieldContext___Directive_locations(ctx, field)
			case "args":
				return ec.fieldContext___Directive_args(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Directive", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_kind(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_kind,
		func(ctx context.Context) (any, error) {
			return obj.Kind(), nil
		},
		nil,
		ec.marshalN__TypeKind2string,
		true,
		true,
	)
}

func (ec *executionContext) fieldContext___Type_kind(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type __TypeKind does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_name(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_name,
		func(ctx context.Context) (any, error) {
			return obj.Name(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_name(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_description(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_description,
		func(ctx context.Context) (any, error) {
			return obj.Description(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_description(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_specifiedByURL(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_specifiedByURL,
		func(ctx context.Context) (any, error) {
			return obj.SpecifiedByURL(), nil
		},
		nil,
		ec.marshalOString2ᚖstring,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_specifiedByURL(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type String does not have child fields")
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_fields(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_fields,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return obj.Fields(fc.Args["includeDeprecated"].(bool)), nil
		},
		nil,
		ec.marshalO__Field2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐFieldᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_fields(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___Field_name(ctx, field)
			case "description":
				return ec.fieldContext___Field_description(ctx, field)
			case "args":
				return ec.fieldContext___Field_args(ctx, field)
			case "type":
				return ec.fieldContext___Field_type(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___Field_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___Field_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Field", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Type_fields_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Type_interfaces(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_interfaces,
		func(ctx context.Context) (any, error) {
			return obj.Interfaces(), nil
		},
		nil,
		ec.marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_interfaces(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_possibleTypes(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_possibleTypes,
		func(ctx context.Context) (any, error) {
			return obj.PossibleTypes(), nil
		},
		nil,
		ec.marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_possibleTypes(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_enumValues(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_enumValues,
		func(ctx context.Context) (any, error) {
			fc := graphql.GetFieldContext(ctx)
			return obj.EnumValues(fc.Args["includeDeprecated"].(bool)), nil
		},
		nil,
		ec.marshalO__EnumValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValueᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_enumValues(ctx context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___EnumValue_name(ctx, field)
			case "description":
				return ec.fieldContext___EnumValue_description(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___EnumValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___EnumValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __EnumValue", field.Name)
		},
	}
	defer func() {
		if r := recover(); r != nil {
			err = ec.Recover(ctx, r)
			ec.Error(ctx, err)
		}
	}()
	ctx = graphql.WithFieldContext(ctx, fc)
	if fc.Args, err = ec.field___Type_enumValues_args(ctx, field.ArgumentMap(ec.Variables)); err != nil {
		ec.Error(ctx, err)
		return fc, err
	}
	return fc, nil
}

func (ec *executionContext) ___Type_inputFields(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_inputFields,
		func(ctx context.Context) (any, error) {
			return obj.InputFields(), nil
		},
		nil,
		ec.marshalO__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_inputFields(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "name":
				return ec.fieldContext___InputValue_name(ctx, field)
			case "description":
				return ec.fieldContext___InputValue_description(ctx, field)
			case "type":
				return ec.fieldContext___InputValue_type(ctx, field)
			case "defaultValue":
				return ec.fieldContext___InputValue_defaultValue(ctx, field)
			case "isDeprecated":
				return ec.fieldContext___InputValue_isDeprecated(ctx, field)
			case "deprecationReason":
				return ec.fieldContext___InputValue_deprecationReason(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __InputValue", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_ofType(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_ofType,
		func(ctx context.Context) (any, error) {
			return obj.OfType(), nil
		},
		nil,
		ec.marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_ofType(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			switch field.Name {
			case "kind":
				return ec.fieldContext___Type_kind(ctx, field)
			case "name":
				return ec.fieldContext___Type_name(ctx, field)
			case "description":
				return ec.fieldContext___Type_description(ctx, field)
			case "specifiedByURL":
				return ec.fieldContext___Type_specifiedByURL(ctx, field)
			case "fields":
				return ec.fieldContext___Type_fields(ctx, field)
			case "interfaces":
				return ec.fieldContext___Type_interfaces(ctx, field)
			case "possibleTypes":
				return ec.fieldContext___Type_possibleTypes(ctx, field)
			case "enumValues":
				return ec.fieldContext___Type_enumValues(ctx, field)
			case "inputFields":
				return ec.fieldContext___Type_inputFields(ctx, field)
			case "ofType":
				return ec.fieldContext___Type_ofType(ctx, field)
			case "isOneOf":
				return ec.fieldContext___Type_isOneOf(ctx, field)
			}
			return nil, fmt.Errorf("no field named %q was found under type __Type", field.Name)
		},
	}
	return fc, nil
}

func (ec *executionContext) ___Type_isOneOf(ctx context.Context, field graphql.CollectedField, obj *introspection.Type) (ret graphql.Marshaler) {
	return graphql.ResolveField(
		ctx,
		ec.OperationContext,
		field,
		ec.fieldContext___Type_isOneOf,
		func(ctx context.Context) (any, error) {
			return obj.IsOneOf(), nil
		},
		nil,
		ec.marshalOBoolean2bool,
		true,
		false,
	)
}

func (ec *executionContext) fieldContext___Type_isOneOf(_ context.Context, field graphql.CollectedField) (fc *graphql.FieldContext, err error) {
	fc = &graphql.FieldContext{
		Object:     "__Type",
		Field:      field,
		IsMethod:   true,
		IsResolver: false,
		Child: func(ctx context.Context, field graphql.CollectedField) (*graphql.FieldContext, error) {
			return nil, errors.New("field of type Boolean does not have child fields")
		},
	}
	return fc, nil
}

// endregion **************************** field.gotpl *****************************

// region    **************************** input.gotpl *****************************

func (ec *executionContext) unmarshalInputACLEntryInput(ctx context.Context, obj any) (model.ACLEntryInput, error) {
	var it model.ACLEntryInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"userId", "userGroupId", "permissionGroup"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "userId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("userId"))
			data, err := ec.unmarshalOID2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.UserID = data
		case "userGroupId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("userGroupId"))
			data, err := ec.unmarshalOID2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.UserGroupID = data
		case "permissionGroup":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("permissionGroup"))
			data, err := ec.unmarshalNCollectionPermission2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermission(ctx, v)
			if err != nil {
				return it, err
			}
			it.PermissionGroup = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCollectionCreateInput(ctx context.Context, obj any) (model.CollectionCreateInput, error) {
	var it model.CollectionCreateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"name", "description", "icon", "defaultPermissions"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "icon":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("icon"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Icon = data
		case "defaultPermissions":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("defaultPermissions"))
			data, err := ec.unmarshalOCollectionPermission2ᚕgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermissionᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.DefaultPermissions = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputCollectionUpdateInput(ctx context.Context, obj any) (model.CollectionUpdateInput, error) {
	var it model.CollectionUpdateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"id", "name", "description", "icon", "defaultPermissions"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "id":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("id"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.ID = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "icon":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("icon"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Icon = data
		case "defaultPermissions":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("defaultPermissions"))
			data, err := ec.unmarshalOCollectionPermission2ᚕgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermissionᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.DefaultPermissions = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputMergeInput(ctx context.Context, obj any) (model.MergeInput, error) {
	var it model.MergeInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"fromId", "toId", "fields"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "fromId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("fromId"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.FromID = data
		case "toId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("toId"))
			data, err := ec.unmarshalOID2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.ToID = data
		case "fields":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("fields"))
			data, err := ec.unmarshalOJSONObject2map(ctx, v)
			if err != nil {
				return it, err
			}
			it.Fields = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputSpaceCreateInput(ctx context.Context, obj any) (model.SpaceCreateInput, error) {
	var it model.SpaceCreateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"branchType", "name", "icon", "visibleToGroups", "widgets"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "branchType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("branchType"))
			data, err := ec.unmarshalOBranchType2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType(ctx, v)
			if err != nil {
				return it, err
			}
			it.BranchType = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "icon":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("icon"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Icon = data
		case "visibleToGroups":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("visibleToGroups"))
			data, err := ec.unmarshalOJSONObject2ᚕmapᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.VisibleToGroups = data
		case "widgets":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("widgets"))
			data, err := ec.unmarshalOJSONObject2ᚕmapᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Widgets = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputSpaceUpdateInput(ctx context.Context, obj any) (model.SpaceUpdateInput, error) {
	var it model.SpaceUpdateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"id", "branchType", "name", "icon", "visibleToGroups", "widgets", "majorChangeDescription"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "id":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("id"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.ID = data
		case "branchType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("branchType"))
			data, err := ec.unmarshalOBranchType2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType(ctx, v)
			if err != nil {
				return it, err
			}
			it.BranchType = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = graphql.OmittableOf(data)
		case "icon":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("icon"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Icon = graphql.OmittableOf(data)
		case "visibleToGroups":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("visibleToGroups"))
			data, err := ec.unmarshalOJSONObject2ᚕmapᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.VisibleToGroups = graphql.OmittableOf(data)
		case "widgets":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("widgets"))
			data, err := ec.unmarshalOJSONObject2ᚕmapᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Widgets = graphql.OmittableOf(data)
		case "majorChangeDescription":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("majorChangeDescription"))
			data, err := ec.unmarshalOJSONObject2map(ctx, v)
			if err != nil {
				return it, err
			}
			it.MajorChangeDescription = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputToolCreateInput(ctx context.Context, obj any) (model.ToolCreateInput, error) {
	var it model.ToolCreateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"collectionId", "branchType", "name", "description", "icon", "component", "inputs", "configuration", "keywords"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "collectionId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("collectionId"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.CollectionID = data
		case "branchType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("branchType"))
			data, err := ec.unmarshalOBranchType2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType(ctx, v)
			if err != nil {
				return it, err
			}
			it.BranchType = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "icon":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("icon"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Icon = data
		case "component":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("component"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Component = data
		case "inputs":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("inputs"))
			data, err := ec.unmarshalOJSONObject2ᚕmapᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Inputs = data
		case "configuration":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("configuration"))
			data, err := ec.unmarshalOJSONObject2map(ctx, v)
			if err != nil {
				return it, err
			}
			it.Configuration = data
		case "keywords":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("keywords"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Keywords = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputToolUpdateInput(ctx context.Context, obj any) (model.ToolUpdateInput, error) {
	var it model.ToolUpdateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"id", "branchType", "collectionId", "name", "description", "icon", "component", "inputs", "configuration", "keywords", "majorChangeDescription"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "id":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("id"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.ID = data
		case "branchType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("branchType"))
			data, err := ec.unmarshalOBranchType2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType(ctx, v)
			if err != nil {
				return it, err
			}
			it.BranchType = data
		case "collectionId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("collectionId"))
			data, err := ec.unmarshalOID2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.CollectionID = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = graphql.OmittableOf(data)
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = graphql.OmittableOf(data)
		case "icon":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("icon"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Icon = graphql.OmittableOf(data)
		case "component":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("component"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Component = graphql.OmittableOf(data)
		case "inputs":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("inputs"))
			data, err := ec.unmarshalOJSONObject2ᚕmapᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Inputs = graphql.OmittableOf(data)
		case "configuration":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("configuration"))
			data, err := ec.unmarshalOJSONObject2map(ctx, v)
			if err != nil {
				return it, err
			}
			it.Configuration = graphql.OmittableOf(data)
		case "keywords":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("keywords"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Keywords = graphql.OmittableOf(data)
		case "majorChangeDescription":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("majorChangeDescription"))
			data, err := ec.unmarshalOJSONObject2map(ctx, v)
			if err != nil {
				return it, err
			}
			it.MajorChangeDescription = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputWidgetCreateInput(ctx context.Context, obj any) (model.WidgetCreateInput, error) {
	var it model.WidgetCreateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"branchType", "contents", "inputs"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "branchType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("branchType"))
			data, err := ec.unmarshalOBranchType2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType(ctx, v)
			if err != nil {
				return it, err
			}
			it.BranchType = data
		case "contents":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("contents"))
			data, err := ec.unmarshalNJSONObject2map(ctx, v)
			if err != nil {
				return it, err
			}
			it.Contents = data
		case "inputs":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("inputs"))
			data, err := ec.unmarshalOJSONObject2ᚕmapᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Inputs = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputWidgetUpdateInput(ctx context.Context, obj any) (model.WidgetUpdateInput, error) {
	var it model.WidgetUpdateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"id", "branchType", "contents", "inputs", "majorChangeDescription"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "id":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("id"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.ID = data
		case "branchType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("branchType"))
			data, err := ec.unmarshalOBranchType2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType(ctx, v)
			if err != nil {
				return it, err
			}
			it.BranchType = data
		case "contents":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("contents"))
			data, err := ec.unmarshalOJSONObject2map(ctx, v)
			if err != nil {
				return it, err
			}
			it.Contents = graphql.OmittableOf(data)
		case "inputs":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("inputs"))
			data, err := ec.unmarshalOJSONObject2ᚕmapᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Inputs = graphql.OmittableOf(data)
		case "majorChangeDescription":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("majorChangeDescription"))
			data, err := ec.unmarshalOJSONObject2map(ctx, v)
			if err != nil {
				return it, err
			}
			it.MajorChangeDescription = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputWorkflowCreateInput(ctx context.Context, obj any) (model.WorkflowCreateInput, error) {
	var it model.WorkflowCreateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"collectionId", "branchType", "name", "description", "icon", "contents", "keywords"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "collectionId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("collectionId"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.CollectionID = data
		case "branchType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("branchType"))
			data, err := ec.unmarshalOBranchType2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType(ctx, v)
			if err != nil {
				return it, err
			}
			it.BranchType = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalNString2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = data
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = data
		case "icon":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("icon"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Icon = data
		case "contents":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("contents"))
			data, err := ec.unmarshalOSlateNodes2ᚕmap(ctx, v)
			if err != nil {
				return it, err
			}
			it.Contents = data
		case "keywords":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("keywords"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Keywords = data
		}
	}

	return it, nil
}

func (ec *executionContext) unmarshalInputWorkflowUpdateInput(ctx context.Context, obj any) (model.WorkflowUpdateInput, error) {
	var it model.WorkflowUpdateInput
	asMap := map[string]any{}
	for k, v := range obj.(map[string]any) {
		asMap[k] = v
	}

	fieldsInOrder := [...]string{"id", "branchType", "collectionId", "name", "description", "icon", "contents", "keywords", "majorChangeDescription"}
	for _, k := range fieldsInOrder {
		v, ok := asMap[k]
		if !ok {
			continue
		}
		switch k {
		case "id":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("id"))
			data, err := ec.unmarshalNID2string(ctx, v)
			if err != nil {
				return it, err
			}
			it.ID = data
		case "branchType":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("branchType"))
			data, err := ec.unmarshalOBranchType2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType(ctx, v)
			if err != nil {
				return it, err
			}
			it.BranchType = data
		case "collectionId":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("collectionId"))
			data, err := ec.unmarshalOID2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.CollectionID = data
		case "name":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("name"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Name = graphql.OmittableOf(data)
		case "description":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("description"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Description = graphql.OmittableOf(data)
		case "icon":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("icon"))
			data, err := ec.unmarshalOString2ᚖstring(ctx, v)
			if err != nil {
				return it, err
			}
			it.Icon = graphql.OmittableOf(data)
		case "contents":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("contents"))
			data, err := ec.unmarshalOSlateNodes2ᚕmap(ctx, v)
			if err != nil {
				return it, err
			}
			it.Contents = graphql.OmittableOf(data)
		case "keywords":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("keywords"))
			data, err := ec.unmarshalOString2ᚕstringᚄ(ctx, v)
			if err != nil {
				return it, err
			}
			it.Keywords = graphql.OmittableOf(data)
		case "majorChangeDescription":
			ctx := graphql.WithPathContext(ctx, graphql.NewPathWithField("majorChangeDescription"))
			data, err := ec.unmarshalOJSONObject2map(ctx, v)
			if err != nil {
				return it, err
			}
			it.MajorChangeDescription = data
		}
	}

	return it, nil
}

// endregion **************************** input.gotpl *****************************

// region    ************************** interface.gotpl ***************************

// endregion ************************** interface.gotpl ***************************

// region    **************************** object.gotpl ****************************

var collectionImplementors = []string{"Collection"}

func (ec *executionContext) _Collection(ctx context.Context, sel ast.SelectionSet, obj *model.Collection) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, collectionImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Collection")
		case "id":
			out.Values[i] = ec._Collection_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "name":
			out.Values[i] = ec._Collection_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "description":
			out.Values[i] = ec._Collection_description(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "icon":
			out.Values[i] = ec._Collection_icon(ctx, field, obj)
		case "defaultPermissions":
			out.Values[i] = ec._Collection_defaultPermissions(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "isArchived":
			out.Values[i] = ec._Collection_isArchived(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "createdAt":
			out.Values[i] = ec._Collection_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "updatedAt":
			out.Values[i] = ec._Collection_updatedAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "acl":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Collection_acl(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var collectionACLEntryImplementors = []string{"CollectionACLEntry"}

func (ec *executionContext) _CollectionACLEntry(ctx context.Context, sel ast.SelectionSet, obj *model.CollectionACLEntry) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, collectionACLEntryImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("CollectionACLEntry")
		case "id":
			out.Values[i] = ec._CollectionACLEntry_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "userId":
			out.Values[i] = ec._CollectionACLEntry_userId(ctx, field, obj)
		case "userGroupId":
			out.Values[i] = ec._CollectionACLEntry_userGroupId(ctx, field, obj)
		case "permissionGroup":
			out.Values[i] = ec._CollectionACLEntry_permissionGroup(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var collectionOutputImplementors = []string{"CollectionOutput"}

func (ec *executionContext) _CollectionOutput(ctx context.Context, sel ast.SelectionSet, obj *model.CollectionOutput) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, collectionOutputImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("CollectionOutput")
		case "collection":
			out.Values[i] = ec._CollectionOutput_collection(ctx, field, obj)
		case "error":
			out.Values[i] = ec._CollectionOutput_error(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var kenchiErrorImplementors = []string{"KenchiError"}

func (ec *executionContext) _KenchiError(ctx context.Context, sel ast.SelectionSet, obj *model.KenchiError) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, kenchiErrorImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("KenchiError")
		case "type":
			out.Values[i] = ec._KenchiError_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "code":
			out.Values[i] = ec._KenchiError_code(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "param":
			out.Values[i] = ec._KenchiError_param(ctx, field, obj)
		case "message":
			out.Values[i] = ec._KenchiError_message(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var mutationImplementors = []string{"Mutation"}

func (ec *executionContext) _Mutation(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, mutationImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Mutation",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Mutation")
		case "createCollection":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createCollection(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateCollection":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateCollection(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "archiveCollection":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_archiveCollection(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "unarchiveCollection":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_unarchiveCollection(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "setCollectionAcl":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_setCollectionAcl(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createSpace":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createSpace(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateSpace":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateSpace(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mergeSpace":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_mergeSpace(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteSpace":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteSpace(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "restoreSpace":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_restoreSpace(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createTool":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createTool(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateTool":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateTool(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mergeTool":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_mergeTool(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteTool":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteTool(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "restoreTool":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_restoreTool(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createWidget":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createWidget(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateWidget":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateWidget(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mergeWidget":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_mergeWidget(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteWidget":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteWidget(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "restoreWidget":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_restoreWidget(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "createWorkflow":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_createWorkflow(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "updateWorkflow":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_updateWorkflow(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mergeWorkflow":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_mergeWorkflow(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deleteWorkflow":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_deleteWorkflow(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "restoreWorkflow":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Mutation_restoreWorkflow(ctx, field)
			})
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var queryImplementors = []string{"Query"}

func (ec *executionContext) _Query(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, queryImplementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Object: "Query",
	})

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{
			Object: field.Name,
			Field:  field,
		})

		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Query")
		case "collection":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_collection(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "collections":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_collections(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "space":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_space(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "spaces":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_spaces(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "spaceVersions":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_spaceVersions(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "tool":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_tool(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "tools":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_tools(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "toolVersions":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_toolVersions(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "viewer":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_viewer(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "widget":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_widget(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "widgets":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_widgets(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "workflow":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_workflow(ctx, field)
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "workflows":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_workflows(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "workflowVersions":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Query_workflowVersions(ctx, field)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			rrm := func(ctx context.Context) graphql.Marshaler {
				return ec.OperationContext.RootResolverMiddleware(ctx,
					func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return rrm(innerCtx) })
		case "__type":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Query___type(ctx, field)
			})
		case "__schema":
			out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) (res graphql.Marshaler) {
				return ec._Query___schema(ctx, field)
			})
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var spaceImplementors = []string{"Space"}

func (ec *executionContext) _Space(ctx context.Context, sel ast.SelectionSet, obj *model.Space) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, spaceImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Space")
		case "id":
			out.Values[i] = ec._Space_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "staticId":
			out.Values[i] = ec._Space_staticId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "branchId":
			out.Values[i] = ec._Space_branchId(ctx, field, obj)
		case "branchType":
			out.Values[i] = ec._Space_branchType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isLatest":
			out.Values[i] = ec._Space_isLatest(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isArchived":
			out.Values[i] = ec._Space_isArchived(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "previousVersionId":
			out.Values[i] = ec._Space_previousVersionId(ctx, field, obj)
		case "branchedFromId":
			out.Values[i] = ec._Space_branchedFromId(ctx, field, obj)
		case "metadata":
			out.Values[i] = ec._Space_metadata(ctx, field, obj)
		case "majorChangeDescription":
			out.Values[i] = ec._Space_majorChangeDescription(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._Space_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "name":
			out.Values[i] = ec._Space_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "icon":
			out.Values[i] = ec._Space_icon(ctx, field, obj)
		case "visibleToGroups":
			out.Values[i] = ec._Space_visibleToGroups(ctx, field, obj)
		case "widgets":
			out.Values[i] = ec._Space_widgets(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var spaceOutputImplementors = []string{"SpaceOutput"}

func (ec *executionContext) _SpaceOutput(ctx context.Context, sel ast.SelectionSet, obj *model.SpaceOutput) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, spaceOutputImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("SpaceOutput")
		case "space":
			out.Values[i] = ec._SpaceOutput_space(ctx, field, obj)
		case "error":
			out.Values[i] = ec._SpaceOutput_error(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var toolImplementors = []string{"Tool"}

func (ec *executionContext) _Tool(ctx context.Context, sel ast.SelectionSet, obj *model.Tool) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, toolImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Tool")
		case "id":
			out.Values[i] = ec._Tool_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "staticId":
			out.Values[i] = ec._Tool_staticId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "branchId":
			out.Values[i] = ec._Tool_branchId(ctx, field, obj)
		case "branchType":
			out.Values[i] = ec._Tool_branchType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "isLatest":
			out.Values[i] = ec._Tool_isLatest(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "isArchived":
			out.Values[i] = ec._Tool_isArchived(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "previousVersionId":
			out.Values[i] = ec._Tool_previousVersionId(ctx, field, obj)
		case "branchedFromId":
			out.Values[i] = ec._Tool_branchedFromId(ctx, field, obj)
		case "metadata":
			out.Values[i] = ec._Tool_metadata(ctx, field, obj)
		case "majorChangeDescription":
			out.Values[i] = ec._Tool_majorChangeDescription(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._Tool_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "name":
			out.Values[i] = ec._Tool_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "description":
			out.Values[i] = ec._Tool_description(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "icon":
			out.Values[i] = ec._Tool_icon(ctx, field, obj)
		case "component":
			out.Values[i] = ec._Tool_component(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "inputs":
			out.Values[i] = ec._Tool_inputs(ctx, field, obj)
		case "configuration":
			out.Values[i] = ec._Tool_configuration(ctx, field, obj)
		case "keywords":
			out.Values[i] = ec._Tool_keywords(ctx, field, obj)
		case "collection":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Tool_collection(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "createdByUser":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Tool_createdByUser(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "suggestedByUser":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Tool_suggestedByUser(ctx, field, obj)
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var toolOutputImplementors = []string{"ToolOutput"}

func (ec *executionContext) _ToolOutput(ctx context.Context, sel ast.SelectionSet, obj *model.ToolOutput) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, toolOutputImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("ToolOutput")
		case "tool":
			out.Values[i] = ec._ToolOutput_tool(ctx, field, obj)
		case "error":
			out.Values[i] = ec._ToolOutput_error(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var userImplementors = []string{"User"}

func (ec *executionContext) _User(ctx context.Context, sel ast.SelectionSet, obj *model.User) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, userImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("User")
		case "id":
			out.Values[i] = ec._User_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "email":
			out.Values[i] = ec._User_email(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "name":
			out.Values[i] = ec._User_name(ctx, field, obj)
		case "isOrganizationAdmin":
			out.Values[i] = ec._User_isOrganizationAdmin(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var viewerImplementors = []string{"Viewer"}

func (ec *executionContext) _Viewer(ctx context.Context, sel ast.SelectionSet, obj *model.Viewer) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, viewerImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Viewer")
		case "user":
			out.Values[i] = ec._Viewer_user(ctx, field, obj)
		case "organizationId":
			out.Values[i] = ec._Viewer_organizationId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var widgetImplementors = []string{"Widget"}

func (ec *executionContext) _Widget(ctx context.Context, sel ast.SelectionSet, obj *model.Widget) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, widgetImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Widget")
		case "id":
			out.Values[i] = ec._Widget_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "staticId":
			out.Values[i] = ec._Widget_staticId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "branchId":
			out.Values[i] = ec._Widget_branchId(ctx, field, obj)
		case "branchType":
			out.Values[i] = ec._Widget_branchType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isLatest":
			out.Values[i] = ec._Widget_isLatest(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isArchived":
			out.Values[i] = ec._Widget_isArchived(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "previousVersionId":
			out.Values[i] = ec._Widget_previousVersionId(ctx, field, obj)
		case "branchedFromId":
			out.Values[i] = ec._Widget_branchedFromId(ctx, field, obj)
		case "metadata":
			out.Values[i] = ec._Widget_metadata(ctx, field, obj)
		case "majorChangeDescription":
			out.Values[i] = ec._Widget_majorChangeDescription(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._Widget_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "contents":
			out.Values[i] = ec._Widget_contents(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "inputs":
			out.Values[i] = ec._Widget_inputs(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var widgetOutputImplementors = []string{"WidgetOutput"}

func (ec *executionContext) _WidgetOutput(ctx context.Context, sel ast.SelectionSet, obj *model.WidgetOutput) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, widgetOutputImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("WidgetOutput")
		case "widget":
			out.Values[i] = ec._WidgetOutput_widget(ctx, field, obj)
		case "error":
			out.Values[i] = ec._WidgetOutput_error(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var workflowImplementors = []string{"Workflow"}

func (ec *executionContext) _Workflow(ctx context.Context, sel ast.SelectionSet, obj *model.Workflow) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, workflowImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("Workflow")
		case "id":
			out.Values[i] = ec._Workflow_id(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "staticId":
			out.Values[i] = ec._Workflow_staticId(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "branchId":
			out.Values[i] = ec._Workflow_branchId(ctx, field, obj)
		case "branchType":
			out.Values[i] = ec._Workflow_branchType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "isLatest":
			out.Values[i] = ec._Workflow_isLatest(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "isArchived":
			out.Values[i] = ec._Workflow_isArchived(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "previousVersionId":
			out.Values[i] = ec._Workflow_previousVersionId(ctx, field, obj)
		case "branchedFromId":
			out.Values[i] = ec._Workflow_branchedFromId(ctx, field, obj)
		case "metadata":
			out.Values[i] = ec._Workflow_metadata(ctx, field, obj)
		case "majorChangeDescription":
			out.Values[i] = ec._Workflow_majorChangeDescription(ctx, field, obj)
		case "createdAt":
			out.Values[i] = ec._Workflow_createdAt(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "name":
			out.Values[i] = ec._Workflow_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "description":
			out.Values[i] = ec._Workflow_description(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				atomic.AddUint32(&out.Invalids, 1)
			}
		case "icon":
			out.Values[i] = ec._Workflow_icon(ctx, field, obj)
		case "contents":
			out.Values[i] = ec._Workflow_contents(ctx, field, obj)
		case "keywords":
			out.Values[i] = ec._Workflow_keywords(ctx, field, obj)
		case "collection":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Workflow_collection(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "createdByUser":
			field := field

			innerFunc := func(ctx context.Context, fs *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Workflow_createdByUser(ctx, field, obj)
				if res == graphql.Null {
					atomic.AddUint32(&fs.Invalids, 1)
				}
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		case "suggestedByUser":
			field := field

			innerFunc := func(ctx context.Context, _ *graphql.FieldSet) (res graphql.Marshaler) {
				defer func() {
					if r := recover(); r != nil {
						ec.Error(ctx, ec.Recover(ctx, r))
					}
				}()
				res = ec._Workflow_suggestedByUser(ctx, field, obj)
				return res
			}

			if field.Deferrable != nil {
				dfs, ok := deferred[field.Deferrable.Label]
				di := 0
				if ok {
					dfs.AddField(field)
					di = len(dfs.Values) - 1
				} else {
					dfs = graphql.NewFieldSet([]graphql.CollectedField{field})
					deferred[field.Deferrable.Label] = dfs
				}
				dfs.Concurrently(di, func(ctx context.Context) graphql.Marshaler {
					return innerFunc(ctx, dfs)
				})

				// don't run the out.Concurrently() call below
				out.Values[i] = graphql.Null
				continue
			}

			out.Concurrently(i, func(ctx context.Context) graphql.Marshaler { return innerFunc(ctx, out) })
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var workflowOutputImplementors = []string{"WorkflowOutput"}

func (ec *executionContext) _WorkflowOutput(ctx context.Context, sel ast.SelectionSet, obj *model.WorkflowOutput) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, workflowOutputImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("WorkflowOutput")
		case "workflow":
			out.Values[i] = ec._WorkflowOutput_workflow(ctx, field, obj)
		case "error":
			out.Values[i] = ec._WorkflowOutput_error(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __DirectiveImplementors = []string{"__Directive"}

func (ec *executionContext) ___Directive(ctx context.Context, sel ast.SelectionSet, obj *introspection.Directive) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __DirectiveImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Directive")
		case "name":
			out.Values[i] = ec.___Directive_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___Directive_description(ctx, field, obj)
		case "isRepeatable":
			out.Values[i] = ec.___Directive_isRepeatable(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "locations":
			out.Values[i] = ec.___Directive_locations(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "args":
			out.Values[i] = ec.___Directive_args(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __EnumValueImplementors = []string{"__EnumValue"}

func (ec *executionContext) ___EnumValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.EnumValue) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __EnumValueImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__EnumValue")
		case "name":
			out.Values[i] = ec.___EnumValue_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___EnumValue_description(ctx, field, obj)
		case "isDeprecated":
			out.Values[i] = ec.___EnumValue_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___EnumValue_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __FieldImplementors = []string{"__Field"}

func (ec *executionContext) ___Field(ctx context.Context, sel ast.SelectionSet, obj *introspection.Field) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __FieldImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Field")
		case "name":
			out.Values[i] = ec.___Field_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___Field_description(ctx, field, obj)
		case "args":
			out.Values[i] = ec.___Field_args(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "type":
			out.Values[i] = ec.___Field_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "isDeprecated":
			out.Values[i] = ec.___Field_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___Field_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __InputValueImplementors = []string{"__InputValue"}

func (ec *executionContext) ___InputValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.InputValue) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __InputValueImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__InputValue")
		case "name":
			out.Values[i] = ec.___InputValue_name(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "description":
			out.Values[i] = ec.___InputValue_description(ctx, field, obj)
		case "type":
			out.Values[i] = ec.___InputValue_type(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "defaultValue":
			out.Values[i] = ec.___InputValue_defaultValue(ctx, field, obj)
		case "isDeprecated":
			out.Values[i] = ec.___InputValue_isDeprecated(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "deprecationReason":
			out.Values[i] = ec.___InputValue_deprecationReason(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __SchemaImplementors = []string{"__Schema"}

func (ec *executionContext) ___Schema(ctx context.Context, sel ast.SelectionSet, obj *introspection.Schema) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __SchemaImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Schema")
		case "description":
			out.Values[i] = ec.___Schema_description(ctx, field, obj)
		case "types":
			out.Values[i] = ec.___Schema_types(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "queryType":
			out.Values[i] = ec.___Schema_queryType(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "mutationType":
			out.Values[i] = ec.___Schema_mutationType(ctx, field, obj)
		case "subscriptionType":
			out.Values[i] = ec.___Schema_subscriptionType(ctx, field, obj)
		case "directives":
			out.Values[i] = ec.___Schema_directives(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

var __TypeImplementors = []string{"__Type"}

func (ec *executionContext) ___Type(ctx context.Context, sel ast.SelectionSet, obj *introspection.Type) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, __TypeImplementors)

	out := graphql.NewFieldSet(fields)
	deferred := make(map[string]*graphql.FieldSet)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("__Type")
		case "kind":
			out.Values[i] = ec.___Type_kind(ctx, field, obj)
			if out.Values[i] == graphql.Null {
				out.Invalids++
			}
		case "name":
			out.Values[i] = ec.___Type_name(ctx, field, obj)
		case "description":
			out.Values[i] = ec.___Type_description(ctx, field, obj)
		case "specifiedByURL":
			out.Values[i] = ec.___Type_specifiedByURL(ctx, field, obj)
		case "fields":
			out.Values[i] = ec.___Type_fields(ctx, field, obj)
		case "interfaces":
			out.Values[i] = ec.___Type_interfaces(ctx, field, obj)
		case "possibleTypes":
			out.Values[i] = ec.___Type_possibleTypes(ctx, field, obj)
		case "enumValues":
			out.Values[i] = ec.___Type_enumValues(ctx, field, obj)
		case "inputFields":
			out.Values[i] = ec.___Type_inputFields(ctx, field, obj)
		case "ofType":
			out.Values[i] = ec.___Type_ofType(ctx, field, obj)
		case "isOneOf":
			out.Values[i] = ec.___Type_isOneOf(ctx, field, obj)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	out.Dispatch(ctx)
	if out.Invalids > 0 {
		return graphql.Null
	}

	atomic.AddInt32(&ec.deferred, int32(len(deferred)))

	for label, dfs := range deferred {
		ec.processDeferredGroup(graphql.DeferredGroup{
			Label:    label,
			Path:     graphql.GetPath(ctx),
			FieldSet: dfs,
			Context:  ctx,
		})
	}

	return out
}

// endregion **************************** object.gotpl ****************************

// region    ***************************** type.gotpl *****************************

func (ec *executionContext) unmarshalNACLEntryInput2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐACLEntryInputᚄ(ctx context.Context, v any) ([]*model.ACLEntryInput, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]*model.ACLEntryInput, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNACLEntryInput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐACLEntryInput(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) unmarshalNACLEntryInput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐACLEntryInput(ctx context.Context, v any) (*model.ACLEntryInput, error) {
	res, err := ec.unmarshalInputACLEntryInput(ctx, v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNBoolean2bool(ctx context.Context, v any) (bool, error) {
	res, err := graphql.UnmarshalBoolean(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNBoolean2bool(ctx context.Context, sel ast.SelectionSet, v bool) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalBoolean(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNBranchType2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType(ctx context.Context, v any) (model.BranchType, error) {
	var res model.BranchType
	err := res.UnmarshalGQL(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNBranchType2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType(ctx context.Context, sel ast.SelectionSet, v model.BranchType) graphql.Marshaler {
	return v
}

func (ec *executionContext) marshalNCollection2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollection(ctx context.Context, sel ast.SelectionSet, v model.Collection) graphql.Marshaler {
	return ec._Collection(ctx, sel, &v)
}

func (ec *executionContext) marshalNCollection2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionᚄ(ctx context.Context, sel ast.SelectionSet, v []*model.Collection) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNCollection2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollection(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNCollection2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollection(ctx context.Context, sel ast.SelectionSet, v *model.Collection) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Collection(ctx, sel, v)
}

func (ec *executionContext) marshalNCollectionACLEntry2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionACLEntryᚄ(ctx context.Context, sel ast.SelectionSet, v []*model.CollectionACLEntry) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNCollectionACLEntry2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionACLEntry(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNCollectionACLEntry2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionACLEntry(ctx context.Context, sel ast.SelectionSet, v *model.CollectionACLEntry) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._CollectionACLEntry(ctx, sel, v)
}

func (ec *executionContext) unmarshalNCollectionCreateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionCreateInput(ctx context.Context, v any) (model.CollectionCreateInput, error) {
	res, err := ec.unmarshalInputCollectionCreateInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNCollectionOutput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionOutput(ctx context.Context, sel ast.SelectionSet, v model.CollectionOutput) graphql.Marshaler {
	return ec._CollectionOutput(ctx, sel, &v)
}

func (ec *executionContext) marshalNCollectionOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionOutput(ctx context.Context, sel ast.SelectionSet, v *model.CollectionOutput) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._CollectionOutput(ctx, sel, v)
}

func (ec *executionContext) unmarshalNCollectionPermission2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermission(ctx context.Context, v any) (model.CollectionPermission, error) {
	var res model.CollectionPermission
	err := res.UnmarshalGQL(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNCollectionPermission2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermission(ctx context.Context, sel ast.SelectionSet, v model.CollectionPermission) graphql.Marshaler {
	return v
}

func (ec *executionContext) unmarshalNCollectionPermission2ᚕgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermissionᚄ(ctx context.Context, v any) ([]model.CollectionPermission, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]model.CollectionPermission, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNCollectionPermission2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermission(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalNCollectionPermission2ᚕgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermissionᚄ(ctx context.Context, sel ast.SelectionSet, v []model.CollectionPermission) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNCollectionPermission2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermission(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalNCollectionUpdateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionUpdateInput(ctx context.Context, v any) (model.CollectionUpdateInput, error) {
	res, err := ec.unmarshalInputCollectionUpdateInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNDateTime2timeᚐTime(ctx context.Context, v any) (time.Time, error) {
	res, err := model.UnmarshalDateTime(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNDateTime2timeᚐTime(ctx context.Context, sel ast.SelectionSet, v time.Time) graphql.Marshaler {
	_ = sel
	res := model.MarshalDateTime(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNID2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalID(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNID2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalID(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNJSONObject2map(ctx context.Context, v any) (map[string]any, error) {
	res, err := model.UnmarshalJSONObject(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNJSONObject2map(ctx context.Context, sel ast.SelectionSet, v map[string]any) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	_ = sel
	res := model.MarshalJSONObject(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalNMergeInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐMergeInput(ctx context.Context, v any) (model.MergeInput, error) {
	res, err := ec.unmarshalInputMergeInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNSpace2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceᚄ(ctx context.Context, sel ast.SelectionSet, v []*model.Space) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNSpace2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpace(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNSpace2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpace(ctx context.Context, sel ast.SelectionSet, v *model.Space) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Space(ctx, sel, v)
}

func (ec *executionContext) unmarshalNSpaceCreateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceCreateInput(ctx context.Context, v any) (model.SpaceCreateInput, error) {
	res, err := ec.unmarshalInputSpaceCreateInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNSpaceOutput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceOutput(ctx context.Context, sel ast.SelectionSet, v model.SpaceOutput) graphql.Marshaler {
	return ec._SpaceOutput(ctx, sel, &v)
}

func (ec *executionContext) marshalNSpaceOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceOutput(ctx context.Context, sel ast.SelectionSet, v *model.SpaceOutput) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._SpaceOutput(ctx, sel, v)
}

func (ec *executionContext) unmarshalNSpaceUpdateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpaceUpdateInput(ctx context.Context, v any) (model.SpaceUpdateInput, error) {
	res, err := ec.unmarshalInputSpaceUpdateInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) unmarshalNString2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNString2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) marshalNTool2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolᚄ(ctx context.Context, sel ast.SelectionSet, v []*model.Tool) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNTool2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐTool(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNTool2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐTool(ctx context.Context, sel ast.SelectionSet, v *model.Tool) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Tool(ctx, sel, v)
}

func (ec *executionContext) unmarshalNToolCreateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolCreateInput(ctx context.Context, v any) (model.ToolCreateInput, error) {
	res, err := ec.unmarshalInputToolCreateInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNToolOutput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolOutput(ctx context.Context, sel ast.SelectionSet, v model.ToolOutput) graphql.Marshaler {
	return ec._ToolOutput(ctx, sel, &v)
}

func (ec *executionContext) marshalNToolOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolOutput(ctx context.Context, sel ast.SelectionSet, v *model.ToolOutput) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._ToolOutput(ctx, sel, v)
}

func (ec *executionContext) unmarshalNToolUpdateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐToolUpdateInput(ctx context.Context, v any) (model.ToolUpdateInput, error) {
	res, err := ec.unmarshalInputToolUpdateInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNUser2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUser(ctx context.Context, sel ast.SelectionSet, v model.User) graphql.Marshaler {
	return ec._User(ctx, sel, &v)
}

func (ec *executionContext) marshalNUser2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUser(ctx context.Context, sel ast.SelectionSet, v *model.User) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._User(ctx, sel, v)
}

func (ec *executionContext) marshalNViewer2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐViewer(ctx context.Context, sel ast.SelectionSet, v model.Viewer) graphql.Marshaler {
	return ec._Viewer(ctx, sel, &v)
}

func (ec *executionContext) marshalNViewer2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐViewer(ctx context.Context, sel ast.SelectionSet, v *model.Viewer) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Viewer(ctx, sel, v)
}

func (ec *executionContext) marshalNWidget2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetᚄ(ctx context.Context, sel ast.SelectionSet, v []*model.Widget) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNWidget2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidget(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNWidget2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidget(ctx context.Context, sel ast.SelectionSet, v *model.Widget) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Widget(ctx, sel, v)
}

func (ec *executionContext) unmarshalNWidgetCreateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetCreateInput(ctx context.Context, v any) (model.WidgetCreateInput, error) {
	res, err := ec.unmarshalInputWidgetCreateInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNWidgetOutput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetOutput(ctx context.Context, sel ast.SelectionSet, v model.WidgetOutput) graphql.Marshaler {
	return ec._WidgetOutput(ctx, sel, &v)
}

func (ec *executionContext) marshalNWidgetOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetOutput(ctx context.Context, sel ast.SelectionSet, v *model.WidgetOutput) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._WidgetOutput(ctx, sel, v)
}

func (ec *executionContext) unmarshalNWidgetUpdateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidgetUpdateInput(ctx context.Context, v any) (model.WidgetUpdateInput, error) {
	res, err := ec.unmarshalInputWidgetUpdateInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNWorkflow2ᚕᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowᚄ(ctx context.Context, sel ast.SelectionSet, v []*model.Workflow) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNWorkflow2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflow(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalNWorkflow2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflow(ctx context.Context, sel ast.SelectionSet, v *model.Workflow) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._Workflow(ctx, sel, v)
}

func (ec *executionContext) unmarshalNWorkflowCreateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowCreateInput(ctx context.Context, v any) (model.WorkflowCreateInput, error) {
	res, err := ec.unmarshalInputWorkflowCreateInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalNWorkflowOutput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowOutput(ctx context.Context, sel ast.SelectionSet, v model.WorkflowOutput) graphql.Marshaler {
	return ec._WorkflowOutput(ctx, sel, &v)
}

func (ec *executionContext) marshalNWorkflowOutput2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowOutput(ctx context.Context, sel ast.SelectionSet, v *model.WorkflowOutput) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec._WorkflowOutput(ctx, sel, v)
}

func (ec *executionContext) unmarshalNWorkflowUpdateInput2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflowUpdateInput(ctx context.Context, v any) (model.WorkflowUpdateInput, error) {
	res, err := ec.unmarshalInputWorkflowUpdateInput(ctx, v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__Directive2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirective(ctx context.Context, sel ast.SelectionSet, v introspection.Directive) graphql.Marshaler {
	return ec.___Directive(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Directive2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirectiveᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Directive) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Directive2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐDirective(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalN__DirectiveLocation2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__DirectiveLocation2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalN__DirectiveLocation2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalN__DirectiveLocation2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalN__DirectiveLocation2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__DirectiveLocation2string(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__EnumValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValue(ctx context.Context, sel ast.SelectionSet, v introspection.EnumValue) graphql.Marshaler {
	return ec.___EnumValue(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Field2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐField(ctx context.Context, sel ast.SelectionSet, v introspection.Field) graphql.Marshaler {
	return ec.___Field(ctx, sel, &v)
}

func (ec *executionContext) marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx context.Context, sel ast.SelectionSet, v introspection.InputValue) graphql.Marshaler {
	return ec.___InputValue(ctx, sel, &v)
}

func (ec *executionContext) marshalN__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.InputValue) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v introspection.Type) graphql.Marshaler {
	return ec.___Type(ctx, sel, &v)
}

func (ec *executionContext) marshalN__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Type) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalN__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v *introspection.Type) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec.___Type(ctx, sel, v)
}

func (ec *executionContext) unmarshalN__TypeKind2string(ctx context.Context, v any) (string, error) {
	res, err := graphql.UnmarshalString(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalN__TypeKind2string(ctx context.Context, sel ast.SelectionSet, v string) graphql.Marshaler {
	_ = sel
	res := graphql.MarshalString(v)
	if res == graphql.Null {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
		}
	}
	return res
}

func (ec *executionContext) unmarshalOBoolean2bool(ctx context.Context, v any) (bool, error) {
	res, err := graphql.UnmarshalBoolean(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBoolean2bool(ctx context.Context, sel ast.SelectionSet, v bool) graphql.Marshaler {
	_ = sel
	_ = ctx
	res := graphql.MarshalBoolean(v)
	return res
}

func (ec *executionContext) unmarshalOBoolean2ᚖbool(ctx context.Context, v any) (*bool, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalBoolean(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBoolean2ᚖbool(ctx context.Context, sel ast.SelectionSet, v *bool) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalBoolean(*v)
	return res
}

func (ec *executionContext) unmarshalOBranchType2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType(ctx context.Context, v any) (*model.BranchType, error) {
	if v == nil {
		return nil, nil
	}
	var res = new(model.BranchType)
	err := res.UnmarshalGQL(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOBranchType2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐBranchType(ctx context.Context, sel ast.SelectionSet, v *model.BranchType) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return v
}

func (ec *executionContext) marshalOCollection2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollection(ctx context.Context, sel ast.SelectionSet, v *model.Collection) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._Collection(ctx, sel, v)
}

func (ec *executionContext) unmarshalOCollectionPermission2ᚕgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermissionᚄ(ctx context.Context, v any) ([]model.CollectionPermission, error) {
	if v == nil {
		return nil, nil
	}
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]model.CollectionPermission, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNCollectionPermission2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermission(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalOCollectionPermission2ᚕgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermissionᚄ(ctx context.Context, sel ast.SelectionSet, v []model.CollectionPermission) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalNCollectionPermission2githubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐCollectionPermission(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalOID2ᚖstring(ctx context.Context, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalID(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOID2ᚖstring(ctx context.Context, sel ast.SelectionSet, v *string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalID(*v)
	return res
}

func (ec *executionContext) unmarshalOInt2ᚖint(ctx context.Context, v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalInt(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOInt2ᚖint(ctx context.Context, sel ast.SelectionSet, v *int) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalInt(*v)
	return res
}

func (ec *executionContext) unmarshalOJSONObject2map(ctx context.Context, v any) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	res, err := model.UnmarshalJSONObject(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOJSONObject2map(ctx context.Context, sel ast.SelectionSet, v map[string]any) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := model.MarshalJSONObject(v)
	return res
}

func (ec *executionContext) unmarshalOJSONObject2ᚕmapᚄ(ctx context.Context, v any) ([]map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]map[string]any, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNJSONObject2map(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalOJSONObject2ᚕmapᚄ(ctx context.Context, sel ast.SelectionSet, v []map[string]any) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	for i := range v {
		ret[i] = ec.marshalNJSONObject2map(ctx, sel, v[i])
	}

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalOKenchiError2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐKenchiError(ctx context.Context, sel ast.SelectionSet, v *model.KenchiError) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._KenchiError(ctx, sel, v)
}

func (ec *executionContext) unmarshalOSlateNodes2ᚕmap(ctx context.Context, v any) ([]map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	res, err := model.UnmarshalSlateNodes(v)
	return res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOSlateNodes2ᚕmap(ctx context.Context, sel ast.SelectionSet, v []map[string]any) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := model.MarshalSlateNodes(v)
	return res
}

func (ec *executionContext) marshalOSpace2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐSpace(ctx context.Context, sel ast.SelectionSet, v *model.Space) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._Space(ctx, sel, v)
}

func (ec *executionContext) unmarshalOString2ᚕstringᚄ(ctx context.Context, v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	var vSlice []any
	vSlice = graphql.CoerceList(v)
	var err error
	res := make([]string, len(vSlice))
	for i := range vSlice {
		ctx := graphql.WithPathContext(ctx, graphql.NewPathWithIndex(i))
		res[i], err = ec.unmarshalNString2string(ctx, vSlice[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ec *executionContext) marshalOString2ᚕstringᚄ(ctx context.Context, sel ast.SelectionSet, v []string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	for i := range v {
		ret[i] = ec.marshalNString2string(ctx, sel, v[i])
	}

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) unmarshalOString2ᚖstring(ctx context.Context, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	res, err := graphql.UnmarshalString(v)
	return &res, graphql.ErrorOnPath(ctx, err)
}

func (ec *executionContext) marshalOString2ᚖstring(ctx context.Context, sel ast.SelectionSet, v *string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	_ = sel
	_ = ctx
	res := graphql.MarshalString(*v)
	return res
}

func (ec *executionContext) marshalOTool2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐTool(ctx context.Context, sel ast.SelectionSet, v *model.Tool) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._Tool(ctx, sel, v)
}

func (ec *executionContext) marshalOUser2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐUser(ctx context.Context, sel ast.SelectionSet, v *model.User) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._User(ctx, sel, v)
}

func (ec *executionContext) marshalOWidget2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWidget(ctx context.Context, sel ast.SelectionSet, v *model.Widget) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._Widget(ctx, sel, v)
}

func (ec *executionContext) marshalOWorkflow2ᚖgithubᚗcomᚋmichaelschadeᚋkenchiᚑsub000ᚋinternalᚋtransportᚋgraphqlᚋmodelᚐWorkflow(ctx context.Context, sel ast.SelectionSet, v *model.Workflow) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec._Workflow(ctx, sel, v)
}

func (ec *executionContext) marshalO__EnumValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.EnumValue) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__EnumValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐEnumValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Field2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐFieldᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Field) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Field2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐField(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__InputValue2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValueᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.InputValue) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__InputValue2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐInputValue(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Schema2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐSchema(ctx context.Context, sel ast.SelectionSet, v *introspection.Schema) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.___Schema(ctx, sel, v)
}

func (ec *executionContext) marshalO__Type2ᚕgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐTypeᚄ(ctx context.Context, sel ast.SelectionSet, v []introspection.Type) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	isLen1 := len(v) == 1
	if !isLen1 {
		wg.Add(len(v))
	}
	for i := range v {
		i := i
		fc := &graphql.FieldContext{
			Index:  &i,
			Result: &v[i],
		}
		ctx := graphql.WithFieldContext(ctx, fc)
		f := func(i int) {
			defer func() {
				if r := recover(); r != nil {
					ec.Error(ctx, ec.Recover(ctx, r))
					ret = nil
				}
			}()
			if !isLen1 {
				defer wg.Done()
			}
			ret[i] = ec.marshalN__Type2githubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx, sel, v[i])
		}
		if isLen1 {
			f(i)
		} else {
			go f(i)
		}

	}
	wg.Wait()

	for _, e := range ret {
		if e == graphql.Null {
			return graphql.Null
		}
	}

	return ret
}

func (ec *executionContext) marshalO__Type2ᚖgithubᚗcomᚋ99designsᚋgqlgenᚋgraphqlᚋintrospectionᚐType(ctx context.Context, sel ast.SelectionSet, v *introspection.Type) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return ec.___Type(ctx, sel, v)
}

// endregion ***************************** type.gotpl *****************************
