package resolver

import (
	"github.com/99designs/gqlgen/graphql"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
	"github.com/michaelschade/kenchi-sub000/internal/transport/graphql/model"
)

// errFromFailure renders an expected operation failure as the error arm of a
// mutation output.
func errFromFailure(f *versioning.Failure) *model.KenchiError {
	if f == nil {
		return nil
	}
	var param *string
	if f.Param != "" {
		p := f.Param
		param = &p
	}
	return &model.KenchiError{
		Type:    errTypeFor(f.Code),
		Code:    string(f.Code),
		Param:   param,
		Message: f.Message,
	}
}

func errTypeFor(code versioning.FailureCode) string {
	switch code {
	case versioning.FailUnauthenticated:
		return "authentication_error"
	case versioning.FailPermission:
		return "permission_error"
	case versioning.FailAlreadyModified:
		return "conflict_error"
	default:
		return "invalid_request_error"
	}
}

// ---------------------------------------------------------------------------
// Enum conversions
// ---------------------------------------------------------------------------

var branchTypeToDomain = map[model.BranchType]domain.BranchType{
	model.BranchTypePublished:  domain.BranchTypePublished,
	model.BranchTypeDraft:      domain.BranchTypeDraft,
	model.BranchTypeSuggestion: domain.BranchTypeSuggestion,
	model.BranchTypeRemix:      domain.BranchTypeRemix,
}

var branchTypeToModel = map[domain.BranchType]model.BranchType{
	domain.BranchTypePublished:  model.BranchTypePublished,
	domain.BranchTypeDraft:      model.BranchTypeDraft,
	domain.BranchTypeSuggestion: model.BranchTypeSuggestion,
	domain.BranchTypeRemix:      model.BranchTypeRemix,
}

func domainBranchType(bt *model.BranchType) *domain.BranchType {
	if bt == nil {
		return nil
	}
	d := branchTypeToDomain[*bt]
	return &d
}

var permToDomain = map[model.CollectionPermission]domain.PermissionGroup{
	model.CollectionPermissionViewer:    domain.PermissionGroupViewer,
	model.CollectionPermissionPublisher: domain.PermissionGroupPublisher,
	model.CollectionPermissionAdmin:     domain.PermissionGroupAdmin,
}

var permToModel = map[domain.PermissionGroup]model.CollectionPermission{
	domain.PermissionGroupViewer:    model.CollectionPermissionViewer,
	domain.PermissionGroupPublisher: model.CollectionPermissionPublisher,
	domain.PermissionGroupAdmin:     model.CollectionPermissionAdmin,
}

func domainPerms(in []model.CollectionPermission) []domain.PermissionGroup {
	out := make([]domain.PermissionGroup, len(in))
	for i, p := range in {
		out[i] = permToDomain[p]
	}
	return out
}

func modelPerms(in []domain.PermissionGroup) []model.CollectionPermission {
	out := make([]model.CollectionPermission, len(in))
	for i, p := range in {
		out[i] = permToModel[p]
	}
	return out
}

// ---------------------------------------------------------------------------
// Entity conversions
// ---------------------------------------------------------------------------

func versionedNode(meta *domain.VersionMeta, tag string) model.VersionedNode {
	node := model.VersionedNode{
		ID:                     ids.EncodeNodeID(tag, meta.ID),
		StaticID:               meta.StaticID,
		BranchID:               meta.BranchID,
		BranchType:             branchTypeToModel[meta.BranchType],
		IsLatest:               meta.IsLatest,
		IsArchived:             meta.IsArchived,
		Metadata:               meta.Metadata,
		MajorChangeDescription: meta.MajorChangeDescription,
		CreatedAt:              meta.CreatedAt,
		CreatedByUserRowID:     meta.CreatedByUserID,
		SuggestedByUserRowID:   meta.SuggestedByUserID,
	}
	if meta.PreviousVersionID != nil {
		id := ids.EncodeNodeID(tag, *meta.PreviousVersionID)
		node.PreviousVersionID = &id
	}
	if meta.BranchedFromID != nil {
		id := ids.EncodeNodeID(tag, *meta.BranchedFromID)
		node.BranchedFromID = &id
	}
	return node
}

func toolToModel(t *domain.Tool) *model.Tool {
	if t == nil {
		return nil
	}
	return &model.Tool{
		VersionedNode:   versionedNode(&t.VersionMeta, ids.PrefixTool),
		Name:            t.Name,
		Description:     t.Description,
		Icon:            t.Icon,
		Component:       t.Component,
		Inputs:          t.Inputs,
		Configuration:   t.Configuration,
		Keywords:        t.Keywords,
		CollectionRowID: t.CollectionID,
	}
}

func workflowToModel(w *domain.Workflow) *model.Workflow {
	if w == nil {
		return nil
	}
	return &model.Workflow{
		VersionedNode:   versionedNode(&w.VersionMeta, ids.PrefixWorkflow),
		Name:            w.Name,
		Description:     w.Description,
		Icon:            w.Icon,
		Contents:        w.Contents,
		Keywords:        w.Keywords,
		CollectionRowID: w.CollectionID,
	}
}

func spaceToModel(s *domain.Space) *model.Space {
	if s == nil {
		return nil
	}
	return &model.Space{
		VersionedNode:   versionedNode(&s.VersionMeta, ids.PrefixSpace),
		Name:            s.Name,
		Icon:            s.Icon,
		VisibleToGroups: s.VisibleToGroups,
		Widgets:         s.Widgets,
	}
}

func widgetToModel(w *domain.Widget) *model.Widget {
	if w == nil {
		return nil
	}
	return &model.Widget{
		VersionedNode: versionedNode(&w.VersionMeta, ids.PrefixWidget),
		Contents:      w.Contents,
		Inputs:        w.Inputs,
	}
}

func collectionToModel(c *domain.Collection) *model.Collection {
	if c == nil {
		return nil
	}
	return &model.Collection{
		ID:                 ids.EncodeNodeID(ids.TagCollection, c.ID),
		Name:               c.Name,
		Description:        c.Description,
		Icon:               c.Icon,
		DefaultPermissions: modelPerms(c.DefaultPermissions),
		IsArchived:         c.IsArchived,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
		RowID:              c.ID,
	}
}

func aclToModel(entries []domain.CollectionACLEntry) []*model.CollectionACLEntry {
	out := make([]*model.CollectionACLEntry, len(entries))
	for i, e := range entries {
		m := &model.CollectionACLEntry{
			ID:              ids.EncodeNodeID("acl", e.ID),
			PermissionGroup: permToModel[e.PermissionGroup],
		}
		if e.UserID != nil {
			id := ids.EncodeNodeID(ids.TagUser, *e.UserID)
			m.UserID = &id
		}
		if e.UserGroupID != nil {
			id := ids.EncodeNodeID(ids.TagUserGroup, *e.UserGroupID)
			m.UserGroupID = &id
		}
		out[i] = m
	}
	return out
}

func userToModel(u *domain.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		ID:                  ids.EncodeNodeID(ids.TagUser, u.ID),
		Email:               u.Email,
		Name:                u.Name,
		IsOrganizationAdmin: u.IsOrganizationAdmin,
	}
}

// ---------------------------------------------------------------------------
// Payload builders
// ---------------------------------------------------------------------------

// putPtr maps an omittable nullable input field onto the engine's payload
// semantics: absent key preserves, explicit null clears.
func putPtr[T any](fields map[string]any, key string, v graphql.Omittable[*T]) {
	if !v.IsSet() {
		return
	}
	if v.Value() == nil {
		fields[key] = nil
		return
	}
	fields[key] = *v.Value()
}

// putVal is putPtr for slice- and map-typed fields, where the GraphQL null
// arrives as a nil value of the type itself. The engine's typed accessors
// treat a nil slice or map the same as an explicit null.
func putVal[T any](fields map[string]any, key string, v graphql.Omittable[T]) {
	if !v.IsSet() {
		return
	}
	fields[key] = v.Value()
}

// putOpt includes the key only when the pointer is non-nil. Used on create
// payloads, where absence means "default".
func putOpt[T any](fields map[string]any, key string, v *T) {
	if v == nil {
		return
	}
	fields[key] = *v
}
