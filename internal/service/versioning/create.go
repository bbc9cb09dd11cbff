package versioning

import (
	"context"
	"log/slog"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// CreateInput carries the inputs of Create.
type CreateInput struct {
	// CollectionID is the externally encoded target collection node id.
	// Required for collection-scoped kinds, ignored otherwise.
	CollectionID string
	// BranchType defaults to published.
	BranchType *domain.BranchType
	// Fields is the kind-specific payload. System-managed keys are a
	// contract violation.
	Fields map[string]any
}

// Create births a logical entity: a fresh static id and its first physical
// row, latest on its lineage. Non-published creates open a branch owned by
// the acting user.
func (e *Engine[R]) Create(ctx context.Context, in CreateInput) (Result[R], error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return fail[R](FailUnauthenticated, "", "authentication required"), nil
	}

	if err := assertNoSystemKeys(in.Fields); err != nil {
		return Result[R]{}, err
	}

	branchType := domain.BranchTypePublished
	if in.BranchType != nil {
		branchType = *in.BranchType
	}
	switch branchType {
	case domain.BranchTypePublished, domain.BranchTypeDraft, domain.BranchTypeSuggestion:
	case domain.BranchTypeRemix:
		return Result[R]{}, errUnimplementedBranchType(branchType)
	default:
		return fail[R](FailInvalidValue, "branchType", "unknown branch type"), nil
	}

	scope := domain.Scope{OrganizationID: ptr(v.OrganizationID())}
	fields := in.Fields
	if e.kind.CollectionScoped() {
		collectionID, err := ids.DecodeNodeIDAs(ids.TagCollection, in.CollectionID)
		if err != nil {
			// Deliberately not a permission error: an invalid target and an
			// invisible one must be indistinguishable.
			return fail[R](FailNotFound, "collectionId", "collection not found"), nil
		}
		scope = domain.Scope{CollectionID: &collectionID}

		visible, err := e.canSee(ctx, v, scope)
		if err != nil {
			return Result[R]{}, err
		}
		if !visible {
			return fail[R](FailNotFound, "collectionId", "collection not found"), nil
		}
		fields = mergeFields(fields, map[string]any{"collectionId": collectionID})
	} else {
		fields = mergeFields(fields, map[string]any{"organizationId": v.OrganizationID()})
	}

	if branchType.IsPublished() {
		allowed, err := e.canPublish(ctx, v, scope)
		if err != nil {
			return Result[R]{}, err
		}
		if !allowed {
			return fail[R](FailPermission, "", "missing publish permission"), nil
		}
	}

	row := e.kind.New()
	if err := e.kind.Apply(row, fields); err != nil {
		if res, handled := failFromErr[R](err, ""); handled {
			return res, nil
		}
		return Result[R]{}, err
	}

	meta := row.Meta()
	meta.StaticID = ids.NewStaticID(e.kind.StaticPrefix())
	meta.BranchType = branchType
	meta.IsLatest = true
	meta.CreatedByUserID = v.UserID()
	if !branchType.IsPublished() {
		branchID := ids.NewStaticID(e.kind.BranchPrefix())
		meta.BranchID = &branchID
		meta.SuggestedByUserID = ptr(v.UserID())
	}

	created, err := e.store.Create(ctx, row)
	if err != nil {
		if res, handled := failFromErr[R](err, ""); handled {
			return res, nil
		}
		return Result[R]{}, err
	}

	e.log.InfoContext(ctx, "created",
		slog.String("static_id", created.Meta().StaticID),
		slog.String("branch_type", branchType.String()),
		slog.Int64("user_id", v.UserID()),
	)

	return ok(created), nil
}
