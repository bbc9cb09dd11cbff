package versioning

import (
	"context"
	"errors"
	"log/slog"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/viewer"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// UpdateInput carries the inputs of Update.
type UpdateInput struct {
	// ID is the externally encoded id of the row to supersede. It must be
	// the current latest of its lineage.
	ID string
	// BranchType defaults to the existing row's branch type.
	BranchType *domain.BranchType
	// CollectionID optionally moves the entity to another collection
	// (collection-scoped kinds, published target only).
	CollectionID *string
	// MajorChangeDescription annotates this version; it is never carried
	// forward to later versions.
	MajorChangeDescription map[string]any
	// Fields is the partial payload: a key present with a nil value clears
	// the field, an absent key preserves the existing value.
	Fields map[string]any
}

// Update supersedes the latest row of a lineage with a new physical row.
//
// Publishing over the published lineage retires the old row and inserts the
// new one in a single transaction. Starting a draft or suggestion against a
// published row branches off without disturbing the published row's latest
// flag. Editing an existing branch is reserved to its author.
func (e *Engine[R]) Update(ctx context.Context, in UpdateInput) (Result[R], error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return fail[R](FailUnauthenticated, "", "authentication required"), nil
	}

	if err := assertNoSystemKeys(in.Fields); err != nil {
		return Result[R]{}, err
	}

	current, failure, err := e.loadForUpdate(ctx, in.ID, "id", func(ctx context.Context, row R) (bool, error) {
		return e.canSee(ctx, v, row.Scope())
	})
	if err != nil {
		return Result[R]{}, err
	}
	if failure != nil {
		return Result[R]{Failure: failure}, nil
	}

	meta := current.Meta()
	target := meta.BranchType
	if in.BranchType != nil {
		target = *in.BranchType
	}

	switch target {
	case domain.BranchTypePublished:
		return e.updatePublished(ctx, v, current, in)
	case domain.BranchTypeDraft, domain.BranchTypeSuggestion:
		if meta.BranchType.IsPublished() {
			return e.branchOff(ctx, v, current, target, in)
		}
		if meta.BranchType == domain.BranchTypeRemix {
			return Result[R]{}, errUnimplementedBranchType(meta.BranchType)
		}
		return e.updateBranch(ctx, v, current, target, in)
	case domain.BranchTypeRemix:
		return Result[R]{}, errUnimplementedBranchType(target)
	default:
		return fail[R](FailInvalidValue, "branchType", "unknown branch type"), nil
	}
}

// updatePublished supersedes a published row with a new published row.
func (e *Engine[R]) updatePublished(ctx context.Context, v *viewer.Viewer, current R, in UpdateInput) (Result[R], error) {
	meta := current.Meta()

	if !meta.BranchType.IsPublished() {
		// Branch content reaches the published lineage through Merge only.
		return fail[R](FailInvalidValue, "branchType", "a draft or suggestion cannot be published directly; merge it instead"), nil
	}

	allowed, err := e.canPublish(ctx, v, current.Scope())
	if err != nil {
		return Result[R]{}, err
	}
	if !allowed {
		return fail[R](FailPermission, "", "missing publish permission"), nil
	}

	fields := in.Fields
	if in.CollectionID != nil && e.kind.CollectionScoped() {
		targetCollection, err := ids.DecodeNodeIDAs(ids.TagCollection, *in.CollectionID)
		if err != nil {
			return fail[R](FailNotFound, "collectionId", "collection not found"), nil
		}
		if current.Scope().CollectionID == nil || *current.Scope().CollectionID != targetCollection {
			allowed, err := e.canPublish(ctx, v, domain.Scope{CollectionID: &targetCollection})
			if err != nil {
				return Result[R]{}, err
			}
			if !allowed {
				return fail[R](FailPermission, "collectionId", "missing publish permission on target collection"), nil
			}
			fields = mergeFields(fields, map[string]any{"collectionId": targetCollection})
		}
	}

	next, err := e.newRowFrom(current, fields)
	if err != nil {
		if res, handled := failFromErr[R](err, ""); handled {
			return res, nil
		}
		return Result[R]{}, err
	}

	nextMeta := next.Meta()
	nextMeta.StaticID = meta.StaticID
	nextMeta.BranchType = domain.BranchTypePublished
	nextMeta.IsLatest = true
	nextMeta.IsArchived = meta.IsArchived
	nextMeta.PreviousVersionID = ptr(meta.ID)
	nextMeta.CreatedByUserID = v.UserID()
	nextMeta.MajorChangeDescription = in.MajorChangeDescription

	var saved R
	txErr := e.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := e.store.Retire(txCtx, meta.ID); err != nil {
			return err
		}
		var createErr error
		saved, createErr = e.store.Create(txCtx, next)
		return createErr
	})
	if txErr != nil {
		if res, handled := failFromErr[R](txErr, "id"); handled {
			return res, nil
		}
		return Result[R]{}, txErr
	}

	e.logTransition(ctx, "updated", saved, v.UserID())
	return ok(saved), nil
}

// branchOff starts a draft or suggestion against a published row. The
// published row's latest flag is deliberately left untouched: opening a
// branch does not disturb the published lineage.
func (e *Engine[R]) branchOff(ctx context.Context, v *viewer.Viewer, current R, target domain.BranchType, in UpdateInput) (Result[R], error) {
	meta := current.Meta()

	// One open branch per branch type per user per entity.
	_, err := e.store.FindFirst(ctx, Filter{
		StaticID:          ptr(meta.StaticID),
		BranchType:        ptr(target),
		IsLatest:          ptr(true),
		IsArchived:        ptr(false),
		SuggestedByUserID: ptr(v.UserID()),
	})
	switch {
	case err == nil:
		return fail[R](FailInvalidValue, "branchType", "an open "+target.String()+" already exists for this "+e.kind.Name()), nil
	case !errors.Is(err, domain.ErrNotFound):
		return Result[R]{}, err
	}

	next, err := e.newRowFrom(current, in.Fields)
	if err != nil {
		if res, handled := failFromErr[R](err, ""); handled {
			return res, nil
		}
		return Result[R]{}, err
	}

	branchID := ids.NewStaticID(e.kind.BranchPrefix())
	nextMeta := next.Meta()
	nextMeta.StaticID = meta.StaticID
	nextMeta.BranchID = &branchID
	nextMeta.BranchType = target
	nextMeta.IsLatest = true
	nextMeta.BranchedFromID = ptr(meta.ID)
	nextMeta.CreatedByUserID = v.UserID()
	nextMeta.SuggestedByUserID = ptr(v.UserID())
	nextMeta.MajorChangeDescription = in.MajorChangeDescription

	saved, err := e.store.Create(ctx, next)
	if err != nil {
		if res, handled := failFromErr[R](err, ""); handled {
			return res, nil
		}
		return Result[R]{}, err
	}

	e.logTransition(ctx, "branched", saved, v.UserID())
	return ok(saved), nil
}

// updateBranch continues an existing draft or suggestion lineage.
func (e *Engine[R]) updateBranch(ctx context.Context, v *viewer.Viewer, current R, target domain.BranchType, in UpdateInput) (Result[R], error) {
	meta := current.Meta()

	// Only the branch author may continue it. Not-found, not a permission
	// failure: others must not learn the branch exists.
	if !isAuthor(v, meta) {
		return fail[R](FailNotFound, "id", "not found"), nil
	}

	next, err := e.newRowFrom(current, in.Fields)
	if err != nil {
		if res, handled := failFromErr[R](err, ""); handled {
			return res, nil
		}
		return Result[R]{}, err
	}

	nextMeta := next.Meta()
	nextMeta.StaticID = meta.StaticID
	nextMeta.BranchID = meta.BranchID
	nextMeta.BranchType = target
	nextMeta.IsLatest = true
	nextMeta.IsArchived = meta.IsArchived
	nextMeta.PreviousVersionID = ptr(meta.ID)
	nextMeta.BranchedFromID = meta.BranchedFromID
	nextMeta.CreatedByUserID = v.UserID()
	nextMeta.SuggestedByUserID = meta.SuggestedByUserID
	nextMeta.MajorChangeDescription = in.MajorChangeDescription

	var saved R
	txErr := e.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := e.store.Retire(txCtx, meta.ID); err != nil {
			return err
		}
		var createErr error
		saved, createErr = e.store.Create(txCtx, next)
		return createErr
	})
	if txErr != nil {
		if res, handled := failFromErr[R](txErr, "id"); handled {
			return res, nil
		}
		return Result[R]{}, txErr
	}

	e.logTransition(ctx, "updated", saved, v.UserID())
	return ok(saved), nil
}

func (e *Engine[R]) logTransition(ctx context.Context, action string, row R, userID int64) {
	meta := row.Meta()
	e.log.InfoContext(ctx, action,
		slog.String("static_id", meta.StaticID),
		slog.String("branch_type", meta.BranchType.String()),
		slog.Int64("id", meta.ID),
		slog.Int64("user_id", userID),
	)
}
