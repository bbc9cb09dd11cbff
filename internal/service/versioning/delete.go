package versioning

import (
	"context"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// Delete archives the latest row of a lineage by appending a new row with
// the archived flag set. History is never mutated in place.
//
// Published rows require the kind's publish permission. Suggestions may be
// closed by a reviewer or withdrawn by their author; when a reviewer (not
// the author) archives one, the rejection is recorded in metadata. Any other
// branch type may only be archived by its author.
func (e *Engine[R]) Delete(ctx context.Context, nodeID string) (Result[R], error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return fail[R](FailUnauthenticated, "", "authentication required"), nil
	}

	current, failure, err := e.loadForUpdate(ctx, nodeID, "id", func(ctx context.Context, row R) (bool, error) {
		return e.canSee(ctx, v, row.Scope())
	})
	if err != nil {
		return Result[R]{}, err
	}
	if failure != nil {
		return Result[R]{Failure: failure}, nil
	}

	meta := current.Meta()
	if meta.IsArchived {
		return fail[R](FailInvalidValue, "id", "already archived"), nil
	}

	rejected := false
	switch meta.BranchType {
	case domain.BranchTypePublished:
		allowed, err := e.canPublish(ctx, v, current.Scope())
		if err != nil {
			return Result[R]{}, err
		}
		if !allowed {
			return fail[R](FailPermission, "", "missing publish permission"), nil
		}
	case domain.BranchTypeSuggestion:
		if isAuthor(v, meta) {
			break
		}
		allowed, err := e.canReview(ctx, v, current.Scope())
		if err != nil {
			return Result[R]{}, err
		}
		if !allowed {
			return fail[R](FailPermission, "", "missing review permission"), nil
		}
		rejected = true
	default:
		if !isAuthor(v, meta) {
			return fail[R](FailNotFound, "id", "not found"), nil
		}
	}

	next, err := e.newRowFrom(current, nil)
	if err != nil {
		return Result[R]{}, err
	}
	nextMeta := next.Meta()
	nextMeta.StaticID = meta.StaticID
	nextMeta.BranchID = meta.BranchID
	nextMeta.BranchType = meta.BranchType
	nextMeta.IsLatest = true
	nextMeta.IsArchived = true
	nextMeta.PreviousVersionID = ptr(meta.ID)
	nextMeta.BranchedFromID = meta.BranchedFromID
	nextMeta.CreatedByUserID = v.UserID()
	nextMeta.SuggestedByUserID = meta.SuggestedByUserID
	if rejected {
		nextMeta.Metadata = domain.Metadata{domain.MetadataArchiveReason: domain.ArchiveReasonRejected}
	}

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

	e.logTransition(ctx, "archived", saved, v.UserID())
	return ok(saved), nil
}
