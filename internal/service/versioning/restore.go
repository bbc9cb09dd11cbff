package versioning

import (
	"context"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// Restore un-archives the latest row of a lineage by appending a new row
// with the archived flag cleared and mirrors Delete. Only published and
// draft lineages can be restored; a closed suggestion stays closed.
func (e *Engine[R]) Restore(ctx context.Context, nodeID string) (Result[R], error) {
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
	if !meta.IsArchived {
		return fail[R](FailInvalidValue, "id", "not archived"), nil
	}

	switch meta.BranchType {
	case domain.BranchTypePublished:
		allowed, err := e.canPublish(ctx, v, current.Scope())
		if err != nil {
			return Result[R]{}, err
		}
		if !allowed {
			return fail[R](FailPermission, "", "missing publish permission"), nil
		}
	case domain.BranchTypeDraft:
		if !isAuthor(v, meta) {
			return fail[R](FailNotFound, "id", "not found"), nil
		}
	default:
		return fail[R](FailInvalidValue, "id", "a "+meta.BranchType.String()+" cannot be restored"), nil
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
	nextMeta.IsArchived = false
	nextMeta.PreviousVersionID = ptr(meta.ID)
	nextMeta.BranchedFromID = meta.BranchedFromID
	nextMeta.CreatedByUserID = v.UserID()
	nextMeta.SuggestedByUserID = meta.SuggestedByUserID

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

	e.logTransition(ctx, "restored", saved, v.UserID())
	return ok(saved), nil
}
