package versioning

import (
	"context"
	"errors"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/viewer"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// MergeInput carries the inputs of Merge.
type MergeInput struct {
	// FromID is the branch head (draft or suggestion) being folded in.
	FromID string
	// ToID optionally names the published row to merge into. When absent
	// the merge publishes a lineage that has never been published.
	ToID *string
	// Fields overrides payload fields on the resulting published row.
	Fields map[string]any
}

// Merge folds a branch into the published lineage: one new published row
// carrying the branch's content, and one archived row closing the branch,
// cross-linked through metadata. All four row mutations commit atomically.
func (e *Engine[R]) Merge(ctx context.Context, in MergeInput) (Result[R], error) {
	v := ctxutil.ViewerFromCtx(ctx)
	if !v.Authenticated() {
		return fail[R](FailUnauthenticated, "", "authentication required"), nil
	}

	if err := assertNoSystemKeys(in.Fields); err != nil {
		return Result[R]{}, err
	}

	from, failure, err := e.loadForUpdate(ctx, in.FromID, "fromId", func(ctx context.Context, row R) (bool, error) {
		return e.canSee(ctx, v, row.Scope())
	})
	if err != nil {
		return Result[R]{}, err
	}
	if failure != nil {
		return Result[R]{Failure: failure}, nil
	}
	fromMeta := from.Meta()

	if fromMeta.BranchType == domain.BranchTypeRemix {
		return Result[R]{}, errUnimplementedBranchType(fromMeta.BranchType)
	}

	var to R
	var toMeta *domain.VersionMeta
	if in.ToID != nil {
		loaded, failure, err := e.loadForUpdate(ctx, *in.ToID, "toId", func(ctx context.Context, row R) (bool, error) {
			return e.canSee(ctx, v, row.Scope())
		})
		if err != nil {
			return Result[R]{}, err
		}
		if failure != nil {
			return Result[R]{Failure: failure}, nil
		}
		to = loaded
		toMeta = to.Meta()

		if !toMeta.BranchType.IsPublished() {
			return fail[R](FailInvalidValue, "toId", "merge target must be a published version"), nil
		}
		if toMeta.StaticID != fromMeta.StaticID {
			return fail[R](FailInvalidValue, "toId", "merge target belongs to a different "+e.kind.Name()), nil
		}
	} else {
		// A first publish: nobody may have published this lineage yet.
		_, err := e.store.FindFirst(ctx, Filter{
			StaticID:   ptr(fromMeta.StaticID),
			BranchType: ptr(domain.BranchTypePublished),
			IsLatest:   ptr(true),
		})
		switch {
		case err == nil:
			return fail[R](FailAlreadyModified, "toId", "a published version already exists"), nil
		case !errors.Is(err, domain.ErrNotFound):
			return Result[R]{}, err
		}
	}

	if failure, err := e.checkMergePermission(ctx, v, from, toMeta != nil, to); err != nil {
		return Result[R]{}, err
	} else if failure != nil {
		return Result[R]{Failure: failure}, nil
	}

	published, err := e.newRowFrom(from, in.Fields)
	if err != nil {
		if res, handled := failFromErr[R](err, ""); handled {
			return res, nil
		}
		return Result[R]{}, err
	}

	pubMeta := published.Meta()
	pubMeta.StaticID = fromMeta.StaticID
	pubMeta.BranchType = domain.BranchTypePublished
	pubMeta.IsLatest = true
	pubMeta.CreatedByUserID = v.UserID()
	pubMeta.SuggestedByUserID = fromMeta.SuggestedByUserID
	pubMeta.Metadata = domain.Metadata{domain.MetadataMergedFromID: fromMeta.ID}
	if toMeta != nil {
		pubMeta.PreviousVersionID = ptr(toMeta.ID)
	}

	var savedPublished R
	txErr := e.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if toMeta != nil {
			if err := e.store.Retire(txCtx, toMeta.ID); err != nil {
				return err
			}
		}

		var createErr error
		savedPublished, createErr = e.store.Create(txCtx, published)
		if createErr != nil {
			return createErr
		}

		if err := e.store.Retire(txCtx, fromMeta.ID); err != nil {
			return err
		}

		// Close the branch with an archived head linking back to the merge.
		closed, err := e.newRowFrom(from, nil)
		if err != nil {
			return err
		}
		closedMeta := closed.Meta()
		closedMeta.StaticID = fromMeta.StaticID
		closedMeta.BranchID = fromMeta.BranchID
		closedMeta.BranchType = fromMeta.BranchType
		closedMeta.IsLatest = true
		closedMeta.IsArchived = true
		closedMeta.PreviousVersionID = ptr(fromMeta.ID)
		closedMeta.BranchedFromID = fromMeta.BranchedFromID
		closedMeta.CreatedByUserID = v.UserID()
		closedMeta.SuggestedByUserID = fromMeta.SuggestedByUserID
		closedMeta.Metadata = domain.Metadata{
			domain.MetadataArchiveReason: domain.ArchiveReasonApproved,
			domain.MetadataMergedToID:    savedPublished.Meta().ID,
		}

		_, err = e.store.Create(txCtx, closed)
		return err
	})
	if txErr != nil {
		if res, handled := failFromErr[R](txErr, "fromId"); handled {
			return res, nil
		}
		return Result[R]{}, txErr
	}

	e.logTransition(ctx, "merged", savedPublished, v.UserID())
	return ok(savedPublished), nil
}

// checkMergePermission enforces the merge capability: the kind's publish
// permission on the from (and, when present, to) scope, escalated to
// review_suggestions when the branch being merged is a suggestion.
func (e *Engine[R]) checkMergePermission(ctx context.Context, v *viewer.Viewer, from R, hasTo bool, to R) (*Failure, error) {
	check := e.canPublish
	if from.Meta().BranchType == domain.BranchTypeSuggestion {
		check = e.canReview
	}

	allowed, err := check(ctx, v, from.Scope())
	if err != nil {
		return nil, err
	}
	if !allowed {
		return &Failure{Code: FailPermission, Param: "fromId", Message: "missing merge permission"}, nil
	}

	if hasTo {
		allowed, err := check(ctx, v, to.Scope())
		if err != nil {
			return nil, err
		}
		if !allowed {
			return &Failure{Code: FailPermission, Param: "toId", Message: "missing merge permission"}, nil
		}
	}

	return nil, nil
}
