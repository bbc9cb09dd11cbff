package versioning

import (
	"context"
	"errors"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
)

// loadForUpdate performs the shared front half of every row-targeting
// operation: decode the external id, load the row, evaluate the caller's
// permission predicate, and enforce the optimistic-concurrency latest check.
//
// Expected failures come back as a *Failure, never as an error; the error
// return is reserved for infrastructure faults. An undecodable id, an absent
// row, and a row the viewer may not act on all collapse into the same
// not-found failure so that existence is not leaked.
func (e *Engine[R]) loadForUpdate(
	ctx context.Context,
	nodeID string,
	param string,
	permitted func(ctx context.Context, row R) (bool, error),
) (R, *Failure, error) {
	var zero R

	id, err := ids.DecodeNodeIDAs(e.kind.NodeTag(), nodeID)
	if err != nil {
		return zero, &Failure{Code: FailNotFound, Param: param, Message: "not found"}, nil
	}

	row, err := e.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return zero, &Failure{Code: FailNotFound, Param: param, Message: "not found"}, nil
		}
		return zero, nil, err
	}

	allowed, err := permitted(ctx, row)
	if err != nil {
		return zero, nil, err
	}
	if !allowed {
		return zero, &Failure{Code: FailNotFound, Param: param, Message: "not found"}, nil
	}

	if !row.Meta().IsLatest {
		return zero, &Failure{Code: FailAlreadyModified, Param: param, Message: "a newer version exists"}, nil
	}

	return row, nil, nil
}
