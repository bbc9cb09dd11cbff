package versioning

import (
	"context"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

// Row is a physical row of one versioned entity kind. Concrete kinds embed
// domain.VersionMeta and locate their permission boundary via Scope.
type Row interface {
	Meta() *domain.VersionMeta
	Scope() domain.Scope
}

// Filter selects physical rows of one kind. Nil fields are not applied.
type Filter struct {
	StaticID          *string
	BranchID          *string
	BranchIDIsNull    bool
	BranchType        *domain.BranchType
	IsLatest          *bool
	IsArchived        *bool
	CreatedByUserID   *int64
	SuggestedByUserID *int64
	CollectionID      *int64
	OrganizationID    *int64

	// OrderByIDDesc returns newest physical rows first.
	OrderByIDDesc bool
	Limit         int
}

// Store is the per-kind persistence adapter the engine is written against.
//
// Retire is the only in-place mutation of a persisted row and may flip
// nothing but is_latest. Payload changes always go through Create: history is
// append-only.
type Store[R Row] interface {
	FindByID(ctx context.Context, id int64) (R, error)
	FindFirst(ctx context.Context, f Filter) (R, error)
	FindMany(ctx context.Context, f Filter) ([]R, error)
	Create(ctx context.Context, row R) (R, error)
	Retire(ctx context.Context, id int64) error
}

// TxManager runs a function inside one atomic database transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

func ptr[T any](v T) *T { return &v }
