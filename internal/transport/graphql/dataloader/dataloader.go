// Package dataloader provides per-request DataLoaders for batching GraphQL
// resolver queries into single SQL calls. Loaders call repositories directly;
// visibility filtering stays in the resolvers that consume them.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	ListByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
}

type collectionRepo interface {
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Collection, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User       userRepo
	Collection collectionRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains the per-request DataLoaders. Created per-request via
// NewLoaders; results are cached for a single request only.
type Loaders struct {
	UserByID       *dataloader.Loader[int64, *domain.User]
	CollectionByID *dataloader.Loader[int64, *domain.Collection]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:       newLoader(newUserBatchFn(repos.User)),
		CollectionByID: newLoader(newCollectionBatchFn(repos.Collection)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Batch functions
// ---------------------------------------------------------------------------

func newUserBatchFn(repo userRepo) dataloader.BatchFunc[int64, *domain.User] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.User] {
		users, err := repo.ListByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[int64]*domain.User, len(users))
		for i := range users {
			u := users[i] // copy to avoid aliasing
			byID[u.ID] = &u
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.User]{Data: byID[key]}
		}
		return results
	}
}

func newCollectionBatchFn(repo collectionRepo) dataloader.BatchFunc[int64, *domain.Collection] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Collection] {
		collections, err := repo.ListByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Collection](len(keys), err)
		}

		byID := make(map[int64]*domain.Collection, len(collections))
		for i := range collections {
			c := collections[i]
			byID[c.ID] = &c
		}

		results := make([]*dataloader.Result[*domain.Collection], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Collection]{Data: byID[key]}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
