package dataloader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	dl "github.com/michaelschade/kenchi-sub000/internal/transport/graphql/dataloader"
)

// ---------------------------------------------------------------------------
// Mock repos
// ---------------------------------------------------------------------------

type mockUserRepo struct {
	mu     sync.Mutex
	result []domain.User
	err    error
	calls  [][]int64
}

func (m *mockUserRepo) ListByIDs(_ context.Context, ids []int64) ([]domain.User, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ids)
	m.mu.Unlock()
	return m.result, m.err
}

type mockCollectionRepo struct {
	result []domain.Collection
	err    error
}

func (m *mockCollectionRepo) ListByIDs(_ context.Context, _ []int64) ([]domain.Collection, error) {
	return m.result, m.err
}

func newRepos(users *mockUserRepo, collections *mockCollectionRepo) *dl.Repos {
	if users == nil {
		users = &mockUserRepo{}
	}
	if collections == nil {
		collections = &mockCollectionRepo{}
	}
	return &dl.Repos{User: users, Collection: collections}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestUserByID_BatchesKeys(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{result: []domain.User{
		{ID: 1, Email: "a@example.com"},
		{ID: 2, Email: "b@example.com"},
	}}
	loaders := dl.NewLoaders(newRepos(users, nil))
	ctx := context.Background()

	thunk1 := loaders.UserByID.Load(ctx, 1)
	thunk2 := loaders.UserByID.Load(ctx, 2)

	u1, err := thunk1()
	require.NoError(t, err)
	u2, err := thunk2()
	require.NoError(t, err)

	assert.Equal(t, "a@example.com", u1.Email)
	assert.Equal(t, "b@example.com", u2.Email)

	users.mu.Lock()
	defer users.mu.Unlock()
	require.Len(t, users.calls, 1, "both keys should go through one batch")
	assert.ElementsMatch(t, []int64{1, 2}, users.calls[0])
}

func TestUserByID_MissingKeyYieldsNil(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{result: []domain.User{{ID: 1}}}
	loaders := dl.NewLoaders(newRepos(users, nil))

	u, err := loaders.UserByID.Load(context.Background(), 99)()
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserByID_RepoErrorPropagates(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{err: errors.New("db down")}
	loaders := dl.NewLoaders(newRepos(users, nil))

	_, err := loaders.UserByID.Load(context.Background(), 1)()
	require.Error(t, err)
}

func TestCollectionByID(t *testing.T) {
	t.Parallel()

	collections := &mockCollectionRepo{result: []domain.Collection{
		{ID: 10, Name: "Support"},
	}}
	loaders := dl.NewLoaders(newRepos(nil, collections))

	c, err := loaders.CollectionByID.Load(context.Background(), 10)()
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Support", c.Name)
}

func TestMiddleware_InjectsLoaders(t *testing.T) {
	t.Parallel()

	repos := newRepos(nil, nil)
	var got *dl.Loaders
	handler := dl.Middleware(repos)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = dl.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
}

func TestFromContext_PanicsWithoutMiddleware(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		dl.FromContext(context.Background())
	})
}
