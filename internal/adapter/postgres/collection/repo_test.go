package collection

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func aclRows() *pgxmock.Rows {
	return pgxmock.NewRows(aclColumns)
}

// TestRepo_ACLForViewer_GroupRowsRequireNullUser pins the query shape: group
// grants count only through null-user rows, so a row naming both a user and
// a group never reaches other members of that group.
func TestRepo_ACLForViewer_GroupRowsRequireNullUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM collection_acl WHERE collection_id = \$1 AND \(user_id = \$2 OR \(user_id IS NULL AND user_group_id IN \(\$3,\$4\)\)\)`).
		WithArgs(int64(42), int64(7), int64(3), int64(9)).
		WillReturnRows(aclRows().AddRow(
			int64(1), int64(42), (*int64)(nil), ptr(int64(3)), domain.PermissionGroupPublisher, time.Now(),
		))

	entries, err := repo.ACLForViewer(context.Background(), 42, 7, []int64{3, 9})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].UserID)
	require.NotNil(t, entries[0].UserGroupID)
	assert.Equal(t, int64(3), *entries[0].UserGroupID)
	assert.Equal(t, domain.PermissionGroupPublisher, entries[0].PermissionGroup)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_ACLForCollection(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM collection_acl WHERE collection_id = \$1 ORDER BY id ASC`).
		WithArgs(int64(42)).
		WillReturnRows(aclRows().
			AddRow(int64(1), int64(42), ptr(int64(7)), (*int64)(nil), domain.PermissionGroupAdmin, time.Now()).
			AddRow(int64(2), int64(42), (*int64)(nil), ptr(int64(3)), domain.PermissionGroupViewer, time.Now()))

	entries, err := repo.ACLForCollection(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.PermissionGroupAdmin, entries[0].PermissionGroup)
	assert.Equal(t, domain.PermissionGroupViewer, entries[1].PermissionGroup)

	require.NoError(t, mock.ExpectationsWereMet())
}

func ptr[T any](v T) *T { return &v }
