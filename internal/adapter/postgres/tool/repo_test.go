package tool

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
)

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func toolRows() *pgxmock.Rows {
	return pgxmock.NewRows(columns)
}

func addToolRow(rows *pgxmock.Rows, id int64, staticID string, isLatest bool) *pgxmock.Rows {
	return rows.AddRow(
		id, staticID, (*string)(nil), domain.BranchTypePublished, isLatest, false,
		(*int64)(nil), (*int64)(nil), int64(1),
		(*int64)(nil), domain.Metadata(nil), map[string]any(nil), time.Now(),
		int64(10), "Greeting", "", (*string)(nil), "InsertText",
		[]map[string]any(nil), map[string]any(nil), []string(nil),
	)
}

func TestRepo_FindByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM tools WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(addToolRow(toolRows(), 7, "tool_abc", true))

	got, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "tool_abc", got.StaticID)
	assert.Equal(t, domain.BranchTypePublished, got.BranchType)
	assert.Equal(t, "Greeting", got.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_FindByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM tools WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_FindFirst_AppliesFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	staticID := "tool_abc"
	mock.ExpectQuery(`SELECT .+ FROM tools WHERE static_id = \$1 AND branch_type = \$2 AND is_latest = \$3 ORDER BY id ASC LIMIT 1`).
		WithArgs(staticID, "published", true).
		WillReturnRows(addToolRow(toolRows(), 3, staticID, true))

	got, err := repo.FindFirst(context.Background(), versioning.Filter{
		StaticID:   &staticID,
		BranchType: branchTypePtr(domain.BranchTypePublished),
		IsLatest:   boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Create_LatestIndexRace(t *testing.T) {
	repo, mock := newMockRepo(t)

	insertArgs := make([]any, 19)
	for i := range insertArgs {
		insertArgs[i] = pgxmock.AnyArg()
	}
	mock.ExpectQuery(`INSERT INTO tools`).
		WithArgs(insertArgs...).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "tools_published_latest",
		})

	_, err := repo.Create(context.Background(), &domain.Tool{
		VersionMeta: domain.VersionMeta{
			StaticID:   "tool_abc",
			BranchType: domain.BranchTypePublished,
			IsLatest:   true,
		},
		CollectionID: 10,
		Name:         "Greeting",
		Component:    "InsertText",
	})
	require.ErrorIs(t, err, domain.ErrAlreadyModified)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Retire(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE tools SET is_latest = \$1 WHERE id = \$2`).
		WithArgs(false, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Retire(context.Background(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Retire_MissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE tools SET is_latest = \$1 WHERE id = \$2`).
		WithArgs(false, int64(404)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Retire(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func branchTypePtr(b domain.BranchType) *domain.BranchType { return &b }
func boolPtr(b bool) *bool                                 { return &b }
