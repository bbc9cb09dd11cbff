// Package workflow implements the workflow version store using PostgreSQL.
package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/michaelschade/kenchi-sub000/internal/adapter/postgres"
	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
)

const table = "workflows"

var columns = []string{
	"id", "static_id", "branch_id", "branch_type", "is_latest", "is_archived",
	"previous_version_id", "branched_from_id", "created_by_user_id",
	"suggested_by_user_id", "metadata", "major_change_description", "created_at",
	"collection_id", "name", "description", "icon", "contents", "keywords",
}

// Repo provides workflow row persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new workflow repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FindByID returns one physical row by primary key.
func (r *Repo) FindByID(ctx context.Context, id int64) (*domain.Workflow, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	w, err := scanWorkflow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "workflow", id)
	}
	return w, nil
}

// FindFirst returns the first row matching the filter.
func (r *Repo) FindFirst(ctx context.Context, f versioning.Filter) (*domain.Workflow, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	f.Limit = 1
	sql, args, err := postgres.ApplyVersionFilter(
		postgres.Builder.Select(columns...).From(table), f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	w, err := scanWorkflow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "workflow", 0)
	}
	return w, nil
}

// FindMany returns all rows matching the filter.
func (r *Repo) FindMany(ctx context.Context, f versioning.Filter) ([]*domain.Workflow, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.ApplyVersionFilter(
		postgres.Builder.Select(columns...).From(table), f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "workflow", 0)
	}
	defer rows.Close()

	var out []*domain.Workflow
	for rows.Next() {
		w, err := scanWorkflow(rows)
		if err != nil {
			return nil, postgres.MapError(err, "workflow", 0)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "workflow", 0)
	}
	return out, nil
}

// Create appends one physical row.
func (r *Repo) Create(ctx context.Context, w *domain.Workflow) (*domain.Workflow, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Insert(table).
		Columns(
			"static_id", "branch_id", "branch_type", "is_latest", "is_archived",
			"previous_version_id", "branched_from_id", "created_by_user_id",
			"suggested_by_user_id", "metadata", "major_change_description",
			"collection_id", "name", "description", "icon", "contents", "keywords",
		).
		Values(
			w.StaticID, w.BranchID, string(w.BranchType), w.IsLatest, w.IsArchived,
			w.PreviousVersionID, w.BranchedFromID, w.CreatedByUserID,
			w.SuggestedByUserID, w.Metadata, w.MajorChangeDescription,
			w.CollectionID, w.Name, w.Description, w.Icon, w.Contents, w.Keywords,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	saved, err := scanWorkflow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "workflow", 0)
	}
	return saved, nil
}

// Retire clears the latest flag of one row.
func (r *Repo) Retire(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Update(table).
		Set("is_latest", false).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "workflow", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workflow %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanWorkflow(row pgx.Row) (*domain.Workflow, error) {
	var w domain.Workflow
	err := row.Scan(
		&w.ID, &w.StaticID, &w.BranchID, &w.BranchType, &w.IsLatest, &w.IsArchived,
		&w.PreviousVersionID, &w.BranchedFromID, &w.CreatedByUserID,
		&w.SuggestedByUserID, &w.Metadata, &w.MajorChangeDescription, &w.CreatedAt,
		&w.CollectionID, &w.Name, &w.Description, &w.Icon, &w.Contents, &w.Keywords,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
