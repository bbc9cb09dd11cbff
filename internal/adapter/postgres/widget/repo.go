// Package widget implements the widget version store using PostgreSQL.
package widget

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

const table = "widgets"

var columns = []string{
	"id", "static_id", "branch_id", "branch_type", "is_latest", "is_archived",
	"previous_version_id", "branched_from_id", "created_by_user_id",
	"suggested_by_user_id", "metadata", "major_change_description", "created_at",
	"organization_id", "contents", "inputs",
}

// Repo provides widget row persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new widget repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FindByID returns one physical row by primary key.
func (r *Repo) FindByID(ctx context.Context, id int64) (*domain.Widget, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	w, err := scanWidget(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "widget", id)
	}
	return w, nil
}

// FindFirst returns the first row matching the filter.
func (r *Repo) FindFirst(ctx context.Context, f versioning.Filter) (*domain.Widget, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	f.Limit = 1
	sql, args, err := postgres.ApplyVersionFilter(
		postgres.Builder.Select(columns...).From(table), f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	w, err := scanWidget(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "widget", 0)
	}
	return w, nil
}

// FindMany returns all rows matching the filter.
func (r *Repo) FindMany(ctx context.Context, f versioning.Filter) ([]*domain.Widget, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.ApplyVersionFilter(
		postgres.Builder.Select(columns...).From(table), f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "widget", 0)
	}
	defer rows.Close()

	var out []*domain.Widget
	for rows.Next() {
		w, err := scanWidget(rows)
		if err != nil {
			return nil, postgres.MapError(err, "widget", 0)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "widget", 0)
	}
	return out, nil
}

// Create appends one physical row.
func (r *Repo) Create(ctx context.Context, w *domain.Widget) (*domain.Widget, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Insert(table).
		Columns(
			"static_id", "branch_id", "branch_type", "is_latest", "is_archived",
			"previous_version_id", "branched_from_id", "created_by_user_id",
			"suggested_by_user_id", "metadata", "major_change_description",
			"organization_id", "contents", "inputs",
		).
		Values(
			w.StaticID, w.BranchID, string(w.BranchType), w.IsLatest, w.IsArchived,
			w.PreviousVersionID, w.BranchedFromID, w.CreatedByUserID,
			w.SuggestedByUserID, w.Metadata, w.MajorChangeDescription,
			w.OrganizationID, w.Contents, w.Inputs,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	saved, err := scanWidget(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "widget", 0)
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
		return postgres.MapError(err, "widget", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("widget %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanWidget(row pgx.Row) (*domain.Widget, error) {
	var w domain.Widget
	err := row.Scan(
		&w.ID, &w.StaticID, &w.BranchID, &w.BranchType, &w.IsLatest, &w.IsArchived,
		&w.PreviousVersionID, &w.BranchedFromID, &w.CreatedByUserID,
		&w.SuggestedByUserID, &w.Metadata, &w.MajorChangeDescription, &w.CreatedAt,
		&w.OrganizationID, &w.Contents, &w.Inputs,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
