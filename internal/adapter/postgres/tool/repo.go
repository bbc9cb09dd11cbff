// Package tool implements the tool version store using PostgreSQL.
package tool

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

const table = "tools"

var columns = []string{
	"id", "static_id", "branch_id", "branch_type", "is_latest", "is_archived",
	"previous_version_id", "branched_from_id", "created_by_user_id",
	"suggested_by_user_id", "metadata", "major_change_description", "created_at",
	"collection_id", "name", "description", "icon", "component", "inputs",
	"configuration", "keywords",
}

// Repo provides tool row persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tool repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FindByID returns one physical row by primary key.
func (r *Repo) FindByID(ctx context.Context, id int64) (*domain.Tool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t, err := scanTool(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tool", id)
	}
	return t, nil
}

// FindFirst returns the first row matching the filter.
func (r *Repo) FindFirst(ctx context.Context, f versioning.Filter) (*domain.Tool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	f.Limit = 1
	sql, args, err := postgres.ApplyVersionFilter(
		postgres.Builder.Select(columns...).From(table), f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t, err := scanTool(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tool", 0)
	}
	return t, nil
}

// FindMany returns all rows matching the filter.
func (r *Repo) FindMany(ctx context.Context, f versioning.Filter) ([]*domain.Tool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.ApplyVersionFilter(
		postgres.Builder.Select(columns...).From(table), f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "tool", 0)
	}
	defer rows.Close()

	var out []*domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, postgres.MapError(err, "tool", 0)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "tool", 0)
	}
	return out, nil
}

// Create appends one physical row. The "_latest" partial unique indexes make
// this the losing side of a concurrent write race surface as
// domain.ErrAlreadyModified.
func (r *Repo) Create(ctx context.Context, t *domain.Tool) (*domain.Tool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Insert(table).
		Columns(
			"static_id", "branch_id", "branch_type", "is_latest", "is_archived",
			"previous_version_id", "branched_from_id", "created_by_user_id",
			"suggested_by_user_id", "metadata", "major_change_description",
			"collection_id", "name", "description", "icon", "component",
			"inputs", "configuration", "keywords",
		).
		Values(
			t.StaticID, t.BranchID, string(t.BranchType), t.IsLatest, t.IsArchived,
			t.PreviousVersionID, t.BranchedFromID, t.CreatedByUserID,
			t.SuggestedByUserID, t.Metadata, t.MajorChangeDescription,
			t.CollectionID, t.Name, t.Description, t.Icon, t.Component,
			t.Inputs, t.Configuration, t.Keywords,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	saved, err := scanTool(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tool", 0)
	}
	return saved, nil
}

// Retire clears the latest flag of one row. Payload columns are immutable;
// this is the only in-place write.
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
		return postgres.MapError(err, "tool", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tool %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanTool(row pgx.Row) (*domain.Tool, error) {
	var t domain.Tool
	err := row.Scan(
		&t.ID, &t.StaticID, &t.BranchID, &t.BranchType, &t.IsLatest, &t.IsArchived,
		&t.PreviousVersionID, &t.BranchedFromID, &t.CreatedByUserID,
		&t.SuggestedByUserID, &t.Metadata, &t.MajorChangeDescription, &t.CreatedAt,
		&t.CollectionID, &t.Name, &t.Description, &t.Icon, &t.Component,
		&t.Inputs, &t.Configuration, &t.Keywords,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func columnList() string {
	return strings.Join(columns, ", ")
}
