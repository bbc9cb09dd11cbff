// Package space implements the space version store using PostgreSQL.
package space

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

const table = "spaces"

var columns = []string{
	"id", "static_id", "branch_id", "branch_type", "is_latest", "is_archived",
	"previous_version_id", "branched_from_id", "created_by_user_id",
	"suggested_by_user_id", "metadata", "major_change_description", "created_at",
	"organization_id", "name", "icon", "visible_to_groups", "widgets",
}

// Repo provides space row persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new space repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FindByID returns one physical row by primary key.
func (r *Repo) FindByID(ctx context.Context, id int64) (*domain.Space, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	s, err := scanSpace(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "space", id)
	}
	return s, nil
}

// FindFirst returns the first row matching the filter.
func (r *Repo) FindFirst(ctx context.Context, f versioning.Filter) (*domain.Space, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	f.Limit = 1
	sql, args, err := postgres.ApplyVersionFilter(
		postgres.Builder.Select(columns...).From(table), f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	s, err := scanSpace(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "space", 0)
	}
	return s, nil
}

// FindMany returns all rows matching the filter.
func (r *Repo) FindMany(ctx context.Context, f versioning.Filter) ([]*domain.Space, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.ApplyVersionFilter(
		postgres.Builder.Select(columns...).From(table), f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "space", 0)
	}
	defer rows.Close()

	var out []*domain.Space
	for rows.Next() {
		s, err := scanSpace(rows)
		if err != nil {
			return nil, postgres.MapError(err, "space", 0)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "space", 0)
	}
	return out, nil
}

// Create appends one physical row.
func (r *Repo) Create(ctx context.Context, s *domain.Space) (*domain.Space, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Insert(table).
		Columns(
			"static_id", "branch_id", "branch_type", "is_latest", "is_archived",
			"previous_version_id", "branched_from_id", "created_by_user_id",
			"suggested_by_user_id", "metadata", "major_change_description",
			"organization_id", "name", "icon", "visible_to_groups", "widgets",
		).
		Values(
			s.StaticID, s.BranchID, string(s.BranchType), s.IsLatest, s.IsArchived,
			s.PreviousVersionID, s.BranchedFromID, s.CreatedByUserID,
			s.SuggestedByUserID, s.Metadata, s.MajorChangeDescription,
			s.OrganizationID, s.Name, s.Icon, s.VisibleToGroups, s.Widgets,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	saved, err := scanSpace(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "space", 0)
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
		return postgres.MapError(err, "space", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("space %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanSpace(row pgx.Row) (*domain.Space, error) {
	var s domain.Space
	err := row.Scan(
		&s.ID, &s.StaticID, &s.BranchID, &s.BranchType, &s.IsLatest, &s.IsArchived,
		&s.PreviousVersionID, &s.BranchedFromID, &s.CreatedByUserID,
		&s.SuggestedByUserID, &s.Metadata, &s.MajorChangeDescription, &s.CreatedAt,
		&s.OrganizationID, &s.Name, &s.Icon, &s.VisibleToGroups, &s.Widgets,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
