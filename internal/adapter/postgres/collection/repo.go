// Package collection implements the collection and ACL repository using
// PostgreSQL.
package collection

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/michaelschade/kenchi-sub000/internal/adapter/postgres"
	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

const (
	table    = "collections"
	aclTable = "collection_acl"
)

var columns = []string{
	"id", "organization_id", "name", "description", "icon",
	"default_permissions", "is_archived", "created_at", "updated_at",
}

var aclColumns = []string{
	"id", "collection_id", "user_id", "user_group_id", "permission_group", "created_at",
}

// Repo provides collection persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new collection repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a collection by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	c, err := scanCollection(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "collection", id)
	}
	return c, nil
}

// ListByOrganization returns the collections of one organization, name order.
func (r *Repo) ListByOrganization(ctx context.Context, organizationID int64, includeArchived bool) ([]domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sb := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"organization_id": organizationID}).
		OrderBy("name ASC")
	if !includeArchived {
		sb = sb.Where(squirrel.Eq{"is_archived": false})
	}
	sql, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "collection", 0)
	}
	defer rows.Close()

	var out []domain.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, postgres.MapError(err, "collection", 0)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "collection", 0)
	}
	return out, nil
}

// ListByIDs returns the collections with the given primary keys, in no
// particular order. Missing ids are simply absent from the result.
func (r *Repo) ListByIDs(ctx context.Context, ids []int64) ([]domain.Collection, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "collection", 0)
	}
	defer rows.Close()

	var out []domain.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, postgres.MapError(err, "collection", 0)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "collection", 0)
	}
	return out, nil
}

// Create inserts a new collection.
func (r *Repo) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Insert(table).
		Columns("organization_id", "name", "description", "icon", "default_permissions").
		Values(c.OrganizationID, c.Name, c.Description, c.Icon, groupsToStrings(c.DefaultPermissions)).
		Suffix("RETURNING " + columnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	saved, err := scanCollection(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "collection", 0)
	}
	return saved, nil
}

// Update rewrites a collection's mutable attributes.
func (r *Repo) Update(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Update(table).
		Set("name", c.Name).
		Set("description", c.Description).
		Set("icon", c.Icon).
		Set("default_permissions", groupsToStrings(c.DefaultPermissions)).
		Set("is_archived", c.IsArchived).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING " + columnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	saved, err := scanCollection(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "collection", c.ID)
	}
	return saved, nil
}

// ACLForViewer returns the ACL entries addressing one user: rows naming the
// user directly plus null-user rows naming any of the user's groups. A row
// naming both a user and a group scopes the grant to that user alone.
func (r *Repo) ACLForViewer(ctx context.Context, collectionID, userID int64, groupIDs []int64) ([]domain.CollectionACLEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Select(aclColumns...).From(aclTable).
		Where(squirrel.Eq{"collection_id": collectionID}).
		Where(squirrel.Or{
			squirrel.Eq{"user_id": userID},
			squirrel.And{
				squirrel.Eq{"user_id": nil},
				squirrel.Eq{"user_group_id": groupIDs},
			},
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return r.queryACL(ctx, q, sql, args)
}

// ACLForCollection returns the full ACL of one collection.
func (r *Repo) ACLForCollection(ctx context.Context, collectionID int64) ([]domain.CollectionACLEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Select(aclColumns...).From(aclTable).
		Where(squirrel.Eq{"collection_id": collectionID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return r.queryACL(ctx, q, sql, args)
}

// ReplaceACL swaps the full ACL of one collection. Callers run it inside a
// transaction together with any related writes.
func (r *Repo) ReplaceACL(ctx context.Context, collectionID int64, entries []domain.CollectionACLEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.Delete(aclTable).
		Where(squirrel.Eq{"collection_id": collectionID}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "collection_acl", collectionID)
	}

	if len(entries) == 0 {
		return nil
	}

	insert := postgres.Builder.Insert(aclTable).
		Columns("collection_id", "user_id", "user_group_id", "permission_group")
	for _, e := range entries {
		insert = insert.Values(collectionID, e.UserID, e.UserGroupID, string(e.PermissionGroup))
	}
	sql, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "collection_acl", collectionID)
	}
	return nil
}

func (r *Repo) queryACL(ctx context.Context, q postgres.Querier, sql string, args []any) ([]domain.CollectionACLEntry, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "collection_acl", 0)
	}
	defer rows.Close()

	var out []domain.CollectionACLEntry
	for rows.Next() {
		var e domain.CollectionACLEntry
		if err := rows.Scan(&e.ID, &e.CollectionID, &e.UserID, &e.UserGroupID, &e.PermissionGroup, &e.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "collection_acl", 0)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "collection_acl", 0)
	}
	return out, nil
}

func scanCollection(row pgx.Row) (*domain.Collection, error) {
	var (
		c      domain.Collection
		groups []string
	)
	err := row.Scan(
		&c.ID, &c.OrganizationID, &c.Name, &c.Description, &c.Icon,
		&groups, &c.IsArchived, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.DefaultPermissions = stringsToGroups(groups)
	return &c, nil
}

func groupsToStrings(groups []domain.PermissionGroup) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = string(g)
	}
	return out
}

func stringsToGroups(values []string) []domain.PermissionGroup {
	out := make([]domain.PermissionGroup, len(values))
	for i, v := range values {
		out[i] = domain.PermissionGroup(v)
	}
	return out
}

func columnList(cols []string) string {
	return strings.Join(cols, ", ")
}
