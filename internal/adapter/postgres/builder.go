package postgres

import (
	"github.com/Masterminds/squirrel"

	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
)

// Builder is the squirrel statement builder configured for PostgreSQL
// placeholders. All repositories build their SQL through it.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ApplyVersionFilter translates a versioning filter into WHERE/ORDER/LIMIT
// clauses. The version columns are named identically across all versioned
// tables; scope columns (collection_id, organization_id) exist only on the
// tables they apply to, and a filter on a column the table lacks is a
// programming error surfacing as a SQL error.
func ApplyVersionFilter(sb squirrel.SelectBuilder, f versioning.Filter) squirrel.SelectBuilder {
	if f.StaticID != nil {
		sb = sb.Where(squirrel.Eq{"static_id": *f.StaticID})
	}
	if f.BranchID != nil {
		sb = sb.Where(squirrel.Eq{"branch_id": *f.BranchID})
	}
	if f.BranchIDIsNull {
		sb = sb.Where("branch_id IS NULL")
	}
	if f.BranchType != nil {
		sb = sb.Where(squirrel.Eq{"branch_type": string(*f.BranchType)})
	}
	if f.IsLatest != nil {
		sb = sb.Where(squirrel.Eq{"is_latest": *f.IsLatest})
	}
	if f.IsArchived != nil {
		sb = sb.Where(squirrel.Eq{"is_archived": *f.IsArchived})
	}
	if f.CreatedByUserID != nil {
		sb = sb.Where(squirrel.Eq{"created_by_user_id": *f.CreatedByUserID})
	}
	if f.SuggestedByUserID != nil {
		sb = sb.Where(squirrel.Eq{"suggested_by_user_id": *f.SuggestedByUserID})
	}
	if f.CollectionID != nil {
		sb = sb.Where(squirrel.Eq{"collection_id": *f.CollectionID})
	}
	if f.OrganizationID != nil {
		sb = sb.Where(squirrel.Eq{"organization_id": *f.OrganizationID})
	}

	if f.OrderByIDDesc {
		sb = sb.OrderBy("id DESC")
	} else {
		sb = sb.OrderBy("id ASC")
	}
	if f.Limit > 0 {
		sb = sb.Limit(uint64(f.Limit))
	}
	return sb
}
