package domain

import "time"

// Metadata is free-form bookkeeping carried by a physical row. It is never
// copied forward across versions.
type Metadata map[string]any

// Metadata keys written by the versioning engine.
const (
	MetadataArchiveReason = "archiveReason"
	MetadataMergedToID    = "mergedToId"
	MetadataMergedFromID  = "mergedFromId"
)

// Archive reasons recorded in metadata.
const (
	ArchiveReasonApproved = "approved"
	ArchiveReasonRejected = "rejected"
)

// VersionMeta is the system-managed state shared by every versioned entity
// kind. Payload mutation never touches a persisted row: each change appends
// a new physical row and retires the old one.
type VersionMeta struct {
	// ID is the physical row identifier: auto-assigned, immutable, never reused.
	ID int64
	// StaticID is the logical-entity identifier, stable across all versions.
	StaticID string
	// BranchID groups all physical rows of one non-published lineage.
	// nil for published rows.
	BranchID   *string
	BranchType BranchType
	// IsLatest marks the active row of a lineage. At most one per
	// (StaticID, published) and per BranchID, enforced by partial unique
	// indexes in the database.
	IsLatest   bool
	IsArchived bool

	PreviousVersionID *int64
	BranchedFromID    *int64

	CreatedByUserID   int64
	SuggestedByUserID *int64

	Metadata               Metadata
	MajorChangeDescription map[string]any

	CreatedAt time.Time
}

// Meta returns the shared versioning state. Embedding kinds satisfy the
// versioning engine's Row constraint through this method.
func (m *VersionMeta) Meta() *VersionMeta { return m }

// OnBranch reports whether the row belongs to a non-published lineage.
func (m *VersionMeta) OnBranch() bool { return m.BranchID != nil }

// Scope locates the permission boundary of a versioned row: tools and
// workflows hang off a collection, spaces and widgets off an organization.
type Scope struct {
	CollectionID   *int64
	OrganizationID *int64
}
