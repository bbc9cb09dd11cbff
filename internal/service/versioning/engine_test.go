package versioning

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/observe"
	"github.com/michaelschade/kenchi-sub000/internal/viewer"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Test kinds: a minimal collection-scoped kind ("note") and a minimal
// org-scoped kind ("banner"). Exercising the engine through throwaway kinds
// keeps these tests independent of the real entity payloads.
// ---------------------------------------------------------------------------

type noteRow struct {
	domain.VersionMeta

	CollectionID int64
	Name         string
	Body         string
}

func (n *noteRow) Scope() domain.Scope { return domain.Scope{CollectionID: &n.CollectionID} }

type noteKind struct{}

func (noteKind) Name() string         { return "note" }
func (noteKind) StaticPrefix() string { return "note" }
func (noteKind) BranchPrefix() string { return "nbrch" }
func (noteKind) NodeTag() string      { return "note" }

func (noteKind) CollectionScoped() bool { return true }
func (noteKind) PublishPermission() domain.CollectionPermission {
	return domain.PermissionPublishTool
}
func (noteKind) OrgManagePermission() domain.OrgPermission {
	return domain.OrgPermissionManageCollections
}

func (noteKind) New() *noteRow { return &noteRow{} }

func (noteKind) Preserved(n *noteRow) map[string]any {
	return map[string]any{
		"collectionId": n.CollectionID,
		"name":         n.Name,
		"body":         n.Body,
	}
}

func (noteKind) Apply(n *noteRow, fields map[string]any) error {
	var err error
	if n.CollectionID, _, err = FieldInt64(fields, "collectionId"); err != nil {
		return err
	}
	if n.Name, _, err = FieldString(fields, "name"); err != nil {
		return err
	}
	if n.Body, _, err = FieldString(fields, "body"); err != nil {
		return err
	}
	if n.Name == "" {
		return fmt.Errorf("field %q: required: %w", "name", domain.ErrValidation)
	}
	return nil
}

type bannerRow struct {
	domain.VersionMeta

	OrganizationID int64
	Title          string
}

func (b *bannerRow) Scope() domain.Scope { return domain.Scope{OrganizationID: &b.OrganizationID} }

type bannerKind struct{}

func (bannerKind) Name() string         { return "banner" }
func (bannerKind) StaticPrefix() string { return "bnnr" }
func (bannerKind) BranchPrefix() string { return "bbrch" }
func (bannerKind) NodeTag() string      { return "bnnr" }

func (bannerKind) CollectionScoped() bool                         { return false }
func (bannerKind) PublishPermission() domain.CollectionPermission { return "" }
func (bannerKind) OrgManagePermission() domain.OrgPermission {
	return domain.OrgPermissionManageSpaces
}

func (bannerKind) New() *bannerRow { return &bannerRow{} }

func (bannerKind) Preserved(b *bannerRow) map[string]any {
	return map[string]any{
		"organizationId": b.OrganizationID,
		"title":          b.Title,
	}
}

func (bannerKind) Apply(b *bannerRow, fields map[string]any) error {
	var err error
	if b.OrganizationID, _, err = FieldInt64(fields, "organizationId"); err != nil {
		return err
	}
	if b.Title, _, err = FieldString(fields, "title"); err != nil {
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// In-memory store. Emulates the database contract the engine relies on,
// including the partial unique indexes over latest rows.
// ---------------------------------------------------------------------------

type memStore[R Row] struct {
	mu     sync.Mutex
	nextID int64
	rows   []R
	clone  func(R) R
}

func newNoteStore() *memStore[*noteRow] {
	return &memStore[*noteRow]{clone: func(n *noteRow) *noteRow {
		c := *n
		return &c
	}}
}

func newBannerStore() *memStore[*bannerRow] {
	return &memStore[*bannerRow]{clone: func(b *bannerRow) *bannerRow {
		c := *b
		return &c
	}}
}

func (s *memStore[R]) FindByID(_ context.Context, id int64) (R, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.Meta().ID == id {
			return s.clone(row), nil
		}
	}
	var zero R
	return zero, fmt.Errorf("row %d: %w", id, domain.ErrNotFound)
}

func (s *memStore[R]) FindFirst(_ context.Context, f Filter) (R, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := s.matching(f)
	if len(matched) == 0 {
		var zero R
		return zero, fmt.Errorf("no row: %w", domain.ErrNotFound)
	}
	return s.clone(matched[0]), nil
}

func (s *memStore[R]) FindMany(_ context.Context, f Filter) ([]R, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := s.matching(f)
	out := make([]R, 0, len(matched))
	for _, row := range matched {
		out = append(out, s.clone(row))
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (s *memStore[R]) Create(_ context.Context, row R) (R, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := row.Meta()
	if m.IsLatest {
		for _, other := range s.rows {
			om := other.Meta()
			if !om.IsLatest {
				continue
			}
			if m.BranchID == nil && om.BranchID == nil && om.StaticID == m.StaticID {
				var zero R
				return zero, fmt.Errorf("duplicate published latest: %w", domain.ErrAlreadyModified)
			}
			if m.BranchID != nil && om.BranchID != nil && *om.BranchID == *m.BranchID {
				var zero R
				return zero, fmt.Errorf("duplicate branch latest: %w", domain.ErrAlreadyModified)
			}
		}
	}

	saved := s.clone(row)
	s.nextID++
	saved.Meta().ID = s.nextID
	saved.Meta().CreatedAt = time.Now()
	s.rows = append(s.rows, saved)
	return s.clone(saved), nil
}

func (s *memStore[R]) Retire(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.Meta().ID == id {
			row.Meta().IsLatest = false
			return nil
		}
	}
	return fmt.Errorf("row %d: %w", id, domain.ErrNotFound)
}

func (s *memStore[R]) matching(f Filter) []R {
	var out []R
	for _, row := range s.rows {
		if s.matches(f, row) {
			out = append(out, row)
		}
	}
	if f.OrderByIDDesc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func (s *memStore[R]) matches(f Filter, row R) bool {
	m := row.Meta()
	scope := row.Scope()
	switch {
	case f.StaticID != nil && m.StaticID != *f.StaticID:
		return false
	case f.BranchID != nil && (m.BranchID == nil || *m.BranchID != *f.BranchID):
		return false
	case f.BranchIDIsNull && m.BranchID != nil:
		return false
	case f.BranchType != nil && m.BranchType != *f.BranchType:
		return false
	case f.IsLatest != nil && m.IsLatest != *f.IsLatest:
		return false
	case f.IsArchived != nil && m.IsArchived != *f.IsArchived:
		return false
	case f.CreatedByUserID != nil && m.CreatedByUserID != *f.CreatedByUserID:
		return false
	case f.SuggestedByUserID != nil && (m.SuggestedByUserID == nil || *m.SuggestedByUserID != *f.SuggestedByUserID):
		return false
	case f.CollectionID != nil && (scope.CollectionID == nil || *scope.CollectionID != *f.CollectionID):
		return false
	case f.OrganizationID != nil && (scope.OrganizationID == nil || *scope.OrganizationID != *f.OrganizationID):
		return false
	}
	return true
}

// ---------------------------------------------------------------------------
// Fake permission oracle and transaction manager
// ---------------------------------------------------------------------------

type fakePerms struct {
	// collection maps collection id to the viewer's flattened permissions.
	collection map[int64]domain.PermissionSet
	// orgAdmin grants every org permission within the viewer's own org.
	orgAdmin bool
}

func (f *fakePerms) HasCollectionPermission(_ context.Context, v *viewer.Viewer, collectionID int64, p domain.CollectionPermission) (bool, error) {
	if !v.Authenticated() {
		return false, nil
	}
	return f.collection[collectionID].Has(p), nil
}

func (f *fakePerms) HasOrgPermission(_ context.Context, v *viewer.Viewer, _ domain.OrgPermission, orgID int64) bool {
	return v.Authenticated() && f.orgAdmin && v.OrganizationID() == orgID
}

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const (
	testOrgID        = int64(1)
	testCollectionID = int64(10)
)

func newNoteEngine(store *memStore[*noteRow], perms *fakePerms) *Engine[*noteRow] {
	return NewEngine[*noteRow](slog.Default(), noteKind{}, store, perms, passthroughTx{}, observe.Nop{})
}

func newBannerEngine(store *memStore[*bannerRow], perms *fakePerms) *Engine[*bannerRow] {
	return NewEngine[*bannerRow](slog.Default(), bannerKind{}, store, perms, passthroughTx{}, observe.Nop{})
}

func testViewer(userID int64) *viewer.Viewer {
	return viewer.New(&domain.User{ID: userID, OrganizationID: testOrgID}, nil)
}

func ctxWith(v *viewer.Viewer) context.Context {
	return ctxutil.WithViewer(context.Background(), v)
}

func grants(perms ...domain.CollectionPermission) map[int64]domain.PermissionSet {
	set := make(domain.PermissionSet, len(perms))
	for _, p := range perms {
		set.Add(p)
	}
	return map[int64]domain.PermissionSet{testCollectionID: set}
}

func collectionNodeID(id int64) string { return ids.EncodeNodeID(ids.TagCollection, id) }
func noteNodeID(id int64) string       { return ids.EncodeNodeID("note", id) }

// seedPublished inserts a published latest row directly, bypassing the
// engine, owned by the given user.
func seedPublished(store *memStore[*noteRow], userID int64) *noteRow {
	saved, err := store.Create(context.Background(), &noteRow{
		VersionMeta: domain.VersionMeta{
			StaticID:        ids.NewStaticID("note"),
			BranchType:      domain.BranchTypePublished,
			IsLatest:        true,
			CreatedByUserID: userID,
		},
		CollectionID: testCollectionID,
		Name:         "Greeting",
		Body:         "hello",
	})
	if err != nil {
		panic(err)
	}
	return saved
}

// seedBranch inserts a draft or suggestion head branched from base.
func seedBranch(store *memStore[*noteRow], base *noteRow, branchType domain.BranchType, userID int64) *noteRow {
	branchID := ids.NewStaticID("nbrch")
	saved, err := store.Create(context.Background(), &noteRow{
		VersionMeta: domain.VersionMeta{
			StaticID:          base.StaticID,
			BranchID:          &branchID,
			BranchType:        branchType,
			IsLatest:          true,
			BranchedFromID:    &base.ID,
			CreatedByUserID:   userID,
			SuggestedByUserID: &userID,
		},
		CollectionID: base.CollectionID,
		Name:         base.Name,
		Body:         "branch edit",
	})
	if err != nil {
		panic(err)
	}
	return saved
}
