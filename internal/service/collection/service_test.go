package collection

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/ids"
	"github.com/michaelschade/kenchi-sub000/internal/viewer"
	"github.com/michaelschade/kenchi-sub000/pkg/ctxutil"
)

type collectionRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id int64) (*domain.Collection, error)
	ListByOrganizationFunc func(ctx context.Context, organizationID int64, includeArchived bool) ([]domain.Collection, error)
	CreateFunc             func(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	UpdateFunc             func(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	ACLForCollectionFunc   func(ctx context.Context, collectionID int64) ([]domain.CollectionACLEntry, error)
	ReplaceACLFunc         func(ctx context.Context, collectionID int64, entries []domain.CollectionACLEntry) error
}

func (m *collectionRepoMock) GetByID(ctx context.Context, id int64) (*domain.Collection, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *collectionRepoMock) ListByOrganization(ctx context.Context, organizationID int64, includeArchived bool) ([]domain.Collection, error) {
	return m.ListByOrganizationFunc(ctx, organizationID, includeArchived)
}

func (m *collectionRepoMock) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	return m.CreateFunc(ctx, c)
}

func (m *collectionRepoMock) Update(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	return m.UpdateFunc(ctx, c)
}

func (m *collectionRepoMock) ACLForCollection(ctx context.Context, collectionID int64) ([]domain.CollectionACLEntry, error) {
	return m.ACLForCollectionFunc(ctx, collectionID)
}

func (m *collectionRepoMock) ReplaceACL(ctx context.Context, collectionID int64, entries []domain.CollectionACLEntry) error {
	return m.ReplaceACLFunc(ctx, collectionID, entries)
}

type permsMock struct {
	HasCollectionPermissionFunc func(ctx context.Context, v *viewer.Viewer, collectionID int64, p domain.CollectionPermission) (bool, error)
	HasOrgPermissionFunc        func(ctx context.Context, v *viewer.Viewer, p domain.OrgPermission, orgID int64) bool
}

func (m *permsMock) HasCollectionPermission(ctx context.Context, v *viewer.Viewer, collectionID int64, p domain.CollectionPermission) (bool, error) {
	return m.HasCollectionPermissionFunc(ctx, v, collectionID, p)
}

func (m *permsMock) HasOrgPermission(ctx context.Context, v *viewer.Viewer, p domain.OrgPermission, orgID int64) bool {
	return m.HasOrgPermissionFunc(ctx, v, p, orgID)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func viewerCtx(v *viewer.Viewer) context.Context {
	return ctxutil.WithViewer(context.Background(), v)
}

func member() *viewer.Viewer {
	return viewer.New(&domain.User{ID: 7, OrganizationID: 1}, nil)
}

func allowAll() *permsMock {
	return &permsMock{
		HasCollectionPermissionFunc: func(ctx context.Context, v *viewer.Viewer, collectionID int64, p domain.CollectionPermission) (bool, error) {
			return true, nil
		},
		HasOrgPermissionFunc: func(ctx context.Context, v *viewer.Viewer, p domain.OrgPermission, orgID int64) bool {
			return true
		},
	}
}

func denyAll() *permsMock {
	return &permsMock{
		HasCollectionPermissionFunc: func(ctx context.Context, v *viewer.Viewer, collectionID int64, p domain.CollectionPermission) (bool, error) {
			return false, nil
		},
		HasOrgPermissionFunc: func(ctx context.Context, v *viewer.Viewer, p domain.OrgPermission, orgID int64) bool {
			return false
		},
	}
}

// TestCreate_Success tests creation plus the implicit creator admin grant.
func TestCreate_Success(t *testing.T) {
	t.Parallel()

	var grantedACL []domain.CollectionACLEntry
	repo := &collectionRepoMock{
		CreateFunc: func(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
			assert.Equal(t, int64(1), c.OrganizationID)
			created := *c
			created.ID = 42
			return &created, nil
		},
		ReplaceACLFunc: func(ctx context.Context, collectionID int64, entries []domain.CollectionACLEntry) error {
			assert.Equal(t, int64(42), collectionID)
			grantedACL = entries
			return nil
		},
	}
	svc := NewService(testLogger(), repo, allowAll())

	created, err := svc.Create(viewerCtx(member()), CreateInput{Name: "Support"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)

	require.Len(t, grantedACL, 1)
	require.NotNil(t, grantedACL[0].UserID)
	assert.Equal(t, int64(7), *grantedACL[0].UserID)
	assert.Equal(t, domain.PermissionGroupAdmin, grantedACL[0].PermissionGroup)
}

func TestCreate_Anonymous(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &collectionRepoMock{}, allowAll())

	_, err := svc.Create(context.Background(), CreateInput{Name: "Support"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreate_Forbidden(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &collectionRepoMock{}, denyAll())

	_, err := svc.Create(viewerCtx(member()), CreateInput{Name: "Support"})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &collectionRepoMock{}, allowAll())

	_, err := svc.Create(viewerCtx(member()), CreateInput{Name: ""})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(viewerCtx(member()), CreateInput{
		Name:               "Support",
		DefaultPermissions: []domain.PermissionGroup{domain.PermissionGroup("owner")},
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

// TestGet_HiddenReadsAsAbsent tests that a collection the viewer cannot see
// is indistinguishable from one that does not exist.
func TestGet_HiddenReadsAsAbsent(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &collectionRepoMock{}, denyAll())

	_, err := svc.Get(viewerCtx(member()), ids.EncodeNodeID(ids.TagCollection, 42))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_MalformedNodeID(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &collectionRepoMock{}, allowAll())

	_, err := svc.Get(viewerCtx(member()), "not-a-node-id")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestList_FiltersInvisible tests per-collection visibility filtering.
func TestList_FiltersInvisible(t *testing.T) {
	t.Parallel()

	repo := &collectionRepoMock{
		ListByOrganizationFunc: func(ctx context.Context, organizationID int64, includeArchived bool) ([]domain.Collection, error) {
			assert.Equal(t, int64(1), organizationID)
			assert.False(t, includeArchived)
			return []domain.Collection{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
	}
	perms := &permsMock{
		HasCollectionPermissionFunc: func(ctx context.Context, v *viewer.Viewer, collectionID int64, p domain.CollectionPermission) (bool, error) {
			return collectionID != 2, nil
		},
	}
	svc := NewService(testLogger(), repo, perms)

	out, err := svc.List(viewerCtx(member()), false)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(3), out[1].ID)
}

// TestArchive_Idempotent tests that archiving an archived collection does
// not write.
func TestArchive_Idempotent(t *testing.T) {
	t.Parallel()

	repo := &collectionRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Collection, error) {
			return &domain.Collection{ID: id, OrganizationID: 1, IsArchived: true}, nil
		},
		UpdateFunc: func(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
			t.Fatal("no write expected for an already-archived collection")
			return nil, nil
		},
	}
	svc := NewService(testLogger(), repo, allowAll())

	out, err := svc.Archive(viewerCtx(member()), ids.EncodeNodeID(ids.TagCollection, 42))
	require.NoError(t, err)
	assert.True(t, out.IsArchived)
}

func TestArchive_Success(t *testing.T) {
	t.Parallel()

	repo := &collectionRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Collection, error) {
			return &domain.Collection{ID: id, OrganizationID: 1}, nil
		},
		UpdateFunc: func(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
			assert.True(t, c.IsArchived)
			return c, nil
		},
	}
	svc := NewService(testLogger(), repo, allowAll())

	out, err := svc.Archive(viewerCtx(member()), ids.EncodeNodeID(ids.TagCollection, 42))
	require.NoError(t, err)
	assert.True(t, out.IsArchived)
}

// TestSetACL_LockoutGuard tests that the caller's admin entry is re-added
// when the submitted list would drop it.
func TestSetACL_LockoutGuard(t *testing.T) {
	t.Parallel()

	otherUser := ids.EncodeNodeID(ids.TagUser, 99)
	var written []domain.CollectionACLEntry
	repo := &collectionRepoMock{
		ReplaceACLFunc: func(ctx context.Context, collectionID int64, entries []domain.CollectionACLEntry) error {
			written = entries
			return nil
		},
		ACLForCollectionFunc: func(ctx context.Context, collectionID int64) ([]domain.CollectionACLEntry, error) {
			return written, nil
		},
	}
	perms := &permsMock{
		HasCollectionPermissionFunc: func(ctx context.Context, v *viewer.Viewer, collectionID int64, p domain.CollectionPermission) (bool, error) {
			return true, nil
		},
		HasOrgPermissionFunc: func(ctx context.Context, v *viewer.Viewer, p domain.OrgPermission, orgID int64) bool {
			return false
		},
	}
	svc := NewService(testLogger(), repo, perms)

	out, err := svc.SetACL(viewerCtx(member()), ids.EncodeNodeID(ids.TagCollection, 42), []ACLEntryInput{
		{UserID: &otherUser, PermissionGroup: domain.PermissionGroupViewer},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	var viewerEntry *domain.CollectionACLEntry
	for i := range written {
		if written[i].UserID != nil && *written[i].UserID == 7 {
			viewerEntry = &written[i]
		}
	}
	require.NotNil(t, viewerEntry, "caller's admin entry should be re-added")
	assert.Equal(t, domain.PermissionGroupAdmin, viewerEntry.PermissionGroup)
}

// TestSetACL_OrgAdminMayDropSelf tests that the lockout guard does not apply
// when the caller holds the org-level override.
func TestSetACL_OrgAdminMayDropSelf(t *testing.T) {
	t.Parallel()

	otherUser := ids.EncodeNodeID(ids.TagUser, 99)
	repo := &collectionRepoMock{
		ReplaceACLFunc: func(ctx context.Context, collectionID int64, entries []domain.CollectionACLEntry) error {
			require.Len(t, entries, 1)
			return nil
		},
		ACLForCollectionFunc: func(ctx context.Context, collectionID int64) ([]domain.CollectionACLEntry, error) {
			return nil, nil
		},
	}
	svc := NewService(testLogger(), repo, allowAll())

	_, err := svc.SetACL(viewerCtx(member()), ids.EncodeNodeID(ids.TagCollection, 42), []ACLEntryInput{
		{UserID: &otherUser, PermissionGroup: domain.PermissionGroupViewer},
	})
	require.NoError(t, err)
}

func TestSetACL_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &collectionRepoMock{}, allowAll())
	nodeID := ids.EncodeNodeID(ids.TagCollection, 42)
	userID := ids.EncodeNodeID(ids.TagUser, 7)
	groupID := ids.EncodeNodeID(ids.TagUserGroup, 3)

	// Neither grantee set.
	_, err := svc.SetACL(viewerCtx(member()), nodeID, []ACLEntryInput{
		{PermissionGroup: domain.PermissionGroupViewer},
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	// Both grantees set.
	_, err = svc.SetACL(viewerCtx(member()), nodeID, []ACLEntryInput{
		{UserID: &userID, UserGroupID: &groupID, PermissionGroup: domain.PermissionGroupViewer},
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	// Unknown group.
	_, err = svc.SetACL(viewerCtx(member()), nodeID, []ACLEntryInput{
		{UserID: &userID, PermissionGroup: domain.PermissionGroup("owner")},
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

// TestListACL_RequiresManage tests that non-managers get not-found.
func TestListACL_RequiresManage(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &collectionRepoMock{}, denyAll())

	_, err := svc.ListACL(viewerCtx(member()), ids.EncodeNodeID(ids.TagCollection, 42))
	require.ErrorIs(t, err, domain.ErrNotFound)
}
