package permission

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/observe"
	"github.com/michaelschade/kenchi-sub000/internal/viewer"
)

type collectionRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.Collection, error)
	ACLForViewerFunc func(ctx context.Context, collectionID, userID int64, groupIDs []int64) ([]domain.CollectionACLEntry, error)

	getByIDCalls int
}

func (m *collectionRepoMock) GetByID(ctx context.Context, id int64) (*domain.Collection, error) {
	m.getByIDCalls++
	return m.GetByIDFunc(ctx, id)
}

func (m *collectionRepoMock) ACLForViewer(ctx context.Context, collectionID, userID int64, groupIDs []int64) ([]domain.CollectionACLEntry, error) {
	return m.ACLForViewerFunc(ctx, collectionID, userID, groupIDs)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func memberViewer(orgID int64) *viewer.Viewer {
	return viewer.New(&domain.User{ID: 7, OrganizationID: orgID}, []int64{3})
}

func adminViewer(orgID int64) *viewer.Viewer {
	return viewer.New(&domain.User{ID: 8, OrganizationID: orgID, IsOrganizationAdmin: true}, nil)
}

func TestHasOrgPermission(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &collectionRepoMock{}, observe.Nop{})
	ctx := context.Background()

	assert.False(t, svc.HasOrgPermission(ctx, viewer.New(nil, nil), domain.OrgPermissionManageUsers, 1))
	assert.False(t, svc.HasOrgPermission(ctx, memberViewer(1), domain.OrgPermissionManageUsers, 1))
	assert.True(t, svc.HasOrgPermission(ctx, adminViewer(1), domain.OrgPermissionManageUsers, 1))
}

// TestHasOrgPermission_CrossOrg tests that an admin of one organization holds
// nothing in another, and that the probe is captured.
func TestHasOrgPermission_CrossOrg(t *testing.T) {
	t.Parallel()

	sink := &captureSink{}
	svc := NewService(testLogger(), &collectionRepoMock{}, sink)

	assert.False(t, svc.HasOrgPermission(context.Background(), adminViewer(1), domain.OrgPermissionManageUsers, 2))
	assert.Equal(t, 1, sink.messages)
}

type captureSink struct {
	messages int
}

func (s *captureSink) CaptureMessage(context.Context, string, ...slog.Attr) { s.messages++ }

func TestCollectionPermissions_ACLAndDefaults(t *testing.T) {
	t.Parallel()

	repo := &collectionRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Collection, error) {
			return &domain.Collection{
				ID:                 id,
				OrganizationID:     1,
				DefaultPermissions: []domain.PermissionGroup{domain.PermissionGroupViewer},
			}, nil
		},
		ACLForViewerFunc: func(ctx context.Context, collectionID, userID int64, groupIDs []int64) ([]domain.CollectionACLEntry, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, []int64{3}, groupIDs)
			return []domain.CollectionACLEntry{
				{ID: 1, PermissionGroup: domain.PermissionGroupPublisher},
			}, nil
		},
	}
	svc := NewService(testLogger(), repo, observe.Nop{})

	grant, err := svc.CollectionPermissions(context.Background(), memberViewer(1), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), grant.OrganizationID)
	assert.True(t, grant.Permissions.Has(domain.PermissionPublishTool))
	assert.True(t, grant.Permissions.Has(domain.PermissionSeeCollection))
	assert.False(t, grant.Permissions.Has(domain.PermissionManageCollectionPerms))
}

// TestCollectionPermissions_CrossOrgDefaults tests that default permissions
// do not leak to viewers from other organizations.
func TestCollectionPermissions_CrossOrgDefaults(t *testing.T) {
	t.Parallel()

	repo := &collectionRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Collection, error) {
			return &domain.Collection{
				ID:                 id,
				OrganizationID:     2,
				DefaultPermissions: []domain.PermissionGroup{domain.PermissionGroupAdmin},
			}, nil
		},
		ACLForViewerFunc: func(ctx context.Context, collectionID, userID int64, groupIDs []int64) ([]domain.CollectionACLEntry, error) {
			return nil, nil
		},
	}
	svc := NewService(testLogger(), repo, observe.Nop{})

	grant, err := svc.CollectionPermissions(context.Background(), memberViewer(1), 42)
	require.NoError(t, err)
	assert.Empty(t, grant.Permissions)
}

// TestCollectionPermissions_Memoized tests the per-request grant cache.
func TestCollectionPermissions_Memoized(t *testing.T) {
	t.Parallel()

	repo := &collectionRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Collection, error) {
			return &domain.Collection{ID: id, OrganizationID: 1}, nil
		},
		ACLForViewerFunc: func(ctx context.Context, collectionID, userID int64, groupIDs []int64) ([]domain.CollectionACLEntry, error) {
			return nil, nil
		},
	}
	svc := NewService(testLogger(), repo, observe.Nop{})
	v := memberViewer(1)

	_, err := svc.CollectionPermissions(context.Background(), v, 42)
	require.NoError(t, err)
	_, err = svc.CollectionPermissions(context.Background(), v, 42)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.getByIDCalls)
}

// TestCollectionPermissions_SkipsUnknownGroups tests that an unrecognized
// group on an ACL row is dropped and reported rather than failing the check.
func TestCollectionPermissions_SkipsUnknownGroups(t *testing.T) {
	t.Parallel()

	sink := &captureSink{}
	repo := &collectionRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Collection, error) {
			return &domain.Collection{ID: id, OrganizationID: 1}, nil
		},
		ACLForViewerFunc: func(ctx context.Context, collectionID, userID int64, groupIDs []int64) ([]domain.CollectionACLEntry, error) {
			return []domain.CollectionACLEntry{
				{ID: 1, PermissionGroup: domain.PermissionGroup("owner")},
				{ID: 2, PermissionGroup: domain.PermissionGroupViewer},
			}, nil
		},
	}
	svc := NewService(testLogger(), repo, sink)

	grant, err := svc.CollectionPermissions(context.Background(), memberViewer(1), 42)
	require.NoError(t, err)
	assert.True(t, grant.Permissions.Has(domain.PermissionSeeCollection))
	assert.Equal(t, 1, sink.messages)
}

func TestHasCollectionPermission_Anonymous(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &collectionRepoMock{}, observe.Nop{})

	ok, err := svc.HasCollectionPermission(context.Background(), viewer.New(nil, nil), 42, domain.PermissionSeeCollection)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestHasCollectionPermission_MissingCollection tests that an absent
// collection reads as "no" rather than an error.
func TestHasCollectionPermission_MissingCollection(t *testing.T) {
	t.Parallel()

	repo := &collectionRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Collection, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(testLogger(), repo, observe.Nop{})

	ok, err := svc.HasCollectionPermission(context.Background(), memberViewer(1), 42, domain.PermissionSeeCollection)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasCollectionPermission_InfraError(t *testing.T) {
	t.Parallel()

	repo := &collectionRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Collection, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewService(testLogger(), repo, observe.Nop{})

	_, err := svc.HasCollectionPermission(context.Background(), memberViewer(1), 42, domain.PermissionSeeCollection)
	require.Error(t, err)
}

// TestHasCollectionPermission_OrgAdminOverride tests that an organization
// admin passes the check without any ACL grant.
func TestHasCollectionPermission_OrgAdminOverride(t *testing.T) {
	t.Parallel()

	repo := &collectionRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Collection, error) {
			return &domain.Collection{ID: id, OrganizationID: 1}, nil
		},
		ACLForViewerFunc: func(ctx context.Context, collectionID, userID int64, groupIDs []int64) ([]domain.CollectionACLEntry, error) {
			return nil, nil
		},
	}
	svc := NewService(testLogger(), repo, observe.Nop{})

	ok, err := svc.HasCollectionPermission(context.Background(), adminViewer(1), 42, domain.PermissionManageCollectionPerms)
	require.NoError(t, err)
	assert.True(t, ok)
}
