package resolver

import (
	"context"
	"sync"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/service/collection"
)

var _ collectionService = &collectionServiceMock{}

type collectionServiceMock struct {
	CreateFunc    func(ctx context.Context, in collection.CreateInput) (*domain.Collection, error)
	UpdateFunc    func(ctx context.Context, in collection.UpdateInput) (*domain.Collection, error)
	ArchiveFunc   func(ctx context.Context, nodeID string) (*domain.Collection, error)
	UnarchiveFunc func(ctx context.Context, nodeID string) (*domain.Collection, error)
	GetFunc       func(ctx context.Context, nodeID string) (*domain.Collection, error)
	ListFunc      func(ctx context.Context, includeArchived bool) ([]domain.Collection, error)
	SetACLFunc    func(ctx context.Context, collectionNodeID string, inputs []collection.ACLEntryInput) ([]domain.CollectionACLEntry, error)
	ListACLFunc   func(ctx context.Context, collectionNodeID string) ([]domain.CollectionACLEntry, error)

	calls struct {
		Create []struct {
			In collection.CreateInput
		}
		Update []struct {
			In collection.UpdateInput
		}
		Archive []struct {
			NodeID string
		}
		Unarchive []struct {
			NodeID string
		}
		Get []struct {
			NodeID string
		}
		List []struct {
			IncludeArchived bool
		}
		SetACL []struct {
			CollectionNodeID string
			Inputs           []collection.ACLEntryInput
		}
		ListACL []struct {
			CollectionNodeID string
		}
	}
	lockCreate    sync.RWMutex
	lockUpdate    sync.RWMutex
	lockArchive   sync.RWMutex
	lockUnarchive sync.RWMutex
	lockGet       sync.RWMutex
	lockList      sync.RWMutex
	lockSetACL    sync.RWMutex
	lockListACL   sync.RWMutex
}

func (mock *collectionServiceMock) Create(ctx context.Context, in collection.CreateInput) (*domain.Collection, error) {
	if mock.CreateFunc == nil {
		panic("collectionServiceMock.CreateFunc: method is nil but collectionService.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ In collection.CreateInput }{In: in})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *collectionServiceMock) Update(ctx context.Context, in collection.UpdateInput) (*domain.Collection, error) {
	if mock.UpdateFunc == nil {
		panic("collectionServiceMock.UpdateFunc: method is nil but collectionService.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ In collection.UpdateInput }{In: in})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, in)
}

func (mock *collectionServiceMock) Archive(ctx context.Context, nodeID string) (*domain.Collection, error) {
	if mock.ArchiveFunc == nil {
		panic("collectionServiceMock.ArchiveFunc: method is nil but collectionService.Archive was just called")
	}
	mock.lockArchive.Lock()
	mock.calls.Archive = append(mock.calls.Archive, struct{ NodeID string }{NodeID: nodeID})
	mock.lockArchive.Unlock()
	return mock.ArchiveFunc(ctx, nodeID)
}

func (mock *collectionServiceMock) Unarchive(ctx context.Context, nodeID string) (*domain.Collection, error) {
	if mock.UnarchiveFunc == nil {
		panic("collectionServiceMock.UnarchiveFunc: method is nil but collectionService.Unarchive was just called")
	}
	mock.lockUnarchive.Lock()
	mock.calls.Unarchive = append(mock.calls.Unarchive, struct{ NodeID string }{NodeID: nodeID})
	mock.lockUnarchive.Unlock()
	return mock.UnarchiveFunc(ctx, nodeID)
}

func (mock *collectionServiceMock) Get(ctx context.Context, nodeID string) (*domain.Collection, error) {
	if mock.GetFunc == nil {
		panic("collectionServiceMock.GetFunc: method is nil but collectionService.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ NodeID string }{NodeID: nodeID})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, nodeID)
}

func (mock *collectionServiceMock) List(ctx context.Context, includeArchived bool) ([]domain.Collection, error) {
	if mock.ListFunc == nil {
		panic("collectionServiceMock.ListFunc: method is nil but collectionService.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ IncludeArchived bool }{IncludeArchived: includeArchived})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, includeArchived)
}

func (mock *collectionServiceMock) SetACL(ctx context.Context, collectionNodeID string, inputs []collection.ACLEntryInput) ([]domain.CollectionACLEntry, error) {
	if mock.SetACLFunc == nil {
		panic("collectionServiceMock.SetACLFunc: method is nil but collectionService.SetACL was just called")
	}
	mock.lockSetACL.Lock()
	mock.calls.SetACL = append(mock.calls.SetACL, struct {
		CollectionNodeID string
		Inputs           []collection.ACLEntryInput
	}{CollectionNodeID: collectionNodeID, Inputs: inputs})
	mock.lockSetACL.Unlock()
	return mock.SetACLFunc(ctx, collectionNodeID, inputs)
}

func (mock *collectionServiceMock) ListACL(ctx context.Context, collectionNodeID string) ([]domain.CollectionACLEntry, error) {
	if mock.ListACLFunc == nil {
		panic("collectionServiceMock.ListACLFunc: method is nil but collectionService.ListACL was just called")
	}
	mock.lockListACL.Lock()
	mock.calls.ListACL = append(mock.calls.ListACL, struct{ CollectionNodeID string }{CollectionNodeID: collectionNodeID})
	mock.lockListACL.Unlock()
	return mock.ListACLFunc(ctx, collectionNodeID)
}
