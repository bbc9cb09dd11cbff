package resolver

import (
	"context"
	"sync"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
	"github.com/michaelschade/kenchi-sub000/internal/service/versioning"
)

var _ toolService = &toolServiceMock{}

type toolServiceMock struct {
	CreateFunc       func(ctx context.Context, in versioning.CreateInput) (versioning.Result[*domain.Tool], error)
	UpdateFunc       func(ctx context.Context, in versioning.UpdateInput) (versioning.Result[*domain.Tool], error)
	MergeFunc        func(ctx context.Context, in versioning.MergeInput) (versioning.Result[*domain.Tool], error)
	DeleteFunc       func(ctx context.Context, nodeID string) (versioning.Result[*domain.Tool], error)
	RestoreFunc      func(ctx context.Context, nodeID string) (versioning.Result[*domain.Tool], error)
	GetFunc          func(ctx context.Context, nodeID string) (*domain.Tool, error)
	ListLatestFunc   func(ctx context.Context, collectionNodeID string) ([]*domain.Tool, error)
	ListVersionsFunc func(ctx context.Context, staticID string, limit int) ([]*domain.Tool, error)

	calls struct {
		Create []struct {
			In versioning.CreateInput
		}
		Update []struct {
			In versioning.UpdateInput
		}
		Merge []struct {
			In versioning.MergeInput
		}
		Delete []struct {
			NodeID string
		}
		Restore []struct {
			NodeID string
		}
		Get []struct {
			NodeID string
		}
		ListLatest []struct {
			CollectionNodeID string
		}
		ListVersions []struct {
			StaticID string
			Limit    int
		}
	}
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockMerge        sync.RWMutex
	lockDelete       sync.RWMutex
	lockRestore      sync.RWMutex
	lockGet          sync.RWMutex
	lockListLatest   sync.RWMutex
	lockListVersions sync.RWMutex
}

func (mock *toolServiceMock) Create(ctx context.Context, in versioning.CreateInput) (versioning.Result[*domain.Tool], error) {
	if mock.CreateFunc == nil {
		panic("toolServiceMock.CreateFunc: method is nil but toolService.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ In versioning.CreateInput }{In: in})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *toolServiceMock) Update(ctx context.Context, in versioning.UpdateInput) (versioning.Result[*domain.Tool], error) {
	if mock.UpdateFunc == nil {
		panic("toolServiceMock.UpdateFunc: method is nil but toolService.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ In versioning.UpdateInput }{In: in})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, in)
}

func (mock *toolServiceMock) Merge(ctx context.Context, in versioning.MergeInput) (versioning.Result[*domain.Tool], error) {
	if mock.MergeFunc == nil {
		panic("toolServiceMock.MergeFunc: method is nil but toolService.Merge was just called")
	}
	mock.lockMerge.Lock()
	mock.calls.Merge = append(mock.calls.Merge, struct{ In versioning.MergeInput }{In: in})
	mock.lockMerge.Unlock()
	return mock.MergeFunc(ctx, in)
}

func (mock *toolServiceMock) Delete(ctx context.Context, nodeID string) (versioning.Result[*domain.Tool], error) {
	if mock.DeleteFunc == nil {
		panic("toolServiceMock.DeleteFunc: method is nil but toolService.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ NodeID string }{NodeID: nodeID})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, nodeID)
}

func (mock *toolServiceMock) Restore(ctx context.Context, nodeID string) (versioning.Result[*domain.Tool], error) {
	if mock.RestoreFunc == nil {
		panic("toolServiceMock.RestoreFunc: method is nil but toolService.Restore was just called")
	}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, struct{ NodeID string }{NodeID: nodeID})
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, nodeID)
}

func (mock *toolServiceMock) Get(ctx context.Context, nodeID string) (*domain.Tool, error) {
	if mock.GetFunc == nil {
		panic("toolServiceMock.GetFunc: method is nil but toolService.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ NodeID string }{NodeID: nodeID})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, nodeID)
}

func (mock *toolServiceMock) ListLatest(ctx context.Context, collectionNodeID string) ([]*domain.Tool, error) {
	if mock.ListLatestFunc == nil {
		panic("toolServiceMock.ListLatestFunc: method is nil but toolService.ListLatest was just called")
	}
	mock.lockListLatest.Lock()
	mock.calls.ListLatest = append(mock.calls.ListLatest, struct{ CollectionNodeID string }{CollectionNodeID: collectionNodeID})
	mock.lockListLatest.Unlock()
	return mock.ListLatestFunc(ctx, collectionNodeID)
}

func (mock *toolServiceMock) ListVersions(ctx context.Context, staticID string, limit int) ([]*domain.Tool, error) {
	if mock.ListVersionsFunc == nil {
		panic("toolServiceMock.ListVersionsFunc: method is nil but toolService.ListVersions was just called")
	}
	mock.lockListVersions.Lock()
	mock.calls.ListVersions = append(mock.calls.ListVersions, struct {
		StaticID string
		Limit    int
	}{StaticID: staticID, Limit: limit})
	mock.lockListVersions.Unlock()
	return mock.ListVersionsFunc(ctx, staticID, limit)
}
