package rest

import (
	"context"
	"sync"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/internal/service/alumnus"
)

var _ alumnusService = &alumnusServiceMock{}

type alumnusServiceMock struct {
	CreateFunc  func(ctx context.Context, input alumnus.CreateInput) (*domain.Alumnus, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	GetFunc     func(ctx context.Context, id int64) (*domain.Alumnus, error)
	HistoryFunc func(ctx context.Context, id int64, limit int) ([]domain.AuditRecord, error)
	ListFunc    func(ctx context.Context, input alumnus.ListInput) ([]domain.Alumnus, int, error)
	UpdateFunc  func(ctx context.Context, input alumnus.UpdateInput) (*domain.Alumnus, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input alumnus.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Get []struct {
			Ctx context.Context
			ID  int64
		}
		History []struct {
			Ctx   context.Context
			ID    int64
			Limit int
		}
		List []struct {
			Ctx   context.Context
			Input alumnus.ListInput
		}
		Update []struct {
			Ctx   context.Context
			Input alumnus.UpdateInput
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGet     sync.RWMutex
	lockHistory sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *alumnusServiceMock) Create(ctx context.Context, input alumnus.CreateInput) (*domain.Alumnus, error) {
	if mock.CreateFunc == nil {
		panic("alumnusServiceMock.CreateFunc: method is nil but alumnusService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input alumnus.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *alumnusServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input alumnus.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *alumnusServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("alumnusServiceMock.DeleteFunc: method is nil but alumnusService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *alumnusServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *alumnusServiceMock) Get(ctx context.Context, id int64) (*domain.Alumnus, error) {
	if mock.GetFunc == nil {
		panic("alumnusServiceMock.GetFunc: method is nil but alumnusService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *alumnusServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *alumnusServiceMock) History(ctx context.Context, id int64, limit int) ([]domain.AuditRecord, error) {
	if mock.HistoryFunc == nil {
		panic("alumnusServiceMock.HistoryFunc: method is nil but alumnusService.History was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Limit int
	}{
		Ctx:   ctx,
		ID:    id,
		Limit: limit,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, id, limit)
}

func (mock *alumnusServiceMock) HistoryCalls() []struct {
	Ctx   context.Context
	ID    int64
	Limit int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *alumnusServiceMock) List(ctx context.Context, input alumnus.ListInput) ([]domain.Alumnus, int, error) {
	if mock.ListFunc == nil {
		panic("alumnusServiceMock.ListFunc: method is nil but alumnusService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input alumnus.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *alumnusServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input alumnus.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *alumnusServiceMock) Update(ctx context.Context, input alumnus.UpdateInput) (*domain.Alumnus, error) {
	if mock.UpdateFunc == nil {
		panic("alumnusServiceMock.UpdateFunc: method is nil but alumnusService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input alumnus.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *alumnusServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input alumnus.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
