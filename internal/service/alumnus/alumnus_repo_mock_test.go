package alumnus

import (
	"context"
	"sync"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

var _ alumnusRepo = &alumnusRepoMock{}

type alumnusRepoMock struct {
	CreateFunc  func(ctx context.Context, a *domain.Alumnus) (*domain.Alumnus, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Alumnus, error)
	ListFunc    func(ctx context.Context, filter domain.AlumnusFilter) ([]domain.Alumnus, int, error)
	UpdateFunc  func(ctx context.Context, id int64, params domain.AlumnusUpdateParams) (*domain.Alumnus, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Alumnus
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.AlumnusFilter
		}
		Update []struct {
			Ctx    context.Context
			ID     int64
			Params domain.AlumnusUpdateParams
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *alumnusRepoMock) Create(ctx context.Context, a *domain.Alumnus) (*domain.Alumnus, error) {
	if mock.CreateFunc == nil {
		panic("alumnusRepoMock.CreateFunc: method is nil but alumnusRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Alumnus
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *alumnusRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Alumnus
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *alumnusRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("alumnusRepoMock.DeleteFunc: method is nil but alumnusRepo.Delete was just called")
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

func (mock *alumnusRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *alumnusRepoMock) GetByID(ctx context.Context, id int64) (*domain.Alumnus, error) {
	if mock.GetByIDFunc == nil {
		panic("alumnusRepoMock.GetByIDFunc: method is nil but alumnusRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *alumnusRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *alumnusRepoMock) List(ctx context.Context, filter domain.AlumnusFilter) ([]domain.Alumnus, int, error) {
	if mock.ListFunc == nil {
		panic("alumnusRepoMock.ListFunc: method is nil but alumnusRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.AlumnusFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *alumnusRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.AlumnusFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *alumnusRepoMock) Update(ctx context.Context, id int64, params domain.AlumnusUpdateParams) (*domain.Alumnus, error) {
	if mock.UpdateFunc == nil {
		panic("alumnusRepoMock.UpdateFunc: method is nil but alumnusRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Params domain.AlumnusUpdateParams
	}{
		Ctx:    ctx,
		ID:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *alumnusRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     int64
	Params domain.AlumnusUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
