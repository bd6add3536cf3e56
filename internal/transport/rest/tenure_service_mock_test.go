package rest

import (
	"context"
	"sync"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/internal/service/tenure"
)

var _ tenureService = &tenureServiceMock{}

type tenureServiceMock struct {
	ActiveFunc func(ctx context.Context) (*domain.Tenure, error)
	CreateFunc func(ctx context.Context, input tenure.Input) (*domain.Tenure, error)
	DeleteFunc func(ctx context.Context, id int64) error
	GetFunc    func(ctx context.Context, id int64) (*domain.Tenure, error)
	ListFunc   func(ctx context.Context) ([]domain.Tenure, error)
	UpdateFunc func(ctx context.Context, id int64, input tenure.Input) (*domain.Tenure, error)

	calls struct {
		Active []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx   context.Context
			Input tenure.Input
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Get []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			ID    int64
			Input tenure.Input
		}
	}
	lockActive sync.RWMutex
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *tenureServiceMock) Active(ctx context.Context) (*domain.Tenure, error) {
	if mock.ActiveFunc == nil {
		panic("tenureServiceMock.ActiveFunc: method is nil but tenureService.Active was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockActive.Lock()
	mock.calls.Active = append(mock.calls.Active, callInfo)
	mock.lockActive.Unlock()
	return mock.ActiveFunc(ctx)
}

func (mock *tenureServiceMock) ActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockActive.RLock()
	calls := mock.calls.Active
	mock.lockActive.RUnlock()
	return calls
}

func (mock *tenureServiceMock) Create(ctx context.Context, input tenure.Input) (*domain.Tenure, error) {
	if mock.CreateFunc == nil {
		panic("tenureServiceMock.CreateFunc: method is nil but tenureService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tenure.Input
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *tenureServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input tenure.Input
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tenureServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("tenureServiceMock.DeleteFunc: method is nil but tenureService.Delete was just called")
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

func (mock *tenureServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *tenureServiceMock) Get(ctx context.Context, id int64) (*domain.Tenure, error) {
	if mock.GetFunc == nil {
		panic("tenureServiceMock.GetFunc: method is nil but tenureService.Get was just called")
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

func (mock *tenureServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *tenureServiceMock) List(ctx context.Context) ([]domain.Tenure, error) {
	if mock.ListFunc == nil {
		panic("tenureServiceMock.ListFunc: method is nil but tenureService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *tenureServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *tenureServiceMock) Update(ctx context.Context, id int64, input tenure.Input) (*domain.Tenure, error) {
	if mock.UpdateFunc == nil {
		panic("tenureServiceMock.UpdateFunc: method is nil but tenureService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Input tenure.Input
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *tenureServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    int64
	Input tenure.Input
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
