package tenure

import (
	"context"
	"sync"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

var _ tenureRepo = &tenureRepoMock{}

type tenureRepoMock struct {
	CreateFunc              func(ctx context.Context, t *domain.Tenure) (*domain.Tenure, error)
	DeactivateAllExceptFunc func(ctx context.Context, keepID int64) error
	DeleteFunc              func(ctx context.Context, id int64) error
	GetActiveFunc           func(ctx context.Context) (*domain.Tenure, error)
	GetByIDFunc             func(ctx context.Context, id int64) (*domain.Tenure, error)
	ListFunc                func(ctx context.Context) ([]domain.Tenure, error)
	UpdateFunc              func(ctx context.Context, t *domain.Tenure) (*domain.Tenure, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Tenure
		}
		DeactivateAllExcept []struct {
			Ctx    context.Context
			KeepID int64
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		GetActive []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			T   *domain.Tenure
		}
	}
	lockCreate              sync.RWMutex
	lockDeactivateAllExcept sync.RWMutex
	lockDelete              sync.RWMutex
	lockGetActive           sync.RWMutex
	lockGetByID             sync.RWMutex
	lockList                sync.RWMutex
	lockUpdate              sync.RWMutex
}

func (mock *tenureRepoMock) Create(ctx context.Context, t *domain.Tenure) (*domain.Tenure, error) {
	if mock.CreateFunc == nil {
		panic("tenureRepoMock.CreateFunc: method is nil but tenureRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Tenure
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tenureRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Tenure
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tenureRepoMock) DeactivateAllExcept(ctx context.Context, keepID int64) error {
	if mock.DeactivateAllExceptFunc == nil {
		panic("tenureRepoMock.DeactivateAllExceptFunc: method is nil but tenureRepo.DeactivateAllExcept was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		KeepID int64
	}{
		Ctx:    ctx,
		KeepID: keepID,
	}
	mock.lockDeactivateAllExcept.Lock()
	mock.calls.DeactivateAllExcept = append(mock.calls.DeactivateAllExcept, callInfo)
	mock.lockDeactivateAllExcept.Unlock()
	return mock.DeactivateAllExceptFunc(ctx, keepID)
}

func (mock *tenureRepoMock) DeactivateAllExceptCalls() []struct {
	Ctx    context.Context
	KeepID int64
} {
	mock.lockDeactivateAllExcept.RLock()
	calls := mock.calls.DeactivateAllExcept
	mock.lockDeactivateAllExcept.RUnlock()
	return calls
}

func (mock *tenureRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("tenureRepoMock.DeleteFunc: method is nil but tenureRepo.Delete was just called")
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

func (mock *tenureRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *tenureRepoMock) GetActive(ctx context.Context) (*domain.Tenure, error) {
	if mock.GetActiveFunc == nil {
		panic("tenureRepoMock.GetActiveFunc: method is nil but tenureRepo.GetActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetActive.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, callInfo)
	mock.lockGetActive.Unlock()
	return mock.GetActiveFunc(ctx)
}

func (mock *tenureRepoMock) GetActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetActive.RLock()
	calls := mock.calls.GetActive
	mock.lockGetActive.RUnlock()
	return calls
}

func (mock *tenureRepoMock) GetByID(ctx context.Context, id int64) (*domain.Tenure, error) {
	if mock.GetByIDFunc == nil {
		panic("tenureRepoMock.GetByIDFunc: method is nil but tenureRepo.GetByID was just called")
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

func (mock *tenureRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *tenureRepoMock) List(ctx context.Context) ([]domain.Tenure, error) {
	if mock.ListFunc == nil {
		panic("tenureRepoMock.ListFunc: method is nil but tenureRepo.List was just called")
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

func (mock *tenureRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *tenureRepoMock) Update(ctx context.Context, t *domain.Tenure) (*domain.Tenure, error) {
	if mock.UpdateFunc == nil {
		panic("tenureRepoMock.UpdateFunc: method is nil but tenureRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Tenure
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *tenureRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	T   *domain.Tenure
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
