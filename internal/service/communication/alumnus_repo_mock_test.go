package communication

import (
	"context"
	"sync"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

var _ alumnusRepo = &alumnusRepoMock{}

type alumnusRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Alumnus, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
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
