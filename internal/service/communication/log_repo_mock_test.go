package communication

import (
	"context"
	"sync"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc        func(ctx context.Context, l *domain.CommunicationLog) (*domain.CommunicationLog, error)
	DeleteFunc        func(ctx context.Context, id int64) error
	ListByAlumnusFunc func(ctx context.Context, alumnusID int64) ([]domain.CommunicationLog, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.CommunicationLog
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		ListByAlumnus []struct {
			Ctx       context.Context
			AlumnusID int64
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockListByAlumnus sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, l *domain.CommunicationLog) (*domain.CommunicationLog, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.CommunicationLog
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.CommunicationLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *logRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("logRepoMock.DeleteFunc: method is nil but logRepo.Delete was just called")
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

func (mock *logRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *logRepoMock) ListByAlumnus(ctx context.Context, alumnusID int64) ([]domain.CommunicationLog, error) {
	if mock.ListByAlumnusFunc == nil {
		panic("logRepoMock.ListByAlumnusFunc: method is nil but logRepo.ListByAlumnus was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AlumnusID int64
	}{
		Ctx:       ctx,
		AlumnusID: alumnusID,
	}
	mock.lockListByAlumnus.Lock()
	mock.calls.ListByAlumnus = append(mock.calls.ListByAlumnus, callInfo)
	mock.lockListByAlumnus.Unlock()
	return mock.ListByAlumnusFunc(ctx, alumnusID)
}

func (mock *logRepoMock) ListByAlumnusCalls() []struct {
	Ctx       context.Context
	AlumnusID int64
} {
	mock.lockListByAlumnus.RLock()
	calls := mock.calls.ListByAlumnus
	mock.lockListByAlumnus.RUnlock()
	return calls
}
