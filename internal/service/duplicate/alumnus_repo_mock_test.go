package duplicate

import (
	"context"
	"sync"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

var _ alumnusRepo = &alumnusRepoMock{}

type alumnusRepoMock struct {
	ExistingIDsFunc         func(ctx context.Context, ids []int64) (map[int64]bool, error)
	GetByIDFunc             func(ctx context.Context, id int64) (*domain.Alumnus, error)
	GetForUpdateFunc        func(ctx context.Context, ids ...int64) (map[int64]*domain.Alumnus, error)
	ListActiveByNameFunc    func(ctx context.Context, limit int) ([]domain.Alumnus, error)
	ListWithSharedEmailFunc func(ctx context.Context) ([]domain.Alumnus, error)
	MarkMergedFunc          func(ctx context.Context, id int64, primaryID int64) error
	UpdatePhonesFunc        func(ctx context.Context, id int64, phones []string) error

	calls struct {
		ExistingIDs []struct {
			Ctx context.Context
			Ids []int64
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetForUpdate []struct {
			Ctx context.Context
			Ids []int64
		}
		ListActiveByName []struct {
			Ctx   context.Context
			Limit int
		}
		ListWithSharedEmail []struct {
			Ctx context.Context
		}
		MarkMerged []struct {
			Ctx       context.Context
			ID        int64
			PrimaryID int64
		}
		UpdatePhones []struct {
			Ctx    context.Context
			ID     int64
			Phones []string
		}
	}
	lockExistingIDs         sync.RWMutex
	lockGetByID             sync.RWMutex
	lockGetForUpdate        sync.RWMutex
	lockListActiveByName    sync.RWMutex
	lockListWithSharedEmail sync.RWMutex
	lockMarkMerged          sync.RWMutex
	lockUpdatePhones        sync.RWMutex
}

func (mock *alumnusRepoMock) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	if mock.ExistingIDsFunc == nil {
		panic("alumnusRepoMock.ExistingIDsFunc: method is nil but alumnusRepo.ExistingIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []int64
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockExistingIDs.Lock()
	mock.calls.ExistingIDs = append(mock.calls.ExistingIDs, callInfo)
	mock.lockExistingIDs.Unlock()
	return mock.ExistingIDsFunc(ctx, ids)
}

func (mock *alumnusRepoMock) ExistingIDsCalls() []struct {
	Ctx context.Context
	Ids []int64
} {
	mock.lockExistingIDs.RLock()
	calls := mock.calls.ExistingIDs
	mock.lockExistingIDs.RUnlock()
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

func (mock *alumnusRepoMock) GetForUpdate(ctx context.Context, ids ...int64) (map[int64]*domain.Alumnus, error) {
	if mock.GetForUpdateFunc == nil {
		panic("alumnusRepoMock.GetForUpdateFunc: method is nil but alumnusRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []int64
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, ids...)
}

func (mock *alumnusRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Ids []int64
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *alumnusRepoMock) ListActiveByName(ctx context.Context, limit int) ([]domain.Alumnus, error) {
	if mock.ListActiveByNameFunc == nil {
		panic("alumnusRepoMock.ListActiveByNameFunc: method is nil but alumnusRepo.ListActiveByName was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockListActiveByName.Lock()
	mock.calls.ListActiveByName = append(mock.calls.ListActiveByName, callInfo)
	mock.lockListActiveByName.Unlock()
	return mock.ListActiveByNameFunc(ctx, limit)
}

func (mock *alumnusRepoMock) ListActiveByNameCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListActiveByName.RLock()
	calls := mock.calls.ListActiveByName
	mock.lockListActiveByName.RUnlock()
	return calls
}

func (mock *alumnusRepoMock) ListWithSharedEmail(ctx context.Context) ([]domain.Alumnus, error) {
	if mock.ListWithSharedEmailFunc == nil {
		panic("alumnusRepoMock.ListWithSharedEmailFunc: method is nil but alumnusRepo.ListWithSharedEmail was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListWithSharedEmail.Lock()
	mock.calls.ListWithSharedEmail = append(mock.calls.ListWithSharedEmail, callInfo)
	mock.lockListWithSharedEmail.Unlock()
	return mock.ListWithSharedEmailFunc(ctx)
}

func (mock *alumnusRepoMock) ListWithSharedEmailCalls() []struct {
	Ctx context.Context
} {
	mock.lockListWithSharedEmail.RLock()
	calls := mock.calls.ListWithSharedEmail
	mock.lockListWithSharedEmail.RUnlock()
	return calls
}

func (mock *alumnusRepoMock) MarkMerged(ctx context.Context, id int64, primaryID int64) error {
	if mock.MarkMergedFunc == nil {
		panic("alumnusRepoMock.MarkMergedFunc: method is nil but alumnusRepo.MarkMerged was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        int64
		PrimaryID int64
	}{
		Ctx:       ctx,
		ID:        id,
		PrimaryID: primaryID,
	}
	mock.lockMarkMerged.Lock()
	mock.calls.MarkMerged = append(mock.calls.MarkMerged, callInfo)
	mock.lockMarkMerged.Unlock()
	return mock.MarkMergedFunc(ctx, id, primaryID)
}

func (mock *alumnusRepoMock) MarkMergedCalls() []struct {
	Ctx       context.Context
	ID        int64
	PrimaryID int64
} {
	mock.lockMarkMerged.RLock()
	calls := mock.calls.MarkMerged
	mock.lockMarkMerged.RUnlock()
	return calls
}

func (mock *alumnusRepoMock) UpdatePhones(ctx context.Context, id int64, phones []string) error {
	if mock.UpdatePhonesFunc == nil {
		panic("alumnusRepoMock.UpdatePhonesFunc: method is nil but alumnusRepo.UpdatePhones was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Phones []string
	}{
		Ctx:    ctx,
		ID:     id,
		Phones: phones,
	}
	mock.lockUpdatePhones.Lock()
	mock.calls.UpdatePhones = append(mock.calls.UpdatePhones, callInfo)
	mock.lockUpdatePhones.Unlock()
	return mock.UpdatePhonesFunc(ctx, id, phones)
}

func (mock *alumnusRepoMock) UpdatePhonesCalls() []struct {
	Ctx    context.Context
	ID     int64
	Phones []string
} {
	mock.lockUpdatePhones.RLock()
	calls := mock.calls.UpdatePhones
	mock.lockUpdatePhones.RUnlock()
	return calls
}
