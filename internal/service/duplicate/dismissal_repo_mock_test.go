package duplicate

import (
	"context"
	"sync"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

var _ dismissalRepo = &dismissalRepoMock{}

type dismissalRepoMock struct {
	DismissFunc     func(ctx context.Context, key domain.PairKey, by *int64) (domain.DismissedPair, error)
	IsDismissedFunc func(ctx context.Context, key domain.PairKey) (bool, error)
	ListAmongFunc   func(ctx context.Context, ids []int64) (map[domain.PairKey]struct{}, error)

	calls struct {
		Dismiss []struct {
			Ctx context.Context
			Key domain.PairKey
			By  *int64
		}
		IsDismissed []struct {
			Ctx context.Context
			Key domain.PairKey
		}
		ListAmong []struct {
			Ctx context.Context
			Ids []int64
		}
	}
	lockDismiss     sync.RWMutex
	lockIsDismissed sync.RWMutex
	lockListAmong   sync.RWMutex
}

func (mock *dismissalRepoMock) Dismiss(ctx context.Context, key domain.PairKey, by *int64) (domain.DismissedPair, error) {
	if mock.DismissFunc == nil {
		panic("dismissalRepoMock.DismissFunc: method is nil but dismissalRepo.Dismiss was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.PairKey
		By  *int64
	}{
		Ctx: ctx,
		Key: key,
		By:  by,
	}
	mock.lockDismiss.Lock()
	mock.calls.Dismiss = append(mock.calls.Dismiss, callInfo)
	mock.lockDismiss.Unlock()
	return mock.DismissFunc(ctx, key, by)
}

func (mock *dismissalRepoMock) DismissCalls() []struct {
	Ctx context.Context
	Key domain.PairKey
	By  *int64
} {
	mock.lockDismiss.RLock()
	calls := mock.calls.Dismiss
	mock.lockDismiss.RUnlock()
	return calls
}

func (mock *dismissalRepoMock) IsDismissed(ctx context.Context, key domain.PairKey) (bool, error) {
	if mock.IsDismissedFunc == nil {
		panic("dismissalRepoMock.IsDismissedFunc: method is nil but dismissalRepo.IsDismissed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.PairKey
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockIsDismissed.Lock()
	mock.calls.IsDismissed = append(mock.calls.IsDismissed, callInfo)
	mock.lockIsDismissed.Unlock()
	return mock.IsDismissedFunc(ctx, key)
}

func (mock *dismissalRepoMock) IsDismissedCalls() []struct {
	Ctx context.Context
	Key domain.PairKey
} {
	mock.lockIsDismissed.RLock()
	calls := mock.calls.IsDismissed
	mock.lockIsDismissed.RUnlock()
	return calls
}

func (mock *dismissalRepoMock) ListAmong(ctx context.Context, ids []int64) (map[domain.PairKey]struct{}, error) {
	if mock.ListAmongFunc == nil {
		panic("dismissalRepoMock.ListAmongFunc: method is nil but dismissalRepo.ListAmong was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []int64
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockListAmong.Lock()
	mock.calls.ListAmong = append(mock.calls.ListAmong, callInfo)
	mock.lockListAmong.Unlock()
	return mock.ListAmongFunc(ctx, ids)
}

func (mock *dismissalRepoMock) ListAmongCalls() []struct {
	Ctx context.Context
	Ids []int64
} {
	mock.lockListAmong.RLock()
	calls := mock.calls.ListAmong
	mock.lockListAmong.RUnlock()
	return calls
}
