package alumnus

import (
	"context"
	"sync"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	GetByEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error)
	LogFunc         func(ctx context.Context, record domain.AuditRecord) error

	calls struct {
		GetByEntity []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   int64
			Limit      int
		}
		Log []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockGetByEntity sync.RWMutex
	lockLog         sync.RWMutex
}

func (mock *auditRepoMock) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error) {
	if mock.GetByEntityFunc == nil {
		panic("auditRepoMock.GetByEntityFunc: method is nil but auditRepo.GetByEntity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   int64
		Limit      int
	}{
		Ctx:        ctx,
		EntityType: entityType,
		EntityID:   entityID,
		Limit:      limit,
	}
	mock.lockGetByEntity.Lock()
	mock.calls.GetByEntity = append(mock.calls.GetByEntity, callInfo)
	mock.lockGetByEntity.Unlock()
	return mock.GetByEntityFunc(ctx, entityType, entityID, limit)
}

func (mock *auditRepoMock) GetByEntityCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   int64
	Limit      int
} {
	mock.lockGetByEntity.RLock()
	calls := mock.calls.GetByEntity
	mock.lockGetByEntity.RUnlock()
	return calls
}

func (mock *auditRepoMock) Log(ctx context.Context, record domain.AuditRecord) error {
	if mock.LogFunc == nil {
		panic("auditRepoMock.LogFunc: method is nil but auditRepo.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{
		Ctx:    ctx,
		Record: record,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditRepoMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
