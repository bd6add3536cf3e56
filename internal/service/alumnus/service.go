// Package alumnus manages the alumni directory: records, partial updates
// and their change history.
package alumnus

import (
	"context"
	"log/slog"
	"strings"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

type alumnusRepo interface {
	Create(ctx context.Context, a *domain.Alumnus) (*domain.Alumnus, error)
	GetByID(ctx context.Context, id int64) (*domain.Alumnus, error)
	Update(ctx context.Context, id int64, params domain.AlumnusUpdateParams) (*domain.Alumnus, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.AlumnusFilter) ([]domain.Alumnus, int, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultListLimit    = 50
	MaxListLimit        = 200
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// Service provides alumni directory operations.
type Service struct {
	alumni alumnusRepo
	audit  auditRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new alumnus Service.
func NewService(log *slog.Logger, alumni alumnusRepo, audit auditRepo, tx txManager) *Service {
	return &Service{
		alumni: alumni,
		audit:  audit,
		tx:     tx,
		log:    log.With("service", "alumnus"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimKeepEmpty trims whitespace but keeps an explicit empty string, which
// update params read as "clear".
func trimKeepEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
