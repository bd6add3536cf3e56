// Package tenure manages graduating-class cohorts. At most one tenure is
// active at a time.
package tenure

import (
	"context"
	"log/slog"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

type tenureRepo interface {
	Create(ctx context.Context, t *domain.Tenure) (*domain.Tenure, error)
	Update(ctx context.Context, t *domain.Tenure) (*domain.Tenure, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Tenure, error)
	GetActive(ctx context.Context) (*domain.Tenure, error)
	List(ctx context.Context) ([]domain.Tenure, error)
	DeactivateAllExcept(ctx context.Context, keepID int64) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides tenure operations.
type Service struct {
	tenures tenureRepo
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new tenure Service.
func NewService(log *slog.Logger, tenures tenureRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		tenures: tenures,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "tenure"),
	}
}
