// Package duplicate finds alumni records that describe the same person,
// records staff decisions that a pair is not a duplicate, and merges
// confirmed duplicates into a single record.
package duplicate

import (
	"context"
	"log/slog"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

type alumnusRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Alumnus, error)
	GetForUpdate(ctx context.Context, ids ...int64) (map[int64]*domain.Alumnus, error)
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
	ListWithSharedEmail(ctx context.Context) ([]domain.Alumnus, error)
	ListActiveByName(ctx context.Context, limit int) ([]domain.Alumnus, error)
	UpdatePhones(ctx context.Context, id int64, phones []string) error
	MarkMerged(ctx context.Context, id, primaryID int64) error
}

type dismissalRepo interface {
	Dismiss(ctx context.Context, key domain.PairKey, by *int64) (domain.DismissedPair, error)
	IsDismissed(ctx context.Context, key domain.PairKey) (bool, error)
	ListAmong(ctx context.Context, ids []int64) (map[domain.PairKey]struct{}, error)
}

type communicationRepo interface {
	ReassignAlumnus(ctx context.Context, from, to int64) (int, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs duplicate scans, dismissals and merges.
type Service struct {
	finder     *Finder
	fuzzyLimit int
	alumni     alumnusRepo
	dismissals dismissalRepo
	comms      communicationRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new duplicate Service.
func NewService(
	log *slog.Logger,
	cfg Config,
	alumni alumnusRepo,
	dismissals dismissalRepo,
	comms communicationRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	finder := NewFinder(cfg)
	return &Service{
		finder:     finder,
		fuzzyLimit: finder.cfg.FuzzyScanLimit,
		alumni:     alumni,
		dismissals: dismissals,
		comms:      comms,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "duplicate"),
	}
}
