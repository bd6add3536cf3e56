package alumnus

import (
	"context"
	"fmt"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

// Get returns a record by id. Merged records are returned too, with
// MergedInto pointing at the surviving record.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Alumnus, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}

	a, err := s.alumni.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get alumnus: %w", err)
	}
	return a, nil
}

// List returns one page of active records plus the total match count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Alumnus, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	list, total, err := s.alumni.List(ctx, domain.AlumnusFilter{
		Search:       trimOrNil(input.Search),
		DepartmentID: input.DepartmentID,
		TenureID:     input.TenureID,
		Unit:         trimOrNil(input.Unit),
		State:        trimOrNil(input.State),
		Gender:       input.Gender,
		Limit:        limit,
		Offset:       input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list alumni: %w", err)
	}
	return list, total, nil
}

// History returns the audit trail of a record, newest first.
func (s *Service) History(ctx context.Context, id int64, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	records, err := s.audit.GetByEntity(ctx, domain.EntityTypeAlumnus, id, limit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return records, nil
}
