package alumnus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/pkg/ctxutil"
)

// Create adds a record to the directory.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Alumnus, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	record := &domain.Alumnus{
		Name:              strings.TrimSpace(input.Name),
		Email:             trimOrNil(input.Email),
		Phones:            domain.CleanPhones(input.Phones),
		DepartmentID:      input.DepartmentID,
		TenureID:          input.TenureID,
		Gender:            input.Gender,
		BirthDate:         input.BirthDate,
		IsStaff:           input.IsStaff,
		Unit:              trimOrNil(input.Unit),
		State:             trimOrNil(input.State),
		Address:           trimOrNil(input.Address),
		PastExcoOffice:    trimOrNil(input.PastExcoOffice),
		CurrentExcoOffice: trimOrNil(input.CurrentExcoOffice),
	}

	var created *domain.Alumnus
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.alumni.Create(txCtx, record)
		if createErr != nil {
			return fmt.Errorf("create alumnus: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     ctxutil.UserIDPtrFromCtx(txCtx),
			EntityType: domain.EntityTypeAlumnus,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": created.Name},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "alumnus created",
		slog.Int64("alumnus_id", created.ID),
	)

	return created, nil
}
