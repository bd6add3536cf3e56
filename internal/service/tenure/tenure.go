package tenure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/pkg/ctxutil"
)

// List returns every tenure, newest year first.
func (s *Service) List(ctx context.Context) ([]domain.Tenure, error) {
	list, err := s.tenures.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tenures: %w", err)
	}
	return list, nil
}

// Get returns one tenure.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Tenure, error) {
	t, err := s.tenures.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tenure: %w", err)
	}
	return t, nil
}

// Active returns the active tenure, or domain.ErrNotFound when none is.
func (s *Service) Active(ctx context.Context) (*domain.Tenure, error) {
	t, err := s.tenures.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active tenure: %w", err)
	}
	return t, nil
}

// Create adds a tenure. Creating an active tenure deactivates the others.
func (s *Service) Create(ctx context.Context, input Input) (*domain.Tenure, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Tenure
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.IsActive {
			if err := s.tenures.DeactivateAllExcept(txCtx, 0); err != nil {
				return err
			}
		}

		var err error
		created, err = s.tenures.Create(txCtx, input.tenure(0))
		if err != nil {
			return fmt.Errorf("create tenure: %w", err)
		}
		return s.logAudit(txCtx, created.ID, domain.AuditActionCreate, map[string]any{
			"name":     map[string]any{"new": created.Name},
			"isActive": map[string]any{"new": created.IsActive},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tenure created",
		slog.Int64("tenure_id", created.ID),
		slog.Bool("active", created.IsActive),
	)
	return created, nil
}

// Update replaces a tenure's fields. Activating it deactivates the others.
func (s *Service) Update(ctx context.Context, id int64, input Input) (*domain.Tenure, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Tenure
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.tenures.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get tenure: %w", err)
		}

		if input.IsActive && !old.IsActive {
			if err := s.tenures.DeactivateAllExcept(txCtx, id); err != nil {
				return err
			}
		}

		updated, err = s.tenures.Update(txCtx, input.tenure(id))
		if err != nil {
			return fmt.Errorf("update tenure: %w", err)
		}
		return s.logAudit(txCtx, id, domain.AuditActionUpdate, map[string]any{
			"name":     map[string]any{"old": old.Name, "new": updated.Name},
			"isActive": map[string]any{"old": old.IsActive, "new": updated.IsActive},
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a tenure. Its alumni keep no tenure.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tenures.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete tenure: %w", err)
		}
		return s.logAudit(txCtx, id, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tenure deleted", slog.Int64("tenure_id", id))
	return nil
}

func (s *Service) logAudit(ctx context.Context, id int64, action domain.AuditAction, changes map[string]any) error {
	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     ctxutil.UserIDPtrFromCtx(ctx),
		EntityType: domain.EntityTypeTenure,
		EntityID:   id,
		Action:     action,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
