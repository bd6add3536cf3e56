package alumnus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/pkg/ctxutil"
)

// Delete removes a record. A record that others were merged into cannot be
// deleted (domain.ErrConflict).
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.alumni.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get alumnus: %w", err)
		}

		if err := s.alumni.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete alumnus: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     ctxutil.UserIDPtrFromCtx(txCtx),
			EntityType: domain.EntityTypeAlumnus,
			EntityID:   id,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": map[string]any{"old": old.Name},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "alumnus deleted", slog.Int64("alumnus_id", id))
	return nil
}
