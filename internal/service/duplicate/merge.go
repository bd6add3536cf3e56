package duplicate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/pkg/ctxutil"
)

// MergeRecords folds the record that is not primaryID into primaryID: phones
// are unioned onto the primary, communication logs move to the primary and
// the other record is tombstoned. Returns the updated primary.
//
// Everything happens in one transaction holding row locks on both records,
// so the preconditions are checked against the locked rows.
func (s *Service) MergeRecords(ctx context.Context, idA, idB, primaryID int64) (*domain.Alumnus, error) {
	input := MergeInput{IDA: idA, IDB: idB, PrimaryID: primaryID}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if primaryID != idA && primaryID != idB {
		return nil, domain.ErrInvalidPrimary
	}

	var (
		merged *domain.Alumnus
		plan   domain.MergePlan
		moved  int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.alumni.GetForUpdate(txCtx, idA, idB)
		if err != nil {
			return fmt.Errorf("lock alumni: %w", err)
		}

		plan, err = domain.PlanMerge(locked[idA], locked[idB], primaryID)
		if err != nil {
			return err
		}
		primary, secondary := plan.Primary, plan.Secondary

		if err := s.alumni.UpdatePhones(txCtx, primary.ID, plan.Phones); err != nil {
			return fmt.Errorf("update phones: %w", err)
		}

		moved, err = s.comms.ReassignAlumnus(txCtx, secondary.ID, primary.ID)
		if err != nil {
			return fmt.Errorf("reassign communication logs: %w", err)
		}

		if err := s.alumni.MarkMerged(txCtx, secondary.ID, primary.ID); err != nil {
			return fmt.Errorf("mark merged: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     ctxutil.UserIDPtrFromCtx(txCtx),
			EntityType: domain.EntityTypeAlumnus,
			EntityID:   primary.ID,
			Action:     domain.AuditActionMerge,
			Changes: map[string]any{
				"secondary_id":       secondary.ID,
				"phones":             map[string]any{"old": primary.Phones, "new": plan.Phones},
				"communication_logs": moved,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		merged, err = s.alumni.GetByID(txCtx, primary.ID)
		if err != nil {
			return fmt.Errorf("reload primary: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "alumni merged",
		slog.Int64("primary_id", plan.Primary.ID),
		slog.Int64("secondary_id", plan.Secondary.ID),
		slog.Int("communication_logs", moved),
	)

	return merged, nil
}
