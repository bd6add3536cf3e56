package duplicate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/pkg/ctxutil"
)

// IsPairDismissed reports whether a and b were marked as not duplicates, in
// either order.
func (s *Service) IsPairDismissed(ctx context.Context, a, b int64) (bool, error) {
	ok, err := s.dismissals.IsDismissed(ctx, domain.NewPairKey(a, b))
	if err != nil {
		return false, fmt.Errorf("check dismissal: %w", err)
	}
	return ok, nil
}

// DismissPair marks a and b as not duplicates. Repeating the call, in either
// order, keeps the single original record.
func (s *Service) DismissPair(ctx context.Context, a, b int64) (domain.DismissedPair, error) {
	if a <= 0 || b <= 0 || a == b {
		return domain.DismissedPair{}, domain.NewValidationError("ids", "two distinct ids required")
	}

	pair, err := s.dismissals.Dismiss(ctx, domain.NewPairKey(a, b), ctxutil.UserIDPtrFromCtx(ctx))
	if err != nil {
		return domain.DismissedPair{}, fmt.Errorf("dismiss pair: %w", err)
	}
	return pair, nil
}

// DismissGroup marks every pair among ids as not duplicates, atomically, and
// returns how many pairs it covered. All ids must exist.
func (s *Service) DismissGroup(ctx context.Context, ids []int64) (int, error) {
	input := DismissGroupInput{IDs: ids}
	if err := input.Validate(); err != nil {
		return 0, err
	}

	pairs := domain.GroupPairs(ids)
	by := ctxutil.UserIDPtrFromCtx(ctx)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.alumni.ExistingIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("check alumni: %w", err)
		}
		for _, id := range ids {
			if !existing[id] {
				return fmt.Errorf("alumnus %d: %w", id, domain.ErrNotFound)
			}
		}

		for _, key := range pairs {
			if _, err := s.dismissals.Dismiss(txCtx, key, by); err != nil {
				return fmt.Errorf("dismiss pair %d-%d: %w", key.Low, key.High, err)
			}
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     by,
			EntityType: domain.EntityTypeAlumnus,
			EntityID:   pairs[0].Low,
			Action:     domain.AuditActionDismiss,
			Changes: map[string]any{
				"ids":   ids,
				"pairs": len(pairs),
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "duplicate group dismissed",
		slog.Any("ids", ids),
		slog.Int("pairs", len(pairs)),
	)

	return len(pairs), nil
}
