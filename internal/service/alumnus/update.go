package alumnus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/pkg/ctxutil"
)

// Update applies a partial update. Merged records are read-only and return
// domain.ErrAlreadyMerged.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Alumnus, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.AlumnusUpdateParams{
		Name:              trimKeepEmpty(input.Name),
		Email:             trimKeepEmpty(input.Email),
		DepartmentID:      input.DepartmentID,
		TenureID:          input.TenureID,
		Gender:            input.Gender,
		BirthDate:         input.BirthDate,
		IsStaff:           input.IsStaff,
		Unit:              trimKeepEmpty(input.Unit),
		State:             trimKeepEmpty(input.State),
		Address:           trimKeepEmpty(input.Address),
		PastExcoOffice:    trimKeepEmpty(input.PastExcoOffice),
		CurrentExcoOffice: trimKeepEmpty(input.CurrentExcoOffice),
	}
	if input.Phones != nil {
		params.Phones = domain.CleanPhones(input.Phones)
	}

	var updated *domain.Alumnus
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.alumni.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get alumnus: %w", err)
		}
		if old.IsMerged() {
			return fmt.Errorf("alumnus %d: %w", old.ID, domain.ErrAlreadyMerged)
		}

		updated, err = s.alumni.Update(txCtx, input.ID, params)
		if err != nil {
			return fmt.Errorf("update alumnus: %w", err)
		}

		changes := diff(old, updated)
		if len(changes) == 0 {
			return nil
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     ctxutil.UserIDPtrFromCtx(txCtx),
			EntityType: domain.EntityTypeAlumnus,
			EntityID:   updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "alumnus updated",
		slog.Int64("alumnus_id", updated.ID),
	)

	return updated, nil
}

// diff records the old and new value of every column that changed.
func diff(old, updated *domain.Alumnus) map[string]any {
	changes := make(map[string]any)
	add := func(field string, before, after any) {
		changes[field] = map[string]any{"old": before, "new": after}
	}

	if old.Name != updated.Name {
		add("name", old.Name, updated.Name)
	}
	if deref(old.Email) != deref(updated.Email) {
		add("email", deref(old.Email), deref(updated.Email))
	}
	if strings.Join(old.Phones, "\x00") != strings.Join(updated.Phones, "\x00") {
		add("phones", old.Phones, updated.Phones)
	}
	if derefID(old.DepartmentID) != derefID(updated.DepartmentID) {
		add("departmentId", derefID(old.DepartmentID), derefID(updated.DepartmentID))
	}
	if derefID(old.TenureID) != derefID(updated.TenureID) {
		add("tenureId", derefID(old.TenureID), derefID(updated.TenureID))
	}
	if old.IsStaff != updated.IsStaff {
		add("isStaff", old.IsStaff, updated.IsStaff)
	}
	for _, f := range []struct {
		name        string
		before, now *string
	}{
		{"unit", old.Unit, updated.Unit},
		{"state", old.State, updated.State},
		{"address", old.Address, updated.Address},
		{"pastExcoOffice", old.PastExcoOffice, updated.PastExcoOffice},
		{"currentExcoOffice", old.CurrentExcoOffice, updated.CurrentExcoOffice},
	} {
		if deref(f.before) != deref(f.now) {
			add(f.name, deref(f.before), deref(f.now))
		}
	}
	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
