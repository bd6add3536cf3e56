// Package communication records outreach to alumni.
package communication

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/pkg/ctxutil"
)

type logRepo interface {
	Create(ctx context.Context, l *domain.CommunicationLog) (*domain.CommunicationLog, error)
	Delete(ctx context.Context, id int64) error
	ListByAlumnus(ctx context.Context, alumnusID int64) ([]domain.CommunicationLog, error)
}

type alumnusRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Alumnus, error)
}

// Service provides communication log operations.
type Service struct {
	logs   logRepo
	alumni alumnusRepo
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new communication Service.
func NewService(log *slog.Logger, logs logRepo, alumni alumnusRepo) *Service {
	return &Service{
		logs:   logs,
		alumni: alumni,
		now:    time.Now,
		log:    log.With("service", "communication"),
	}
}

// CreateInput holds the parameters for logging a contact attempt.
type CreateInput struct {
	AlumnusID  int64
	Type       domain.CommunicationType
	Outcome    domain.CommunicationOutcome
	Notes      *string
	OccurredAt *time.Time // nil = now
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.AlumnusID <= 0 {
		errs = append(errs, domain.FieldError{Field: "alumnusId", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid communication type"})
	}
	if !i.Outcome.IsValid() {
		errs = append(errs, domain.FieldError{Field: "outcome", Message: "invalid outcome"})
	}
	if i.Notes != nil && len(*i.Notes) > 5000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create logs a contact attempt by the signed-in user. The alumnus must be
// active; logs of merged records live on the surviving record.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.CommunicationLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.alumni.GetByID(ctx, input.AlumnusID)
	if err != nil {
		return nil, fmt.Errorf("get alumnus: %w", err)
	}
	if a.IsMerged() {
		return nil, fmt.Errorf("alumnus %d: %w", a.ID, domain.ErrAlreadyMerged)
	}

	occurred := s.now().UTC()
	if input.OccurredAt != nil {
		occurred = input.OccurredAt.UTC()
	}
	var notes *string
	if input.Notes != nil {
		if n := strings.TrimSpace(*input.Notes); n != "" {
			notes = &n
		}
	}

	created, err := s.logs.Create(ctx, &domain.CommunicationLog{
		AlumnusID:  input.AlumnusID,
		UserID:     ctxutil.UserIDPtrFromCtx(ctx),
		Type:       input.Type,
		Outcome:    input.Outcome,
		Notes:      notes,
		OccurredAt: occurred,
	})
	if err != nil {
		return nil, fmt.Errorf("create communication log: %w", err)
	}

	s.log.InfoContext(ctx, "communication logged",
		slog.Int64("alumnus_id", created.AlumnusID),
		slog.String("type", created.Type.String()),
		slog.String("outcome", created.Outcome.String()),
	)
	return created, nil
}

// ListByAlumnus returns the contact history of an alumnus, newest first.
func (s *Service) ListByAlumnus(ctx context.Context, alumnusID int64) ([]domain.CommunicationLog, error) {
	if _, err := s.alumni.GetByID(ctx, alumnusID); err != nil {
		return nil, fmt.Errorf("get alumnus: %w", err)
	}
	logs, err := s.logs.ListByAlumnus(ctx, alumnusID)
	if err != nil {
		return nil, fmt.Errorf("list communication logs: %w", err)
	}
	return logs, nil
}

// Delete removes a log entry.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.logs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete communication log: %w", err)
	}
	return nil
}
