// Package department manages the academic departments alumni belong to.
package department

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/pkg/ctxutil"
)

type departmentRepo interface {
	Create(ctx context.Context, d *domain.Department) (*domain.Department, error)
	Update(ctx context.Context, d *domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides department operations.
type Service struct {
	departments departmentRepo
	audit       auditLogger
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new department Service.
func NewService(log *slog.Logger, departments departmentRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		departments: departments,
		audit:       audit,
		tx:          tx,
		log:         log.With("service", "department"),
	}
}

// Input holds the fields of a department.
type Input struct {
	Code   string
	Name   string
	School *string
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	var errs []domain.FieldError

	code := strings.TrimSpace(i.Code)
	if code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if len(code) > 20 {
		errs = append(errs, domain.FieldError{Field: "code", Message: "max 20 characters"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if i.School != nil && len(strings.TrimSpace(*i.School)) > 255 {
		errs = append(errs, domain.FieldError{Field: "school", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i Input) normalize() domain.Department {
	d := domain.Department{
		Code: strings.ToUpper(strings.TrimSpace(i.Code)),
		Name: strings.TrimSpace(i.Name),
	}
	if i.School != nil {
		if s := strings.TrimSpace(*i.School); s != "" {
			d.School = &s
		}
	}
	return d
}

// List returns every department.
func (s *Service) List(ctx context.Context) ([]domain.Department, error) {
	list, err := s.departments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return list, nil
}

// Get returns one department.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Department, error) {
	d, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get department: %w", err)
	}
	return d, nil
}

// Create adds a department. Codes are unique and stored upper-case.
func (s *Service) Create(ctx context.Context, input Input) (*domain.Department, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	d := input.normalize()

	var created *domain.Department
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.departments.Create(txCtx, &d)
		if err != nil {
			return fmt.Errorf("create department: %w", err)
		}
		return s.logAudit(txCtx, created.ID, domain.AuditActionCreate, map[string]any{
			"code": map[string]any{"new": created.Code},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "department created",
		slog.Int64("department_id", created.ID),
		slog.String("code", created.Code),
	)
	return created, nil
}

// Update replaces a department's fields.
func (s *Service) Update(ctx context.Context, id int64, input Input) (*domain.Department, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	d := input.normalize()
	d.ID = id

	var updated *domain.Department
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.departments.Update(txCtx, &d)
		if err != nil {
			return fmt.Errorf("update department: %w", err)
		}
		return s.logAudit(txCtx, id, domain.AuditActionUpdate, map[string]any{
			"code": map[string]any{"new": updated.Code},
			"name": map[string]any{"new": updated.Name},
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a department. Its alumni keep no department.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.departments.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete department: %w", err)
		}
		return s.logAudit(txCtx, id, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "department deleted", slog.Int64("department_id", id))
	return nil
}

func (s *Service) logAudit(ctx context.Context, id int64, action domain.AuditAction, changes map[string]any) error {
	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     ctxutil.UserIDPtrFromCtx(ctx),
		EntityType: domain.EntityTypeDepartment,
		EntityID:   id,
		Action:     action,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
