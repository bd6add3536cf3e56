package tenure

import (
	"strings"
	"time"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

// Input holds the fields of a tenure.
type Input struct {
	Name      string
	Year      int
	IsActive  bool
	StartDate *time.Time
	EndDate   *time.Time
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if i.Year < 1900 || i.Year > 2200 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be between 1900 and 2200"})
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i Input) tenure(id int64) *domain.Tenure {
	return &domain.Tenure{
		ID:        id,
		Name:      strings.TrimSpace(i.Name),
		Year:      i.Year,
		IsActive:  i.IsActive,
		StartDate: i.StartDate,
		EndDate:   i.EndDate,
	}
}
