package alumnus

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

const (
	maxNameLength  = 255
	maxTextLength  = 255
	maxPhones      = 10
	maxPhoneLength = 32
)

// CreateInput holds the parameters for creating an alumnus.
type CreateInput struct {
	Name              string
	Email             *string
	Phones            []string
	DepartmentID      *int64
	TenureID          *int64
	Gender            *domain.Gender
	BirthDate         *time.Time
	IsStaff           bool
	Unit              *string
	State             *string
	Address           *string
	PastExcoOffice    *string
	CurrentExcoOffice *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLength)})
	}

	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validatePhones(i.Phones)...)
	errs = append(errs, validateGender(i.Gender)...)
	errs = append(errs, validateIDs(i.DepartmentID, i.TenureID)...)
	errs = append(errs, validateText(map[string]*string{
		"unit": i.Unit, "state": i.State, "address": i.Address,
		"pastExcoOffice": i.PastExcoOffice, "currentExcoOffice": i.CurrentExcoOffice,
	})...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial update. Nil fields are left unchanged; a
// pointer to "" clears an optional text field.
type UpdateInput struct {
	ID                int64
	Name              *string
	Email             *string
	Phones            []string // nil = don't change
	DepartmentID      *int64
	TenureID          *int64
	Gender            *domain.Gender
	BirthDate         *time.Time
	IsStaff           *bool
	Unit              *string
	State             *string
	Address           *string
	PastExcoOffice    *string
	CurrentExcoOffice *string
}

func (i UpdateInput) empty() bool {
	return i.Name == nil && i.Email == nil && i.Phones == nil && i.DepartmentID == nil &&
		i.TenureID == nil && i.Gender == nil && i.BirthDate == nil && i.IsStaff == nil &&
		i.Unit == nil && i.State == nil && i.Address == nil && i.PastExcoOffice == nil &&
		i.CurrentExcoOffice == nil
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.empty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLength)})
		}
	}

	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validatePhones(i.Phones)...)
	errs = append(errs, validateGender(i.Gender)...)
	errs = append(errs, validateIDs(i.DepartmentID, i.TenureID)...)
	errs = append(errs, validateText(map[string]*string{
		"unit": i.Unit, "state": i.State, "address": i.Address,
		"pastExcoOffice": i.PastExcoOffice, "currentExcoOffice": i.CurrentExcoOffice,
	})...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the listing filter and page.
type ListInput struct {
	Search       *string
	DepartmentID *int64
	TenureID     *int64
	Unit         *string
	State        *string
	Gender       *domain.Gender
	Limit        int
	Offset       int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	errs = append(errs, validateGender(i.Gender)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Field validators
// ---------------------------------------------------------------------------

func validateEmail(email *string) []domain.FieldError {
	if email == nil {
		return nil
	}
	e := strings.TrimSpace(*email)
	if e == "" {
		return nil
	}
	if len(e) > maxTextLength {
		return []domain.FieldError{{Field: "email", Message: fmt.Sprintf("max %d characters", maxTextLength)}}
	}
	addr, err := mail.ParseAddress(e)
	if err != nil || addr.Address != e {
		return []domain.FieldError{{Field: "email", Message: "invalid email"}}
	}
	return nil
}

func validatePhones(phones []string) []domain.FieldError {
	var errs []domain.FieldError
	if len(phones) > maxPhones {
		errs = append(errs, domain.FieldError{Field: "phones", Message: fmt.Sprintf("max %d phones", maxPhones)})
	}
	for idx, p := range phones {
		if len(strings.TrimSpace(p)) > maxPhoneLength {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("phones[%d]", idx), Message: fmt.Sprintf("max %d characters", maxPhoneLength)})
		}
	}
	return errs
}

func validateGender(g *domain.Gender) []domain.FieldError {
	if g != nil && !g.IsValid() {
		return []domain.FieldError{{Field: "gender", Message: "must be M or F"}}
	}
	return nil
}

func validateIDs(departmentID, tenureID *int64) []domain.FieldError {
	var errs []domain.FieldError
	if departmentID != nil && *departmentID <= 0 {
		errs = append(errs, domain.FieldError{Field: "departmentId", Message: "must be positive"})
	}
	if tenureID != nil && *tenureID <= 0 {
		errs = append(errs, domain.FieldError{Field: "tenureId", Message: "must be positive"})
	}
	return errs
}

func validateText(fields map[string]*string) []domain.FieldError {
	var errs []domain.FieldError
	for _, name := range []string{"unit", "state", "address", "pastExcoOffice", "currentExcoOffice"} {
		if v := fields[name]; v != nil && len(strings.TrimSpace(*v)) > maxTextLength {
			errs = append(errs, domain.FieldError{Field: name, Message: fmt.Sprintf("max %d characters", maxTextLength)})
		}
	}
	return errs
}
