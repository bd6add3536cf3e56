package domain

import (
	"errors"
	"strings"
)

// Sentinels shared by every layer. Transport maps each to a status code.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Merge rejections. Checked in this order and never followed by a write.
var (
	ErrInvalidPrimary = errors.New("primary must be one of the merged records")
	ErrAlreadyMerged  = errors.New("record has already been merged")
	ErrSelfMerge      = errors.New("cannot merge a record into itself")
)

// FieldError is one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports every rejected field of one input. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation: ")
	for i, fe := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError rejects a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}
