package duplicate

import (
	"fmt"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

// MaxGroupSize bounds how many records one dismissal may cover.
const MaxGroupSize = 50

// DismissGroupInput holds the ids staff marked as not duplicates of each other.
type DismissGroupInput struct {
	IDs []int64
}

// Validate checks all fields and collects all errors.
func (i DismissGroupInput) Validate() error {
	var errs []domain.FieldError

	distinct := make(map[int64]struct{}, len(i.IDs))
	for idx, id := range i.IDs {
		if id <= 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("ids[%d]", idx), Message: "must be positive"})
			continue
		}
		distinct[id] = struct{}{}
	}
	if len(distinct) < 2 {
		errs = append(errs, domain.FieldError{Field: "ids", Message: "at least 2 distinct ids required"})
	}
	if len(distinct) > MaxGroupSize {
		errs = append(errs, domain.FieldError{Field: "ids", Message: fmt.Sprintf("max %d ids", MaxGroupSize)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MergeInput names the two records to merge and which one survives.
type MergeInput struct {
	IDA       int64
	IDB       int64
	PrimaryID int64
}

// Validate checks that every id is present. Relations between the ids are
// checked by domain.PlanMerge.
func (i MergeInput) Validate() error {
	var errs []domain.FieldError

	if i.IDA <= 0 {
		errs = append(errs, domain.FieldError{Field: "idA", Message: "required"})
	}
	if i.IDB <= 0 {
		errs = append(errs, domain.FieldError{Field: "idB", Message: "required"})
	}
	if i.PrimaryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "primaryId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
