package domain

import "time"

// Alumnus is a person in the alumni directory. A non-nil MergedInto marks
// a tombstone: the record was merged into another one and is kept only for
// history.
type Alumnus struct {
	ID                int64
	Name              string
	Email             *string
	Phones            []string
	DepartmentID      *int64
	TenureID          *int64
	Gender            *Gender
	BirthDate         *time.Time
	IsStaff           bool
	Unit              *string
	State             *string
	Address           *string
	PastExcoOffice    *string
	CurrentExcoOffice *string
	MergedInto        *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsMerged reports whether the record is a tombstone.
func (a *Alumnus) IsMerged() bool {
	return a.MergedInto != nil
}

// BirthdayInYear returns the alumnus' birthday in the given year, in loc.
// Feb 29 rolls over to Mar 1 in non-leap years. ok is false when no birth
// date is recorded.
func (a *Alumnus) BirthdayInYear(year int, loc *time.Location) (t time.Time, ok bool) {
	if a.BirthDate == nil {
		return time.Time{}, false
	}
	return time.Date(year, a.BirthDate.Month(), a.BirthDate.Day(), 0, 0, 0, 0, loc), true
}

// AlumnusUpdateParams holds the optional fields of a partial update.
// A nil pointer leaves the column unchanged.
type AlumnusUpdateParams struct {
	Name              *string
	Email             *string
	Phones            []string
	DepartmentID      *int64
	TenureID          *int64
	Gender            *Gender
	BirthDate         *time.Time
	IsStaff           *bool
	Unit              *string
	State             *string
	Address           *string
	PastExcoOffice    *string
	CurrentExcoOffice *string
}

// AlumnusFilter narrows the active alumni listing. Merged records are never
// returned.
type AlumnusFilter struct {
	Search       *string
	DepartmentID *int64
	TenureID     *int64
	Unit         *string
	State        *string
	Gender       *Gender
	Limit        int
	Offset       int
}
