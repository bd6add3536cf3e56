package domain

import "time"

// Department is an academic department alumni graduated from.
type Department struct {
	ID        int64
	Code      string
	Name      string
	School    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tenure is a graduating class cohort. At most one tenure is active.
type Tenure struct {
	ID        int64
	Name      string
	Year      int
	IsActive  bool
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
