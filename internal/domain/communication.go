package domain

import "time"

// CommunicationLog records one outreach attempt to an alumnus.
type CommunicationLog struct {
	ID         int64
	AlumnusID  int64
	UserID     *int64
	Type       CommunicationType
	Outcome    CommunicationOutcome
	Notes      *string
	OccurredAt time.Time
	CreatedAt  time.Time
}
