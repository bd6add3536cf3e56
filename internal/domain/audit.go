package domain

import "time"

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         int64
	UserID     *int64
	EntityType EntityType
	EntityID   int64
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
