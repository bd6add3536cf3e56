package domain

import "time"

// User is a staff member who signs in to manage the directory.
type User struct {
	ID           int64
	Email        string
	Name         string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
