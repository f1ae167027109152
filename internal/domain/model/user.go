package model

import "time"

// User represents a registered customer identified by email.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsStaff      bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}
