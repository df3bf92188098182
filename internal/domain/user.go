package domain

import "time"

// User is the domain model for registered principals. Emails are stored
// lowercase; PasswordHash is never serialized in responses.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
