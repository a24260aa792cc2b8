package database

import (
	"time"
)

// User is an account record. PasswordHash never leaves this layer
// except for credential checks in the auth handlers.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Feedback is a testimonial left by a signed-in user.
type Feedback struct {
	ID        string
	UserID    string
	UserName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
