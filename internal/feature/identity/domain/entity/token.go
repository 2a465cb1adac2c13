package entity

import "time"

// Token represents a bearer token bound to one user (64-character hex string).
// A user holds at most one live token; issuing a new one replaces the previous.
type Token struct {
	ID        string    // Token value presented in the Authorization header
	UserID    uint      // Bound user ID
	CreatedAt time.Time // Issue time
}
