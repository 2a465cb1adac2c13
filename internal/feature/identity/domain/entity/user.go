// Package entity defines the domain entities for the identity feature.
package entity

import "time"

// User represents a registered profile in the system.
// It carries the login credential and the privilege flags.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// The domain part is lower-cased before storage and must be unique.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the display name shown on the profile.
	Name string `gorm:"size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores a plaintext password.
	Password string `gorm:"size:255;not null"`

	// IsActive gates whether the user may log in at all.
	// Setting it false deactivates the account without deleting it.
	IsActive bool `gorm:"not null;default:true"`

	// IsStaff and IsSuperuser are elevated-privilege flags.
	// They are set only through the explicit superuser creation path.
	IsStaff     bool `gorm:"not null;default:false"`
	IsSuperuser bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
