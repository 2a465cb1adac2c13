// Package entity defines the domain entities for the feed feature.
package entity

import "time"

// FeedItem is a status update owned by exactly one user.
// The owner is assigned server-side from the authenticated identity at
// creation time and never taken from client input.
type FeedItem struct {
	// ID is the unique identifier for the feed item.
	ID uint `gorm:"primaryKey"`

	// OwnerID references the user that created the item.
	OwnerID uint `gorm:"index;not null"`

	// StatusText is the body of the update.
	StatusText string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the item was last updated.
	UpdatedAt time.Time
}
