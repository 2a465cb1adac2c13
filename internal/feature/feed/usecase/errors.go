// Package usecase implements the business logic for the feed feature.
package usecase

import "errors"

var (
	// ErrFeedItemNotFound is returned when a feed item cannot be found by ID.
	ErrFeedItemNotFound = errors.New("feed item not found")
)
