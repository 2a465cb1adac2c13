// Package usecase implements the business logic for the identity feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrEmailRequired is returned when signup is attempted without an email address.
	ErrEmailRequired = errors.New("email is required")

	// ErrInvalidCredentials is returned when login fails for any reason
	// (unknown email, wrong password, deactivated account).
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenNotFound is returned when a bearer token does not resolve to a user.
	ErrTokenNotFound = errors.New("token not found")
)
