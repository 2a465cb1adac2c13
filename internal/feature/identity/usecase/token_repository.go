package usecase

import (
	"context"

	"profiles_backend/internal/feature/identity/domain/entity"
)

// TokenRepository abstracts the persistence layer for bearer tokens.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TokenRepository interface {
	// Save persists a token, atomically replacing any token previously
	// held by the same user. A user has at most one live token.
	Save(ctx context.Context, token *entity.Token) error

	// FindByID retrieves the token by its value. It is read-only and
	// returns ErrTokenNotFound for unknown or superseded tokens.
	FindByID(ctx context.Context, id string) (*entity.Token, error)
}
