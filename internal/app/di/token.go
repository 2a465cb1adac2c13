// Package di provides dependency injection factories for creating application components.
package di

import (
	"profiles_backend/internal/feature/identity/adapters"
	"profiles_backend/internal/feature/identity/usecase"
	"profiles_backend/internal/platform/token"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewTokenRepository creates a TokenRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the database.
func NewTokenRepository(rdb *redis.Client, db *gorm.DB) usecase.TokenRepository {
	if rdb != nil {
		return token.NewTokenRedis(rdb, "token")
	}
	return adapters.NewTokenPostgres(db)
}
