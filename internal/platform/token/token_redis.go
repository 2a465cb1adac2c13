// Package token provides a Redis-backed implementation of the token repository.
package token

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"profiles_backend/internal/feature/identity/domain/entity"
	"profiles_backend/internal/feature/identity/usecase"
)

// TokenRedis implements usecase.TokenRepository using Redis.
// Two keys are kept per token: the token value mapping to its payload, and a
// per-user pointer to the current token. FindByID only honours a token the
// user pointer still names, so overwriting the pointer invalidates the
// previous token without a cleanup pass.
type TokenRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check to ensure TokenRedis implements TokenRepository.
var _ usecase.TokenRepository = (*TokenRedis)(nil)

// NewTokenRedis creates a new TokenRedis instance.
func NewTokenRedis(client *redis.Client, prefix string) *TokenRedis {
	if prefix == "" {
		prefix = "token"
	}
	return &TokenRedis{
		client: client,
		prefix: prefix,
	}
}

// tokenKey returns the Redis key holding a token payload.
func (r *TokenRedis) tokenKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// userKey returns the Redis key holding a user's current token value.
func (r *TokenRedis) userKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", r.prefix, userID)
}

// Save persists a token and points the user key at it. Both writes go through
// one MULTI/EXEC pipeline so a concurrent Save cannot observe a half-written
// pair. Tokens carry no TTL; they live until replaced.
func (r *TokenRedis) Save(ctx context.Context, token *entity.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.tokenKey(token.ID), data, 0)
		pipe.Set(ctx, r.userKey(token.UserID), token.ID, 0)
		return nil
	})
	return err
}

// FindByID retrieves a token by its value. A token whose user pointer has
// moved on (the user logged in again) resolves as not found.
func (r *TokenRedis) FindByID(ctx context.Context, id string) (*entity.Token, error) {
	data, err := r.client.Get(ctx, r.tokenKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}

	var token entity.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}

	current, err := r.client.Get(ctx, r.userKey(token.UserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	if current != id {
		// Superseded by a newer login
		return nil, usecase.ErrTokenNotFound
	}

	return &token, nil
}
