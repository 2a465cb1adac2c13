package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profiles_backend/internal/feature/identity/domain/entity"
	"profiles_backend/internal/feature/identity/usecase"
)

func newTestToken(id string, userID uint) *entity.Token {
	return &entity.Token{ID: id, UserID: userID, CreatedAt: time.Now()}
}

func TestTokenPostgres_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenPostgres(db)

	token := newTestToken("token-aaa", 1)
	require.NoError(t, repo.Save(context.Background(), token))

	found, err := repo.FindByID(context.Background(), "token-aaa")
	require.NoError(t, err)
	assert.Equal(t, uint(1), found.UserID)
}

func TestTokenPostgres_SaveReplacesPreviousToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenPostgres(db)

	require.NoError(t, repo.Save(context.Background(), newTestToken("token-old", 1)))
	require.NoError(t, repo.Save(context.Background(), newTestToken("token-new", 1)))

	// The old token must stop resolving once a new one is issued
	_, err := repo.FindByID(context.Background(), "token-old")
	assert.ErrorIs(t, err, usecase.ErrTokenNotFound)

	found, err := repo.FindByID(context.Background(), "token-new")
	require.NoError(t, err)
	assert.Equal(t, uint(1), found.UserID)
}

func TestTokenPostgres_SaveKeepsOtherUsersTokens(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenPostgres(db)

	require.NoError(t, repo.Save(context.Background(), newTestToken("token-u1", 1)))
	require.NoError(t, repo.Save(context.Background(), newTestToken("token-u2", 2)))

	found, err := repo.FindByID(context.Background(), "token-u1")
	require.NoError(t, err)
	assert.Equal(t, uint(1), found.UserID)
}

func TestTokenPostgres_FindUnknown(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenPostgres(db)

	_, err := repo.FindByID(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, usecase.ErrTokenNotFound)
}
