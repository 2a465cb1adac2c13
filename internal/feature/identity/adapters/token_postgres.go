package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"profiles_backend/internal/feature/identity/domain/entity"
	"profiles_backend/internal/feature/identity/usecase"
)

// tokenPostgres is a GORM implementation of the TokenRepository interface.
// It serves as the fallback token store when Redis is unavailable.
type tokenPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure tokenPostgres implements TokenRepository.
var _ usecase.TokenRepository = (*tokenPostgres)(nil)

// NewTokenPostgres creates a new instance of tokenPostgres.
func NewTokenPostgres(db *gorm.DB) *tokenPostgres {
	return &tokenPostgres{db: db}
}

// Save persists a token, replacing any token previously held by the same user.
// Delete and insert run inside one transaction so concurrent issuers cannot
// leave two live tokens for one user.
func (r *tokenPostgres) Save(ctx context.Context, token *entity.Token) error {
	model := TokenModelFromEntity(token)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).Delete(&TokenModel{}).Error; err != nil {
			return err
		}
		return tx.Create(model).Error
	})
}

// FindByID retrieves a token by its value.
func (r *tokenPostgres) FindByID(ctx context.Context, id string) (*entity.Token, error) {
	var model TokenModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}
