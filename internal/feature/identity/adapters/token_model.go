package adapters

import (
	"time"

	"profiles_backend/internal/feature/identity/domain/entity"
)

// TokenModel is the GORM model for the tokens table.
// The unique index on UserID enforces the one-live-token-per-user rule.
type TokenModel struct {
	ID        string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (TokenModel) TableName() string {
	return "tokens"
}

// ToEntity converts the GORM model to a domain entity.
func (m *TokenModel) ToEntity() *entity.Token {
	return &entity.Token{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

// TokenModelFromEntity converts a domain entity to a GORM model.
func TokenModelFromEntity(t *entity.Token) *TokenModel {
	return &TokenModel{
		ID:        t.ID,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
	}
}
