// Package adapters provides repository implementations for the feed feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"profiles_backend/internal/feature/feed/domain/entity"
	"profiles_backend/internal/feature/feed/usecase"
)

// feedPostgres is a GORM implementation of the FeedItemRepository interface.
type feedPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure feedPostgres implements FeedItemRepository.
var _ usecase.FeedItemRepository = (*feedPostgres)(nil)

// NewFeedPostgres creates a new instance of feedPostgres.
func NewFeedPostgres(db *gorm.DB) *feedPostgres {
	return &feedPostgres{db: db}
}

// Create persists a new feed item.
func (r *feedPostgres) Create(ctx context.Context, item *entity.FeedItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID retrieves a feed item by its ID.
func (r *feedPostgres) FindByID(ctx context.Context, id uint) (*entity.FeedItem, error) {
	var item entity.FeedItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFeedItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll retrieves all feed items, newest first.
func (r *feedPostgres) FindAll(ctx context.Context) ([]*entity.FeedItem, error) {
	var items []*entity.FeedItem
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update saves changes to an existing feed item.
func (r *feedPostgres) Update(ctx context.Context, item *entity.FeedItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes a feed item by its ID.
func (r *feedPostgres) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.FeedItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrFeedItemNotFound
	}
	return nil
}
