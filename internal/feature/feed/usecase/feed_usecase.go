package usecase

import (
	"context"

	"profiles_backend/internal/feature/feed/domain/entity"
)

// FeedItemRepository abstracts the persistence layer for feed items.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type FeedItemRepository interface {
	// Create persists a new feed item.
	Create(ctx context.Context, item *entity.FeedItem) error

	// FindByID retrieves a feed item by ID, or ErrFeedItemNotFound.
	FindByID(ctx context.Context, id uint) (*entity.FeedItem, error)

	// FindAll retrieves all feed items, newest first.
	FindAll(ctx context.Context) ([]*entity.FeedItem, error)

	// Update saves changes to an existing feed item.
	Update(ctx context.Context, item *entity.FeedItem) error

	// Delete removes a feed item by ID, or ErrFeedItemNotFound.
	Delete(ctx context.Context, id uint) error
}

// feedUsecase implements the feed business logic.
type feedUsecase struct {
	items FeedItemRepository
}

// NewFeedUsecase creates a new instance of feedUsecase.
func NewFeedUsecase(items FeedItemRepository) *feedUsecase {
	return &feedUsecase{items: items}
}

// Create stores a new feed item owned by ownerID. The owner always comes
// from the resolved token, so a client cannot create items as someone else.
func (u *feedUsecase) Create(ctx context.Context, ownerID uint, statusText string) (*entity.FeedItem, error) {
	item := &entity.FeedItem{
		OwnerID:    ownerID,
		StatusText: statusText,
	}
	if err := u.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get retrieves a single feed item.
func (u *feedUsecase) Get(ctx context.Context, id uint) (*entity.FeedItem, error) {
	return u.items.FindByID(ctx, id)
}

// List retrieves all feed items, newest first.
func (u *feedUsecase) List(ctx context.Context) ([]*entity.FeedItem, error) {
	return u.items.FindAll(ctx)
}

// Update replaces the status text of an existing feed item.
func (u *feedUsecase) Update(ctx context.Context, id uint, statusText string) (*entity.FeedItem, error) {
	item, err := u.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.StatusText = statusText
	if err := u.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a feed item.
func (u *feedUsecase) Delete(ctx context.Context, id uint) error {
	return u.items.Delete(ctx, id)
}
