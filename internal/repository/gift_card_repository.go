package repository

import (
	"context"

	"gorm.io/gorm"

	"giftdash/internal/model"
)

// GiftCardRepository defines gift card persistence operations.
type GiftCardRepository interface {
	Create(ctx context.Context, card *model.GiftCard) error
	Update(ctx context.Context, card *model.GiftCard) error
	FindByID(ctx context.Context, id model.ID) (*model.GiftCard, error)
	FindAll(ctx context.Context) ([]model.GiftCard, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, cards GiftCardRepository, events GiftCardEventRepository) error) error
}

type giftCardRepository struct {
	db *gorm.DB
}

// NewGiftCardRepository creates a new gift card repository.
func NewGiftCardRepository(db *gorm.DB) GiftCardRepository {
	return &giftCardRepository{db: db}
}

// Create creates a new gift card.
func (r *giftCardRepository) Create(ctx context.Context, card *model.GiftCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// Update updates an existing gift card.
func (r *giftCardRepository) Update(ctx context.Context, card *model.GiftCard) error {
	return r.db.WithContext(ctx).Save(card).Error
}

// FindByID finds a gift card by ID.
func (r *giftCardRepository) FindByID(ctx context.Context, id model.ID) (*model.GiftCard, error) {
	var card model.GiftCard
	if err := r.db.WithContext(ctx).Where("gift_card_id = ?", id.String()).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// FindAll returns every gift card in fixture order.
func (r *giftCardRepository) FindAll(ctx context.Context) ([]model.GiftCard, error) {
	var cards []model.GiftCard
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// WithTransaction executes a function within a database transaction. Both
// repositories handed to fn share the transaction.
func (r *giftCardRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, cards GiftCardRepository, events GiftCardEventRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &giftCardRepository{db: tx}, &giftCardEventRepository{db: tx})
	})
}
