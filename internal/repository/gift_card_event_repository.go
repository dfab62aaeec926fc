package repository

import (
	"context"

	"gorm.io/gorm"

	"giftdash/internal/model"
)

// GiftCardEventRepository defines gift card event persistence operations.
type GiftCardEventRepository interface {
	Create(ctx context.Context, event *model.GiftCardEvent) error
	CreateBatch(ctx context.Context, events []model.GiftCardEvent) error
	Update(ctx context.Context, event *model.GiftCardEvent) error
	FindByID(ctx context.Context, id model.ID) (*model.GiftCardEvent, error)
	FindAll(ctx context.Context) ([]model.GiftCardEvent, error)
}

type giftCardEventRepository struct {
	db *gorm.DB
}

// NewGiftCardEventRepository creates a new gift card event repository.
func NewGiftCardEventRepository(db *gorm.DB) GiftCardEventRepository {
	return &giftCardEventRepository{db: db}
}

// Create creates a new event.
func (r *giftCardEventRepository) Create(ctx context.Context, event *model.GiftCardEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// CreateBatch creates multiple events in a single statement batch.
func (r *giftCardEventRepository) CreateBatch(ctx context.Context, events []model.GiftCardEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(events, 100).Error
}

// Update updates an existing event.
func (r *giftCardEventRepository) Update(ctx context.Context, event *model.GiftCardEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// FindByID finds an event by ID.
func (r *giftCardEventRepository) FindByID(ctx context.Context, id model.ID) (*model.GiftCardEvent, error) {
	var event model.GiftCardEvent
	if err := r.db.WithContext(ctx).Where("event_id = ?", id.String()).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindAll returns every event in fixture order.
func (r *giftCardEventRepository) FindAll(ctx context.Context) ([]model.GiftCardEvent, error) {
	var events []model.GiftCardEvent
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
