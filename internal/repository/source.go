package repository

import (
	"context"
	"time"

	"giftdash/internal/model"
)

// Source yields the two base collections exactly once per Load call.
type Source interface {
	Load(ctx context.Context) ([]model.GiftCard, []model.GiftCardEvent, error)
}

// RecordStore gives read-only access to a loaded snapshot of records.
type RecordStore interface {
	Cards() []model.GiftCard
	Events() []model.GiftCardEvent
	Card(id model.ID) (*model.GiftCard, bool)
	Version() string
	LoadedAt() time.Time
}
