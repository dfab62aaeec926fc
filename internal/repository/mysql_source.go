package repository

import (
	"context"
	"fmt"

	"giftdash/internal/model"
)

// MySQLSource reads the base collections from the gift card tables.
type MySQLSource struct {
	cards  GiftCardRepository
	events GiftCardEventRepository
}

// NewMySQLSource creates a database-backed source.
func NewMySQLSource(cards GiftCardRepository, events GiftCardEventRepository) *MySQLSource {
	return &MySQLSource{cards: cards, events: events}
}

// Load reads all gift cards and events.
func (s *MySQLSource) Load(ctx context.Context) ([]model.GiftCard, []model.GiftCardEvent, error) {
	cards, err := s.cards.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("find gift cards: %w", err)
	}

	events, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("find gift card events: %w", err)
	}

	return cards, events, nil
}
