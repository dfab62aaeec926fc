package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"giftdash/internal/model"
)

// FixtureSource reads gift cards and events from two JSON array files.
type FixtureSource struct {
	CardsPath  string
	EventsPath string
}

// NewFixtureSource creates a fixture-backed source.
func NewFixtureSource(cardsPath, eventsPath string) *FixtureSource {
	return &FixtureSource{CardsPath: cardsPath, EventsPath: eventsPath}
}

// Load reads both fixture files.
func (s *FixtureSource) Load(ctx context.Context) ([]model.GiftCard, []model.GiftCardEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	cards, err := readJSONArray[model.GiftCard](s.CardsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load gift cards: %w", err)
	}

	events, err := readJSONArray[model.GiftCardEvent](s.EventsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load gift card events: %w", err)
	}

	return cards, events, nil
}

func readJSONArray[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
