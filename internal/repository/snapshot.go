package repository

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"giftdash/internal/model"
)

// Snapshot holds the base collections, immutable after construction.
// Accessors hand out copies so callers cannot alter the stored records.
type Snapshot struct {
	cards    []model.GiftCard
	events   []model.GiftCardEvent
	byID     map[model.ID]int
	version  uuid.UUID
	loadedAt time.Time
}

// Load reads src once and returns the resulting snapshot.
func Load(ctx context.Context, src Source) (*Snapshot, error) {
	cards, events, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(cards, events), nil
}

// NewSnapshot builds a snapshot over copies of cards and events.
func NewSnapshot(cards []model.GiftCard, events []model.GiftCardEvent) *Snapshot {
	s := &Snapshot{
		cards:    slices.Clone(cards),
		events:   slices.Clone(events),
		byID:     make(map[model.ID]int, len(cards)),
		version:  uuid.New(),
		loadedAt: time.Now().UTC(),
	}
	if s.cards == nil {
		s.cards = []model.GiftCard{}
	}
	if s.events == nil {
		s.events = []model.GiftCardEvent{}
	}
	for i, card := range s.cards {
		// first occurrence wins for duplicated IDs
		if _, ok := s.byID[card.GiftCardID]; !ok {
			s.byID[card.GiftCardID] = i
		}
	}
	return s
}

// Cards returns a copy of all gift cards in load order.
func (s *Snapshot) Cards() []model.GiftCard {
	return slices.Clone(s.cards)
}

// Events returns a copy of all events in load order.
func (s *Snapshot) Events() []model.GiftCardEvent {
	return slices.Clone(s.events)
}

// Card looks up a gift card by ID.
func (s *Snapshot) Card(id model.ID) (*model.GiftCard, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	card := s.cards[i]
	return &card, true
}

// Version identifies this particular load.
func (s *Snapshot) Version() string {
	return s.version.String()
}

// LoadedAt reports when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}
