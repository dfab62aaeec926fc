package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"giftdash/internal/config"
	"giftdash/internal/db"
	"giftdash/internal/logger"
	"giftdash/internal/model"
	"giftdash/internal/repository"
)

// seed loads the JSON fixtures into MySQL so the server can run with DATA_SOURCE=mysql.
func main() {
	reset := flag.Bool("reset", false, "drop the gift card tables before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()

	cards, events, err := repository.NewFixtureSource(cfg.CardsFile, cfg.EventsFile).Load(ctx)
	if err != nil {
		zl.Fatal("read fixtures", zap.Error(err))
	}
	zl.Info("fixtures read", zap.Int("cards", len(cards)), zap.Int("events", len(events)))

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		zl.Fatal("connect to database", zap.Error(err))
	}
	if err := db.Migrate(gormDB, *reset); err != nil {
		zl.Fatal("run migrations", zap.Error(err))
	}
	zl.Info("database migrations completed", zap.Bool("reset", *reset))

	cardRepo := repository.NewGiftCardRepository(gormDB)

	var cardStats, eventStats seedStats
	err = cardRepo.WithTransaction(ctx, func(ctx context.Context, cardTx repository.GiftCardRepository, eventTx repository.GiftCardEventRepository) error {
		var err error
		cardStats, eventStats, err = seedAll(ctx, cardTx, eventTx, cards, events)
		return err
	})
	if err != nil {
		zl.Fatal("seed rolled back", zap.Error(err))
	}

	zl.Info("seed completed",
		zap.Int("cards_created", cardStats.created),
		zap.Int("cards_updated", cardStats.updated),
		zap.Int("events_created", eventStats.created),
		zap.Int("events_updated", eventStats.updated),
		zap.Int("duplicates_skipped", cardStats.skipped+eventStats.skipped),
	)
}

type seedStats struct {
	created int
	updated int
	skipped int
}

// seedAll seeds cards, then events. Callers run it in one transaction so a
// failure leaves neither table half written.
func seedAll(
	ctx context.Context,
	cardRepo repository.GiftCardRepository,
	eventRepo repository.GiftCardEventRepository,
	cards []model.GiftCard,
	events []model.GiftCardEvent,
) (cardStats, eventStats seedStats, err error) {
	cardStats, err = seedCards(ctx, cardRepo, cards)
	if err != nil {
		return cardStats, eventStats, fmt.Errorf("seed gift cards: %w", err)
	}
	eventStats, err = seedEvents(ctx, eventRepo, events)
	if err != nil {
		return cardStats, eventStats, fmt.Errorf("seed gift card events: %w", err)
	}
	return cardStats, eventStats, nil
}

// seedCards upserts cards, recording their fixture order in Position.
// Repeated IDs keep the first card.
func seedCards(ctx context.Context, repo repository.GiftCardRepository, cards []model.GiftCard) (seedStats, error) {
	var stats seedStats
	seen := make(map[model.ID]bool, len(cards))
	for i := range cards {
		card := cards[i]
		card.Position = i
		if seen[card.GiftCardID] {
			stats.skipped++
			continue
		}
		seen[card.GiftCardID] = true

		existing, err := repo.FindByID(ctx, card.GiftCardID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return stats, fmt.Errorf("error checking gift card %s: %w", card.GiftCardID, err)
		}

		if existing != nil {
			if err := repo.Update(ctx, &card); err != nil {
				return stats, fmt.Errorf("error updating gift card %s: %w", card.GiftCardID, err)
			}
			stats.updated++
			continue
		}

		if err := repo.Create(ctx, &card); err != nil {
			return stats, fmt.Errorf("error creating gift card %s: %w", card.GiftCardID, err)
		}
		stats.created++
	}
	return stats, nil
}

// seedEvents updates events that already exist and creates the rest in batches.
func seedEvents(ctx context.Context, repo repository.GiftCardEventRepository, events []model.GiftCardEvent) (seedStats, error) {
	var stats seedStats
	fresh := make([]model.GiftCardEvent, 0, len(events))
	seen := make(map[model.ID]bool, len(events))
	for i := range events {
		event := events[i]
		event.Position = i
		if seen[event.EventID] {
			stats.skipped++
			continue
		}
		seen[event.EventID] = true

		existing, err := repo.FindByID(ctx, event.EventID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return stats, fmt.Errorf("error checking event %s: %w", event.EventID, err)
		}

		if existing != nil {
			if err := repo.Update(ctx, &event); err != nil {
				return stats, fmt.Errorf("error updating event %s: %w", event.EventID, err)
			}
			stats.updated++
			continue
		}
		fresh = append(fresh, event)
	}

	if len(fresh) > 0 {
		if err := repo.CreateBatch(ctx, fresh); err != nil {
			return stats, fmt.Errorf("error creating events: %w", err)
		}
		stats.created = len(fresh)
	}
	return stats, nil
}
