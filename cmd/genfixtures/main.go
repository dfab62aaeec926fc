package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"go.uber.org/zap"

	"giftdash/internal/fixture"
	"giftdash/internal/logger"
)

// genfixtures writes a synthetic GiftCards.json and GiftCardEvents.json.
func main() {
	defaults := fixture.DefaultOptions()

	seed := flag.Uint64("seed", 1, "random seed; equal seeds produce equal files")
	cards := flag.Int("cards", defaults.Cards, "number of gift cards")
	events := flag.Int("events", defaults.MaxEvents, "maximum number of events")
	out := flag.String("out", "data", "output directory")
	flag.Parse()

	zl, err := logger.New("info", "console")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	opts := defaults
	opts.Cards = *cards
	opts.MaxEvents = *events

	gotCards, gotEvents := fixture.Generate(opts, rand.New(rand.NewPCG(*seed, *seed)))
	if err := fixture.WriteFiles(*out, gotCards, gotEvents); err != nil {
		zl.Fatal("write fixtures", zap.Error(err))
	}

	zl.Info("fixtures generated",
		zap.String("dir", *out),
		zap.Uint64("seed", *seed),
		zap.Int("cards", len(gotCards)),
		zap.Int("events", len(gotEvents)),
	)
}
