package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"giftdash/internal/model"
)

// File names read by the server's default configuration.
const (
	CardsFile  = "GiftCards.json"
	EventsFile = "GiftCardEvents.json"
)

// WriteFiles writes cards and events as indented JSON arrays into dir,
// creating it when needed.
func WriteFiles(dir string, cards []model.GiftCard, events []model.GiftCardEvent) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	if err := writeJSON(filepath.Join(dir, CardsFile), cards); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, EventsFile), events)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
