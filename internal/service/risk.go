package service

import (
	"math"

	"giftdash/internal/model"
)

// RiskTier is the presentation bucket of a risk score.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// RiskScore is the rounded percentage of the card's events that carry an
// error code. A card with no events scores 0.
func RiskScore(card model.GiftCard, events []model.GiftCardEvent) int {
	total, failed := 0, 0
	for _, ev := range events {
		if ev.GiftCardID != card.GiftCardID {
			continue
		}
		total++
		if ev.HasError() {
			failed++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(failed) / float64(total) * 100))
}

// TierFor buckets a score. Both boundaries are strict: 30 is medium, 10 is low.
func TierFor(score int) RiskTier {
	switch {
	case score > 30:
		return RiskHigh
	case score > 10:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Tip is the hover text shown next to a score in this tier.
func (t RiskTier) Tip() string {
	switch t {
	case RiskHigh:
		return "High risk: frequent errors/events. Investigate for fraud or abuse."
	case RiskMedium:
		return "Medium risk: some suspicious activity detected."
	default:
		return "Low risk: minimal suspicious activity."
	}
}
