package service

import (
	"fmt"

	"giftdash/internal/model"
)

func card(id, number, status, channel, ip, geo string) model.GiftCard {
	return model.GiftCard{
		GiftCardID:      model.ID(id),
		GiftCardNumber:  number,
		Status:          status,
		PurchaseChannel: channel,
		IPAddress:       ip,
		GeoLocation:     geo,
	}
}

// eventsFor builds total events for cardID, the first failed of which carry an error code.
func eventsFor(cardID string, total, failed int) []model.GiftCardEvent {
	events := make([]model.GiftCardEvent, 0, total)
	for i := 0; i < total; i++ {
		ev := model.GiftCardEvent{
			EventID:    model.ID(fmt.Sprintf("%s-%d", cardID, i)),
			GiftCardID: model.ID(cardID),
			EventType:  "Redemption",
		}
		if i < failed {
			ev.EventType = "RedemptionAttempt"
			ev.ErrorCode = "INVALID_PIN"
		}
		events = append(events, ev)
	}
	return events
}

func numbers(cards []model.GiftCard) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.GiftCardNumber)
	}
	return out
}
