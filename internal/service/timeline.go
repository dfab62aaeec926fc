package service

import (
	"regexp"
	"slices"

	"giftdash/internal/model"
)

// Marker is the timeline dot style of an event.
type Marker string

const (
	MarkerError   Marker = "error"
	MarkerSuccess Marker = "success"
	MarkerPrimary Marker = "primary"
)

var lifecycleEventPattern = regexp.MustCompile(`(?i)Redemption|Issuance|BalanceInquiry|Cancellation|Expiration`)

// EventsForCard returns the events of cardID, most recent first. Events whose
// date did not parse go last. Ties keep input order.
func EventsForCard(cardID model.ID, events []model.GiftCardEvent) []model.GiftCardEvent {
	out := make([]model.GiftCardEvent, 0)
	for _, ev := range events {
		if ev.GiftCardID == cardID {
			out = append(out, ev)
		}
	}
	slices.SortStableFunc(out, func(a, b model.GiftCardEvent) int {
		switch {
		case a.EventDate.Valid && b.EventDate.Valid:
			return b.EventDate.Time.Compare(a.EventDate.Time)
		case a.EventDate.Valid:
			return -1
		case b.EventDate.Valid:
			return 1
		default:
			return 0
		}
	})
	return out
}

// CurrentStatus is the type of the most recent event in timeline, falling back
// to the card's recorded status when there are no events.
func CurrentStatus(card model.GiftCard, timeline []model.GiftCardEvent) string {
	if len(timeline) > 0 {
		return timeline[0].EventType
	}
	return card.Status
}

// TimelineMarker classifies an event for display.
func TimelineMarker(ev model.GiftCardEvent) Marker {
	if ev.HasError() {
		return MarkerError
	}
	if lifecycleEventPattern.MatchString(ev.EventType) {
		return MarkerSuccess
	}
	return MarkerPrimary
}
