package service

import (
	"strings"

	"giftdash/internal/model"
)

// Criteria holds the four text filters of the card table.
// Empty fields impose no constraint.
type Criteria struct {
	GiftCard string `json:"giftcard,omitempty" query:"giftcard"`
	Status   string `json:"status,omitempty" query:"status"`
	Channel  string `json:"channel,omitempty" query:"channel"`
	IP       string `json:"ip,omitempty" query:"ip"`
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Matches reports whether card satisfies every non-empty criterion.
// Gift card number and IP match case-sensitively, status and channel do not.
func (c Criteria) Matches(card model.GiftCard) bool {
	if c.GiftCard != "" && !strings.Contains(card.GiftCardNumber, c.GiftCard) {
		return false
	}
	if c.Status != "" && !containsFold(card.Status, c.Status) {
		return false
	}
	if c.Channel != "" && !containsFold(card.PurchaseChannel, c.Channel) {
		return false
	}
	if c.IP != "" && !strings.Contains(card.IPAddress, c.IP) {
		return false
	}
	return true
}

// Filter returns the cards matching c, in input order.
func Filter(cards []model.GiftCard, c Criteria) []model.GiftCard {
	if c.IsZero() {
		out := make([]model.GiftCard, len(cards))
		copy(out, cards)
		return out
	}

	out := make([]model.GiftCard, 0, len(cards))
	for _, card := range cards {
		if c.Matches(card) {
			out = append(out, card)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
