package service

import (
	"cmp"
	"slices"
	"strings"

	"giftdash/internal/model"
)

// SortField names a sortable column of the card table.
type SortField string

const (
	SortByGiftCard SortField = "giftcard"
	SortByIP       SortField = "ip"
	SortByRisk     SortField = "risk"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortState is the current sort column and direction.
type SortState struct {
	Field SortField `json:"sort"`
	Order SortOrder `json:"order"`
}

// DefaultSortState sorts by gift card number, ascending.
func DefaultSortState() SortState {
	return SortState{Field: SortByGiftCard, Order: SortAsc}
}

// Toggle returns the state after the user selects field: the same field flips
// the direction, a different field starts ascending.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		if s.Order == SortAsc {
			return SortState{Field: field, Order: SortDesc}
		}
		return SortState{Field: field, Order: SortAsc}
	}
	return SortState{Field: field, Order: SortAsc}
}

// Sort returns a stably sorted copy of cards. Scores for SortByRisk are
// computed from events on every comparison. Unknown fields keep input order.
func Sort(cards []model.GiftCard, events []model.GiftCardEvent, s SortState) []model.GiftCard {
	out := slices.Clone(cards)
	if out == nil {
		out = []model.GiftCard{}
	}

	var compare func(a, b model.GiftCard) int
	switch s.Field {
	case SortByGiftCard:
		compare = func(a, b model.GiftCard) int {
			return strings.Compare(a.GiftCardNumber, b.GiftCardNumber)
		}
	case SortByIP:
		compare = func(a, b model.GiftCard) int {
			return strings.Compare(a.IPAddress, b.IPAddress)
		}
	case SortByRisk:
		compare = func(a, b model.GiftCard) int {
			return cmp.Compare(RiskScore(a, events), RiskScore(b, events))
		}
	default:
		return out
	}

	if s.Order == SortDesc {
		asc := compare
		compare = func(a, b model.GiftCard) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, compare)
	return out
}
