// Package fixture produces synthetic gift card and event records in the
// shape the dashboard loads.
package fixture

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"giftdash/internal/model"
)

// DateLayout is the timestamp format written to the fixture files.
const DateLayout = "2006-01-02T15:04:05"

var (
	channels = []string{"Online", "In-Store", "Retailer", "Mobile App"}

	eventTypes = []string{"Issuance", "Redemption", "RedemptionAttempt", "Cancellation", "Expiration", "BalanceInquiry"}

	// empty entries weight "no error" at 3 in 6
	errorCodes = []string{"", "", "", "INVALID_PIN", "CARD_NOT_FOUND", "EXPIRED"}

	minRedemption = decimal.NewFromInt(10)
)

type city struct {
	name     string
	lat, lon float64
}

var cities = []city{
	{"New York, USA", 40.7128, -74.0060},
	{"Los Angeles, USA", 34.0522, -118.2437},
	{"Chicago, USA", 41.8781, -87.6298},
	{"Houston, USA", 29.7604, -95.3698},
	{"Phoenix, USA", 33.4484, -112.0740},
	{"Philadelphia, USA", 39.9526, -75.1652},
	{"San Antonio, USA", 29.4241, -98.4936},
	{"San Diego, USA", 32.7157, -117.1611},
	{"Dallas, USA", 32.7767, -96.7970},
	{"San Jose, USA", 37.3382, -121.8863},
	{"Austin, USA", 30.2672, -97.7431},
	{"Jacksonville, USA", 30.3322, -81.6557},
	{"Fort Worth, USA", 32.7555, -97.3308},
	{"Columbus, USA", 39.9612, -82.9988},
	{"Charlotte, USA", 35.2271, -80.8431},
	{"San Francisco, USA", 37.7749, -122.4194},
	{"Indianapolis, USA", 39.7684, -86.1581},
	{"Seattle, USA", 47.6062, -122.3321},
	{"Denver, USA", 39.7392, -104.9903},
	{"Washington, USA", 38.9072, -77.0369},
}

// Options controls the size and time span of a generated data set.
type Options struct {
	Cards      int
	MaxEvents  int
	MinPerCard int
	MaxPerCard int
	Start      time.Time
}

// DefaultOptions returns 20 cards with up to 200 events starting 2025-07-31 09:00.
func DefaultOptions() Options {
	return Options{
		Cards:      20,
		MaxEvents:  200,
		MinPerCard: 8,
		MaxPerCard: 12,
		Start:      time.Date(2025, 7, 31, 9, 0, 0, 0, time.UTC),
	}
}

// Generate builds cards and their events. Output depends only on opts and the
// state of r. Generation stops once MaxEvents events exist; cards past that
// point are not emitted.
func Generate(opts Options, r *rand.Rand) ([]model.GiftCard, []model.GiftCardEvent) {
	if opts.MaxPerCard < opts.MinPerCard {
		opts.MaxPerCard = opts.MinPerCard
	}

	cards := make([]model.GiftCard, 0, opts.Cards)
	events := make([]model.GiftCardEvent, 0, opts.MaxEvents)

	for n := 1; n <= opts.Cards && len(events) < opts.MaxEvents; n++ {
		cardID := model.ID(strconv.Itoa(n))
		ip := fmt.Sprintf("192.168.1.%d", n)
		created := opts.Start.Add(time.Duration(n*5) * time.Minute)
		home := cities[r.IntN(len(cities))]

		count := opts.MinPerCard + r.IntN(opts.MaxPerCard-opts.MinPerCard+1)
		balance := decimal.NewFromInt(int64(50 + r.IntN(151)))
		at := created
		var lastType string

		for i := 0; i < count && len(events) < opts.MaxEvents; i++ {
			etype := eventTypes[r.IntN(len(eventTypes))]

			var code string
			if etype == "RedemptionAttempt" || etype == "Expiration" {
				code = errorCodes[r.IntN(len(errorCodes))]
			}

			amount := decimal.Zero
			switch etype {
			case "Issuance", "BalanceInquiry":
				amount = balance
			case "Redemption":
				amount = redemption(balance, r)
				balance = balance.Sub(amount)
			}

			events = append(events, model.GiftCardEvent{
				EventID:     model.ID(strconv.Itoa(len(events) + 1)),
				GiftCardID:  cardID,
				EventType:   etype,
				EventDate:   model.NewTimestamp(at, DateLayout),
				Amount:      model.NewMoney(amount),
				ErrorCode:   code,
				IPAddress:   ip,
				GeoLocation: cities[r.IntN(len(cities))].name,
			})
			lastType = etype
			at = at.Add(time.Duration(1+r.IntN(10)) * time.Minute)
		}

		cards = append(cards, model.GiftCard{
			GiftCardID:      cardID,
			GiftCardNumber:  fmt.Sprintf("6006%012d", r.Int64N(1_000_000_000_000)),
			Status:          cardStatus(lastType, balance),
			Balance:         model.NewMoney(balance),
			PurchaseChannel: channels[r.IntN(len(channels))],
			DateCreated:     model.NewTimestamp(created, DateLayout),
			IPAddress:       ip,
			GeoLocation:     fmt.Sprintf("%.4f,%.4f", home.lat, home.lon),
			Position:        n - 1,
		})
	}

	return cards, events
}

// redemption draws a uniform amount in [10, balance] rounded to cents. A
// balance below 10 is drained completely.
func redemption(balance decimal.Decimal, r *rand.Rand) decimal.Decimal {
	if balance.LessThanOrEqual(minRedemption) {
		return balance
	}
	span := balance.Sub(minRedemption)
	amount := minRedemption.Add(span.Mul(decimal.NewFromFloat(r.Float64()))).Round(2)
	if amount.GreaterThan(balance) {
		return balance
	}
	return amount
}

func cardStatus(lastType string, balance decimal.Decimal) string {
	switch {
	case lastType == "Cancellation":
		return "Cancelled"
	case lastType == "Expiration":
		return "Expired"
	case balance.IsZero():
		return "Redeemed"
	default:
		return "Active"
	}
}
