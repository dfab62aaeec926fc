package model

import (
	"bytes"
	"encoding/json"
)

// GiftCard is a stored-value card as it appears in the card fixture.
// Fields are kept as loaded; malformed values are tolerated downstream.
type GiftCard struct {
	GiftCardID      ID        `json:"GiftCardID" gorm:"column:gift_card_id;type:varchar(64);primaryKey"`
	GiftCardNumber  string    `json:"GiftCardNumber" gorm:"column:gift_card_number;size:64;index"`
	Status          string    `json:"Status" gorm:"column:status;size:32;index"`
	Balance         Money     `json:"Balance" gorm:"column:balance;type:varchar(64)"`
	PurchaseChannel string    `json:"PurchaseChannel" gorm:"column:purchase_channel;size:64"`
	DateCreated     Timestamp `json:"DateCreated" gorm:"column:date_created;type:varchar(40)"`
	IPAddress       string    `json:"IPAddress" gorm:"column:ip_address;size:45;index"`
	GeoLocation     string    `json:"GeoLocation" gorm:"column:geo_location;size:128"`

	// Position preserves fixture order for database-backed sources.
	Position int `json:"-" gorm:"column:position;not null;default:0;index"`
}

// TableName specifies the table for gift cards.
func (GiftCard) TableName() string {
	return "gift_cards"
}

type giftCardJSON struct {
	GiftCardID      ID        `json:"GiftCardID"`
	GiftCardNumber  Text      `json:"GiftCardNumber"`
	Status          Text      `json:"Status"`
	Balance         Money     `json:"Balance"`
	PurchaseChannel Text      `json:"PurchaseChannel"`
	DateCreated     Timestamp `json:"DateCreated"`
	IPAddress       Text      `json:"IPAddress"`
	GeoLocation     Text      `json:"GeoLocation"`
}

// UnmarshalJSON never rejects a record: fields of the wrong JSON type keep
// their raw text, and a non-object entry decodes to an empty card.
func (c *GiftCard) UnmarshalJSON(data []byte) error {
	*c = GiftCard{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	var raw giftCardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = GiftCard{
		GiftCardID:      raw.GiftCardID,
		GiftCardNumber:  string(raw.GiftCardNumber),
		Status:          string(raw.Status),
		Balance:         raw.Balance,
		PurchaseChannel: string(raw.PurchaseChannel),
		DateCreated:     raw.DateCreated,
		IPAddress:       string(raw.IPAddress),
		GeoLocation:     string(raw.GeoLocation),
	}
	return nil
}
