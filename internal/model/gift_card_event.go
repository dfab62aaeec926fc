package model

import (
	"bytes"
	"encoding/json"
)

// GiftCardEvent is a timestamped lifecycle occurrence tied to one gift card.
type GiftCardEvent struct {
	EventID     ID        `json:"EventID" gorm:"column:event_id;type:varchar(64);primaryKey"`
	GiftCardID  ID        `json:"GiftCardID" gorm:"column:gift_card_id;type:varchar(64);not null;index"`
	EventType   string    `json:"EventType" gorm:"column:event_type;size:64;index"`
	EventDate   Timestamp `json:"EventDate" gorm:"column:event_date;type:varchar(40)"`
	Amount      Money     `json:"Amount" gorm:"column:amount;type:varchar(64)"`
	ErrorCode   string    `json:"ErrorCode,omitempty" gorm:"column:error_code;size:64"`
	IPAddress   string    `json:"IPAddress" gorm:"column:ip_address;size:45"`
	GeoLocation string    `json:"GeoLocation" gorm:"column:geo_location;size:128"`

	Position int `json:"-" gorm:"column:position;not null;default:0;index"`
}

// TableName specifies the table for gift card events.
func (GiftCardEvent) TableName() string {
	return "gift_card_events"
}

// HasError reports whether the event carries an error code.
func (e GiftCardEvent) HasError() bool {
	return e.ErrorCode != ""
}

type giftCardEventJSON struct {
	EventID     ID        `json:"EventID"`
	GiftCardID  ID        `json:"GiftCardID"`
	EventType   Text      `json:"EventType"`
	EventDate   Timestamp `json:"EventDate"`
	Amount      Money     `json:"Amount"`
	ErrorCode   Text      `json:"ErrorCode"`
	IPAddress   Text      `json:"IPAddress"`
	GeoLocation Text      `json:"GeoLocation"`
}

// UnmarshalJSON never rejects a record: fields of the wrong JSON type keep
// their raw text, and a non-object entry decodes to an empty event.
func (e *GiftCardEvent) UnmarshalJSON(data []byte) error {
	*e = GiftCardEvent{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	var raw giftCardEventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = GiftCardEvent{
		EventID:     raw.EventID,
		GiftCardID:  raw.GiftCardID,
		EventType:   string(raw.EventType),
		EventDate:   raw.EventDate,
		Amount:      raw.Amount,
		ErrorCode:   string(raw.ErrorCode),
		IPAddress:   string(raw.IPAddress),
		GeoLocation: string(raw.GeoLocation),
	}
	return nil
}
