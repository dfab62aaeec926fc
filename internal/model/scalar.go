package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var jsonNull = []byte("null")

// ID is a record identifier that may arrive as a JSON string or number.
// Its canonical form is the decoded text, so 7 and "7" compare equal.
type ID string

// UnmarshalJSON accepts strings, numbers and null. Anything else is kept as raw text.
func (id *ID) UnmarshalJSON(data []byte) error {
	*id = ID(decodeText(data))
	return nil
}

// MarshalJSON writes integer IDs as JSON numbers and everything else as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(string(id)), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// Text is a display field that tolerates non-string JSON: numbers, booleans,
// objects and arrays keep their raw JSON text and null is empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text(decodeText(data))
	return nil
}

// decodeText returns the value of a JSON string, "" for null, and the raw
// text for anything else, including malformed strings.
func decodeText(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return ""
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return s
		}
	}
	return string(data)
}

// Money is a tolerant numeric value. Raw keeps the source text so that
// malformed amounts are still displayable.
type Money struct {
	Decimal decimal.Decimal
	Raw     string
	Valid   bool
}

// NewMoney returns a valid Money holding d.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d, Raw: d.String(), Valid: true}
}

// ParseMoney never fails; unparsable text yields an invalid Money carrying raw.
func ParseMoney(raw string) Money {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Money{}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{Raw: raw}
	}
	return Money{Decimal: d, Raw: raw, Valid: true}
}

// Present reports whether the value is numeric and non-zero.
func (m Money) Present() bool {
	return m.Valid && !m.Decimal.IsZero()
}

func (m Money) String() string {
	if m.Valid {
		return m.Decimal.String()
	}
	return m.Raw
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*m = Money{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*m = ParseMoney(s)
			return nil
		}
	}
	*m = ParseMoney(string(data))
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	switch {
	case m.Valid:
		return []byte(m.Decimal.String()), nil
	case m.Raw != "":
		return json.Marshal(m.Raw)
	default:
		return jsonNull, nil
	}
}

// Value implements driver.Valuer.
func (m Money) Value() (driver.Value, error) {
	if !m.Valid && m.Raw == "" {
		return nil, nil
	}
	return m.String(), nil
}

// Scan implements sql.Scanner.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = Money{}
	case []byte:
		*m = ParseMoney(string(v))
	case string:
		*m = ParseMoney(v)
	case float64:
		*m = NewMoney(decimal.NewFromFloat(v))
	case int64:
		*m = NewMoney(decimal.NewFromInt(v))
	default:
		return fmt.Errorf("scan money: unsupported type %T", src)
	}
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Timestamp keeps the source text of a date or date-time alongside the
// parsed time when one of the known layouts matches.
type Timestamp struct {
	Time  time.Time
	Raw   string
	Valid bool
}

// ParseTimestamp never fails; unknown layouts yield an invalid Timestamp carrying raw.
func ParseTimestamp(raw string) Timestamp {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Timestamp{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Timestamp{Time: t, Raw: raw, Valid: true}
		}
	}
	return Timestamp{Raw: raw}
}

// NewTimestamp formats t with layout and keeps both.
func NewTimestamp(t time.Time, layout string) Timestamp {
	return Timestamp{Time: t, Raw: t.Format(layout), Valid: true}
}

func (ts Timestamp) String() string { return ts.Raw }

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*ts = Timestamp{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*ts = ParseTimestamp(s)
			return nil
		}
	}
	*ts = ParseTimestamp(string(data))
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.Raw == "" {
		return jsonNull, nil
	}
	return json.Marshal(ts.Raw)
}

// Value implements driver.Valuer.
func (ts Timestamp) Value() (driver.Value, error) {
	if ts.Raw == "" {
		return nil, nil
	}
	return ts.Raw, nil
}

// Scan implements sql.Scanner.
func (ts *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts = Timestamp{}
	case []byte:
		*ts = ParseTimestamp(string(v))
	case string:
		*ts = ParseTimestamp(v)
	case time.Time:
		*ts = NewTimestamp(v, "2006-01-02T15:04:05")
	default:
		return fmt.Errorf("scan timestamp: unsupported type %T", src)
	}
	return nil
}
