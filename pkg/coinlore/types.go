package coinlore

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Coin is one entry of the /api/tickers/ "data" list.
type Coin struct {
	Rank     Number `json:"rank"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	PriceUSD Number `json:"price_usd"`
}

// Exchange is one entry of the /api/exchanges/ payload.
type Exchange struct {
	Name      string          `json:"name"`
	VolumeUSD Number          `json:"volume_usd"`
	Pairs     json.RawMessage `json:"pairs,omitempty"` // only the length is used
}

// PairCount returns the number of listed pairs, or false when the
// exchange carries no pairs array.
func (e Exchange) PairCount() (int, bool) {
	raw := bytes.TrimSpace(e.Pairs)
	if len(raw) == 0 || raw[0] != '[' {
		return 0, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0, false
	}
	return len(items), true
}

// UnmarshalJSON decodes leniently: fields of the wrong type are left
// empty instead of failing the whole payload.
func (c *Coin) UnmarshalJSON(data []byte) error {
	fields, ok := objectFields(data)
	*c = Coin{}
	if !ok {
		return nil
	}
	_ = c.Rank.UnmarshalJSON(fields["rank"])
	_ = c.PriceUSD.UnmarshalJSON(fields["price_usd"])
	c.Name = text(fields["name"])
	c.Symbol = text(fields["symbol"])
	return nil
}

func (e *Exchange) UnmarshalJSON(data []byte) error {
	fields, ok := objectFields(data)
	*e = Exchange{}
	if !ok {
		return nil
	}
	_ = e.VolumeUSD.UnmarshalJSON(fields["volume_usd"])
	e.Name = text(fields["name"])
	if raw, ok := fields["pairs"]; ok {
		e.Pairs = append(json.RawMessage(nil), raw...)
	}
	return nil
}

func objectFields(data []byte) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// text reads a JSON string, or the literal text of a number or bool.
func text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return ""
	case '{', '[', 'n':
		return ""
	default:
		if _, err := strconv.ParseFloat(string(raw), 64); err == nil {
			return string(raw)
		}
		if b, err := strconv.ParseBool(string(raw)); err == nil {
			return strconv.FormatBool(b)
		}
		return ""
	}
}
