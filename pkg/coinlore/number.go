package coinlore

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a numeric field that Coinlore sends either as a JSON number or
// as a numeric string ("price_usd": "6456.52"). Anything else (null, "",
// "abc", objects, values outside float64 range) decodes without error into
// a Number that is not valid.
type Number struct {
	value decimal.Decimal
	valid bool
	blank bool // null or an empty string: not valid, but numeric as 0
}

// NewNumber returns a valid Number holding f. NaN and ±Inf are not valid.
func NewNumber(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}
	}
	return Number{value: decimal.NewFromFloat(f), valid: true}
}

// ParseNumber parses s the way the API's string fields are read.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{blank: true}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}
	}
	// "1e400" parses as a decimal but has no float64 value
	if f := d.InexactFloat64(); math.IsInf(f, 0) || math.IsNaN(f) {
		return Number{}
	}
	return Number{value: d, valid: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		*n = Number{}
	case bytes.Equal(data, []byte("null")):
		*n = Number{blank: true}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = Number{}
			return nil
		}
		*n = ParseNumber(s)
	default:
		*n = ParseNumber(string(data))
	}
	return nil
}

// Valid reports whether the field held a number.
func (n Number) Valid() bool { return n.valid }

// Numeric reports whether the field coerces to a number: a valid value, or
// null and "" which count as 0. Missing fields and garbage do not.
func (n Number) Numeric() bool { return n.valid || n.blank }

// Float coerces the field for arithmetic and comparison; invalid is 0.
func (n Number) Float() float64 {
	if !n.valid {
		return 0
	}
	return n.value.InexactFloat64()
}

// Decimal returns the exact parsed value, zero when invalid.
func (n Number) Decimal() decimal.Decimal {
	if !n.valid {
		return decimal.Zero
	}
	return n.value
}

func (n Number) String() string {
	if !n.valid {
		return ""
	}
	return n.value.String()
}
