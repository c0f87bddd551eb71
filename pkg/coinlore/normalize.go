package coinlore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// TickersResponse is the /api/tickers/ envelope.
type TickersResponse struct {
	Data json.RawMessage `json:"data"`
}

// ParseTickers extracts the coin list from a tickers body. A body that is
// not an object, or whose "data" is missing or not an array, yields an
// empty list. Only syntactically invalid JSON is an error.
func ParseTickers(body []byte) ([]Coin, error) {
	if !json.Valid(body) {
		return nil, errors.New("decode tickers: invalid JSON")
	}

	var envelope TickersResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return []Coin{}, nil // not an object
	}

	var coins []Coin
	if err := json.Unmarshal(envelope.Data, &coins); err != nil || coins == nil {
		return []Coin{}, nil
	}
	return coins, nil
}

// ParseExchanges normalizes the exchanges body into a sequence. Coinlore
// serves it as an index-keyed object ({"0": {...}, "1": {...}}); an array is
// taken as is, an object contributes its values, anything else is empty.
func ParseExchanges(body []byte) ([]Exchange, error) {
	if !json.Valid(body) {
		return nil, errors.New("decode exchanges: invalid JSON")
	}

	trimmed := bytes.TrimSpace(body)
	switch trimmed[0] {
	case '[':
		var list []Exchange
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode exchanges array: %w", err)
		}
		return list, nil
	case '{':
		values, err := objectValues(trimmed)
		if err != nil {
			return nil, fmt.Errorf("decode exchanges object: %w", err)
		}
		list := make([]Exchange, len(values))
		for i, raw := range values {
			if err := json.Unmarshal(raw, &list[i]); err != nil {
				return nil, fmt.Errorf("decode exchange %d: %w", i, err)
			}
		}
		return list, nil
	default:
		return []Exchange{}, nil
	}
}

type member struct {
	key   string
	value json.RawMessage
}

// objectValues returns the values of a JSON object in property order:
// array-index keys ascending, then the other keys in document order.
// A repeated key keeps its first position and its last value.
func objectValues(data []byte) ([]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // {
		return nil, err
	}

	var members []member
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if i, dup := seen[key]; dup {
			members[i].value = value
			continue
		}
		seen[key] = len(members)
		members = append(members, member{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil && err != io.EOF { // }
		return nil, err
	}

	sort.SliceStable(members, func(i, j int) bool {
		a, aIdx := arrayIndex(members[i].key)
		b, bIdx := arrayIndex(members[j].key)
		switch {
		case aIdx && bIdx:
			return a < b
		case aIdx:
			return true
		default:
			return false
		}
	})

	values := make([]json.RawMessage, len(members))
	for i, m := range members {
		values[i] = m.value
	}
	return values, nil
}

// arrayIndex reports whether key is a canonical array index ("0", "42",
// but not "01" or "-1").
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == 1<<32-1 {
		return 0, false
	}
	return n, true
}
