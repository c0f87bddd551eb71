package coinlore

import (
	"testing"
)

// go test -v --run TestParseExchangesMapping
func TestParseExchangesMapping(t *testing.T) {
	body := []byte(`{"a": {"name": "Alpha", "volume_usd": 10}, "b": {"name": "Beta", "volume_usd": "20.5"}}`)

	list, err := ParseExchanges(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 exchanges, got %d", len(list))
	}
	if list[0].Name != "Alpha" || list[0].VolumeUSD.Float() != 10 {
		t.Errorf("unexpected first entry: %+v", list[0])
	}
	if list[1].Name != "Beta" || list[1].VolumeUSD.Float() != 20.5 {
		t.Errorf("unexpected second entry: %+v", list[1])
	}
}

// go test -v --run TestParseExchangesKeyOrder
func TestParseExchangesKeyOrder(t *testing.T) {
	body := []byte(`{"z": {"name": "Z"}, "10": {"name": "Ten"}, "2": {"name": "Two"}, "a": {"name": "A"}, "01": {"name": "Padded"}}`)

	list, err := ParseExchanges(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Two", "Ten", "Z", "A", "Padded"}
	if len(list) != len(want) {
		t.Fatalf("expected %d exchanges, got %d", len(want), len(list))
	}
	for i, name := range want {
		if list[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, list[i].Name)
		}
	}
}

func TestParseExchangesShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"array", `[{"name": "A"}, {"name": "B"}, {"name": "C"}]`, 3},
		{"empty object", `{}`, 0},
		{"string", `"nope"`, 0},
		{"number", `42`, 0},
		{"null", `null`, 0},
		{"array with junk", `[1, null, {"name": "A"}]`, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := ParseExchanges([]byte(tc.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(list) != tc.want {
				t.Errorf("expected %d, got %d", tc.want, len(list))
			}
		})
	}
}

func TestParseExchangesInvalidJSON(t *testing.T) {
	if _, err := ParseExchanges([]byte(`{"a":`)); err == nil {
		t.Fatal("expected error for truncated body, got nil")
	}
}

// go test -v --run TestParseTickers
func TestParseTickers(t *testing.T) {
	body := []byte(`{"data": [
		{"id": "90", "symbol": "BTC", "name": "Bitcoin", "rank": 1, "price_usd": "6456.52"},
		{"id": "80", "symbol": "ETH", "name": "Ethereum", "rank": 2, "price_usd": 3200}
	], "info": {"coins_num": 2}}`)

	coins, err := ParseTickers(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coins) != 2 {
		t.Fatalf("expected 2 coins, got %d", len(coins))
	}
	if coins[0].Symbol != "BTC" || coins[0].PriceUSD.Float() != 6456.52 {
		t.Errorf("unexpected coin: %+v", coins[0])
	}
	if coins[1].Rank.Float() != 2 || coins[1].PriceUSD.Float() != 3200 {
		t.Errorf("unexpected coin: %+v", coins[1])
	}
}

func TestParseTickersMissingData(t *testing.T) {
	for _, body := range []string{`{}`, `{"data": {"a": 1}}`, `{"data": null}`, `[]`, `"x"`} {
		coins, err := ParseTickers([]byte(body))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", body, err)
		}
		if coins == nil || len(coins) != 0 {
			t.Errorf("%s: expected empty non-nil list, got %v", body, coins)
		}
	}

	if _, err := ParseTickers([]byte(`{"data": [`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestCoinLenientFields(t *testing.T) {
	coins, err := ParseTickers([]byte(`{"data": [{"name": 42, "symbol": null, "rank": "3", "price_usd": "abc"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := coins[0]
	if c.Name != "42" || c.Symbol != "" {
		t.Errorf("unexpected text fields: %+v", c)
	}
	if !c.Rank.Valid() || c.Rank.Float() != 3 {
		t.Errorf("expected rank 3, got %v", c.Rank)
	}
	if c.PriceUSD.Valid() || c.PriceUSD.Float() != 0 {
		t.Errorf("expected invalid price coerced to 0, got %v", c.PriceUSD)
	}
}

func TestExchangePairCount(t *testing.T) {
	list, err := ParseExchanges([]byte(`[{"name": "A", "pairs": [{}, {}, {}]}, {"name": "B"}, {"name": "C", "pairs": 7}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n, ok := list[0].PairCount(); !ok || n != 3 {
		t.Errorf("expected 3 pairs, got %d (%v)", n, ok)
	}
	if _, ok := list[1].PairCount(); ok {
		t.Error("expected no pairs for missing field")
	}
	if _, ok := list[2].PairCount(); ok {
		t.Error("expected no pairs for non-array field")
	}
}
