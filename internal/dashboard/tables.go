package dashboard

import (
	"sort"
	"strconv"

	"coindash/pkg/coinlore"
)

// NoPairs is shown when an exchange has no pairs list.
const NoPairs = "-"

type CoinRow struct {
	Rank   string
	Name   string
	Symbol string
	Price  string
}

type ExchangeRow struct {
	Index  int
	Name   string
	Pairs  string
	Volume string
}

// CoinRows sorts coins by ascending rank and formats them. The sort is
// stable; coins without a numeric rank go last in their original order
// and display their 1-based row position instead.
func CoinRows(coins []coinlore.Coin) []CoinRow {
	sorted := make([]coinlore.Coin, len(coins))
	copy(sorted, coins)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Rank, sorted[j].Rank
		if !a.Valid() || !b.Valid() {
			return a.Valid() && !b.Valid()
		}
		return a.Decimal().LessThan(b.Decimal())
	})

	rows := make([]CoinRow, len(sorted))
	for i, c := range sorted {
		rank := c.Rank.String()
		if !c.Rank.Valid() {
			rank = strconv.Itoa(i + 1)
		}
		rows[i] = CoinRow{
			Rank:   rank,
			Name:   c.Name,
			Symbol: c.Symbol,
			Price:  FormatUSD(c.PriceUSD.Float()),
		}
	}
	return rows
}

type exchangeVolume struct {
	name   string
	pairs  string
	volume float64
}

// ExchangeRows keeps exchanges with a positive volume, orders them by
// descending volume and numbers them from 1.
func ExchangeRows(exchanges []coinlore.Exchange) []ExchangeRow {
	items := make([]exchangeVolume, 0, len(exchanges))
	for _, e := range exchanges {
		v := e.VolumeUSD.Float()
		if v <= 0 {
			continue
		}
		pairs := NoPairs
		if n, ok := e.PairCount(); ok {
			pairs = strconv.Itoa(n)
		}
		items = append(items, exchangeVolume{name: e.Name, pairs: pairs, volume: v})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].volume > items[j].volume
	})

	rows := make([]ExchangeRow, len(items))
	for i, it := range items {
		rows[i] = ExchangeRow{
			Index:  i + 1,
			Name:   it.name,
			Pairs:  it.pairs,
			Volume: FormatUSD(it.volume),
		}
	}
	return rows
}
