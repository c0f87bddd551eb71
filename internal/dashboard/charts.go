package dashboard

import (
	"sort"

	"coindash/pkg/coinlore"
)

// Series is the labelled data behind one bar chart.
type Series struct {
	Labels []string
	Values []float64
}

func (s Series) Len() int { return len(s.Labels) }

// TopCoins returns the n most expensive coins. A null or empty price charts
// as 0; a missing or unparsable one leaves the coin out.
func TopCoins(coins []coinlore.Coin, n int) Series {
	priced := make([]coinlore.Coin, 0, len(coins))
	for _, c := range coins {
		if c.PriceUSD.Numeric() {
			priced = append(priced, c)
		}
	}
	sort.SliceStable(priced, func(i, j int) bool {
		return priced[i].PriceUSD.Float() > priced[j].PriceUSD.Float()
	})
	if len(priced) > n {
		priced = priced[:n]
	}

	s := Series{Labels: make([]string, len(priced)), Values: make([]float64, len(priced))}
	for i, c := range priced {
		s.Labels[i] = c.Name
		s.Values[i] = c.PriceUSD.Float()
	}
	return s
}

// TopExchanges returns the n exchanges with the highest positive volume.
func TopExchanges(exchanges []coinlore.Exchange, n int) Series {
	items := make([]exchangeVolume, 0, len(exchanges))
	for _, e := range exchanges {
		if v := e.VolumeUSD.Float(); v > 0 {
			items = append(items, exchangeVolume{name: e.Name, volume: v})
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].volume > items[j].volume
	})
	if len(items) > n {
		items = items[:n]
	}

	s := Series{Labels: make([]string, len(items)), Values: make([]float64, len(items))}
	for i, it := range items {
		s.Labels[i] = it.name
		s.Values[i] = it.volume
	}
	return s
}
