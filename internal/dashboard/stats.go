package dashboard

import "coindash/pkg/coinlore"

// NoCoin is shown as the top coin when the coin list is empty.
const NoCoin = "-"

type Stats struct {
	TotalExchanges int
	MeanPrice      float64
	TopCoin        string
}

// ComputeStats summarizes the datasets. Prices are coerced, so a
// non-numeric price counts as 0 in the mean and never wins the top spot
// over a positive one.
func ComputeStats(coins []coinlore.Coin, exchanges []coinlore.Exchange) Stats {
	stats := Stats{
		TotalExchanges: len(exchanges),
		TopCoin:        NoCoin,
	}
	if len(coins) == 0 {
		return stats
	}

	var sum float64
	top := coins[0]
	for _, c := range coins {
		price := c.PriceUSD.Float()
		sum += price
		if price > top.PriceUSD.Float() {
			top = c
		}
	}

	stats.MeanPrice = sum / float64(len(coins))
	stats.TopCoin = top.Name
	return stats
}
