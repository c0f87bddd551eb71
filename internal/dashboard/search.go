package dashboard

import (
	"strings"

	"coindash/pkg/coinlore"
)

// FilterCoins keeps coins whose name or symbol contains query,
// case-insensitively. An empty query keeps everything.
func FilterCoins(coins []coinlore.Coin, query string) []coinlore.Coin {
	q := strings.ToLower(query)
	out := make([]coinlore.Coin, 0, len(coins))
	for _, c := range coins {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Symbol), q) {
			out = append(out, c)
		}
	}
	return out
}

// FilterExchanges keeps exchanges whose name contains query.
func FilterExchanges(exchanges []coinlore.Exchange, query string) []coinlore.Exchange {
	q := strings.ToLower(query)
	out := make([]coinlore.Exchange, 0, len(exchanges))
	for _, e := range exchanges {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	return out
}
