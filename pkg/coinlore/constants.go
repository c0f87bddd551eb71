package coinlore

const (
	DefaultBaseURL = "https://api.coinlore.net"

	TickersPath   = "/api/tickers/"
	ExchangesPath = "/api/exchanges/"
)
