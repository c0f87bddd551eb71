package coinlore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type RESTClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRESTClient creates a client for baseURL (e.g. DefaultBaseURL).
// A zero timeout leaves requests bounded only by their context.
func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// HTTPClient returns the underlying client carrying the request timeout.
func (c *RESTClient) HTTPClient() *http.Client {
	return c.httpClient
}

// GetTickers fetches the coin list from /api/tickers/.
func (c *RESTClient) GetTickers(ctx context.Context) ([]Coin, error) {
	body, err := c.get(ctx, TickersPath)
	if err != nil {
		return nil, err
	}
	return ParseTickers(body)
}

// GetExchanges fetches and normalizes /api/exchanges/.
func (c *RESTClient) GetExchanges(ctx context.Context) ([]Exchange, error) {
	body, err := c.get(ctx, ExchangesPath)
	if err != nil {
		return nil, err
	}
	return ParseExchanges(body)
}

func (c *RESTClient) get(ctx context.Context, path string) ([]byte, error) {
	endpoint := c.baseURL + path

	// Construct the GET request with context for timeout/cancel support
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	// Execute the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request %s: %w", path, err)
	}
	defer resp.Body.Close()

	// Check HTTP status code
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("coinlore error %s: %s: %s", path, resp.Status, body)
	}

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body %s: %w", path, err)
	}
	return body, nil
}
