package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// StatusError reports a provider response with an unexpected HTTP status.
// It is distinguishable from ParseError so callers can tell a refused
// request apart from a garbled body.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("got unexpected status code %d with content: %s", e.StatusCode, e.Body)
}

// ParseError reports a provider body that could not be decoded into the
// expected daily time-series shape.
type ParseError struct {
	Body string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("got unknown response: %s", e.Body)
}

// DailyQuote is one day's entry in the provider's time series. The provider
// keys fields with numeric prefixes; only the ones the schema needs are
// mapped.
type DailyQuote struct {
	Open   string `json:"1. open"`
	Close  string `json:"4. close"`
	Volume string `json:"6. volume"`
}

// DailySeries is the decoded provider payload for one symbol.
type DailySeries struct {
	MetaData struct {
		Symbol string `json:"2. Symbol"`
	} `json:"Meta Data"`
	Days map[string]DailyQuote `json:"Time Series (Daily)"`
}

// Client fetches daily time-series data from the market-data provider.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient constructs a provider client. baseURL is the provider query
// endpoint (e.g. https://www.alphavantage.co/query).
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{},
	}
}

// FetchDailySeries requests the daily series for one symbol.
//
// Returns:
//   - *StatusError when the provider answers with a non-200 status.
//   - *ParseError when the body cannot be decoded or lacks the expected
//     top-level keys.
func (c *Client) FetchDailySeries(ctx context.Context, symbol string) (*DailySeries, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid provider url: %w", err)
	}
	v := url.Values{}
	v.Set("function", "TIME_SERIES_DAILY_ADJUSTED")
	v.Set("symbol", symbol)
	v.Set("apikey", c.apiKey)
	u.RawQuery = v.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var series DailySeries
	if err := json.Unmarshal(body, &series); err != nil {
		return nil, &ParseError{Body: string(body)}
	}
	// A well-formed error payload (rate-limit note, bad symbol) decodes
	// into empty fields; treat it the same as undecodable JSON.
	if series.MetaData.Symbol == "" || series.Days == nil {
		return nil, &ParseError{Body: string(body)}
	}
	return &series, nil
}
