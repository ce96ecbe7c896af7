package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/songzhibin97/coinlens/internal/market"
	"github.com/songzhibin97/coinlens/internal/models"
)

const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Client implements market.Source against the CoinGecko v3 API.
type Client struct {
	baseURL    string
	category   string
	currency   string
	httpClient *resty.Client
}

func NewClient(baseURL, category, currency string, httpClient *resty.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		category:   category,
		currency:   currency,
		httpClient: httpClient,
	}
}

// ListMarkets implements market.Source. It fetches the first 100 tokens of
// the configured category, ordered by descending market cap.
func (c *Client) ListMarkets(ctx context.Context) ([]models.TokenSummary, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"vs_currency": c.currency,
			"category":    c.category,
			"order":       "market_cap_desc",
			"per_page":    "100",
			"page":        "1",
			"sparkline":   "false",
		}).
		Get(c.baseURL + "/coins/markets")
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	var raw []map[string]any
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	summaries := make([]models.TokenSummary, 0, len(raw))
	for _, record := range raw {
		summaries = append(summaries, market.SummaryFromMarkets(record))
	}
	return summaries, nil
}

// FetchCoin implements market.Source. Tickers, localization, community and
// developer blocks are disabled; market data and the 7-day sparkline are on.
func (c *Client) FetchCoin(ctx context.Context, id string) (*models.TokenDetail, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"localization":   "false",
			"tickers":        "false",
			"market_data":    "true",
			"community_data": "false",
			"developer_data": "false",
			"sparkline":      "true",
		}).
		Get(fmt.Sprintf("%s/coins/%s", c.baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	var raw map[string]any
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return market.DetailFromCoin(raw, c.currency), nil
}
