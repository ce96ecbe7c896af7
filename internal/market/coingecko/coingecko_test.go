package coingecko

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, path string, query map[string]string, status int, response any) (*httptest.Server, *Client) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, path, r.URL.Path)
		for key, want := range query {
			assert.Equal(t, want, r.URL.Query().Get(key), "query param %s", key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		err := json.NewEncoder(w).Encode(response)
		require.NoError(t, err)
	}))

	client := NewClient(server.URL, "artificial-intelligence", "usd", resty.NewWithClient(server.Client()))

	return server, client
}

func TestClient_ListMarkets(t *testing.T) {
	response := []map[string]any{
		{"id": "bitcoin", "symbol": "btc", "current_price": 42000.0, "market_cap_rank": 1.0},
		{"id": "ethereum", "symbol": "eth"},
	}

	server, client := setupTestServer(t, "/coins/markets", map[string]string{
		"vs_currency": "usd",
		"category":    "artificial-intelligence",
		"order":       "market_cap_desc",
		"per_page":    "100",
		"page":        "1",
		"sparkline":   "false",
	}, http.StatusOK, response)
	defer server.Close()

	summaries, err := client.ListMarkets(context.Background())
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "bitcoin", summaries[0].ID)
	assert.Equal(t, "BTC", summaries[0].Symbol)
	assert.Equal(t, 42000.0, summaries[0].CurrentPrice)
	require.NotNil(t, summaries[0].MarketCapRank)
	assert.Equal(t, 1, *summaries[0].MarketCapRank)

	// partial second record still normalizes with defaults
	assert.Equal(t, "ETH", summaries[1].Symbol)
	assert.Zero(t, summaries[1].CurrentPrice)
	assert.Nil(t, summaries[1].MarketCapRank)
}

func TestClient_ListMarkets_UpstreamError(t *testing.T) {
	server, client := setupTestServer(t, "/coins/markets", nil, http.StatusTooManyRequests, map[string]any{"error": "rate limited"})
	defer server.Close()

	summaries, err := client.ListMarkets(context.Background())
	assert.Error(t, err)
	assert.Nil(t, summaries)
	assert.Contains(t, err.Error(), "unexpected status code")
}

func TestClient_ListMarkets_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL, "artificial-intelligence", "usd", resty.New())

	summaries, err := client.ListMarkets(context.Background())
	assert.Error(t, err)
	assert.Nil(t, summaries)
}

func TestClient_FetchCoin(t *testing.T) {
	response := map[string]any{
		"id":     "bitcoin",
		"symbol": "btc",
		"market_data": map[string]any{
			"current_price": map[string]any{"usd": 42000.0},
			"sparkline_7d":  map[string]any{"price": []float64{1, 2, 3}},
		},
	}

	server, client := setupTestServer(t, "/coins/bitcoin", map[string]string{
		"localization":   "false",
		"tickers":        "false",
		"market_data":    "true",
		"community_data": "false",
		"developer_data": "false",
		"sparkline":      "true",
	}, http.StatusOK, response)
	defer server.Close()

	detail, err := client.FetchCoin(context.Background(), "bitcoin")
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "bitcoin", detail.ID)
	assert.Equal(t, "BTC", detail.Symbol)
	assert.Equal(t, 42000.0, detail.CurrentPrice)
	assert.Equal(t, []float64{1, 2, 3}, detail.PriceHistory)
}

func TestClient_FetchCoin_NotFound(t *testing.T) {
	server, client := setupTestServer(t, "/coins/unknown", nil, http.StatusNotFound, map[string]any{"error": "coin not found"})
	defer server.Close()

	detail, err := client.FetchCoin(context.Background(), "unknown")
	assert.Error(t, err)
	assert.Nil(t, detail)
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("", "artificial-intelligence", "usd", resty.New())
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
