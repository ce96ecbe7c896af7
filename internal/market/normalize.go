package market

import (
	"strings"

	"github.com/songzhibin97/coinlens/internal/models"
)

// Upstream payloads carry no enforced schema: fields may be absent, null, or
// of an unexpected type. Each accessor substitutes the stated default instead
// of treating a missing field as an error.

const missing = "N/A"

// sparklinePoints bounds the price history kept from the 7-day sparkline.
const sparklinePoints = 24

func getString(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return def
}

func getFloat(m map[string]any, key string) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return 0
}

func getFloatPtr(m map[string]any, key string) *float64 {
	if v, ok := m[key].(float64); ok {
		return &v
	}
	return nil
}

func getRank(m map[string]any, key string) *int {
	if v, ok := m[key].(float64); ok {
		rank := int(v)
		return &rank
	}
	return nil
}

func getObject(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

// getQuote reads a per-currency nested value such as
// market_data.current_price.usd from the detail payload.
func getQuote(md map[string]any, key, currency string) float64 {
	return getFloat(getObject(md, key), currency)
}

func getQuoteString(md map[string]any, key, currency string) string {
	return getString(getObject(md, key), currency, missing)
}

func getSymbol(m map[string]any) string {
	return strings.ToUpper(getString(m, "symbol", missing))
}

// sparklineTail extracts the trailing points of market_data.sparkline_7d.price.
// The result is never nil.
func sparklineTail(md map[string]any, n int) []float64 {
	raw, _ := getObject(md, "sparkline_7d")["price"].([]any)
	if len(raw) > n {
		raw = raw[len(raw)-n:]
	}
	prices := make([]float64, 0, len(raw))
	for _, p := range raw {
		if v, ok := p.(float64); ok {
			prices = append(prices, v)
		}
	}
	return prices
}

// SummaryFromMarkets maps one raw record of the /coins/markets listing into a
// TokenSummary, filling defaults for every absent field.
func SummaryFromMarkets(raw map[string]any) models.TokenSummary {
	return models.TokenSummary{
		ID:                       getString(raw, "id", ""),
		Name:                     getString(raw, "name", ""),
		Symbol:                   getSymbol(raw),
		Image:                    getString(raw, "image", ""),
		CurrentPrice:             getFloat(raw, "current_price"),
		MarketCap:                getFloat(raw, "market_cap"),
		MarketCapRank:            getRank(raw, "market_cap_rank"),
		TotalVolume:              getFloat(raw, "total_volume"),
		High24h:                  getFloat(raw, "high_24h"),
		Low24h:                   getFloat(raw, "low_24h"),
		PriceChange24h:           getFloat(raw, "price_change_24h"),
		PriceChangePercentage24h: getFloat(raw, "price_change_percentage_24h"),
		CirculatingSupply:        getFloat(raw, "circulating_supply"),
		TotalSupply:              getFloat(raw, "total_supply"),
		MaxSupply:                getFloatPtr(raw, "max_supply"),
		ATH:                      getFloat(raw, "ath"),
		ATHChangePercentage:      getFloat(raw, "ath_change_percentage"),
		ATL:                      getFloat(raw, "atl"),
		ATLChangePercentage:      getFloat(raw, "atl_change_percentage"),
		LastUpdated:              getString(raw, "last_updated", missing),
	}
}

// DetailFromCoin maps a raw /coins/{id} payload into a TokenDetail. Per-quote
// values (current price, caps, ATH/ATL) are read for the given quote currency.
func DetailFromCoin(raw map[string]any, currency string) *models.TokenDetail {
	md := getObject(raw, "market_data")
	img := getObject(raw, "image")

	return &models.TokenDetail{
		ID:     getString(raw, "id", ""),
		Name:   getString(raw, "name", ""),
		Symbol: getSymbol(raw),
		Image: models.ImageSet{
			Thumb: getString(img, "thumb", ""),
			Small: getString(img, "small", ""),
			Large: getString(img, "large", ""),
		},
		MarketCapRank:            getRank(raw, "market_cap_rank"),
		CurrentPrice:             getQuote(md, "current_price", currency),
		MarketCap:                getQuote(md, "market_cap", currency),
		TotalVolume:              getQuote(md, "total_volume", currency),
		High24h:                  getQuote(md, "high_24h", currency),
		Low24h:                   getQuote(md, "low_24h", currency),
		PriceChange24h:           getFloat(md, "price_change_24h"),
		PriceChangePercentage24h: getFloat(md, "price_change_percentage_24h"),
		CirculatingSupply:        getFloat(md, "circulating_supply"),
		TotalSupply:              getFloat(md, "total_supply"),
		MaxSupply:                getFloatPtr(md, "max_supply"),
		ATH:                      getQuote(md, "ath", currency),
		ATHChangePercentage:      getQuote(md, "ath_change_percentage", currency),
		ATHDate:                  getQuoteString(md, "ath_date", currency),
		ATL:                      getQuote(md, "atl", currency),
		ATLChangePercentage:      getQuote(md, "atl_change_percentage", currency),
		ATLDate:                  getQuoteString(md, "atl_date", currency),
		LastUpdated:              getString(raw, "last_updated", missing),
		PriceHistory:             sparklineTail(md, sparklinePoints),
	}
}
