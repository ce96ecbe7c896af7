package models

// TokenSummary 代币列表视图
//
// Every field is always serialized. Fields absent upstream are filled with the
// stated default (0 for numbers, "N/A" for symbol and timestamps); nullable
// fields are pointers and encode as JSON null.
type TokenSummary struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	Symbol                   string   `json:"symbol"`
	Image                    string   `json:"image"`
	CurrentPrice             float64  `json:"current_price"`
	MarketCap                float64  `json:"market_cap"`
	MarketCapRank            *int     `json:"market_cap_rank"`
	TotalVolume              float64  `json:"total_volume"`
	High24h                  float64  `json:"high_24h"`
	Low24h                   float64  `json:"low_24h"`
	PriceChange24h           float64  `json:"price_change_24h"`
	PriceChangePercentage24h float64  `json:"price_change_percentage_24h"`
	CirculatingSupply        float64  `json:"circulating_supply"`
	TotalSupply              float64  `json:"total_supply"`
	MaxSupply                *float64 `json:"max_supply"`
	ATH                      float64  `json:"ath"`
	ATHChangePercentage      float64  `json:"ath_change_percentage"`
	ATL                      float64  `json:"atl"`
	ATLChangePercentage      float64  `json:"atl_change_percentage"`
	LastUpdated              string   `json:"last_updated"`
}

// ImageSet 代币图标的三种尺寸
type ImageSet struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

// TokenDetail 单个代币的扩展市场数据
//
// PriceHistory holds the last 24 points of the 7-day sparkline and is never
// nil, so it encodes as [] when the upstream sparkline is absent.
type TokenDetail struct {
	ID                       string    `json:"id"`
	Name                     string    `json:"name"`
	Symbol                   string    `json:"symbol"`
	Image                    ImageSet  `json:"image"`
	MarketCapRank            *int      `json:"market_cap_rank"`
	CurrentPrice             float64   `json:"current_price"`
	MarketCap                float64   `json:"market_cap"`
	TotalVolume              float64   `json:"total_volume"`
	High24h                  float64   `json:"high_24h"`
	Low24h                   float64   `json:"low_24h"`
	PriceChange24h           float64   `json:"price_change_24h"`
	PriceChangePercentage24h float64   `json:"price_change_percentage_24h"`
	CirculatingSupply        float64   `json:"circulating_supply"`
	TotalSupply              float64   `json:"total_supply"`
	MaxSupply                *float64  `json:"max_supply"`
	ATH                      float64   `json:"ath"`
	ATHChangePercentage      float64   `json:"ath_change_percentage"`
	ATHDate                  string    `json:"ath_date"`
	ATL                      float64   `json:"atl"`
	ATLChangePercentage      float64   `json:"atl_change_percentage"`
	ATLDate                  string    `json:"atl_date"`
	LastUpdated              string    `json:"last_updated"`
	PriceHistory             []float64 `json:"price_history"`
}

// TokenInsight is a TokenDetail with the generated analyst commentary attached.
type TokenInsight struct {
	TokenDetail
	AIInsight string `json:"ai_insight"`
}
