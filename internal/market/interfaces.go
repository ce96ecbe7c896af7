package market

import (
	"context"

	"github.com/songzhibin97/coinlens/internal/models"
)

// Source 负责从上游行情提供方获取代币数据
type Source interface {
	// ListMarkets retrieves the category listing, ordered by descending market cap
	ListMarkets(ctx context.Context) ([]models.TokenSummary, error)

	// FetchCoin retrieves extended market data for a single token id
	FetchCoin(ctx context.Context, id string) (*models.TokenDetail, error)
}
