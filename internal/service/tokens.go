package service

import (
	"context"
	"log/slog"

	"github.com/songzhibin97/coinlens/internal/ai"
	"github.com/songzhibin97/coinlens/internal/market"
	"github.com/songzhibin97/coinlens/internal/models"
)

const (
	// insightUnavailable is attached when the generator itself failed.
	insightUnavailable = "AI analysis unavailable."
	// insightMissing is attached when the generator succeeded but produced no text.
	insightMissing = "No AI insight available."
)

// TokenService orchestrates the market source and the insight analyzer.
// Every operation degrades to an empty or nil result instead of returning an
// error: callers always get a well-formed response.
type TokenService struct {
	source   market.Source
	analyzer ai.Analyzer
	log      *slog.Logger
}

func NewTokenService(source market.Source, analyzer ai.Analyzer, log *slog.Logger) *TokenService {
	return &TokenService{
		source:   source,
		analyzer: analyzer,
		log:      log,
	}
}

// ListTokens returns the category listing, market-cap descending. Any upstream
// failure is logged and mapped to an empty slice.
func (s *TokenService) ListTokens(ctx context.Context) []models.TokenSummary {
	summaries, err := s.source.ListMarkets(ctx)
	if err != nil {
		s.log.Error("failed to list markets", "err", err)
		return []models.TokenSummary{}
	}
	return summaries
}

// GetToken returns the token's detail with generated commentary attached, or
// nil when the upstream fetch fails. An unknown id and a transport error are
// deliberately indistinguishable.
func (s *TokenService) GetToken(ctx context.Context, id string) *models.TokenInsight {
	detail, err := s.source.FetchCoin(ctx, id)
	if err != nil {
		s.log.Error("failed to fetch coin", "id", id, "err", err)
		return nil
	}

	insight, err := s.analyzer.GenerateInsight(ctx, detail)
	if err != nil {
		s.log.Error("failed to generate insight", "id", id, "err", err)
		insight = insightUnavailable
	} else if insight == "" {
		insight = insightMissing
	}

	return &models.TokenInsight{
		TokenDetail: *detail,
		AIInsight:   insight,
	}
}
