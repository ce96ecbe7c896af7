package ai

import (
	"context"

	"github.com/songzhibin97/coinlens/internal/models"
)

// Analyzer defines methods for AI-generated token commentary
type Analyzer interface {
	// GenerateInsight produces a short analyst commentary for the given token
	GenerateInsight(ctx context.Context, detail *models.TokenDetail) (string, error)
}
