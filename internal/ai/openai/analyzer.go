package openai

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/songzhibin97/coinlens/internal/models"
)

const (
	defaultModel = openai.GPT4oMini

	// Fixed generation parameters.
	temperature = 0.8
	maxTokens   = 1000
)

const systemPrompt = "You are a professional cryptocurrency analyst. Be concise, specific and data-driven. Do not open with generic introductions."

// OpenAIAnalyzer implements the ai.Analyzer interface using OpenAI
type OpenAIAnalyzer struct {
	client *openai.Client
	model  string
}

// NewOpenAIAnalyzer creates a new OpenAI analyzer instance
func NewOpenAIAnalyzer(apiKey string, model string) *OpenAIAnalyzer {
	return NewOpenAIAnalyzerWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewOpenAIAnalyzerWithConfig creates an analyzer from an explicit client
// config, letting callers point BaseURL at any compatible endpoint.
func NewOpenAIAnalyzerWithConfig(config openai.ClientConfig, model string) *OpenAIAnalyzer {
	if model == "" {
		model = defaultModel
	}
	return &OpenAIAnalyzer{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// GenerateInsight implements the ai.Analyzer interface
func (a *OpenAIAnalyzer) GenerateInsight(ctx context.Context, detail *models.TokenDetail) (string, error) {
	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: a.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildPrompt(detail),
				},
			},
			Temperature: temperature,
			MaxTokens:   maxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}

// buildPrompt interpolates the normalized market data into the analysis request.
func buildPrompt(d *models.TokenDetail) string {
	rank := "unranked"
	if d.MarketCapRank != nil {
		rank = fmt.Sprintf("#%d", *d.MarketCapRank)
	}

	return fmt.Sprintf(`Analyze the following cryptocurrency:

Name: %s (%s)
Market cap rank: %s
Current price: %s
Market cap: %s
24h volume: %s
24h high / low: %s / %s
24h change: %s (%.2f%%)
All-time high: %s (%.2f%% from ATH)
All-time low: %s (%.2f%% from ATL)
Circulating supply: %s
Total supply: %s
Price history (last 24 points of the 7d sparkline): %s

Provide:
1. Short-term outlook
2. Key support and resistance levels
3. Best buy and sell zones
4. Main risk factors
5. A final verdict: buy, hold, or avoid`,
		d.Name, d.Symbol,
		rank,
		formatNumber(d.CurrentPrice),
		formatNumber(d.MarketCap),
		formatNumber(d.TotalVolume),
		formatNumber(d.High24h), formatNumber(d.Low24h),
		formatNumber(d.PriceChange24h), d.PriceChangePercentage24h,
		formatNumber(d.ATH), d.ATHChangePercentage,
		formatNumber(d.ATL), d.ATLChangePercentage,
		formatNumber(d.CirculatingSupply),
		formatNumber(d.TotalSupply),
		formatHistory(d.PriceHistory))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatHistory(prices []float64) string {
	if len(prices) == 0 {
		return "unavailable"
	}
	parts := make([]string, len(prices))
	for i, p := range prices {
		parts[i] = formatNumber(p)
	}
	return strings.Join(parts, ", ")
}
