package configs

import (
	"os"
	"time"
)

const (
	defaultServerAddr = ":8080"
	defaultBaseURL    = "https://api.coingecko.com/api/v3"
	defaultCategory   = "artificial-intelligence"
	defaultCurrency   = "usd"

	// defaultHTTPTimeout bounds every outbound call; a hung upstream must not
	// hang the request forever.
	defaultHTTPTimeout = 15 * time.Second
)

type Config struct {
	// 服务监听地址
	ServerAddr string

	// 行情数据源配置
	Market MarketConfig

	// AI 模型参数
	AI AIConfig

	// HTTPTimeout applies to all outbound calls.
	HTTPTimeout time.Duration
}

type MarketConfig struct {
	BaseURL  string // 行情API基础地址
	Category string // 固定的市场分类
	Currency string // 计价货币
}

type AIConfig struct {
	APIKey string // AI服务API密钥
	Model  string // AI模型类型
}

// FromEnv builds the configuration from environment variables, substituting
// defaults for anything unset. An unparseable HTTP_TIMEOUT falls back to the
// default instead of failing startup.
func FromEnv() *Config {
	timeout := defaultHTTPTimeout
	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			timeout = parsed
		}
	}

	return &Config{
		ServerAddr: envOr("SERVER_ADDR", defaultServerAddr),
		Market: MarketConfig{
			BaseURL:  envOr("COINGECKO_BASE_URL", defaultBaseURL),
			Category: envOr("COINGECKO_CATEGORY", defaultCategory),
			Currency: envOr("VS_CURRENCY", defaultCurrency),
		},
		AI: AIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  os.Getenv("OPENAI_MODEL"),
		},
		HTTPTimeout: timeout,
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
