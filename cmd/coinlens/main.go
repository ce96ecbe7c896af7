package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	aiOpenAI "github.com/songzhibin97/coinlens/internal/ai/openai"
	"github.com/songzhibin97/coinlens/internal/configs"
	"github.com/songzhibin97/coinlens/internal/market/coingecko"
	"github.com/songzhibin97/coinlens/internal/server"
	"github.com/songzhibin97/coinlens/internal/service"
	"github.com/songzhibin97/coinlens/internal/utils/request"
)

var log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	AddSource:   true,
	Level:       slog.LevelDebug,
	ReplaceAttr: nil,
}))

func main() {
	// 加载环境配置
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found, using process environment")
	}

	config := configs.FromEnv()

	log.Debug("Loaded config", "addr", config.ServerAddr, "market", config.Market, "timeout", config.HTTPTimeout)

	if config.AI.APIKey == "" {
		log.Warn("OPENAI_API_KEY is not set, insight generation will degrade to fallback text")
	}

	// 初始化各个组件
	httpClient := request.New(config.HTTPTimeout)

	source := coingecko.NewClient(config.Market.BaseURL, config.Market.Category, config.Market.Currency, httpClient)

	log.Debug("init market source")

	analyzer := aiOpenAI.NewOpenAIAnalyzer(config.AI.APIKey, config.AI.Model)

	log.Debug("init analyzer")

	tokens := service.NewTokenService(source, analyzer, log)

	srv := &http.Server{
		Addr:    config.ServerAddr,
		Handler: server.NewRouter(tokens),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", "addr", config.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "err", err)
	}
}
