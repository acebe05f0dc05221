package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradeops/backend/internal/config"
	tradehttp "tradeops/backend/internal/http"
	"tradeops/backend/internal/scheduler"
	"tradeops/backend/internal/search"
	"tradeops/backend/internal/service"
	"tradeops/backend/internal/service/ai"
	"tradeops/backend/pkg/logger"
	"tradeops/backend/pkg/network"
	"tradeops/backend/pkg/snowflake"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.NodeID); err != nil {
		logger.Error("snowflake init failed", "module", "main", "error", err)
		os.Exit(1)
	}

	auth, err := service.NewAuthService(cfg.GuestUsername, cfg.GuestPassword, cfg.TokenTTL)
	if err != nil {
		logger.Error("auth init failed", "module", "main", "error", err)
		os.Exit(1)
	}

	admission := service.NewAdmissionService(cfg.RateLimit, cfg.RateWindow)

	factory := network.NewClientFactory(cfg.ProxyURL)
	collector := service.NewNewsService(
		search.NewDuckDuckGo(factory, cfg.SearchRegion, cfg.SearchTimeout),
		search.NewGoogleNews(factory, cfg.SearchRegion, cfg.SearchTimeout),
		cfg.SearchMaxResults,
		cfg.CollectMaxChars,
	)

	provider, err := ai.NewProvider(ai.Config{
		Provider: cfg.AIProvider,
		APIKey:   cfg.AIAPIKey,
		Model:    cfg.AIModel,
		BaseURL:  cfg.AIBaseURL,
	})
	if err != nil {
		// Run degraded rather than refusing to start: every report takes
		// the fallback path until the backend is configured.
		logger.Warn("generation backend not configured", "module", "main", "error", err)
		provider = nil
	}
	pacer := ai.NewRateLimiter(cfg.AIRatePerMin)

	analysis := service.NewAnalysisService(admission, collector, provider, pacer, cfg.AITimeout)

	sweeper := scheduler.New(admission, cfg.RateWindow)
	sweeper.Start()
	defer sweeper.Stop()

	e := tradehttp.NewRouter(auth, analysis)

	go func() {
		logger.Info("server starting", "module", "main", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Error("server stopped", "module", "main", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "module", "main", "error", err)
	}
	logger.Info("server stopped", "module", "main")
}
