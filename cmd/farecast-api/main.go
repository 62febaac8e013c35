// README: Entry point; loads config, wires the quote pipeline, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"farecast/internal/config"
	httptransport "farecast/internal/http"
	"farecast/internal/infra"
	"farecast/internal/ml"
	"farecast/internal/modules/distance"
	"farecast/internal/modules/geocode"
	"farecast/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	logger := infra.NewLogger("farecast-api")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache geocode.Cache = geocode.NewMemoryCache()
	if cfg.Redis.Addr != "" {
		cache = geocode.NewRedisCache(infra.NewRedis(cfg.Redis.Addr))
		logger.Info("using redis geocode cache", zap.String("addr", cfg.Redis.Addr))
	}
	geocoder := geocode.NewResolver(cfg.Geocode, cache)

	var router distance.Router
	if cfg.Routing.Provider == "gmaps" {
		router, err = distance.NewGoogleRouter(cfg.Routing.GoogleAPIKey)
		if err != nil {
			logger.Fatal("google router init", zap.Error(err))
		}
	} else {
		router = distance.NewOSRMRouter(cfg.Routing.OSRMBaseURL, &http.Client{Timeout: cfg.Routing.Timeout})
	}
	distanceResolver := distance.NewResolver(geocoder, router, cfg.Routing.Timeout, cfg.Routing.FallbackKm, logger)

	rates := cfg.Rates
	if cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.Warn("database unavailable, using default rate table", zap.Error(err))
		} else {
			defer pool.Close()
			store := pricing.NewStore(pool)
			if loaded, err := store.LoadRates(ctx, cfg.Rates); err != nil {
				logger.Warn("rate overrides unavailable, using default rate table", zap.Error(err))
			} else {
				rates = loaded
				logger.Info("rate table loaded from database")
			}
		}
	}

	var model ml.PriceModel
	if cfg.AI.GeminiKey != "" {
		gm, err := ml.NewGeminiModel(ctx, cfg.AI.GeminiKey)
		if err != nil {
			logger.Warn("price model init failed, using rule engine only", zap.Error(err))
		} else {
			defer gm.Close()
			model = gm
			logger.Info("learned price model enabled")
		}
	}

	pricingSvc := pricing.NewService(rates, distanceResolver, model, logger)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      httptransport.NewRouter(pricingSvc, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
