package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	httpadapter "casa-boost/internal/adapter/http"
	"casa-boost/internal/adapter/postgres"
	"casa-boost/internal/adapter/rediscache"
	"casa-boost/internal/adapter/usecase"
	"casa-boost/internal/config"
	"casa-boost/internal/core/port"
	"casa-boost/internal/db"
)

// main is the entry point of the casa-boost service. It loads
// configuration, optionally runs migrations and seeding, wires the
// promotion engine over PostgreSQL (and Redis when configured), then starts
// the HTTP server. On a termination signal it shuts the server down
// gracefully.
func main() {
	// Best-effort .env load for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	// The sponsored-selection cache is optional: no address, or a Redis we
	// cannot reach, just means every homepage poll hits the store.
	var cache port.SponsoredCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctxPing, cancelPing := context.WithTimeout(ctx, 2*time.Second)
		err = client.Ping(ctxPing).Err()
		cancelPing()
		if err != nil {
			logger.Warn("redis unavailable, sponsored cache disabled", slog.Any("error", err))
		} else {
			cache = rediscache.NewSponsoredCache(client, cfg.Redis.SponsoredTTL)
			defer client.Close()
		}
	}

	repo := postgres.NewPromotionRepository(pool)
	listings := postgres.NewListingResolver(pool)
	svc := usecase.NewPromotionUseCase(repo, listings, cache)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
