package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starsystem-server/internal/galaxy"
	"starsystem-server/internal/middleware"
	"starsystem-server/internal/server"
	"starsystem-server/internal/shared/config"
	"starsystem-server/internal/shared/logger"
	"starsystem-server/internal/shared/redis"
)

const (
	memoryCacheEntries = 10000
	registryCapacity   = 32
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal("Failed to initialize configuration:", err)
	}
	logger.Init()

	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.GlobalConfig
	logger := slog.With("component", "main")

	redisClient, err := redis.Connect()
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	var cache galaxy.Cache
	if redisClient != nil {
		cache = galaxy.NewRedisCache(redisClient.Client, cfg.Redis.CacheTTL)
	} else {
		cache = galaxy.NewMemoryCache(cfg.Redis.CacheTTL, memoryCacheEntries)
	}

	galaxyService := galaxy.NewService(
		cache,
		galaxy.NewRegistry(registryCapacity),
		cfg.Galaxy,
		slog.With("component", "galaxy"),
	)

	mux := server.NewRoutes(galaxyService, redisClient, slog.Default()).Setup()

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
		Enabled:           cfg.RateLimit.Enabled,
		TrustProxy:        cfg.RateLimit.TrustProxy,
	})
	defer rateLimiter.Stop()

	cors := middleware.NewCORS()
	handler := middleware.RequestLogger(cors.Middleware(rateLimiter.Middleware(mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Star system server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"redis_enabled", redisClient != nil,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
