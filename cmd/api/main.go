package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stellar-wallet-core/config"
	httpHandler "stellar-wallet-core/internal/adapter/http/handler"
	pgStorage "stellar-wallet-core/internal/adapter/storage/postgres"
	redisStorage "stellar-wallet-core/internal/adapter/storage/redis"
	"stellar-wallet-core/internal/app"
	"stellar-wallet-core/pkg/logger"
	"stellar-wallet-core/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("network", cfg.Network.Name).
		Msg("Starting Stellar wallet core")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("session.secret must be set")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate schema")
	}
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Metrics live on a private registry so only wallet collectors are exported
	var (
		m        *metrics.Metrics
		metricsH http.Handler
	)
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(registry)
		metricsH = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	wallet, err := app.New(cfg, app.Infra{Pool: pool, Redis: rdb, Metrics: m}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize wallet services")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Sessions:          wallet.Sessions,
		Keys:              wallet.Keys,
		Network:           wallet.Network,
		Fees:              wallet.Fees,
		Builder:           wallet.Builder,
		Paths:             wallet.Paths,
		Signer:            wallet.Signer,
		Submitter:         wallet.Submitter,
		Security:          wallet.Security,
		Flow:              wallet.Flow,
		Tokens:            wallet.Tokens,
		NetworkPassphrase: wallet.Passphrase,
		Defaults:          wallet.Defaults,
		RequestTimeout:    cfg.Server.RequestTimeout,
		RateLimitStore:    redisStorage.NewRateLimitStore(rdb),
		HealthCheckers:    wallet.Health,
		AuditSvc:          wallet.Audit,
		Metrics:           m,
		MetricsHandler:    metricsH,
		MetricsPath:       cfg.Metrics.Path,
		Logger:            log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// bounds how long in-flight requests may finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
