package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-backend/config"
	httpHandler "marketplace-backend/internal/adapter/http/handler"
	"marketplace-backend/internal/adapter/http/middleware"
	"marketplace-backend/internal/adapter/payment/stripeclient"
	pgStorage "marketplace-backend/internal/adapter/storage/postgres"
	redisStorage "marketplace-backend/internal/adapter/storage/redis"
	"marketplace-backend/internal/core/ports"
	"marketplace-backend/internal/service"
	"marketplace-backend/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Marketplace Backend")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	profileRepo := pgStorage.NewProfileRepo(pool)
	listingRepo := pgStorage.NewListingRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	shippingRepo := pgStorage.NewShippingAddressRepo(pool)
	connectRepo := pgStorage.NewConnectAccountRepo(pool)
	banRepo := pgStorage.NewBanRepo(pool)

	// Initialize Redis stores
	dedupStore := redisStorage.NewEventDedupStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize payment platform adapter
	platform := stripeclient.New(cfg.Stripe.SecretKey, cfg.Stripe.AccountCountry, log)
	webhookVerifier := stripeclient.NewVerifier(cfg.Stripe.WebhookSecret)

	// Initialize business services
	identityVerifier := service.NewJWTIdentityVerifier(cfg.Auth.JWTSecret)
	checkoutSvc := service.NewCheckoutService(
		listingRepo,
		orderRepo,
		shippingRepo,
		connectRepo,
		platform,
		cfg.Stripe.ApplicationFeePercent,
		log,
	)
	settlementSvc := service.NewSettlementService(orderRepo, listingRepo, connectRepo, dedupStore, log)
	connectSvc := service.NewConnectService(connectRepo, platform, log)
	adminSvc := service.NewAdminService(profileRepo, listingRepo, orderRepo, banRepo, cfg.Admin.BootstrapSecret, log)

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := middleware.NewHTTPMetrics(registry)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthChecker(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CheckoutSvc:      checkoutSvc,
		ConnectSvc:       connectSvc,
		SettlementSvc:    settlementSvc,
		AdminSvc:         adminSvc,
		WebhookVerifier:  webhookVerifier,
		IdentityVerifier: identityVerifier,
		ProfileRepo:      profileRepo,
		RateLimitStore:   rateLimitStore,
		HealthCheckers:   []ports.HealthChecker{pgHealth, redisHealth},
		Metrics:          httpMetrics,
		MetricsRegistry:  registry,
		SiteURL:          cfg.Site.URL,
		Logger:           log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
