package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/cart"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/catalog"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/config"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/coupon"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/events"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/handler"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/middleware"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/order"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/pricing"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/router"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/service"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/store"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/validate"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting soofi-mandi API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the order store backend
	var orderStore store.OrderStore
	switch cfg.Store.Backend {
	case "redis":
		opts, err := redis.ParseURL(cfg.Store.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to parse redis URL: %w", err)
		}
		client := redis.NewClient(opts)
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		orderStore = store.NewRedisStore(client, logger)
		logger.Info().Msg("using redis order store")
	default:
		orderStore = store.NewMemoryStore(logger)
		logger.Info().Msg("using in-memory order store")
	}

	// Initialize domain components
	registry := coupon.NewRegistry(coupon.DefaultCoupons(), logger)
	engine := pricing.NewEngine(registry, pricing.Config{
		TaxRate:               cfg.Pricing.TaxRate,
		DeliveryCharge:        cfg.Pricing.DeliveryCharge,
		FreeDeliveryThreshold: cfg.Pricing.FreeDeliveryThreshold,
	}, logger)
	menuRepo := catalog.NewMemoryRepository(catalog.Seed(), logger)
	cartStore := cart.NewMemoryStore(cfg.Cart.TTL, logger)
	validator := validate.New()
	assembler := order.NewAssembler(menuRepo, engine, validator, cfg.Pricing.MinOrderAmount, logger)

	// Order lifecycle events go to the log and to Prometheus
	bus := &events.Bus{
		Notifiers: []events.Notifier{
			events.LogNotifier{Logger: logger},
			events.NewMetricsNotifier(cfg.Metrics.Namespace, nil),
		},
	}

	// Initialize services
	menuService := service.NewMenuService(menuRepo, logger)
	cartService := service.NewCartService(cartStore, menuRepo, engine, logger)
	orderService := service.NewOrderService(cartStore, assembler, orderStore, bus, cfg.Checkout.FailureRate, logger)

	// Initialize HTTP handlers
	menuHandler := handler.NewMenuHandler(menuService, validator, logger)
	cartHandler := handler.NewCartHandler(cartService, validator, logger)
	orderHandler := handler.NewOrderHandler(orderService, validator, logger)

	// Initialize router
	mux := router.New(menuHandler, cartHandler, orderHandler, router.Config{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Metrics:        middleware.NewHTTPMetrics(cfg.Metrics.Namespace, nil),
	}, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
