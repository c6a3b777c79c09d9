package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Pricing  PricingConfig
	Cart     CartConfig
	Store    StoreConfig
	Checkout CheckoutConfig
	CORS     CORSConfig
	Metrics  MetricsConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// PricingConfig holds the pricing constants. Defaults match the storefront
// contract: 18% tax, flat 50 delivery below 500, minimum order of 100.
type PricingConfig struct {
	TaxRate               float64
	DeliveryCharge        float64
	FreeDeliveryThreshold float64
	MinOrderAmount        float64
}

// CartConfig holds session cart settings.
type CartConfig struct {
	TTL time.Duration
}

// StoreConfig selects the order store backend.
type StoreConfig struct {
	Backend  string // "memory" or "redis"
	RedisURL string
}

// CheckoutConfig holds checkout behaviour settings.
type CheckoutConfig struct {
	// FailureRate simulates random order-submission failures, in [0,1].
	// Zero disables the injection.
	FailureRate float64
}

// CORSConfig holds cross-origin settings for the storefront frontend.
type CORSConfig struct {
	AllowedOrigins []string
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Namespace string
}

// Load loads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: stringOr(k, "SERVER_HOST", "0.0.0.0"),
			Port: intOr(k, "SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  stringOr(k, "LOG_LEVEL", "info"),
			Format: stringOr(k, "LOG_FORMAT", "json"),
		},
		Pricing: PricingConfig{
			TaxRate:               floatOr(k, "PRICING_TAX_RATE", 0.18),
			DeliveryCharge:        floatOr(k, "PRICING_DELIVERY_CHARGE", 50),
			FreeDeliveryThreshold: floatOr(k, "PRICING_FREE_DELIVERY_THRESHOLD", 500),
			MinOrderAmount:        floatOr(k, "PRICING_MIN_ORDER_AMOUNT", 100),
		},
		Cart: CartConfig{
			TTL: durationOr(k, "CART_TTL", 24*time.Hour),
		},
		Store: StoreConfig{
			Backend:  strings.ToLower(stringOr(k, "ORDER_STORE_BACKEND", "memory")),
			RedisURL: k.String("REDIS_URL"),
		},
		Checkout: CheckoutConfig{
			FailureRate: floatOr(k, "CHECKOUT_FAILURE_RATE", 0),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitAndTrim(stringOr(k, "CORS_ALLOWED_ORIGINS", "*")),
		},
		Metrics: MetricsConfig{
			Namespace: stringOr(k, "METRICS_NAMESPACE", "soofi_mandi"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Pricing.TaxRate < 0 || c.Pricing.TaxRate >= 1 {
		return fmt.Errorf("invalid tax rate: %.2f", c.Pricing.TaxRate)
	}
	if c.Pricing.DeliveryCharge < 0 {
		return fmt.Errorf("delivery charge cannot be negative")
	}
	if c.Pricing.FreeDeliveryThreshold < 0 {
		return fmt.Errorf("free delivery threshold cannot be negative")
	}
	if c.Pricing.MinOrderAmount < 0 {
		return fmt.Errorf("minimum order amount cannot be negative")
	}

	if c.Checkout.FailureRate < 0 || c.Checkout.FailureRate > 1 {
		return fmt.Errorf("checkout failure rate must be within [0,1]: %.2f", c.Checkout.FailureRate)
	}

	switch c.Store.Backend {
	case "memory":
	case "redis":
		if c.Store.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when the order store backend is redis")
		}
	default:
		return fmt.Errorf("invalid order store backend: %s (must be memory or redis)", c.Store.Backend)
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func stringOr(k *koanf.Koanf, key, fallback string) string {
	if v := strings.TrimSpace(k.String(key)); v != "" {
		return v
	}
	return fallback
}

func intOr(k *koanf.Koanf, key string, fallback int) int {
	if !k.Exists(key) || strings.TrimSpace(k.String(key)) == "" {
		return fallback
	}
	return k.Int(key)
}

func floatOr(k *koanf.Koanf, key string, fallback float64) float64 {
	if !k.Exists(key) || strings.TrimSpace(k.String(key)) == "" {
		return fallback
	}
	return k.Float64(key)
}

func durationOr(k *koanf.Koanf, key string, fallback time.Duration) time.Duration {
	base := strings.TrimSpace(k.String(key))
	if base == "" {
		return fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		return fallback
	}
	return d
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
