package config

import (
	"fmt"
	"time"

	"github.com/sanjaydhan/scriba/internal/configs/env"
)

// Config holds all configuration for the application
type Config struct {
	// Redis
	RedisHost     string
	RedisPassword string
	KeyTTL        time.Duration

	// OpenAI
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Stripe
	StripeSecretKey     string
	StripeWebhookSecret string
	StripePriceBasic    string
	StripePriceStandard string
	StripePricePremium  string

	// Rate Limiting
	RateLimitRPS float64

	// Grading
	GradingWorkers int

	// Logging
	LogLevel string

	// Server
	ServerPort  string
	MetricsPort string
}

func Load() (*Config, error) {
	cfg := &Config{}

	// Redis
	cfg.RedisHost = env.String("REDIS_HOST", "localhost:6379")
	cfg.RedisPassword = env.String("REDIS_PASSWORD", "")
	ttlHours := env.Int("ANSWER_KEY_TTL_HOURS", 12)
	cfg.KeyTTL = time.Duration(ttlHours) * time.Hour

	// OpenAI
	cfg.OpenAIAPIKey = env.String("OPENAI_API_KEY", "")
	cfg.OpenAIBaseURL = env.String("OPENAI_BASE_URL", "")
	cfg.OpenAIModel = env.String("OPENAI_MODEL", "gpt-3.5-turbo")

	// Stripe
	cfg.StripeSecretKey = env.String("STRIPE_SECRET_KEY", "")
	cfg.StripeWebhookSecret = env.String("STRIPE_WEBHOOK_SECRET", "")
	cfg.StripePriceBasic = env.String("STRIPE_PRICE_BASIC", "")
	cfg.StripePriceStandard = env.String("STRIPE_PRICE_STANDARD", "")
	cfg.StripePricePremium = env.String("STRIPE_PRICE_PREMIUM", "")

	// Rate Limiting
	cfg.RateLimitRPS = env.Float("RATE_LIMIT_RPS", 10.0)

	// Grading
	cfg.GradingWorkers = env.Int("GRADING_WORKERS", 0) // 0 = CPU-based sizing

	// Logging
	cfg.LogLevel = env.String("LOG_LEVEL", "info")

	// Server
	cfg.ServerPort = env.String("SERVER_PORT", "8080")
	cfg.MetricsPort = env.String("METRICS_PORT", "2112")

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.RedisHost == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.StripeSecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if c.StripeWebhookSecret == "" {
		return fmt.Errorf("STRIPE_WEBHOOK_SECRET is required")
	}
	if c.KeyTTL <= 0 {
		return fmt.Errorf("ANSWER_KEY_TTL_HOURS must be greater than 0")
	}
	if c.GradingWorkers < 0 {
		return fmt.Errorf("GRADING_WORKERS must not be negative")
	}
	return nil
}
