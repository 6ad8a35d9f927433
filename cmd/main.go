package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/sanjaydhan/scriba/internal/analysis"
	"github.com/sanjaydhan/scriba/internal/api"
	"github.com/sanjaydhan/scriba/internal/config"
	"github.com/sanjaydhan/scriba/internal/configs/env"
	"github.com/sanjaydhan/scriba/internal/grading"
	redisInfra "github.com/sanjaydhan/scriba/internal/infra/redis"
	"github.com/sanjaydhan/scriba/internal/keystore"
	"github.com/sanjaydhan/scriba/internal/logger"
	"github.com/sanjaydhan/scriba/internal/metrics"
	"github.com/sanjaydhan/scriba/internal/payment"
)

func main() {
	if err := env.LoadEnv(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env file, continuing with system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	logger.Init(cfg.LogLevel)
	log.Info().Msg("Starting scriba server")

	// Initialize Prometheus metrics
	metrics.InitPrometheus()
	log.Info().Msg("Prometheus metrics initialized")

	// Start metrics server in separate goroutine
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: metricsMux,
	}
	go func() {
		log.Info().Str("port", cfg.MetricsPort).Msg("Metrics server started")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Metrics server failed to start")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect Redis
	redisClient, err := redisInfra.NewClient(ctx, cfg.RedisHost, cfg.RedisPassword, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Redis client")
	}
	defer redisClient.Close()

	// Answer key / report cache
	keys := keystore.New(redisClient, cfg.KeyTTL)

	// LLM analysis client
	llm := analysis.New(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// Stripe payment service
	payments := payment.New(cfg.StripeSecretKey, cfg.StripeWebhookSecret, map[string]string{
		"basic":    cfg.StripePriceBasic,
		"standard": cfg.StripePriceStandard,
		"premium":  cfg.StripePricePremium,
	})

	// Grading worker pool
	pool := grading.NewWorkerPool(ctx, cfg.GradingWorkers)
	defer pool.Close()

	router := api.SetupRoutes(cfg, keys, pool, llm, payments)

	srv := api.StartServer(router, cfg.ServerPort)

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down gracefully...")

	if err := api.ShutdownServer(srv, 30*time.Second); err != nil {
		log.Error().Err(err).Msg("Error shutting down HTTP server")
	}

	metricsCtx, metricsCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer metricsCancel()
	if err := metricsServer.Shutdown(metricsCtx); err != nil {
		log.Error().Err(err).Msg("Error shutting down metrics server")
	}

	log.Info().Msg("Shutdown complete")
}
