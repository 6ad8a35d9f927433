package api

import (
	"github.com/gin-gonic/gin"

	"github.com/sanjaydhan/scriba/internal/analysis"
	"github.com/sanjaydhan/scriba/internal/config"
	"github.com/sanjaydhan/scriba/internal/grading"
	"github.com/sanjaydhan/scriba/internal/keystore"
	"github.com/sanjaydhan/scriba/internal/payment"
)

func SetupRoutes(
	cfg *config.Config,
	keys *keystore.Store,
	pool *grading.WorkerPool,
	llm *analysis.Client,
	payments *payment.Service,
) *gin.Engine {
	router := gin.Default()

	handler := NewHandler(cfg, keys, pool, llm, payments)

	rateLimiter := NewRateLimiter(cfg.RateLimitRPS, int(cfg.RateLimitRPS*2))

	// Middleware
	router.Use(ErrorHandlerMiddleware())
	router.Use(MetricsMiddleware())

	// Health endpoint (no rate limiting)
	router.GET("/health", handler.Health)

	// Stripe calls this one; its own signature check is the gate.
	router.POST("/webhook", handler.StripeWebhook)

	limited := router.Group("/")
	limited.Use(RateLimitMiddleware(rateLimiter))
	{
		// MCQ grading
		limited.POST("/upload-answer-key", handler.UploadAnswerKey)
		limited.POST("/analyze-mcq-batch", handler.AnalyzeMCQBatch)
		limited.GET("/mcq-history", handler.MCQHistory)
		limited.GET("/mcq-report/:analysis_id", handler.MCQReport)

		// Document analysis
		limited.POST("/analyze", handler.AnalyzeDocument)
		limited.POST("/upload", handler.UploadDocument)
		limited.GET("/history", handler.AnalysisHistory)
		limited.GET("/report/:analysis_id", handler.AnalysisReport)

		// Subscriptions
		limited.POST("/create-subscription", handler.CreateSubscription)
		limited.POST("/cancel-subscription", handler.CancelSubscription)
		limited.GET("/subscription-status/:subscription_id", handler.SubscriptionStatus)
		limited.GET("/plans", handler.Plans)
	}

	return router
}
