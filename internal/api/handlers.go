package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanjaydhan/scriba/internal/analysis"
	"github.com/sanjaydhan/scriba/internal/config"
	"github.com/sanjaydhan/scriba/internal/grading"
	"github.com/sanjaydhan/scriba/internal/keystore"
	"github.com/sanjaydhan/scriba/internal/payment"
)

// Handler holds dependencies for handlers
type Handler struct {
	cfg      *config.Config
	keys     *keystore.Store
	pool     *grading.WorkerPool
	llm      *analysis.Client
	payments *payment.Service
}

// NewHandler creates a new handler. keys may be nil, in which case answer-key
// and report caching are skipped.
func NewHandler(
	cfg *config.Config,
	keys *keystore.Store,
	pool *grading.WorkerPool,
	llm *analysis.Client,
	payments *payment.Service,
) *Handler {
	return &Handler{
		cfg:      cfg,
		keys:     keys,
		pool:     pool,
		llm:      llm,
		payments: payments,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
