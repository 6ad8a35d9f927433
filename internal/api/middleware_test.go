package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_SameClientSharesLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	a := rl.GetLimiter("10.0.0.1")
	b := rl.GetLimiter("10.0.0.1")
	if a != b {
		t.Error("same client got distinct limiters")
	}

	other := rl.GetLimiter("10.0.0.2")
	if other == a {
		t.Error("different clients share a limiter")
	}
}

func TestRateLimitMiddleware_RejectsBeyondBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimitMiddleware(NewRateLimiter(0.001, 2)))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes[i] = w.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("requests within burst got %v, want 200s", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("request beyond burst got %d, want 429", codes[2])
	}
}

func TestErrorHandlerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandlerMiddleware())
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(http.ErrBodyNotAllowed)
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
