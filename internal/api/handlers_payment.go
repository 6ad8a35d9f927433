package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	stripe "github.com/stripe/stripe-go/v78"

	"github.com/sanjaydhan/scriba/internal/models"
	"github.com/sanjaydhan/scriba/internal/payment"
)

// CreateSubscription creates a Stripe customer and subscription for a plan.
func (h *Handler) CreateSubscription(c *gin.Context) {
	var req models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if req.PaymentMethodID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Payment method is required",
			Code:  "MISSING_PAYMENT_METHOD",
		})
		return
	}

	email := req.Email
	if email == "" {
		email = "customer@example.com"
	}

	sub, err := h.payments.CreateSubscription(c.Request.Context(), req.PaymentMethodID, email, req.PlanName)
	if errors.Is(err, payment.ErrUnknownPlan) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid plan selected",
			Code:  "INVALID_PLAN",
		})
		return
	}
	if err != nil {
		status, msg := stripeStatus(err)
		log.Error().Err(err).Str("plan", req.PlanName).Msg("Subscription creation failed")
		c.JSON(status, ErrorResponse{Error: msg, Code: "PAYMENT_ERROR"})
		return
	}

	switch sub.Status {
	case string(stripe.SubscriptionStatusActive):
		c.JSON(http.StatusOK, gin.H{
			"subscription_id": sub.SubscriptionID,
			"customer_id":     sub.CustomerID,
			"status":          sub.Status,
			"plan":            sub.Plan,
			"message":         "Subscription created successfully!",
		})
	case string(stripe.SubscriptionStatusIncomplete):
		c.JSON(http.StatusOK, gin.H{
			"subscription_id": sub.SubscriptionID,
			"customer_id":     sub.CustomerID,
			"status":          sub.Status,
			"client_secret":   sub.ClientSecret,
			"message":         "Payment requires additional authentication",
		})
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Subscription creation failed",
			Code:  "SUBSCRIPTION_FAILED",
		})
	}
}

// CancelSubscription schedules a subscription for cancellation at period end.
func (h *Handler) CancelSubscription(c *gin.Context) {
	var req models.CancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SubscriptionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Subscription ID is required",
			Code:  "MISSING_SUBSCRIPTION_ID",
		})
		return
	}

	sub, err := h.payments.CancelSubscription(c.Request.Context(), req.SubscriptionID)
	if err != nil {
		status, msg := stripeStatus(err)
		c.JSON(status, ErrorResponse{Error: msg, Code: "PAYMENT_ERROR"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscription_id":      sub.SubscriptionID,
		"status":               sub.Status,
		"cancel_at_period_end": sub.CancelAtPeriodEnd,
		"current_period_end":   sub.CurrentPeriodEnd,
		"message":              "Subscription will be cancelled at the end of the current period",
	})
}

// SubscriptionStatus returns the current state of a subscription.
func (h *Handler) SubscriptionStatus(c *gin.Context) {
	sub, err := h.payments.SubscriptionStatus(c.Request.Context(), c.Param("subscription_id"))
	if err != nil {
		var sErr *stripe.Error
		if errors.As(err, &sErr) && sErr.HTTPStatusCode == http.StatusNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Subscription not found",
				Code:  "SUBSCRIPTION_NOT_FOUND",
			})
			return
		}
		status, msg := stripeStatus(err)
		c.JSON(status, ErrorResponse{Error: msg, Code: "PAYMENT_ERROR"})
		return
	}

	c.JSON(http.StatusOK, sub)
}

// StripeWebhook verifies and dispatches Stripe webhook events.
func (h *Handler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid payload",
			Code:  "INVALID_PAYLOAD",
		})
		return
	}

	event, err := h.payments.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid signature",
			Code:  "INVALID_SIGNATURE",
		})
		return
	}

	if err := h.payments.HandleEvent(event); err != nil {
		// Malformed event payloads are logged, not retried; acknowledging
		// keeps Stripe from redelivering an event we can never parse.
		log.Error().Err(err).Str("type", string(event.Type)).Msg("Webhook event handling failed")
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// Plans returns the public subscription catalog.
func (h *Handler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.payments.Catalog()})
}

// stripeStatus maps a Stripe API error to an HTTP status and a message safe
// to show the caller.
func stripeStatus(err error) (int, string) {
	var sErr *stripe.Error
	if !errors.As(err, &sErr) {
		return http.StatusInternalServerError, "An unexpected error occurred"
	}

	if sErr.HTTPStatusCode == http.StatusTooManyRequests {
		return http.StatusTooManyRequests, "Too many requests. Please try again later."
	}
	if sErr.HTTPStatusCode == http.StatusUnauthorized {
		return http.StatusUnauthorized, "Authentication failed. Please check your Stripe keys."
	}

	switch sErr.Type {
	case stripe.ErrorTypeCard:
		return http.StatusBadRequest, "Card error: " + sErr.Msg
	case stripe.ErrorTypeInvalidRequest:
		return http.StatusBadRequest, "Invalid request: " + sErr.Msg
	case stripe.ErrorTypeAPI:
		return http.StatusBadGateway, "Network error. Please try again."
	default:
		return http.StatusInternalServerError, "Stripe error: " + sErr.Msg
	}
}
