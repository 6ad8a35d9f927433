package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
)

// ErrUnknownPlan is returned when a plan has no Stripe price configured.
var ErrUnknownPlan = errors.New("invalid plan selected")

// Subscription is the service's view of a Stripe subscription, flattened to
// what the handlers return.
type Subscription struct {
	SubscriptionID     string `json:"subscription_id"`
	CustomerID         string `json:"customer_id,omitempty"`
	Status             string `json:"status"`
	Plan               string `json:"plan,omitempty"`
	ClientSecret       string `json:"client_secret,omitempty"`
	CancelAtPeriodEnd  bool   `json:"cancel_at_period_end"`
	CurrentPeriodStart int64  `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   int64  `json:"current_period_end,omitempty"`
}

// Service proxies the Stripe API for subscription management. It is injected
// into handlers; there is no package-level client state.
type Service struct {
	sc            *client.API
	prices        map[string]string
	webhookSecret string
}

// New creates a payment service. prices maps lowercase plan names to Stripe
// price ids.
func New(secretKey, webhookSecret string, prices map[string]string) *Service {
	sc := &client.API{}
	sc.Init(secretKey, nil)

	return &Service{
		sc:            sc,
		prices:        prices,
		webhookSecret: webhookSecret,
	}
}

// PriceID resolves a plan name to its Stripe price id.
func (s *Service) PriceID(plan string) (string, bool) {
	id, ok := s.prices[strings.ToLower(plan)]
	return id, ok && id != ""
}

// CreateSubscription creates a customer with the given payment method and
// subscribes it to the plan's price. Incomplete subscriptions carry the
// payment intent's client secret so the caller can finish authentication.
func (s *Service) CreateSubscription(ctx context.Context, paymentMethodID, email, plan string) (*Subscription, error) {
	priceID, ok := s.PriceID(plan)
	if !ok {
		return nil, ErrUnknownPlan
	}

	customer, err := s.sc.Customers.New(&stripe.CustomerParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(paymentMethodID),
		Email:         stripe.String(email),
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	subParams := &stripe.SubscriptionParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customer.ID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
	}
	subParams.AddExpand("latest_invoice.payment_intent")

	sub, err := s.sc.Subscriptions.New(subParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	result := &Subscription{
		SubscriptionID: sub.ID,
		CustomerID:     customer.ID,
		Status:         string(sub.Status),
		Plan:           strings.ToLower(plan),
	}
	if sub.Status == stripe.SubscriptionStatusIncomplete &&
		sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		result.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}

	return result, nil
}

// CancelSubscription schedules cancellation at the end of the current period.
func (s *Service) CancelSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	sub, err := s.sc.Subscriptions.Update(subscriptionID, &stripe.SubscriptionParams{
		Params:            stripe.Params{Context: ctx},
		CancelAtPeriodEnd: stripe.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel subscription: %w", err)
	}

	return &Subscription{
		SubscriptionID:    sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		CurrentPeriodEnd:  sub.CurrentPeriodEnd,
	}, nil
}

// SubscriptionStatus fetches the current state of a subscription.
func (s *Service) SubscriptionStatus(ctx context.Context, subscriptionID string) (*Subscription, error) {
	sub, err := s.sc.Subscriptions.Get(subscriptionID, &stripe.SubscriptionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve subscription: %w", err)
	}

	plan := ""
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		plan = sub.Items.Data[0].Price.Nickname
	}

	return &Subscription{
		SubscriptionID:     sub.ID,
		Status:             string(sub.Status),
		Plan:               plan,
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
		CurrentPeriodStart: sub.CurrentPeriodStart,
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
	}, nil
}

// VerifyWebhook checks the Stripe signature and returns the decoded event.
func (s *Service) VerifyWebhook(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signature, s.webhookSecret)
}

// HandleEvent reacts to the subscription lifecycle events this service cares
// about. There is no durable subscription state, so handling is log-only.
func (s *Service) HandleEvent(event stripe.Event) error {
	switch event.Type {
	case stripe.EventTypeInvoicePaymentSucceeded:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return fmt.Errorf("failed to parse invoice: %w", err)
		}
		log.Info().
			Str("customer", objectID(invoice.Customer)).
			Str("subscription", subscriptionID(invoice.Subscription)).
			Msg("Payment succeeded")
	case stripe.EventTypeInvoicePaymentFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return fmt.Errorf("failed to parse invoice: %w", err)
		}
		log.Warn().
			Str("customer", objectID(invoice.Customer)).
			Msg("Payment failed")
	case stripe.EventTypeCustomerSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("failed to parse subscription: %w", err)
		}
		log.Info().
			Str("customer", objectID(sub.Customer)).
			Str("subscription", sub.ID).
			Msg("Subscription cancelled")
	default:
		log.Debug().Str("type", string(event.Type)).Msg("Unhandled webhook event")
	}

	return nil
}

func objectID(c *stripe.Customer) string {
	if c == nil {
		return ""
	}
	return c.ID
}

func subscriptionID(s *stripe.Subscription) string {
	if s == nil {
		return ""
	}
	return s.ID
}
