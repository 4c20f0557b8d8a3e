package handlers

import (
	"context"

	"github.com/polkiloo/payhook/internal/domain/model"
	"github.com/polkiloo/payhook/internal/usecase"
)

// WebhookFacade describes the payment reconciliation entrypoint.
type WebhookFacade interface {
	ProcessPaymentEvent(ctx context.Context, event model.PaymentEvent) (*model.Order, usecase.TransitionOutcome, error)
}

// OrderFacade exposes order read operations via HTTP.
type OrderFacade interface {
	Order(ctx context.Context, orderID string) (*model.Order, error)
}

// HealthFacade reports service readiness.
type HealthFacade interface {
	Healthy(ctx context.Context) error
}

// PayhookFacade aggregates the full set of operations used across handlers.
type PayhookFacade interface {
	WebhookFacade
	OrderFacade
	HealthFacade
}
