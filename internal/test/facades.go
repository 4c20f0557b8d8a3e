package test

import (
	"context"

	"github.com/polkiloo/payhook/internal/domain/model"
	"github.com/polkiloo/payhook/internal/usecase"
)

// WebhookFacadeStub provides controllable behaviour for the webhook endpoint.
type WebhookFacadeStub struct {
	ProcessFn func(context.Context, model.PaymentEvent) (*model.Order, usecase.TransitionOutcome, error)
}

// ProcessPaymentEvent delegates to the provided function or applies trivially.
func (s WebhookFacadeStub) ProcessPaymentEvent(ctx context.Context, event model.PaymentEvent) (*model.Order, usecase.TransitionOutcome, error) {
	if s.ProcessFn != nil {
		return s.ProcessFn(ctx, event)
	}
	if !event.Relevant() {
		return nil, usecase.OutcomeIgnored, nil
	}
	return &model.Order{OrderID: event.OrderID}, usecase.OutcomeApplied, nil
}

// OrderFacadeStub provides controllable behaviour for order reads.
type OrderFacadeStub struct {
	OrderFn func(context.Context, string) (*model.Order, error)
}

// Order returns the configured order or a minimal default.
func (s OrderFacadeStub) Order(ctx context.Context, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return &model.Order{OrderID: orderID, Status: model.OrderStatusConfirmed, PaymentStatus: model.PaymentStatusPending}, nil
}

// HealthFacadeStub reports configurable readiness.
type HealthFacadeStub struct {
	Err error
}

// Healthy returns the configured error.
func (s HealthFacadeStub) Healthy(context.Context) error {
	return s.Err
}

// PayhookFacadeStub aggregates all facade stubs for router level tests.
type PayhookFacadeStub struct {
	WebhookFacadeStub
	OrderFacadeStub
	HealthFacadeStub
}
