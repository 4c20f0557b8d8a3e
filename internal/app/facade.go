package app

import (
	"context"

	"github.com/polkiloo/payhook/internal/domain/model"
	"github.com/polkiloo/payhook/internal/sideeffect"
	"github.com/polkiloo/payhook/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// WebhookFacade ties the transition engine to its side effects.
type WebhookFacade struct {
	payments   *usecase.PaymentUseCase
	orders     *usecase.OrderUseCase
	dispatcher *sideeffect.Dispatcher
	health     HealthChecker
}

// NewWebhookFacade constructs WebhookFacade.
func NewWebhookFacade(payments *usecase.PaymentUseCase, orders *usecase.OrderUseCase, dispatcher *sideeffect.Dispatcher, health HealthChecker) *WebhookFacade {
	return &WebhookFacade{payments: payments, orders: orders, dispatcher: dispatcher, health: health}
}

// ProcessPaymentEvent reconciles the event and, only when the transition was
// newly applied, fires the best-effort side effects. Redeliveries never
// re-fire effects.
func (f *WebhookFacade) ProcessPaymentEvent(ctx context.Context, event model.PaymentEvent) (*model.Order, usecase.TransitionOutcome, error) {
	order, outcome, err := f.payments.ProcessChargeSuccess(ctx, event)
	if err != nil {
		return nil, outcome, err
	}

	if outcome == usecase.OutcomeApplied {
		f.dispatcher.PaymentCompleted(ctx, order)
	}

	return order, outcome, nil
}

// Order returns the aggregate with its timeline.
func (f *WebhookFacade) Order(ctx context.Context, orderID string) (*model.Order, error) {
	return f.orders.GetByOrderID(ctx, orderID)
}

// Healthy reports store connectivity.
func (f *WebhookFacade) Healthy(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
