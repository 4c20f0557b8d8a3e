package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/payhook/internal/domain/errors"
	"github.com/polkiloo/payhook/internal/domain/model"
	"github.com/polkiloo/payhook/internal/sideeffect"
	testhelpers "github.com/polkiloo/payhook/internal/test"
	"github.com/polkiloo/payhook/internal/usecase"
)

type healthCheckerStub struct {
	err error
}

func (s healthCheckerStub) HealthCheck(context.Context) error { return s.err }

func newTestFacade(orders *testhelpers.OrderRepositoryStub, notifier *testhelpers.NotifierStub, carts *testhelpers.CartRepositoryStub) *WebhookFacade {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	dispatcher := sideeffect.NewDispatcher(notifier, carts, time.Second, logger)
	return NewWebhookFacade(
		usecase.NewPaymentUseCase(orders, 3, time.Second),
		usecase.NewOrderUseCase(orders, time.Second),
		dispatcher,
		healthCheckerStub{},
	)
}

func paymentEvent(orderID string) model.PaymentEvent {
	return model.PaymentEvent{
		Kind:      model.EventKindChargeSuccess,
		Status:    model.EventStatusSuccess,
		Reference: "TXN1",
		OrderID:   orderID,
	}
}

func TestProcessPaymentEventFiresEffectsOnce(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub(testhelpers.PendingOrder("ORD1", "USR1"))
	notifier := &testhelpers.NotifierStub{}
	carts := &testhelpers.CartRepositoryStub{}
	facade := newTestFacade(orders, notifier, carts)

	order, outcome, err := facade.ProcessPaymentEvent(context.Background(), paymentEvent("ORD1"))
	if err != nil || outcome != usecase.OutcomeApplied {
		t.Fatalf("expected applied transition, outcome=%v err=%v", outcome, err)
	}
	if order.PaymentStatus != model.PaymentStatusCompleted {
		t.Fatalf("expected completed payment, got %s", order.PaymentStatus)
	}

	if sent := notifier.Sent(); len(sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(sent))
	}
	if cleared := carts.Cleared(); len(cleared) != 1 || cleared[0] != "USR1" {
		t.Fatalf("expected one cart clear for USR1, got %v", cleared)
	}

	// Redelivery: no new side effects, no state change.
	again, outcome, err := facade.ProcessPaymentEvent(context.Background(), paymentEvent("ORD1"))
	if err != nil || outcome != usecase.OutcomeAlreadyApplied {
		t.Fatalf("expected already applied, outcome=%v err=%v", outcome, err)
	}
	if len(again.Timeline) != len(order.Timeline) {
		t.Fatal("redelivery changed the timeline")
	}
	if sent := notifier.Sent(); len(sent) != 1 {
		t.Fatalf("redelivery fired a notification, got %d", len(sent))
	}
	if cleared := carts.Cleared(); len(cleared) != 1 {
		t.Fatalf("redelivery cleared the cart again, got %v", cleared)
	}
}

func TestProcessPaymentEventSkipsEffectsOnIrrelevantEvent(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub(testhelpers.PendingOrder("ORD1", "USR1"))
	notifier := &testhelpers.NotifierStub{}
	carts := &testhelpers.CartRepositoryStub{}
	facade := newTestFacade(orders, notifier, carts)

	event := paymentEvent("ORD1")
	event.Kind = "charge.refund"

	_, outcome, err := facade.ProcessPaymentEvent(context.Background(), event)
	if err != nil || outcome != usecase.OutcomeIgnored {
		t.Fatalf("expected ignored outcome, outcome=%v err=%v", outcome, err)
	}
	if len(notifier.Sent()) != 0 || len(carts.Cleared()) != 0 {
		t.Fatal("irrelevant event fired side effects")
	}
}

func TestProcessPaymentEventPropagatesErrors(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	notifier := &testhelpers.NotifierStub{}
	carts := &testhelpers.CartRepositoryStub{}
	facade := newTestFacade(orders, notifier, carts)

	if _, _, err := facade.ProcessPaymentEvent(context.Background(), paymentEvent("MISSING")); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(notifier.Sent()) != 0 || len(carts.Cleared()) != 0 {
		t.Fatal("failed transition fired side effects")
	}
}

func TestFacadeOrderAndHealth(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub(testhelpers.PendingOrder("ORD1", "USR1"))
	facade := newTestFacade(orders, &testhelpers.NotifierStub{}, &testhelpers.CartRepositoryStub{})

	order, err := facade.Order(context.Background(), "ORD1")
	if err != nil || order.OrderID != "ORD1" {
		t.Fatalf("unexpected order %+v err=%v", order, err)
	}

	if err := facade.Healthy(context.Background()); err != nil {
		t.Fatalf("unexpected health error: %v", err)
	}

	down := NewWebhookFacade(
		usecase.NewPaymentUseCase(orders, 1, time.Second),
		usecase.NewOrderUseCase(orders, time.Second),
		sideeffect.NewDispatcher(nil, &testhelpers.CartRepositoryStub{}, time.Second, slog.New(slog.NewJSONHandler(io.Discard, nil))),
		healthCheckerStub{err: errors.New("db down")},
	)
	if err := down.Healthy(context.Background()); err == nil {
		t.Fatal("expected health error")
	}
}
