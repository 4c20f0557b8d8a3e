package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/payhook/internal/domain/errors"
	"github.com/polkiloo/payhook/internal/domain/model"
	"github.com/polkiloo/payhook/internal/domain/repository"
)

// TransitionOutcome reports how a payment event was reconciled.
type TransitionOutcome int

const (
	// OutcomeIgnored means the event was not relevant to order state.
	OutcomeIgnored TransitionOutcome = iota
	// OutcomeApplied means the order was newly transitioned and persisted.
	OutcomeApplied
	// OutcomeAlreadyApplied means the payment was settled by an earlier delivery.
	OutcomeAlreadyApplied
)

const (
	timelineTitleConfirmed  = "Order Confirmed"
	timelineTitleProcessing = "Processing"
	processingDescription   = "Your order is being prepared for shipment at our warehouse."
)

// PaymentUseCase reconciles relay-delivered payment events with order state.
type PaymentUseCase struct {
	orders       repository.OrderRepository
	retries      int
	storeTimeout time.Duration
	now          func() time.Time
}

// NewPaymentUseCase constructs PaymentUseCase. retries bounds re-reads after
// losing a concurrent update race; storeTimeout bounds every store call.
func NewPaymentUseCase(orders repository.OrderRepository, retries int, storeTimeout time.Duration) *PaymentUseCase {
	if retries <= 0 {
		retries = 1
	}
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	return &PaymentUseCase{orders: orders, retries: retries, storeTimeout: storeTimeout, now: time.Now}
}

// ProcessChargeSuccess applies a successful charge to the referenced order
// exactly once. Redelivered events hit the idempotency guard and leave the
// order untouched. Concurrent deliveries are serialized by the store's
// version check: the loser re-reads and re-runs the guard.
func (u *PaymentUseCase) ProcessChargeSuccess(ctx context.Context, event model.PaymentEvent) (*model.Order, TransitionOutcome, error) {
	if !event.Relevant() {
		return nil, OutcomeIgnored, nil
	}

	if event.OrderID == "" {
		return nil, OutcomeIgnored, domainErrors.ErrMissingOrderID
	}

	for attempt := 0; attempt < u.retries; attempt++ {
		order, err := u.getOrder(ctx, event.OrderID)
		if err != nil {
			return nil, OutcomeIgnored, err
		}

		if order.PaymentStatus == model.PaymentStatusCompleted {
			return order, OutcomeAlreadyApplied, nil
		}

		applyChargeSuccess(order, event, u.now())

		if err := u.updateOrder(ctx, order); err != nil {
			if errors.Is(err, domainErrors.ErrVersionConflict) {
				continue
			}
			return nil, OutcomeIgnored, err
		}

		return order, OutcomeApplied, nil
	}

	return nil, OutcomeIgnored, fmt.Errorf("update order %s: %w", event.OrderID, domainErrors.ErrVersionConflict)
}

func (u *PaymentUseCase) getOrder(ctx context.Context, orderID string) (*model.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()
	return u.orders.GetByOrderID(ctx, orderID)
}

func (u *PaymentUseCase) updateOrder(ctx context.Context, order *model.Order) error {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()
	return u.orders.Update(ctx, order)
}

// applyChargeSuccess mutates the in-memory aggregate as one logical unit;
// the caller persists it atomically.
func applyChargeSuccess(order *model.Order, event model.PaymentEvent, now time.Time) {
	order.PaymentStatus = model.PaymentStatusCompleted
	reference := event.Reference
	order.TransactionID = &reference
	order.Status = model.OrderStatusProcessing

	// Settle prior stages so exactly one entry stays current after the append.
	for i := range order.Timeline {
		if order.Timeline[i].Title == timelineTitleConfirmed || order.Timeline[i].Status == model.TimelineStatusCurrent {
			order.Timeline[i].Status = model.TimelineStatusCompleted
		}
	}

	order.Timeline = append(order.Timeline, model.TimelineEntry{
		Title:       timelineTitleProcessing,
		Description: processingDescription,
		Status:      model.TimelineStatusCurrent,
		Timestamp:   now,
	})
}
