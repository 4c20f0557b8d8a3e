package sideeffect

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/payhook/internal/domain/model"
	"github.com/polkiloo/payhook/internal/domain/repository"
)

// Notifier delivers a push notification to the order's owner.
type Notifier interface {
	Notify(ctx context.Context, notification model.Notification) error
}

// Dispatcher runs post-transition effects. Effects are best-effort: a failure
// is logged and swallowed, never surfaced to the webhook caller, because the
// persisted order state is the source of truth.
type Dispatcher struct {
	notifier Notifier
	carts    repository.CartRepository
	timeout  time.Duration
	logger   *slog.Logger
}

// NewDispatcher constructs Dispatcher. notifier may be nil when the
// notification service is not configured.
func NewDispatcher(notifier Notifier, carts repository.CartRepository, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{notifier: notifier, carts: carts, timeout: timeout, logger: logger}
}

// PaymentCompleted fires the notification and clears the user's cart. The two
// effects are independent and run concurrently; both fire only for a newly
// applied transition, never for a redelivered event.
func (d *Dispatcher) PaymentCompleted(ctx context.Context, order *model.Order) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		d.notify(ctx, order)
	}()

	go func() {
		defer wg.Done()
		d.clearCart(ctx, order)
	}()

	wg.Wait()
}

func (d *Dispatcher) notify(ctx context.Context, order *model.Order) {
	if d.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	notification := model.Notification{
		UserID: order.UserID,
		Title:  "Payment received",
		Body:   fmt.Sprintf("Payment for order %s was received. We are preparing it for shipment.", order.OrderID),
		URL:    "/orders/" + order.OrderID,
	}

	if err := d.notifier.Notify(ctx, notification); err != nil {
		d.logger.Error("notification failed",
			slog.String("order_id", order.OrderID),
			slog.String("user_id", order.UserID),
			slog.String("error", err.Error()),
		)
	}
}

func (d *Dispatcher) clearCart(ctx context.Context, order *model.Order) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.carts.Clear(ctx, order.UserID); err != nil {
		d.logger.Error("cart clearing failed",
			slog.String("order_id", order.OrderID),
			slog.String("user_id", order.UserID),
			slog.String("error", err.Error()),
		)
	}
}
