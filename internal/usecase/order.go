package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/payhook/internal/domain/model"
	"github.com/polkiloo/payhook/internal/domain/repository"
)

// OrderUseCase exposes read access to order aggregates.
type OrderUseCase struct {
	orders       repository.OrderRepository
	storeTimeout time.Duration
}

// NewOrderUseCase constructs OrderUseCase. storeTimeout bounds every store call.
func NewOrderUseCase(orders repository.OrderRepository, storeTimeout time.Duration) *OrderUseCase {
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	return &OrderUseCase{orders: orders, storeTimeout: storeTimeout}
}

// GetByOrderID returns the order with its timeline.
func (u *OrderUseCase) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()
	return u.orders.GetByOrderID(ctx, orderID)
}
