package repository

import (
	"context"

	"github.com/polkiloo/payhook/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create persists a new order aggregate and fills in store-assigned fields.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	// GetByOrderID looks the aggregate up by its business key.
	GetByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	// Update persists the full mutated aggregate atomically. The write is
	// guarded by the aggregate's Version; a stale version yields
	// ErrVersionConflict and the caller must re-read before retrying.
	Update(ctx context.Context, order *model.Order) error
}
