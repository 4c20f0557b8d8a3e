package repository

import (
	"context"

	"github.com/polkiloo/payhook/internal/domain/model"
)

// CartRepository describes persistence operations with user carts.
type CartRepository interface {
	GetByUser(ctx context.Context, userID string) (*model.Cart, error)
	// Save persists the full cart aggregate, creating it when absent.
	Save(ctx context.Context, cart *model.Cart) error
	// Clear empties the cart's items, keeping the row. Absence of a cart
	// is not an error.
	Clear(ctx context.Context, userID string) error
}
