package model

import "time"

// CartItem is a single position inside a user's cart.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Cart holds a user's unpurchased items. It is cleared, not deleted,
// once the payment for a pre-payment order completes.
type Cart struct {
	ID        int64
	UserID    string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}
