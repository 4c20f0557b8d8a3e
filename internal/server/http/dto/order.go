package dto

import "time"

// OrderResponse exposes an order with its timeline.
type OrderResponse struct {
	OrderID  string                  `json:"order_id"`
	UserID   string                  `json:"user_id"`
	Status   string                  `json:"status"`
	Payment  PaymentResponse         `json:"payment"`
	Timeline []TimelineEntryResponse `json:"timeline"`
}

// PaymentResponse describes the settlement block of an order.
type PaymentResponse struct {
	Status        string  `json:"status"`
	TransactionID *string `json:"transaction_id,omitempty"`
}

// TimelineEntryResponse is one rendered lifecycle stage.
type TimelineEntryResponse struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}
