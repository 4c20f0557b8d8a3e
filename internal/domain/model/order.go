package model

import "time"

// PaymentStatus describes settlement state of an order's payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// OrderStatus describes fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
)

// TimelineStatus marks progress of a single timeline stage.
type TimelineStatus string

const (
	TimelineStatusCompleted TimelineStatus = "completed"
	TimelineStatusCurrent   TimelineStatus = "current"
	TimelineStatusPending   TimelineStatus = "pending"
)

// TimelineEntry is one human-readable stage of the order lifecycle.
// Entries are append-only; only Status may be edited by a later event.
type TimelineEntry struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      TimelineStatus `json:"status"`
	Timestamp   time.Time      `json:"timestamp"`
}

// Order is the persistent aggregate reconciled by payment events.
// Version guards concurrent read-modify-write cycles at the store boundary.
type Order struct {
	ID            int64
	OrderID       string
	UserID        string
	PaymentStatus PaymentStatus
	TransactionID *string
	Status        OrderStatus
	Timeline      []TimelineEntry
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CurrentTimelineEntry returns the entry marked current, if any.
func (o *Order) CurrentTimelineEntry() *TimelineEntry {
	for i := range o.Timeline {
		if o.Timeline[i].Status == TimelineStatusCurrent {
			return &o.Timeline[i]
		}
	}
	return nil
}
