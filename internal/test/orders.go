package test

import (
	"time"

	"github.com/polkiloo/payhook/internal/domain/model"
)

// PendingOrder builds a confirmed, unpaid order the way checkout leaves it.
func PendingOrder(orderID, userID string) *model.Order {
	return &model.Order{
		OrderID:       orderID,
		UserID:        userID,
		PaymentStatus: model.PaymentStatusPending,
		Status:        model.OrderStatusConfirmed,
		Timeline: []model.TimelineEntry{
			{
				Title:       "Order Confirmed",
				Description: "We have received your order.",
				Status:      model.TimelineStatusCurrent,
				Timestamp:   time.Unix(0, 0),
			},
		},
		Version: 1,
	}
}
