package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/payhook/internal/domain/errors"
	"github.com/polkiloo/payhook/internal/domain/model"
	"github.com/polkiloo/payhook/internal/server/http/dto"
)

// OrderHandler exposes the order read API.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Get handles GET /api/orders/:orderID.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID := c.Param("orderID")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, dto.StatusError)
		return
	}

	order, err := h.facade.Order(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.StatusError)
			return
		}
		c.JSON(http.StatusInternalServerError, dto.StatusError)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	timeline := make([]dto.TimelineEntryResponse, 0, len(order.Timeline))
	for _, entry := range order.Timeline {
		timeline = append(timeline, dto.TimelineEntryResponse{
			Title:       entry.Title,
			Description: entry.Description,
			Status:      string(entry.Status),
			Timestamp:   entry.Timestamp,
		})
	}

	return dto.OrderResponse{
		OrderID: order.OrderID,
		UserID:  order.UserID,
		Status:  string(order.Status),
		Payment: dto.PaymentResponse{
			Status:        string(order.PaymentStatus),
			TransactionID: order.TransactionID,
		},
		Timeline: timeline,
	}
}
