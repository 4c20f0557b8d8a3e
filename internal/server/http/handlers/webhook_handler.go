package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/payhook/internal/domain/errors"
	"github.com/polkiloo/payhook/internal/domain/model"
	"github.com/polkiloo/payhook/internal/server/http/dto"
)

// WebhookHandler receives relay-forwarded provider events.
type WebhookHandler struct {
	facade WebhookFacade
}

// NewWebhookHandler constructs WebhookHandler.
func NewWebhookHandler(facade WebhookFacade) *WebhookHandler {
	return &WebhookHandler{facade: facade}
}

// HandlePaymentEvent handles POST /api/webhooks/payment. The body has already
// been authenticated by the signature middleware.
func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	body := VerifiedBody(c)
	if body == nil {
		c.JSON(http.StatusForbidden, dto.StatusError)
		return
	}

	var envelope dto.PaymentEventRequest
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusError)
		return
	}

	event := model.PaymentEvent{
		Kind:      envelope.Event,
		Status:    envelope.Data.Status,
		Reference: envelope.Data.Reference,
		OrderID:   envelope.Data.Metadata.OrderID,
	}

	if _, _, err := h.facade.ProcessPaymentEvent(c.Request.Context(), event); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingOrderID):
			c.JSON(http.StatusBadRequest, dto.StatusError)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.StatusError)
		default:
			c.JSON(http.StatusInternalServerError, dto.StatusError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.StatusOK)
}
