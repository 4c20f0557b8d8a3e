package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/payhook/internal/server/http/dto"
)

// HealthHandler reports service readiness.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Ping handles GET /ping.
func (h *HealthHandler) Ping(c *gin.Context) {
	if err := h.facade.Healthy(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, dto.StatusError)
		return
	}
	c.JSON(http.StatusOK, dto.StatusOK)
}
