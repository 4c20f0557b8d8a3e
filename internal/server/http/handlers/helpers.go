package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/payhook/internal/server/http/middleware"
)

// VerifiedBody extracts the signature-checked raw payload from context.
func VerifiedBody(c *gin.Context) []byte {
	val, ok := c.Get(middleware.VerifiedBodyContextKey)
	if !ok {
		return nil
	}
	body, _ := val.([]byte)
	return body
}
