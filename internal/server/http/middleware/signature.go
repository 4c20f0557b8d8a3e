package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/payhook/internal/pkg/signature"
	"github.com/polkiloo/payhook/internal/server/http/dto"
)

// VerifiedBodyContextKey is a gin context key for the authenticated raw body.
const VerifiedBodyContextKey = "verifiedBody"

// SignatureRequired authenticates the relay's message before any parsing.
// The signature covers the exact bytes of the (decompressed) request body;
// a mismatch is rejected without revealing why.
func SignatureRequired(verifier *signature.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.StatusError)
			return
		}

		if !verifier.Verify(body, c.GetHeader(signature.Header)) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.StatusError)
			return
		}

		c.Set(VerifiedBodyContextKey, body)
		c.Next()
	}
}
