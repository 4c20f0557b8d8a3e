package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/payhook/internal/pkg/signature"
	"github.com/polkiloo/payhook/internal/server/http/handlers"
	"github.com/polkiloo/payhook/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Decompression
// runs before signature verification so the relay's signature always covers
// the JSON payload regardless of transport encoding.
func Setup(facade handlers.PayhookFacade, verifier *signature.Verifier, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	webhookHandler := handlers.NewWebhookHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/ping", healthHandler.Ping)

	api := engine.Group("/api")
	api.GET("/orders/:orderID", orderHandler.Get)

	webhooks := api.Group("/webhooks")
	webhooks.Use(middleware.SignatureRequired(verifier))
	webhooks.POST("/payment", webhookHandler.HandlePaymentEvent)

	return engine
}
