package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/payhook/internal/pkg/signature"
	"github.com/polkiloo/payhook/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/payhook/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	verifier := signature.NewVerifier("secret")
	facade := testhelpers.PayhookFacadeStub{}

	engine := Setup(facade, verifier, logger)

	body, _ := json.Marshal(map[string]any{
		"event": "charge.success",
		"data": map[string]any{
			"status":    "success",
			"reference": "TXN1",
			"metadata":  map[string]string{"orderId": "ORD1"},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signature.Header, verifier.Sign(body))
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for signed webhook, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for unsigned webhook, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders/ORD1", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for order read, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for ping, got %d", resp.Code)
	}
}

var _ handlers.PayhookFacade = (*testhelpers.PayhookFacadeStub)(nil)
