package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/polkiloo/payhook/internal/domain/model"
)

// Client exposes operations to deliver user notifications.
type Client interface {
	Notify(ctx context.Context, notification model.Notification) error
}

// HTTPClient implements Client via the notification service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// request mirrors the JSON payload accepted by the notification service.
type request struct {
	UserID string `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	URL    string `json:"url"`
}

// NewHTTPClient creates HTTP notifier client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse notifier url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("notifier url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Notify posts the notification. Delivery is fire-and-forget from the caller's
// perspective; any returned error is informational.
func (c *HTTPClient) Notify(ctx context.Context, notification model.Notification) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/notifications")

	payload, err := json.Marshal(request{
		UserID: notification.UserID,
		Title:  notification.Title,
		Body:   notification.Body,
		URL:    notification.URL,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("notification request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("notifier error: %s", resp.Status)
	}

	return nil
}
