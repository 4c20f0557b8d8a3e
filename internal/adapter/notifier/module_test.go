package notifier

import (
	"io"
	"log/slog"
	"testing"

	"github.com/polkiloo/payhook/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{NotifierAddress: "http://example.com"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}

func TestNewClientDisabledWithoutAddress(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: &config.Config{}, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client != nil {
		t.Fatalf("expected nil client, got %T", client)
	}
}
