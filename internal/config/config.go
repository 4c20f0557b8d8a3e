package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	NotifierAddress   string
	RelaySecret       string
	StoreTimeout      time.Duration
	SideEffectTimeout time.Duration
	ShutdownTimeout   time.Duration
	TransitionRetries int
}

const (
	defaultRunAddress        = ":8080"
	defaultStoreTimeout      = 5 * time.Second
	defaultSideEffectTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultTransitionRetries = 3
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		NotifierAddress:   getString(lookup, "NOTIFIER_ADDRESS", ""),
		RelaySecret:       getString(lookup, "RELAY_SECRET", ""),
		StoreTimeout:      getDuration(lookup, "STORE_TIMEOUT", defaultStoreTimeout),
		SideEffectTimeout: getDuration(lookup, "SIDE_EFFECT_TIMEOUT", defaultSideEffectTimeout),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		TransitionRetries: getInt(lookup, "TRANSITION_RETRIES", defaultTransitionRetries),
	}

	fs := flag.NewFlagSet("payhook", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		storeTimeoutStr      = cfg.StoreTimeout.String()
		sideEffectTimeoutStr = cfg.SideEffectTimeout.String()
		shutdownTimeoutStr   = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.NotifierAddress, "n", cfg.NotifierAddress, "Notification service base URL")
	fs.StringVar(&cfg.RelaySecret, "relay-secret", cfg.RelaySecret, "Shared secret for relay signature verification")
	fs.StringVar(&storeTimeoutStr, "store-timeout", storeTimeoutStr, "Timeout for a single store call")
	fs.StringVar(&sideEffectTimeoutStr, "side-effect-timeout", sideEffectTimeoutStr, "Timeout for a single side effect")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.TransitionRetries, "transition-retries", cfg.TransitionRetries, "Retries on concurrent order updates")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.StoreTimeout, err = time.ParseDuration(storeTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid store timeout: %w", err)
	}

	if cfg.SideEffectTimeout, err = time.ParseDuration(sideEffectTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid side effect timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("RELAY_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read relay secret file: %w", err)
		}
		cfg.RelaySecret = string(content)
	}

	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = defaultStoreTimeout
	}

	if cfg.SideEffectTimeout <= 0 {
		cfg.SideEffectTimeout = defaultSideEffectTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.TransitionRetries <= 0 {
		cfg.TransitionRetries = defaultTransitionRetries
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.RelaySecret == "" {
		return nil, fmt.Errorf("relay secret must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
