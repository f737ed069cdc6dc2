package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

//
// ──────────────────────────────────────────────────────────────
//   QDRANT CLIENT WRAPPER
// ──────────────────────────────────────────────────────────────
//
// This file defines a thin wrapper around the official Qdrant Go client.
// It establishes and validates connectivity, and exposes the SDK client to
// the Store adapter in this package.
//

// Client wraps the official Qdrant Go client.
type Client struct {
	api *qdrant.Client
	cfg *Config
	log *zap.Logger
}

// NewClient constructs a new Client and validates connectivity via a
// health check.
//
// The Qdrant Go SDK creates lightweight gRPC connections, so this method
// performs an immediate health check to fail fast if the service is
// unreachable.
func NewClient(cfg *Config, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Set default port if not specified
	port := cfg.Port
	if port == 0 {
		port = 6334
	}

	if cfg.ApiKey != "" && !cfg.UseTLS {
		log.Warn("API key is set but TLS is not enabled; the key will be sent in plaintext",
			zap.String("endpoint", cfg.Endpoint))
	}

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   port,
		APIKey:                 cfg.ApiKey,
		UseTLS:                 cfg.UseTLS,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to initialize client: %w", err)
	}

	c := &Client{
		api: api,
		cfg: cfg,
		log: log.Named("qdrant"),
	}

	if err := c.healthCheck(); err != nil {
		return nil, fmt.Errorf("qdrant: health check failed: %w", err)
	}

	return c, nil
}

// healthCheck verifies the availability of the Qdrant service through the
// SDK's healthz call. Lightweight and fast, suitable for startup and
// readiness probes.
func (c *Client) healthCheck() error {
	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return err
	}

	c.log.Info("connected",
		zap.String("endpoint", c.cfg.Endpoint),
		zap.String("version", resp.GetVersion()))
	return nil
}

// API returns the underlying Qdrant SDK client.
// This is useful for direct access to low-level operations, and for
// building native filters passed through retrieval options.
func (c *Client) API() *qdrant.Client {
	return c.api
}

// Close shuts down the underlying gRPC connection.
func (c *Client) Close() error {
	return c.api.Close()
}
