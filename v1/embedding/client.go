package embedding

import (
	"context"
	"fmt"

	"github.com/vectorkit/retrieval/v1/document"
)

// Client is the public entrypoint for computing embeddings.
//
// It hides all provider details (inference endpoints, HTTP, etc.)
// from the application layer and satisfies the Embedder extension point.
type Client struct {
	provider Provider
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the inference provider.
// Application code should depend on *Client or Embedder, not on Provider.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	return &Client{provider: p}, nil
}

// NewClientWithProvider constructs a Client over an existing provider.
// Useful for tests and alternative inference backends.
func NewClientWithProvider(p Provider) *Client {
	return &Client{provider: p}
}

// Embed implements Embedder: one embedding per input document.
// Each document's parts are concatenated into a single embeddable text.
func (c *Client) Embed(ctx context.Context, req *EmbedRequest) (*EmbedResponse, error) {
	if len(req.Input) == 0 {
		return &EmbedResponse{}, nil
	}

	texts := make([]string, len(req.Input))
	for i, doc := range req.Input {
		texts[i] = doc.Text()
	}

	vectors, err := c.provider.Create(ctx, texts...)
	if err != nil {
		return nil, fmt.Errorf("embedding: create failed: %w", err)
	}

	resp := &EmbedResponse{Embeddings: make([]*Embedding, len(vectors))}
	for i, v := range vectors {
		resp.Embeddings[i] = &Embedding{Values: v}
	}
	return resp, nil
}

// EmbedText is a convenience wrapper for embedding a single text.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.Embed(ctx, &EmbedRequest{Input: []*document.Document{document.FromText(text, nil)}})
	if err != nil {
		return nil, err
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("embedding: empty response")
	}
	return resp.Embeddings[0].Values, nil
}

// Close allows the client to release any internal resources used by the provider.
// Currently this is a no-op unless the provider implements Close().
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
