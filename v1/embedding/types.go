package embedding

import (
	"context"

	"github.com/vectorkit/retrieval/v1/document"
)

// EmbedRequest asks an Embedder to embed one or more documents.
// Options is an opaque, provider-specific value passed through unmodified.
type EmbedRequest struct {
	Input   []*document.Document
	Options any
}

// Embedding is one fixed-length embedding vector.
type Embedding struct {
	Values []float32
}

// EmbedResponse carries the embeddings for an EmbedRequest, in input order.
// Providers that chunk documents may return several embeddings for a single
// input document.
type EmbedResponse struct {
	Embeddings []*Embedding
}

// Embedder turns documents into embedding vectors. It is the extension
// point consumed by store adapters; implementations must be safe for
// concurrent use.
type Embedder interface {
	Embed(ctx context.Context, req *EmbedRequest) (*EmbedResponse, error)
}

// Provider is the low-level contract implemented by inference backends.
type Provider interface {
	// Create generates one embedding per input text using the configured model.
	Create(ctx context.Context, texts ...string) ([][]float32, error)
}
