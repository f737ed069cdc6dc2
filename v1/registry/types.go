package registry

import (
	"context"

	"github.com/vectorkit/retrieval/v1/document"
)

// IndexerRequest is the host-side request passed to an Indexer.
// Options is reserved for backend-specific indexing options; backends that
// recognize none must accept a nil value.
type IndexerRequest struct {
	Documents []*document.Document
	Options   any
}

// RetrieverRequest is the host-side request passed to a Retriever.
// Options carries backend-specific retrieval options (result limit, filters)
// and is type-checked by the backend.
type RetrieverRequest struct {
	Query   *document.Document
	Options any
}

// RetrieverResponse holds retrieved documents in backend order,
// best match first.
type RetrieverResponse struct {
	Documents []*document.Document
}

// Indexer writes documents into a backing store.
type Indexer interface {
	Index(ctx context.Context, req *IndexerRequest) error
}

// Retriever finds documents similar to a query document.
type Retriever interface {
	Retrieve(ctx context.Context, req *RetrieverRequest) (*RetrieverResponse, error)
}
