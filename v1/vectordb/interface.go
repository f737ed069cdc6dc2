package vectordb

import "context"

// Store is the common interface for vector database backends.
// It provides a database-agnostic abstraction over point storage and
// similarity search, allowing document store adapters to be exercised
// against any backend (or an in-memory fake) without changing adapter code.
//
// Implementations must be safe for concurrent use: a single long-lived
// Store is shared by all in-flight indexing and retrieval calls.
//
// Example usage:
//
//	func NewDocStore(store vectordb.Store) *DocStore {
//	    return &DocStore{store: store}
//	}
type Store interface {
	// CollectionExists reports whether the named collection exists.
	CollectionExists(ctx context.Context, name string) (bool, error)

	// CreateCollection creates a collection with a fixed vector size and
	// distance metric.
	CreateCollection(ctx context.Context, name string, schema Schema) error

	// Upsert writes the given points in one batched call. Points with an
	// already-stored ID are overwritten, not duplicated.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Query performs a nearest-neighbor search and returns hits in backend
	// order, best match first.
	Query(ctx context.Context, req QueryRequest) ([]ScoredPoint, error)
}
