package docstore

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vectorkit/retrieval/v1/embedding"
	"github.com/vectorkit/retrieval/v1/metrics"
	"github.com/vectorkit/retrieval/v1/vectordb"
)

// Default payload field names. They can be overridden per collection when
// an existing collection already stores documents under different keys.
const (
	DefaultContentKey     = "_content"
	DefaultMetadataKey    = "_metadata"
	DefaultContentTypeKey = "_contentType"
)

// DefaultRetrieveLimit is the result limit applied when a retrieval call
// does not set one.
const DefaultRetrieveLimit = 10

// ScoreMetadataKey is the metadata field injected into every retrieved
// document carrying the backend similarity score.
const ScoreMetadataKey = "score"

// Config holds the per-collection settings for a DocStore.
type Config struct {
	// Collection is the backend collection indexed and queried.
	Collection string

	// Store is the vector database backend. Required.
	Store vectordb.Store

	// Embedder converts documents into vectors. Required.
	Embedder embedding.Embedder

	// EmbedderOptions is passed through to the embedder unmodified.
	EmbedderOptions any

	// ContentKey, MetadataKey and ContentTypeKey override the payload
	// field names. Empty fields fall back to the defaults above.
	ContentKey     string
	MetadataKey    string
	ContentTypeKey string

	// Schema, when set, is used to create the collection on first index.
	// When nil the vector size is probed from a throwaway embedding.
	Schema *vectordb.Schema

	// Logger defaults to a no-op logger.
	Logger *zap.Logger

	// Metrics is optional; nil disables instrumentation.
	Metrics *metrics.Metrics
}

func (c *Config) validate() error {
	if c.Collection == "" {
		return fmt.Errorf("docstore: collection name is required")
	}
	if c.Store == nil {
		return fmt.Errorf("docstore: store is required")
	}
	if c.Embedder == nil {
		return fmt.Errorf("docstore: embedder is required")
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.ContentKey == "" {
		c.ContentKey = DefaultContentKey
	}
	if c.MetadataKey == "" {
		c.MetadataKey = DefaultMetadataKey
	}
	if c.ContentTypeKey == "" {
		c.ContentTypeKey = DefaultContentTypeKey
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}
