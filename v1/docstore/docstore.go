package docstore

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/vectorkit/retrieval/v1/embedding"
	"github.com/vectorkit/retrieval/v1/metrics"
	"github.com/vectorkit/retrieval/v1/vectordb"
)

// ErrCollectionNotFound is returned by retrieval against a collection that
// was never indexed into. Use errors.Is to detect it.
var ErrCollectionNotFound = errors.New("collection does not exist")

// ErrMissingContent is returned when a query hit has no stored content
// under the configured content field. Such a hit is a fetch failure, not an
// empty document.
var ErrMissingContent = errors.New("failed to fetch document content")

// DocStore indexes documents into a vector database collection and
// retrieves them by similarity. It implements registry.Indexer and
// registry.Retriever and holds no mutable state of its own, so a single
// instance is safe for concurrent use as long as its store and embedder are.
type DocStore struct {
	collection      string
	store           vectordb.Store
	embedder        embedding.Embedder
	embedderOptions any

	contentKey     string
	metadataKey    string
	contentTypeKey string

	schema *vectordb.Schema

	log     *zap.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// New constructs a DocStore for one collection.
func New(cfg Config) (*DocStore, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	return &DocStore{
		collection:      cfg.Collection,
		store:           cfg.Store,
		embedder:        cfg.Embedder,
		embedderOptions: cfg.EmbedderOptions,
		contentKey:      cfg.ContentKey,
		metadataKey:     cfg.MetadataKey,
		contentTypeKey:  cfg.ContentTypeKey,
		schema:          cfg.Schema,
		log:             cfg.Logger.Named("docstore").With(zap.String("collection", cfg.Collection)),
		metrics:         cfg.Metrics,
		tracer:          otel.Tracer("github.com/vectorkit/retrieval/v1/docstore"),
	}, nil
}

// Collection returns the collection name this store operates on.
func (ds *DocStore) Collection() string {
	return ds.collection
}
