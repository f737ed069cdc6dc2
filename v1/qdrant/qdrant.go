package qdrant

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vectorkit/retrieval/v1/docstore"
	"github.com/vectorkit/retrieval/v1/embedding"
	"github.com/vectorkit/retrieval/v1/metrics"
	"github.com/vectorkit/retrieval/v1/registry"
	"github.com/vectorkit/retrieval/v1/vectordb"
)

// Provider is the registry prefix all Qdrant indexers and retrievers are
// registered under.
const Provider = "qdrant"

// RetrieverOptions is the options type accepted by retrievers registered by
// this package. The Filter field takes a *qdrant.Filter from the SDK.
type RetrieverOptions = docstore.RetrieverOptions

// IndexerOptions is the options type accepted by indexers registered by
// this package.
type IndexerOptions = docstore.IndexerOptions

// InitConfig configures one collection registration.
type InitConfig struct {
	// CollectionName is the Qdrant collection to index into and retrieve from.
	CollectionName string

	// Connection settings used to build a client. Ignored when Client is set.
	Connection *Config

	// Client, when set, is reused instead of opening a new connection.
	// Several collections can share one client.
	Client *Client

	// Embedder converts documents and queries into vectors. Required.
	Embedder embedding.Embedder

	// EmbedderOptions is passed through to the embedder unmodified.
	EmbedderOptions any

	// ContentKey, MetadataKey and ContentTypeKey override the payload field
	// names documents are stored under. Empty fields use the docstore
	// defaults.
	ContentKey     string
	MetadataKey    string
	ContentTypeKey string

	// Schema, when set, fixes the vector size and distance metric used if
	// the collection has to be created. When nil the dimensionality is
	// probed from a throwaway embedding on first index.
	Schema *vectordb.Schema

	// Registry defaults to the process-wide registry.
	Registry *registry.Registry

	// Logger defaults to a no-op logger.
	Logger *zap.Logger

	// Metrics is optional; nil disables instrumentation.
	Metrics *metrics.Metrics
}

// Init connects to Qdrant (unless a client is supplied) and registers one
// indexer and one retriever for the configured collection under
// "qdrant/<collectionName>". The collection itself is created lazily on
// first index.
func Init(ctx context.Context, cfg InitConfig) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("qdrant.Init: %w", err)
		}
	}()

	if cfg.CollectionName == "" {
		return fmt.Errorf("collection name is required")
	}

	client := cfg.Client
	if client == nil {
		conn := cfg.Connection
		if conn == nil {
			conn = DefaultConfig()
		}
		client, err = NewClient(conn, cfg.Logger)
		if err != nil {
			return err
		}
	}

	ds, err := docstore.New(docstore.Config{
		Collection:      cfg.CollectionName,
		Store:           NewStore(client),
		Embedder:        cfg.Embedder,
		EmbedderOptions: cfg.EmbedderOptions,
		ContentKey:      cfg.ContentKey,
		MetadataKey:     cfg.MetadataKey,
		ContentTypeKey:  cfg.ContentTypeKey,
		Schema:          cfg.Schema,
		Logger:          cfg.Logger,
		Metrics:         cfg.Metrics,
	})
	if err != nil {
		return err
	}

	reg := cfg.Registry
	if reg == nil {
		reg = registry.Default()
	}
	if err := reg.RegisterIndexer(Provider, cfg.CollectionName, ds); err != nil {
		return err
	}
	if err := reg.RegisterRetriever(Provider, cfg.CollectionName, ds); err != nil {
		return err
	}
	return nil
}

// Indexer returns the indexer registered for the given collection name, or
// nil if Init was never called for it.
func Indexer(name string) registry.Indexer {
	return registry.LookupIndexer(Provider, name)
}

// Retriever returns the retriever registered for the given collection name,
// or nil if Init was never called for it.
func Retriever(name string) registry.Retriever {
	return registry.LookupRetriever(Provider, name)
}
