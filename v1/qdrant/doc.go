// Package qdrant plugs the Qdrant vector database into the host framework's
// document indexing and retrieval extension points.
//
// The package does two jobs: it implements [vectordb.Store] over the
// official Qdrant Go client, and it registers per-collection indexers and
// retrievers built on that store under names of the form
// "qdrant/<collectionName>".
//
// # Core Features
//
//   - Config struct supporting environment, YAML and builder-style loading
//   - Automatic health check on client initialization
//   - Typed payload conversion with strict UTF-8 validation ([NewValueMap])
//   - Deterministic content-derived point IDs for idempotent re-indexing
//   - Lazy collection creation on first index, probed dimensionality
//   - Opaque native filter passthrough on retrieval
//   - Fx integration for client lifecycle management
//
// # Basic Usage
//
//	err := qdrant.Init(ctx, qdrant.InitConfig{
//	    CollectionName: "documents",
//	    Connection:     qdrant.FromEndpoint("localhost"),
//	    Embedder:       embedClient,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	indexer := qdrant.Indexer("documents")
//	err = indexer.Index(ctx, &registry.IndexerRequest{Documents: docs})
//
//	retriever := qdrant.Retriever("documents")
//	resp, err := retriever.Retrieve(ctx, &registry.RetrieverRequest{
//	    Query:   document.FromText("what is a vector database?", nil),
//	    Options: &qdrant.RetrieverOptions{K: 5},
//	})
//
// # Payload Layout
//
// Each indexed document becomes one point (one per chunk for embedders that
// chunk) whose payload holds the document text, its metadata as one nested
// struct, and its content type, under configurable field names. Metadata
// values follow the conversion table documented on [NewValueMap]; []byte
// values are base64-encoded on write and intentionally not decoded on read.
package qdrant
