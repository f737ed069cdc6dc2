package docstore

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vectorkit/retrieval/v1/document"
	"github.com/vectorkit/retrieval/v1/embedding"
	"github.com/vectorkit/retrieval/v1/registry"
	"github.com/vectorkit/retrieval/v1/vectordb"
)

// RetrieverOptions controls a single retrieval call.
type RetrieverOptions struct {
	// K is the maximum number of documents to return. Zero or negative
	// falls back to DefaultRetrieveLimit.
	K int

	// Filter is an opaque backend-defined predicate passed through to the
	// store unmodified.
	Filter any

	// ScoreThreshold drops hits scoring below the given value when set.
	ScoreThreshold *float32
}

// Retrieve implements registry.Retriever.
//
// Retrieval never creates the collection: querying a collection that was
// never indexed into fails with ErrCollectionNotFound. Results are returned
// in backend order, best match first, each with the similarity score
// injected into its metadata under ScoreMetadataKey.
func (ds *DocStore) Retrieve(ctx context.Context, req *registry.RetrieverRequest) (*registry.RetrieverResponse, error) {
	opts := &RetrieverOptions{}
	if req.Options != nil {
		ropt, ok := req.Options.(*RetrieverOptions)
		if !ok {
			return nil, fmt.Errorf("docstore retrieve: options have type %T, want %T", req.Options, &RetrieverOptions{})
		}
		opts = ropt
	}
	limit := opts.K
	if limit <= 0 {
		limit = DefaultRetrieveLimit
	}

	ctx, span := ds.tracer.Start(ctx, "docstore.Retrieve")
	defer span.End()
	defer ds.metrics.RecordOperationDuration(time.Now(), "retrieve", ds.collection)

	status, returned := "error", 0
	defer func() { ds.metrics.ObserveRetrieval(ds.collection, status, returned) }()

	if err := ds.ensureCollection(ctx, false); err != nil {
		return nil, fmt.Errorf("retrieve %q: %w", ds.collection, err)
	}

	resp, err := ds.embedder.Embed(ctx, &embedding.EmbedRequest{
		Input:   []*document.Document{req.Query},
		Options: ds.embedderOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("retrieve %q: embedding query failed: %w", ds.collection, err)
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("retrieve %q: embedder returned no embedding for query", ds.collection)
	}

	hits, err := ds.store.Query(ctx, vectordb.QueryRequest{
		CollectionName: ds.collection,
		Vector:         resp.Embeddings[0].Values,
		Limit:          limit,
		Filter:         opts.Filter,
		ScoreThreshold: opts.ScoreThreshold,
		PayloadFields:  []string{ds.contentKey, ds.metadataKey, ds.contentTypeKey},
	})
	if err != nil {
		return nil, fmt.Errorf("retrieve %q: query failed: %w", ds.collection, err)
	}

	docs := make([]*document.Document, 0, len(hits))
	for _, hit := range hits {
		doc, err := ds.documentFromHit(hit)
		if err != nil {
			return nil, fmt.Errorf("retrieve %q: %w", ds.collection, err)
		}
		docs = append(docs, doc)
	}

	status, returned = "success", len(docs)
	ds.log.Debug("retrieved documents", zap.Int("hits", len(docs)), zap.Int("limit", limit))

	return &registry.RetrieverResponse{Documents: docs}, nil
}

// documentFromHit reconstructs a document from the payload fields of one
// query hit.
func (ds *DocStore) documentFromHit(hit vectordb.ScoredPoint) (*document.Document, error) {
	content, _ := hit.Payload[ds.contentKey].(string)
	if content == "" {
		return nil, ErrMissingContent
	}

	metadata := make(map[string]any)
	if m, ok := hit.Payload[ds.metadataKey].(map[string]any); ok {
		for k, v := range m {
			metadata[k] = v
		}
	}
	metadata[ScoreMetadataKey] = hit.Score

	contentType := document.ContentTypeText
	if ct, ok := hit.Payload[ds.contentTypeKey].(string); ok && ct != "" {
		contentType = ct
	}

	return &document.Document{
		Content:  []*document.Part{{ContentType: contentType, Text: content}},
		Metadata: metadata,
	}, nil
}
