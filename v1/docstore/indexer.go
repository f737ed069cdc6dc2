package docstore

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vectorkit/retrieval/v1/document"
	"github.com/vectorkit/retrieval/v1/embedding"
	"github.com/vectorkit/retrieval/v1/registry"
	"github.com/vectorkit/retrieval/v1/vectordb"
)

// maxConcurrentEmbeds bounds the embedding fan-out during indexing.
const maxConcurrentEmbeds = 8

// IndexerOptions is accepted by Index. It currently has no recognized
// fields and exists so callers can pass a typed value once options appear.
type IndexerOptions struct{}

// Index implements registry.Indexer.
//
// An empty document list is a no-op success: no collection is created and
// no network write happens. Otherwise the collection is created on demand,
// every document is embedded, and all resulting points are written in one
// batched upsert. Any embedder, conversion or upsert failure aborts the
// whole call; nothing is retried here.
func (ds *DocStore) Index(ctx context.Context, req *registry.IndexerRequest) error {
	if len(req.Documents) == 0 {
		return nil
	}
	if req.Options != nil {
		if _, ok := req.Options.(*IndexerOptions); !ok {
			return fmt.Errorf("docstore index: options have type %T, want %T", req.Options, &IndexerOptions{})
		}
	}

	ctx, span := ds.tracer.Start(ctx, "docstore.Index")
	defer span.End()
	defer ds.metrics.RecordOperationDuration(time.Now(), "index", ds.collection)

	if err := ds.ensureCollection(ctx, true); err != nil {
		return fmt.Errorf("index %q: %w", ds.collection, err)
	}

	// Embedding calls are independent, so they fan out concurrently.
	// Results are re-associated with their source document by slice index;
	// point construction below relies on that pairing being stable.
	embedded := make([][]*embedding.Embedding, len(req.Documents))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEmbeds)
	for i, doc := range req.Documents {
		g.Go(func() error {
			resp, err := ds.embedder.Embed(gctx, &embedding.EmbedRequest{
				Input:   []*document.Document{doc},
				Options: ds.embedderOptions,
			})
			if err != nil {
				return fmt.Errorf("embedding document %d failed: %w", i, err)
			}
			if len(resp.Embeddings) == 0 {
				return fmt.Errorf("embedder returned no embedding for document %d", i)
			}
			embedded[i] = resp.Embeddings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("index %q: %w", ds.collection, err)
	}

	// One point per embedded chunk.
	points := make([]vectordb.Point, 0, len(req.Documents))
	for i, doc := range req.Documents {
		for chunk, emb := range embedded[i] {
			id, err := PointID(doc, chunk)
			if err != nil {
				return fmt.Errorf("index %q: %w", ds.collection, err)
			}
			points = append(points, vectordb.Point{
				ID:      id,
				Vector:  emb.Values,
				Payload: ds.buildPayload(doc),
			})
		}
	}

	if err := ds.store.Upsert(ctx, ds.collection, points); err != nil {
		return fmt.Errorf("index %q: upsert failed: %w", ds.collection, err)
	}

	ds.metrics.ObserveDocumentsIndexed(ds.collection, len(req.Documents))
	ds.metrics.ObservePointsUpserted(ds.collection, len(points))
	ds.log.Debug("indexed documents",
		zap.Int("documents", len(req.Documents)),
		zap.Int("points", len(points)))

	return nil
}

// buildPayload maps a document onto the configured payload fields.
// Metadata stays a nested mapping so the backend converts it as one
// structured value.
func (ds *DocStore) buildPayload(doc *document.Document) map[string]any {
	return map[string]any{
		ds.contentKey:     doc.Text(),
		ds.metadataKey:    doc.Metadata,
		ds.contentTypeKey: doc.ContentType(),
	}
}
