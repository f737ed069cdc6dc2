package docstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vectorkit/retrieval/v1/document"
	"github.com/vectorkit/retrieval/v1/embedding"
	"github.com/vectorkit/retrieval/v1/vectordb"
)

// probeText is embedded once to discover the vector dimensionality when a
// collection must be created without an explicit schema. The resulting
// vector is thrown away.
const probeText = "dimensionality probe"

// ensureCollection checks that the target collection exists.
//
// The indexer calls it with createIfMissing=true and the retriever with
// createIfMissing=false: indexing bootstraps its own collection, retrieval
// against a missing one is a hard error. This asymmetry is the whole
// collection lifecycle — nothing here ever deletes a collection.
func (ds *DocStore) ensureCollection(ctx context.Context, createIfMissing bool) error {
	exists, err := ds.store.CollectionExists(ctx, ds.collection)
	if err != nil {
		return fmt.Errorf("checking collection: %w", err)
	}
	if exists {
		return nil
	}
	if !createIfMissing {
		return fmt.Errorf("%w (index documents before retrieving)", ErrCollectionNotFound)
	}

	schema := vectordb.Schema{Distance: vectordb.DefaultDistance}
	if ds.schema != nil {
		schema = *ds.schema
		if schema.Distance == "" {
			schema.Distance = vectordb.DefaultDistance
		}
	} else {
		size, err := ds.probeVectorSize(ctx)
		if err != nil {
			return err
		}
		schema.VectorSize = size
	}

	if err := ds.store.CreateCollection(ctx, ds.collection, schema); err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	ds.log.Info("created collection",
		zap.Uint64("vector_size", schema.VectorSize),
		zap.String("distance", schema.Distance))
	return nil
}

// probeVectorSize derives the collection dimensionality from one throwaway
// embedding call.
func (ds *DocStore) probeVectorSize(ctx context.Context) (uint64, error) {
	resp, err := ds.embedder.Embed(ctx, &embedding.EmbedRequest{
		Input:   []*document.Document{document.FromText(probeText, nil)},
		Options: ds.embedderOptions,
	})
	if err != nil {
		return 0, fmt.Errorf("probing vector size: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return 0, fmt.Errorf("probing vector size: embedder returned an empty vector")
	}
	return uint64(len(resp.Embeddings[0].Values)), nil
}
