// Package docstore implements the document indexing and retrieval adapters
// over a [vectordb.Store] backend and an [embedding.Embedder].
//
// A [DocStore] is bound to one collection. Indexing embeds documents
// (concurrently, re-associated by position), derives a deterministic point
// ID from each document's canonical serialization, and writes all points in
// one batched upsert — re-indexing identical content overwrites instead of
// duplicating. Retrieval embeds the query, runs a nearest-neighbor search
// with an optional opaque filter and score threshold, and reconstructs
// documents from the stored payload fields plus the similarity score.
//
// The collection is created lazily by the indexer (with a probed vector
// size when no schema is configured) and never by the retriever; retrieving
// from a collection that was never indexed into fails with
// [ErrCollectionNotFound].
//
// Operations are single-shot request/response calls: no internal retries,
// no background work, cancellation via the request context.
package docstore
