package docstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorkit/retrieval/v1/document"
	"github.com/vectorkit/retrieval/v1/registry"
	"github.com/vectorkit/retrieval/v1/vectordb"
)

// seedGreetings indexes two near-identical greetings and one unrelated
// document, so similarity ordering is observable.
func seedGreetings(t *testing.T, store *fakeStore, embedder *fakeEmbedder, ds *DocStore) {
	t.Helper()

	hello1 := document.FromText("hello one", nil)
	hello2 := document.FromText("hello two", nil)
	goodbye := document.FromText("goodbye", nil)
	embedder.register(hello1, []float32{1, 0, 0.1})
	embedder.register(hello2, []float32{1, 0.1, 0})
	embedder.register(goodbye, []float32{0, 1, 0})

	err := ds.Index(context.Background(), &registry.IndexerRequest{
		Documents: []*document.Document{hello1, hello2, goodbye},
	})
	require.NoError(t, err)
}

func TestRetrieveMissingCollection(t *testing.T) {
	store := newFakeStore()
	embedder := newFakeEmbedder()
	embedder.fallback = []float32{1, 0}
	ds, err := newTestStore(store, embedder)
	require.NoError(t, err)

	_, err = ds.Retrieve(context.Background(), &registry.RetrieverRequest{
		Query: document.FromText("hello", nil),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCollectionNotFound,
		"retrieval must never create the collection")
	assert.Zero(t, embedder.calls, "no embedding before the collection check")
}

func TestRetrieveTopKOrdering(t *testing.T) {
	store := newFakeStore()
	store.addCollection("test-collection", vectordb.Schema{VectorSize: 3})
	embedder := newFakeEmbedder()
	ds, err := newTestStore(store, embedder)
	require.NoError(t, err)
	seedGreetings(t, store, embedder, ds)

	query := document.FromText("hello", nil)
	embedder.register(query, []float32{1, 0, 0})

	resp, err := ds.Retrieve(context.Background(), &registry.RetrieverRequest{
		Query:   query,
		Options: &RetrieverOptions{K: 2},
	})
	require.NoError(t, err)
	require.Len(t, resp.Documents, 2)

	got := []string{resp.Documents[0].Text(), resp.Documents[1].Text()}
	assert.Contains(t, got, "hello one")
	assert.Contains(t, got, "hello two")
	assert.NotContains(t, got, "goodbye")
}

func TestRetrieveInjectsScoreMetadata(t *testing.T) {
	store := newFakeStore()
	store.addCollection("test-collection", vectordb.Schema{VectorSize: 3})
	embedder := newFakeEmbedder()
	ds, err := newTestStore(store, embedder)
	require.NoError(t, err)
	seedGreetings(t, store, embedder, ds)

	query := document.FromText("hello", nil)
	embedder.register(query, []float32{1, 0, 0})

	resp, err := ds.Retrieve(context.Background(), &registry.RetrieverRequest{
		Query:   query,
		Options: &RetrieverOptions{K: 1},
	})
	require.NoError(t, err)
	require.Len(t, resp.Documents, 1)

	score, ok := resp.Documents[0].Metadata[ScoreMetadataKey].(float32)
	require.True(t, ok, "score must be injected into document metadata")
	assert.Greater(t, score, float32(0.9))
}

func TestRetrieveDefaultLimit(t *testing.T) {
	store := newFakeStore()
	store.addCollection("test-collection", vectordb.Schema{VectorSize: 2})
	embedder := newFakeEmbedder()
	embedder.fallback = []float32{1, 0}
	ds, err := newTestStore(store, embedder)
	require.NoError(t, err)

	_, err = ds.Retrieve(context.Background(), &registry.RetrieverRequest{
		Query: document.FromText("hello", nil),
	})
	require.NoError(t, err)

	require.NotNil(t, store.lastQuery)
	assert.Equal(t, DefaultRetrieveLimit, store.lastQuery.Limit)
}

func TestRetrieveRejectsWrongOptionsType(t *testing.T) {
	store := newFakeStore()
	store.addCollection("test-collection", vectordb.Schema{VectorSize: 2})
	embedder := newFakeEmbedder()
	ds, err := newTestStore(store, embedder)
	require.NoError(t, err)

	_, err = ds.Retrieve(context.Background(), &registry.RetrieverRequest{
		Query:   document.FromText("hello", nil),
		Options: IndexerOptions{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "options have type")
}

func TestRetrievePassesFilterAndThresholdThrough(t *testing.T) {
	store := newFakeStore()
	store.addCollection("test-collection", vectordb.Schema{VectorSize: 2})
	embedder := newFakeEmbedder()
	embedder.fallback = []float32{1, 0}
	ds, err := newTestStore(store, embedder)
	require.NoError(t, err)

	threshold := float32(0.5)
	filter := map[string]string{"lang": "en"}
	_, err = ds.Retrieve(context.Background(), &registry.RetrieverRequest{
		Query:   document.FromText("hello", nil),
		Options: &RetrieverOptions{K: 3, Filter: filter, ScoreThreshold: &threshold},
	})
	require.NoError(t, err)

	require.NotNil(t, store.lastQuery)
	assert.Equal(t, 3, store.lastQuery.Limit)
	assert.Equal(t, any(filter), store.lastQuery.Filter, "filter is passed through opaque")
	require.NotNil(t, store.lastQuery.ScoreThreshold)
	assert.Equal(t, threshold, *store.lastQuery.ScoreThreshold)
}

func TestRetrieveRequestsOnlyPayloadFields(t *testing.T) {
	store := newFakeStore()
	store.addCollection("test-collection", vectordb.Schema{VectorSize: 2})
	embedder := newFakeEmbedder()
	embedder.fallback = []float32{1, 0}
	ds, err := newTestStore(store, embedder, func(cfg *Config) {
		cfg.ContentKey = "body"
	})
	require.NoError(t, err)

	_, err = ds.Retrieve(context.Background(), &registry.RetrieverRequest{
		Query: document.FromText("hello", nil),
	})
	require.NoError(t, err)

	require.NotNil(t, store.lastQuery)
	assert.ElementsMatch(t,
		[]string{"body", DefaultMetadataKey, DefaultContentTypeKey},
		store.lastQuery.PayloadFields)
}

func TestRetrieveMissingContentField(t *testing.T) {
	store := newFakeStore()
	store.addCollection("test-collection", vectordb.Schema{VectorSize: 2})
	store.points["test-collection"]["deadbeef"] = vectordb.Point{
		ID:      "deadbeef",
		Vector:  []float32{1, 0},
		Payload: map[string]any{DefaultMetadataKey: map[string]any{"lang": "en"}},
	}
	embedder := newFakeEmbedder()
	embedder.fallback = []float32{1, 0}
	ds, err := newTestStore(store, embedder)
	require.NoError(t, err)

	_, err = ds.Retrieve(context.Background(), &registry.RetrieverRequest{
		Query: document.FromText("hello", nil),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingContent,
		"a hit without content must fail loudly, not degrade to an empty document")
}

func TestRetrieveContentTypeDefaultsToText(t *testing.T) {
	store := newFakeStore()
	store.addCollection("test-collection", vectordb.Schema{VectorSize: 2})
	store.points["test-collection"]["p1"] = vectordb.Point{
		ID:      "p1",
		Vector:  []float32{1, 0},
		Payload: map[string]any{DefaultContentKey: "hello"},
	}
	embedder := newFakeEmbedder()
	embedder.fallback = []float32{1, 0}
	ds, err := newTestStore(store, embedder)
	require.NoError(t, err)

	resp, err := ds.Retrieve(context.Background(), &registry.RetrieverRequest{
		Query: document.FromText("hello", nil),
	})
	require.NoError(t, err)
	require.Len(t, resp.Documents, 1)
	assert.Equal(t, document.ContentTypeText, resp.Documents[0].ContentType())
}

func TestRetrieveQueryEmbeddingFailure(t *testing.T) {
	store := newFakeStore()
	store.addCollection("test-collection", vectordb.Schema{VectorSize: 2})
	embedder := newFakeEmbedder()
	embedder.err = errors.New("model overloaded")
	ds, err := newTestStore(store, embedder)
	require.NoError(t, err)

	_, err = ds.Retrieve(context.Background(), &registry.RetrieverRequest{
		Query: document.FromText("hello", nil),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding query failed")
	assert.Nil(t, store.lastQuery, "no query after an embedding failure")
}
