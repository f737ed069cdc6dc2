package docstore

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/vectorkit/retrieval/v1/document"
	"github.com/vectorkit/retrieval/v1/embedding"
	"github.com/vectorkit/retrieval/v1/vectordb"
)

// fakeEmbedder hands out pre-registered vectors per document, in the style
// of a recorded embedding service. Documents without a registration fall
// back to the fallback vector when one is set (covers the dimensionality
// probe), otherwise embedding fails.
type fakeEmbedder struct {
	mu       sync.Mutex
	vectors  map[*document.Document][][]float32
	fallback []float32
	err      error
	calls    int
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{vectors: make(map[*document.Document][][]float32)}
}

func (e *fakeEmbedder) register(d *document.Document, chunks ...[]float32) {
	e.vectors[d] = chunks
}

func (e *fakeEmbedder) Embed(ctx context.Context, req *embedding.EmbedRequest) (*embedding.EmbedResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	if e.err != nil {
		return nil, e.err
	}

	resp := &embedding.EmbedResponse{}
	for _, doc := range req.Input {
		chunks, ok := e.vectors[doc]
		if !ok {
			if e.fallback == nil {
				return nil, errors.New("fake embedder called with unregistered document")
			}
			chunks = [][]float32{e.fallback}
		}
		for _, c := range chunks {
			resp.Embeddings = append(resp.Embeddings, &embedding.Embedding{Values: c})
		}
	}
	return resp, nil
}

// fakeStore is an in-memory vectordb.Store with cosine scoring. It records
// calls so tests can assert on exactly what the adapters sent.
type fakeStore struct {
	mu          sync.Mutex
	collections map[string]vectordb.Schema
	points      map[string]map[string]vectordb.Point
	existsCalls int
	upsertCalls int
	lastQuery   *vectordb.QueryRequest

	existsErr error
	createErr error
	upsertErr error
	queryErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		collections: make(map[string]vectordb.Schema),
		points:      make(map[string]map[string]vectordb.Point),
	}
}

func (s *fakeStore) addCollection(name string, schema vectordb.Schema) {
	s.collections[name] = schema
	s.points[name] = make(map[string]vectordb.Point)
}

func (s *fakeStore) CollectionExists(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.existsCalls++
	if s.existsErr != nil {
		return false, s.existsErr
	}
	_, ok := s.collections[name]
	return ok, nil
}

func (s *fakeStore) CreateCollection(ctx context.Context, name string, schema vectordb.Schema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.collections[name] = schema
	s.points[name] = make(map[string]vectordb.Point)
	return nil
}

func (s *fakeStore) Upsert(ctx context.Context, collection string, points []vectordb.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertCalls++
	if s.upsertErr != nil {
		return s.upsertErr
	}
	stored, ok := s.points[collection]
	if !ok {
		return fmt.Errorf("fake store: collection %q missing", collection)
	}
	for _, p := range points {
		stored[p.ID] = p
	}
	return nil
}

func (s *fakeStore) Query(ctx context.Context, req vectordb.QueryRequest) ([]vectordb.ScoredPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQuery = &req
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	stored, ok := s.points[req.CollectionName]
	if !ok {
		return nil, fmt.Errorf("fake store: collection %q missing", req.CollectionName)
	}

	hits := make([]vectordb.ScoredPoint, 0, len(stored))
	for _, p := range stored {
		score := cosine(req.Vector, p.Vector)
		if req.ScoreThreshold != nil && score < *req.ScoreThreshold {
			continue
		}
		payload := p.Payload
		if len(req.PayloadFields) > 0 {
			payload = make(map[string]any, len(req.PayloadFields))
			for _, f := range req.PayloadFields {
				if v, ok := p.Payload[f]; ok {
					payload[f] = v
				}
			}
		}
		hits = append(hits, vectordb.ScoredPoint{ID: p.ID, Score: score, Payload: payload})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if req.Limit < len(hits) {
		hits = hits[:req.Limit]
	}
	return hits, nil
}

func (s *fakeStore) pointCount(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points[collection])
}

func cosine(a, b []float32) float32 {
	var dot, na, nb float64
	for i := range a {
		if i >= len(b) {
			break
		}
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}

func newTestStore(store *fakeStore, embedder embedding.Embedder, mutate ...func(*Config)) (*DocStore, error) {
	cfg := Config{
		Collection: "test-collection",
		Store:      store,
		Embedder:   embedder,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	return New(cfg)
}
