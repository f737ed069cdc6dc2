package qdrant

import (
	"context"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/vectorkit/retrieval/v1/vectordb"
)

// Store implements vectordb.Store on top of the Qdrant SDK client.
// It is stateless apart from the shared client, which is safe for
// concurrent use, so a single Store serves all in-flight adapter calls.
type Store struct {
	client *Client
}

// NewStore returns a vectordb.Store backed by the given client.
func NewStore(client *Client) *Store {
	return &Store{client: client}
}

var _ vectordb.Store = (*Store)(nil)

// CollectionExists reports whether the named collection exists.
func (s *Store) CollectionExists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("qdrant: collection name cannot be empty")
	}
	exists, err := s.client.api.CollectionExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("qdrant: failed to check collection %q: %w", name, err)
	}
	return exists, nil
}

// CreateCollection creates a collection with the given vector schema.
func (s *Store) CreateCollection(ctx context.Context, name string, schema vectordb.Schema) error {
	if name == "" {
		return fmt.Errorf("qdrant: collection name cannot be empty")
	}
	if schema.VectorSize == 0 {
		return fmt.Errorf("qdrant: vector size cannot be zero")
	}

	distance, err := distanceFromString(schema.Distance)
	if err != nil {
		return err
	}

	req := &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     schema.VectorSize,
			Distance: distance,
		}),
	}

	if err := s.client.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("qdrant: failed to create collection %q: %w", name, err)
	}
	return nil
}

// Upsert writes all points in one batched call. Payloads are converted into
// Qdrant's typed value union; a conversion failure aborts the whole upsert
// before anything is sent. Wait=true blocks until the write is persisted.
func (s *Store) Upsert(ctx context.Context, collection string, points []vectordb.Point) error {
	if len(points) == 0 {
		return nil
	}

	qpoints := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		payload, err := NewValueMap(p.Payload)
		if err != nil {
			return fmt.Errorf("qdrant: payload conversion for point %s: %w", p.ID, err)
		}
		qpoints = append(qpoints, &qdrant.PointStruct{
			Id:      qdrant.NewID(p.ID),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: payload,
		})
	}

	wait := true
	_, err := s.client.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         qpoints,
		Wait:           &wait,
	})
	if err != nil {
		return fmt.Errorf("qdrant: upsert into %q failed: %w", collection, err)
	}
	return nil
}

// Query performs a nearest-neighbor search. The request filter, when set,
// must be a *qdrant.Filter; it is passed through to the backend unmodified.
func (s *Store) Query(ctx context.Context, req vectordb.QueryRequest) ([]vectordb.ScoredPoint, error) {
	if err := validateQueryInput(req); err != nil {
		return nil, err
	}

	filter, err := nativeFilter(req.Filter)
	if err != nil {
		return nil, err
	}

	limit := uint64(req.Limit)
	resp, err := s.client.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: req.CollectionName,
		Query:          qdrant.NewQuery(req.Vector...),
		Limit:          &limit,
		Filter:         filter,
		ScoreThreshold: req.ScoreThreshold,
		WithPayload:    payloadSelector(req.PayloadFields),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: query against %q failed: %w", req.CollectionName, err)
	}

	results := make([]vectordb.ScoredPoint, 0, len(resp))
	for _, r := range resp {
		id, err := extractPointID(r.Id)
		if err != nil {
			return nil, fmt.Errorf("qdrant: %w", err)
		}
		results = append(results, vectordb.ScoredPoint{
			ID:      id,
			Score:   r.Score,
			Payload: extractPayload(r.Payload),
		})
	}
	return results, nil
}

// nativeFilter asserts the opaque filter to Qdrant's native type.
func nativeFilter(f any) (*qdrant.Filter, error) {
	if f == nil {
		return nil, nil
	}
	filter, ok := f.(*qdrant.Filter)
	if !ok {
		return nil, fmt.Errorf("qdrant: filter has type %T, want %T", f, &qdrant.Filter{})
	}
	return filter, nil
}

// payloadSelector restricts returned payload fields; an empty list returns
// everything. The vector itself is never requested.
func payloadSelector(fields []string) *qdrant.WithPayloadSelector {
	if len(fields) == 0 {
		return qdrant.NewWithPayload(true)
	}
	return &qdrant.WithPayloadSelector{
		SelectorOptions: &qdrant.WithPayloadSelector_Include{
			Include: &qdrant.PayloadIncludeSelector{Fields: fields},
		},
	}
}

// validateQueryInput validates common query parameters.
func validateQueryInput(req vectordb.QueryRequest) error {
	if req.CollectionName == "" {
		return fmt.Errorf("qdrant: collection name cannot be empty")
	}
	if len(req.Vector) == 0 {
		return fmt.Errorf("qdrant: query vector cannot be empty")
	}
	if req.Limit <= 0 {
		return fmt.Errorf("qdrant: query limit must be greater than 0")
	}
	return nil
}

// distanceFromString maps a schema distance name onto the SDK enum.
func distanceFromString(name string) (qdrant.Distance, error) {
	switch name {
	case "", vectordb.DefaultDistance:
		return qdrant.Distance_Cosine, nil
	case "Dot":
		return qdrant.Distance_Dot, nil
	case "Euclid":
		return qdrant.Distance_Euclid, nil
	case "Manhattan":
		return qdrant.Distance_Manhattan, nil
	default:
		return qdrant.Distance_UnknownDistance, fmt.Errorf("qdrant: unknown distance metric %q", name)
	}
}
