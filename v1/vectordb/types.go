package vectordb

// Point is the backend storage unit: a vector plus its structured payload
// under a deterministic identifier.
type Point struct {
	// ID is a UUID string derived from document content
	ID string `json:"id"`

	// Vector is the dense embedding representation
	Vector []float32 `json:"vector"`

	// Payload is the metadata stored with the vector
	Payload map[string]any `json:"payload,omitempty"`
}

// ScoredPoint is a single query hit with its similarity score.
type ScoredPoint struct {
	// ID is the unique identifier of the matched point
	ID string `json:"id"`

	// Score is the similarity score (higher = more similar for cosine)
	Score float32 `json:"score"`

	// Payload contains the requested payload fields of the matched point
	Payload map[string]any `json:"payload,omitempty"`
}

// QueryRequest is a single nearest-neighbor query.
type QueryRequest struct {
	// CollectionName is the target collection to search in
	CollectionName string `json:"collectionName"`

	// Vector is the query embedding to find similar vectors for
	Vector []float32 `json:"vector"`

	// Limit is the maximum number of results to return
	Limit int `json:"limit"`

	// Filter is an opaque, backend-defined predicate passed through
	// unmodified. Backends type-assert it to their native filter type.
	Filter any `json:"-"`

	// ScoreThreshold drops hits scoring below the given value when set.
	ScoreThreshold *float32 `json:"scoreThreshold,omitempty"`

	// PayloadFields restricts which payload fields the backend returns.
	// Empty means all fields.
	PayloadFields []string `json:"payloadFields,omitempty"`
}

// DefaultDistance is the distance metric used when a schema does not name one.
const DefaultDistance = "Cosine"

// Schema fixes the vector dimensionality and distance metric of a
// collection at creation time.
type Schema struct {
	// VectorSize is the embedding dimension of the collection
	VectorSize uint64 `json:"vectorSize"`

	// Distance is the similarity metric (e.g. "Cosine", "Dot", "Euclid").
	// Empty means DefaultDistance.
	Distance string `json:"distance,omitempty"`
}
