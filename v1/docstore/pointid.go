package docstore

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/vectorkit/retrieval/v1/document"
)

// PointID derives a deterministic point identifier from document content,
// so that re-indexing identical content overwrites the stored point instead
// of duplicating it. Vector databases commonly restrict point IDs to UUIDs
// or positive integers; a name-based UUID over the canonical serialization
// satisfies both determinism and that restriction.
//
// The chunk ordinal is appended for documents that expand into multiple
// embeddable chunks, keeping per-chunk IDs distinct while leaving the
// common single-chunk case identical to a plain content hash. SHA-1 here is
// purely a derivation function, not a security boundary.
func PointID(doc *document.Document, chunk int) (string, error) {
	b, err := doc.CanonicalBytes()
	if err != nil {
		return "", err
	}
	if chunk > 0 {
		b = strconv.AppendInt(append(b, '#'), int64(chunk), 10)
	}
	return uuid.NewSHA1(uuid.NameSpaceDNS, b).String(), nil
}
