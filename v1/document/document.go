package document

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ContentTypeText is the content type assigned to plain-text parts.
const ContentTypeText = "text"

// Part is a single chunk of document content together with its declared
// content type.
type Part struct {
	ContentType string `json:"contentType"`
	Text        string `json:"text"`
}

// NewTextPart returns a Part holding plain text.
func NewTextPart(text string) *Part {
	return &Part{ContentType: ContentTypeText, Text: text}
}

// Document is the unit of indexing and retrieval: an ordered sequence of
// content parts plus an unordered metadata mapping. Documents carry no
// caller-assigned identity; the indexer derives one from content.
type Document struct {
	Content  []*Part        `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// FromText returns a Document holding a single text part and the given
// metadata.
func FromText(text string, metadata map[string]any) *Document {
	return &Document{
		Content:  []*Part{NewTextPart(text)},
		Metadata: metadata,
	}
}

// Text concatenates the text of all content parts in order.
func (d *Document) Text() string {
	var sb strings.Builder
	for _, p := range d.Content {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// ContentType returns the declared content type of the first part, or
// ContentTypeText for documents without content.
func (d *Document) ContentType() string {
	if len(d.Content) == 0 || d.Content[0].ContentType == "" {
		return ContentTypeText
	}
	return d.Content[0].ContentType
}

// CanonicalBytes serializes the document to a deterministic byte form
// suitable for content-addressed identity. Struct field order is fixed by
// declaration and encoding/json sorts map keys, so two documents with
// identical content always serialize to identical bytes regardless of the
// order their metadata was populated in.
func (d *Document) CanonicalBytes() ([]byte, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("document: serialization failed: %w", err)
	}
	return b, nil
}
