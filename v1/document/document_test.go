package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText(t *testing.T) {
	d := FromText("hello", map[string]any{"lang": "en"})
	require.Len(t, d.Content, 1)
	assert.Equal(t, ContentTypeText, d.Content[0].ContentType)
	assert.Equal(t, "hello", d.Content[0].Text)
	assert.Equal(t, map[string]any{"lang": "en"}, d.Metadata)
}

func TestTextConcatenatesParts(t *testing.T) {
	d := &Document{Content: []*Part{
		NewTextPart("hello "),
		NewTextPart("world"),
	}}
	assert.Equal(t, "hello world", d.Text())

	assert.Empty(t, (&Document{}).Text())
}

func TestContentType(t *testing.T) {
	assert.Equal(t, ContentTypeText, (&Document{}).ContentType())
	assert.Equal(t, ContentTypeText, FromText("hello", nil).ContentType())

	d := &Document{Content: []*Part{{ContentType: "text/markdown", Text: "# hi"}}}
	assert.Equal(t, "text/markdown", d.ContentType())
}

func TestCanonicalBytesIgnoresMetadataOrder(t *testing.T) {
	a := FromText("hello", map[string]any{"a": 1, "b": 2, "c": 3})
	b := FromText("hello", map[string]any{"c": 3, "b": 2, "a": 1})

	ba, err := a.CanonicalBytes()
	require.NoError(t, err)
	bb, err := b.CanonicalBytes()
	require.NoError(t, err)
	assert.Equal(t, ba, bb)
}

func TestCanonicalBytesDiffer(t *testing.T) {
	a, err := FromText("hello", nil).CanonicalBytes()
	require.NoError(t, err)
	b, err := FromText("goodbye", nil).CanonicalBytes()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCanonicalBytesUnserializable(t *testing.T) {
	d := FromText("hello", map[string]any{"fn": func() {}})
	_, err := d.CanonicalBytes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serialization failed")
}
