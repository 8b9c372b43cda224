package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDocument_Lines tests line counting across content shapes
func TestDocument_Lines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"single line no newline", "hello", 1},
		{"single line with newline", "hello\n", 1},
		{"two lines", "a\nb", 2},
		{"two lines trailing newline", "a\nb\n", 2},
		{"trailing blank line", "a\n\n", 2},
		{"only newline", "\n", 1},
		{"unicode", "héllo wörld\nsecond\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{Path: "x.lua", Content: tt.content}
			assert.Equal(t, tt.want, doc.Lines())
		})
	}
}

// TestFlatten tests section flattening preserves order
func TestFlatten(t *testing.T) {
	sections := []Section{
		{Name: "A", Documents: []Document{{Path: "a1"}, {Path: "a2"}}},
		{Name: "B", Documents: nil},
		{Name: "C", Documents: []Document{{Path: "c1"}}},
	}

	docs := Flatten(sections)

	assert.Len(t, docs, 3)
	assert.Equal(t, "a1", docs[0].Path)
	assert.Equal(t, "a2", docs[1].Path)
	assert.Equal(t, "c1", docs[2].Path)
}

// TestFlatten_Empty tests flattening no sections
func TestFlatten_Empty(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, Flatten([]Section{}))
}
