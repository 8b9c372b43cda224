package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// TestRoundTrip tests decode(encode(docs)) == docs across content shapes
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"plain with trailing newline", "hello\n"},
		{"no trailing newline", "hello"},
		{"empty", ""},
		{"only newline", "\n"},
		{"embedded blank lines", "first\n\nsecond\n\n\nthird\n"},
		{"trailing blank lines", "body\n\n\n"},
		{"unicode", "héllo wörld\n日本語のテキスト\n"},
		{"lua comment noise", "-- comment\nlocal x = 1 -- trailing\n"},
		{"metadata-like content", "generator: fake\ntimestamp: fake\n"},
		{"indented sentinel lookalike", "  @FILE_START: nested.lua\n  @FILE_END: nested.lua\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := []domain.Document{
				{Path: "lua/target.lua", Content: tt.content},
				{Path: "other.lua", Content: "untouched\n"},
			}

			decoded, err := Decode(Encode(docs, testMeta("lua/target.lua", "other.lua")))

			require.NoError(t, err)
			require.Equal(t, docs, decoded)
		})
	}
}

// TestDecode_Order tests first-seen start sentinel order is preserved
func TestDecode_Order(t *testing.T) {
	docs := []domain.Document{
		{Path: "c.lua", Content: "3\n"},
		{Path: "a.lua", Content: "1\n"},
		{Path: "b.lua", Content: "2\n"},
	}

	decoded, err := Decode(Encode(docs, testMeta("c.lua", "a.lua", "b.lua")))

	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.Equal(t, "c.lua", decoded[0].Path)
	assert.Equal(t, "a.lua", decoded[1].Path)
	assert.Equal(t, "b.lua", decoded[2].Path)
}

// TestDecode_PathPrefixSafety tests a.lua and a.lua.bak never cross-match
func TestDecode_PathPrefixSafety(t *testing.T) {
	docs := []domain.Document{
		{Path: "a.lua", Content: "the original\n"},
		{Path: "a.lua.bak", Content: "the backup\n"},
	}

	decoded, err := Decode(Encode(docs, testMeta("a.lua", "a.lua.bak")))

	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "a.lua", decoded[0].Path)
	assert.Equal(t, "the original\n", decoded[0].Content)
	assert.Equal(t, "a.lua.bak", decoded[1].Path)
	assert.Equal(t, "the backup\n", decoded[1].Content)
}

// TestDecode_PathPrefixSafety_Handmade tests cross-matching on a bundle
// where the shorter path's end sentinel comes after the longer one's
func TestDecode_PathPrefixSafety_Handmade(t *testing.T) {
	bundle := strings.Join([]string{
		"@FILE_START: a.lua",
		"short content",
		"@FILE_END: a.lua.bak",
		"still inside a.lua",
		"@FILE_END: a.lua",
		"",
	}, "\n")

	decoded, err := Decode(bundle)

	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "a.lua", decoded[0].Path)
	assert.Equal(t, "short content\n@FILE_END: a.lua.bak\nstill inside a.lua", decoded[0].Content)
}

// TestDecode_UnterminatedSection tests a start without its end extracts nothing
func TestDecode_UnterminatedSection(t *testing.T) {
	bundle := strings.Join([]string{
		"@FILE_START: good.lua",
		"fine",
		"@FILE_END: good.lua",
		"",
		"@FILE_START: broken.lua",
		"never closed",
		"",
	}, "\n")

	decoded, err := Decode(bundle)

	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "good.lua", decoded[0].Path)
	assert.Equal(t, "fine", decoded[0].Content)
}

// TestDecode_EmptyBundle tests inputs with no sections are rejected
func TestDecode_EmptyBundle(t *testing.T) {
	tests := []struct {
		name   string
		bundle string
	}{
		{"empty string", ""},
		{"arbitrary text", "just some\nrandom text\nwith no markers\n"},
		{"lone end sentinel", "@FILE_END: a.lua\n"},
		{"unterminated only", "@FILE_START: a.lua\ncontent\n"},
		{"indented start sentinel", "  @FILE_START: a.lua\nx\n  @FILE_END: a.lua\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := Decode(tt.bundle)

			assert.Nil(t, docs)
			assert.ErrorIs(t, err, domain.ErrEmptyBundle)
		})
	}
}

// TestDecode_DuplicatePaths tests duplicates decode in order, all kept
func TestDecode_DuplicatePaths(t *testing.T) {
	docs := []domain.Document{
		{Path: "dup.lua", Content: "first\n"},
		{Path: "dup.lua", Content: "second\n"},
	}

	decoded, err := Decode(Encode(docs, testMeta("dup.lua", "dup.lua")))

	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "first\n", decoded[0].Content)
	assert.Equal(t, "second\n", decoded[1].Content)
}

// TestDecode_ConcreteExample tests the canonical two-document example
func TestDecode_ConcreteExample(t *testing.T) {
	docs := []domain.Document{
		{Path: "a.txt", Content: "hello\n"},
		{Path: "b.txt", Content: ""},
	}

	bundle := Encode(docs, testMeta("a.txt", "b.txt"))
	assert.Contains(t, bundle, "@FILE_START: a.txt\nhello\n")
	assert.Contains(t, bundle, "@FILE_END: a.txt\n")
	assert.Contains(t, bundle, "@FILE_START: b.txt\n")
	assert.Contains(t, bundle, "@FILE_END: b.txt\n")

	decoded, err := Decode(bundle)
	require.NoError(t, err)
	require.Equal(t, docs, decoded)
}

// TestDecodeMetadata tests extraction of the key/value block
func TestDecodeMetadata(t *testing.T) {
	bundle := Encode(
		[]domain.Document{{Path: "init.lua", Content: "x\n"}},
		testMeta("init.lua", "lua/a.lua"),
	)

	meta, ok := DecodeMetadata(bundle)

	require.True(t, ok)
	assert.Equal(t, "plank test", meta[domain.MetaKeyGenerator])
	assert.Equal(t, "2025-08-25 14:03:07", meta[domain.MetaKeyTimestamp])
	assert.Equal(t, "/home/user/.config/nvim", meta[domain.MetaKeySourceDir])
	assert.Equal(t, "2", meta[domain.MetaKeyFileCount])
	assert.Equal(t, "init.lua, lua/a.lua", meta[domain.MetaKeyFiles])
}

// TestDecodeMetadata_Absent tests bundles without a metadata block
func TestDecodeMetadata_Absent(t *testing.T) {
	tests := []struct {
		name   string
		bundle string
	}{
		{"no block at all", "@FILE_START: a.lua\nx\n@FILE_END: a.lua\n"},
		{"unterminated block", "@META_START\ngenerator: plank\n"},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, ok := DecodeMetadata(tt.bundle)

			assert.False(t, ok)
			assert.Nil(t, meta)
		})
	}
}

// TestDecode_MetadataIndependence tests stripping the metadata block
// leaves document decoding fully intact
func TestDecode_MetadataIndependence(t *testing.T) {
	docs := []domain.Document{
		{Path: "a.lua", Content: "aa\n"},
		{Path: "b.lua", Content: "bb\n"},
	}
	bundle := Encode(docs, testMeta("a.lua", "b.lua"))

	// Remove the whole metadata block by hand.
	start := strings.Index(bundle, "@META_START")
	end := strings.Index(bundle, "@META_END") + len("@META_END\n")
	require.True(t, start >= 0 && end > start)
	stripped := bundle[:start] + bundle[end:]

	decoded, err := Decode(stripped)
	require.NoError(t, err)
	require.Equal(t, docs, decoded)

	meta, ok := DecodeMetadata(stripped)
	assert.False(t, ok)
	assert.Nil(t, meta)
}
