package localfs

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

func readBack(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}

// TestMaterializer_WritesTree tests files land under the root with parents
func TestMaterializer_WritesTree(t *testing.T) {
	fsys := afero.NewMemMapFs()
	m := NewMaterializer(fsys)
	docs := []domain.Document{
		{Path: "init.lua", Content: "require('config')\n"},
		{Path: "lua/config/options.lua", Content: "vim.o.number = true\n"},
		{Path: "lua/plugins/git.lua", Content: "return {}\n"},
	}

	files, dirs, err := m.Materialize(context.Background(), "/out", docs)

	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "init.lua", files[0].Path)
	assert.Equal(t, 1, files[0].Lines)

	// /out, /out/lua, /out/lua/config, /out/lua/plugins
	assert.Equal(t, 4, dirs)

	assert.Equal(t, "require('config')\n", readBack(t, fsys, "/out/init.lua"))
	assert.Equal(t, "vim.o.number = true\n", readBack(t, fsys, "/out/lua/config/options.lua"))
	assert.Equal(t, "return {}\n", readBack(t, fsys, "/out/lua/plugins/git.lua"))
}

// TestMaterializer_TrailingNewline tests the exactly-one-newline guarantee
func TestMaterializer_TrailingNewline(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"missing newline gains one", "hello", "hello\n"},
		{"existing newline untouched", "hello\n", "hello\n"},
		{"extra blank lines preserved", "hello\n\n\n", "hello\n\n\n"},
		{"empty content becomes one newline", "", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			m := NewMaterializer(fsys)

			_, _, err := m.Materialize(context.Background(), "/out",
				[]domain.Document{{Path: "f.lua", Content: tt.content}})

			require.NoError(t, err)
			assert.Equal(t, tt.want, readBack(t, fsys, "/out/f.lua"))
		})
	}
}

// TestMaterializer_ExistingDirs tests pre-existing directories are not counted
func TestMaterializer_ExistingDirs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/out/lua", 0o755))
	m := NewMaterializer(fsys)

	_, dirs, err := m.Materialize(context.Background(), "/out",
		[]domain.Document{{Path: "lua/a.lua", Content: "a\n"}})

	require.NoError(t, err)
	assert.Equal(t, 0, dirs)
}

// TestMaterializer_DuplicatePathLastWins tests write-in-order semantics
func TestMaterializer_DuplicatePathLastWins(t *testing.T) {
	fsys := afero.NewMemMapFs()
	m := NewMaterializer(fsys)
	docs := []domain.Document{
		{Path: "dup.lua", Content: "first\n"},
		{Path: "dup.lua", Content: "second\n"},
	}

	files, _, err := m.Materialize(context.Background(), "/out", docs)

	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Equal(t, "second\n", readBack(t, fsys, "/out/dup.lua"))
}

// TestMaterializer_WriteFailure tests errors abort with the partial state
func TestMaterializer_WriteFailure(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	m := NewMaterializer(fsys)

	files, _, err := m.Materialize(context.Background(), "/out",
		[]domain.Document{{Path: "f.lua", Content: "x\n"}})

	require.Error(t, err)
	assert.Empty(t, files)
}

// TestMaterializer_CancelledContext tests cancellation between writes
func TestMaterializer_CancelledContext(t *testing.T) {
	fsys := afero.NewMemMapFs()
	m := NewMaterializer(fsys)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := m.Materialize(ctx, "/out", []domain.Document{{Path: "f.lua", Content: "x\n"}})
	assert.ErrorIs(t, err, context.Canceled)
}
