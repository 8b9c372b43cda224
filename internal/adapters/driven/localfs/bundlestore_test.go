package localfs

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// TestBundleStore_RoundTrip tests write then read returns identical text
func TestBundleStore_RoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := NewBundleStore(fsys)
	ctx := context.Background()
	bundle := "@FILE_START: a.lua\nx\n\n@FILE_END: a.lua\n"

	require.NoError(t, s.WriteBundle(ctx, "/backups/nvim/init-flat.lua", bundle))

	got, err := s.ReadBundle(ctx, "/backups/nvim/init-flat.lua")
	require.NoError(t, err)
	assert.Equal(t, bundle, got)
}

// TestBundleStore_ReadMissing tests the not-found sentinel carries the path
func TestBundleStore_ReadMissing(t *testing.T) {
	s := NewBundleStore(afero.NewMemMapFs())

	_, err := s.ReadBundle(context.Background(), "/nowhere/bundle.lua")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBundleNotFound)
	assert.Contains(t, err.Error(), "/nowhere/bundle.lua")
}

// TestBundleStore_WriteCreatesParents tests parent directory creation
func TestBundleStore_WriteCreatesParents(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := NewBundleStore(fsys)

	require.NoError(t, s.WriteBundle(context.Background(), "/deep/nested/dir/out.lua", "x\n"))

	ok, err := afero.Exists(fsys, "/deep/nested/dir/out.lua")
	require.NoError(t, err)
	assert.True(t, ok)
}
