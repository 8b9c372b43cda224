package localfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driven"
)

// Ensure BundleStore implements the interface.
var _ driven.BundleStore = (*BundleStore)(nil)

// BundleStore reads and writes bundle files.
type BundleStore struct {
	fs afero.Fs
}

// NewBundleStore creates a bundle store over fs. A nil fs means the host
// filesystem.
func NewBundleStore(fs afero.Fs) *BundleStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &BundleStore{fs: fs}
}

// ReadBundle returns the bundle text at path.
func (s *BundleStore) ReadBundle(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", domain.ErrBundleNotFound, path)
		}
		return "", fmt.Errorf("read bundle %s: %w", path, err)
	}
	return string(data), nil
}

// WriteBundle writes the bundle text to path, creating parent directories.
func (s *BundleStore) WriteBundle(ctx context.Context, path, bundle string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create bundle directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(s.fs, path, []byte(bundle), 0o644); err != nil {
		return fmt.Errorf("write bundle %s: %w", path, err)
	}
	return nil
}
