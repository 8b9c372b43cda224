package driven

import "context"

// BundleStore reads and writes the bundle artifact.
type BundleStore interface {
	// ReadBundle returns the bundle text at path.
	// Returns domain.ErrBundleNotFound (wrapped with the path) when the
	// file does not exist.
	ReadBundle(ctx context.Context, path string) (string, error)

	// WriteBundle writes the bundle text to path, creating missing
	// parent directories.
	WriteBundle(ctx context.Context, path, bundle string) error
}
