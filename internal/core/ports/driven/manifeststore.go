package driven

import (
	"context"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// ManifestStore loads and saves the expected-path manifest (plank.toml).
type ManifestStore interface {
	// Exists reports whether a manifest file is present at path.
	Exists(ctx context.Context, path string) (bool, error)

	// Load parses the manifest at path. The boolean is false when no
	// file exists there; a present-but-unparsable manifest is an error,
	// never a silent fallback.
	Load(ctx context.Context, path string) (domain.Manifest, bool, error)

	// Save writes the manifest to path, creating parent directories.
	Save(ctx context.Context, path string, m domain.Manifest) error
}
