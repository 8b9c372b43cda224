package driving

import (
	"context"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// FlattenService turns a source tree into one bundle file.
type FlattenService interface {
	// Flatten runs the whole encoder side: load manifest, verify the
	// entrypoint, collect, encode, write the bundle. Missing requested
	// files are skips in the report, not failures; a missing entrypoint
	// is domain.ErrEntrypointMissing.
	Flatten(ctx context.Context, opts FlattenOptions) (*domain.FlattenReport, error)
}

// FlattenOptions carries one flatten invocation's parameters.
type FlattenOptions struct {
	// SourceDir is the root of the configuration tree. Empty means the
	// current directory.
	SourceDir string

	// BundlePath is the destination bundle file.
	BundlePath string

	// ManifestPath optionally overrides the manifest location. Empty
	// means SourceDir/plank.toml, falling back to the built-in default
	// layout when that file does not exist.
	ManifestPath string
}
