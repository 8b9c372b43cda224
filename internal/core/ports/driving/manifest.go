package driving

import "context"

// ManifestService manages the plank.toml manifest in a source root.
type ManifestService interface {
	// Init writes the built-in default manifest into root and returns
	// the written path. Refuses with domain.ErrManifestExists when a
	// manifest is already there.
	Init(ctx context.Context, root string) (string, error)
}
