package driving

import (
	"context"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// UnflattenService turns a bundle file back into a source tree.
type UnflattenService interface {
	// Unflatten decodes the bundle at bundlePath and materializes every
	// document under outputDir. A missing bundle is
	// domain.ErrBundleNotFound; a bundle with no recognizable sections
	// is domain.ErrEmptyBundle, with nothing written in either case.
	Unflatten(ctx context.Context, bundlePath, outputDir string) (*domain.UnflattenReport, error)
}
