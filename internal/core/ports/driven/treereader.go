package driven

import (
	"context"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// TreeReader collects documents from a source tree for the encoder.
// Implementations sit on a filesystem; the core only sees logical paths.
type TreeReader interface {
	// Exists reports whether the logical path exists under root.
	Exists(ctx context.Context, root, path string) (bool, error)

	// Collect reads the requested logical paths under root, in the
	// requested order. A path that does not exist is skipped, not an
	// error: it appears in the reports with Skipped set and is absent
	// from the documents. Any other read failure aborts the collect.
	Collect(ctx context.Context, root string, paths []string) ([]domain.Document, []domain.FileReport, error)
}
