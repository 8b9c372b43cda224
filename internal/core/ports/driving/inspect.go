package driving

import (
	"context"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// InspectService reads a bundle without writing anything anywhere.
// Both the inspect command and the TUI browser sit on top of it.
type InspectService interface {
	// Inspect decodes the bundle at bundlePath into its metadata and
	// document set. Same failure modes as unflattening, minus the
	// materialization.
	Inspect(ctx context.Context, bundlePath string) (*domain.BundleInfo, error)
}
