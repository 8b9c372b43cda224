package services

import (
	"context"
	"fmt"

	"github.com/fernwood-labs/plank-cli/internal/codec"
	"github.com/fernwood-labs/plank-cli/internal/core/domain"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driven"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driving"
)

// Ensure InspectService implements the interface.
var _ driving.InspectService = (*InspectService)(nil)

// InspectService reads bundles for display. It never touches a source
// tree, so inspecting a bundle has no side effects.
type InspectService struct {
	bundles driven.BundleStore
}

// NewInspectService creates an inspect service.
func NewInspectService(bundles driven.BundleStore) *InspectService {
	return &InspectService{bundles: bundles}
}

// Inspect decodes bundlePath into its documents and metadata.
func (s *InspectService) Inspect(ctx context.Context, bundlePath string) (*domain.BundleInfo, error) {
	text, err := s.bundles.ReadBundle(ctx, bundlePath)
	if err != nil {
		return nil, err
	}

	docs, err := codec.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", bundlePath, err)
	}
	meta, _ := codec.DecodeMetadata(text)

	return &domain.BundleInfo{
		Path:      bundlePath,
		Metadata:  meta,
		Documents: docs,
	}, nil
}
