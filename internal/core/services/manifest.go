package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driven"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driving"
	"github.com/fernwood-labs/plank-cli/internal/logger"
)

// Ensure ManifestService implements the interface.
var _ driving.ManifestService = (*ManifestService)(nil)

// ManifestService seeds source roots with the default manifest so the
// file list can be edited instead of assumed.
type ManifestService struct {
	store driven.ManifestStore
}

// NewManifestService creates a manifest service.
func NewManifestService(store driven.ManifestStore) *ManifestService {
	return &ManifestService{store: store}
}

// Init writes the built-in default manifest into root and returns the
// path it wrote. An existing manifest is never overwritten.
func (s *ManifestService) Init(ctx context.Context, root string) (string, error) {
	if root == "" {
		root = "."
	}
	path := filepath.Join(root, domain.ManifestFileName)

	exists, err := s.store.Exists(ctx, path)
	if err != nil {
		return "", fmt.Errorf("check manifest: %w", err)
	}
	if exists {
		return "", fmt.Errorf("%w: %s", domain.ErrManifestExists, path)
	}

	if err := s.store.Save(ctx, path, domain.DefaultManifest()); err != nil {
		return "", fmt.Errorf("save manifest: %w", err)
	}
	logger.Debug("Wrote default manifest to %s", path)
	return path, nil
}
