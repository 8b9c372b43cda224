package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fernwood-labs/plank-cli/internal/codec"
	"github.com/fernwood-labs/plank-cli/internal/core/domain"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driven"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driving"
	"github.com/fernwood-labs/plank-cli/internal/logger"
)

// Ensure UnflattenService implements the interface.
var _ driving.UnflattenService = (*UnflattenService)(nil)

// UnflattenService restores a source tree from a bundle. It reads the
// bundle text, decodes the sections and materializes them under the
// output directory.
type UnflattenService struct {
	bundles driven.BundleStore
	tree    driven.TreeWriter
}

// NewUnflattenService creates an unflatten service.
func NewUnflattenService(bundles driven.BundleStore, tree driven.TreeWriter) *UnflattenService {
	return &UnflattenService{
		bundles: bundles,
		tree:    tree,
	}
}

// Unflatten restores the tree encoded in bundlePath under outputDir.
func (s *UnflattenService) Unflatten(ctx context.Context, bundlePath, outputDir string) (*domain.UnflattenReport, error) {
	logger.Debug("Starting unflatten of %s into %s", bundlePath, outputDir)

	// 1. Read the bundle text
	text, err := s.bundles.ReadBundle(ctx, bundlePath)
	if err != nil {
		return nil, err
	}

	// 2. Decode the sections; a bundle with none writes nothing
	docs, err := codec.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", bundlePath, err)
	}
	logger.Debug("Decoded %d documents", len(docs))

	// 3. Metadata is display-only and may be absent
	meta, _ := codec.DecodeMetadata(text)

	// 4. Materialize the tree
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	files, dirs, err := s.tree.Materialize(ctx, absOut, docs)
	if err != nil {
		return nil, fmt.Errorf("materialize tree: %w", err)
	}
	logger.Debug("Wrote %d files, created %d directories", len(files), dirs)

	return &domain.UnflattenReport{
		OutputDir:   absOut,
		Files:       files,
		DirsCreated: dirs,
		Metadata:    meta,
	}, nil
}
