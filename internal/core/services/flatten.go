package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fernwood-labs/plank-cli/internal/codec"
	"github.com/fernwood-labs/plank-cli/internal/core/domain"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driven"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driving"
	"github.com/fernwood-labs/plank-cli/internal/logger"
)

// Ensure FlattenService implements the interface.
var _ driving.FlattenService = (*FlattenService)(nil)

// FlattenService turns a source tree into a single annotated bundle.
// It resolves the manifest, verifies the entrypoint, collects the
// listed files and hands the result to the codec.
type FlattenService struct {
	tree      driven.TreeReader
	bundles   driven.BundleStore
	manifests driven.ManifestStore
	generator string
	now       func() time.Time
}

// NewFlattenService creates a flatten service. The generator string
// names the producing tool in bundle metadata, e.g. "plank 0.3.0".
func NewFlattenService(
	tree driven.TreeReader,
	bundles driven.BundleStore,
	manifests driven.ManifestStore,
	generator string,
) *FlattenService {
	return &FlattenService{
		tree:      tree,
		bundles:   bundles,
		manifests: manifests,
		generator: generator,
		now:       time.Now,
	}
}

// Flatten runs one flatten pass and reports what was embedded.
func (s *FlattenService) Flatten(ctx context.Context, opts driving.FlattenOptions) (*domain.FlattenReport, error) {
	logger.Debug("Starting flatten of %s", opts.SourceDir)

	// 1. Resolve the source root
	root := opts.SourceDir
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve source dir: %w", err)
	}

	// 2. Load the manifest that drives the run
	m, err := s.loadManifest(ctx, absRoot, opts.ManifestPath)
	if err != nil {
		return nil, err
	}
	paths := m.Paths()
	if m.Entrypoint == "" || len(paths) == 0 {
		return nil, fmt.Errorf("%w: needs an entrypoint and at least one file", domain.ErrManifestInvalid)
	}
	logger.Debug("Manifest lists %d files in %d groups", len(paths), len(m.Groups))

	// 3. The entrypoint marks a valid source root
	ok, err := s.tree.Exists(ctx, absRoot, m.Entrypoint)
	if err != nil {
		return nil, fmt.Errorf("check entrypoint: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntrypointMissing, filepath.Join(absRoot, m.Entrypoint))
	}

	// 4. Collect the listed files, skipping whatever is missing
	docs, reports, err := s.tree.Collect(ctx, absRoot, paths)
	if err != nil {
		return nil, fmt.Errorf("collect files: %w", err)
	}
	logger.Debug("Collected %d of %d files", len(docs), len(paths))

	// 5. Encode; metadata describes what was actually embedded
	embedded := make([]string, len(docs))
	for i, d := range docs {
		embedded[i] = d.Path
	}
	meta := domain.Metadata{
		Generator: s.generator,
		Timestamp: s.now().Format("2006-01-02 15:04:05"),
		SourceDir: absRoot,
		Files:     embedded,
	}
	bundle := codec.EncodeGrouped(m.Sections(docs), meta)

	// 6. Persist the bundle
	if err := s.bundles.WriteBundle(ctx, opts.BundlePath, bundle); err != nil {
		return nil, fmt.Errorf("write bundle: %w", err)
	}
	logger.Debug("Wrote bundle %s (%d bytes)", opts.BundlePath, len(bundle))

	return &domain.FlattenReport{
		BundlePath: opts.BundlePath,
		SourceDir:  absRoot,
		Files:      reports,
		Embedded:   len(docs),
		TotalLines: strings.Count(bundle, "\n"),
		TotalBytes: len(bundle),
	}, nil
}

// loadManifest resolves which manifest drives the run. An explicit path
// must exist. The conventional plank.toml under the root is optional,
// and with neither present the built-in default layout applies.
func (s *FlattenService) loadManifest(ctx context.Context, root, explicit string) (domain.Manifest, error) {
	if explicit != "" {
		m, found, err := s.manifests.Load(ctx, explicit)
		if err != nil {
			return domain.Manifest{}, fmt.Errorf("load manifest: %w", err)
		}
		if !found {
			return domain.Manifest{}, fmt.Errorf("load manifest: %s does not exist", explicit)
		}
		return m, nil
	}

	conventional := filepath.Join(root, domain.ManifestFileName)
	m, found, err := s.manifests.Load(ctx, conventional)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("load manifest: %w", err)
	}
	if found {
		logger.Debug("Using manifest %s", conventional)
		return m, nil
	}
	logger.Debug("No manifest at %s, using the built-in layout", conventional)
	return domain.DefaultManifest(), nil
}
