package localfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driven"
	"github.com/fernwood-labs/plank-cli/internal/logger"
)

// Ensure Collector implements the interface.
var _ driven.TreeReader = (*Collector)(nil)

// Collector reads requested logical paths from a source tree, in order.
type Collector struct {
	fs afero.Fs
}

// NewCollector creates a collector over fs. A nil fs means the host
// filesystem.
func NewCollector(fs afero.Fs) *Collector {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Collector{fs: fs}
}

// Exists reports whether the logical path exists under root as a file.
func (c *Collector) Exists(ctx context.Context, root, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fi, err := c.fs.Stat(filepath.Join(root, filepath.FromSlash(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !fi.IsDir(), nil
}

// Collect reads each requested path that exists and skips the rest.
// Skips are per-file conditions, reported and carried in the result;
// any other read failure aborts the whole collect.
func (c *Collector) Collect(ctx context.Context, root string, paths []string) ([]domain.Document, []domain.FileReport, error) {
	var docs []domain.Document
	reports := make([]domain.FileReport, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		data, err := afero.ReadFile(c.fs, filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			if os.IsNotExist(err) {
				logger.Warn("skipping %s (not found)", p)
				reports = append(reports, domain.FileReport{Path: p, Skipped: true})
				continue
			}
			return nil, nil, fmt.Errorf("read %s: %w", p, err)
		}
		doc := domain.Document{Path: p, Content: string(data)}
		logger.Debug("collected %s (%d lines)", p, doc.Lines())
		docs = append(docs, doc)
		reports = append(reports, domain.FileReport{Path: p, Lines: doc.Lines()})
	}
	return docs, reports, nil
}
