package localfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driven"
	"github.com/fernwood-labs/plank-cli/internal/logger"
)

// Ensure Materializer implements the interface.
var _ driven.TreeWriter = (*Materializer)(nil)

// Materializer writes a document set back out as real files.
type Materializer struct {
	fs afero.Fs
}

// NewMaterializer creates a materializer over fs. A nil fs means the host
// filesystem.
func NewMaterializer(fs afero.Fs) *Materializer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Materializer{fs: fs}
}

// Materialize writes each document under root in order. Files always end
// with exactly one trailing newline: appended when missing, untouched when
// present. Writes are sequential and non-transactional; on failure the
// files written so far stay on disk and the error carries the path that
// broke.
func (m *Materializer) Materialize(ctx context.Context, root string, docs []domain.Document) ([]domain.FileReport, int, error) {
	dirsCreated, err := m.ensureDir(root)
	if err != nil {
		return nil, 0, fmt.Errorf("create output directory %s: %w", root, err)
	}

	files := make([]domain.FileReport, 0, len(docs))
	ensured := map[string]bool{root: true}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return files, dirsCreated, err
		}
		full := filepath.Join(root, filepath.FromSlash(doc.Path))
		dir := filepath.Dir(full)
		if !ensured[dir] {
			n, err := m.ensureDir(dir)
			if err != nil {
				return files, dirsCreated, fmt.Errorf("create directory %s: %w", dir, err)
			}
			dirsCreated += n
			ensured[dir] = true
		}

		content := doc.Content
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if err := afero.WriteFile(m.fs, full, []byte(content), 0o644); err != nil {
			return files, dirsCreated, fmt.Errorf("write %s: %w", doc.Path, err)
		}
		logger.Debug("wrote %s (%d lines)", doc.Path, doc.Lines())
		files = append(files, domain.FileReport{Path: doc.Path, Lines: doc.Lines()})
	}
	return files, dirsCreated, nil
}

// ensureDir makes path and its missing ancestors, returning how many
// directories actually came into being.
func (m *Materializer) ensureDir(path string) (int, error) {
	missing := 0
	for p := path; ; {
		_, err := m.fs.Stat(p)
		if err == nil {
			break
		}
		if !os.IsNotExist(err) {
			return 0, err
		}
		missing++
		parent := filepath.Dir(p)
		if parent == p {
			break
		}
		p = parent
	}
	if missing == 0 {
		return 0, nil
	}
	if err := m.fs.MkdirAll(path, 0o755); err != nil {
		return 0, err
	}
	return missing, nil
}
