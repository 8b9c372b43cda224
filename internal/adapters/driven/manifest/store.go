// Package manifest implements the TOML manifest store. A manifest
// (plank.toml in the source root by convention) carries the ordered,
// grouped list of files a flatten run embeds, plus the entrypoint file
// that marks a valid source root.
package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ManifestStore = (*Store)(nil)

// Store is a file-based implementation of driven.ManifestStore using TOML.
type Store struct {
	fs afero.Fs
}

// NewStore creates a TOML manifest store over fs. A nil fs means the host
// filesystem.
func NewStore(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs}
}

// manifestFile mirrors domain.Manifest with TOML field names, keeping the
// on-disk shape independent of the domain type.
type manifestFile struct {
	Entrypoint string        `toml:"entrypoint"`
	Groups     []groupStanza `toml:"groups"`
}

type groupStanza struct {
	Name  string   `toml:"name"`
	Files []string `toml:"files"`
}

const header = `# plank manifest
#
# The ordered list of files plank flattens into a bundle, grouped under
# the cosmetic section headers. Order matters: files are embedded exactly
# as listed. The entrypoint must exist in the source root for a flatten
# run to proceed.

`

// Exists reports whether a manifest file is present at path.
func (s *Store) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fi, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !fi.IsDir(), nil
}

// Load parses the manifest at path. A missing file is (zero, false, nil);
// a file that exists but does not parse is an error.
func (s *Store) Load(ctx context.Context, path string) (domain.Manifest, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Manifest{}, false, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Manifest{}, false, nil
		}
		return domain.Manifest{}, false, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var mf manifestFile
	if err := toml.Unmarshal(data, &mf); err != nil {
		return domain.Manifest{}, false, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	m := domain.Manifest{Entrypoint: mf.Entrypoint}
	for _, g := range mf.Groups {
		m.Groups = append(m.Groups, domain.Group{Name: g.Name, Files: g.Files})
	}
	return m, true, nil
}

// Save writes the manifest to path with a commented header, creating
// parent directories.
func (s *Store) Save(ctx context.Context, path string, m domain.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mf := manifestFile{Entrypoint: m.Entrypoint}
	for _, g := range m.Groups {
		mf.Groups = append(mf.Groups, groupStanza{Name: g.Name, Files: g.Files})
	}

	data, err := toml.Marshal(mf)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create manifest directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(s.fs, path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}
