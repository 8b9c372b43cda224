package codec

import (
	"strings"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// Decode extracts every wrapped document from a bundle, in first-seen
// order of start sentinels. It is a single pass over the lines with one
// piece of state, the currently open path: a "@FILE_START: <path>" line
// opens a section, and only the exact line "@FILE_END: <path>" with the
// identical path closes it. The exact-match anchor means paths that are
// prefixes of one another (a.lua, a.lua.bak) can never cross-match, and
// sentinel-shaped lines inside an open section are plain content.
//
// Content is everything strictly between the sentinel lines minus the one
// structural newline Encode appends. A start sentinel that never finds
// its end contributes nothing. Duplicate paths all decode, in order; it
// is materialization that makes the last one win.
//
// Returns domain.ErrEmptyBundle when no section terminates, which is the
// "this is not a bundle" signal.
func Decode(bundle string) ([]domain.Document, error) {
	var (
		docs []domain.Document
		open bool
		path string
		buf  []string
	)
	for _, line := range strings.Split(bundle, "\n") {
		if !open {
			if p, ok := strings.CutPrefix(line, fileStartPrefix); ok {
				open = true
				path = p
				buf = buf[:0]
			}
			continue
		}
		if line == fileEndPrefix+path {
			docs = append(docs, domain.Document{
				Path: path,
				// Joining the accumulated lines restores every inner
				// newline and drops the structural trailing one.
				Content: strings.Join(buf, "\n"),
			})
			open = false
			continue
		}
		buf = append(buf, line)
	}
	if len(docs) == 0 {
		return nil, domain.ErrEmptyBundle
	}
	return docs, nil
}

// DecodeMetadata extracts the "key: value" block between the meta
// sentinels. The boolean reports whether a complete block was found;
// absence is not an error, and document decoding never depends on it.
func DecodeMetadata(bundle string) (map[string]string, bool) {
	meta := make(map[string]string)
	inBlock := false
	for _, line := range strings.Split(bundle, "\n") {
		switch {
		case !inBlock:
			if line == metaStart {
				inBlock = true
			}
		case line == metaEnd:
			return meta, true
		default:
			if key, value, ok := strings.Cut(line, ": "); ok {
				meta[key] = value
			}
		}
	}
	return nil, false
}
