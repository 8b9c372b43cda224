package domain

// Metadata is the machine-readable summary embedded in a bundle between
// the meta sentinels. It is informational: decoding documents never
// depends on it, and a bundle stripped of its metadata block still
// decodes in full.
type Metadata struct {
	// Generator identifies the tool and version that produced the bundle.
	Generator string

	// Timestamp is the generation time, formatted "2006-01-02 15:04:05".
	Timestamp string

	// SourceDir is the absolute source root the documents came from.
	SourceDir string

	// Files is the ordered list of logical paths that made it into the
	// bundle. Requested-but-missing paths are not listed; the summary
	// always matches the embedded sections.
	Files []string
}

// FileCount reports how many documents the bundle embeds.
func (m Metadata) FileCount() int {
	return len(m.Files)
}

// Canonical metadata keys as they appear in the bundle, in block order.
const (
	MetaKeyGenerator = "generator"
	MetaKeyTimestamp = "timestamp"
	MetaKeySourceDir = "source_dir"
	MetaKeyFileCount = "file_count"
	MetaKeyFiles     = "files"
)
