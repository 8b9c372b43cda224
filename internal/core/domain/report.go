package domain

// FileReport records the outcome for one logical path during collection
// or materialization. Presentation data only; no invariants.
type FileReport struct {
	// Path is the logical path the report is about.
	Path string

	// Lines is the content line count (zero when skipped).
	Lines int

	// Skipped marks a requested path that did not exist at collect time.
	Skipped bool
}

// FlattenReport summarizes one flatten run for display.
type FlattenReport struct {
	// BundlePath is where the bundle was written.
	BundlePath string

	// SourceDir is the absolute source root that was flattened.
	SourceDir string

	// Files holds one report per requested path, in requested order,
	// including the skipped ones.
	Files []FileReport

	// Embedded counts the documents that made it into the bundle.
	Embedded int

	// TotalLines and TotalBytes measure the bundle itself.
	TotalLines int
	TotalBytes int
}

// Skips returns the requested paths that were missing at collect time.
func (r FlattenReport) Skips() []string {
	var skips []string
	for _, f := range r.Files {
		if f.Skipped {
			skips = append(skips, f.Path)
		}
	}
	return skips
}

// UnflattenReport summarizes one unflatten run for display.
type UnflattenReport struct {
	// OutputDir is the root the tree was materialized under.
	OutputDir string

	// Files holds one report per written file, in bundle order.
	Files []FileReport

	// DirsCreated counts directories that had to be created.
	DirsCreated int

	// Metadata is the decoded metadata block, nil when the bundle
	// carried none.
	Metadata map[string]string
}

// BundleInfo is the read-only summary inspect produces: decoded metadata
// plus every embedded document. The TUI browser feeds on the contents;
// the inspect command prints the shape.
type BundleInfo struct {
	// Path is the bundle file that was inspected.
	Path string

	// Metadata is the decoded metadata block, nil when absent.
	Metadata map[string]string

	// Documents are the embedded documents in first-seen order.
	Documents []Document
}
