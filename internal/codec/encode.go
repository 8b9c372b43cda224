package codec

import (
	"fmt"
	"strings"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// Sentinel lines. These are the load-bearing parts of the wire format;
// everything else in a bundle is decoration.
const (
	metaStart       = "@META_START"
	metaEnd         = "@META_END"
	fileStartPrefix = "@FILE_START: "
	fileEndPrefix   = "@FILE_END: "
)

const rule = "================================================================================"

// Encode renders an ordered document set into one bundle string: banner,
// metadata block, then each document wrapped in path-carrying sentinels.
// Deterministic for fixed inputs; the timestamp lives in meta and is the
// caller's business. Duplicate paths are emitted as given; once decoded
// and materialized, the last occurrence wins.
func Encode(docs []domain.Document, meta domain.Metadata) string {
	return EncodeGrouped([]domain.Section{{Documents: docs}}, meta)
}

// EncodeGrouped is Encode with one cosmetic hash-box header per named
// section. Unnamed sections get no header. Decoding ignores headers, so
// Decode(EncodeGrouped(...)) sees exactly the flattened document order.
func EncodeGrouped(sections []domain.Section, meta domain.Metadata) string {
	var b strings.Builder
	writeBanner(&b, meta)
	writeMetadata(&b, meta)
	for _, sec := range sections {
		if sec.Name != "" {
			writeGroupHeader(&b, sec.Name)
		}
		for _, doc := range sec.Documents {
			writeDocument(&b, doc)
		}
	}
	writeFooter(&b)
	return b.String()
}

// writeDocument emits one wrapped section. The newline after the content
// is structural: it guarantees the end sentinel starts its own line, and
// Decode removes exactly one trailing newline to undo it. Empty content
// therefore shows as a single blank line between the sentinels.
func writeDocument(b *strings.Builder, doc domain.Document) {
	b.WriteString(fileStartPrefix)
	b.WriteString(doc.Path)
	b.WriteByte('\n')
	b.WriteString(doc.Content)
	b.WriteByte('\n')
	b.WriteString(fileEndPrefix)
	b.WriteString(doc.Path)
	b.WriteByte('\n')
	b.WriteByte('\n')
}

func writeMetadata(b *strings.Builder, meta domain.Metadata) {
	b.WriteString(metaStart)
	b.WriteByte('\n')
	fmt.Fprintf(b, "%s: %s\n", domain.MetaKeyGenerator, meta.Generator)
	fmt.Fprintf(b, "%s: %s\n", domain.MetaKeyTimestamp, meta.Timestamp)
	fmt.Fprintf(b, "%s: %s\n", domain.MetaKeySourceDir, meta.SourceDir)
	fmt.Fprintf(b, "%s: %d\n", domain.MetaKeyFileCount, meta.FileCount())
	fmt.Fprintf(b, "%s: %s\n", domain.MetaKeyFiles, strings.Join(meta.Files, ", "))
	b.WriteString(metaEnd)
	b.WriteString("\n\n")
}

// writeBanner emits the free-form header. Sentinel-shaped example lines
// are indented so they never sit at the start of a line.
func writeBanner(b *strings.Builder, meta domain.Metadata) {
	fmt.Fprintf(b, `%[1]s
  FLATTENED CONFIGURATION TREE
%[1]s

  Auto-generated single-file snapshot of a multi-file configuration tree.

  Generated: %[2]s
  Source:    %[3]s

  FILE MARKERS:
    Each original file is wrapped between two sentinel lines:
      @FILE_START: path/to/file
      ... original file contents ...
      @FILE_END: path/to/file

  TO RECONSTRUCT THE TREE:
    plank unflatten <this-file> <output-dir>

  NOTE: this file is a transport and backup artifact, not a working
  configuration. Unflatten it before use.

%[1]s

`, rule, meta.Timestamp, meta.SourceDir)
}

func writeFooter(b *strings.Builder) {
	fmt.Fprintf(b, `
%[1]s
  END OF FLATTENED CONFIGURATION
  To reconstruct: plank unflatten <this-file> <output-dir>
%[1]s
`, rule)
}

// writeGroupHeader emits the hash-box header above a named group,
// mirroring the bundle's original hand-rolled look.
func writeGroupHeader(b *strings.Builder, name string) {
	bar := strings.Repeat("#", 78)
	fmt.Fprintf(b, "\n%s\n#  %s  #\n%s\n\n", bar, center(strings.ToUpper(name), 72), bar)
}

// center pads s with spaces to width, extra space going right.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
