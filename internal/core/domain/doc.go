// Package domain defines the core business entities for plank.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: One logical file's path and text content
//   - Metadata: The machine-readable summary embedded in a bundle
//   - Manifest: The ordered, grouped list of files a source tree should hold
//   - FileReport: Per-file outcome of a collect or materialize pass
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
