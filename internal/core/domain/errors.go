package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyBundle indicates decoding found no recognizable file
	// sections; the input was likely not produced by plank.
	ErrEmptyBundle = errors.New("no file sections found in bundle")

	// ErrBundleNotFound indicates the bundle path does not exist.
	ErrBundleNotFound = errors.New("bundle file not found")

	// ErrEntrypointMissing indicates the source root lacks the
	// manifest's entrypoint file and cannot be flattened.
	ErrEntrypointMissing = errors.New("entrypoint file not found in source root")

	// ErrManifestExists guards init against overwriting a manifest
	// someone may have edited.
	ErrManifestExists = errors.New("manifest already exists")

	// ErrManifestInvalid indicates a manifest file that parsed but
	// cannot drive a flatten run (no files, or a blank entrypoint).
	ErrManifestInvalid = errors.New("manifest is invalid")
)
