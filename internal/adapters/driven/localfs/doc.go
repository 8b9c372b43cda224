// Package localfs implements the filesystem-facing driven ports on top of
// afero: collecting documents from a source tree, materializing them back,
// and reading/writing bundle files. Every type takes an afero.Fs so tests
// run against an in-memory filesystem; nil means the host filesystem.
//
// The change watcher is the one exception: fsnotify talks to the kernel,
// so it only works against real paths.
package localfs
