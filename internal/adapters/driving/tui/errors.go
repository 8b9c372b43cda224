package tui

import "errors"

// ErrMissingInspectService is returned when the inspect service is not provided.
var ErrMissingInspectService = errors.New("tui: inspect service is required")

// ErrMissingBundlePath is returned when no bundle file is given.
var ErrMissingBundlePath = errors.New("tui: bundle path is required")
