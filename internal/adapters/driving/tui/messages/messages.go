// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewFiles is the bundle file list.
	ViewFiles ViewType = iota
	// ViewContent shows one embedded file's content.
	ViewContent
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewFiles:
		return "files"
	case ViewContent:
		return "content"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// BundleLoaded carries the decoded bundle back to the model.
type BundleLoaded struct {
	Info *domain.BundleInfo
	Err  error
}

// FileSelected signals an embedded file was chosen from the list.
type FileSelected struct {
	Document domain.Document
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ReloadRequested asks the app to re-read the bundle from disk, for
// bundles being rewritten by a flatten --watch in another terminal.
type ReloadRequested struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
