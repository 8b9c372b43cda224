// Package tui implements the interactive bundle viewer following the Elm
// architecture. It decodes a bundle once through the inspect service and
// lets the user browse the embedded files without touching the tree.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fernwood-labs/plank-cli/internal/adapters/driving/tui/components/status"
	"github.com/fernwood-labs/plank-cli/internal/adapters/driving/tui/keymap"
	"github.com/fernwood-labs/plank-cli/internal/adapters/driving/tui/messages"
	"github.com/fernwood-labs/plank-cli/internal/adapters/driving/tui/styles"
	"github.com/fernwood-labs/plank-cli/internal/adapters/driving/tui/views/content"
	"github.com/fernwood-labs/plank-cli/internal/adapters/driving/tui/views/files"
	"github.com/fernwood-labs/plank-cli/internal/core/domain"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driving"
)

// App is the viewer application. It implements tea.Model for Bubbletea.
type App struct {
	// inspect decodes the bundle without writing anything.
	inspect driving.InspectService

	// bundlePath is the bundle file being viewed.
	bundlePath string

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the viewer styles.
	styles *styles.Styles

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// statusBar is rendered under every view.
	statusBar *status.Bar

	// filesView is the embedded file list.
	filesView *files.View

	// contentView shows a single embedded file.
	contentView *content.View

	// info is the decoded bundle, nil until loaded.
	info *domain.BundleInfo

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new viewer for the given bundle file.
func NewApp(inspect driving.InspectService, bundlePath string) (*App, error) {
	if inspect == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingInspectService)
	}
	if bundlePath == "" {
		return nil, fmt.Errorf("creating app: %w", ErrMissingBundlePath)
	}

	s := styles.DefaultStyles()
	keys := keymap.DefaultKeyMap()

	return &App{
		inspect:     inspect,
		bundlePath:  bundlePath,
		ctx:         context.Background(),
		styles:      s,
		keys:        keys,
		statusBar:   status.NewBar(s, keys),
		filesView:   files.NewView(s, bundlePath),
		contentView: content.NewView(s),
		currentView: messages.ViewFiles, // Start with the file list
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("plank - bundle viewer"),
		a.loadBundle(),
	)
}

// loadBundle returns a command that decodes the bundle off the UI loop.
func (a *App) loadBundle() tea.Cmd {
	return func() tea.Msg {
		info, err := a.inspect.Inspect(a.ctx, a.bundlePath)
		return messages.BundleLoaded{Info: info, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing, keeping one row
		// for the status bar
		a.filesView.SetDimensions(msg.Width, msg.Height-1)
		a.contentView.SetDimensions(msg.Width, msg.Height-1)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global quit
		if keymap.Matches(msg.String(), a.keys.Quit) {
			return a, tea.Quit
		}

		// Global help toggle
		if keymap.Matches(msg.String(), a.keys.Help) && a.currentView != messages.ViewHelp {
			a.currentView = messages.ViewHelp
			a.statusBar.SetState(status.StateHelp)
			return a, nil
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewFiles:
			a.filesView, cmd = a.filesView.Update(msg)
			a.err = a.filesView.Err()
			return a, cmd

		case messages.ViewContent:
			a.contentView, cmd = a.contentView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help returns to the file list
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewFiles
				a.syncStatusBar()
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.BundleLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
		} else {
			a.info = msg.Info
			a.err = nil
			a.statusBar.SetState(status.StateReady)
			a.statusBar.SetMessage("")
			if msg.Info != nil {
				a.statusBar.SetFileCount(len(msg.Info.Documents))
			}
		}
		a.filesView, cmd = a.filesView.Update(msg)
		return a, cmd

	case messages.FileSelected:
		a.currentView = messages.ViewContent
		a.contentView.SetDocument(msg.Document)
		a.statusBar.SetState(status.StateViewing)
		a.statusBar.SetMessage(msg.Document.Path)
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		a.syncStatusBar()
		return a, nil

	case messages.ReloadRequested:
		a.statusBar.SetState(status.StateLoading)
		return a, a.loadBundle()

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		if msg.Err != nil {
			a.statusBar.SetMessage(msg.Err.Error())
		}
		if a.currentView == messages.ViewFiles {
			a.filesView, cmd = a.filesView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewFiles:
		a.filesView, cmd = a.filesView.Update(msg)
	case messages.ViewContent:
		a.contentView, cmd = a.contentView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// syncStatusBar aligns the status bar state with the current view.
func (a *App) syncStatusBar() {
	switch a.currentView {
	case messages.ViewFiles:
		if a.err != nil {
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(a.err.Error())
		} else {
			a.statusBar.SetState(status.StateReady)
			a.statusBar.SetMessage("")
		}
	case messages.ViewContent:
		a.statusBar.SetState(status.StateViewing)
		if doc := a.contentView.Document(); doc != nil {
			a.statusBar.SetMessage(doc.Path)
		}
	case messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewFiles:
		body = a.filesView.View()
	case messages.ViewContent:
		body = a.contentView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.filesView.View()
	}

	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

File list:
  j/k, ↑/↓    Navigate files
  g/G         Jump to first/last file
  enter       Open the selected file
  r           Reload the bundle from disk
  esc, q      Quit

File content:
  j/k, ↑/↓    Scroll line by line
  PgUp/PgDn   Scroll page by page
  g/G         Jump to top/bottom
  esc         Back to the file list

Global:
  ?           Show this help
  q, ctrl+c   Quit

[esc] back to the file list`
}

// Run starts the viewer.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// BundlePath returns the bundle file being viewed.
func (a *App) BundlePath() string {
	return a.bundlePath
}

// Info returns the decoded bundle, nil before the first load completes.
func (a *App) Info() *domain.BundleInfo {
	return a.info
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.filesView.SetDimensions(width, height-1)
	a.contentView.SetDimensions(width, height-1)
	a.statusBar.SetWidth(width)
}
