// Package files provides the embedded file list view for the bundle viewer.
package files

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fernwood-labs/plank-cli/internal/adapters/driving/tui/messages"
	"github.com/fernwood-labs/plank-cli/internal/adapters/driving/tui/styles"
	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// View is the embedded file list view.
type View struct {
	styles *styles.Styles

	bundlePath   string
	metadata     map[string]string
	documents    []domain.Document
	selected     int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
	scrollOffset int
}

// NewView creates a new file list view for the given bundle.
func NewView(s *styles.Styles, bundlePath string) *View {
	return &View{
		styles:     s,
		bundlePath: bundlePath,
		documents:  []domain.Document{},
		loading:    true,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the file list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.BundleLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else if msg.Info != nil {
			v.documents = msg.Info.Documents
			v.metadata = msg.Info.Metadata
			v.bundlePath = msg.Info.Path
			v.err = nil
			// Keep the selection when a reload shrinks the list
			if v.selected >= len(v.documents) {
				v.selected = 0
				v.scrollOffset = 0
			}
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in the file list.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.documents)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "g", "home":
		v.selected = 0
		v.adjustScroll()
	case "G", "end":
		if len(v.documents) > 0 {
			v.selected = len(v.documents) - 1
			v.adjustScroll()
		}
	case "enter":
		if v.selected < len(v.documents) {
			doc := v.documents[v.selected]
			return v, func() tea.Msg {
				return messages.FileSelected{Document: doc}
			}
		}
	case "r":
		v.loading = true
		return v, func() tea.Msg {
			return messages.ReloadRequested{}
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.Quit{}
		}
	}

	return v, nil
}

// adjustScroll adjusts the scroll offset to keep the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, metadata, scroll indicator, help, and padding
	reserved := 8
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the file list view.
func (v *View) View() string {
	var b strings.Builder

	// Title
	title := fmt.Sprintf("Bundle: %s (%d files)", v.bundlePath, len(v.documents))
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	if meta := v.renderMetadata(); meta != "" {
		b.WriteString(meta)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Loading state
	if v.loading {
		b.WriteString(v.styles.Muted.Render("Decoding bundle..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Error state
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Empty state
	if len(v.documents) == 0 {
		b.WriteString(v.styles.Muted.Render("No files embedded in this bundle."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// File list
	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.documents) && i < v.scrollOffset+visibleItems; i++ {
		line := v.renderFile(i, &v.documents[i])
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Scroll indicator
	if len(v.documents) > visibleItems {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visibleItems, len(v.documents)),
			len(v.documents))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderMetadata renders the generator/timestamp line under the title.
func (v *View) renderMetadata() string {
	if len(v.metadata) == 0 {
		return ""
	}

	parts := make([]string, 0, 3)
	if gen := v.metadata[domain.MetaKeyGenerator]; gen != "" {
		parts = append(parts, gen)
	}
	if ts := v.metadata[domain.MetaKeyTimestamp]; ts != "" {
		parts = append(parts, ts)
	}
	if src := v.metadata[domain.MetaKeySourceDir]; src != "" {
		parts = append(parts, src)
	}
	if len(parts) == 0 {
		return ""
	}
	return v.styles.Muted.Render(strings.Join(parts, " | "))
}

// renderFile renders a single file line.
func (v *View) renderFile(index int, doc *domain.Document) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	// Truncate long paths keeping the filename end visible
	path := doc.Path
	maxPathLen := v.width - 18
	if maxPathLen < 10 {
		maxPathLen = 10
	}
	if len(path) > maxPathLen {
		path = "..." + path[len(path)-maxPathLen+3:]
	}

	lines := fmt.Sprintf("(%d lines)", doc.Lines())

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxPathLen, path, lines))
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxPathLen, path)) +
		v.styles.Muted.Render(lines)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] navigate  [enter] open  [r] reload  [?] help  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Documents returns the current list of embedded files.
func (v *View) Documents() []domain.Document {
	return v.documents
}

// Metadata returns the bundle metadata, if any.
func (v *View) Metadata() map[string]string {
	return v.metadata
}

// SelectedIndex returns the currently selected file index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedDocument returns the currently selected file.
func (v *View) SelectedDocument() *domain.Document {
	if v.selected < len(v.documents) {
		return &v.documents[v.selected]
	}
	return nil
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
