package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fernwood-labs/plank-cli/internal/adapters/driving/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view [bundle-file]",
	Short: "Browse a bundle in the terminal UI",
	Long: `Opens an interactive viewer over a bundle file: the file list on one
side, file contents on the other.

Controls:
  ↑/k, ↓/j - Move through files
  Enter    - Open the selected file
  Esc      - Back to the file list
  q        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	if inspectService == nil {
		return errors.New("inspect service not configured")
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("view needs an interactive terminal; use 'plank inspect' instead")
	}

	// Panic recovery keeps the stack trace visible if the viewer dies.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in viewer: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(inspectService, args[0])
	if err != nil {
		return fmt.Errorf("failed to create viewer: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer error: %w", err)
	}
	return nil
}
