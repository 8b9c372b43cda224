package cli

import "github.com/charmbracelet/lipgloss"

// Console styles for command output. Lipgloss drops the colour codes on
// non-TTY output, so piping plank stays clean.
var (
	okMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Render("[OK]")
	skipMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")).Render("[SKIP]")

	summaryBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2)

	mutedText = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)
