package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fernwood-labs/plank-cli/internal/treeprint"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [bundle-file]",
	Short: "List a bundle's contents without writing anything",
	Long: `Decodes a bundle file and prints its metadata and file list. Nothing
is written, so inspect is the safe way to check a bundle before
unflattening it somewhere.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if inspectService == nil {
		return errors.New("inspect service not configured")
	}

	ctx := context.Background()
	info, err := inspectService.Inspect(ctx, args[0])
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	cmd.Printf("Bundle: %s\n", info.Path)
	printBundleMetadata(cmd, info.Metadata)

	cmd.Printf("\nFiles (%d):\n\n", len(info.Documents))
	totalLines := 0
	docPaths := make([]string, len(info.Documents))
	for i, d := range info.Documents {
		cmd.Printf("  %s (%d lines)\n", d.Path, d.Lines())
		totalLines += d.Lines()
		docPaths[i] = d.Path
	}
	cmd.Printf("\nTotal content lines: %d\n", totalLines)

	cmd.Println("\nTree:")
	cmd.Println()
	cmd.Println(treeprint.Render(docPaths))
	return nil
}
