package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
	"github.com/fernwood-labs/plank-cli/internal/treeprint"
)

var unflattenCmd = &cobra.Command{
	Use:   "unflatten [bundle-file] [output-dir]",
	Short: "Reconstruct a source tree from a bundle file",
	Long: `Reads a bundle file, decodes every embedded file and writes the tree
under the output directory, creating directories as needed. Existing
files are overwritten; files already in the output directory but not in
the bundle are left alone.`,
	Args: cobra.ExactArgs(2),
	RunE: runUnflatten,
}

func init() {
	rootCmd.AddCommand(unflattenCmd)
}

func runUnflatten(cmd *cobra.Command, args []string) error {
	if unflattenService == nil {
		return errors.New("unflatten service not configured")
	}

	bundlePath, outputDir := args[0], args[1]
	ctx := context.Background()

	report, err := unflattenService.Unflatten(ctx, bundlePath, outputDir)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyBundle) {
			return fmt.Errorf("unflatten failed: %w (was %s produced by plank flatten?)", err, bundlePath)
		}
		return fmt.Errorf("unflatten failed: %w", err)
	}

	cmd.Printf("Unflattening: %s\n", bundlePath)
	cmd.Printf("Output: %s\n", report.OutputDir)
	printBundleMetadata(cmd, report.Metadata)
	cmd.Println()

	for _, f := range report.Files {
		cmd.Printf("  %s   %s (%d lines)\n", okMark, f.Path, f.Lines)
	}

	cmd.Println()
	cmd.Println(summaryBox.Render("Unflattening complete!"))
	cmd.Printf("Files: %d\n", len(report.Files))
	cmd.Printf("Directories created: %d\n", report.DirsCreated)

	cmd.Println("\nReconstructed file tree:")
	cmd.Printf("\n%s/\n", report.OutputDir)
	if tree := treeprint.Render(reportPaths(report.Files)); tree != "" {
		cmd.Println(tree)
	}
	return nil
}

// printBundleMetadata shows the bundle's self-description, minus the
// file list, which the per-file lines already cover.
func printBundleMetadata(cmd *cobra.Command, meta map[string]string) {
	if len(meta) == 0 {
		return
	}
	rule := mutedText.Render(strings.Repeat("-", 50))
	cmd.Println("\nBundle metadata:")
	cmd.Println(rule)
	for _, key := range []string{
		domain.MetaKeyGenerator,
		domain.MetaKeyTimestamp,
		domain.MetaKeySourceDir,
		domain.MetaKeyFileCount,
	} {
		if v, ok := meta[key]; ok {
			cmd.Printf("  %s: %s\n", key, v)
		}
	}
	cmd.Println(rule)
}

func reportPaths(files []domain.FileReport) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}
