package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driving"
	"github.com/fernwood-labs/plank-cli/internal/logger"
)

var (
	flattenRoot     string
	flattenManifest string
	flattenWatch    bool
)

var flattenCmd = &cobra.Command{
	Use:   "flatten [bundle-file]",
	Short: "Pack a source tree into a single bundle file",
	Long: `Collects the files listed in the manifest from the source tree and
writes them into one annotated bundle file.

Files the manifest lists but the tree lacks are skipped with a warning;
everything found is embedded verbatim. With --watch the command stays
running and rebuilds the bundle whenever the tree changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runFlatten,
}

func init() {
	flattenCmd.Flags().StringVarP(&flattenRoot, "root", "C", ".", "source tree to flatten")
	flattenCmd.Flags().StringVar(&flattenManifest, "manifest", "", "manifest file (default <root>/plank.toml)")
	flattenCmd.Flags().BoolVarP(&flattenWatch, "watch", "w", false, "re-flatten whenever the tree changes")
	rootCmd.AddCommand(flattenCmd)
}

func runFlatten(cmd *cobra.Command, args []string) error {
	if flattenService == nil {
		return errors.New("flatten service not configured")
	}

	opts := driving.FlattenOptions{
		SourceDir:    flattenRoot,
		BundlePath:   args[0],
		ManifestPath: flattenManifest,
	}

	ctx := context.Background()
	report, err := flattenService.Flatten(ctx, opts)
	if err != nil {
		return fmt.Errorf("flatten failed: %w", err)
	}
	printFlattenReport(cmd, report)

	if flattenWatch {
		return watchAndFlatten(cmd, opts)
	}
	return nil
}

func printFlattenReport(cmd *cobra.Command, report *domain.FlattenReport) {
	cmd.Printf("Flattening configuration from: %s\n", report.SourceDir)
	cmd.Printf("Output: %s\n\n", report.BundlePath)

	for _, f := range report.Files {
		if f.Skipped {
			cmd.Printf("  %s %s (not found)\n", skipMark, f.Path)
			continue
		}
		cmd.Printf("  %s   %s (%d lines)\n", okMark, f.Path, f.Lines)
	}

	cmd.Println()
	cmd.Println(summaryBox.Render("Flattening complete!"))
	cmd.Printf("Files: %d embedded, %d skipped\n", report.Embedded, len(report.Skips()))
	cmd.Printf("Lines: %d\n", report.TotalLines)
	cmd.Printf("Size:  %.1f KB\n", float64(report.TotalBytes)/1024)
}

// watchAndFlatten re-runs the flatten whenever the source tree changes,
// until interrupted.
func watchAndFlatten(cmd *cobra.Command, opts driving.FlattenOptions) error {
	if treeWatcher == nil {
		return errors.New("watcher not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := treeWatcher.Watch(ctx, opts.SourceDir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", opts.SourceDir, err)
	}

	cmd.Printf("\nWatching %s for changes, Ctrl-C to stop...\n", opts.SourceDir)
	for {
		select {
		case <-ctx.Done():
			cmd.Println("\nWatch stopped.")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			logger.Debug("Burst of %d changes, last %s", ev.Changes, ev.Path)

			report, err := flattenService.Flatten(ctx, opts)
			if err != nil {
				cmd.PrintErrf("re-flatten failed: %v\n", err)
				continue
			}
			cmd.Printf("[%s] re-flattened %d files into %s\n",
				time.Now().Format("15:04:05"), report.Embedded, report.BundlePath)
		}
	}
}
