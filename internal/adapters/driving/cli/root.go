// Package cli implements the cobra command tree. Commands hold no
// business logic; they parse flags, call a driving port and print the
// report.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fernwood-labs/plank-cli/internal/core/ports/driven"
	"github.com/fernwood-labs/plank-cli/internal/core/ports/driving"
	"github.com/fernwood-labs/plank-cli/internal/logger"
)

// version is overridden at build time via
// -ldflags "-X github.com/fernwood-labs/plank-cli/internal/adapters/driving/cli.version=v0.3.0".
var version = "dev"

// Services the commands call into, wired once at startup.
var (
	flattenService   driving.FlattenService
	unflattenService driving.UnflattenService
	inspectService   driving.InspectService
	manifestService  driving.ManifestService
	treeWatcher      driven.TreeWatcher
)

// Services bundles everything the command tree needs.
type Services struct {
	Flatten   driving.FlattenService
	Unflatten driving.UnflattenService
	Inspect   driving.InspectService
	Manifest  driving.ManifestService
	Watcher   driven.TreeWatcher
}

// SetServices wires the ports into the commands. Called by main before
// Execute, and by tests to install mocks.
func SetServices(s Services) {
	flattenService = s.Flatten
	unflattenService = s.Unflatten
	inspectService = s.Inspect
	manifestService = s.Manifest
	treeWatcher = s.Watcher
}

// SetVersion overrides the reported version when main carries one.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Version returns the version string the CLI reports.
func Version() string {
	return version
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "plank",
	Short: "Flatten a configuration tree into one file and back",
	Long: `Plank packs a multi-file configuration tree into a single annotated
text file and reconstructs the tree from it, byte for byte.

Each file travels between @FILE_START/@FILE_END sentinel lines together
with a metadata block, so a bundle survives chat windows, pastebins and
email and still unpacks cleanly on the other side.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command. Cobra prints the error; we only turn it
// into the exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
