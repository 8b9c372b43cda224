package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter manifest into a source tree",
	Long: `Creates plank.toml in the given directory (default: current directory)
seeded with the default file layout. Edit the groups and file lists to
match your tree, then run plank flatten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if manifestService == nil {
		return errors.New("manifest service not configured")
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	path, err := manifestService.Init(context.Background(), root)
	if err != nil {
		return fmt.Errorf("init failed: %w", err)
	}

	cmd.Printf("Created %s\n", path)
	cmd.Println("Edit the file list to match your tree, then run: plank flatten <bundle-file>")
	return nil
}
