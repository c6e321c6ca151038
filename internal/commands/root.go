package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upitrail/upitrail/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "upitrail",
		Short:   "Extract and track payment transactions from bank notification messages",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newFetchCommand())
	rootCmd.AddCommand(newStatsCommand())

	return rootCmd
}
