package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/n8nvault/internal/cli"
	"github.com/chazuruo/n8nvault/internal/errors"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "n8nvault",
		Short: "Git-backed backup tool for n8n workflows",
		Long: `n8nvault backs up n8n workflow definitions into a git repository and
restores them from it, wrapping the n8n CLI export/import commands and
plain git so workflows get history, reviews, and an off-machine copy.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		// A bare invocation shows usage but is still a failed invocation.
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.Wrap(errors.ErrInvalid, "a subcommand is required")
		},
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(cli.NewInitCommand())
	rootCmd.AddCommand(cli.NewCloneCommand())
	rootCmd.AddCommand(cli.NewExportCommand())
	rootCmd.AddCommand(cli.NewPushCommand())
	rootCmd.AddCommand(cli.NewPullCommand())
	rootCmd.AddCommand(cli.NewImportCommand())
	rootCmd.AddCommand(cli.NewVersionCommand(Version, Commit, Date))

	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
