package cli

import (
	"github.com/spf13/cobra"

	"github.com/chazuruo/n8nvault/internal/app"
)

// PullOptions contains the options for the pull command.
type PullOptions struct {
	ConfigPath string
	Dir        string
}

// NewPullCommand creates the pull command.
func NewPullCommand() *cobra.Command {
	opts := &PullOptions{}

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Pull the latest backups from the remote",
		Long: `Pull the latest workflow backups from the git remote.

If the working tree has uncommitted local changes you are asked before
pulling, since the pull may fail or mix remote changes with your edits.
After a successful pull the recent commits and the workflow files now in
the backup are listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPull(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "backup repository directory (default from config)")

	return cmd
}

func runPull(cmd *cobra.Command, opts *PullOptions) error {
	a, err := setup(opts.ConfigPath)
	if err != nil {
		return err
	}

	_, err = a.Pull(cmd.Context(), app.PullOptions{Dir: opts.Dir})
	return finish(err)
}
