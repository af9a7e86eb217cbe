package cli

import (
	"github.com/spf13/cobra"

	"github.com/chazuruo/n8nvault/internal/app"
)

// PushOptions contains the options for the push command.
type PushOptions struct {
	ConfigPath string
	Dir        string
	Message    string
}

// NewPushCommand creates the push command.
func NewPushCommand() *cobra.Command {
	opts := &PushOptions{}

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Commit and push pending changes to the remote",
		Long: `Stage, commit, and push all pending changes in the backup repository.

The commit message is suffixed with the current timestamp. A clean
working tree is a successful no-op, so push is safe to run from cron
after every export.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "backup repository directory (default from config)")
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "commit message prefix (default from config)")

	return cmd
}

func runPush(cmd *cobra.Command, opts *PushOptions) error {
	a, err := setup(opts.ConfigPath)
	if err != nil {
		return err
	}

	_, err = a.Push(cmd.Context(), app.PushOptions{
		Dir:     opts.Dir,
		Message: opts.Message,
	})
	return finish(err)
}
