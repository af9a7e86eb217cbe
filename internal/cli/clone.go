package cli

import (
	"github.com/spf13/cobra"

	"github.com/chazuruo/n8nvault/internal/app"
)

// CloneOptions contains the options for the clone command.
type CloneOptions struct {
	ConfigPath string
	Dir        string
	Repo       string
	Branch     string
}

// NewCloneCommand creates the clone command.
func NewCloneCommand() *cobra.Command {
	opts := &CloneOptions{}

	cmd := &cobra.Command{
		Use:   "clone",
		Short: "Clone an existing backup repository",
		Long: `Clone an existing backup repository from a git remote.

Use this on a new machine, or to restore after data loss. If the target
directory already exists you are asked before it is deleted and replaced.
A non-default branch is checked out after cloning, tracking the remote
branch when it exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClone(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "target directory (default from config)")
	cmd.Flags().StringVar(&opts.Repo, "repo", "", "git remote URL to clone from (required)")
	cmd.Flags().StringVar(&opts.Branch, "branch", "", "branch to check out after cloning (default from config)")

	return cmd
}

func runClone(cmd *cobra.Command, opts *CloneOptions) error {
	a, err := setup(opts.ConfigPath)
	if err != nil {
		return err
	}

	_, err = a.Clone(cmd.Context(), app.CloneOptions{
		Dir:       opts.Dir,
		RemoteURL: opts.Repo,
		Branch:    opts.Branch,
	})
	return finish(err)
}
