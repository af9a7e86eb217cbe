package cli

import (
	"github.com/spf13/cobra"

	"github.com/chazuruo/n8nvault/internal/app"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	ConfigPath string
	Dir        string
	Repo       string
	Branch     string
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new backup repository",
		Long: `Create a new git-backed backup repository for n8n workflows.

The init command sets up everything a fresh backup needs:
- initializes a git repository in the target directory
- registers the remote URL as origin
- creates the workflows/ and credentials/ directories
- writes a README, a .gitignore, and the repository manifest
- makes the initial commit on the chosen branch

Run it once, then use 'n8nvault export --all' and 'n8nvault push' to back
up your workflows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "backup repository directory (default from config)")
	cmd.Flags().StringVar(&opts.Repo, "repo", "", "git remote URL to register as origin (required)")
	cmd.Flags().StringVar(&opts.Branch, "branch", "", "branch name for the initial commit (default from config)")

	return cmd
}

func runInit(cmd *cobra.Command, opts *InitOptions) error {
	a, err := setup(opts.ConfigPath)
	if err != nil {
		return err
	}

	_, err = a.Init(cmd.Context(), app.InitOptions{
		Dir:       opts.Dir,
		RemoteURL: opts.Repo,
		Branch:    opts.Branch,
	})
	return finish(err)
}
