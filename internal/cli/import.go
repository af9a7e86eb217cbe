package cli

import (
	"github.com/spf13/cobra"

	"github.com/chazuruo/n8nvault/internal/app"
)

// ImportOptions contains the options for the import command.
type ImportOptions struct {
	ConfigPath string
	Dir        string
	All        bool
	File       string
	Yes        bool
}

// NewImportCommand creates the import command.
func NewImportCommand() *cobra.Command {
	opts := &ImportOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import workflows from the backup repository into n8n",
		Long: `Import workflow files from the backup repository into the local n8n
instance.

Choose exactly one selection mode:
- --all imports every workflow file, asking per file
- --file imports a single named workflow file

Importing overwrites workflows with matching IDs on the n8n instance, so
a confirmation is asked up front. Use --yes to answer every prompt with
yes, for scripted restores. In bulk mode a file that fails to import is
reported and skipped; the rest of the batch continues.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "backup repository directory (default from config)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "import every workflow file")
	cmd.Flags().StringVar(&opts.File, "file", "", "import a single workflow file")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "answer yes to every prompt")

	return cmd
}

func runImport(cmd *cobra.Command, opts *ImportOptions) error {
	a, err := setup(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := checkN8n(a); err != nil {
		return err
	}

	_, err = a.Import(cmd.Context(), app.ImportOptions{
		Dir:         opts.Dir,
		All:         opts.All,
		File:        opts.File,
		AutoConfirm: opts.Yes,
	})
	return finish(err)
}
