package cli

import (
	"github.com/spf13/cobra"

	"github.com/chazuruo/n8nvault/internal/app"
)

// ExportOptions contains the options for the export command.
type ExportOptions struct {
	ConfigPath  string
	Dir         string
	All         bool
	WorkflowID  string
	Credentials bool
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export workflows from n8n into the backup repository",
		Long: `Export workflow definitions from the local n8n instance into the
backup repository as pretty-printed JSON files.

Choose exactly one selection mode:
- --all exports every workflow, one file each
- --workflow-id exports a single workflow to workflows/workflow_<id>.json

Re-exporting a workflow overwrites its file, so git diffs show exactly
what changed. With --include-creds the n8n credentials are exported as
well, after an explicit confirmation: credential files contain decrypted
secrets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "backup repository directory (default from config)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "export every workflow")
	cmd.Flags().StringVar(&opts.WorkflowID, "workflow-id", "", "export a single workflow by ID")
	cmd.Flags().BoolVar(&opts.Credentials, "include-creds", false, "also export credentials (contains secrets)")

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	a, err := setup(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := checkN8n(a); err != nil {
		return err
	}

	_, err = a.Export(cmd.Context(), app.ExportOptions{
		Dir:                opts.Dir,
		All:                opts.All,
		WorkflowID:         opts.WorkflowID,
		IncludeCredentials: opts.Credentials,
	})
	return finish(err)
}
