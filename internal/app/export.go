package app

import (
	"context"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/vault"
)

func countCredentialFiles(l vault.Layout) int {
	return vault.CountJSONFiles(l.CredentialsPath())
}

// ExportOptions contains the options for the export operation.
type ExportOptions struct {
	Dir string
	// WorkflowID selects a single workflow. Mutually exclusive with All.
	WorkflowID string
	// All exports every workflow.
	All bool
	// IncludeCredentials additionally exports credentials, after an
	// explicit confirmation.
	IncludeCredentials bool
}

// ExportOutput contains the result of an export operation.
type ExportOutput struct {
	WorkflowFiles   int    `json:"workflow_files"`
	CredentialFiles int    `json:"credential_files"`
	Path            string `json:"path,omitempty"`
}

// Export serializes workflow definitions from the n8n instance into the
// backup repository.
func (a *App) Export(ctx context.Context, opts ExportOptions) (*ExportOutput, error) {
	if opts.All == (opts.WorkflowID != "") {
		return nil, errors.Wrap(errors.ErrInvalid, "specify exactly one of --all or --workflow-id")
	}

	l, err := a.requireBootstrapped(opts.Dir)
	if err != nil {
		return nil, err
	}
	if err := l.EnsureDirs(); err != nil {
		return nil, err
	}

	client := a.client()
	out := &ExportOutput{}

	if opts.All {
		if err := client.ExportAllWorkflows(ctx, l.WorkflowsPath()); err != nil {
			return nil, err
		}
		// Count every .json the exporter produced, not just files matching
		// the workflow_<id> pattern this tool writes itself.
		out.WorkflowFiles = vault.CountJSONFiles(l.WorkflowsPath())
		a.UI.Successf("Exported %d workflow file(s) to %s", out.WorkflowFiles, l.WorkflowsPath())
	} else {
		path := l.WorkflowFilePath(opts.WorkflowID)
		if err := client.ExportWorkflow(ctx, opts.WorkflowID, path); err != nil {
			return nil, err
		}
		out.WorkflowFiles = 1
		out.Path = path
		a.UI.Successf("Exported workflow %s to %s", opts.WorkflowID, path)
	}

	if opts.IncludeCredentials {
		// Deliberately never auto-confirmed: credential exports contain
		// secrets and always require an explicit answer.
		ok, cerr := a.Confirm.Confirm(
			"Export credentials as well?",
			"Credential files contain decrypted secrets. Anyone with repository access can read them.",
			false,
		)
		if cerr != nil {
			return nil, cerr
		}
		if !ok {
			a.UI.Infof("Skipping credential export.")
			return out, nil
		}

		if err := client.ExportAllCredentials(ctx, l.CredentialsPath()); err != nil {
			return nil, err
		}
		out.CredentialFiles = countCredentialFiles(l)
		a.UI.Successf("Exported %d credential file(s) to %s", out.CredentialFiles, l.CredentialsPath())
		a.UI.Warnf("Review credential files before committing them anywhere.")
	}

	return out, nil
}
