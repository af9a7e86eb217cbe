package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/vault"
)

// ImportOptions contains the options for the import operation.
type ImportOptions struct {
	Dir string
	// All imports every workflow file. Mutually exclusive with File.
	All bool
	// File imports a single named workflow file.
	File string
	// AutoConfirm skips every prompt, answering yes.
	AutoConfirm bool
}

// ImportOutput contains the result of an import operation.
type ImportOutput struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// Import loads workflow files from the backup repository into the n8n
// instance. Bulk mode continues past per-file failures; single-file mode
// fails fast.
func (a *App) Import(ctx context.Context, opts ImportOptions) (*ImportOutput, error) {
	if opts.All == (opts.File != "") {
		return nil, errors.Wrap(errors.ErrInvalid, "specify exactly one of --all or --file")
	}

	l, err := a.requireBootstrapped(opts.Dir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(l.WorkflowsPath()); err != nil {
		return nil, errors.Wrap(errors.ErrNotFound,
			l.WorkflowsPath()+" does not exist; run 'n8nvault export' or 'n8nvault pull' first")
	}

	if !opts.AutoConfirm {
		ok, cerr := a.Confirm.Confirm(
			"Import into n8n?",
			"Importing overwrites workflows with matching IDs on the n8n instance.",
			false,
		)
		if cerr != nil {
			return nil, cerr
		}
		if !ok {
			return nil, errors.ErrCanceled
		}
	}

	if opts.All {
		return a.importAll(ctx, l, opts.AutoConfirm)
	}
	return a.importOne(ctx, opts.File)
}

// importAll imports every workflow file, prompting per file unless the
// caller auto-confirmed, and continuing past individual failures.
func (a *App) importAll(ctx context.Context, l vault.Layout, autoConfirm bool) (*ImportOutput, error) {
	files, err := l.ListWorkflowFiles()
	if err != nil {
		return nil, err
	}

	out := &ImportOutput{}
	if len(files) == 0 {
		a.UI.Infof("No workflow files found in %s — nothing to import.", l.WorkflowsPath())
		return out, nil
	}

	client := a.client()
	for _, file := range files {
		ok := true
		if !autoConfirm {
			var cerr error
			ok, cerr = a.Confirm.Confirm("Import "+filepath.Base(file)+"?", "", false)
			if cerr != nil {
				return out, cerr
			}
		}
		if !ok {
			out.Skipped++
			continue
		}

		if err := client.ImportWorkflow(ctx, file); err != nil {
			// One bad file must not block the rest of the batch.
			a.UI.Errorf("Failed to import %s: %v", filepath.Base(file), err)
			out.Failed++
			continue
		}
		out.Imported++
	}

	a.summarize(out)
	return out, nil
}

// importOne imports a single file; a failed invocation is fatal.
func (a *App) importOne(ctx context.Context, file string) (*ImportOutput, error) {
	if _, err := os.Stat(file); err != nil {
		return nil, errors.Wrap(errors.ErrNotFound, "workflow file "+file+" does not exist")
	}

	if err := a.client().ImportWorkflow(ctx, file); err != nil {
		return nil, err
	}

	out := &ImportOutput{Imported: 1}
	a.summarize(out)
	return out, nil
}

func (a *App) summarize(out *ImportOutput) {
	a.UI.Successf("Import finished: %d imported, %d skipped, %d failed", out.Imported, out.Skipped, out.Failed)
	if out.Imported > 0 {
		a.UI.Infof("Verify credentials and activation state of the imported workflows in n8n.")
	}
}
