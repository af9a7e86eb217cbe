package app

import (
	"context"
	"path/filepath"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/ui"
)

// PullOptions contains the options for the pull operation.
type PullOptions struct {
	Dir string
}

// PullOutput contains the result of a pull operation.
type PullOutput struct {
	Branch        string   `json:"branch"`
	Log           []string `json:"log,omitempty"`
	WorkflowFiles []string `json:"workflow_files,omitempty"`
}

var pullFailureCauses = []string{
	"the network or the git host is unreachable",
	"authentication failed (SSH keys, tokens)",
	"merge conflicts with local commits — resolve them manually with git, then re-run",
}

// Pull fetches the latest changes from the remote into the backup
// repository, confirming first if local changes would be at risk.
func (a *App) Pull(ctx context.Context, opts PullOptions) (*PullOutput, error) {
	l, err := a.requireBootstrapped(opts.Dir)
	if err != nil {
		return nil, err
	}
	repo := a.repo(l.Dir)

	branch, err := repo.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}

	dirty, err := repo.HasChanges(ctx)
	if err != nil {
		return nil, err
	}
	if dirty {
		a.UI.Warnf("You have uncommitted local changes in %s.", l.Dir)
		ok, cerr := a.Confirm.Confirm(
			"Pull anyway?",
			"Pulling may fail or mix remote changes with your local edits.",
			false,
		)
		if cerr != nil {
			return nil, cerr
		}
		if !ok {
			return nil, errors.ErrCanceled
		}
	}

	err = a.spin("Pulling "+branch+" from "+a.Cfg.Repo.Remote, func() error {
		return repo.Pull(ctx, a.Cfg.Repo.Remote, branch)
	})
	if err != nil {
		a.UI.Checklist("Pull failed. Likely causes:", pullFailureCauses)
		return nil, err
	}
	a.UI.Successf("Pulled %s from %s", branch, a.Cfg.Repo.Remote)

	entries, err := repo.Log(ctx, a.Cfg.Git.LogEntries)
	if err != nil {
		return nil, err
	}
	a.UI.Infof("Recent commits:")
	for _, entry := range entries {
		a.UI.Plainf("  %s", entry)
	}

	files, err := l.ListWorkflowFiles()
	if err != nil {
		return nil, err
	}
	if len(files) > 0 {
		var rows [][]any
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, filepath.Base(f))
			rows = append(rows, []any{filepath.Base(f)})
		}
		a.UI.Infof("Workflow files in this backup:")
		ui.FileTable(a.UI.Out(), []string{"File"}, rows)
		a.UI.Infof("Run 'n8nvault import --all' to load them into n8n.")

		return &PullOutput{Branch: branch, Log: entries, WorkflowFiles: names}, nil
	}

	return &PullOutput{Branch: branch, Log: entries}, nil
}
