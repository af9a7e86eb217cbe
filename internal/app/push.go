package app

import (
	"context"
	"fmt"
	"time"
)

// PushOptions contains the options for the push operation.
type PushOptions struct {
	Dir string
	// Message is the commit message prefix (config default if empty).
	Message string
}

// PushOutput contains the result of a push operation.
type PushOutput struct {
	Committed  bool     `json:"committed"`
	Branch     string   `json:"branch,omitempty"`
	CommitHash string   `json:"commit_hash,omitempty"`
	Log        []string `json:"log,omitempty"`
}

var pushFailureCauses = []string{
	"no remote named origin, or the remote URL changed (check 'git remote -v')",
	"authentication failed (SSH keys, tokens)",
	"you lack write permission on the remote repository",
	"the remote branch diverged; run 'n8nvault pull' first",
}

// Push stages, commits, and pushes all pending changes in the backup
// repository. A clean working tree is a successful no-op.
func (a *App) Push(ctx context.Context, opts PushOptions) (*PushOutput, error) {
	l, err := a.requireBootstrapped(opts.Dir)
	if err != nil {
		return nil, err
	}
	repo := a.repo(l.Dir)

	dirty, err := repo.HasChanges(ctx)
	if err != nil {
		return nil, err
	}
	if !dirty {
		a.UI.Successf("Nothing to commit — the backup repository is up to date.")
		return &PushOutput{Committed: false}, nil
	}

	if err := repo.AddAll(ctx); err != nil {
		return nil, err
	}

	message := opts.Message
	if message == "" {
		message = a.Cfg.Git.CommitMessage
	}
	message = fmt.Sprintf("%s - %s", message, time.Now().Format("2006-01-02 15:04:05"))

	hash, err := repo.Commit(ctx, message)
	if err != nil {
		return nil, err
	}

	branch, err := repo.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}

	err = a.spin("Pushing "+branch+" to "+a.Cfg.Repo.Remote, func() error {
		return repo.Push(ctx, a.Cfg.Repo.Remote, branch)
	})
	if err != nil {
		a.UI.Checklist("Push failed. Likely causes:", pushFailureCauses)
		return nil, err
	}

	entries, err := repo.Log(ctx, a.Cfg.Git.LogEntries)
	if err != nil {
		return nil, err
	}

	a.UI.Successf("Pushed %s to %s", branch, a.Cfg.Repo.Remote)
	a.UI.Infof("Recent commits:")
	for _, entry := range entries {
		a.UI.Plainf("  %s", entry)
	}

	return &PushOutput{Committed: true, Branch: branch, CommitHash: hash, Log: entries}, nil
}
