package app

import (
	"context"
	"os"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/vault"
)

// InitOptions contains the options for the init operation.
type InitOptions struct {
	// Dir is the backup repository directory (config default if empty).
	Dir string
	// RemoteURL is the git remote to register as origin. Required.
	RemoteURL string
	// Branch is the branch name for the initial commit (default "main").
	Branch string
}

// InitOutput contains the result of an init operation.
type InitOutput struct {
	Dir        string `json:"dir"`
	Branch     string `json:"branch"`
	CommitHash string `json:"commit_hash"`
}

// Init bootstraps a fresh backup repository: creates the directory
// layout, initializes git, registers the remote, writes the default
// documentation and ignore files, and makes the initial commit.
func (a *App) Init(ctx context.Context, opts InitOptions) (*InitOutput, error) {
	if opts.RemoteURL == "" {
		return nil, errors.Wrap(errors.ErrInvalid, "--repo is required")
	}

	dir := a.resolveDir(opts.Dir)
	branch := opts.Branch
	if branch == "" {
		branch = a.Cfg.Repo.Branch
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "create directory")
	}

	l := vault.Open(dir)
	if l.IsBootstrapped() {
		ok, err := a.Confirm.Confirm(
			"Reinitialize existing repository?",
			dir+" already contains git metadata. Continuing re-runs the full setup.",
			false,
		)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.ErrCanceled
		}
	}

	repo := a.repo(dir)
	if err := repo.Init(ctx); err != nil {
		return nil, err
	}
	a.UI.Successf("Initialized git repository in %s", dir)

	if err := repo.RemoveRemote(ctx, a.Cfg.Repo.Remote); err != nil {
		return nil, err
	}
	if err := repo.AddRemote(ctx, a.Cfg.Repo.Remote, opts.RemoteURL); err != nil {
		return nil, err
	}
	a.UI.Successf("Remote %s set to %s", a.Cfg.Repo.Remote, opts.RemoteURL)

	if err := l.EnsureDirs(); err != nil {
		return nil, err
	}
	if err := l.WriteReadme(); err != nil {
		return nil, errors.Wrap(err, "write README")
	}
	if err := l.WriteGitignore(); err != nil {
		return nil, errors.Wrap(err, "write .gitignore")
	}
	if err := vault.SaveManifest(dir, vault.DefaultManifest(branch)); err != nil {
		return nil, err
	}

	if err := repo.AddAll(ctx); err != nil {
		return nil, err
	}
	hash, err := repo.Commit(ctx, "Initial n8n workflow backup setup")
	if err != nil {
		return nil, err
	}
	if err := repo.RenameBranch(ctx, branch); err != nil {
		return nil, err
	}

	a.UI.Successf("Initial commit created on branch %s", branch)
	a.UI.Infof("Next: 'n8nvault export --all' to back up your workflows, then 'n8nvault push'.")

	return &InitOutput{Dir: dir, Branch: branch, CommitHash: hash}, nil
}
