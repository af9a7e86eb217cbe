package app

import (
	"context"
	"os"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/gitrepo"
	"github.com/chazuruo/n8nvault/internal/ui"
	"github.com/chazuruo/n8nvault/internal/vault"
)

// CloneOptions contains the options for the clone operation.
type CloneOptions struct {
	Dir       string
	RemoteURL string
	Branch    string
}

// CloneOutput contains the result of a clone operation.
type CloneOutput struct {
	Dir    string `json:"dir"`
	Branch string `json:"branch"`
}

var cloneFailureCauses = []string{
	"the remote URL is wrong or the repository does not exist",
	"you lack read access (check SSH keys or access tokens)",
	"the network or the git host is unreachable",
}

// Clone fetches an existing backup repository from a remote.
func (a *App) Clone(ctx context.Context, opts CloneOptions) (*CloneOutput, error) {
	if opts.RemoteURL == "" {
		return nil, errors.Wrap(errors.ErrInvalid, "--repo is required")
	}

	dir := a.resolveDir(opts.Dir)
	branch := opts.Branch
	if branch == "" {
		branch = a.Cfg.Repo.Branch
	}

	if _, err := os.Stat(dir); err == nil {
		ok, cerr := a.Confirm.Confirm(
			"Delete and re-clone?",
			dir+" already exists. Continuing deletes it and clones fresh from the remote.",
			false,
		)
		if cerr != nil {
			return nil, cerr
		}
		if !ok {
			return nil, errors.ErrCanceled
		}
		if err := os.RemoveAll(dir); err != nil {
			return nil, errors.Wrap(err, "remove existing directory")
		}
	}

	var repo *gitrepo.Repo
	err := a.spin("Cloning "+opts.RemoteURL, func() error {
		var cerr error
		repo, cerr = gitrepo.Clone(ctx, a.Runner, a.Cfg.Git.Binary, opts.RemoteURL, dir)
		return cerr
	})
	if err != nil {
		a.UI.Checklist("Clone failed. Likely causes:", cloneFailureCauses)
		return nil, err
	}
	a.UI.Successf("Cloned into %s", dir)

	if branch != "main" && branch != "master" {
		if repo.RemoteBranchExists(ctx, a.Cfg.Repo.Remote, branch) {
			if err := repo.CheckoutTracking(ctx, a.Cfg.Repo.Remote, branch); err != nil {
				return nil, err
			}
			a.UI.Successf("Checked out remote branch %s", branch)
		} else {
			if err := repo.CheckoutNew(ctx, branch); err != nil {
				return nil, err
			}
			a.UI.Successf("Created new branch %s", branch)
		}
	}

	l := vault.Open(dir)
	if err := l.EnsureDirs(); err != nil {
		return nil, err
	}

	a.listContents(dir)
	a.UI.Infof("Next: 'n8nvault pull' to stay current, or 'n8nvault import --all' to load workflows into n8n.")

	return &CloneOutput{Dir: dir, Branch: branch}, nil
}

// listContents prints the top-level entries of the cloned repository.
func (a *App) listContents(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var rows [][]any
	for _, e := range entries {
		if e.Name() == ".git" {
			continue
		}
		kind := "file"
		if e.IsDir() {
			kind = "dir"
		}
		rows = append(rows, []any{e.Name(), kind})
	}
	if len(rows) == 0 {
		return
	}
	a.UI.Headerf("Repository contents")
	ui.FileTable(a.UI.Out(), []string{"Name", "Type"}, rows)
}
