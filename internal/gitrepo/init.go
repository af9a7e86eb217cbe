package gitrepo

import (
	"context"
	"strings"
)

// Init initializes a new Git repository.
func (r *Repo) Init(ctx context.Context) error {
	_, err := r.run(ctx, "init")
	return err
}

// IsInitialized returns true if the repository is already initialized.
func (r *Repo) IsInitialized(ctx context.Context) bool {
	_, err := r.run(ctx, "rev-parse", "--git-dir")
	return err == nil
}

// HasRemote reports whether a remote with the given name is configured.
func (r *Repo) HasRemote(ctx context.Context, name string) bool {
	out, err := r.run(ctx, "remote")
	if err != nil {
		return false
	}
	for _, line := range trimLines(out) {
		if strings.TrimSpace(line) == name {
			return true
		}
	}
	return false
}

// AddRemote adds a remote with the given name and URL.
func (r *Repo) AddRemote(ctx context.Context, name, url string) error {
	_, err := r.run(ctx, "remote", "add", name, url)
	return err
}

// RemoveRemote removes the named remote if it exists.
func (r *Repo) RemoveRemote(ctx context.Context, name string) error {
	if !r.HasRemote(ctx, name) {
		return nil
	}
	_, err := r.run(ctx, "remote", "remove", name)
	return err
}

// RenameBranch renames the current branch (git branch -M).
func (r *Repo) RenameBranch(ctx context.Context, name string) error {
	_, err := r.run(ctx, "branch", "-M", name)
	return err
}
