package gitrepo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/execx"
)

// Clone clones a Git repository from remote into dir and returns a Repo
// for the resulting checkout. The parent directory is created if needed.
func Clone(ctx context.Context, runner execx.Runner, binary, remote, dir string) (*Repo, error) {
	if err := os.MkdirAll(filepath.Dir(dir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create parent directory: %w", err)
	}

	args := []string{"clone", remote, dir}
	res, err := runner.Run(ctx, "", binary, args...)
	if err != nil {
		return nil, &errors.CommandError{
			Tool:     binary,
			Args:     args,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
			Err:      err,
		}
	}

	return NewWithBinary(dir, binary, runner), nil
}

// RemoteBranchExists checks if a remote-tracking branch exists locally.
func (r *Repo) RemoteBranchExists(ctx context.Context, remote, branch string) bool {
	_, err := r.run(ctx, "show-ref", "--verify", "--quiet", "refs/remotes/"+remote+"/"+branch)
	return err == nil
}

// CheckoutTracking creates a local branch tracking remote/<branch>.
func (r *Repo) CheckoutTracking(ctx context.Context, remote, branch string) error {
	_, err := r.run(ctx, "checkout", "-b", branch, "--track", remote+"/"+branch)
	return err
}

// CheckoutNew creates and checks out a new local branch.
func (r *Repo) CheckoutNew(ctx context.Context, branch string) error {
	_, err := r.run(ctx, "checkout", "-b", branch)
	return err
}
