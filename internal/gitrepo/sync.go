package gitrepo

import (
	"context"
	"strconv"
	"strings"
)

// AddAll stages all changes for commit.
func (r *Repo) AddAll(ctx context.Context) error {
	_, err := r.run(ctx, "add", "-A")
	return err
}

// Commit commits staged changes and returns the new HEAD hash.
func (r *Repo) Commit(ctx context.Context, message string) (string, error) {
	if _, err := r.run(ctx, "commit", "-m", message); err != nil {
		return "", err
	}

	out, err := r.run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Push pushes the given branch to the named remote, setting upstream so
// later pushes and pulls work without arguments.
func (r *Repo) Push(ctx context.Context, remote, branch string) error {
	_, err := r.run(ctx, "push", "-u", remote, branch)
	return err
}

// Pull pulls the given branch from the named remote.
func (r *Repo) Pull(ctx context.Context, remote, branch string) error {
	_, err := r.run(ctx, "pull", remote, branch)
	return err
}

// Log returns up to n recent one-line commit entries, newest first.
func (r *Repo) Log(ctx context.Context, n int) ([]string, error) {
	out, err := r.run(ctx, "log", "--oneline", "-n", strconv.Itoa(n))
	if err != nil {
		return nil, err
	}
	return trimLines(out), nil
}
