package gitrepo

import (
	"context"
	"strings"
)

// CurrentBranch returns the current branch name.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// HasChanges reports whether the working tree has any staged, unstaged,
// or untracked changes.
func (r *Repo) HasChanges(ctx context.Context) (bool, error) {
	out, err := r.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// ChangedFiles returns the paths reported by git status --porcelain.
func (r *Repo) ChangedFiles(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range trimLines(out) {
		// Porcelain v1: XY <path> with a two-character status prefix.
		if len(line) > 3 {
			files = append(files, strings.TrimSpace(line[3:]))
		}
	}
	return files, nil
}

// UntrackedFiles returns files not yet known to git.
func (r *Repo) UntrackedFiles(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}
	return trimLines(out), nil
}
