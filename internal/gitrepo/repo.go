// Package gitrepo provides a Git repository abstraction.
// It shells out to the git binary through an injectable runner, making it
// a lightweight wrapper around standard Git functionality.
package gitrepo

import (
	"context"
	"strings"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/execx"
)

// Repo represents a Git repository rooted at a directory.
type Repo struct {
	dir    string
	binary string
	runner execx.Runner
}

// New creates a Repo for the given directory using the "git" binary.
func New(dir string, runner execx.Runner) *Repo {
	return NewWithBinary(dir, "git", runner)
}

// NewWithBinary creates a Repo using a specific git executable.
func NewWithBinary(dir, binary string, runner execx.Runner) *Repo {
	return &Repo{dir: dir, binary: binary, runner: runner}
}

// Dir returns the repository path.
func (r *Repo) Dir() string {
	return r.dir
}

// run executes a git command in the repository directory and returns its
// standard output. Failures come back as *errors.CommandError.
func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	res, err := r.runner.Run(ctx, r.dir, r.binary, args...)
	if err != nil {
		return "", &errors.CommandError{
			Tool:     r.binary,
			Args:     args,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
			Err:      err,
		}
	}
	return res.Stdout, nil
}

// CheckInstalled verifies the git binary is reachable on PATH.
func CheckInstalled(runner execx.Runner, binary string) error {
	if _, err := runner.LookPath(binary); err != nil {
		return errors.Wrap(errors.ErrPrereq, "git ("+binary+") not found; install git and ensure it is on PATH")
	}
	return nil
}

// trimLines splits output into non-empty trimmed lines.
func trimLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
