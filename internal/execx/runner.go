// Package execx abstracts external command execution.
//
// Every git and n8n invocation goes through a Runner so tests can
// substitute a fake backend and assert exact arguments without touching a
// real repository or automation server.
package execx

import (
	"bytes"
	"context"
	"os/exec"
)

// Result contains the outcome of a command invocation.
type Result struct {
	// Stdout is the captured standard output.
	Stdout string
	// Stderr is the captured standard error.
	Stderr string
	// ExitCode is the process exit code (0 on success).
	ExitCode int
}

// Runner executes external commands.
type Runner interface {
	// Run executes name with args in dir (empty dir means the process
	// working directory). A non-zero exit is reported via Result.ExitCode
	// and a non-nil error.
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)

	// LookPath reports where name resolves on PATH, or an error if the
	// binary is not installed.
	LookPath(name string) (string, error)
}

// System returns a Runner backed by os/exec.
func System() Runner {
	return systemRunner{}
}

type systemRunner struct{}

func (systemRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			res.ExitCode = ee.ExitCode()
		} else {
			res.ExitCode = -1
		}
		return res, err
	}

	return res, nil
}

func (systemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
