// Package errors provides the error taxonomy for n8nvault.
//
// Base errors (sentinel errors):
//   - ErrCanceled - user declined a confirmation
//   - ErrInvalid - invalid invocation (flags, selection mode)
//   - ErrNotFound - required directory or file missing
//   - ErrPrereq - required external CLI not found
//   - ErrExternal - external command returned non-zero
//
// CommandError wraps a failed external invocation with the tool name,
// arguments, and exit code so callers can print actionable guidance.
//
// The CLI maps ErrCanceled to exit code 0 (a declined prompt is not an
// error); everything else exits 1.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Base error types (sentinel errors).
var (
	// ErrCanceled indicates the user declined a confirmation prompt.
	ErrCanceled = baseError("canceled")

	// ErrInvalid indicates an invalid invocation.
	ErrInvalid = baseError("invalid")

	// ErrNotFound indicates a required directory or file is missing.
	ErrNotFound = baseError("not found")

	// ErrPrereq indicates a required external CLI is not installed.
	ErrPrereq = baseError("prerequisite missing")

	// ErrExternal indicates an external command failed.
	ErrExternal = baseError("external command failed")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// CommandError represents a failed external command invocation.
type CommandError struct {
	// Tool is the binary that was invoked (e.g., "git", "n8n").
	Tool string
	// Args is the arguments passed to the tool.
	Args []string
	// ExitCode is the exit code from the command.
	ExitCode int
	// Stderr is the captured standard error output (may be empty).
	Stderr string
	// Err is the underlying error.
	Err error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Tool, strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n  " + s
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// Is makes CommandError match ErrExternal in errors.Is chains.
func (e *CommandError) Is(target error) bool { return target == ErrExternal }

// Wrap adds context to an error by wrapping it with an operation name.
func Wrap(err error, op string) error {
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsCanceled reports whether err is or wraps ErrCanceled.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPrereq reports whether err is or wraps ErrPrereq.
func IsPrereq(err error) bool {
	return errors.Is(err, ErrPrereq)
}

// IsExternal reports whether err is or wraps ErrExternal.
func IsExternal(err error) bool {
	return errors.Is(err, ErrExternal)
}

// AsCommandError reports whether err can be typed as a *CommandError.
func AsCommandError(err error) (*CommandError, bool) {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
