package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/chazuruo/n8nvault/internal/execx"
)

// Call records a single invocation made through the FakeRunner.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as "name arg1 arg2 ...".
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

type stub struct {
	prefix string
	result execx.Result
	err    error
}

// FakeRunner is an execx.Runner that records every call and answers from
// scripted stubs, so tests can assert exact git/n8n invocations without
// real repositories or a real automation server.
type FakeRunner struct {
	mu      sync.Mutex
	calls   []Call
	stubs   []stub
	missing map[string]bool
}

// NewFakeRunner returns an empty FakeRunner. Unstubbed calls succeed with
// an empty result.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{missing: map[string]bool{}}
}

// Stub scripts a response for calls whose "name args..." string starts
// with prefix. Later stubs take precedence over earlier ones.
func (f *FakeRunner) Stub(prefix string, result execx.Result, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stubs = append(f.stubs, stub{prefix: prefix, result: result, err: err})
}

// Fail scripts a non-zero exit for calls matching prefix.
func (f *FakeRunner) Fail(prefix, stderr string) {
	f.Stub(prefix, execx.Result{Stderr: stderr, ExitCode: 1}, fmt.Errorf("exit status 1"))
}

// MarkMissing makes LookPath fail for the named binary.
func (f *FakeRunner) MarkMissing(binary string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.missing[binary] = true
}

// Run implements execx.Runner.
func (f *FakeRunner) Run(_ context.Context, dir, name string, args ...string) (execx.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := Call{Dir: dir, Name: name, Args: args}
	f.calls = append(f.calls, call)

	key := call.String()
	for i := len(f.stubs) - 1; i >= 0; i-- {
		if strings.HasPrefix(key, f.stubs[i].prefix) {
			return f.stubs[i].result, f.stubs[i].err
		}
	}
	return execx.Result{}, nil
}

// LookPath implements execx.Runner.
func (f *FakeRunner) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.missing[name] {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return "/usr/bin/" + name, nil
}

// Calls returns a copy of the recorded calls.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallStrings returns each recorded call rendered as a command line.
func (f *FakeRunner) CallStrings() []string {
	calls := f.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

// CountCalls returns how many recorded calls match the given prefix.
func (f *FakeRunner) CountCalls(prefix string) int {
	n := 0
	for _, s := range f.CallStrings() {
		if strings.HasPrefix(s, prefix) {
			n++
		}
	}
	return n
}
