package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/execx"
	"github.com/chazuruo/n8nvault/internal/prompt"
	"github.com/chazuruo/n8nvault/internal/testutil"
)

func stubPushRepo(runner *testutil.FakeRunner) {
	runner.Stub("git status --porcelain", execx.Result{Stdout: " M workflows/workflow_wf1.json\n"}, nil)
	runner.Stub("git rev-parse HEAD", execx.Result{Stdout: "abc1234\n"}, nil)
	runner.Stub("git branch --show-current", execx.Result{Stdout: "main\n"}, nil)
	runner.Stub("git log --oneline", execx.Result{Stdout: "abc1234 Update workflows\nfff0000 Initial\n"}, nil)
}

func TestPushNothingToCommit(t *testing.T) {
	a, runner, out := newTestApp(t, testutil.SeedRepo(t), prompt.Auto(true))

	res, err := a.Push(context.Background(), PushOptions{})
	require.NoError(t, err)

	assert.False(t, res.Committed)
	assert.Zero(t, runner.CountCalls("git add"))
	assert.Zero(t, runner.CountCalls("git push"))
	assert.Contains(t, out.String(), "Nothing to commit")
}

func TestPushCommitsAndPushes(t *testing.T) {
	a, runner, _ := newTestApp(t, testutil.SeedRepo(t), prompt.Auto(true))
	stubPushRepo(runner)

	out, err := a.Push(context.Background(), PushOptions{})
	require.NoError(t, err)

	assert.True(t, out.Committed)
	assert.Equal(t, "main", out.Branch)
	assert.Equal(t, "abc1234", out.CommitHash)
	assert.Len(t, out.Log, 2)

	calls := runner.CallStrings()
	assert.Contains(t, calls, "git add -A")
	assert.Contains(t, calls, "git push -u origin main")
}

func TestPushCommitMessageTimestamped(t *testing.T) {
	a, runner, _ := newTestApp(t, testutil.SeedRepo(t), prompt.Auto(true))
	stubPushRepo(runner)

	_, err := a.Push(context.Background(), PushOptions{})
	require.NoError(t, err)

	var message string
	for _, c := range runner.Calls() {
		if len(c.Args) >= 3 && c.Args[0] == "commit" && c.Args[1] == "-m" {
			message = c.Args[2]
		}
	}
	require.NotEmpty(t, message)
	assert.True(t, strings.HasPrefix(message, "Update workflows - 20"), message)
}

func TestPushCustomMessage(t *testing.T) {
	a, runner, _ := newTestApp(t, testutil.SeedRepo(t), prompt.Auto(true))
	stubPushRepo(runner)

	_, err := a.Push(context.Background(), PushOptions{Message: "Nightly backup"})
	require.NoError(t, err)

	var message string
	for _, c := range runner.Calls() {
		if len(c.Args) >= 3 && c.Args[0] == "commit" && c.Args[1] == "-m" {
			message = c.Args[2]
		}
	}
	assert.True(t, strings.HasPrefix(message, "Nightly backup - "), message)
}

func TestPushFailureSurfacesError(t *testing.T) {
	a, runner, out := newTestApp(t, testutil.SeedRepo(t), prompt.Auto(true))
	stubPushRepo(runner)
	runner.Fail("git push", "permission denied")

	_, err := a.Push(context.Background(), PushOptions{})
	assert.True(t, errors.IsExternal(err))
	assert.Contains(t, out.String(), "Push failed")
}
