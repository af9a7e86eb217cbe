package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/execx"
	"github.com/chazuruo/n8nvault/internal/prompt"
	"github.com/chazuruo/n8nvault/internal/testutil"
)

func stubPullRepo(runner *testutil.FakeRunner) {
	runner.Stub("git branch --show-current", execx.Result{Stdout: "main\n"}, nil)
	runner.Stub("git log --oneline", execx.Result{Stdout: "abc1234 Update workflows\n"}, nil)
}

func TestPullCleanTree(t *testing.T) {
	dir := testutil.SeedRepo(t)
	testutil.SeedWorkflowFile(t, dir, "wf1")

	a, runner, out := newTestApp(t, dir, prompt.Auto(true))
	stubPullRepo(runner)

	res, err := a.Pull(context.Background(), PullOptions{})
	require.NoError(t, err)

	assert.Equal(t, "main", res.Branch)
	assert.Len(t, res.Log, 1)
	assert.Equal(t, []string{"workflow_wf1.json"}, res.WorkflowFiles)
	assert.Contains(t, runner.CallStrings(), "git pull origin main")
	assert.Contains(t, out.String(), "n8nvault import --all")
}

func TestPullDirtyTreeDeclined(t *testing.T) {
	a, runner, _ := newTestApp(t, testutil.SeedRepo(t), prompt.Auto(false))
	stubPullRepo(runner)
	runner.Stub("git status --porcelain", execx.Result{Stdout: " M workflows/workflow_wf1.json\n"}, nil)

	_, err := a.Pull(context.Background(), PullOptions{})
	assert.True(t, errors.IsCanceled(err))
	assert.Zero(t, runner.CountCalls("git pull"))
}

func TestPullDirtyTreeAccepted(t *testing.T) {
	a, runner, _ := newTestApp(t, testutil.SeedRepo(t), prompt.Auto(true))
	stubPullRepo(runner)
	runner.Stub("git status --porcelain", execx.Result{Stdout: " M workflows/workflow_wf1.json\n"}, nil)

	_, err := a.Pull(context.Background(), PullOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, runner.CountCalls("git pull origin main"))
}

func TestPullFailureSurfacesError(t *testing.T) {
	a, runner, out := newTestApp(t, testutil.SeedRepo(t), prompt.Auto(true))
	stubPullRepo(runner)
	runner.Fail("git pull", "could not resolve host")

	_, err := a.Pull(context.Background(), PullOptions{})
	assert.True(t, errors.IsExternal(err))
	assert.Contains(t, out.String(), "Pull failed")
}
