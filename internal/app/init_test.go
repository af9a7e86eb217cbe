package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/execx"
	"github.com/chazuruo/n8nvault/internal/prompt"
)

func TestInitRequiresRemote(t *testing.T) {
	a, _, _ := newTestApp(t, t.TempDir(), prompt.Auto(true))

	_, err := a.Init(context.Background(), InitOptions{})
	assert.True(t, errors.IsInvalid(err))
}

func TestInitBootstrapsRepository(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault")
	a, runner, _ := newTestApp(t, dir, prompt.Auto(true))
	runner.Stub("git rev-parse HEAD", execx.Result{Stdout: "abc1234\n"}, nil)

	out, err := a.Init(context.Background(), InitOptions{
		RemoteURL: "git@example.com:ops/backups.git",
	})
	require.NoError(t, err)

	assert.Equal(t, dir, out.Dir)
	assert.Equal(t, "main", out.Branch)
	assert.Equal(t, "abc1234", out.CommitHash)

	calls := runner.CallStrings()
	assert.Contains(t, calls, "git init")
	assert.Contains(t, calls, "git remote add origin git@example.com:ops/backups.git")
	assert.Contains(t, calls, "git add -A")
	assert.Contains(t, calls, "git commit -m Initial n8n workflow backup setup")
	assert.Contains(t, calls, "git branch -M main")

	for _, name := range []string{"workflows", "credentials", "README.md", ".gitignore", ".n8nvault.yml"} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, statErr, name)
	}
}

func TestInitCustomBranch(t *testing.T) {
	a, runner, _ := newTestApp(t, filepath.Join(t.TempDir(), "vault"), prompt.Auto(true))

	out, err := a.Init(context.Background(), InitOptions{
		RemoteURL: "https://example.com/backups.git",
		Branch:    "backups",
	})
	require.NoError(t, err)

	assert.Equal(t, "backups", out.Branch)
	assert.Contains(t, runner.CallStrings(), "git branch -M backups")
}

func TestInitReplacesStaleRemote(t *testing.T) {
	a, runner, _ := newTestApp(t, filepath.Join(t.TempDir(), "vault"), prompt.Auto(true))
	runner.Stub("git remote", execx.Result{Stdout: "origin\n"}, nil)

	_, err := a.Init(context.Background(), InitOptions{
		RemoteURL: "https://example.com/backups.git",
	})
	require.NoError(t, err)

	calls := runner.CallStrings()
	assert.Contains(t, calls, "git remote remove origin")
	assert.Contains(t, calls, "git remote add origin https://example.com/backups.git")
}

func TestInitDeclineReinitialize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))

	a, runner, _ := newTestApp(t, dir, prompt.Auto(false))

	_, err := a.Init(context.Background(), InitOptions{
		RemoteURL: "https://example.com/backups.git",
	})
	assert.True(t, errors.IsCanceled(err))
	assert.Zero(t, runner.CountCalls("git init"))
}
