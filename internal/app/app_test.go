package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chazuruo/n8nvault/internal/config"
	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/prompt"
	"github.com/chazuruo/n8nvault/internal/testutil"
	"github.com/chazuruo/n8nvault/internal/ui"
)

// newTestApp builds an App backed by a FakeRunner, a scripted confirmer,
// and a buffered printer. dir becomes the configured repository directory.
func newTestApp(t *testing.T, dir string, confirm prompt.Confirmer) (*App, *testutil.FakeRunner, *bytes.Buffer) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Repo.Dir = dir

	runner := testutil.NewFakeRunner()
	out := &bytes.Buffer{}
	return New(cfg, runner, confirm, ui.NewPrinter(out)), runner, out
}

func TestRequireBootstrapped(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		a, _, _ := newTestApp(t, t.TempDir()+"/nope", prompt.Auto(true))
		_, err := a.requireBootstrapped("")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("directory without git metadata", func(t *testing.T) {
		a, _, _ := newTestApp(t, t.TempDir(), prompt.Auto(true))
		_, err := a.requireBootstrapped("")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("bootstrapped repository", func(t *testing.T) {
		dir := testutil.SeedRepo(t)
		a, _, _ := newTestApp(t, dir, prompt.Auto(true))
		l, err := a.requireBootstrapped("")
		assert.NoError(t, err)
		assert.Equal(t, dir, l.Dir)
	})
}

func TestResolveDir(t *testing.T) {
	a, _, _ := newTestApp(t, "/backups/default", prompt.Auto(true))
	assert.Equal(t, "/backups/default", a.resolveDir(""))
	assert.Equal(t, "/backups/override", a.resolveDir("/backups/override"))
}
