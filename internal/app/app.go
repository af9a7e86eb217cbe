// Package app provides high-level application logic for n8nvault
// commands. Each operation takes an options struct and returns an output
// struct; git, n8n, prompts, and output are injected so tests can drive
// every path deterministically.
package app

import (
	"os"

	"github.com/chazuruo/n8nvault/internal/config"
	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/execx"
	"github.com/chazuruo/n8nvault/internal/gitrepo"
	"github.com/chazuruo/n8nvault/internal/n8n"
	"github.com/chazuruo/n8nvault/internal/prompt"
	"github.com/chazuruo/n8nvault/internal/ui"
	"github.com/chazuruo/n8nvault/internal/vault"
)

// App wires the collaborators every command needs.
type App struct {
	Cfg     *config.Config
	Runner  execx.Runner
	Confirm prompt.Confirmer
	UI      *ui.Printer

	// Interactive enables spinners during long git operations.
	Interactive bool
}

// New creates an App with the given collaborators.
func New(cfg *config.Config, runner execx.Runner, confirm prompt.Confirmer, printer *ui.Printer) *App {
	return &App{
		Cfg:     cfg,
		Runner:  runner,
		Confirm: confirm,
		UI:      printer,
	}
}

// repo opens the git repository at dir using the configured binary.
func (a *App) repo(dir string) *gitrepo.Repo {
	return gitrepo.NewWithBinary(dir, a.Cfg.Git.Binary, a.Runner)
}

// client returns an n8n CLI client using the configured binary.
func (a *App) client() *n8n.Client {
	return n8n.New(a.Cfg.N8n.Binary, a.Runner)
}

// spin runs fn behind a spinner when interactive.
func (a *App) spin(title string, fn func() error) error {
	return ui.Spin(a.UI, title, a.Interactive, fn)
}

// resolveDir applies the configured default directory.
func (a *App) resolveDir(dir string) string {
	if dir == "" {
		return a.Cfg.Repo.Dir
	}
	return dir
}

// requireBootstrapped resolves dir to a layout and verifies it is a
// bootstrapped backup repository.
func (a *App) requireBootstrapped(dir string) (vault.Layout, error) {
	l := vault.Open(a.resolveDir(dir))
	if _, err := os.Stat(l.Dir); err != nil {
		return l, errors.Wrap(errors.ErrNotFound,
			"directory "+l.Dir+" does not exist; run 'n8nvault init' or 'n8nvault clone' first")
	}
	if !l.IsBootstrapped() {
		return l, errors.Wrap(errors.ErrNotFound,
			l.Dir+" is not a git repository; run 'n8nvault init' or 'n8nvault clone' first")
	}
	return l, nil
}
