// Package cli provides Cobra command definitions for n8nvault.
package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/chazuruo/n8nvault/internal/app"
	"github.com/chazuruo/n8nvault/internal/config"
	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/execx"
	"github.com/chazuruo/n8nvault/internal/gitrepo"
	"github.com/chazuruo/n8nvault/internal/n8n"
	"github.com/chazuruo/n8nvault/internal/prompt"
	"github.com/chazuruo/n8nvault/internal/ui"
)

var (
	// NoTUI indicates that TUI/interactive mode should be disabled.
	// This is set by the global --no-tui flag.
	NoTUI bool

	// noTUIMutex protects NoTUI for concurrent access.
	noTUIMutex sync.RWMutex
)

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&NoTUI, "no-tui", false,
		"disable TUI/interactive mode; read confirmations from stdin")
}

// IsNoTUI returns true if TUI mode is disabled.
func IsNoTUI() bool {
	noTUIMutex.RLock()
	defer noTUIMutex.RUnlock()
	return NoTUI
}

// setup loads the configuration, verifies git is available, and wires an
// App for a command invocation.
func setup(configPath string) (*app.App, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	runner := execx.System()
	if err := gitrepo.CheckInstalled(runner, cfg.Git.Binary); err != nil {
		return nil, err
	}

	var confirm prompt.Confirmer
	if IsNoTUI() {
		confirm = prompt.NewPlain(os.Stdin, os.Stdout)
	} else {
		confirm = prompt.NewTUI()
	}

	a := app.New(cfg, runner, confirm, ui.NewPrinter(os.Stdout))
	a.Interactive = !IsNoTUI()
	return a, nil
}

// loadConfig loads the config from an explicit path, or from the default
// search paths when none is given.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadWithDefaults()
}

// checkN8n verifies the n8n CLI is available before commands that need it.
func checkN8n(a *app.App) error {
	return n8n.New(a.Cfg.N8n.Binary, a.Runner).CheckInstalled()
}

// finish maps a command outcome to exit behavior. A declined confirmation
// aborts the command but is not an error.
func finish(err error) error {
	if errors.IsCanceled(err) {
		fmt.Println("Aborted.")
		return nil
	}
	return err
}
