// Package config provides configuration management for n8nvault.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields. Command-line flags always override
// config values.
package config

import (
	"fmt"
)

// Config is the top-level configuration struct for n8nvault.
type Config struct {
	Repo Repo `toml:"repo"`
	Git  Git  `toml:"git"`
	N8n  N8n  `toml:"n8n"`
}

// Repo contains backup-repository settings.
type Repo struct {
	// Dir is the default backup repository directory.
	Dir string `toml:"dir"`

	// Remote is the git remote name (default: "origin").
	Remote string `toml:"remote"`

	// Branch is the default branch name (default: "main").
	Branch string `toml:"branch"`
}

// Git contains git-specific settings.
type Git struct {
	// Binary is the git executable name or path.
	Binary string `toml:"binary"`

	// CommitMessage is the default push commit message.
	CommitMessage string `toml:"commit_message"`

	// LogEntries is how many recent commits to show after push/pull.
	LogEntries int `toml:"log_entries"`
}

// N8n contains settings for the n8n CLI.
type N8n struct {
	// Binary is the n8n executable name or path.
	Binary string `toml:"binary"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		Repo: Repo{
			Dir:    "./n8n-workflows",
			Remote: "origin",
			Branch: "main",
		},
		Git: Git{
			Binary:        "git",
			CommitMessage: "Update workflows",
			LogEntries:    5,
		},
		N8n: N8n{
			Binary: "n8n",
		},
	}
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	if c.Repo.Dir == "" {
		return fmt.Errorf("repo.dir cannot be empty")
	}
	if c.Repo.Remote == "" {
		return fmt.Errorf("repo.remote cannot be empty")
	}
	if c.Repo.Branch == "" {
		return fmt.Errorf("repo.branch cannot be empty")
	}
	if c.Git.Binary == "" {
		return fmt.Errorf("git.binary cannot be empty")
	}
	if c.Git.CommitMessage == "" {
		return fmt.Errorf("git.commit_message cannot be empty")
	}
	if c.Git.LogEntries < 1 {
		return fmt.Errorf("git.log_entries must be >= 1; got %d", c.Git.LogEntries)
	}
	if c.N8n.Binary == "" {
		return fmt.Errorf("n8n.binary cannot be empty")
	}
	return nil
}
