package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// DetectConfigPath searches for a config file using XDG standard paths.
// Returns the first config file found, or empty string if none exists
// (caller should use defaults).
func DetectConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	configPath := filepath.Join(homeDir, ".config", "n8nvault", "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path. After loading, applies
// environment variable overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	expandPath(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from XDG standard paths.
// If no config file is found, returns a config with all default values.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		expandPath(cfg)
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: N8NVAULT_<SECTION>_<FIELD>.
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyInt := func(key string, target *int) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			if i, err := strconv.Atoi(val); err == nil {
				*target = i
			}
		}
	}

	applyString("N8NVAULT_REPO_DIR", &c.Repo.Dir)
	applyString("N8NVAULT_REPO_REMOTE", &c.Repo.Remote)
	applyString("N8NVAULT_REPO_BRANCH", &c.Repo.Branch)

	applyString("N8NVAULT_GIT_BINARY", &c.Git.Binary)
	applyString("N8NVAULT_GIT_COMMIT_MESSAGE", &c.Git.CommitMessage)
	applyInt("N8NVAULT_GIT_LOG_ENTRIES", &c.Git.LogEntries)

	applyString("N8NVAULT_N8N_BINARY", &c.N8n.Binary)
}

// expandPath expands ~ to the home directory in the repo dir.
func expandPath(c *Config) {
	if strings.HasPrefix(c.Repo.Dir, "~/") || c.Repo.Dir == "~" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			c.Repo.Dir = filepath.Join(homeDir, strings.TrimPrefix(c.Repo.Dir, "~/"))
		}
	}
}
