package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the manifest file written at the repository root.
const ManifestName = ".n8nvault.yml"

// Manifest records how a backup repository is laid out. It is written by
// init and consulted by export/import/pull so renamed directories keep
// working across clones.
type Manifest struct {
	Version        int    `yaml:"version"`
	Branch         string `yaml:"branch,omitempty"`
	WorkflowsDir   string `yaml:"workflows_dir,omitempty"`
	CredentialsDir string `yaml:"credentials_dir,omitempty"`
}

// DefaultManifest returns a manifest for a fresh repository.
func DefaultManifest(branch string) *Manifest {
	return &Manifest{
		Version:        1,
		Branch:         branch,
		WorkflowsDir:   DefaultWorkflowsDir,
		CredentialsDir: DefaultCredentialsDir,
	}
}

// SaveManifest validates and writes the manifest into dir.
func SaveManifest(dir string, m *Manifest) error {
	if err := m.validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// LoadManifest reads and validates the manifest in dir.
func LoadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest YAML: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Version != 1 {
		return fmt.Errorf("unsupported manifest version: %d (expected 1)", m.Version)
	}
	for name, dir := range map[string]string{
		"workflows_dir":   m.WorkflowsDir,
		"credentials_dir": m.CredentialsDir,
	} {
		if dir == "" {
			continue
		}
		if filepath.IsAbs(dir) || strings.Contains(dir, "..") {
			return fmt.Errorf("manifest: %s must be a relative path inside the repository: %q", name, dir)
		}
	}
	return nil
}
