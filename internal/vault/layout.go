// Package vault describes the on-disk layout of a workflow backup
// repository: a git work tree with workflows/ and credentials/
// subdirectories, a README, an ignore file, and a small manifest.
package vault

import (
	"os"
	"path/filepath"

	"github.com/chazuruo/n8nvault/internal/errors"
)

// Default directory names inside a backup repository.
const (
	DefaultWorkflowsDir   = "workflows"
	DefaultCredentialsDir = "credentials"
)

const readmeName = "README.md"
const gitignoreName = ".gitignore"

const defaultReadme = `# n8n Workflow Backups

Workflow definitions exported from n8n, versioned with git.

- ` + "`workflows/`" + ` - exported workflow JSON files
- ` + "`credentials/`" + ` - exported credential files (review before committing!)

Managed by n8nvault. Typical cycle:

    n8nvault export --all
    n8nvault push
    n8nvault pull
    n8nvault import --all
`

const defaultGitignore = `# n8n local state
.n8n/
*.sqlite
*.db

# Logs
*.log
logs/

# Dependencies
node_modules/

# OS artifacts
.DS_Store
Thumbs.db

# Editors
.vscode/
.idea/
*.swp

# Temp files
*.tmp
*.bak
`

// Layout is a backup repository rooted at Dir.
type Layout struct {
	Dir            string
	WorkflowsDir   string
	CredentialsDir string
}

// Open returns the layout for dir, honoring a manifest if one is present.
func Open(dir string) Layout {
	l := Layout{
		Dir:            dir,
		WorkflowsDir:   DefaultWorkflowsDir,
		CredentialsDir: DefaultCredentialsDir,
	}
	if m, err := LoadManifest(dir); err == nil {
		if m.WorkflowsDir != "" {
			l.WorkflowsDir = m.WorkflowsDir
		}
		if m.CredentialsDir != "" {
			l.CredentialsDir = m.CredentialsDir
		}
	}
	return l
}

// WorkflowsPath returns the absolute path of the workflows directory.
func (l Layout) WorkflowsPath() string {
	return filepath.Join(l.Dir, l.WorkflowsDir)
}

// CredentialsPath returns the absolute path of the credentials directory.
func (l Layout) CredentialsPath() string {
	return filepath.Join(l.Dir, l.CredentialsDir)
}

// IsBootstrapped reports whether dir exists and contains git metadata.
func (l Layout) IsBootstrapped() bool {
	info, err := os.Stat(filepath.Join(l.Dir, ".git"))
	return err == nil && info.IsDir()
}

// EnsureDirs creates the workflows and credentials directories.
func (l Layout) EnsureDirs() error {
	for _, dir := range []string{l.WorkflowsPath(), l.CredentialsPath()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "ensure layout")
		}
	}
	return nil
}

// WriteReadme writes the default README unless one already exists.
func (l Layout) WriteReadme() error {
	path := filepath.Join(l.Dir, readmeName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(defaultReadme), 0644)
}

// WriteGitignore writes the default ignore file, overwriting any existing
// one so the excluded-state list stays current.
func (l Layout) WriteGitignore() error {
	return os.WriteFile(filepath.Join(l.Dir, gitignoreName), []byte(defaultGitignore), 0644)
}
