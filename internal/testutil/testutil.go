// Package testutil provides helper functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// WorkflowID returns a unique opaque workflow identifier.
func WorkflowID() string {
	return uuid.NewString()
}

// SeedRepo creates a bootstrapped backup repository layout under a temp
// directory: .git metadata plus workflows/ and credentials/.
func SeedRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, sub := range []string{".git", "workflows", "credentials"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			t.Fatalf("failed to seed repo layout: %v", err)
		}
	}
	return dir
}

// SeedWorkflowFile writes an empty workflow export file for the given ID
// and returns its path.
func SeedWorkflowFile(t *testing.T, dir, id string) string {
	t.Helper()

	path := filepath.Join(dir, "workflows", "workflow_"+id+".json")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("failed to write workflow file: %v", err)
	}
	return path
}
