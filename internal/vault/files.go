package vault

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	workflowPrefix = "workflow_"
	workflowSuffix = ".json"
)

// unsafeChars matches filename characters that are replaced with hyphens.
var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeID normalizes an opaque workflow ID into a safe filename
// component: unicode is decomposed and stripped of combining marks, path
// separators and other unsafe characters become hyphens, and runs of
// hyphens collapse.
func SanitizeID(id string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, id); err == nil {
		id = out
	}
	id = unsafeChars.ReplaceAllString(id, "-")
	id = strings.Trim(id, "-.")
	return id
}

// WorkflowFileName returns the on-disk name for a workflow ID. The name is
// a pure function of the ID so re-exporting always overwrites the same
// path.
func WorkflowFileName(id string) string {
	return workflowPrefix + SanitizeID(id) + workflowSuffix
}

// WorkflowFilePath returns the path under the workflows directory for id.
func (l Layout) WorkflowFilePath(id string) string {
	return filepath.Join(l.WorkflowsPath(), WorkflowFileName(id))
}

// IsWorkflowFile reports whether name matches the workflow file pattern.
func IsWorkflowFile(name string) bool {
	return strings.HasPrefix(name, workflowPrefix) &&
		strings.HasSuffix(name, workflowSuffix) &&
		len(name) > len(workflowPrefix)+len(workflowSuffix)
}

// ListWorkflowFiles returns the workflow files under the workflows
// directory, sorted by name. A missing directory yields an empty list.
func (l Layout) ListWorkflowFiles() ([]string, error) {
	entries, err := os.ReadDir(l.WorkflowsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsWorkflowFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(l.WorkflowsPath(), e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// CountJSONFiles counts .json files directly under dir. Used to report
// how many files a bulk export produced.
func CountJSONFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			n++
		}
	}
	return n
}
