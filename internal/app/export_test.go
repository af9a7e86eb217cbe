package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/prompt"
	"github.com/chazuruo/n8nvault/internal/testutil"
)

func TestExportSelectionModes(t *testing.T) {
	tests := []struct {
		name string
		opts ExportOptions
	}{
		{"neither all nor workflow-id", ExportOptions{}},
		{"both all and workflow-id", ExportOptions{All: true, WorkflowID: "wf1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, runner, _ := newTestApp(t, testutil.SeedRepo(t), prompt.Auto(true))
			_, err := a.Export(context.Background(), tt.opts)
			assert.True(t, errors.IsInvalid(err))
			assert.Empty(t, runner.Calls(), "invalid selection must not invoke anything")
		})
	}
}

func TestExportRequiresBootstrappedRepo(t *testing.T) {
	a, _, _ := newTestApp(t, t.TempDir(), prompt.Auto(true))

	_, err := a.Export(context.Background(), ExportOptions{All: true})
	assert.True(t, errors.IsNotFound(err))
}

func TestExportAll(t *testing.T) {
	dir := testutil.SeedRepo(t)
	testutil.SeedWorkflowFile(t, dir, testutil.WorkflowID())
	testutil.SeedWorkflowFile(t, dir, testutil.WorkflowID())

	a, runner, _ := newTestApp(t, dir, prompt.Auto(true))

	out, err := a.Export(context.Background(), ExportOptions{All: true})
	require.NoError(t, err)

	assert.Equal(t, 2, out.WorkflowFiles)
	assert.Contains(t, runner.CallStrings(),
		"n8n export:workflow --all --separate --pretty --output="+filepath.Join(dir, "workflows")+"/")
}

func TestExportAllCountsUnprefixedFiles(t *testing.T) {
	dir := testutil.SeedRepo(t)
	testutil.SeedWorkflowFile(t, dir, testutil.WorkflowID())
	// Bulk exporters may name files after the workflow, without the
	// workflow_ prefix. They still count as exported files.
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "workflows", "My Workflow.json"), []byte("{}\n"), 0644))

	a, _, _ := newTestApp(t, dir, prompt.Auto(true))

	out, err := a.Export(context.Background(), ExportOptions{All: true})
	require.NoError(t, err)
	assert.Equal(t, 2, out.WorkflowFiles)
}

func TestExportSingleWorkflow(t *testing.T) {
	dir := testutil.SeedRepo(t)
	a, runner, _ := newTestApp(t, dir, prompt.Auto(true))

	out, err := a.Export(context.Background(), ExportOptions{WorkflowID: "wf-42"})
	require.NoError(t, err)

	want := filepath.Join(dir, "workflows", "workflow_wf-42.json")
	assert.Equal(t, 1, out.WorkflowFiles)
	assert.Equal(t, want, out.Path)
	assert.Contains(t, runner.CallStrings(),
		"n8n export:workflow --id=wf-42 --pretty --output="+want)
}

func TestExportSingleWorkflowSanitizesID(t *testing.T) {
	dir := testutil.SeedRepo(t)
	a, _, _ := newTestApp(t, dir, prompt.Auto(true))

	out, err := a.Export(context.Background(), ExportOptions{WorkflowID: "team/wf 42"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "workflows", "workflow_team-wf-42.json"), out.Path)
}

func TestExportCredentialsDeclined(t *testing.T) {
	dir := testutil.SeedRepo(t)
	a, runner, _ := newTestApp(t, dir, prompt.Auto(false))

	out, err := a.Export(context.Background(), ExportOptions{All: true, IncludeCredentials: true})
	require.NoError(t, err, "declining credentials must not fail the workflow export")

	assert.Equal(t, 0, out.CredentialFiles)
	assert.Zero(t, runner.CountCalls("n8n export:credentials"))
}

func TestExportCredentialsConfirmed(t *testing.T) {
	dir := testutil.SeedRepo(t)
	credFile := filepath.Join(dir, "credentials", "cred_1.json")
	require.NoError(t, os.WriteFile(credFile, []byte("{}\n"), 0644))

	a, runner, out := newTestApp(t, dir, prompt.Auto(true))

	res, err := a.Export(context.Background(), ExportOptions{All: true, IncludeCredentials: true})
	require.NoError(t, err)

	assert.Equal(t, 1, res.CredentialFiles)
	assert.Contains(t, runner.CallStrings(),
		"n8n export:credentials --all --separate --pretty --output="+filepath.Join(dir, "credentials")+"/")
	assert.Contains(t, out.String(), "Review credential files")
}

func TestExportFailureSurfacesError(t *testing.T) {
	dir := testutil.SeedRepo(t)
	a, runner, _ := newTestApp(t, dir, prompt.Auto(true))
	runner.Fail("n8n export:workflow", "connection refused")

	_, err := a.Export(context.Background(), ExportOptions{All: true})
	assert.True(t, errors.IsExternal(err))
}
