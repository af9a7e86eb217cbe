package n8n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/testutil"
)

func TestInvocations(t *testing.T) {
	tests := []struct {
		name string
		call func(*Client, context.Context) error
		want string
	}{
		{
			"export all workflows",
			func(c *Client, ctx context.Context) error { return c.ExportAllWorkflows(ctx, "/repo/workflows") },
			"n8n export:workflow --all --separate --pretty --output=/repo/workflows/",
		},
		{
			"export one workflow",
			func(c *Client, ctx context.Context) error {
				return c.ExportWorkflow(ctx, "42", "/repo/workflows/workflow_42.json")
			},
			"n8n export:workflow --id=42 --pretty --output=/repo/workflows/workflow_42.json",
		},
		{
			"export credentials",
			func(c *Client, ctx context.Context) error { return c.ExportAllCredentials(ctx, "/repo/credentials") },
			"n8n export:credentials --all --separate --pretty --output=/repo/credentials/",
		},
		{
			"import workflow",
			func(c *Client, ctx context.Context) error {
				return c.ImportWorkflow(ctx, "/repo/workflows/workflow_42.json")
			},
			"n8n import:workflow --input=/repo/workflows/workflow_42.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutil.NewFakeRunner()
			client := New("n8n", runner)

			require.NoError(t, tt.call(client, context.Background()))

			calls := runner.CallStrings()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.want, calls[0])
		})
	}
}

func TestRun_WrapsFailure(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Fail("n8n import:workflow", "There was an error")

	client := New("n8n", runner)
	err := client.ImportWorkflow(context.Background(), "x.json")
	require.Error(t, err)

	ce, ok := errors.AsCommandError(err)
	require.True(t, ok)
	assert.Equal(t, "n8n", ce.Tool)
	assert.True(t, errors.IsExternal(err))
}

func TestCheckInstalled(t *testing.T) {
	runner := testutil.NewFakeRunner()
	client := New("n8n", runner)
	require.NoError(t, client.CheckInstalled())

	runner.MarkMissing("n8n")
	err := client.CheckInstalled()
	require.Error(t, err)
	assert.True(t, errors.IsPrereq(err))
}
