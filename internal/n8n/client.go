// Package n8n wraps the n8n command-line interface for exporting and
// importing workflow and credential definitions. The CLI's data formats
// are treated as opaque; this package only builds invocations.
package n8n

import (
	"context"

	"github.com/chazuruo/n8nvault/internal/errors"
	"github.com/chazuruo/n8nvault/internal/execx"
)

// Client invokes the n8n CLI through a runner.
type Client struct {
	binary string
	runner execx.Runner
}

// New creates a Client for the given n8n executable.
func New(binary string, runner execx.Runner) *Client {
	return &Client{binary: binary, runner: runner}
}

// CheckInstalled verifies the n8n binary is reachable on PATH.
func (c *Client) CheckInstalled() error {
	if _, err := c.runner.LookPath(c.binary); err != nil {
		return errors.Wrap(errors.ErrPrereq,
			"n8n ("+c.binary+") not found; install it with 'npm install -g n8n' or adjust n8n.binary in the config")
	}
	return nil
}

func (c *Client) run(ctx context.Context, args ...string) error {
	res, err := c.runner.Run(ctx, "", c.binary, args...)
	if err != nil {
		return &errors.CommandError{
			Tool:     c.binary,
			Args:     args,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
			Err:      err,
		}
	}
	return nil
}

// ExportAllWorkflows exports every workflow as a separate pretty-printed
// JSON file into outDir.
func (c *Client) ExportAllWorkflows(ctx context.Context, outDir string) error {
	return c.run(ctx, "export:workflow", "--all", "--separate", "--pretty", "--output="+outDir+"/")
}

// ExportWorkflow exports a single workflow by ID to outFile.
func (c *Client) ExportWorkflow(ctx context.Context, id, outFile string) error {
	return c.run(ctx, "export:workflow", "--id="+id, "--pretty", "--output="+outFile)
}

// ExportAllCredentials exports every credential as a separate file into
// outDir. Credential exports contain secrets; callers confirm first.
func (c *Client) ExportAllCredentials(ctx context.Context, outDir string) error {
	return c.run(ctx, "export:credentials", "--all", "--separate", "--pretty", "--output="+outDir+"/")
}

// ImportWorkflow imports a single workflow file.
func (c *Client) ImportWorkflow(ctx context.Context, file string) error {
	return c.run(ctx, "import:workflow", "--input="+file)
}
