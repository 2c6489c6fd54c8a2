package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/HendryAvila/ctxd/internal/config"
	"github.com/HendryAvila/ctxd/internal/observations"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	// longOutputChars and longOutputLines decide when command output is
	// offloaded to the observation store instead of returned inline.
	longOutputChars = 1000
	longOutputLines = 20
)

// CaptureTool handles the capture_command MCP tool.
// It runs an external command and keeps long output out of the context
// window by routing it through the observation store.
type CaptureTool struct {
	layout config.Layout
	store  *observations.Store
}

// NewCaptureTool creates a CaptureTool with its dependencies.
func NewCaptureTool(layout config.Layout, store *observations.Store) *CaptureTool {
	return &CaptureTool{layout: layout, store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *CaptureTool) Definition() mcp.Tool {
	return mcp.NewTool("capture_command",
		mcp.WithDescription(
			"Run a command in the workspace and capture its output. Short output is returned inline; "+
				"long output (over 1000 chars or 20 lines) is saved to the observation store and only "+
				"a summary with the filename comes back. No shell — the command is split on whitespace.",
		),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("The command line to run (e.g. 'go test ./...'). Split on whitespace, no shell expansion."),
		),
		mcp.WithBoolean("force",
			mcp.Description("Save the output to the observation store even when it is short."),
		),
	)
}

// Handle processes the capture_command tool call.
func (t *CaptureTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	command := req.GetString("command", "")
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return mcp.NewToolResultError("'command' is required"), nil
	}
	force := boolArg(req, "force", false)

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Dir = t.layout.Root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := timeNow()
	runErr := cmd.Run()
	duration := timeNow().Sub(start)

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			// The command never ran (binary missing, context canceled).
			return mcp.NewToolResultError(fmt.Sprintf("Error running command: %v", runErr)), nil
		}
		exitCode = exitErr.ExitCode()
	}

	combined := stdout.String() + stderr.String()
	status := fmt.Sprintf("✅ Command finished in %.2fs (Exit Code: %d)", duration.Seconds(), exitCode)

	isLong := len(combined) > longOutputChars || strings.Count(combined, "\n") > longOutputLines
	if !isLong && !force {
		return mcp.NewToolResultText(status + "\n\n" + combined), nil
	}

	result, err := t.store.Save(command, combined)
	if err != nil {
		return nil, fmt.Errorf("saving command output: %w", err)
	}
	return mcp.NewToolResultText(status + "\n" + result.Summary()), nil
}

// timeNow is a package-level variable for testability.
var timeNow = time.Now
