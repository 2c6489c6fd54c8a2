package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/ctxd/internal/observations"
	"github.com/mark3labs/mcp-go/mcp"
)

// SaveTool handles the save_observation MCP tool.
type SaveTool struct {
	store *observations.Store
}

// NewSaveTool creates a SaveTool with the given observation store.
func NewSaveTool(store *observations.Store) *SaveTool {
	return &SaveTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *SaveTool) Definition() mcp.Tool {
	return mcp.NewTool("save_observation",
		mcp.WithDescription(
			"Save large text content (logs, analysis, command output) to file-system memory and get back "+
				"a short summary with the filename. Use this when output is too long to keep in the context "+
				"window — retrieve the full content later with read_observation.",
		),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("Short label for the originating command (e.g. 'npm test', 'analyze auth module'). Used in the filename."),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The full content to save. Stored verbatim, no truncation."),
		),
	)
}

// Handle processes the save_observation tool call.
func (t *SaveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	command := req.GetString("command", "")
	content := req.GetString("content", "")

	if command == "" {
		return mcp.NewToolResultError("'command' is required"), nil
	}
	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	result, err := t.store.Save(command, content)
	if err != nil {
		return nil, fmt.Errorf("saving observation: %w", err)
	}

	return mcp.NewToolResultText(result.Summary()), nil
}
