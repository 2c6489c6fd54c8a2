package tools

import (
	"context"
	"fmt"

	"github.com/HendryAvila/ctxd/internal/workspace"
	"github.com/mark3labs/mcp-go/mcp"
)

// StateTool handles the get_workspace_state MCP tool.
type StateTool struct {
	composer *workspace.Composer
}

// NewStateTool creates a StateTool with the given snapshot composer.
func NewStateTool(composer *workspace.Composer) *StateTool {
	return &StateTool{composer: composer}
}

// Definition returns the MCP tool definition for registration.
func (t *StateTool) Definition() mcp.Tool {
	return mcp.NewTool("get_workspace_state",
		mcp.WithDescription(
			"Get a snapshot of the current workspace state, including goals, file structure, and git status. "+
				"Call this tool to orient yourself before starting a task or when context is lost. "+
				"The snapshot is also persisted to .agent_memory/state.md, replacing the previous one.",
		),
	)
}

// Handle processes the get_workspace_state tool call.
func (t *StateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := t.composer.Compose(ctx)
	if err != nil {
		return nil, fmt.Errorf("composing workspace snapshot: %w", err)
	}
	return mcp.NewToolResultText(report), nil
}
