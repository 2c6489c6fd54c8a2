// Package prompts implements MCP prompt handlers for the context
// engineering server.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// OrientPrompt handles the context-orient MCP prompt.
// It guides the AI to set up the context structure and take a snapshot
// before starting work.
type OrientPrompt struct{}

// NewOrientPrompt creates an OrientPrompt.
func NewOrientPrompt() *OrientPrompt {
	return &OrientPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *OrientPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("context-orient",
		mcp.WithPromptDescription(
			"Orient yourself in this workspace: initialize the context structure "+
				"if needed, take a workspace snapshot, and review the current goals "+
				"before starting any task.",
		),
		mcp.WithArgument("task",
			mcp.ArgumentDescription("What you are about to work on (optional)"),
		),
	)
}

// Handle processes the context-orient prompt request.
func (p *OrientPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	task := ""
	if args := req.Params.Arguments; args != nil {
		if v, ok := args["task"]; ok {
			task = v
		}
	}

	taskLine := ""
	if task != "" {
		taskLine = fmt.Sprintf("\n\nThe task at hand: %s", task)
	}

	return &mcp.GetPromptResult{
		Description: "Orient in the current workspace",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Before doing anything else, orient yourself in this workspace:\n\n" +
						"1. Run `init_context` to make sure the context structure exists (it never overwrites)\n" +
						"2. Run `get_workspace_state` and read the snapshot carefully — goals, structure, git status\n" +
						"3. If the goals file is still the template, ask me what we're working on and update it\n" +
						"4. While working, offload any long command output with `capture_command` or `save_observation` " +
						"instead of keeping it in context" +
						taskLine,
				),
			},
		},
	}, nil
}
