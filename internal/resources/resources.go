// Package resources implements MCP resource handlers for the context
// engineering server.
//
// Resources provide read-only data that the host can consume for
// context. They use URI-based addressing (context://...) following MCP
// conventions.
package resources

import (
	"context"
	"fmt"
	"os"

	"github.com/HendryAvila/ctxd/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler manages context resource endpoints.
type Handler struct {
	layout config.Layout
}

// NewHandler creates a resource Handler for the given workspace layout.
func NewHandler(layout config.Layout) *Handler {
	return &Handler{layout: layout}
}

// StateResource returns the MCP resource definition for the persisted
// workspace snapshot.
func (h *Handler) StateResource() mcp.Resource {
	return mcp.NewResource(
		"context://workspace/state",
		"Workspace State",
		mcp.WithResourceDescription("The last persisted workspace snapshot (goals, structure, git status)"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleState returns the content of state.md as written by the last
// get_workspace_state call.
func (h *Handler) HandleState(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := os.ReadFile(h.layout.StateFile())
	if err != nil {
		if os.IsNotExist(err) {
			return errorResource(req.Params.URI,
				"no snapshot persisted yet — call get_workspace_state first"), nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
