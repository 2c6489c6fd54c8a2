package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/ctxd/internal/observations"
	"github.com/mark3labs/mcp-go/mcp"
)

// ReadTool handles the read_observation MCP tool.
type ReadTool struct {
	store *observations.Store
}

// NewReadTool creates a ReadTool with the given observation store.
func NewReadTool(store *observations.Store) *ReadTool {
	return &ReadTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ReadTool) Definition() mcp.Tool {
	return mcp.NewTool("read_observation",
		mcp.WithDescription(
			"Read the full content of a previously saved observation file. "+
				"Use this when you need the details of a file referenced in a save summary. "+
				"A partial filename works — the first match wins.",
		),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("Observation filename (or a distinctive part of it) as reported by save_observation."),
		),
		mcp.WithNumber("head",
			mcp.Description("Return only the first N lines."),
		),
		mcp.WithNumber("tail",
			mcp.Description("Return only the last N lines."),
		),
	)
}

// Handle processes the read_observation tool call. Failures are
// returned as structured tool errors, never as panics or protocol
// errors — the caller always receives a result it can act on.
func (t *ReadTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename := req.GetString("filename", "")
	if filename == "" {
		return mcp.NewToolResultError("'filename' is required"), nil
	}

	content, err := t.store.Read(filename)
	if err != nil {
		if errors.Is(err, observations.ErrNotFound) {
			return mcp.NewToolResultError(notFoundMessage(t.store, filename)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Error reading file: %v", err)), nil
	}

	head := intArg(req, "head", 0)
	tail := intArg(req, "tail", 0)
	switch {
	case head > 0:
		lines := strings.Split(content, "\n")
		if len(lines) > head {
			content = strings.Join(lines[:head], "\n")
		}
	case tail > 0:
		lines := strings.Split(content, "\n")
		if len(lines) > tail {
			content = strings.Join(lines[len(lines)-tail:], "\n")
		}
	}

	return mcp.NewToolResultText(content), nil
}

// notFoundMessage builds the error text for a missing observation,
// listing the available files so the caller can correct the name.
func notFoundMessage(store *observations.Store, filename string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: no observation file matching %q found.", filename)

	names := store.List()
	if len(names) == 0 {
		sb.WriteString("\nNo observations have been saved yet.")
		return sb.String()
	}

	sb.WriteString("\nAvailable files:")
	for _, name := range names {
		fmt.Fprintf(&sb, "\n  - %s", name)
	}
	return sb.String()
}
