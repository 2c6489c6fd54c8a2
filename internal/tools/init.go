package tools

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/HendryAvila/ctxd/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
)

// InitTool handles the init_context MCP tool.
// It creates the context engineering directory structure and seed files.
type InitTool struct {
	layout config.Layout
}

// NewInitTool creates an InitTool for the given workspace layout.
func NewInitTool(layout config.Layout) *InitTool {
	return &InitTool{layout: layout}
}

// Definition returns the MCP tool definition for registration.
func (t *InitTool) Definition() mcp.Tool {
	return mcp.NewTool("init_context",
		mcp.WithDescription(
			"Initialize the Context Engineering directory structure (.ai/skills, .agent_memory). "+
				"Use this when starting a new project or if the context structure is missing. "+
				"Safe to call repeatedly — existing files are never overwritten.",
		),
	)
}

// Handle processes the init_context tool call. Idempotent: directories
// are created if absent, seed files only when they don't exist yet.
func (t *InitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var results []string

	for _, dir := range []string{
		t.layout.SkillsDir(),
		t.layout.ObservationsDir(),
		t.layout.CacheDir(),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		results = append(results, fmt.Sprintf("✅ Created directory: %s", t.layout.Rel(dir)))
	}

	seeds := []struct {
		path    string
		content string
		label   string
	}{
		{t.layout.SkillsFile(), config.CodingStandardsTemplate, "skill"},
		{t.layout.GoalsFile(), config.GoalsTemplate, "memory"},
		{t.layout.GitignoreFile(), config.GitignoreContent, ".gitignore for memory"},
	}
	for _, seed := range seeds {
		created, err := writeIfAbsent(seed.path, seed.content)
		if err != nil {
			return nil, fmt.Errorf("seeding %s: %w", t.layout.Rel(seed.path), err)
		}
		if created {
			results = append(results, fmt.Sprintf("✅ Created %s: %s", seed.label, t.layout.Rel(seed.path)))
		}
	}

	return mcp.NewToolResultText(strings.Join(results, "\n")), nil
}

// writeIfAbsent writes content to path only when no file exists there.
// Returns whether a file was created.
func writeIfAbsent(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
