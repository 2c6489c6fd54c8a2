// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it builds the layout and settings from
// the working directory and injects them into the tools, prompt, and
// resource handlers. No business logic lives here — only wiring.
package server

import (
	"fmt"
	"log"
	"os"

	"github.com/HendryAvila/ctxd/internal/config"
	"github.com/HendryAvila/ctxd/internal/observations"
	"github.com/HendryAvila/ctxd/internal/prompts"
	"github.com/HendryAvila/ctxd/internal/resources"
	"github.com/HendryAvila/ctxd/internal/tools"
	"github.com/HendryAvila/ctxd/internal/workspace"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, the orient
// prompt, and the workspace state resource registered. The working
// directory of the process is the sole implicit configuration — one
// agent session per workspace.
func New() (*server.MCPServer, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	layout := config.NewLayout(wd)

	// A broken settings file should not take the server down — the
	// compiled defaults keep every tool functional.
	settings, err := config.LoadSettings(layout)
	if err != nil {
		log.Printf("WARNING: using default settings: %v", err)
	}

	store := observations.New(layout, settings)
	composer := workspace.NewComposer(layout, settings)

	s := server.NewMCPServer(
		"context-engineering",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	initTool := tools.NewInitTool(layout)
	s.AddTool(initTool.Definition(), initTool.Handle)

	stateTool := tools.NewStateTool(composer)
	s.AddTool(stateTool.Definition(), stateTool.Handle)

	saveTool := tools.NewSaveTool(store)
	s.AddTool(saveTool.Definition(), saveTool.Handle)

	readTool := tools.NewReadTool(store)
	s.AddTool(readTool.Definition(), readTool.Handle)

	captureTool := tools.NewCaptureTool(layout, store)
	s.AddTool(captureTool.Definition(), captureTool.Handle)

	orientPrompt := prompts.NewOrientPrompt()
	s.AddPrompt(orientPrompt.Definition(), orientPrompt.Handle)

	resourceHandler := resources.NewHandler(layout)
	s.AddResource(resourceHandler.StateResource(), resourceHandler.HandleState)

	return s, nil
}

// serverInstructions returns the system instructions that tell the AI
// how to use the context engineering tools effectively.
func serverInstructions() string {
	return `You have access to a Context Engineering server: durable, file-backed
external memory for this workspace.

## The layout

- .ai/skills/ — curated documents YOU READ (coding standards, conventions)
- .agent_memory/goals.md — the current goals, maintained by you and the user
- .agent_memory/state.md — the last workspace snapshot (overwritten each time)
- .agent_memory/observations/ — saved command output, referenced by filename

## When to use which tool

1. **init_context** — once per project, or whenever the structure is missing.
   It never overwrites existing files, so calling it again is always safe.

2. **get_workspace_state** — at the start of every session and whenever you
   lose context. It returns goals + directory tree + git status in one report
   and persists it to state.md.

3. **save_observation** — whenever output is too long to keep in your context
   window (build logs, test runs, analysis dumps). You get back a filename;
   reference the filename, not the content.

4. **read_observation** — when a summary references a file and you need the
   details. A partial filename is enough. Use head/tail to read only part of
   a large file.

5. **capture_command** — run a command and let the server decide: short
   output comes back inline, long output goes straight to an observation
   file. Prefer this over running commands yourself and pasting output.

## Rules

- Keep goals.md current — it is the first thing a future session reads.
- Never paste more than ~20 lines of command output into conversation;
  offload it and cite the observation filename.
- Observations are immutable. Save a new one instead of rewriting history.`
}
