package workspace

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// NotARepository is returned whenever git cannot answer: the directory
// is not a repository, the binary is missing, or a command fails.
const NotARepository = "Not a git repository."

// WorkingTreeClean is the status body when git reports no changes.
const WorkingTreeClean = "Working tree clean."

// StatusCollector queries git for a concise view of recent changes.
type StatusCollector struct {
	// Dir is the directory the git commands run in.
	Dir string
}

// Collect returns the short status as a fenced block (or a clean-tree
// message) followed by a one-line last-commit summary. Any failure
// collapses to NotARepository — the error itself is swallowed.
func (c StatusCollector) Collect(ctx context.Context) string {
	status, err := c.git(ctx, "status", "--short")
	if err != nil {
		return NotARepository
	}

	lastCommit, err := c.git(ctx, "log", "-1", "--oneline")
	if err != nil {
		return NotARepository
	}

	var sb strings.Builder
	if status = strings.TrimSpace(status); status != "" {
		fmt.Fprintf(&sb, "```\n%s\n```", status)
	} else {
		sb.WriteString(WorkingTreeClean)
	}
	fmt.Fprintf(&sb, "\n\nLast commit: %s", strings.TrimSpace(lastCommit))

	return sb.String()
}

// git runs a single git subcommand and returns its stdout.
func (c StatusCollector) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}
