package workspace

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/HendryAvila/ctxd/internal/config"
)

// GoalsPlaceholder substitutes for a missing or unreadable goals file.
const GoalsPlaceholder = "No goals defined."

// snapshotTimeLayout is ISO 8601 local time with fixed-width
// microseconds, so persisted state files stay byte-comparable across
// implementations.
const snapshotTimeLayout = "2006-01-02T15:04:05.000000"

// Composer builds the workspace snapshot: goals, git status, and the
// directory tree merged into a single report, persisted to state.md.
type Composer struct {
	layout   config.Layout
	settings config.Settings
	tree     *TreeBuilder
	vcs      StatusCollector
}

// NewComposer creates a Composer for the given workspace.
func NewComposer(layout config.Layout, settings config.Settings) *Composer {
	return &Composer{
		layout:   layout,
		settings: settings,
		tree:     NewTreeBuilder(settings),
		vcs:      StatusCollector{Dir: layout.Root},
	}
}

// Compose renders a fresh snapshot, overwrites the state document with
// it, and returns the same text. Each snapshot replaces the previous
// one — no history is kept.
func (c *Composer) Compose(ctx context.Context) (string, error) {
	goals := GoalsPlaceholder
	if data, err := os.ReadFile(c.layout.GoalsFile()); err == nil {
		goals = string(data)
	}

	structure := strings.Join(c.tree.Build(c.layout.Root), "\n")
	changes := c.vcs.Collect(ctx)

	report := fmt.Sprintf(config.StateTemplate,
		timeNow().Format(snapshotTimeLayout),
		strings.TrimSpace(goals),
		strings.TrimSpace(changes),
		c.settings.TreeDepth,
		strings.TrimSpace(structure),
	)

	// The memory area may not exist yet — snapshot must not depend on
	// init_context having run first.
	if err := os.MkdirAll(c.layout.MemoryPath(), 0o755); err != nil {
		return "", fmt.Errorf("creating memory directory: %w", err)
	}
	if err := os.WriteFile(c.layout.StateFile(), []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("writing state file: %w", err)
	}

	return report, nil
}
