// Package workspace renders point-in-time views of the working
// directory: a filtered directory tree, version-control status, and the
// composed snapshot report persisted to the memory area.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/HendryAvila/ctxd/internal/config"
)

// skipDirs are dependency, build-output, and VCS-internal directories
// rendered as a single truncated line without descending into them.
var skipDirs = map[string]bool{
	"node_modules": true,
	"venv":         true,
	"__pycache__":  true,
	"dist":         true,
	"build":        true,
	".git":         true,
}

// TreeBuilder renders a bounded-depth ASCII tree of a directory.
// It is read-only and never surfaces I/O errors: unreadable
// directories simply contribute no lines.
type TreeBuilder struct {
	maxDepth int
	skip     map[string]bool
}

// NewTreeBuilder creates a TreeBuilder from the given settings. The
// settings' skip list extends the built-in denylist.
func NewTreeBuilder(settings config.Settings) *TreeBuilder {
	skip := make(map[string]bool, len(skipDirs)+len(settings.SkipDirs))
	for name := range skipDirs {
		skip[name] = true
	}
	for _, name := range settings.SkipDirs {
		skip[name] = true
	}
	return &TreeBuilder{maxDepth: settings.TreeDepth, skip: skip}
}

// Build returns the tree of root as ordered lines, one per entry.
// Dot-entries are excluded entirely. Within a directory, subdirectories
// come first, then files, each group in case-insensitive name order.
func (b *TreeBuilder) Build(root string) []string {
	var lines []string
	b.walk(root, "", 0, &lines)
	return lines
}

func (b *TreeBuilder) walk(dir, prefix string, depth int, lines *[]string) {
	if depth >= b.maxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Permission errors and race-deleted paths are skipped silently.
		return
	}

	visible := entries[:0]
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), ".") {
			visible = append(visible, e)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].IsDir() != visible[j].IsDir() {
			return visible[i].IsDir()
		}
		return strings.ToLower(visible[i].Name()) < strings.ToLower(visible[j].Name())
	})

	for i, e := range visible {
		last := i == len(visible)-1
		connector := "├── "
		if last {
			connector = "└── "
		}

		if !e.IsDir() {
			*lines = append(*lines, prefix+connector+e.Name())
			continue
		}

		if b.skip[e.Name()] {
			*lines = append(*lines, prefix+connector+e.Name()+"/ ...")
			continue
		}

		*lines = append(*lines, prefix+connector+e.Name()+"/")
		extension := "│   "
		if last {
			extension = "    "
		}
		b.walk(filepath.Join(dir, e.Name()), prefix+extension, depth+1, lines)
	}
}
