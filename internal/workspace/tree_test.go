package workspace

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/HendryAvila/ctxd/internal/config"
)

// --- Test helpers ---

// mkdirs creates nested directories under root.
func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
}

// touch creates empty files under root.
func touch(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(root, f), nil, 0o644); err != nil {
			t.Fatalf("touch %s: %v", f, err)
		}
	}
}

func defaultBuilder() *TreeBuilder {
	return NewTreeBuilder(config.DefaultSettings())
}

// --- Rendering ---

func TestTreeBuilder_Rendering(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "src/util", "node_modules/react")
	touch(t, root, "main.go", "README.md", "src/app.go", "src/util/strings.go", "node_modules/react/index.js")

	got := defaultBuilder().Build(root)
	want := []string{
		"├── node_modules/ ...",
		"├── src/",
		"│   ├── util/",
		"│   └── app.go",
		"├── main.go",
		"└── README.md",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() =\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestTreeBuilder_LastDirectoryUsesSpaceIndent(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "alpha", "zeta")
	touch(t, root, "alpha/a.txt", "zeta/z.txt")

	got := defaultBuilder().Build(root)
	want := []string{
		"├── alpha/",
		"│   └── a.txt",
		"└── zeta/",
		"    └── z.txt",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() =\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

// --- Filtering ---

func TestTreeBuilder_ExcludesDotEntries(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, ".git/objects", ".hidden")
	touch(t, root, ".env", "visible.txt", ".hidden/inner.txt")

	lines := defaultBuilder().Build(root)

	for _, line := range lines {
		if strings.Contains(line, ".env") || strings.Contains(line, ".git") ||
			strings.Contains(line, ".hidden") || strings.Contains(line, "inner.txt") {
			t.Errorf("dot entry leaked into tree: %q", line)
		}
	}
	if len(lines) != 1 || lines[0] != "└── visible.txt" {
		t.Errorf("lines = %v, want only visible.txt", lines)
	}
}

func TestTreeBuilder_DenylistedDirIsSingleTruncatedLine(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "node_modules/lodash/internal")
	touch(t, root, "node_modules/lodash/index.js")

	lines := defaultBuilder().Build(root)

	if len(lines) != 1 {
		t.Fatalf("lines = %v, want exactly one line", lines)
	}
	if lines[0] != "└── node_modules/ ..." {
		t.Errorf("line = %q, want truncation marker", lines[0])
	}
}

func TestTreeBuilder_SettingsExtendDenylist(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "vendor/golang.org")

	settings := config.DefaultSettings()
	settings.SkipDirs = []string{"vendor"}

	lines := NewTreeBuilder(settings).Build(root)
	if len(lines) != 1 || lines[0] != "└── vendor/ ..." {
		t.Errorf("lines = %v, want truncated vendor", lines)
	}
}

// --- Ordering ---

func TestTreeBuilder_DirsFirstThenCaseInsensitiveNames(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Zebra", "apple")
	touch(t, root, "Banana.txt", "cherry.txt")

	got := defaultBuilder().Build(root)
	want := []string{
		"├── apple/",
		"├── Zebra/",
		"├── Banana.txt",
		"└── cherry.txt",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build() = %v, want %v", got, want)
	}
}

// --- Depth policy ---

func TestTreeBuilder_DepthCutoffOmitsDeeperContent(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a/b/c")
	touch(t, root, "a/b/c/deep.txt", "a/b/mid.txt")

	lines := defaultBuilder().Build(root)

	joined := strings.Join(lines, "\n")
	if strings.Contains(joined, "mid.txt") || strings.Contains(joined, "deep.txt") || strings.Contains(joined, "c/") {
		t.Errorf("content beyond depth 2 leaked:\n%s", joined)
	}
	// Depth boundary gets no truncation marker.
	if strings.Contains(joined, "b/ ...") {
		t.Errorf("unexpected truncation marker at depth boundary:\n%s", joined)
	}

	want := []string{"└── a/", "    └── b/"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %v, want %v", lines, want)
	}
}

func TestTreeBuilder_ConfiguredDepth(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a/b/c")
	touch(t, root, "a/b/c/deep.txt")

	settings := config.DefaultSettings()
	settings.TreeDepth = 4

	lines := NewTreeBuilder(settings).Build(root)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "deep.txt") {
		t.Errorf("depth 4 should reach deep.txt:\n%s", joined)
	}
}

// --- Failure policy ---

func TestTreeBuilder_MissingRootYieldsNoLines(t *testing.T) {
	lines := defaultBuilder().Build(filepath.Join(t.TempDir(), "does-not-exist"))
	if len(lines) != 0 {
		t.Errorf("lines = %v, want none for unreadable root", lines)
	}
}

func TestTreeBuilder_UnreadableSubdirSkippedSilently(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits don't restrict root")
	}

	root := t.TempDir()
	mkdirs(t, root, "locked", "open")
	touch(t, root, "locked/secret.txt", "open/ok.txt")
	if err := os.Chmod(filepath.Join(root, "locked"), 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(filepath.Join(root, "locked"), 0o755) })

	lines := defaultBuilder().Build(root)
	joined := strings.Join(lines, "\n")

	// The unreadable directory still shows as an entry; its subtree
	// contributes nothing.
	if !strings.Contains(joined, "locked/") {
		t.Errorf("locked/ entry missing:\n%s", joined)
	}
	if strings.Contains(joined, "secret.txt") {
		t.Errorf("unreadable subtree leaked:\n%s", joined)
	}
	if !strings.Contains(joined, "ok.txt") {
		t.Errorf("readable sibling missing:\n%s", joined)
	}
}
