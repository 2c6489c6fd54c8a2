package workspace

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// writeFile writes content to name under dir.
func writeFile(dir, name, content string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
}

func TestStatusCollector_NotARepository(t *testing.T) {
	// A fresh temp dir is never a git repository. If git itself is
	// missing, the collector reports the same fixed message.
	c := StatusCollector{Dir: t.TempDir()}

	got := c.Collect(context.Background())
	if got != NotARepository {
		t.Errorf("Collect() = %q, want %q", got, NotARepository)
	}
}

func TestStatusCollector_CleanRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	git := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}

	git("init")
	git("config", "user.email", "test@example.com")
	git("config", "user.name", "test")
	git("commit", "--allow-empty", "-m", "initial commit")

	got := StatusCollector{Dir: dir}.Collect(context.Background())

	if !strings.Contains(got, WorkingTreeClean) {
		t.Errorf("Collect() = %q, want clean-tree message", got)
	}
	if !strings.Contains(got, "Last commit: ") || !strings.Contains(got, "initial commit") {
		t.Errorf("Collect() = %q, want last-commit line", got)
	}
}

func TestStatusCollector_DirtyRepositoryUsesFencedBlock(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	git := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}

	git("init")
	git("config", "user.email", "test@example.com")
	git("config", "user.name", "test")
	git("commit", "--allow-empty", "-m", "initial commit")

	c := StatusCollector{Dir: dir}
	if out, err := c.git(context.Background(), "status", "--short"); err != nil || strings.TrimSpace(out) != "" {
		t.Fatalf("precondition: expected clean tree, got %q err %v", out, err)
	}

	// An untracked file shows up in short status.
	git("config", "core.autocrlf", "false")
	if err := writeFile(dir, "untracked.txt", "x"); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	got := c.Collect(context.Background())
	if !strings.HasPrefix(got, "```\n") {
		t.Errorf("Collect() = %q, want fenced status block", got)
	}
	if !strings.Contains(got, "?? untracked.txt") {
		t.Errorf("Collect() = %q, want untracked file entry", got)
	}
}
