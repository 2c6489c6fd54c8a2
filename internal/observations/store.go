// Package observations persists large command output as named text
// files under the memory area, so agents can reference results by
// filename instead of holding them in context.
//
// Files are immutable once written. The filesystem is the single source
// of truth — the store keeps no in-memory state across calls.
package observations

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/HendryAvila/ctxd/internal/config"
)

const (
	// FileExt is the extension of observation files.
	FileExt = ".log"

	// ContentSeparator divides the command header from the body.
	ContentSeparator = "=== CONTENT ==="

	// maxSlugLen caps the command slug inside filenames.
	maxSlugLen = 30

	// filenameTimeLayout is reduced to filesystem-safe characters by
	// replacing colons and periods with hyphens; the result still
	// sorts lexicographically by creation time.
	filenameTimeLayout = "2006-01-02T15:04:05.000000"
)

// ErrNotFound reports that no observation matched the requested name.
var ErrNotFound = errors.New("observation not found")

// Store reads and writes observation files for one workspace.
type Store struct {
	layout       config.Layout
	previewLines int
}

// New creates a Store for the given workspace.
func New(layout config.Layout, settings config.Settings) *Store {
	return &Store{layout: layout, previewLines: settings.PreviewLines}
}

// SaveResult summarizes a saved observation without echoing the full
// content back.
type SaveResult struct {
	// Filename is the generated name within the observations directory.
	Filename string
	// Path is the file path relative to the workspace root.
	Path string
	// Chars is the content length in bytes.
	Chars int
	// Lines is the number of newline characters in the content.
	Lines int
	// Preview holds the leading content lines.
	Preview []string
	// Truncated is true when the content has more lines than Preview.
	Truncated bool
}

// Summary renders the human-readable text returned to the caller.
func (r *SaveResult) Summary() string {
	var sb strings.Builder
	sb.WriteString("✅ Output saved to external memory.\n")
	fmt.Fprintf(&sb, "File: %s\n", r.Path)
	fmt.Fprintf(&sb, "Size: %d chars, %d lines\n\n", r.Chars, r.Lines)
	fmt.Fprintf(&sb, "Preview (first %d lines):\n", len(r.Preview))
	sb.WriteString(strings.Join(r.Preview, "\n"))
	if r.Truncated {
		sb.WriteString("\n...")
	}
	return sb.String()
}

// Save writes content under a deterministic, time-ordered filename and
// returns a summary. Two saves with the same command within the same
// timestamp granularity overwrite — acceptable for single-agent use.
func (s *Store) Save(command, content string) (*SaveResult, error) {
	dir := s.layout.ObservationsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating observations directory: %w", err)
	}

	name := s.filename(command)
	body := fmt.Sprintf("Command: %s\n\n%s\n%s", command, ContentSeparator, content)
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		return nil, fmt.Errorf("writing observation %s: %w", name, err)
	}

	lines := strings.Split(content, "\n")
	preview := lines
	truncated := false
	if len(lines) > s.previewLines {
		preview = lines[:s.previewLines]
		truncated = true
	}

	return &SaveResult{
		Filename:  name,
		Path:      s.layout.Rel(filepath.Join(dir, name)),
		Chars:     len(content),
		Lines:     strings.Count(content, "\n"),
		Preview:   preview,
		Truncated: truncated,
	}, nil
}

// Read returns the full stored text for filename. The input is
// untrusted: it is reduced to its final path component before resolving
// against the observations directory, so it can never escape it. When
// no exact file exists, the first substring match (sorted by name)
// is returned instead.
func (s *Store) Read(filename string) (string, error) {
	name := sanitizeFilename(filename)
	if name == "" {
		return "", fmt.Errorf("%w: invalid filename %q", ErrNotFound, filename)
	}

	dir := s.layout.ObservationsDir()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("reading observation %s: %w", name, err)
	}

	// Partial match fallback. ReadDir returns names sorted, and the
	// timestamp prefix makes that creation order.
	entries, dirErr := os.ReadDir(dir)
	if dirErr == nil {
		for _, e := range entries {
			if e.IsDir() || !strings.Contains(e.Name(), name) {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				return "", fmt.Errorf("reading observation %s: %w", e.Name(), err)
			}
			return string(data), nil
		}
	}

	return "", fmt.Errorf("%w: no observation file matching %q", ErrNotFound, name)
}

// List returns the names of all observation files, sorted by name
// (which is creation order).
func (s *Store) List() []string {
	entries, err := os.ReadDir(s.layout.ObservationsDir())
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), FileExt) {
			names = append(names, e.Name())
		}
	}
	return names
}

// filename derives <timestamp>_<slug>.log: sortable by creation order,
// scannable by originating command, filesystem-legal throughout.
func (s *Store) filename(command string) string {
	ts := strings.NewReplacer(":", "-", ".", "-").
		Replace(timeNow().Format(filenameTimeLayout))
	return ts + "_" + slugify(command) + FileExt
}

// slugify replaces every non-alphanumeric character with an underscore
// and truncates to maxSlugLen characters.
func slugify(command string) string {
	var sb strings.Builder
	for _, r := range command {
		if sb.Len() >= maxSlugLen {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// sanitizeFilename reduces untrusted input to a bare final path
// component. Returns "" when nothing usable remains (empty input,
// bare separators, or traversal references).
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	if name == "" || name == "." || name == ".." || name == "/" {
		return ""
	}
	return name
}
