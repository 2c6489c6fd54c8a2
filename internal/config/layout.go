// Package config defines the on-disk layout of the context engineering
// structure and the optional user settings that tune it.
//
// The layout is a fixed relative-path schema rooted at the working
// directory. It is modeled as an explicit struct built once at startup
// and passed to every component — no hidden process-wide state.
package config

import "path/filepath"

const (
	// AIDir is the agent-readable area at the workspace root.
	AIDir = ".ai"
	// MemoryDir is the agent-writable memory area at the workspace root.
	MemoryDir = ".agent_memory"
	// ObservationsDirName is the subdirectory of MemoryDir holding
	// saved observation files.
	ObservationsDirName = "observations"
	// CacheDirName is reserved for future cached context artifacts.
	CacheDirName = "context_cache"

	// SkillsFileName is the seed skill document.
	SkillsFileName = "coding-standards.md"
	// GoalsFileName is the agent-maintained goals document.
	GoalsFileName = "goals.md"
	// StateFileName is the persisted workspace snapshot.
	StateFileName = "state.md"
	// GitignoreFileName scopes version control inside the memory area.
	GitignoreFileName = ".gitignore"
	// SettingsFileName is the optional settings override file.
	SettingsFileName = "config.yaml"
)

// Layout resolves every path in the context engineering structure
// against a single workspace root.
type Layout struct {
	// Root is the workspace directory all paths are relative to.
	Root string
}

// NewLayout creates a Layout rooted at the given workspace directory.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// SkillsDir returns the absolute path to .ai/skills/.
func (l Layout) SkillsDir() string {
	return filepath.Join(l.Root, AIDir, "skills")
}

// MemoryPath returns the absolute path to .agent_memory/.
func (l Layout) MemoryPath() string {
	return filepath.Join(l.Root, MemoryDir)
}

// ObservationsDir returns the absolute path to .agent_memory/observations/.
func (l Layout) ObservationsDir() string {
	return filepath.Join(l.MemoryPath(), ObservationsDirName)
}

// CacheDir returns the absolute path to .agent_memory/context_cache/.
func (l Layout) CacheDir() string {
	return filepath.Join(l.MemoryPath(), CacheDirName)
}

// SkillsFile returns the absolute path to the coding standards seed.
func (l Layout) SkillsFile() string {
	return filepath.Join(l.SkillsDir(), SkillsFileName)
}

// GoalsFile returns the absolute path to the goals document.
func (l Layout) GoalsFile() string {
	return filepath.Join(l.MemoryPath(), GoalsFileName)
}

// StateFile returns the absolute path to the persisted snapshot.
func (l Layout) StateFile() string {
	return filepath.Join(l.MemoryPath(), StateFileName)
}

// GitignoreFile returns the absolute path to the memory-area .gitignore.
func (l Layout) GitignoreFile() string {
	return filepath.Join(l.MemoryPath(), GitignoreFileName)
}

// SettingsFile returns the absolute path to the optional settings file.
func (l Layout) SettingsFile() string {
	return filepath.Join(l.MemoryPath(), SettingsFileName)
}

// Rel returns path relative to the workspace root, for human-readable
// summaries. Falls back to the absolute path if it cannot be relativized.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil {
		return path
	}
	return rel
}
