package config

import (
	"path/filepath"
	"testing"
)

func TestLayout_Paths(t *testing.T) {
	l := NewLayout("/work")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"skills dir", l.SkillsDir(), "/work/.ai/skills"},
		{"memory dir", l.MemoryPath(), "/work/.agent_memory"},
		{"observations dir", l.ObservationsDir(), "/work/.agent_memory/observations"},
		{"cache dir", l.CacheDir(), "/work/.agent_memory/context_cache"},
		{"skills file", l.SkillsFile(), "/work/.ai/skills/coding-standards.md"},
		{"goals file", l.GoalsFile(), "/work/.agent_memory/goals.md"},
		{"state file", l.StateFile(), "/work/.agent_memory/state.md"},
		{"gitignore file", l.GitignoreFile(), "/work/.agent_memory/.gitignore"},
		{"settings file", l.SettingsFile(), "/work/.agent_memory/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != filepath.FromSlash(tt.want) {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestLayout_Rel(t *testing.T) {
	l := NewLayout("/work")

	got := l.Rel(l.GoalsFile())
	want := filepath.FromSlash(".agent_memory/goals.md")
	if got != want {
		t.Errorf("Rel(goals) = %q, want %q", got, want)
	}
}
