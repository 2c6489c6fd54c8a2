package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings tunes the snapshot and observation tools. All fields are
// optional — zero values fall back to the compiled defaults, so a
// partial config.yaml only overrides what it names.
type Settings struct {
	// TreeDepth is the maximum directory tree depth in snapshots.
	TreeDepth int `yaml:"tree_depth"`

	// SkipDirs are additional directory names rendered truncated in
	// the tree, on top of the built-in denylist.
	SkipDirs []string `yaml:"skip_dirs"`

	// PreviewLines is how many leading content lines the save summary
	// echoes back.
	PreviewLines int `yaml:"preview_lines"`
}

// DefaultSettings returns the compiled defaults.
func DefaultSettings() Settings {
	return Settings{
		TreeDepth:    2,
		PreviewLines: 10,
	}
}

// LoadSettings reads the optional settings file for the given layout.
// A missing file yields the defaults; a present but malformed file is
// an error so typos don't silently revert behavior.
func LoadSettings(layout Layout) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(layout.SettingsFile())
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	var overrides Settings
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return s, fmt.Errorf("parsing %s: %w", layout.Rel(layout.SettingsFile()), err)
	}

	if overrides.TreeDepth > 0 {
		s.TreeDepth = overrides.TreeDepth
	}
	if overrides.PreviewLines > 0 {
		s.PreviewLines = overrides.PreviewLines
	}
	s.SkipDirs = overrides.SkipDirs

	return s, nil
}
