// Package config locates the user's config directory and config file
// (spec.md §4.6, "Config path discovery"). It does not parse the config
// file itself — that's internal/keybinding/userconfig's job — it only
// answers "where."
package config

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the platform config directory for termide:
// $XDG_CONFIG_HOME/termide (or its equivalents), falling back to
// ~/.config/termide.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "termide")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".termide"
	}
	return filepath.Join(home, ".config", "termide")
}

// ConfigFile returns the path to the user's keybindings config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}
