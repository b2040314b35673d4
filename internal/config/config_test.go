package config

import (
	"path/filepath"
	"testing"
)

func TestConfigDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, want := ConfigDir(), filepath.Join("/xdg", "termide"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestConfigDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/test")
	if got, want := ConfigDir(), filepath.Join("/home/test", ".config", "termide"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestConfigFileUnderConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, want := ConfigFile(), filepath.Join("/xdg", "termide", "config.toml"); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}
