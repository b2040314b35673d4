// Package userconfig implements the User-provenance layer of the binding
// catalog (spec.md §4.6, C6): parsing the TOML config file, validating each
// entry non-fatally, and atomically replacing the prior generation's
// User-priority bindings on reload.
package userconfig

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	kberrors "github.com/Iron-Ham/claudio/internal/errors"
	"github.com/Iron-Ham/claudio/internal/keybinding"
	"github.com/spf13/viper"
)

// fileKeybindingEntry mirrors one [[keybindings]] table in the TOML
// schema (spec.md §6).
type fileKeybindingEntry struct {
	Sequence string `mapstructure:"sequence"`
	Command  string `mapstructure:"command"`
	Mode     string `mapstructure:"mode"`
}

type fileSchema struct {
	Keybindings []fileKeybindingEntry `mapstructure:"keybindings"`
}

// Result reports what a Reload did: how many new entries registered, and
// how many stale User bindings the purge removed beforehand.
type Result struct {
	Registered int
	Removed    int
}

// Loader loads and reloads the User-priority slice of a BindingCatalog.
type Loader struct {
	catalog *keybinding.BindingCatalog
	warn    io.Writer
}

// Option configures a Loader.
type Option func(*Loader)

// WithWarningWriter overrides where per-entry warnings are written.
// Defaults to os.Stderr.
func WithWarningWriter(w io.Writer) Option {
	return func(l *Loader) { l.warn = w }
}

// NewLoader constructs a Loader writing the User slice into catalog.
func NewLoader(catalog *keybinding.BindingCatalog, opts ...Option) *Loader {
	l := &Loader{catalog: catalog, warn: os.Stderr}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Reload implements spec.md §4.6's reload contract: it unconditionally
// purges every User-priority binding first — even if the new file goes on
// to fail to parse — then loads the new file's entries with per-entry
// tolerance. An absent file is silent-OK; an unreadable-but-present file or
// malformed TOML is a fatal error for this call, but the catalog is left
// with the purge already applied (defaults + plugins only).
func (l *Loader) Reload(path string) (Result, error) {
	removed := l.catalog.UnregisterByPriority(keybinding.PriorityUser)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Removed: removed}, nil
		}
		return Result{Removed: removed}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Result{Removed: removed}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	var schema fileSchema
	if err := v.Unmarshal(&schema); err != nil {
		return Result{Removed: removed}, fmt.Errorf("decoding config file %s: %w", path, err)
	}

	registered := 0
	for i, entry := range schema.Keybindings {
		index := i + 1
		if err := l.registerEntry(entry); err != nil {
			fmt.Fprintf(l.warn, "Warning: keybinding entry %d: %v\n", index, err)
			continue
		}
		registered++
	}

	return Result{Registered: registered, Removed: removed}, nil
}

func (l *Loader) registerEntry(entry fileKeybindingEntry) error {
	if strings.TrimSpace(entry.Sequence) == "" {
		return kberrors.NewParseError(kberrors.ErrEmptyInput, "sequence field is required")
	}
	seq, err := keybinding.ParseSequence(entry.Sequence)
	if err != nil {
		return err
	}

	if strings.TrimSpace(entry.Command) == "" {
		return kberrors.NewParseError(kberrors.ErrUnknownCommand, "command field is required")
	}
	cmd, err := keybinding.ParseCommand(entry.Command)
	if err != nil {
		return err
	}

	ctx := keybinding.Global()
	if strings.TrimSpace(entry.Mode) != "" {
		mode, err := keybinding.ParseMode(entry.Mode)
		if err != nil {
			return err
		}
		ctx = keybinding.InMode(mode)
	}

	binding := keybinding.NewKeyBinding(seq, cmd, ctx, keybinding.PriorityUser)
	return l.catalog.Register(binding)
}
