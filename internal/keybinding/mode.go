// Package keybinding implements the modal keybinding engine: the grammar for
// parsing key sequences, the command vocabulary, the priority-ordered
// binding catalog, and the sequence matcher that drives a terminal editor's
// key dispatch. See the package's sibling userconfig and watch packages for
// the user-config hot-reload path, and the plugin surface in plugin.go.
package keybinding

import (
	"strings"

	kberrors "github.com/Iron-Ham/claudio/internal/errors"
)

// EditorMode is the three-valued mode tag a BindingContext is evaluated
// against.
type EditorMode string

const (
	ModeInsert EditorMode = "insert"
	ModeNormal EditorMode = "normal"
	ModePrompt EditorMode = "prompt"
)

// String implements fmt.Stringer.
func (m EditorMode) String() string {
	return string(m)
}

// ParseMode parses a mode name case-insensitively, trimming surrounding
// whitespace. It is the inverse of EditorMode.String for the three known
// modes.
func ParseMode(s string) (EditorMode, error) {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "insert":
		return ModeInsert, nil
	case "normal":
		return ModeNormal, nil
	case "prompt":
		return ModePrompt, nil
	default:
		return "", kberrors.NewParseError(kberrors.ErrUnknownMode, s)
	}
}
