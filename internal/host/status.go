// Package host wires the keybinding engine to a terminal editor: the status
// line, the current-mode holder, the plugin dispatch surface, and a
// bubbletea Model tying the event loop together (spec.md §6). The rope
// buffer, clipboard, renderer, and viewport are deliberately out of scope
// (spec.md §1) — this package only defines the small interfaces the core
// consumes from them.
package host

import "github.com/charmbracelet/lipgloss"

// StatusLevel is the colour-coding tag the renderer uses for a StatusLine
// message (spec.md §7).
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusWarning
	StatusError
)

var statusStyles = map[StatusLevel]lipgloss.Style{
	StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

var statusPrefixes = map[StatusLevel]string{
	StatusInfo:    "Info: ",
	StatusWarning: "Warning: ",
	StatusError:   "Error: ",
}

// StatusLine is the host's one-line, colour-coded surface for save
// failures, empty-prompt-accepts, unloaded plugin commands, and other
// user-visible events (spec.md §7).
type StatusLine struct {
	level   StatusLevel
	message string
}

// SetInfo sets an informational status message.
func (s *StatusLine) SetInfo(msg string) { s.set(StatusInfo, msg) }

// SetWarning sets a warning status message.
func (s *StatusLine) SetWarning(msg string) { s.set(StatusWarning, msg) }

// SetError sets an error status message.
func (s *StatusLine) SetError(msg string) { s.set(StatusError, msg) }

func (s *StatusLine) set(level StatusLevel, msg string) {
	s.level = level
	s.message = msg
}

// Clear empties the status line.
func (s *StatusLine) Clear() { s.message = "" }

// String renders the prefixed, colour-coded line. Empty when no message is
// set.
func (s *StatusLine) String() string {
	if s.message == "" {
		return ""
	}
	return statusStyles[s.level].Render(statusPrefixes[s.level] + s.message)
}
