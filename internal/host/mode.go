package host

import "github.com/Iron-Ham/claudio/internal/keybinding"

// ModeHolder is the host's single source of truth for the active
// EditorMode. Every transition routes through TransitionTo so the input
// handler's in-flight sequence buffer is always dropped alongside the mode
// change (spec.md §4.4: "the host calls OnModeChange after every mode
// transition").
type ModeHolder struct {
	current keybinding.EditorMode
	handler *keybinding.InputHandler
}

// NewModeHolder starts in ModeNormal, the editor's boot mode (spec.md §6).
func NewModeHolder(handler *keybinding.InputHandler) *ModeHolder {
	return &ModeHolder{current: keybinding.ModeNormal, handler: handler}
}

// Current returns the active mode.
func (m *ModeHolder) Current() keybinding.EditorMode {
	return m.current
}

// TransitionTo switches modes and clears the handler's in-flight buffer. A
// transition to the mode already active is a no-op beyond the buffer clear,
// matching the idempotence spec.md §8 requires of OnModeChange.
func (m *ModeHolder) TransitionTo(mode keybinding.EditorMode) {
	m.current = mode
	m.handler.OnModeChange()
}
