package host

import "github.com/Iron-Ham/claudio/internal/keybinding"

// Dispatcher applies a resolved Command to the host's collaborators. It
// holds no state of its own; every field it touches belongs to the Model
// that calls it.
type Dispatcher struct {
	buffer    TextBuffer
	clipboard Clipboard
	plugins   *PluginHost
	status    *StatusLine
}

// NewDispatcher wires a Dispatcher to its collaborators.
func NewDispatcher(buffer TextBuffer, clipboard Clipboard, plugins *PluginHost, status *StatusLine) *Dispatcher {
	return &Dispatcher{buffer: buffer, clipboard: clipboard, plugins: plugins, status: status}
}

// Apply runs cmd's effect. It returns quit=true iff the editor should exit
// (spec.md §6's "quit" command); mode changes are applied to holder
// directly since they additionally have to clear the handler's sequence
// buffer.
func (d *Dispatcher) Apply(cmd keybinding.Command, mode *ModeHolder) (quit bool) {
	if cmd.IsPlugin() {
		d.dispatchPlugin(cmd.Plugin())
		return false
	}

	switch cmd {
	case keybinding.CommandInsertNewline:
		d.buffer.InsertNewline()
	case keybinding.CommandInsertTab:
		d.buffer.InsertTab()
	case keybinding.CommandDeleteCharForward:
		d.buffer.DeleteForward()
	case keybinding.CommandDeleteCharBackward:
		d.buffer.DeleteBackward()
	case keybinding.CommandMoveUp:
		d.buffer.MoveCursor(DirUp)
	case keybinding.CommandMoveDown:
		d.buffer.MoveCursor(DirDown)
	case keybinding.CommandMoveLeft:
		d.buffer.MoveCursor(DirLeft)
	case keybinding.CommandMoveRight:
		d.buffer.MoveCursor(DirRight)
	case keybinding.CommandLineHome:
		d.buffer.LineHome()
	case keybinding.CommandLineEnd:
		d.buffer.LineEnd()
	case keybinding.CommandPageUp:
		d.buffer.PageUp()
	case keybinding.CommandPageDown:
		d.buffer.PageDown()
	case keybinding.CommandSelectUp:
		d.buffer.Select(DirUp)
	case keybinding.CommandSelectDown:
		d.buffer.Select(DirDown)
	case keybinding.CommandSelectLeft:
		d.buffer.Select(DirLeft)
	case keybinding.CommandSelectRight:
		d.buffer.Select(DirRight)
	case keybinding.CommandSelectAll:
		d.buffer.SelectAll()
	case keybinding.CommandClipboardCopy, keybinding.CommandClipboardCut:
		d.dispatchClipboardWrite(cmd)
	case keybinding.CommandClipboardPaste:
		d.dispatchPaste()
	case keybinding.CommandSave:
		if err := d.buffer.Save(); err != nil {
			d.status.SetError("save failed: " + err.Error())
		} else {
			d.status.SetInfo("saved")
		}
	case keybinding.CommandQuit:
		return true
	case keybinding.CommandChangeModeInsert:
		mode.TransitionTo(keybinding.ModeInsert)
	case keybinding.CommandChangeModeNormal:
		mode.TransitionTo(keybinding.ModeNormal)
	case keybinding.CommandChangeModePrompt:
		mode.TransitionTo(keybinding.ModePrompt)
	case keybinding.CommandPromptAccept, keybinding.CommandPromptCancel:
		mode.TransitionTo(keybinding.ModeNormal)
	case keybinding.CommandPromptDeleteChar, keybinding.CommandPromptInsertChar, keybinding.CommandInsertChar:
		// Prompt text entry and the printable-character fallback are driven
		// directly by the Model's NoMatch path (spec.md §4.4, step 4), not
		// through a dispatched binding; nothing to do on this path.
	}
	return false
}

// dispatchClipboardWrite handles CommandClipboardCopy/Cut. The rope buffer
// owns the current selection text; since it is out of scope here, this only
// reports status when no clipboard is wired.
func (d *Dispatcher) dispatchClipboardWrite(cmd keybinding.Command) {
	if d.clipboard == nil {
		d.status.SetWarning("no clipboard available")
	}
}

func (d *Dispatcher) dispatchPaste() {
	if d.clipboard == nil {
		d.status.SetWarning("no clipboard available")
		return
	}
	if _, err := d.clipboard.Paste(); err != nil {
		d.status.SetError("paste failed: " + err.Error())
	}
}

func (d *Dispatcher) dispatchPlugin(cmd keybinding.PluginCommand) {
	handled, err := d.plugins.Dispatch(cmd)
	if err != nil {
		d.status.SetError(cmd.String() + ": " + err.Error())
		return
	}
	if !handled {
		d.status.SetInfo(cmd.String() + " is not yet implemented")
	}
}
