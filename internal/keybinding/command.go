package keybinding

import (
	"strings"

	kberrors "github.com/Iron-Ham/claudio/internal/errors"
)

// PluginCommand identifies a command contributed by a plugin rather than
// the closed builtin catalog (spec.md §3's Command variant).
type PluginCommand struct {
	PluginName  string
	CommandName string
}

// String renders the plugin command in its namespaced "<plugin>.<cmd>"
// form.
func (p PluginCommand) String() string {
	return p.PluginName + "." + p.CommandName
}

// builtinCommand is the closed enum backing Command's non-plugin variant.
// Go has no sum types, so Command is a small tagged struct (spec.md §9)
// instead of an interface: every consumer inspects IsPlugin rather than
// type-switching.
type builtinCommand int

const (
	cmdInsertChar builtinCommand = iota
	cmdInsertNewline
	cmdDeleteCharForward
	cmdDeleteCharBackward
	cmdMoveUp
	cmdMoveDown
	cmdMoveLeft
	cmdMoveRight
	cmdLineHome
	cmdLineEnd
	cmdPageUp
	cmdPageDown
	cmdInsertTab
	cmdSave
	cmdQuit
	cmdChangeModeInsert
	cmdChangeModeNormal
	cmdChangeModePrompt
	cmdPromptInsertChar
	cmdPromptDeleteChar
	cmdPromptAccept
	cmdPromptCancel
	cmdSelectUp
	cmdSelectDown
	cmdSelectLeft
	cmdSelectRight
	cmdSelectAll
	cmdClipboardCopy
	cmdClipboardCut
	cmdClipboardPaste
)

// commandTable is the single source of truth for the string <-> builtin
// round trip (spec.md §4.2).
var commandTable = []struct {
	token string
	kind  builtinCommand
}{
	{"insert_char", cmdInsertChar},
	{"insert_newline", cmdInsertNewline},
	{"delete_char_forward", cmdDeleteCharForward},
	{"delete_char_backward", cmdDeleteCharBackward},
	{"move_up", cmdMoveUp},
	{"move_down", cmdMoveDown},
	{"move_left", cmdMoveLeft},
	{"move_right", cmdMoveRight},
	{"line_home", cmdLineHome},
	{"line_end", cmdLineEnd},
	{"page_up", cmdPageUp},
	{"page_down", cmdPageDown},
	{"insert_tab", cmdInsertTab},
	{"save", cmdSave},
	{"quit", cmdQuit},
	{"change_mode_insert", cmdChangeModeInsert},
	{"change_mode_normal", cmdChangeModeNormal},
	{"change_mode_prompt", cmdChangeModePrompt},
	{"prompt_insert_char", cmdPromptInsertChar},
	{"prompt_delete_char", cmdPromptDeleteChar},
	{"prompt_accept", cmdPromptAccept},
	{"prompt_cancel", cmdPromptCancel},
	{"select_up", cmdSelectUp},
	{"select_down", cmdSelectDown},
	{"select_left", cmdSelectLeft},
	{"select_right", cmdSelectRight},
	{"select_all", cmdSelectAll},
	{"clipboard_copy", cmdClipboardCopy},
	{"clipboard_cut", cmdClipboardCut},
	{"clipboard_paste", cmdClipboardPaste},
}

var (
	builtinToToken = make(map[builtinCommand]string, len(commandTable))
	tokenToBuiltin = make(map[string]builtinCommand, len(commandTable))
)

func init() {
	for _, e := range commandTable {
		builtinToToken[e.kind] = e.token
		tokenToBuiltin[e.token] = e.kind
	}
}

// Command is either a member of the closed builtin catalog or a Plugin
// command tag. Zero value is the builtin "insert_char" command; always
// construct one of the exported Command* values or go through ParseCommand.
type Command struct {
	isPlugin bool
	builtin  builtinCommand
	plugin   PluginCommand
}

func newBuiltinCommand(b builtinCommand) Command {
	return Command{builtin: b}
}

// NewPluginCommand constructs a plugin-tagged Command.
func NewPluginCommand(pluginName, commandName string) Command {
	return Command{isPlugin: true, plugin: PluginCommand{PluginName: pluginName, CommandName: commandName}}
}

// IsPlugin reports whether this command is a plugin command rather than a
// builtin one.
func (c Command) IsPlugin() bool {
	return c.isPlugin
}

// Plugin returns the plugin command payload. The zero PluginCommand is
// returned when IsPlugin is false.
func (c Command) Plugin() PluginCommand {
	return c.plugin
}

// String round-trips through ParseCommand for every value produced by this
// package.
func (c Command) String() string {
	if c.isPlugin {
		return c.plugin.String()
	}
	return builtinToToken[c.builtin]
}

// Exported builtin command values (spec.md §3's closed catalog).
var (
	CommandInsertChar         = newBuiltinCommand(cmdInsertChar)
	CommandInsertNewline      = newBuiltinCommand(cmdInsertNewline)
	CommandDeleteCharForward  = newBuiltinCommand(cmdDeleteCharForward)
	CommandDeleteCharBackward = newBuiltinCommand(cmdDeleteCharBackward)
	CommandMoveUp             = newBuiltinCommand(cmdMoveUp)
	CommandMoveDown           = newBuiltinCommand(cmdMoveDown)
	CommandMoveLeft           = newBuiltinCommand(cmdMoveLeft)
	CommandMoveRight          = newBuiltinCommand(cmdMoveRight)
	CommandLineHome           = newBuiltinCommand(cmdLineHome)
	CommandLineEnd            = newBuiltinCommand(cmdLineEnd)
	CommandPageUp             = newBuiltinCommand(cmdPageUp)
	CommandPageDown           = newBuiltinCommand(cmdPageDown)
	CommandInsertTab          = newBuiltinCommand(cmdInsertTab)
	CommandSave               = newBuiltinCommand(cmdSave)
	CommandQuit               = newBuiltinCommand(cmdQuit)
	CommandChangeModeInsert   = newBuiltinCommand(cmdChangeModeInsert)
	CommandChangeModeNormal   = newBuiltinCommand(cmdChangeModeNormal)
	CommandChangeModePrompt   = newBuiltinCommand(cmdChangeModePrompt)
	CommandPromptInsertChar   = newBuiltinCommand(cmdPromptInsertChar)
	CommandPromptDeleteChar   = newBuiltinCommand(cmdPromptDeleteChar)
	CommandPromptAccept       = newBuiltinCommand(cmdPromptAccept)
	CommandPromptCancel       = newBuiltinCommand(cmdPromptCancel)
	CommandSelectUp           = newBuiltinCommand(cmdSelectUp)
	CommandSelectDown         = newBuiltinCommand(cmdSelectDown)
	CommandSelectLeft         = newBuiltinCommand(cmdSelectLeft)
	CommandSelectRight        = newBuiltinCommand(cmdSelectRight)
	CommandSelectAll          = newBuiltinCommand(cmdSelectAll)
	CommandClipboardCopy      = newBuiltinCommand(cmdClipboardCopy)
	CommandClipboardCut       = newBuiltinCommand(cmdClipboardCut)
	CommandClipboardPaste     = newBuiltinCommand(cmdClipboardPaste)
)

// ParseCommand parses a command token via the fixed table. A two-part
// dotted identifier that doesn't match a builtin entry is accepted as a
// Plugin command; an empty string, unknown bareword, or malformed plugin
// identifier (e.g. a lone dot) produces a classified ErrUnknownCommand.
func ParseCommand(s string) (Command, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Command{}, kberrors.NewParseError(kberrors.ErrUnknownCommand, s)
	}

	if b, ok := tokenToBuiltin[trimmed]; ok {
		return newBuiltinCommand(b), nil
	}

	dot := strings.Index(trimmed, ".")
	if dot <= 0 || dot >= len(trimmed)-1 {
		return Command{}, kberrors.NewParseError(kberrors.ErrUnknownCommand, s)
	}

	pluginName := trimmed[:dot]
	commandName := trimmed[dot+1:]
	return NewPluginCommand(pluginName, commandName), nil
}
