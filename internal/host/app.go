package host

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/claudio/internal/keybinding"
	"github.com/Iron-Ham/claudio/internal/keybinding/userconfig"
	"github.com/Iron-Ham/claudio/internal/keybinding/watch"
	"github.com/Iron-Ham/claudio/internal/logging"
)

// pollInterval matches the teacher's tick() cadence (internal/tui/app.go),
// reused here to drive both the sequence-buffer timeout check and the
// config-file watcher poll (spec.md §5).
const pollInterval = 100 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model tying the keybinding engine to a terminal
// editor (spec.md §6). It owns the mode, the input handler's event
// dispatch, the status line, and the optional config hot-reload plumbing;
// it delegates command effects to a Dispatcher and the rope/clipboard
// implementations supplied by the caller.
type Model struct {
	catalog    *keybinding.BindingCatalog
	handler    *keybinding.InputHandler
	mode       *ModeHolder
	dispatcher *Dispatcher
	status     *StatusLine

	configPath string
	loader     *userconfig.Loader
	watcher    *watch.Watcher
	logger     *logging.Logger

	quitting bool
}

// Config bundles the optional collaborators NewModel wires in. Buffer is
// required; Clipboard, Plugins, ConfigPath, and Logger may be left zero.
type Config struct {
	Buffer     TextBuffer
	Clipboard  Clipboard
	Plugins    *PluginHost
	ConfigPath string
	Logger     *logging.Logger
}

// NewModel builds a Model with defaults installed and, if cfg.ConfigPath is
// non-empty, the user config loaded and a watcher started on it. A watcher
// that fails to start (e.g. the config directory doesn't exist yet) is
// logged and otherwise ignored — hot-reload degrades gracefully rather than
// preventing the editor from starting (spec.md §4.7).
func NewModel(cfg Config) *Model {
	catalog := keybinding.NewBindingCatalog()
	keybinding.InstallDefaults(catalog)

	var handlerOpts []keybinding.HandlerOption
	if cfg.Logger != nil {
		handlerOpts = append(handlerOpts, keybinding.WithLogger(cfg.Logger))
	}
	handler := keybinding.NewInputHandler(catalog, handlerOpts...)

	plugins := cfg.Plugins
	if plugins == nil {
		plugins = NewPluginHost()
	}
	status := &StatusLine{}

	m := &Model{
		catalog:    catalog,
		handler:    handler,
		mode:       NewModeHolder(handler),
		dispatcher: NewDispatcher(cfg.Buffer, cfg.Clipboard, plugins, status),
		status:     status,
		configPath: cfg.ConfigPath,
		logger:     cfg.Logger,
	}

	if cfg.ConfigPath != "" {
		var loaderOpts []userconfig.Option
		m.loader = userconfig.NewLoader(catalog, loaderOpts...)
		if _, err := m.loader.Reload(cfg.ConfigPath); err != nil {
			status.SetWarning("keybindings: " + err.Error())
		}

		if w, err := watch.New(cfg.ConfigPath); err == nil {
			m.watcher = w
		} else if cfg.Logger != nil {
			cfg.Logger.Warn("config watcher unavailable", "path", cfg.ConfigPath, "error", err.Error())
		}
	}

	return m
}

// Init starts the poll loop.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model: translate key events through the keybinding
// engine, dispatch matched commands, and reload the config file when the
// watcher reports a change.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pattern, ok := keybinding.FromKeyMsg(msg)
	if !ok {
		return m, nil
	}

	outcome := m.handler.ProcessKeyEvent(pattern, m.mode.Current())
	switch outcome.Kind {
	case keybinding.Matched:
		if m.dispatcher.Apply(outcome.Command, m.mode) {
			m.quitting = true
			return m, tea.Quit
		}
	case keybinding.NoMatch:
		m.fallbackInsert(pattern)
	case keybinding.Partial:
		// Waiting on the next key; nothing to do until it arrives or the
		// sequence times out.
	}
	return m, nil
}

// fallbackInsert handles the printable-character path spec.md §4.4 step 4
// describes: an unbound single printable key in Insert or Prompt mode
// inserts itself rather than being treated as a no-op.
func (m *Model) fallbackInsert(pattern keybinding.KeyPattern) {
	if pattern.Modifiers != keybinding.ModNone || pattern.Identity.Kind != keybinding.KindChar {
		return
	}
	switch m.mode.Current() {
	case keybinding.ModeInsert:
		m.dispatcher.buffer.InsertChar(pattern.Identity.Char)
	case keybinding.ModePrompt:
		// Prompt text entry is host-specific and not modeled by TextBuffer;
		// a full implementation would append to a prompt line buffer here.
	}
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	m.handler.CheckTimeout()

	if m.watcher != nil {
		select {
		case err := <-m.watcher.Errors():
			if m.logger != nil {
				m.logger.Warn("config watcher error", "path", m.configPath, "error", err.Error())
			}
		default:
		}

		if m.watcher.CheckForChanges() {
			result, err := m.loader.Reload(m.configPath)
			if err != nil {
				m.status.SetError("keybindings: " + err.Error())
			} else {
				m.status.SetInfo(fmt.Sprintf("keybindings reloaded (+%d -%d)", result.Registered, result.Removed))
			}
		}
	}

	if m.quitting {
		return m, nil
	}
	return m, tick()
}

// View renders the status line. The rope/viewport rendering is out of
// scope for this module (spec.md §1); a full host composes this beneath
// its own buffer view.
func (m *Model) View() string {
	return m.status.String()
}

// Close releases the watcher's OS handle, if one was started.
func (m *Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Close()
}
