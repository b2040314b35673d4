package host

import "github.com/Iron-Ham/claudio/internal/keybinding"

// PluginDispatcher is the narrow surface a loaded plugin registers itself
// under to receive dispatched PluginCommands (spec.md §6). The engine
// itself never invokes plugin code directly — only the host, through this
// registry — matching the "engine has no plugin loader" boundary in
// spec.md §1.
type PluginDispatcher interface {
	Dispatch(cmd keybinding.PluginCommand) error
}

// PluginHost is the host's registry of loaded plugins by name. It is
// intentionally minimal: loading, sandboxing, and lifecycle management of
// plugins are out of scope (spec.md §1's Non-goals); this only models the
// lookup-and-dispatch-or-report-unimplemented behaviour spec.md §6
// describes for the host.
type PluginHost struct {
	loaded map[string]PluginDispatcher
}

// NewPluginHost returns an empty registry.
func NewPluginHost() *PluginHost {
	return &PluginHost{loaded: make(map[string]PluginDispatcher)}
}

// Register makes a plugin's dispatcher available under name. A plugin
// registering its keybindings via PluginRegistrar is expected to also
// register a dispatcher here under the same name, once loaded.
func (h *PluginHost) Register(name string, dispatcher PluginDispatcher) {
	h.loaded[name] = dispatcher
}

// Dispatch looks up cmd's owning plugin and forwards it. It reports
// handled=false, with no error, when no plugin is loaded under that name —
// the caller renders the "not yet implemented" status message for that
// case (spec.md §6), rather than treating it as a failure.
func (h *PluginHost) Dispatch(cmd keybinding.PluginCommand) (handled bool, err error) {
	dispatcher, ok := h.loaded[cmd.PluginName]
	if !ok {
		return false, nil
	}
	return true, dispatcher.Dispatch(cmd)
}
