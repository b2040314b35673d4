package keybinding

import (
	"sort"
	"strings"
)

// ContextKind tags which member of BindingContext is populated.
type ContextKind int

const (
	ContextGlobal ContextKind = iota
	ContextMode
	ContextModes
	ContextPlugin
)

// BindingContext is a predicate over EditorMode (spec.md §3). Modes is
// used by both ContextModes and ContextPlugin; PluginModesSet
// distinguishes a Plugin context with an explicit mode set from one with
// none (which is active everywhere).
type BindingContext struct {
	Kind           ContextKind
	Mode           EditorMode          // valid when Kind == ContextMode
	Modes          map[EditorMode]bool // valid when Kind == ContextModes, or ContextPlugin with PluginModesSet
	PluginName     string              // valid when Kind == ContextPlugin
	PluginModesSet bool                // valid when Kind == ContextPlugin
}

// Global returns a context active in every mode except Prompt — prompt
// input should never be stolen by an editing shortcut (spec.md §4.3).
func Global() BindingContext {
	return BindingContext{Kind: ContextGlobal}
}

// InMode returns a context active only when the current mode equals m.
func InMode(m EditorMode) BindingContext {
	return BindingContext{Kind: ContextMode, Mode: m}
}

// InModes returns a context active iff the current mode is one of modes.
func InModes(modes ...EditorMode) BindingContext {
	return BindingContext{Kind: ContextModes, Modes: modeSet(modes)}
}

// PluginContextGlobal returns a Plugin context with no mode restriction.
func PluginContextGlobal(pluginName string) BindingContext {
	return BindingContext{Kind: ContextPlugin, PluginName: pluginName}
}

// PluginContextModes returns a Plugin context restricted to modes. An empty
// modes set degenerates to PluginContextGlobal (spec.md §4.8 rule 4).
func PluginContextModes(pluginName string, modes []EditorMode) BindingContext {
	if len(modes) == 0 {
		return PluginContextGlobal(pluginName)
	}
	return BindingContext{
		Kind:           ContextPlugin,
		PluginName:     pluginName,
		Modes:          modeSet(modes),
		PluginModesSet: true,
	}
}

func modeSet(modes []EditorMode) map[EditorMode]bool {
	set := make(map[EditorMode]bool, len(modes))
	for _, m := range modes {
		set[m] = true
	}
	return set
}

// IsActive implements each context variant's predicate (spec.md §4.3).
func (c BindingContext) IsActive(mode EditorMode) bool {
	switch c.Kind {
	case ContextGlobal:
		return mode != ModePrompt
	case ContextMode:
		return mode == c.Mode
	case ContextModes:
		return c.Modes[mode]
	case ContextPlugin:
		if !c.PluginModesSet {
			return true
		}
		return c.Modes[mode]
	default:
		return false
	}
}

// sortedModes returns c.Modes' keys sorted, for deterministic string
// rendering and catalog-identity comparison.
func (c BindingContext) sortedModes() []string {
	modes := make([]string, 0, len(c.Modes))
	for m := range c.Modes {
		modes = append(modes, string(m))
	}
	sort.Strings(modes)
	return modes
}

// String renders a canonical, comparable representation of the context.
// The binding catalog uses this (rather than struct equality, since Modes
// is a map) to enforce the (sequence, context, priority) uniqueness
// invariant.
func (c BindingContext) String() string {
	switch c.Kind {
	case ContextGlobal:
		return "Global"
	case ContextMode:
		return "Mode(" + string(c.Mode) + ")"
	case ContextModes:
		return "Modes(" + strings.Join(c.sortedModes(), ",") + ")"
	case ContextPlugin:
		if !c.PluginModesSet {
			return "Plugin(" + c.PluginName + ")"
		}
		return "Plugin(" + c.PluginName + ",modes=" + strings.Join(c.sortedModes(), ",") + ")"
	default:
		return "Unknown"
	}
}
