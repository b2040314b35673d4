package keybinding

import (
	"strings"

	kberrors "github.com/Iron-Ham/claudio/internal/errors"
)

// PluginContextKind tags which member of PluginContextDescriptor a plugin
// author selected via the builder.
type PluginContextKind int

const (
	PluginCtxGlobal PluginContextKind = iota
	PluginCtxMode
	PluginCtxModes
)

// PluginContextDescriptor is the context shape a plugin author can request
// (spec.md §4.8). Modes is unvalidated plugin input — unknown mode names
// are silently dropped when the registrar converts this to an internal
// BindingContext (rule 5), not here.
type PluginContextDescriptor struct {
	Kind  PluginContextKind
	Modes []string
}

// PluginBinding is the record plugins build and hand to a PluginRegistrar.
// It carries no internal catalog types (KeySequence, BindingContext,
// Priority) — only strings and the small context descriptor above — so
// plugins never see the engine's internals (spec.md §4.8).
type PluginBinding struct {
	PluginName string
	Sequence   string
	Command    string
	Context    PluginContextDescriptor
}

// PluginBindingBuilder is the fluent builder plugins use to construct a
// PluginBinding: pluginName -> Bind(seq, cmd) -> zero or one of
// Global()/InMode()/InModes() -> Build().
type PluginBindingBuilder struct {
	pluginName string
	sequence   string
	command    string
	context    PluginContextDescriptor
}

// NewPluginBindingBuilder starts a builder for the named plugin. Context
// defaults to Global if the caller never calls Global/InMode/InModes.
func NewPluginBindingBuilder(pluginName string) *PluginBindingBuilder {
	return &PluginBindingBuilder{pluginName: pluginName, context: PluginContextDescriptor{Kind: PluginCtxGlobal}}
}

// Bind sets the sequence and command strings.
func (b *PluginBindingBuilder) Bind(sequence, command string) *PluginBindingBuilder {
	b.sequence = sequence
	b.command = command
	return b
}

// Global restricts the binding to no mode (active everywhere).
func (b *PluginBindingBuilder) Global() *PluginBindingBuilder {
	b.context = PluginContextDescriptor{Kind: PluginCtxGlobal}
	return b
}

// InMode restricts the binding to a single named mode.
func (b *PluginBindingBuilder) InMode(mode string) *PluginBindingBuilder {
	b.context = PluginContextDescriptor{Kind: PluginCtxMode, Modes: []string{mode}}
	return b
}

// InModes restricts the binding to a set of named modes.
func (b *PluginBindingBuilder) InModes(modes []string) *PluginBindingBuilder {
	b.context = PluginContextDescriptor{Kind: PluginCtxModes, Modes: modes}
	return b
}

// Build validates and produces the PluginBinding. Rule 1 (auto-namespacing)
// and rule 2 (empty-check) of spec.md §4.8 are enforced here.
func (b *PluginBindingBuilder) Build() (PluginBinding, error) {
	seq := strings.TrimSpace(b.sequence)
	if seq == "" {
		return PluginBinding{}, kberrors.NewBuilderError("sequence", kberrors.ErrEmptySequence)
	}
	cmd := strings.TrimSpace(b.command)
	if cmd == "" {
		return PluginBinding{}, kberrors.NewBuilderError("command", kberrors.ErrEmptyCommand)
	}

	namespaced := cmd
	if !strings.Contains(cmd, ".") {
		namespaced = b.pluginName + "." + cmd
	}

	return PluginBinding{
		PluginName: b.pluginName,
		Sequence:   seq,
		Command:    namespaced,
		Context:    b.context,
	}, nil
}

// PluginRegistrar is the single method plugins call to contribute a
// binding. CatalogPluginRegistrar is the engine's implementation of it;
// plugins only ever see this interface.
type PluginRegistrar interface {
	RegisterKeybinding(binding PluginBinding) error
}

// CatalogPluginRegistrar implements PluginRegistrar against a
// BindingCatalog, always at PriorityPlugin (rule 3: plugins cannot request
// User or Default).
type CatalogPluginRegistrar struct {
	Catalog *BindingCatalog
}

// NewCatalogPluginRegistrar returns a registrar writing into catalog.
func NewCatalogPluginRegistrar(catalog *BindingCatalog) *CatalogPluginRegistrar {
	return &CatalogPluginRegistrar{Catalog: catalog}
}

// RegisterKeybinding parses binding's sequence and namespaced command,
// converts its context descriptor to an internal BindingContext (dropping
// unknown mode names per rule 5), and registers it at PriorityPlugin.
func (r *CatalogPluginRegistrar) RegisterKeybinding(binding PluginBinding) error {
	seq, err := ParseSequence(binding.Sequence)
	if err != nil {
		return err
	}

	cmd, err := ParseCommand(binding.Command)
	if err != nil {
		return err
	}

	ctx := pluginDescriptorToContext(binding.PluginName, binding.Context)
	return r.Catalog.Register(NewKeyBinding(seq, cmd, ctx, PriorityPlugin))
}

func pluginDescriptorToContext(pluginName string, desc PluginContextDescriptor) BindingContext {
	if desc.Kind == PluginCtxGlobal {
		return PluginContextGlobal(pluginName)
	}

	var modes []EditorMode
	for _, name := range desc.Modes {
		mode, err := ParseMode(name)
		if err != nil {
			continue
		}
		modes = append(modes, mode)
	}
	return PluginContextModes(pluginName, modes)
}
