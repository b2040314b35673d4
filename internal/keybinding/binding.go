package keybinding

// KeyBinding is the immutable quadruple (sequence, command, context,
// priority) spec.md §3 describes. Once constructed it is never mutated;
// the catalog only ever adds or removes whole bindings.
type KeyBinding struct {
	Sequence KeySequence
	Command  Command
	Context  BindingContext
	Priority Priority
}

// NewKeyBinding constructs a KeyBinding from its four components.
func NewKeyBinding(seq KeySequence, cmd Command, ctx BindingContext, priority Priority) KeyBinding {
	return KeyBinding{Sequence: seq, Command: cmd, Context: ctx, Priority: priority}
}
