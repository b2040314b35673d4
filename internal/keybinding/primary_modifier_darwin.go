//go:build darwin

package keybinding

// PrimaryModifier is the platform's canonical "command" modifier. On Apple
// platforms this is Super (Cmd); see primary_modifier_other.go for every
// other target. Resolved at compile time per spec.md §9 ("Platform split")
// rather than branching at runtime.
const PrimaryModifier = ModSuper
