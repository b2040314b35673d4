//go:build !darwin

package keybinding

// PrimaryModifier is the platform's canonical "command" modifier. Everywhere
// except Apple platforms this is Ctrl; see primary_modifier_darwin.go.
const PrimaryModifier = ModCtrl
