package keybinding

import "fmt"

// charPattern and namedPattern build KeyPattern values directly, bypassing
// the string grammar — needed here because PrimaryModifier is a
// compile-time constant, not a literal the grammar's modifier names cover.
func charPattern(r rune, mods ModifierSet) KeyPattern {
	return KeyPattern{Identity: KeyIdentity{Kind: KindChar, Char: r}, Modifiers: mods}
}

func namedPattern(n NamedKey, mods ModifierSet) KeyPattern {
	return KeyPattern{Identity: KeyIdentity{Kind: KindNamed, Named: n}, Modifiers: mods}
}

func seqOf(patterns ...KeyPattern) KeySequence {
	return KeySequence(patterns)
}

// DefaultBindings returns the built-in binding set installed at startup
// (spec.md §4.5), all at PriorityDefault. Printable-character insertion in
// Insert mode and prompt input are intentionally absent: the host falls
// back to them itself on NoMatch rather than exploding the catalog with one
// binding per Unicode scalar.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		// Lowercase: terminal control codes carry no case bit, so
		// FromKeyMsg's tea.KeyCtrlA..KeyCtrlZ range always produces a
		// lowercase Char alongside ModCtrl — these are the patterns a real
		// keystroke actually reaches (see translate.go).
		NewKeyBinding(seqOf(charPattern('s', PrimaryModifier)), CommandSave, Global(), PriorityDefault),
		NewKeyBinding(seqOf(charPattern('s', PrimaryModifier|ModShift)), CommandSave, Global(), PriorityDefault),

		NewKeyBinding(seqOf(charPattern('q', PrimaryModifier)), CommandQuit, Global(), PriorityDefault),
		NewKeyBinding(seqOf(charPattern('q', PrimaryModifier|ModShift)), CommandQuit, Global(), PriorityDefault),

		NewKeyBinding(seqOf(namedPattern(NamedEnter, ModNone)), CommandInsertNewline, InMode(ModeInsert), PriorityDefault),
		NewKeyBinding(seqOf(namedPattern(NamedBackspace, ModNone)), CommandDeleteCharBackward, InMode(ModeInsert), PriorityDefault),
		NewKeyBinding(seqOf(namedPattern(NamedEsc, ModNone)), CommandChangeModeNormal, InMode(ModeInsert), PriorityDefault),

		NewKeyBinding(seqOf(namedPattern(NamedUp, ModNone)), CommandMoveUp, InModes(ModeInsert, ModeNormal), PriorityDefault),
		NewKeyBinding(seqOf(namedPattern(NamedDown, ModNone)), CommandMoveDown, InModes(ModeInsert, ModeNormal), PriorityDefault),
		NewKeyBinding(seqOf(namedPattern(NamedLeft, ModNone)), CommandMoveLeft, InModes(ModeInsert, ModeNormal), PriorityDefault),
		NewKeyBinding(seqOf(namedPattern(NamedRight, ModNone)), CommandMoveRight, InModes(ModeInsert, ModeNormal), PriorityDefault),

		NewKeyBinding(seqOf(charPattern('i', ModNone)), CommandChangeModeInsert, InMode(ModeNormal), PriorityDefault),

		NewKeyBinding(seqOf(namedPattern(NamedBackspace, ModNone)), CommandPromptDeleteChar, InMode(ModePrompt), PriorityDefault),
		NewKeyBinding(seqOf(namedPattern(NamedEnter, ModNone)), CommandPromptAccept, InMode(ModePrompt), PriorityDefault),
		NewKeyBinding(seqOf(namedPattern(NamedEsc, ModNone)), CommandPromptCancel, InMode(ModePrompt), PriorityDefault),
	}
}

// InstallDefaults registers every default binding into catalog. A conflict
// here is a programming error in DefaultBindings itself (spec.md §7: fatal
// only if produced by defaults) so InstallDefaults panics rather than
// returning an error the host would have to decide how to recover from.
func InstallDefaults(catalog *BindingCatalog) {
	for _, b := range DefaultBindings() {
		if err := catalog.Register(b); err != nil {
			panic(fmt.Sprintf("keybinding: default binding conflict, this is a bug: %v", err))
		}
	}
}
