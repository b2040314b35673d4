package keybinding

import (
	tea "github.com/charmbracelet/bubbletea"
)

// funcKeyTypes maps bubbletea's F1..F12 KeyTypes to their function-key
// number, mirroring the teacher keymap package's reverse table.
var funcKeyTypes = map[tea.KeyType]int{
	tea.KeyF1: 1, tea.KeyF2: 2, tea.KeyF3: 3, tea.KeyF4: 4,
	tea.KeyF5: 5, tea.KeyF6: 6, tea.KeyF7: 7, tea.KeyF8: 8,
	tea.KeyF9: 9, tea.KeyF10: 10, tea.KeyF11: 11, tea.KeyF12: 12,
}

var namedKeyTypes = map[tea.KeyType]NamedKey{
	tea.KeyUp:        NamedUp,
	tea.KeyDown:      NamedDown,
	tea.KeyLeft:      NamedLeft,
	tea.KeyRight:     NamedRight,
	tea.KeyHome:      NamedHome,
	tea.KeyEnd:       NamedEnd,
	tea.KeyPgUp:      NamedPageUp,
	tea.KeyPgDown:    NamedPageDown,
	tea.KeyEnter:     NamedEnter,
	tea.KeyEsc:       NamedEsc,
	tea.KeyTab:       NamedTab,
	tea.KeyBackspace: NamedBackspace,
	tea.KeyDelete:    NamedDelete,
	tea.KeySpace:     NamedSpace,
}

// FromKeyMsg translates a bubbletea key event into a KeyPattern. The
// platform-specific primary-modifier mapping is applied by the event
// source upstream of this function (spec.md §4.4, step 1) — this function
// only reflects what bubbletea itself reports (Alt as a boolean, Ctrl+letter
// as dedicated KeyCtrlA..KeyCtrlZ types, Shift+Tab as a dedicated type).
// The second return value is false for key types the grammar has no
// representation for (e.g. KeyCtrlAt, mouse events routed elsewhere).
func FromKeyMsg(msg tea.KeyMsg) (KeyPattern, bool) {
	mods := ModNone
	if msg.Alt {
		mods |= ModAlt
	}

	if msg.Type == tea.KeyShiftTab {
		return KeyPattern{Identity: KeyIdentity{Kind: KindNamed, Named: NamedTab}, Modifiers: mods | ModShift}, true
	}

	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) == 0 {
			return KeyPattern{}, false
		}
		return KeyPattern{Identity: KeyIdentity{Kind: KindChar, Char: msg.Runes[0]}, Modifiers: mods}, true
	}

	if named, ok := namedKeyTypes[msg.Type]; ok {
		return KeyPattern{Identity: KeyIdentity{Kind: KindNamed, Named: named}, Modifiers: mods}, true
	}

	if fn, ok := funcKeyTypes[msg.Type]; ok {
		return KeyPattern{Identity: KeyIdentity{Kind: KindFunc, Func: fn}, Modifiers: mods}, true
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		ch := rune('a' + int(msg.Type-tea.KeyCtrlA))
		return KeyPattern{Identity: KeyIdentity{Kind: KindChar, Char: ch}, Modifiers: mods | ModCtrl}, true
	}

	return KeyPattern{}, false
}
