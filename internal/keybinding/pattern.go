package keybinding

import (
	"strconv"
	"strings"
	"unicode/utf8"

	kberrors "github.com/Iron-Ham/claudio/internal/errors"
)

// ModifierSet is a bit set over the four modifier keys a KeyPattern can
// carry. Super is the platform's primary modifier (see PrimaryModifier):
// Cmd on Apple platforms, Ctrl everywhere else.
type ModifierSet uint8

const (
	ModNone ModifierSet = 0
	ModCtrl ModifierSet = 1 << iota
	ModAlt
	ModShift
	ModSuper
)

// Has reports whether m contains every bit set in flag.
func (m ModifierSet) Has(flag ModifierSet) bool {
	return m&flag == flag
}

// String renders modifiers in a fixed canonical order (Ctrl, Alt, Shift,
// Super), joined by "+".
func (m ModifierSet) String() string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}

// KeyKind tags which member of KeyIdentity is populated.
type KeyKind int

const (
	KindChar KeyKind = iota
	KindNamed
	KindFunc
)

// NamedKey enumerates the navigation and editing keys the grammar
// recognises by name (spec.md §4.1 named-key and the editing-key subset of
// §3's KeyPattern attributes).
type NamedKey string

const (
	NamedUp        NamedKey = "Up"
	NamedDown      NamedKey = "Down"
	NamedLeft      NamedKey = "Left"
	NamedRight     NamedKey = "Right"
	NamedHome      NamedKey = "Home"
	NamedEnd       NamedKey = "End"
	NamedPageUp    NamedKey = "PageUp"
	NamedPageDown  NamedKey = "PageDown"
	NamedEnter     NamedKey = "Enter"
	NamedBackspace NamedKey = "Backspace"
	NamedDelete    NamedKey = "Delete"
	NamedTab       NamedKey = "Tab"
	NamedSpace     NamedKey = "Space"
	NamedEsc       NamedKey = "Esc"
)

// KeyIdentity is the non-modifier half of a KeyPattern: a Unicode
// character, a named key, or a function key. Exactly one of Char/Named/Func
// is meaningful, selected by Kind.
type KeyIdentity struct {
	Kind  KeyKind
	Char  rune
	Named NamedKey
	Func  int // 1..12, valid when Kind == KindFunc
}

// String renders the identity in canonical form.
func (id KeyIdentity) String() string {
	switch id.Kind {
	case KindNamed:
		return string(id.Named)
	case KindFunc:
		return "F" + strconv.Itoa(id.Func)
	default:
		return string(id.Char)
	}
}

// KeyPattern is a single keystroke: a key identity plus a modifier set.
// Two patterns are equal iff both fields are bitwise equal (KeyPattern is
// comparable with ==) — there is no subset matching.
type KeyPattern struct {
	Identity  KeyIdentity
	Modifiers ModifierSet
}

// String renders the pattern in canonical form, e.g. "Ctrl+Shift+S".
func (p KeyPattern) String() string {
	mods := p.Modifiers.String()
	if mods == "" {
		return p.Identity.String()
	}
	return mods + "+" + p.Identity.String()
}

var namedKeyAliases = map[string]NamedKey{
	"up":        NamedUp,
	"down":      NamedDown,
	"left":      NamedLeft,
	"right":     NamedRight,
	"home":      NamedHome,
	"end":       NamedEnd,
	"pageup":    NamedPageUp,
	"pgup":      NamedPageUp,
	"pagedown":  NamedPageDown,
	"pgdown":    NamedPageDown,
	"enter":     NamedEnter,
	"return":    NamedEnter,
	"esc":       NamedEsc,
	"escape":    NamedEsc,
	"tab":       NamedTab,
	"backspace": NamedBackspace,
	"back":      NamedBackspace,
	"delete":    NamedDelete,
	"del":       NamedDelete,
	"space":     NamedSpace,
}

func modifierFromName(name string) (ModifierSet, bool) {
	switch strings.ToLower(name) {
	case "ctrl", "control":
		return ModCtrl, true
	case "shift":
		return ModShift, true
	case "alt":
		return ModAlt, true
	case "super", "cmd", "command":
		return ModSuper, true
	default:
		return 0, false
	}
}

// parseFuncKey reports whether key is a function-key name ("F1".."F12",
// case-insensitive) and, if so, its number.
func parseFuncKey(key string) (int, bool) {
	if len(key) < 2 || len(key) > 3 {
		return 0, false
	}
	if key[0] != 'F' && key[0] != 'f' {
		return 0, false
	}
	digits := key[1:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return n, true
}

// parseKeyIdentity parses the key portion of a pattern (everything after
// the last "+"). Named keys and function keys are case-insensitive; single
// characters are case-sensitive and preserved exactly as parsed.
func parseKeyIdentity(key string) (KeyIdentity, error) {
	if n, ok := parseFuncKey(key); ok {
		return KeyIdentity{Kind: KindFunc, Func: n}, nil
	}
	if named, ok := namedKeyAliases[strings.ToLower(key)]; ok {
		return KeyIdentity{Kind: KindNamed, Named: named}, nil
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		return KeyIdentity{Kind: KindChar, Char: r}, nil
	}
	return KeyIdentity{}, kberrors.NewParseError(kberrors.ErrUnknownKeyName, key)
}

// parsePattern parses a single "+"-joined pattern, e.g. "Ctrl+Shift+S".
func parsePattern(s string) (KeyPattern, error) {
	segments := strings.Split(s, "+")
	keyPart := segments[len(segments)-1]
	modParts := segments[:len(segments)-1]

	if keyPart == "" {
		return KeyPattern{}, kberrors.NewParseError(kberrors.ErrEmptyPattern, s)
	}

	var mods ModifierSet
	for _, m := range modParts {
		if m == "" {
			return KeyPattern{}, kberrors.NewParseError(kberrors.ErrInvalidFormat, s)
		}
		flag, ok := modifierFromName(m)
		if !ok {
			return KeyPattern{}, kberrors.NewParseError(kberrors.ErrUnknownModifier, m)
		}
		mods |= flag
	}

	identity, err := parseKeyIdentity(keyPart)
	if err != nil {
		return KeyPattern{}, err
	}
	return KeyPattern{Identity: identity, Modifiers: mods}, nil
}
