package keybinding

import (
	"testing"

	kberrors "github.com/Iron-Ham/claudio/internal/errors"
)

func TestParsePatternSingleChar(t *testing.T) {
	p, err := parsePattern("s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Identity.Kind != KindChar || p.Identity.Char != 's' {
		t.Fatalf("got %+v", p)
	}
	if p.Modifiers != ModNone {
		t.Fatalf("expected no modifiers, got %v", p.Modifiers)
	}
}

func TestParsePatternCasePreserved(t *testing.T) {
	p, err := parsePattern("S")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Identity.Char != 'S' {
		t.Fatalf("expected uppercase S preserved, got %q", p.Identity.Char)
	}
}

func TestParsePatternModifierAliases(t *testing.T) {
	a, err := parsePattern("Ctrl+S")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := parsePattern("Control+S")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("Ctrl and Control should collapse to the same pattern: %+v vs %+v", a, b)
	}

	c, err := parsePattern("Cmd+S")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, err := parsePattern("Command+S")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, err := parsePattern("Super+S")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != d || d != e {
		t.Fatalf("Cmd, Command, Super should collapse: %+v %+v %+v", c, d, e)
	}
}

func TestParsePatternNamedKeyCaseInsensitive(t *testing.T) {
	p, err := parsePattern("pgup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Identity.Kind != KindNamed || p.Identity.Named != NamedPageUp {
		t.Fatalf("got %+v", p)
	}

	p2, err := parsePattern("PageUp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2.Identity.Named != NamedPageUp {
		t.Fatalf("got %+v", p2)
	}
}

func TestParsePatternFuncKey(t *testing.T) {
	p, err := parsePattern("F5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Identity.Kind != KindFunc || p.Identity.Func != 5 {
		t.Fatalf("got %+v", p)
	}

	if _, err := parsePattern("F13"); err == nil {
		t.Fatal("expected F13 to be rejected (out of range)")
	}
}

func TestParsePatternEmptyPattern(t *testing.T) {
	_, err := parsePattern("Ctrl+")
	if !kberrors.Is(err, kberrors.ErrEmptyPattern) {
		t.Fatalf("expected ErrEmptyPattern, got %v", err)
	}
}

func TestParsePatternInvalidFormat(t *testing.T) {
	_, err := parsePattern("Ctrl++S")
	if !kberrors.Is(err, kberrors.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestParsePatternUnknownModifier(t *testing.T) {
	_, err := parsePattern("Ctl+S")
	if !kberrors.Is(err, kberrors.ErrUnknownModifier) {
		t.Fatalf("expected ErrUnknownModifier, got %v", err)
	}
}

func TestParsePatternUnknownKeyName(t *testing.T) {
	_, err := parsePattern("Ctrl+Fzz")
	if !kberrors.Is(err, kberrors.ErrUnknownKeyName) {
		t.Fatalf("expected ErrUnknownKeyName, got %v", err)
	}
}

func TestKeyPatternNoSubsetMatching(t *testing.T) {
	ctrl, _ := parsePattern("Ctrl+S")
	ctrlShift, _ := parsePattern("Ctrl+Shift+S")
	if ctrl == ctrlShift {
		t.Fatal("Ctrl+S and Ctrl+Shift+S must not be equal")
	}
}

func TestKeyPatternString(t *testing.T) {
	p, _ := parsePattern("Ctrl+Shift+S")
	if got, want := p.String(), "Ctrl+Shift+S"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
