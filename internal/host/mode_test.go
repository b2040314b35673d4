package host

import (
	"testing"

	"github.com/Iron-Ham/claudio/internal/keybinding"
)

func TestModeHolderStartsInNormal(t *testing.T) {
	catalog := keybinding.NewBindingCatalog()
	handler := keybinding.NewInputHandler(catalog)
	mode := NewModeHolder(handler)

	if mode.Current() != keybinding.ModeNormal {
		t.Fatalf("expected boot mode Normal, got %v", mode.Current())
	}
}

func TestModeHolderTransitionClearsBuffer(t *testing.T) {
	catalog := keybinding.NewBindingCatalog()
	seq, _ := keybinding.ParseSequence("g g")
	binding := keybinding.NewKeyBinding(seq, keybinding.CommandLineHome, keybinding.Global(), keybinding.PriorityDefault)
	if err := catalog.Register(binding); err != nil {
		t.Fatalf("Register: %v", err)
	}
	handler := keybinding.NewInputHandler(catalog)
	mode := NewModeHolder(handler)

	handler.ProcessKeyEvent(seq[0], keybinding.ModeNormal)
	if len(handler.Buffer()) == 0 {
		t.Fatal("test setup: expected a partial sequence in flight")
	}

	mode.TransitionTo(keybinding.ModeInsert)

	if mode.Current() != keybinding.ModeInsert {
		t.Fatalf("expected mode Insert, got %v", mode.Current())
	}
	if len(handler.Buffer()) != 0 {
		t.Fatal("expected TransitionTo to drop the in-flight sequence")
	}
}

func TestModeHolderTransitionToSameModeIsIdempotent(t *testing.T) {
	catalog := keybinding.NewBindingCatalog()
	handler := keybinding.NewInputHandler(catalog)
	mode := NewModeHolder(handler)

	mode.TransitionTo(keybinding.ModeNormal)
	mode.TransitionTo(keybinding.ModeNormal)

	if mode.Current() != keybinding.ModeNormal {
		t.Fatalf("expected mode to remain Normal, got %v", mode.Current())
	}
}
