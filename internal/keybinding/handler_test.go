package keybinding

import (
	"testing"
	"time"
)

func newTestHandler(t *testing.T, catalog *BindingCatalog, timeout time.Duration) (*InputHandler, *time.Time) {
	t.Helper()
	clock := time.Now()
	h := NewInputHandler(catalog, WithTimeout(timeout))
	h.now = func() time.Time { return clock }
	return h, &clock
}

func TestProcessKeyEventMatched(t *testing.T) {
	c := NewBindingCatalog()
	_ = c.Register(NewKeyBinding(mustSeq(t, "Ctrl+S"), CommandSave, Global(), PriorityDefault))
	h, _ := newTestHandler(t, c, DefaultTimeout)

	p, _ := parsePattern("Ctrl+S")
	outcome := h.ProcessKeyEvent(p, ModeInsert)
	if outcome.Kind != Matched || outcome.Command != CommandSave {
		t.Fatalf("expected Matched(Save), got %+v", outcome)
	}
	if len(h.Buffer()) != 0 {
		t.Fatal("buffer must be empty after Matched")
	}
}

func TestProcessKeyEventGlobalExcludesPrompt(t *testing.T) {
	c := NewBindingCatalog()
	_ = c.Register(NewKeyBinding(mustSeq(t, "Ctrl+S"), CommandSave, Global(), PriorityDefault))
	h, _ := newTestHandler(t, c, DefaultTimeout)

	p, _ := parsePattern("Ctrl+S")
	outcome := h.ProcessKeyEvent(p, ModePrompt)
	if outcome.Kind != NoMatch {
		t.Fatalf("expected NoMatch in Prompt, got %+v", outcome)
	}
}

func TestMultiKeyCompletionWithinTimeout(t *testing.T) {
	c := NewBindingCatalog()
	_ = c.Register(NewKeyBinding(mustSeq(t, "d d"), CommandDeleteCharBackward, InMode(ModeNormal), PriorityDefault))
	h, clock := newTestHandler(t, c, 200*time.Millisecond)

	d, _ := parsePattern("d")

	first := h.ProcessKeyEvent(d, ModeNormal)
	if first.Kind != Partial {
		t.Fatalf("expected Partial after first 'd', got %+v", first)
	}
	if len(h.Buffer()) != 1 {
		t.Fatal("expected buffer to hold the partial sequence")
	}

	*clock = clock.Add(150 * time.Millisecond)
	second := h.ProcessKeyEvent(d, ModeNormal)
	if second.Kind != Matched || second.Command != CommandDeleteCharBackward {
		t.Fatalf("expected Matched(DeleteChar), got %+v", second)
	}
}

func TestMultiKeyTimeout(t *testing.T) {
	c := NewBindingCatalog()
	_ = c.Register(NewKeyBinding(mustSeq(t, "d d"), CommandDeleteCharBackward, InMode(ModeNormal), PriorityDefault))
	h, clock := newTestHandler(t, c, 200*time.Millisecond)

	d, _ := parsePattern("d")
	h.ProcessKeyEvent(d, ModeNormal)

	*clock = clock.Add(250 * time.Millisecond)
	if !h.CheckTimeout() {
		t.Fatal("expected CheckTimeout to report expiry")
	}
	if len(h.Buffer()) != 0 {
		t.Fatal("expected buffer cleared after timeout")
	}

	next := h.ProcessKeyEvent(d, ModeNormal)
	if next.Kind != Partial {
		t.Fatalf("expected fresh Partial after timeout reset, got %+v", next)
	}
}

func TestCheckTimeoutNoOpWhenEmpty(t *testing.T) {
	c := NewBindingCatalog()
	h, clock := newTestHandler(t, c, 200*time.Millisecond)
	*clock = clock.Add(time.Hour)
	if h.CheckTimeout() {
		t.Fatal("CheckTimeout must not report expiry on an empty buffer")
	}
}

func TestOnModeChangeDropsPartialBuffer(t *testing.T) {
	c := NewBindingCatalog()
	_ = c.Register(NewKeyBinding(mustSeq(t, "d d"), CommandDeleteCharBackward, InMode(ModeNormal), PriorityDefault))
	h, _ := newTestHandler(t, c, DefaultTimeout)

	d, _ := parsePattern("d")
	h.ProcessKeyEvent(d, ModeNormal)
	h.OnModeChange()

	if len(h.Buffer()) != 0 {
		t.Fatal("expected buffer cleared on mode change")
	}

	outcome := h.ProcessKeyEvent(d, ModeInsert)
	if outcome.Kind == Matched {
		t.Fatal("no cross-mode bleed: continuation after mode change must not resolve to Matched")
	}
}

func TestOnModeChangeIdempotent(t *testing.T) {
	c := NewBindingCatalog()
	h, _ := newTestHandler(t, c, DefaultTimeout)
	h.OnModeChange()
	h.OnModeChange()
	if len(h.Buffer()) != 0 {
		t.Fatal("expected empty buffer")
	}
}
