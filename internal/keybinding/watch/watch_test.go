package watch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var errTest = errors.New("simulated fsnotify failure")

func TestWatcherDetectsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("initial"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := New(path, WithDebounce(MinDebounce))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if w.CheckForChanges() {
		t.Fatal("expected no pending changes before any write")
	}

	if err := os.WriteFile(path, []byte("updated"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if w.CheckForChanges() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("expected CheckForChanges to eventually report the write")
}

func TestWithDebounceClampsToMinimum(t *testing.T) {
	w := &Watcher{}
	WithDebounce(time.Millisecond)(w)
	if w.debounce != MinDebounce {
		t.Fatalf("expected debounce clamped to %v, got %v", MinDebounce, w.debounce)
	}
}

func TestNewErrorsOnMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err == nil {
		t.Fatal("expected an error watching a nonexistent file")
	}
}

func TestErrorsDeliversWatcherFailures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("initial"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := New(path, WithDebounce(MinDebounce))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	select {
	case <-w.Errors():
		t.Fatal("expected no pending errors before any fsnotify failure")
	default:
	}

	w.signalError(errTest)

	select {
	case got := <-w.Errors():
		if got != errTest {
			t.Fatalf("Errors() delivered %v, want %v", got, errTest)
		}
	default:
		t.Fatal("expected Errors() to deliver the queued error")
	}
}
