package textbuffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Iron-Ham/claudio/internal/host"
)

func TestNewEmptyPathStartsBlank(t *testing.T) {
	b, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Save(); err != nil {
		t.Fatalf("Save with no path should be a no-op, got %v", err)
	}
}

func TestNewLoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("hello\nworld"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	b, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.LineEnd()
	b.InsertChar('!')
	if err := b.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "hello!\nworld" {
		t.Fatalf("expected %q, got %q", "hello!\nworld", string(got))
	}
}

func TestNewCreatesOnMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	b, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	b.InsertChar('h')
	b.InsertChar('i')
	if err := b.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "hi" {
		t.Fatalf("expected %q, got %q", "hi", string(got))
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	b, _ := New("")
	b.InsertChar('a')
	b.InsertChar('b')
	b.col = 1
	b.InsertNewline()
	b.InsertChar('x')

	if len(b.done) != 1 || b.done[0] != "a" {
		t.Fatalf("expected first line committed as %q, got %v", "a", b.done)
	}
	if string(b.line) != "xb" {
		t.Fatalf("expected current line %q, got %q", "xb", string(b.line))
	}
}

func TestDeleteBackwardJoinsLines(t *testing.T) {
	b, _ := New("")
	b.InsertChar('a')
	b.InsertNewline()
	b.InsertChar('b')
	b.col = 0
	b.DeleteBackward()

	if len(b.done) != 0 {
		t.Fatalf("expected the lines rejoined, got done=%v", b.done)
	}
	if string(b.line) != "ab" {
		t.Fatalf("expected %q, got %q", "ab", string(b.line))
	}
}

func TestMoveCursorVerticalNavigation(t *testing.T) {
	b, _ := New("")
	b.InsertChar('a')
	b.InsertNewline()
	b.InsertChar('b')

	b.MoveCursor(host.DirUp)
	if string(b.line) != "a" {
		t.Fatalf("expected to move up onto line %q, got %q", "a", string(b.line))
	}

	b.MoveCursor(host.DirDown)
	if string(b.line) != "b" {
		t.Fatalf("expected to move back down onto line %q, got %q", "b", string(b.line))
	}
}

var _ host.TextBuffer = (*Buffer)(nil)
