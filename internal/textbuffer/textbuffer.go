// Package textbuffer is a minimal line-based stand-in for the rope text
// buffer spec.md §1 places out of scope ("the rope-based text buffer and
// its cursor/selection primitives ... these are competent but largely
// conventional; the spec names only the interfaces the core consumes from
// them"). It exists only so cmd/termide has something concrete to run the
// keybinding engine against; it is not the buffer a production editor would
// ship.
package textbuffer

import (
	"os"
	"strings"

	"github.com/Iron-Ham/claudio/internal/host"
)

// Buffer is a minimal, unselecting line buffer satisfying host.TextBuffer.
type Buffer struct {
	path string
	line []rune
	col  int
	row  int
	done []string // committed lines above row
	rest []string // lines below row
}

// New loads path if it exists, or starts empty if it doesn't (spec.md §6:
// "one arg -> open or create that path").
func New(path string) (*Buffer, error) {
	b := &Buffer{path: path}
	if path == "" {
		return b, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 {
		b.line = []rune(lines[0])
		b.rest = lines[1:]
	}
	return b, nil
}

var _ host.TextBuffer = (*Buffer)(nil)

func (b *Buffer) InsertChar(r rune) {
	b.line = append(b.line[:b.col], append([]rune{r}, b.line[b.col:]...)...)
	b.col++
}

func (b *Buffer) InsertTab() {
	for _, r := range "\t" {
		b.InsertChar(r)
	}
}

func (b *Buffer) InsertNewline() {
	tail := append([]rune(nil), b.line[b.col:]...)
	head := append([]rune(nil), b.line[:b.col]...)

	b.done = append(b.done, string(head))
	b.line = tail
	b.col = 0
	b.row++
}

func (b *Buffer) DeleteForward() {
	if b.col < len(b.line) {
		b.line = append(b.line[:b.col], b.line[b.col+1:]...)
		return
	}
	if len(b.rest) > 0 {
		b.line = append(b.line, []rune(b.rest[0])...)
		b.rest = b.rest[1:]
	}
}

func (b *Buffer) DeleteBackward() {
	if b.col > 0 {
		b.line = append(b.line[:b.col-1], b.line[b.col:]...)
		b.col--
		return
	}
	if len(b.done) > 0 {
		prev := []rune(b.done[len(b.done)-1])
		b.done = b.done[:len(b.done)-1]
		b.col = len(prev)
		b.line = append(prev, b.line...)
		b.row--
	}
}

func (b *Buffer) MoveCursor(dir host.Direction) {
	switch dir {
	case host.DirLeft:
		if b.col > 0 {
			b.col--
		} else if len(b.done) > 0 {
			b.popLineUp()
		}
	case host.DirRight:
		if b.col < len(b.line) {
			b.col++
		} else if len(b.rest) > 0 {
			b.pushLineDown()
		}
	case host.DirUp:
		if len(b.done) > 0 {
			b.popLineUp()
		}
	case host.DirDown:
		if len(b.rest) > 0 {
			b.pushLineDown()
		}
	}
}

func (b *Buffer) popLineUp() {
	prev := []rune(b.done[len(b.done)-1])
	b.done = b.done[:len(b.done)-1]
	b.rest = append([]string{string(b.line)}, b.rest...)
	b.line = prev
	if b.col > len(b.line) {
		b.col = len(b.line)
	}
	b.row--
}

func (b *Buffer) pushLineDown() {
	next := []rune(b.rest[0])
	b.rest = b.rest[1:]
	b.done = append(b.done, string(b.line))
	b.line = next
	if b.col > len(b.line) {
		b.col = len(b.line)
	}
	b.row++
}

func (b *Buffer) LineHome() { b.col = 0 }
func (b *Buffer) LineEnd()  { b.col = len(b.line) }

func (b *Buffer) PageUp() {
	for i := 0; i < 20 && len(b.done) > 0; i++ {
		b.popLineUp()
	}
}

func (b *Buffer) PageDown() {
	for i := 0; i < 20 && len(b.rest) > 0; i++ {
		b.pushLineDown()
	}
}

// Select moves the cursor in dir without recording a selection: selection
// state belongs to the rope buffer's out-of-scope cursor/selection
// primitives.
func (b *Buffer) Select(dir host.Direction) { b.MoveCursor(dir) }

// SelectAll is a no-op placeholder.
func (b *Buffer) SelectAll() {}

// Save writes the buffer to its path. A buffer opened with an empty path
// (no CLI argument) has nothing to save to.
func (b *Buffer) Save() error {
	if b.path == "" {
		return nil
	}
	lines := make([]string, 0, len(b.done)+1+len(b.rest))
	lines = append(lines, b.done...)
	lines = append(lines, string(b.line))
	lines = append(lines, b.rest...)
	return os.WriteFile(b.path, []byte(strings.Join(lines, "\n")), 0o644)
}
