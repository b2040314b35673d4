package keybinding

import (
	"strings"

	kberrors "github.com/Iron-Ham/claudio/internal/errors"
)

// KeySequence is a non-empty ordered sequence of KeyPattern. A sequence of
// length 1 is atomic; longer sequences are multi-key. There is no
// representation for the empty sequence.
type KeySequence []KeyPattern

// IsAtomic reports whether the sequence is a single keystroke.
func (s KeySequence) IsAtomic() bool {
	return len(s) == 1
}

// Equal reports whether two sequences have the same length and identical
// patterns at every position.
func (s KeySequence) Equal(other KeySequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is a strict prefix of s (shorter than s,
// and equal pattern-for-pattern over its own length).
func (s KeySequence) HasPrefix(prefix KeySequence) bool {
	if len(prefix) >= len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

// String renders the sequence in canonical form, patterns separated by a
// single space, e.g. "g d" or "Ctrl+S".
func (s KeySequence) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// ParseSequence parses a whitespace-separated sequence of patterns, e.g.
// "Ctrl+S" or "g d". An empty (or all-whitespace) input is classified as
// ErrEmptyInput; any parseable pattern's error propagates unchanged.
func ParseSequence(s string) (KeySequence, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, kberrors.NewParseError(kberrors.ErrEmptyInput, s)
	}

	seq := make(KeySequence, 0, len(fields))
	for _, field := range fields {
		pattern, err := parsePattern(field)
		if err != nil {
			return nil, err
		}
		seq = append(seq, pattern)
	}
	return seq, nil
}
