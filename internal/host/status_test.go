package host

import "testing"

func TestStatusLineEmptyByDefault(t *testing.T) {
	var s StatusLine
	if s.String() != "" {
		t.Fatalf("expected empty string, got %q", s.String())
	}
}

func TestStatusLineLevels(t *testing.T) {
	tests := []struct {
		name   string
		set    func(*StatusLine)
		prefix string
	}{
		{"info", func(s *StatusLine) { s.SetInfo("reloaded") }, "Info: "},
		{"warning", func(s *StatusLine) { s.SetWarning("no clipboard") }, "Warning: "},
		{"error", func(s *StatusLine) { s.SetError("save failed") }, "Error: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StatusLine
			tt.set(&s)
			rendered := s.String()
			if rendered == "" {
				t.Fatal("expected a non-empty rendered status")
			}
			if !containsPrefix(rendered, tt.prefix) {
				t.Fatalf("expected rendered status to contain prefix %q, got %q", tt.prefix, rendered)
			}
		})
	}
}

func TestStatusLineClear(t *testing.T) {
	var s StatusLine
	s.SetError("boom")
	s.Clear()
	if s.String() != "" {
		t.Fatalf("expected Clear to empty the status, got %q", s.String())
	}
}

// containsPrefix checks for prefix anywhere in s, since lipgloss wraps the
// rendered text in ANSI escapes that precede the literal prefix text.
func containsPrefix(s, prefix string) bool {
	for i := 0; i+len(prefix) <= len(s); i++ {
		if s[i:i+len(prefix)] == prefix {
			return true
		}
	}
	return false
}
