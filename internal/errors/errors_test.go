package errors

import (
	"errors"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "with offending substring",
			err:  NewParseError(ErrUnknownModifier, "Ctl"),
			want: `unknown modifier: "Ctl"`,
		},
		{
			name: "empty input has no offending substring",
			err:  NewParseError(ErrEmptyInput, ""),
			want: "empty input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseError_Is(t *testing.T) {
	err := NewParseError(ErrUnknownKeyName, "Fzz")

	if !errors.Is(err, ErrUnknownKeyName) {
		t.Error("expected errors.Is to match ErrUnknownKeyName")
	}
	if errors.Is(err, ErrUnknownModifier) {
		t.Error("did not expect errors.Is to match ErrUnknownModifier")
	}
}

func TestCatalogError(t *testing.T) {
	err := NewCatalogError("Ctrl+S", "Global", "User")

	if !errors.Is(err, ErrConflict) {
		t.Error("expected errors.Is to match ErrConflict")
	}
	want := `binding already registered for sequence, context, and priority: sequence="Ctrl+S" context=Global priority=User`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestBuilderError(t *testing.T) {
	err := NewBuilderError("sequence", ErrEmptySequence)

	if !errors.Is(err, ErrEmptySequence) {
		t.Error("expected errors.Is to match ErrEmptySequence")
	}
	want := "plugin binding sequence is empty (field sequence)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
