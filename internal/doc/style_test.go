package doc_test

import (
	"testing"

	"github.com/prosedown/prosedown/internal/doc"
)

func TestListStyleMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style doc.ListStyle
		n     int
		want  string
	}{
		{"number start", doc.ListStyleNumber, 1, "1"},
		{"number large", doc.ListStyleNumber, 42, "42"},
		{"lower alpha start", doc.ListStyleLowerAlpha, 1, "a"},
		{"lower alpha third", doc.ListStyleLowerAlpha, 3, "c"},
		{"lower alpha last", doc.ListStyleLowerAlpha, 26, "z"},
		{"lower alpha wraps", doc.ListStyleLowerAlpha, 27, "a"},
		{"upper alpha start", doc.ListStyleUpperAlpha, 1, "A"},
		{"upper alpha last", doc.ListStyleUpperAlpha, 26, "Z"},
		{"upper alpha wraps", doc.ListStyleUpperAlpha, 28, "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.style.Marker(tt.n); got != tt.want {
				t.Errorf("Marker(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestAlphaValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		letter byte
		want   int
	}{
		{'a', 1},
		{'z', 26},
		{'A', 1},
		{'Z', 26},
		{'m', 13},
		{'0', 0},
		{'.', 0},
	}

	for _, tt := range tests {
		if got := doc.AlphaValue(tt.letter); got != tt.want {
			t.Errorf("AlphaValue(%q) = %d, want %d", tt.letter, got, tt.want)
		}
	}
}

func TestListStyleValid(t *testing.T) {
	t.Parallel()

	for _, style := range doc.ListStyles() {
		if !style.Valid() {
			t.Errorf("ListStyle %q should be valid", style)
		}
	}

	if doc.ListStyle("roman").Valid() {
		t.Errorf("unknown style should not be valid")
	}
}
