package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestInjectBackground(t *testing.T) {
	bg := "\x1b[48;2;1;2;3m"
	got := InjectBackground("hello", bg)

	if !strings.HasPrefix(got, bg) {
		t.Errorf("background not prepended: %q", got)
	}
	if !strings.HasSuffix(got, "\x1b[0m") {
		t.Errorf("missing trailing reset: %q", got)
	}
	if ansi.Strip(got) != "hello" {
		t.Errorf("visible text changed: %q", ansi.Strip(got))
	}
}

func TestInjectBackground_ReinjectsAfterReset(t *testing.T) {
	bg := "\x1b[48;2;1;2;3m"
	in := "a\x1b[0mb"
	got := InjectBackground(in, bg)

	// The reset in the middle must be followed by the background again so
	// "b" stays painted.
	if !strings.Contains(got, "\x1b[0m"+bg) {
		t.Errorf("background not re-injected after reset: %q", got)
	}
}

func TestInjectRangeBackground(t *testing.T) {
	bg := "\x1b[48;2;9;9;9m"
	got := InjectRangeBackground("hello world", 6, 10, bg)

	if !strings.Contains(got, bg) {
		t.Errorf("background missing: %q", got)
	}
	if !strings.Contains(got, "\x1b[49m") {
		t.Errorf("background-only reset missing: %q", got)
	}
	if ansi.Strip(got) != "hello world" {
		t.Errorf("visible text changed: %q", ansi.Strip(got))
	}
	// Painting starts at the "w", not before.
	idx := strings.Index(got, bg)
	if !strings.HasPrefix(got[idx+len(bg):], "world") {
		t.Errorf("background does not start at column 6: %q", got)
	}
}

func TestInjectRangeBackground_EmptyLine(t *testing.T) {
	if got := InjectRangeBackground("", 0, 5, "\x1b[48;2;9;9;9m"); got != "" {
		t.Errorf("empty line: got %q", got)
	}
}

func TestInjectRangeBackground_PreservesForeground(t *testing.T) {
	bg := "\x1b[48;2;9;9;9m"
	in := "\x1b[31mred text here\x1b[0m"
	got := InjectRangeBackground(in, 4, 7, bg)

	if ansi.Strip(got) != "red text here" {
		t.Errorf("visible text changed: %q", ansi.Strip(got))
	}
	if !strings.Contains(got, "\x1b[31m") {
		t.Errorf("foreground sequence lost: %q", got)
	}
}

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		w    int
		want int
	}{
		{"pad short", "abc", 10, 10},
		{"exact", "abcde", 5, 5},
		{"truncate long", "abcdefgh", 4, 4},
		{"styled", "\x1b[31mab\x1b[0m", 6, 6},
	}

	for _, tt := range tests {
		got := PadToWidth(tt.in, tt.w)
		if ansi.StringWidth(got) != tt.want {
			t.Errorf("%s: width = %d, want %d", tt.name, ansi.StringWidth(got), tt.want)
		}
	}
}

func TestPaintSelection_SegmentsCover(t *testing.T) {
	row := PadToWidth("some span data here", 40)
	got := PaintSelection(row, 0, 40, 10, 20)

	if ansi.Strip(got) != row {
		t.Errorf("visible text changed: %q", ansi.Strip(got))
	}
	if !strings.Contains(got, SelectionBgANSI()) {
		t.Error("selection background missing")
	}
	if !strings.Contains(got, DimBgANSI()) {
		t.Error("dim background missing")
	}
}

func TestPaintSelection_FullWidthSelection(t *testing.T) {
	row := PadToWidth("x", 10)
	got := PaintSelection(row, 0, 10, 0, 10)

	if strings.Contains(got, DimBgANSI()) {
		t.Error("full-width selection should have no dim regions")
	}
}

func TestPaintHoverGuide(t *testing.T) {
	row := PadToWidth("abcdef", 10)
	got := PaintHoverGuide(row, 0, 3)

	if !strings.Contains(got, GuideBgANSI()) {
		t.Error("guide background missing")
	}
	if ansi.Strip(got) != row {
		t.Errorf("visible text changed: %q", ansi.Strip(got))
	}

	if got := PaintHoverGuide(row, 5, 2); got != row {
		t.Error("guide left of the container should be a no-op")
	}
}
