package tui

import (
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		in   core.Color
		want lipgloss.TerminalColor
	}{
		{"", lipgloss.NoColor{}},
		{"red", lipgloss.Color("1")},
		{" Orange ", lipgloss.Color("208")},
		{"#ff3366", lipgloss.Color("#ff3366")},
		{"42", lipgloss.Color("42")},
	}

	for _, tt := range tests {
		if got := resolveColor(tt.in); got != tt.want {
			t.Errorf("resolveColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorNames(t *testing.T) {
	names := ColorNames()

	if !sort.StringsAreSorted(names) {
		t.Error("names should be sorted")
	}
	if len(names) != len(namedColors) {
		t.Errorf("got %d names, want %d", len(names), len(namedColors))
	}
}

func TestPainterPlainProfile(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	p := NewPainter(r)

	s := core.NewScreen(10, 2)
	s.DrawColoredText(1, 0, "ab", core.Color("red"))
	s.DrawText(4, 1, "cd")

	if got, want := p.Paint(s), s.String(); got != want {
		t.Errorf("Paint = %q, want %q", got, want)
	}
}

func TestPainterColored(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	p := NewPainter(r)

	s := core.NewScreen(6, 1)
	s.DrawColoredText(0, 0, "xyz", core.Color("red"))

	out := p.Paint(s)
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected escape sequences, got %q", out)
	}
	if !strings.Contains(out, "xyz") {
		t.Errorf("colored run should be rendered as one span, got %q", out)
	}
	if !strings.HasSuffix(out, "   ") {
		t.Errorf("default cells should stay plain, got %q", out)
	}
}
