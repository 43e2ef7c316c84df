package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-floodfill/internal/core"
)

func withTrueColor(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestRenderScreenPlainText(t *testing.T) {
	withTrueColor(t)

	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score: 993")
	s.FillRect(core.NewRect(2, 1, 4, 2), core.RGB(255, 0, 0))
	s.SetCell(3, 2, core.Cell{Rune: '◆', FG: core.RGB(255, 255, 255), BG: core.RGB(255, 0, 0)})

	out := RenderScreen(s)
	if got := ansi.Strip(out); got != s.String() {
		t.Errorf("stripped output differs from screen text:\n%q\n%q", got, s.String())
	}
}

func TestRenderScreenColors(t *testing.T) {
	withTrueColor(t)

	s := core.NewScreen(6, 1)
	s.FillRect(core.NewRect(0, 0, 3, 1), core.RGB(255, 0, 0))
	s.FillRect(core.NewRect(3, 0, 3, 1), core.RGB(0, 0, 255))

	out := RenderScreen(s)
	if !strings.Contains(out, "48;2;255;0;0") {
		t.Errorf("red background missing from %q", out)
	}
	if !strings.Contains(out, "48;2;0;0;255") {
		t.Errorf("blue background missing from %q", out)
	}
	// Runs are grouped: one red and one blue sequence
	if n := strings.Count(out, "48;2;"); n != 2 {
		t.Errorf("got %d background sequences, want 2", n)
	}
}

func TestRenderScreenDefaultColorsUnstyled(t *testing.T) {
	withTrueColor(t)

	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	if out := RenderScreen(s); out != "hello\n     " {
		t.Errorf("RenderScreen() = %q, want plain text", out)
	}
}
