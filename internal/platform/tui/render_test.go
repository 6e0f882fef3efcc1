package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/core"
)

func TestRenderPlainScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	if got, want := RenderScreen(s), "ab  \n cd "; got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}

func TestPaletteCachesStylePerRun(t *testing.T) {
	p := NewPalette(lipgloss.NewRenderer(&strings.Builder{}))

	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "♥♥", core.ColorBrightRed)
	s.Invert(core.NewRect(4, 0, 2, 1))

	out := p.Render(s)
	if strings.Count(out, "♥") != 2 {
		t.Errorf("glyphs lost: %q", out)
	}
	if len(p.styles) != 2 {
		t.Errorf("cached %d styles, want 2 (red, reverse)", len(p.styles))
	}

	p.Render(s)
	if len(p.styles) != 2 {
		t.Errorf("second render added styles: %d", len(p.styles))
	}
}
