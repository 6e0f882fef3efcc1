package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

type styleKey struct {
	color   core.Color
	reverse bool
}

// Palette holds the lipgloss styles for one output. SSH sessions each get
// their own renderer so color detection follows the client's terminal.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style
}

// NewPalette creates a palette bound to a renderer. Nil uses the default renderer.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Palette{renderer: r, styles: make(map[styleKey]lipgloss.Style)}
}

func (p *Palette) style(c core.Cell) lipgloss.Style {
	k := styleKey{color: c.Color, reverse: c.Reverse}
	if s, ok := p.styles[k]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if code, ok := colorCodes[c.Color]; ok {
		s = s.Foreground(lipgloss.Color(code))
	}
	if c.Reverse {
		s = s.Reverse(true)
	}
	p.styles[k] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Reverse != start.Reverse {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Color == core.ColorDefault && !start.Reverse {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders with the default palette.
func RenderScreen(s *core.Screen) string {
	return NewPalette(nil).Render(s)
}
