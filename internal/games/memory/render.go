package memory

import (
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)

	switch g.dialog {
	case DialogTimeUp:
		g.renderDialog(dst, "Time's Up!", "The clock ran out. Back to level 1.", core.ColorBrightRed)
	case DialogVictory:
		g.renderDialog(dst, "Congratulations!", "You cleared every level.", core.ColorBrightGreen)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", g.layout.minW, g.layout.minH, dst.Width(), dst.Height()), core.ColorGray)
}

// renderHUD draws the title and the level, clock and pair counters.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "MEMORY MATCH", core.ColorBrightCyan)

	b := g.ctrl.Board()
	level := fmt.Sprintf("Level %d/%d", g.ctrl.Level(), g.ctrl.FinalLevel())
	pairs := fmt.Sprintf("Pairs %d/%d", b.MatchedPairs(), b.Len()/2)
	clock := fmt.Sprintf("Time %3ds", g.ctrl.TimeLeft())

	hud := g.layout.hud
	dst.DrawTextColored(hud.X, hud.Y, level, core.ColorWhite)
	dst.DrawTextColored(hud.X+(hud.W-len(pairs))/2, hud.Y, pairs, core.ColorWhite)
	dst.DrawTextColored(hud.Right()-len(clock), hud.Y, clock, g.clockColor())
}

func (g *Game) clockColor() core.Color {
	switch left := g.ctrl.TimeLeft(); {
	case !g.ctrl.TimerStarted():
		return core.ColorGray
	case left <= 5:
		return core.ColorBrightRed
	case left <= 10:
		return core.ColorYellow
	default:
		return core.ColorBrightGreen
	}
}

// renderBoard draws every card and highlights the one under the cursor.
func (g *Game) renderBoard(dst *core.Screen) {
	b := g.ctrl.Board()
	for i, r := range g.layout.cards {
		if !b.InBounds(i) {
			break
		}
		drawCard(dst, r, b.CellAt(i))
	}

	if g.dialog == DialogNone && g.cursor < len(g.layout.cards) {
		dst.Invert(g.layout.cards[g.cursor].Inset(1))
	}
}

func drawCard(dst *core.Screen, r core.Rect, c engine.Cell) {
	cx, cy := r.Center()
	switch {
	case c.Matched:
		f := faceFor(c.Identity)
		dst.DrawBox(r, core.BoxLight, core.ColorGray)
		dst.SetColored(cx, cy, f.glyph, f.color)
	case c.Revealed:
		f := faceFor(c.Identity)
		dst.DrawBox(r, core.BoxHeavy, f.color)
		dst.SetColored(cx, cy, f.glyph, f.color)
	default:
		dst.DrawBox(r, core.BoxLight, core.ColorBlue)
		dst.DrawRect(r.Inset(1), '░', core.ColorBlue)
	}
}

// renderFooter draws the last status message.
func (g *Game) renderFooter(dst *core.Screen) {
	y := g.layout.board.Bottom() + 1
	dst.DrawTextCentered(y, g.status, core.ColorGray)
}

// renderDialog draws a centered modal box over the board.
func (g *Game) renderDialog(dst *core.Screen, title, body string, c core.Color) {
	hint := "Press Enter to continue"
	w := core.Max(len(body), len(hint)) + 6
	w = core.Max(w, len([]rune(title))+6)
	h := 7

	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	box := core.NewRect(x, y, w, h)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.BoxDouble, c)
	dst.DrawTextCentered(y+1, title, c)
	dst.DrawTextCentered(y+3, body, core.ColorWhite)
	dst.DrawTextCentered(y+5, hint, core.ColorGray)
}
