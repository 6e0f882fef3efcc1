package memory

import "github.com/vovakirdan/tui-memory/internal/core"

const (
	cardW     = 7 // Card width including its border
	cardH     = 3 // Card height including its border
	cardGapX  = 2
	cardGapY  = 1
	hudHeight = 3 // Title, status line and a blank row above the board
	footerH   = 2 // Status message below the board

	// hudMinW fits "Level 99/99", "Pairs 99/99" and "Time 999s" with gaps.
	hudMinW = 11 + 11 + 9 + 4
)

// layout maps board cells to screen rectangles.
type layout struct {
	board    core.Rect
	hud      core.Rect // Level, pairs and clock row; never narrower than hudMinW
	cards    []core.Rect
	tooSmall bool
	minW     int
	minH     int
}

// computeLayout centers a rows x cols grid of cards below the HUD.
func computeLayout(screenW, screenH, rows, cols int) layout {
	boardW := cols*cardW + (cols-1)*cardGapX
	boardH := rows*cardH + (rows-1)*cardGapY

	hudW := core.Max(boardW, hudMinW)

	l := layout{
		minW: hudW + 2,
		minH: hudHeight + boardH + footerH,
	}
	if screenW < l.minW || screenH < l.minH {
		l.tooSmall = true
		return l
	}

	x0 := (screenW - boardW) / 2
	y0 := hudHeight + (screenH-l.minH)/2
	l.board = core.NewRect(x0, y0, boardW, boardH)
	l.hud = core.NewRect((screenW-hudW)/2, 1, hudW, 1)

	l.cards = make([]core.Rect, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			l.cards = append(l.cards, core.NewRect(
				x0+c*(cardW+cardGapX),
				y0+r*(cardH+cardGapY),
				cardW, cardH,
			))
		}
	}
	return l
}

// cardAt returns the card under screen position (x, y).
func (l layout) cardAt(x, y int) (int, bool) {
	if !l.board.Contains(x, y) {
		return 0, false
	}
	for i, r := range l.cards {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

func (g *Game) relayout() {
	b := g.ctrl.Board()
	g.layout = computeLayout(g.screenW, g.screenH, b.Rows(), b.Cols())
}
