package engine

import "fmt"

// Cell is one board position. A matched cell is always revealed.
type Cell struct {
	Identity Identity
	Revealed bool
	Matched  bool
}

// Board holds the cells of one level in row-major order.
// It has no notion of selection or time.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard lays the shuffled identities out row-major on a rows x cols grid.
func NewBoard(rows, cols int, ids []Identity) (*Board, error) {
	if rows <= 0 || cols <= 0 || rows*cols != len(ids) {
		return nil, fmt.Errorf("%w: %dx%d board for %d cards", ErrSizeMismatch, rows, cols, len(ids))
	}

	cells := make([]Cell, len(ids))
	for i, id := range ids {
		cells[i] = Cell{Identity: id}
	}
	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Len returns the number of cells.
func (b *Board) Len() int { return len(b.cells) }

// Index converts a (row, col) position to a cell index.
func (b *Board) Index(row, col int) int {
	return row*b.cols + col
}

// InBounds reports whether index addresses a cell.
func (b *Board) InBounds(index int) bool {
	return index >= 0 && index < len(b.cells)
}

// CellAt returns a copy of the cell at index.
func (b *Board) CellAt(index int) Cell {
	return b.cells[index]
}

// Reveal turns the cell face up. Revealing a face-up cell does nothing.
func (b *Board) Reveal(index int) {
	b.cells[index].Revealed = true
}

// Hide turns the cell face down. Matched cells stay face up for good.
func (b *Board) Hide(index int) error {
	if b.cells[index].Matched {
		return fmt.Errorf("%w: hide matched cell %d", ErrInvalidOperation, index)
	}
	b.cells[index].Revealed = false
	return nil
}

// MarkMatched marks both cells as a found pair. Both must be face up and
// carry the same identity; anything else is a logic error in the caller.
func (b *Board) MarkMatched(i, j int) {
	a, c := b.cells[i], b.cells[j]
	if i == j || !a.Revealed || !c.Revealed || a.Identity != c.Identity {
		panic(fmt.Sprintf("engine: cannot match cells %d (%+v) and %d (%+v)", i, a, j, c))
	}
	b.cells[i].Matched = true
	b.cells[j].Matched = true
}

// AllMatched reports whether every pair on the board has been found.
func (b *Board) AllMatched() bool {
	for _, c := range b.cells {
		if !c.Matched {
			return false
		}
	}
	return true
}

// MatchedPairs returns the number of pairs found so far.
func (b *Board) MatchedPairs() int {
	n := 0
	for _, c := range b.cells {
		if c.Matched {
			n++
		}
	}
	return n / 2
}

// Cells returns a copy of all cells in row-major order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}
