package engine

import (
	"errors"
	"testing"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(2, 2, []Identity{0, 1, 0, 1})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func TestNewBoardSizeMismatch(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		ids        []Identity
	}{
		{"too few", 2, 2, []Identity{0, 0}},
		{"too many", 2, 2, []Identity{0, 0, 1, 1, 2, 2}},
		{"zero rows", 0, 2, nil},
		{"negative cols", 2, -2, []Identity{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBoard(tt.rows, tt.cols, tt.ids); !errors.Is(err, ErrSizeMismatch) {
				t.Errorf("NewBoard error = %v, want ErrSizeMismatch", err)
			}
		})
	}
}

func TestBoardLayoutRowMajor(t *testing.T) {
	b, err := NewBoard(2, 4, []Identity{0, 1, 2, 3, 3, 2, 1, 0})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if b.Rows() != 2 || b.Cols() != 4 || b.Len() != 8 {
		t.Fatalf("shape = %dx%d (%d)", b.Rows(), b.Cols(), b.Len())
	}
	if i := b.Index(1, 2); i != 6 {
		t.Errorf("Index(1,2) = %d, want 6", i)
	}
	if id := b.CellAt(b.Index(1, 0)).Identity; id != 3 {
		t.Errorf("cell (1,0) = %d, want 3", id)
	}
	for _, c := range b.Cells() {
		if c.Revealed || c.Matched {
			t.Errorf("new cell %+v not face down", c)
		}
	}
}

func TestBoardRevealHide(t *testing.T) {
	b := newTestBoard(t)
	b.Reveal(0)
	b.Reveal(0)
	if !b.CellAt(0).Revealed {
		t.Fatal("cell 0 not revealed")
	}
	if err := b.Hide(0); err != nil {
		t.Fatalf("Hide: %v", err)
	}
	if b.CellAt(0).Revealed {
		t.Error("cell 0 still revealed after hide")
	}
}

func TestBoardMatched(t *testing.T) {
	b := newTestBoard(t)
	b.Reveal(0)
	b.Reveal(2)
	b.MarkMatched(0, 2)

	if b.MatchedPairs() != 1 {
		t.Errorf("MatchedPairs = %d, want 1", b.MatchedPairs())
	}
	if b.AllMatched() {
		t.Error("AllMatched with one pair left")
	}
	if err := b.Hide(0); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Hide(matched) error = %v, want ErrInvalidOperation", err)
	}
	if !b.CellAt(0).Revealed {
		t.Error("matched cell turned face down")
	}

	b.Reveal(1)
	b.Reveal(3)
	b.MarkMatched(1, 3)
	if !b.AllMatched() {
		t.Error("AllMatched = false after every pair found")
	}
}

func TestBoardMarkMatchedPanics(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board)
		i, j  int
	}{
		{"same cell", func(b *Board) { b.Reveal(0) }, 0, 0},
		{"face down", func(b *Board) { b.Reveal(0) }, 0, 2},
		{"different identity", func(b *Board) { b.Reveal(0); b.Reveal(1) }, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t)
			tt.setup(b)
			defer func() {
				if recover() == nil {
					t.Error("MarkMatched did not panic")
				}
			}()
			b.MarkMatched(tt.i, tt.j)
		})
	}
}

func TestBoardCellsIsCopy(t *testing.T) {
	b := newTestBoard(t)
	cells := b.Cells()
	cells[0].Revealed = true
	if b.CellAt(0).Revealed {
		t.Error("Cells() aliases board storage")
	}
}
