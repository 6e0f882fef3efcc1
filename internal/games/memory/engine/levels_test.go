package engine

import (
	"errors"
	"testing"
)

func TestResolveDefaultTiers(t *testing.T) {
	table, err := NewLevelTable(DefaultTiers())
	if err != nil {
		t.Fatalf("NewLevelTable: %v", err)
	}

	tests := []struct {
		level int
		want  Tier
	}{
		{1, Tier{Rows: 2, Cols: 2, Pairs: 2, TimeLimit: 20}},
		{2, Tier{Rows: 2, Cols: 4, Pairs: 4, TimeLimit: 60}},
		{3, Tier{Rows: 4, Cols: 4, Pairs: 8, TimeLimit: 120}},
		{4, Tier{Rows: 4, Cols: 4, Pairs: 8, TimeLimit: 120}},
		{99, Tier{Rows: 4, Cols: 4, Pairs: 8, TimeLimit: 120}},
	}

	for _, tt := range tests {
		got, err := table.Resolve(tt.level)
		if err != nil {
			t.Errorf("Resolve(%d) error: %v", tt.level, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.level, got, tt.want)
		}
		if got.Cells() != 2*got.Pairs {
			t.Errorf("Resolve(%d): %d cells for %d pairs", tt.level, got.Cells(), got.Pairs)
		}
	}
}

func TestResolveInvalidLevel(t *testing.T) {
	table, _ := NewLevelTable(DefaultTiers())
	for _, level := range []int{0, -1, -100} {
		if _, err := table.Resolve(level); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("Resolve(%d) error = %v, want ErrInvalidLevel", level, err)
		}
	}
}

func TestNewLevelTableRejects(t *testing.T) {
	tests := []struct {
		name  string
		tiers []Tier
		want  error
	}{
		{"empty", nil, ErrInvalidConfig},
		{"zero rows", []Tier{{Rows: 0, Cols: 2, Pairs: 1, TimeLimit: 10}}, ErrInvalidConfig},
		{"zero time", []Tier{{Rows: 2, Cols: 2, Pairs: 2, TimeLimit: 0}}, ErrInvalidConfig},
		{"odd cells", []Tier{{Rows: 3, Cols: 3, Pairs: 4, TimeLimit: 10}}, ErrSizeMismatch},
		{"too many pairs", []Tier{{Rows: 2, Cols: 2, Pairs: 3, TimeLimit: 10}}, ErrSizeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLevelTable(tt.tiers); !errors.Is(err, tt.want) {
				t.Errorf("NewLevelTable error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLevelTableOwnsTiers(t *testing.T) {
	tiers := DefaultTiers()
	table, _ := NewLevelTable(tiers)
	tiers[0].TimeLimit = 1

	got, _ := table.Resolve(1)
	if got.TimeLimit != 20 {
		t.Errorf("table aliased caller slice: time limit %d", got.TimeLimit)
	}
}
