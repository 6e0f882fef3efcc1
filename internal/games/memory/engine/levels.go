package engine

import (
	"errors"
	"fmt"
)

// Engine errors. They indicate bad input to the engine or a construction bug,
// never a player mistake.
var (
	ErrInvalidLevel     = errors.New("engine: invalid level")
	ErrSizeMismatch     = errors.New("engine: board size mismatch")
	ErrInvalidOperation = errors.New("engine: invalid operation")
	ErrInvalidConfig    = errors.New("engine: invalid config")
)

// Tier is the board shape and time budget shared by one or more levels.
type Tier struct {
	Rows      int
	Cols      int
	Pairs     int
	TimeLimit int // Seconds
}

// Cells returns the number of cells a board of this tier holds.
func (t Tier) Cells() int {
	return t.Rows * t.Cols
}

// DefaultTiers returns the classic three-tier table.
// Levels beyond the last tier keep using it.
func DefaultTiers() []Tier {
	return []Tier{
		{Rows: 2, Cols: 2, Pairs: 2, TimeLimit: 20},
		{Rows: 2, Cols: 4, Pairs: 4, TimeLimit: 60},
		{Rows: 4, Cols: 4, Pairs: 8, TimeLimit: 120},
	}
}

// LevelTable resolves level numbers to tiers.
type LevelTable struct {
	tiers []Tier
}

// NewLevelTable validates the tiers and builds a table from them.
func NewLevelTable(tiers []Tier) (LevelTable, error) {
	if len(tiers) == 0 {
		return LevelTable{}, fmt.Errorf("%w: no tiers", ErrInvalidConfig)
	}
	for i, t := range tiers {
		if t.Rows <= 0 || t.Cols <= 0 || t.Pairs <= 0 || t.TimeLimit <= 0 {
			return LevelTable{}, fmt.Errorf("%w: tier %d has non-positive fields", ErrInvalidConfig, i+1)
		}
		if t.Cells() != 2*t.Pairs {
			return LevelTable{}, fmt.Errorf("%w: tier %d is %dx%d for %d pairs",
				ErrSizeMismatch, i+1, t.Rows, t.Cols, t.Pairs)
		}
	}

	owned := make([]Tier, len(tiers))
	copy(owned, tiers)
	return LevelTable{tiers: owned}, nil
}

// Resolve returns the tier for a level. Levels past the end of the table
// fall through to the last tier.
func (lt LevelTable) Resolve(level int) (Tier, error) {
	if level < 1 {
		return Tier{}, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	if len(lt.tiers) == 0 {
		return Tier{}, fmt.Errorf("%w: empty level table", ErrInvalidConfig)
	}
	if level > len(lt.tiers) {
		level = len(lt.tiers)
	}
	return lt.tiers[level-1], nil
}

// Len returns the number of distinct tiers.
func (lt LevelTable) Len() int {
	return len(lt.tiers)
}
