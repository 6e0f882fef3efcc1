// Package config provides YAML-based game configuration loading,
// difficulty presets and environment-driven runtime settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	FinalLevel int          `yaml:"final_level"`
	Timing     MemoryTiming `yaml:"timing"`
	Levels     []LevelTier  `yaml:"levels"`
}

// MemoryTiming defines the engine's clock.
type MemoryTiming struct {
	TickIntervalMs  int `yaml:"tick_interval_ms"`
	MismatchDelayMs int `yaml:"mismatch_delay_ms"`
}

// LevelTier is one row of the level table.
type LevelTier struct {
	Rows      int `yaml:"rows"`
	Cols      int `yaml:"cols"`
	Pairs     int `yaml:"pairs"`
	TimeLimit int `yaml:"time_limit"` // Seconds
}

// Validate checks the level table and timing.
func (c MemoryConfig) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalid)
	}
	for i, l := range c.Levels {
		if l.Rows <= 0 || l.Cols <= 0 || l.Pairs <= 0 || l.TimeLimit <= 0 {
			return fmt.Errorf("%w: level %d: rows, cols, pairs and time_limit must be positive", ErrInvalid, i+1)
		}
		if l.Rows*l.Cols != 2*l.Pairs {
			return fmt.Errorf("%w: level %d: %dx%d board cannot hold %d pairs", ErrInvalid, i+1, l.Rows, l.Cols, l.Pairs)
		}
	}
	if c.FinalLevel < 1 {
		return fmt.Errorf("%w: final_level %d", ErrInvalid, c.FinalLevel)
	}
	if c.Timing.TickIntervalMs < 0 || c.Timing.MismatchDelayMs < 0 {
		return fmt.Errorf("%w: negative timing", ErrInvalid)
	}
	return nil
}

// Tiers converts the level table into engine tiers.
func (c MemoryConfig) Tiers() []engine.Tier {
	tiers := make([]engine.Tier, len(c.Levels))
	for i, l := range c.Levels {
		tiers[i] = engine.Tier{Rows: l.Rows, Cols: l.Cols, Pairs: l.Pairs, TimeLimit: l.TimeLimit}
	}
	return tiers
}

// TickInterval returns the countdown period. Zero selects the engine default.
func (c MemoryConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMs) * time.Millisecond
}

// MismatchDelay returns how long a mismatched pair stays face up.
func (c MemoryConfig) MismatchDelay() time.Duration {
	return time.Duration(c.Timing.MismatchDelayMs) * time.Millisecond
}

// clone returns a copy that shares no slices with c.
func (c MemoryConfig) clone() MemoryConfig {
	out := c
	out.Levels = append([]LevelTier(nil), c.Levels...)
	return out
}
