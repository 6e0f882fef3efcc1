package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// minTimeLimit keeps hard levels playable.
const minTimeLimit = 5

// ParseDifficulty converts a flag value into a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// TimeScale returns the factor applied to every time limit.
func (p DifficultyPreset) TimeScale() float64 {
	switch p {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

// ApplyMemoryPreset returns a copy of cfg with time limits scaled by the preset.
// The fixed preset leaves the file's values untouched.
func ApplyMemoryPreset(cfg MemoryConfig, preset DifficultyPreset) MemoryConfig {
	out := cfg.clone()
	if preset == DifficultyFixed {
		return out
	}

	scale := preset.TimeScale()
	for i := range out.Levels {
		limit := int(float64(out.Levels[i].TimeLimit)*scale + 0.5)
		if limit < minTimeLimit {
			limit = minTimeLimit
		}
		out.Levels[i].TimeLimit = limit
	}
	return out
}
