package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the classic three-tier configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		FinalLevel: 3,
		Timing: MemoryTiming{
			TickIntervalMs:  1000,
			MismatchDelayMs: 1000,
		},
		Levels: []LevelTier{
			{Rows: 2, Cols: 2, Pairs: 2, TimeLimit: 20},
			{Rows: 2, Cols: 4, Pairs: 4, TimeLimit: 60},
			{Rows: 4, Cols: 4, Pairs: 8, TimeLimit: 120},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMemoryYAML
}
