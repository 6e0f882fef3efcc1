package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const memoryFile = "memory.yaml"

// LoadMemory loads the memory game configuration.
// Search order: customPath -> ~/.memory/configs/memory.yaml -> ./configs/memory.yaml -> embedded default.
// A custom path that cannot be read or fails validation is an error; the
// other locations are skipped when missing or invalid.
func LoadMemory(customPath string) (MemoryConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseMemory(data)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(memoryFile), filepath.Join("configs", memoryFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseMemory(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseMemory(defaultMemoryYAML); err == nil {
		return cfg, nil
	}
	return DefaultMemoryConfig(), nil // Fallback to hardcoded if embed fails
}

// parseMemory decodes and validates a YAML document. Missing keys take
// their default values.
func parseMemory(data []byte) (MemoryConfig, error) {
	cfg := DefaultMemoryConfig()
	cfg.Levels = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MemoryConfig{}, fmt.Errorf("parse: %w", err)
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = DefaultMemoryConfig().Levels
	}
	if err := cfg.Validate(); err != nil {
		return MemoryConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memory", "configs", filename)
}
