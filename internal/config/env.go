package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the runtime knobs read from the environment. They seed the
// CLI flag defaults; flags given on the command line win.
type Settings struct {
	FPS        int    `env:"MEMORY_FPS" envDefault:"30"`
	Seed       int64  `env:"MEMORY_SEED" envDefault:"0"`
	DBPath     string `env:"MEMORY_DB" envDefault:"~/.memory/journal.db"`
	ConfigPath string `env:"MEMORY_CONFIG"`
	Difficulty string `env:"MEMORY_DIFFICULTY" envDefault:"normal"`
	SSHAddr    string `env:"MEMORY_SSH_ADDR" envDefault:":23234"`
	HostKey    string `env:"MEMORY_HOST_KEY"`
	LogLevel   string `env:"MEMORY_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"MEMORY_LOG_FILE"`
}

// LoadSettings reads Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ParseEnv populates target from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}
