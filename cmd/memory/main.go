// memory is a terminal memory-match game: flip cards two at a time, find
// every pair before the level clock runs out, clear the final level to win.
//
// Usage:
//
//	memory play              - Play in this terminal
//	memory serve             - Start SSH server for remote play
//	memory history           - Show the journal of finished runs
//
// Global flags:
//
//	--fps <rate>         - Frames per second (default: 30)
//	--seed <value>       - Deal seed for reproducible boards
//	--db <path>          - Journal path (default: ~/.memory/journal.db)
//	--config <path>      - Level table YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
//
// Every global flag defaults to its MEMORY_* environment variable.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string

	// envSettings seeds the flag defaults. It is read before any init runs.
	envSettings = loadEnvSettings()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory Match - find every pair before the clock runs out",
	Long: `Memory Match is a tile-matching puzzle for the terminal.

Flip two cards at a time. Matching pairs stay face up, others turn back
after a moment. Each level has a countdown that starts with your first
flip; clear the board in time to move on, or start over from level 1.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  history  - Show finished runs

Examples:
  memory play
  memory play --difficulty easy
  memory serve --ssh :2222
  memory history --limit 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	s := envSettings
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", s.FPS, "Frames per second")
	flags.Int64Var(&flagSeed, "seed", s.Seed, "Deal seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", s.DBPath, "Path to the run journal")
	flags.StringVar(&flagConfig, "config", s.ConfigPath, "Path to a custom level table YAML")
	flags.StringVar(&flagDifficulty, "difficulty", s.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogLevel, "log-level", s.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", s.LogFile, "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadEnvSettings reads MEMORY_* variables, falling back to the defaults
// when one of them does not parse.
func loadEnvSettings() config.Settings {
	s, err := config.LoadSettings()
	if err == nil {
		return s
	}
	fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	return config.Settings{
		FPS:        30,
		DBPath:     "~/.memory/journal.db",
		Difficulty: string(config.DifficultyNormal),
		SSHAddr:    ":23234",
		LogLevel:   "info",
	}
}

// newLogger builds the process logger. The returned closer releases the log
// file, if one was opened.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// configureGame loads the level table, applies the difficulty preset and
// hands the result to games the registry creates.
func configureGame(logger *log.Logger) error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		return err
	}
	cfg = config.ApplyMemoryPreset(cfg, preset)

	logger.Debug("level table loaded", "levels", len(cfg.Levels), "final", cfg.FinalLevel, "difficulty", preset)
	memory.Configure(memory.Settings{Config: cfg, Logger: logger})
	return nil
}
