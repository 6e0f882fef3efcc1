package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run at level 1.

Controls:
  Arrows/hjkl/wasd  - Move the cursor
  Enter/Space       - Flip the card under the cursor
  Mouse click       - Flip the clicked card
  R                 - Start over at level 1
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Levels:
  1  2x2 board, 2 pairs, 20s
  2  2x4 board, 4 pairs, 60s
  3  4x4 board, 8 pairs, 120s

Difficulty options scale every time limit:
  easy   - x1.5
  normal - as configured
  hard   - x0.75 (never below 5s)
  fixed  - as configured, ignoring presets

Examples:
  memory play
  memory play --difficulty hard
  memory play --seed 42 --log-file memory.log --log-level debug
  memory play --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to Bubble Tea; logs only go to --log-file.
	logger, closeLog, err := newLogger("memory", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := configureGame(logger); err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game, err := registry.Create(memory.ID)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Config: cfg,
		Player: currentUser(),
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		// Continue without the journal - the game still works
	} else {
		opts.Journal = store
		defer store.Close()
	}

	return tui.Run(game, opts)
}

// currentUser names the local player in the journal.
func currentUser() string {
	for _, k := range []string{"USER", "USERNAME", "LOGNAME"} {
		if u := os.Getenv(k); u != "" {
			return u
		}
	}
	return "local"
}
