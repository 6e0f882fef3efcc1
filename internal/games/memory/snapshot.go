package memory

import "github.com/vovakirdan/tui-memory/internal/games/memory/engine"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Cursor int
	Dialog Dialog
	Engine engine.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Cursor: g.cursor,
		Dialog: g.dialog,
		Engine: g.ctrl.Snapshot(),
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Tick == o.Tick && s.Cursor == o.Cursor && s.Dialog == o.Dialog && s.Engine.Equal(o.Engine)
}
