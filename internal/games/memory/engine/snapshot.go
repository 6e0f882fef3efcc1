package engine

// Snapshot is a value copy of the controller's observable state, used for
// determinism checks and for presentation layers that want a stable view.
type Snapshot struct {
	Level        int
	Rows, Cols   int
	TimeLeft     int
	TimerStarted bool
	Phase        Phase
	Selection    string
	Cells        []Cell
}

// Snapshot captures the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Level:        c.level,
		Rows:         c.board.Rows(),
		Cols:         c.board.Cols(),
		TimeLeft:     c.countdown.Remaining(),
		TimerStarted: c.timerStarted,
		Phase:        c.phase,
		Selection:    c.selection.State(),
		Cells:        c.board.Cells(),
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Level != o.Level || s.Rows != o.Rows || s.Cols != o.Cols ||
		s.TimeLeft != o.TimeLeft || s.TimerStarted != o.TimerStarted ||
		s.Phase != o.Phase || s.Selection != o.Selection ||
		len(s.Cells) != len(o.Cells) {
		return false
	}
	for i := range s.Cells {
		if s.Cells[i] != o.Cells[i] {
			return false
		}
	}
	return true
}
