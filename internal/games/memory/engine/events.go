package engine

// Event is something the engine reports to its presentation collaborators.
// Events are delivered synchronously, in order, from inside the engine call
// that caused them. Listeners must not call back into the Controller.
type Event interface {
	memoryEvent()
}

// Listener receives engine events.
type Listener func(Event)

// CardRevealed is sent when a face-down card is turned up.
type CardRevealed struct {
	Index int
}

func (CardRevealed) memoryEvent() {}

// PairMatched is sent when the second pick matches the first.
type PairMatched struct {
	First  int
	Second int
}

func (PairMatched) memoryEvent() {}

// PairMismatched is sent when the second pick differs from the first.
// Both cards stay visible until the matching CardsHidden.
type PairMismatched struct {
	First  int
	Second int
}

func (PairMismatched) memoryEvent() {}

// CardsHidden is sent when a mismatched pair is turned back down.
type CardsHidden struct {
	First  int
	Second int
}

func (CardsHidden) memoryEvent() {}

// LevelStarted is sent when a fresh board is dealt.
type LevelStarted struct {
	Level     int
	Rows      int
	Cols      int
	TimeLimit int
}

func (LevelStarted) memoryEvent() {}

// Tick is sent after every countdown decrement.
type Tick struct {
	Remaining int
}

func (Tick) memoryEvent() {}

// LevelCleared is sent when the last pair of a level is matched.
type LevelCleared struct {
	Level int
}

func (LevelCleared) memoryEvent() {}

// GameWon is sent when the final level is cleared.
type GameWon struct {
	Level int
}

func (GameWon) memoryEvent() {}

// TimedOut is sent when the countdown expires before the board is cleared.
type TimedOut struct {
	Level   int
	Matched int // Pairs found on the level that timed out
}

func (TimedOut) memoryEvent() {}
