package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 30)
	Seed     int64 // RNG seed for deterministic deals
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the simulated time one Step covers.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Level     int  // Current level
	TimeLeft  int  // Seconds left on the level countdown
	Running   bool // Countdown is ticking
	Suspended bool // A dialog is waiting for acknowledgement
	Finished  bool // Final level cleared; only a restart continues
}

// Result is how a run ended.
type Result string

const (
	ResultWon      Result = "won"
	ResultTimedOut Result = "timed_out"
)

// Outcome describes a finished run, reported once in the step it ends.
type Outcome struct {
	Result   Result
	Level    int           // Level reached when the run ended
	Matched  int           // Pairs found on that level
	Duration time.Duration // Run time since level 1 started
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State    GameState
	Outcomes []Outcome
}
