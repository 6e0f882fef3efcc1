// Package engine is the memory-match game engine: level tiers, deck
// construction, the board, the card-selection state machine, the countdown
// and the controller that ties them together across levels.
//
// The engine is single-threaded. Time only moves when the owner calls
// Advance, and every callback runs inside that call, so no locking is needed.
// It has no presentation dependencies; collaborators observe it through
// events and read-only accessors.
package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Phase is the controller's play state.
//
//	Playing   -> Suspended  countdown expired (after the automatic restart at level 1)
//	Suspended -> Playing    Acknowledge
//	Playing   -> Won        final level cleared
//	any       -> Playing    Reset
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseSuspended
	PhaseWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseSuspended:
		return "suspended"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Options configures a Controller. Zero values pick the classic defaults.
type Options struct {
	Tiers         []Tier        // Defaults to DefaultTiers()
	FinalLevel    int           // Defaults to the number of tiers
	TickInterval  time.Duration // Countdown period, defaults to 1s
	MismatchDelay time.Duration // Delay before a mismatched pair is hidden, defaults to 1s
	Rand          RandSource    // Defaults to a time-seeded source
	Logger        *log.Logger   // Defaults to a discard logger
}

// Controller is the public façade of the engine.
type Controller struct {
	levels     LevelTable
	finalLevel int
	rng        RandSource
	logger     *log.Logger

	sched     *Scheduler
	countdown *Countdown
	selection *Selection
	board     *Board

	level        int
	tier         Tier
	timerStarted bool
	phase        Phase
	epoch        uint64 // Bumped on every StartLevel
	levelStart   time.Duration
	runStart     time.Duration

	listeners []Listener
}

// New builds a controller and deals level 1.
func New(opts Options) (*Controller, error) {
	tiers := opts.Tiers
	if len(tiers) == 0 {
		tiers = DefaultTiers()
	}
	levels, err := NewLevelTable(tiers)
	if err != nil {
		return nil, err
	}

	final := opts.FinalLevel
	if final == 0 {
		final = levels.Len()
	}
	if final < 1 {
		return nil, fmt.Errorf("%w: final level %d", ErrInvalidConfig, final)
	}

	tick := opts.TickInterval
	if tick <= 0 {
		tick = time.Second
	}
	delay := opts.MismatchDelay
	if delay <= 0 {
		delay = time.Second
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		levels:     levels,
		finalLevel: final,
		rng:        rng,
		logger:     logger,
		sched:      NewScheduler(),
	}
	c.countdown = NewCountdown(c.sched, tick, c.onTick, c.onTimerExpired)
	c.selection = NewSelection(c.sched, delay, c.emit, logger)

	if err := c.StartLevel(1); err != nil {
		return nil, err
	}
	return c, nil
}

// Subscribe registers a listener for all future events.
func (c *Controller) Subscribe(l Listener) {
	if l != nil {
		c.listeners = append(c.listeners, l)
	}
}

// StartLevel deals a fresh board for level n and arms its countdown without
// starting it. Anything still scheduled for the previous board is cancelled.
func (c *Controller) StartLevel(n int) error {
	tier, err := c.levels.Resolve(n)
	if err != nil {
		return err
	}

	deck := BuildDeck(tier.Pairs)
	Shuffle(deck, c.rng)
	board, err := NewBoard(tier.Rows, tier.Cols, deck)
	if err != nil {
		// Tiers are validated up front, so this is a bug.
		panic(err)
	}

	c.epoch++
	c.countdown.Arm(tier.TimeLimit)
	c.selection.Reset(board)

	c.board = board
	c.level = n
	c.tier = tier
	c.timerStarted = false
	c.levelStart = c.sched.Now()
	if n == 1 {
		c.runStart = c.sched.Now()
	}

	c.logger.Debug("level started", "level", n, "rows", tier.Rows, "cols", tier.Cols, "time", tier.TimeLimit)
	c.emit(LevelStarted{Level: n, Rows: tier.Rows, Cols: tier.Cols, TimeLimit: tier.TimeLimit})
	return nil
}

// SelectCard handles a tap on the cell at index. The first tap of a level
// starts its countdown. Taps are ignored unless the controller is Playing.
// index must address a cell of the current board.
func (c *Controller) SelectCard(index int) Outcome {
	if c.phase != PhasePlaying {
		return OutcomeIgnored
	}
	if !c.board.InBounds(index) {
		panic(fmt.Sprintf("engine: cell %d out of range for %d cells", index, c.board.Len()))
	}

	if !c.timerStarted {
		c.timerStarted = true
		c.countdown.Start()
	}

	outcome := c.selection.Select(index)
	if outcome == OutcomeCleared {
		c.levelCleared()
	}
	return outcome
}

// levelCleared advances to the next level or ends the game.
func (c *Controller) levelCleared() {
	cleared := c.level
	c.countdown.Stop()
	c.emit(LevelCleared{Level: cleared})

	if cleared < c.finalLevel {
		if err := c.StartLevel(cleared + 1); err != nil {
			panic(err)
		}
		return
	}

	c.phase = PhaseWon
	c.logger.Info("game won", "level", cleared, "elapsed", c.Elapsed())
	c.emit(GameWon{Level: cleared})
}

func (c *Controller) onTick(remaining int) {
	c.emit(Tick{Remaining: remaining})
}

// onTimerExpired ends the run and restarts from level 1, suspended until
// the loss is acknowledged.
func (c *Controller) onTimerExpired() {
	level := c.level
	matched := c.board.MatchedPairs()
	c.countdown.Stop()

	c.logger.Info("timed out", "level", level, "matched", matched)
	c.emit(TimedOut{Level: level, Matched: matched})

	if err := c.StartLevel(1); err != nil {
		panic(err)
	}
	c.phase = PhaseSuspended
}

// Advance moves engine time forward, firing countdown ticks and delayed
// hides that come due.
func (c *Controller) Advance(d time.Duration) {
	c.sched.Advance(d)
}

// Reset stops everything and returns to an un-started level 1.
func (c *Controller) Reset() {
	c.countdown.Stop()
	c.timerStarted = false
	c.phase = PhasePlaying
	c.logger.Debug("reset")
	if err := c.StartLevel(1); err != nil {
		panic(err)
	}
}

// Acknowledge resumes play after a time-out notification has been shown.
// It has no effect in any other phase.
func (c *Controller) Acknowledge() {
	if c.phase == PhaseSuspended {
		c.phase = PhasePlaying
	}
}

// Phase returns the play state.
func (c *Controller) Phase() Phase { return c.phase }

// Suspended reports whether the controller is waiting for a notification to
// be acknowledged (time-out) or for a reset (win). Input is refused meanwhile.
func (c *Controller) Suspended() bool { return c.phase != PhasePlaying }

// Level returns the current level number.
func (c *Controller) Level() int { return c.level }

// FinalLevel returns the level whose clear wins the game.
func (c *Controller) FinalLevel() int { return c.finalLevel }

// Tier returns the current level's tier.
func (c *Controller) Tier() Tier { return c.tier }

// TimeLeft returns the countdown's remaining seconds.
func (c *Controller) TimeLeft() int { return c.countdown.Remaining() }

// TimerStarted reports whether the current level's countdown has started.
func (c *Controller) TimerStarted() bool { return c.timerStarted }

// TimerRunning reports whether the countdown is ticking right now.
func (c *Controller) TimerRunning() bool { return c.countdown.Running() }

// Board returns the current board. Callers must treat it as read-only.
func (c *Controller) Board() *Board { return c.board }

// Selection returns the selection machine. Callers must treat it as read-only.
func (c *Controller) Selection() *Selection { return c.selection }

// Now returns the engine's virtual time.
func (c *Controller) Now() time.Duration { return c.sched.Now() }

// Elapsed returns the time since the current run started at level 1.
func (c *Controller) Elapsed() time.Duration { return c.sched.Now() - c.runStart }

// Epoch returns the board generation, bumped on every level start.
func (c *Controller) Epoch() uint64 { return c.epoch }

func (c *Controller) emit(e Event) {
	for _, l := range c.listeners {
		l(e)
	}
}
