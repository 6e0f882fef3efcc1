package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"
)

// Selection states.
const (
	StateIdle      = "idle"       // No pending pick
	StateOnePicked = "one_picked" // First pick face up, waiting for the second
	StateResolving = "resolving"  // Mismatched pair face up, waiting for the delayed hide
)

// Outcome is what a single SelectCard call did.
type Outcome int

const (
	OutcomeIgnored    Outcome = iota // Nothing changed
	OutcomeRevealed                  // First pick turned up
	OutcomeQueued                    // Card turned up during a pending hide; it becomes the next first pick
	OutcomeMatched                   // Pair found, board not yet cleared
	OutcomeMismatched                // Pair differs, hide scheduled
	OutcomeCleared                   // Pair found and it was the last one
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeRevealed:
		return "revealed"
	case OutcomeQueued:
		return "queued"
	case OutcomeMatched:
		return "matched"
	case OutcomeMismatched:
		return "mismatched"
	case OutcomeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

const noPick = -1

// Selection turns raw card taps into reveal, match and mismatch outcomes.
//
// A tap that lands while a mismatched pair is waiting to be hidden is not
// dropped: the card is revealed at once and held as the first pick of the
// next pair, which takes effect when the hide fires. Only one such card is
// held; further taps in the window are ignored, as are taps on the two
// mismatched cards themselves.
type Selection struct {
	machine *fsm.FSM
	sched   *Scheduler
	delay   time.Duration
	emit    func(Event)
	board   *Board

	first  int
	second int
	queued int

	hide  *Timer
	epoch uint64
}

// NewSelection creates an idle selection machine. Mismatched pairs are hidden
// delay after the second pick.
func NewSelection(sched *Scheduler, delay time.Duration, emit func(Event), logger *log.Logger) *Selection {
	if emit == nil {
		emit = func(Event) {}
	}
	s := &Selection{
		sched:  sched,
		delay:  delay,
		emit:   emit,
		first:  noPick,
		second: noPick,
		queued: noPick,
	}
	s.machine = fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: "pick", Src: []string{StateIdle}, Dst: StateOnePicked},
			{Name: "match", Src: []string{StateOnePicked}, Dst: StateIdle},
			{Name: "mismatch", Src: []string{StateOnePicked}, Dst: StateResolving},
			{Name: "settle", Src: []string{StateResolving}, Dst: StateIdle},
			{Name: "resume", Src: []string{StateResolving}, Dst: StateOnePicked},
			{Name: "reset", Src: []string{StateOnePicked, StateResolving}, Dst: StateIdle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				if logger != nil {
					logger.Debug("selection", "event", e.Event, "from", e.Src, "to", e.Dst)
				}
			},
		},
	)
	return s
}

// Reset drops every pending pick, cancels a pending hide and attaches a new board.
func (s *Selection) Reset(board *Board) {
	s.epoch++
	if s.hide != nil {
		s.hide.Cancel()
		s.hide = nil
	}
	s.board = board
	s.clearPicks()
	if !s.machine.Is(StateIdle) {
		s.fire("reset")
	}
}

// State returns the current state name.
func (s *Selection) State() string {
	return s.machine.Current()
}

// FirstPick returns the pending first pick, if any.
func (s *Selection) FirstPick() (int, bool) {
	return s.first, s.first != noPick
}

// Queued returns the card held for the next pair during a pending hide.
func (s *Selection) Queued() (int, bool) {
	return s.queued, s.queued != noPick
}

// HidePending reports whether a mismatched pair is waiting to be hidden.
func (s *Selection) HidePending() bool {
	return s.hide.Active()
}

// Select processes a tap on the cell at index. The index must be on the board.
func (s *Selection) Select(index int) Outcome {
	if s.board == nil {
		return OutcomeIgnored
	}
	if s.board.CellAt(index).Matched {
		return OutcomeIgnored
	}

	switch s.machine.Current() {
	case StateIdle:
		s.board.Reveal(index)
		s.first = index
		s.fire("pick")
		s.emit(CardRevealed{Index: index})
		return OutcomeRevealed

	case StateOnePicked:
		if index == s.first {
			return OutcomeIgnored
		}
		s.board.Reveal(index)
		s.second = index
		return s.resolve()

	case StateResolving:
		if index == s.first || index == s.second || s.queued != noPick {
			return OutcomeIgnored
		}
		s.board.Reveal(index)
		s.queued = index
		s.emit(CardRevealed{Index: index})
		return OutcomeQueued
	}

	return OutcomeIgnored
}

// resolve compares the two picks.
func (s *Selection) resolve() Outcome {
	a, b := s.first, s.second

	if s.board.CellAt(a).Identity == s.board.CellAt(b).Identity {
		s.board.MarkMatched(a, b)
		s.clearPicks()
		s.fire("match")
		s.emit(PairMatched{First: a, Second: b})
		if s.board.AllMatched() {
			return OutcomeCleared
		}
		return OutcomeMatched
	}

	s.fire("mismatch")
	s.emit(PairMismatched{First: a, Second: b})

	epoch := s.epoch
	s.hide = s.sched.After(s.delay, func() {
		if epoch != s.epoch {
			return
		}
		s.hidePair()
	})
	return OutcomeMismatched
}

// hidePair is the delayed half of a mismatch.
func (s *Selection) hidePair() {
	s.hide = nil
	a, b := s.first, s.second
	s.mustHide(a)
	s.mustHide(b)

	queued := s.queued
	s.clearPicks()
	if queued != noPick {
		s.first = queued
		s.fire("resume")
	} else {
		s.fire("settle")
	}
	s.emit(CardsHidden{First: a, Second: b})
}

func (s *Selection) mustHide(index int) {
	if err := s.board.Hide(index); err != nil {
		panic(err)
	}
}

func (s *Selection) clearPicks() {
	s.first = noPick
	s.second = noPick
	s.queued = noPick
}

func (s *Selection) fire(event string) {
	if err := s.machine.Event(context.Background(), event); err != nil {
		panic(fmt.Sprintf("engine: selection %q from %q: %v", event, s.machine.Current(), err))
	}
}
