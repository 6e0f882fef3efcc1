package engine

import (
	"testing"
	"time"
)

// newTestSelection builds a selection over a 2x2 board laid out [0 1 0 1].
func newTestSelection(t *testing.T) (*Scheduler, *Selection, *Board, *[]Event) {
	t.Helper()
	sched := NewScheduler()
	var events []Event
	sel := NewSelection(sched, time.Second, func(e Event) { events = append(events, e) }, nil)
	b := newTestBoard(t)
	sel.Reset(b)
	return sched, sel, b, &events
}

func TestSelectionMatch(t *testing.T) {
	_, sel, b, events := newTestSelection(t)

	if got := sel.Select(0); got != OutcomeRevealed {
		t.Fatalf("first pick = %v", got)
	}
	if sel.State() != StateOnePicked {
		t.Fatalf("state = %s", sel.State())
	}
	if got := sel.Select(0); got != OutcomeIgnored {
		t.Errorf("same card twice = %v, want ignored", got)
	}
	if got := sel.Select(2); got != OutcomeMatched {
		t.Fatalf("second pick = %v, want matched", got)
	}
	if sel.State() != StateIdle {
		t.Errorf("state after match = %s", sel.State())
	}
	if !b.CellAt(0).Matched || !b.CellAt(2).Matched {
		t.Error("pair not marked matched")
	}
	if got := sel.Select(0); got != OutcomeIgnored {
		t.Errorf("tap on matched cell = %v", got)
	}

	sel.Select(1)
	if got := sel.Select(3); got != OutcomeCleared {
		t.Errorf("last pair = %v, want cleared", got)
	}

	want := []Event{
		CardRevealed{Index: 0},
		PairMatched{First: 0, Second: 2},
		CardRevealed{Index: 1},
		PairMatched{First: 1, Second: 3},
	}
	assertEvents(t, *events, want)
}

func TestSelectionMismatchHidesAfterDelay(t *testing.T) {
	sched, sel, b, events := newTestSelection(t)

	sel.Select(0)
	if got := sel.Select(1); got != OutcomeMismatched {
		t.Fatalf("second pick = %v, want mismatched", got)
	}
	if sel.State() != StateResolving || !sel.HidePending() {
		t.Fatalf("state = %s pending = %v", sel.State(), sel.HidePending())
	}
	if !b.CellAt(0).Revealed || !b.CellAt(1).Revealed {
		t.Fatal("mismatched pair not face up during delay")
	}

	sched.Advance(999 * time.Millisecond)
	if !b.CellAt(0).Revealed {
		t.Fatal("pair hidden before delay elapsed")
	}

	sched.Advance(time.Millisecond)
	if b.CellAt(0).Revealed || b.CellAt(1).Revealed {
		t.Error("pair still face up after delay")
	}
	if sel.State() != StateIdle || sel.HidePending() {
		t.Errorf("state = %s pending = %v", sel.State(), sel.HidePending())
	}

	want := []Event{
		CardRevealed{Index: 0},
		PairMismatched{First: 0, Second: 1},
		CardsHidden{First: 0, Second: 1},
	}
	assertEvents(t, *events, want)
}

func TestSelectionQueuesThirdCard(t *testing.T) {
	sched, sel, b, _ := newTestSelection(t)

	sel.Select(0)
	sel.Select(1)

	if got := sel.Select(0); got != OutcomeIgnored {
		t.Errorf("tap on mismatched card = %v", got)
	}
	if got := sel.Select(2); got != OutcomeQueued {
		t.Fatalf("third card = %v, want queued", got)
	}
	if !b.CellAt(2).Revealed {
		t.Error("queued card not revealed")
	}
	if got := sel.Select(3); got != OutcomeIgnored {
		t.Errorf("fourth card = %v, want ignored", got)
	}
	if b.CellAt(3).Revealed {
		t.Error("ignored fourth card revealed")
	}

	sched.Advance(time.Second)
	if sel.State() != StateOnePicked {
		t.Fatalf("state after hide = %s, want one_picked", sel.State())
	}
	if first, ok := sel.FirstPick(); !ok || first != 2 {
		t.Fatalf("first pick = %d,%v, want 2", first, ok)
	}
	if !b.CellAt(2).Revealed {
		t.Error("queued card hidden with the mismatched pair")
	}

	if got := sel.Select(0); got != OutcomeMatched {
		t.Errorf("pairing queued card = %v, want matched", got)
	}
}

func TestSelectionResetCancelsHide(t *testing.T) {
	sched, sel, _, events := newTestSelection(t)
	sel.Select(0)
	sel.Select(1)

	fresh := newTestBoard(t)
	fresh.Reveal(0)
	sel.Reset(fresh)
	*events = nil

	sched.Advance(5 * time.Second)
	if len(*events) != 0 {
		t.Errorf("stale hide emitted %v", *events)
	}
	if !fresh.CellAt(0).Revealed {
		t.Error("stale hide touched the new board")
	}
	if sel.State() != StateIdle {
		t.Errorf("state after reset = %s", sel.State())
	}
}

func assertEvents(t *testing.T, got, want []Event) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("events = %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}
