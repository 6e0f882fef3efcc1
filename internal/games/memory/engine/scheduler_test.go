package engine

import (
	"testing"
	"time"
)

func TestSchedulerFiresInOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.After(3*time.Second, func() { got = append(got, "c") })
	s.After(time.Second, func() { got = append(got, "a") })
	s.After(time.Second, func() { got = append(got, "b") })

	s.Advance(500 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("fired early: %v", got)
	}

	s.Advance(5 * time.Second)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("fired %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order = %v, want %v", got, want)
			break
		}
	}
	if s.Now() != 5500*time.Millisecond {
		t.Errorf("Now = %v", s.Now())
	}
}

func TestSchedulerCallbackSeesDueTime(t *testing.T) {
	s := NewScheduler()
	var at time.Duration
	s.After(2*time.Second, func() { at = s.Now() })
	s.Advance(10 * time.Second)
	if at != 2*time.Second {
		t.Errorf("callback ran at %v, want 2s", at)
	}
}

func TestSchedulerChainedInOneAdvance(t *testing.T) {
	s := NewScheduler()
	n := 0
	var step func()
	step = func() {
		n++
		s.After(time.Second, step)
	}
	s.After(time.Second, step)

	s.Advance(5 * time.Second)
	if n != 5 {
		t.Errorf("chained callback ran %d times, want 5", n)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", s.Pending())
	}
}

func TestTimerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	timer := s.After(time.Second, func() { fired = true })
	other := s.After(time.Second, func() {})

	if !timer.Active() {
		t.Fatal("timer not active after scheduling")
	}
	if !timer.Cancel() {
		t.Fatal("Cancel returned false for pending timer")
	}
	if timer.Cancel() {
		t.Error("second Cancel returned true")
	}
	if timer.Active() {
		t.Error("cancelled timer still active")
	}

	s.Advance(2 * time.Second)
	if fired {
		t.Error("cancelled timer fired")
	}
	if other.Active() {
		t.Error("fired timer still active")
	}
	if other.Cancel() {
		t.Error("Cancel after firing returned true")
	}
}

func TestNilTimer(t *testing.T) {
	var timer *Timer
	if timer.Active() || timer.Cancel() {
		t.Error("nil timer reported active")
	}
}
