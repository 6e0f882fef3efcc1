package engine

import (
	"container/heap"
	"time"
)

// Scheduler is a single-threaded, virtual-time callback queue. Nothing runs
// in the background: callbacks fire only from Advance, on the caller's
// goroutine, so they are serialized with every other engine call.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// Timer is a scheduled callback.
type Timer struct {
	at     time.Duration
	seq    uint64
	fn     func()
	index  int // Position in the heap, -1 once fired or cancelled
	parent *Scheduler
}

// NewScheduler creates a scheduler at virtual time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks still waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After schedules fn to run once d has elapsed. d <= 0 fires on the next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{at: s.now + d, seq: s.seq, fn: fn, parent: s}
	heap.Push(&s.queue, t)
	return t
}

// Advance moves virtual time forward by d and fires every callback that
// comes due, in due-time order. Callbacks scheduled while advancing fire in
// the same call if they come due before the window ends.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	end := s.now + d
	for len(s.queue) > 0 && s.queue[0].at <= end {
		t := heap.Pop(&s.queue).(*Timer)
		s.now = t.at
		t.fn()
	}
	s.now = end
}

// Cancel removes the timer if it has not fired yet.
// Returns true if the callback was prevented from running.
func (t *Timer) Cancel() bool {
	if t == nil || t.index < 0 {
		return false
	}
	heap.Remove(&t.parent.queue, t.index)
	return true
}

// Active reports whether the timer is still waiting to fire.
func (t *Timer) Active() bool {
	return t != nil && t.index >= 0
}

// timerQueue orders timers by due time, then by scheduling order.
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
