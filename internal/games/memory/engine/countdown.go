package engine

import "time"

// Countdown is a cancellable per-second timer driven by a Scheduler.
// Arm sets the budget, Start begins ticking, and Expired fires exactly once
// when the budget runs out. There is no pause.
type Countdown struct {
	sched    *Scheduler
	interval time.Duration

	remaining int
	running   bool
	timer     *Timer
	gen       uint64 // Bumped on every Arm/Stop so a stale tick is a no-op

	onTick   func(remaining int)
	onExpire func()
}

// NewCountdown creates a stopped countdown. onTick runs after every
// decrement (including the final one to zero), onExpire once afterwards.
func NewCountdown(sched *Scheduler, interval time.Duration, onTick func(int), onExpire func()) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{
		sched:    sched,
		interval: interval,
		onTick:   onTick,
		onExpire: onExpire,
	}
}

// Arm stops any ticking and sets the remaining time without starting.
func (c *Countdown) Arm(seconds int) {
	c.Stop()
	c.remaining = seconds
}

// Start begins ticking. It does nothing if already running or if there is
// no time left.
func (c *Countdown) Start() {
	if c.running || c.remaining <= 0 {
		return
	}
	c.running = true
	c.schedule()
}

// Stop halts ticking. Safe to call any number of times.
func (c *Countdown) Stop() {
	c.gen++
	c.running = false
	if c.timer != nil {
		c.timer.Cancel()
		c.timer = nil
	}
}

// Cancel is Stop.
func (c *Countdown) Cancel() {
	c.Stop()
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Running reports whether the countdown is ticking.
func (c *Countdown) Running() bool {
	return c.running
}

func (c *Countdown) schedule() {
	gen := c.gen
	c.timer = c.sched.After(c.interval, func() {
		if gen != c.gen || !c.running {
			return
		}
		c.tick()
	})
}

func (c *Countdown) tick() {
	c.timer = nil
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		c.gen++
	}
	if c.onTick != nil {
		c.onTick(c.remaining)
	}
	if c.remaining == 0 {
		if c.onExpire != nil {
			c.onExpire()
		}
		return
	}
	// onTick may have stopped or re-armed us.
	if c.running {
		c.schedule()
	}
}
