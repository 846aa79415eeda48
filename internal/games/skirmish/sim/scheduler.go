package sim

import (
	"sort"
	"time"
)

// Scheduler defers a callback by a duration. Callbacks cannot be cancelled
// and must run on the same goroutine that calls World.Step.
type Scheduler interface {
	After(d time.Duration, fn func())
}

type timer struct {
	due time.Duration
	seq uint64
	fn  func()
}

// ManualClock is a deterministic Scheduler driven by Advance.
// It is not safe for concurrent use.
type ManualClock struct {
	now    time.Duration
	seq    uint64
	timers []timer
}

// NewManualClock creates a clock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the elapsed clock time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of callbacks not yet fired.
func (c *ManualClock) Pending() int {
	return len(c.timers)
}

// After schedules fn to run once the clock has advanced by d.
func (c *ManualClock) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	c.seq++
	c.timers = append(c.timers, timer{due: c.now + d, seq: c.seq, fn: fn})
}

// Advance moves the clock forward and fires due callbacks in due order.
// Callbacks scheduled while firing run in the same call if already due.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
	for {
		idx := c.nextDue()
		if idx < 0 {
			return
		}
		t := c.timers[idx]
		c.timers = append(c.timers[:idx], c.timers[idx+1:]...)
		t.fn()
	}
}

func (c *ManualClock) nextDue() int {
	if len(c.timers) == 0 {
		return -1
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].due != c.timers[j].due {
			return c.timers[i].due < c.timers[j].due
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	if c.timers[0].due > c.now {
		return -1
	}
	return 0
}

// Runner drives a World and a ManualClock together at a fixed tick rate,
// for tests and headless runs.
type Runner struct {
	World    *World
	Clock    *ManualClock
	Interval time.Duration
}

// NewRunner creates a world on a fresh ManualClock ticking at tickRate.
func NewRunner(opts Options, tickRate int) *Runner {
	if tickRate <= 0 {
		tickRate = 60
	}
	clock := NewManualClock()
	opts.Scheduler = clock
	return &Runner{
		World:    NewWorld(opts),
		Clock:    clock,
		Interval: time.Second / time.Duration(tickRate),
	}
}

// Tick advances the clock by one interval, then steps the world once.
func (r *Runner) Tick(in Intent) []Event {
	r.Clock.Advance(r.Interval)
	return r.World.Step(in)
}
