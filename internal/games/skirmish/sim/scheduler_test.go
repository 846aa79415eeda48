package sim

import (
	"testing"
	"time"
)

func TestManualClockOrder(t *testing.T) {
	c := NewManualClock()
	var fired []int
	c.After(3*time.Second, func() { fired = append(fired, 3) })
	c.After(time.Second, func() { fired = append(fired, 1) })
	c.After(2*time.Second, func() { fired = append(fired, 2) })
	c.After(time.Second, func() { fired = append(fired, 10) })

	c.Advance(2 * time.Second)
	if len(fired) != 3 || fired[0] != 1 || fired[1] != 10 || fired[2] != 2 {
		t.Errorf("fired = %v, expected [1 10 2]", fired)
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", c.Pending())
	}

	c.Advance(time.Second)
	if len(fired) != 4 || fired[3] != 3 {
		t.Errorf("fired = %v, expected [1 10 2 3]", fired)
	}
}

func TestManualClockChainedCallbacks(t *testing.T) {
	c := NewManualClock()
	count := 0
	c.After(time.Second, func() {
		count++
		c.After(0, func() { count++ })
	})

	c.Advance(time.Second)
	if count != 2 {
		t.Errorf("count = %d, expected 2", count)
	}
}

func TestRunnerInterval(t *testing.T) {
	r := NewRunner(Options{Config: testConfig(), Seed: 1}, 50)
	if r.Interval != 20*time.Millisecond {
		t.Errorf("Interval = %v, expected 20ms", r.Interval)
	}
	r.Tick(Intent{})
	r.Tick(Intent{})
	if r.Clock.Now() != 40*time.Millisecond {
		t.Errorf("Now() = %v, expected 40ms", r.Clock.Now())
	}
	if r.World.Tick() != 2 {
		t.Errorf("Tick() = %d, expected 2", r.World.Tick())
	}
}
