package tui

import (
	"testing"
	"time"
)

func TestTimerQueue(t *testing.T) {
	q := NewTimerQueue()

	fired := 0
	q.After(3*time.Second, func() { fired++ })
	q.After(time.Second, func() { fired += 10 })

	if q.Pending() != 2 {
		t.Errorf("Pending() = %d, expected 2", q.Pending())
	}
	if cmds := q.Commands(); len(cmds) != 2 {
		t.Errorf("Commands() = %d, expected 2", len(cmds))
	}
	if cmds := q.Commands(); len(cmds) != 0 {
		t.Errorf("Commands() should drain, got %d", len(cmds))
	}

	if !q.Fire(TimerMsg{id: 2}) {
		t.Error("Fire() of a pending timer should run it")
	}
	if fired != 10 {
		t.Errorf("fired = %d, expected 10", fired)
	}
	if q.Fire(TimerMsg{id: 2}) {
		t.Error("Fire() should run a timer only once")
	}
	if q.Fire(TimerMsg{id: 99}) {
		t.Error("Fire() of an unknown timer should be ignored")
	}

	q.Fire(TimerMsg{id: 1})
	if fired != 11 || q.Pending() != 0 {
		t.Errorf("fired = %d pending = %d, expected 11 and 0", fired, q.Pending())
	}
}
