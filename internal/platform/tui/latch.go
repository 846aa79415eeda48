package tui

import (
	"time"

	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// DefaultHoldWindow is how long a key press keeps its action held.
// Terminals report presses and auto-repeat but never releases, so a held
// key is one that keeps repeating within the window.
const DefaultHoldWindow = 180 * time.Millisecond

// holdLatch turns key presses into held actions that expire.
type holdLatch struct {
	window time.Duration
	until  map[core.Action]time.Time
}

func newHoldLatch(window time.Duration) *holdLatch {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &holdLatch{window: window, until: make(map[core.Action]time.Time)}
}

// press holds a until now+window. Opposite directions cancel each other.
func (h *holdLatch) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(h.window)
}

func (h *holdLatch) release(a core.Action) {
	delete(h.until, a)
}

func (h *holdLatch) reset() {
	clear(h.until)
}

// apply sets every action still held at now and drops expired ones.
func (h *holdLatch) apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.until {
		if now.Before(until) {
			frame.Set(a)
			continue
		}
		delete(h.until, a)
	}
}

// heldAction reports whether a is a held intent rather than a command.
func heldAction(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}
