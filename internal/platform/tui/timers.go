package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TimerMsg delivers an expired game timer to the Update loop.
type TimerMsg struct {
	id uint64
}

type queuedTimer struct {
	id    uint64
	delay time.Duration
}

// TimerQueue schedules game callbacks as Bubble Tea messages, so they run
// on the Update goroutine like every other state change. It is not safe
// for concurrent use; the game calls After from inside Step.
type TimerQueue struct {
	nextID  uint64
	pending map[uint64]func()
	queued  []queuedTimer
}

// NewTimerQueue creates an empty queue.
func NewTimerQueue() *TimerQueue {
	return &TimerQueue{pending: make(map[uint64]func())}
}

// After queues fn to run once d has elapsed.
func (q *TimerQueue) After(d time.Duration, fn func()) {
	q.nextID++
	q.pending[q.nextID] = fn
	q.queued = append(q.queued, queuedTimer{id: q.nextID, delay: d})
}

// Commands turns timers queued since the last call into tea commands.
func (q *TimerQueue) Commands() []tea.Cmd {
	if len(q.queued) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(q.queued))
	for _, t := range q.queued {
		id := t.id
		cmds = append(cmds, tea.Tick(t.delay, func(time.Time) tea.Msg {
			return TimerMsg{id: id}
		}))
	}
	q.queued = q.queued[:0]
	return cmds
}

// Fire runs the callback for an expired timer. Unknown or already fired
// timers are ignored.
func (q *TimerQueue) Fire(msg TimerMsg) bool {
	fn, ok := q.pending[msg.id]
	if !ok {
		return false
	}
	delete(q.pending, msg.id)
	fn()
	return true
}

// Pending returns the number of timers that have not fired yet.
func (q *TimerQueue) Pending() int {
	return len(q.pending)
}
