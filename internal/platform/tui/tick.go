// Package tui hosts registry games in a terminal. A Bubble Tea program turns
// keys and mouse events into input frames, steps the game at a fixed rate and
// draws its screen with lipgloss. Local play and SSH sessions share the model.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step and carries the wall time it fired at.
type TickMsg time.Time

// tickInterval is the wall time between steps. Rates below 1 count as 1.
func tickInterval(rate int) time.Duration {
	return time.Second / time.Duration(max(rate, 1))
}

// tickCmd schedules the next TickMsg.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
