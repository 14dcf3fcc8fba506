// Package tui runs the island in a terminal: the Bubble Tea loop, key
// mapping, screen rendering, the scoreboard view, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. Walkers, the pursuit hazard, and
// notice timers all advance on this clock, so its rate is the sim's dt.
type TickMsg time.Time

// tickCmd schedules the next simulation tick. Rates below one tick per
// second are treated as one.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate < 1 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
