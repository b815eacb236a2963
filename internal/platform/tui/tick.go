// Package tui runs games in the terminal with Bubble Tea, locally or over
// SSH. It owns timing, input mapping and presentation; the game only sees
// InputFrames and draws into a core.Screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdTicksFor returns how long a key press keeps a direction held:
// half a second, roughly the terminal key-repeat delay.
func holdTicksFor(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tickRate / 2
}
