// Package tui hosts the climber in a terminal through Bubble Tea.
// The display refresh drives a fixed-step runner; keys and mouse events
// are queued on an input controller that the runner reads once per tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one display refresh.
type TickMsg time.Time

// frameCmd schedules the next display refresh at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
