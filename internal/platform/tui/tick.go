// Package tui provides the Bubble Tea integration for the flappy game.
// It owns the simulation and frame loops, maps keys and clicks onto game
// input and draws game snapshots into the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// simTickMsg triggers one simulation step. epoch ties the message to the
// loop that scheduled it; ticks from a stopped loop are dropped.
type simTickMsg struct {
	epoch uint64
}

// frameMsg triggers timed steps and a redraw.
type frameMsg time.Time

// simTickCmd schedules the next simulation step for the given loop.
func simTickCmd(interval time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return simTickMsg{epoch: epoch}
	})
}

// frameCmd schedules the next presentation frame.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
