// Package tui is the terminal renderer for Connect Four. It turns mouse
// clicks and keys into moves, draws the board from session notifications,
// and serves the same program over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// dropFrame is how long a falling piece stays on each row.
const dropFrame = 35 * time.Millisecond

// dropTickMsg advances the falling-piece animation of one game.
// seq lets a model ignore ticks from an animation it already replaced.
type dropTickMsg struct {
	seq int
}

// dropTickCmd schedules the next animation frame.
func dropTickCmd(seq int) tea.Cmd {
	return tea.Tick(dropFrame, func(time.Time) tea.Msg {
		return dropTickMsg{seq: seq}
	})
}
