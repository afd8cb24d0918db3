// Package tui runs river raid in the terminal with Bubble Tea: the fixed-rate
// tick loop, key handling, the mode menu, the scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Each Model runs its own
// tick loop and ignores ticks of loops it does not own, so a tick still in
// flight when a game is left cannot speed up the next one.
type TickMsg struct {
	Time time.Time
	loop uint64
}

var loops atomic.Uint64

// newLoop returns a fresh tick loop ID.
func newLoop() uint64 {
	return loops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, loop: loop}
	})
}
