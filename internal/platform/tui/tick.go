// Package tui provides the Bubble Tea front end for l1t.
// It handles the terminal UI loop, input mapping, and screen orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RevealMsg is sent when the outcome delay of a finished level has passed.
// Gen identifies the turn that ended the level; stale reveals are ignored.
type RevealMsg struct {
	Gen int
}

// revealCmd returns a Bubble Tea command that sends a RevealMsg after delay.
func revealCmd(delay time.Duration, gen int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return RevealMsg{Gen: gen}
	})
}
