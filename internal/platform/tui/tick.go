// Package tui provides the Bubble Tea integration for Snake Odyssey.
// It owns the timers, maps keys to game requests and renders the game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-odyssey/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
// Token identifies the scheduler generation that produced it.
type TickMsg struct {
	Token core.TimerToken
}

// Scheduler drives the simulation cadence. At most one generation is live;
// ticks from a cancelled or replaced generation are dropped.
type Scheduler struct {
	handle core.TimerHandle
}

// Start cancels any live generation and arms a new one.
func (s *Scheduler) Start(interval time.Duration) tea.Cmd {
	tok := s.handle.Arm(interval)
	return tickCmd(interval, tok)
}

// Stop cancels the live generation.
func (s *Scheduler) Stop() {
	s.handle.Cancel()
}

// Owns reports whether msg came from the live generation.
func (s *Scheduler) Owns(msg TickMsg) bool {
	return s.handle.Owns(msg.Token)
}

// Next schedules the following tick of the live generation.
func (s *Scheduler) Next() tea.Cmd {
	if !s.handle.Live() {
		return nil
	}
	return tickCmd(s.handle.Interval(), s.handle.Token())
}

// Running reports whether a generation is armed.
func (s *Scheduler) Running() bool {
	return s.handle.Live()
}

// Interval returns the live tick period.
func (s *Scheduler) Interval() time.Duration {
	return s.handle.Interval()
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, tok core.TimerToken) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Token: tok}
	})
}
