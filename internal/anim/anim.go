package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg advances the overlay animation identified by Seq by one row.
type FrameMsg struct {
	Seq uint64
}

// AnimationSettledMsg reports that the animation identified by Seq has drawn
// its last frame.
type AnimationSettledMsg struct {
	Seq uint64
}

// ContentTickMsg triggers a check for reloaded site content.
type ContentTickMsg time.Time

// ScheduleFrame returns a tea.Tick command for the next animation frame.
func ScheduleFrame(interval time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FrameMsg{Seq: seq}
	})
}

// Settle returns a command reporting the end of animation seq.
func Settle(seq uint64) tea.Cmd {
	return func() tea.Msg {
		return AnimationSettledMsg{Seq: seq}
	}
}

// ScheduleContentPoll returns a tea.Tick command for the next content check.
func ScheduleContentPoll(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ContentTickMsg(t)
	})
}

// Step moves current one row toward target.
func Step(current, target int) int {
	switch {
	case current < target:
		return current + 1
	case current > target:
		return current - 1
	default:
		return current
	}
}
