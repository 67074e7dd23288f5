package term

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is how often the terminal view refreshes from the
// framebuffer. The engine ticks the simulation on its own schedule; this
// only paces the terminal paint.
const frameInterval = 33 * time.Millisecond

// FrameMsg signals that the view should repaint.
type FrameMsg time.Time

// frameCmd schedules the next repaint.
func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
