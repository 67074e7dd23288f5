package snake

import (
	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
)

var (
	ledScoreColor = core.RGB(0, 10, 0)
	ledDeadColor  = core.RGB(20, 0, 0)
)

// UpdateLEDs stages the LED pattern: solid red on game over, otherwise the
// score as a bar graph saturating at the per-bar LED count, filling the lower
// half of the left bar first and spilling into the right bar.
func (g *Game) UpdateLEDs(l device.LEDs) {
	if g.gameOver {
		l.Fill(ledDeadColor)
		return
	}

	bars := l.BarCount()
	lit := core.Min(g.score, bars)

	left := make([]core.Color, bars)
	right := make([]core.Color, bars)
	for i := 0; i < lit; i++ {
		if i < bars/2 {
			left[i] = ledScoreColor
		} else {
			right[i-bars/2] = ledScoreColor
		}
	}
	l.SetLeftBar(left)
	l.SetRightBar(right)
}
