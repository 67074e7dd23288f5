package breakout

import (
	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
)

// barColor is the dim green shown on the progress bar graph.
var barColor = core.RGB(0, 4, 2)

// UpdateLEDs stages the LED pattern: while a brick-destroy flash is active,
// the whole bank glows with a brightness that decays linearly with the
// remaining countdown; otherwise both bars show the fraction of bricks still
// alive, rounded up.
func (g *Game) UpdateLEDs(l device.LEDs) {
	if g.ledFlash > 0 {
		l.Fill(core.Gray(uint8(g.ledFlash * 4)))
		return
	}

	bars := l.BarCount()
	remaining := g.bricksRemaining()
	total := gridRows * gridCols
	lit := (remaining*bars + total - 1) / total

	left := make([]core.Color, bars)
	right := make([]core.Color, bars)
	for i := 0; i < core.Min(lit, bars); i++ {
		left[i] = barColor
		right[i] = barColor
	}
	l.SetLeftBar(left)
	l.SetRightBar(right)
}
