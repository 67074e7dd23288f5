package snake

import (
	"strconv"

	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
)

var (
	snakeColor = core.Green
	foodColor  = core.Red
)

// renderer tracks which state version is on screen. Snake redraws the whole
// playfield each tick (simpler than diffing a moving body), but an unchanged
// state draws nothing.
type renderer struct {
	drawn  uint64
	primed bool
}

// DrawInit draws the complete initial frame.
func (g *Game) DrawInit(d device.Display) error {
	return g.drawFull(d)
}

// DrawFrame redraws the playfield for the state produced by the preceding
// tick. Full clear-and-redraw keeps the screen legal without tracking which
// cells changed.
func (g *Game) DrawFrame(d device.Display) error {
	if g.frame.primed && g.frame.drawn == g.version {
		return nil
	}
	return g.drawFull(d)
}

func (g *Game) drawFull(d device.Display) error {
	cell := g.cfg.CellSize

	if err := d.FillRect(core.NewRect(0, 0, g.w, g.h), core.Black); err != nil {
		return err
	}

	for _, seg := range g.body {
		r := core.NewRect(seg.X*cell, seg.Y*cell, cell-1, cell-1)
		if err := d.FillRect(r, snakeColor); err != nil {
			return err
		}
	}

	food := core.NewRect(g.food.X*cell, g.food.Y*cell, cell-1, cell-1)
	if err := d.FillRect(food, foodColor); err != nil {
		return err
	}

	if err := d.DrawText(4, 4, strconv.Itoa(g.score), core.White); err != nil {
		return err
	}

	g.frame.drawn = g.version
	g.frame.primed = true
	return nil
}

// DrawTitle draws the title screen.
func (g *Game) DrawTitle(d device.Display) error {
	w, h := d.Size()
	if err := d.FillRect(core.NewRect(0, 0, w, h), core.Black); err != nil {
		return err
	}
	if err := d.DrawText(w/2-15, h/2-30, "SNAKE", core.Yellow); err != nil {
		return err
	}
	if err := d.DrawText(w/2-42, h/2-10, "D-pad to move", core.White); err != nil {
		return err
	}
	return d.DrawText(w/2-48, h/2+10, "Press A to start", core.White)
}

// DrawGameOver draws the result banner.
func (g *Game) DrawGameOver(d device.Display) error {
	w, h := d.Size()
	if err := d.FillRect(core.NewRect(0, 0, w, h), core.Black); err != nil {
		return err
	}
	if err := d.DrawText(w/2-36, h/2-25, "GAME OVER", core.Red); err != nil {
		return err
	}
	if err := d.DrawText(w/2-36, h/2-5, "Score: "+strconv.Itoa(g.score), core.White); err != nil {
		return err
	}
	return d.DrawText(w/2-54, h/2+15, "Press A to restart", core.White)
}
