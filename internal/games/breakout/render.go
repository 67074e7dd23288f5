package breakout

import (
	"strconv"

	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
)

// snapshot is the previous-frame state the differ diffs against. It is owned
// exclusively by the differ and copied by value, never aliased by the
// simulation.
type snapshot struct {
	ballX, ballY int
	paddleX      int
	score        int
	lives        int
	bricks       [gridRows][gridCols]bool
}

// differ turns two snapshots into the minimal set of draw operations. After
// each frame the current state becomes the new previous snapshot.
type differ struct {
	prev   snapshot
	primed bool
}

// capture copies the subset of game state the differ needs.
func (g *Game) capture() snapshot {
	return snapshot{
		ballX:   g.ballX,
		ballY:   g.ballY,
		paddleX: g.paddleX,
		score:   g.score,
		lives:   g.lives,
		bricks:  g.bricks,
	}
}

// DrawInit draws the complete initial frame: background, brick grid, logo
// overlay, paddle, ball, and status bar.
func (g *Game) DrawInit(d device.Display) error {
	if err := d.FillRect(core.NewRect(0, 0, g.w, g.h), core.Black); err != nil {
		return err
	}

	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			if !g.bricks[row][col] {
				continue
			}
			if err := d.FillRect(brickRect(row, col), brickColor(row, col)); err != nil {
				return err
			}
		}
	}

	// Overlay the logo artwork on top of the brick grid.
	if g.logo != nil {
		if err := d.DrawImage(g.logo, core.Black); err != nil {
			return err
		}
	}

	if err := g.drawPaddle(d); err != nil {
		return err
	}
	if err := g.drawBall(d); err != nil {
		return err
	}
	if err := g.drawHUD(d); err != nil {
		return err
	}

	g.diff.prev = g.capture()
	g.diff.primed = true
	return nil
}

// DrawFrame brings the display up to date with the state produced by the
// preceding tick. Every operation is gated on an actual change, so a frame
// where nothing moved draws nothing.
func (g *Game) DrawFrame(d device.Display) error {
	if !g.diff.primed {
		return g.DrawInit(d)
	}

	cur := g.capture()
	prev := g.diff.prev
	if cur == prev {
		return nil
	}

	size := g.cfg.BallSize
	ballMoved := cur.ballX != prev.ballX || cur.ballY != prev.ballY
	paddleMoved := cur.paddleX != prev.paddleX

	// Erase the old ball.
	if ballMoved {
		if err := d.FillRect(core.NewRect(prev.ballX, prev.ballY, size, size), core.Black); err != nil {
			return err
		}
	}

	// Erase the old paddle only if it moved.
	if paddleMoved {
		old := core.NewRect(prev.paddleX, g.paddleY, g.cfg.PaddleWidth, g.cfg.PaddleHeight)
		if err := d.FillRect(old, core.Black); err != nil {
			return err
		}
	}

	// Black out destroyed bricks, slot rectangle included so logo pixels in
	// the surrounding gaps go with the brick.
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			if prev.bricks[row][col] && !cur.bricks[row][col] {
				if err := d.FillRect(slotRect(row, col), core.Black); err != nil {
					return err
				}
			}
		}
	}

	if paddleMoved {
		if err := g.drawPaddle(d); err != nil {
			return err
		}
	}
	if ballMoved {
		if err := g.drawBall(d); err != nil {
			return err
		}
	}

	// Redraw the status bar if the ball passed through it or score/lives
	// changed.
	if prev.ballY+size > g.h-hudHeight || prev.score != cur.score || prev.lives != cur.lives {
		if err := g.drawHUD(d); err != nil {
			return err
		}
	}

	g.diff.prev = cur
	return nil
}

func (g *Game) drawPaddle(d device.Display) error {
	return d.FillRect(core.NewRect(g.paddleX, g.paddleY, g.cfg.PaddleWidth, g.cfg.PaddleHeight), core.White)
}

func (g *Game) drawBall(d device.Display) error {
	return d.FillRect(core.NewRect(g.ballX, g.ballY, g.cfg.BallSize, g.cfg.BallSize), core.White)
}

// drawHUD draws the status bar at the very bottom: score on the left, one
// red square per remaining life on the right.
func (g *Game) drawHUD(d device.Display) error {
	hudY := g.h - hudHeight
	if err := d.FillRect(core.NewRect(0, hudY, g.w, hudHeight), core.Black); err != nil {
		return err
	}
	if err := d.DrawText(4, hudY+2, strconv.Itoa(g.score), core.White); err != nil {
		return err
	}
	for i := 0; i < g.lives; i++ {
		if err := d.FillRect(core.NewRect(g.w-12-i*10, hudY+2, 6, 6), core.Red); err != nil {
			return err
		}
	}
	return nil
}

// DrawTitle draws the title screen.
func (g *Game) DrawTitle(d device.Display) error {
	w, h := d.Size()
	if err := d.FillRect(core.NewRect(0, 0, w, h), core.Black); err != nil {
		return err
	}
	if err := d.DrawText(w/2-39, h/2-20, "LOGO BREAKOUT", core.Yellow); err != nil {
		return err
	}
	return d.DrawText(w/2-48, h/2, "Press A to start", core.White)
}

// DrawGameOver draws the result banner.
func (g *Game) DrawGameOver(d device.Display) error {
	w, h := d.Size()
	if err := d.FillRect(core.NewRect(0, 0, w, h), core.Black); err != nil {
		return err
	}

	msg, color := "TRY HARDER!", core.Red
	if g.State().Won {
		msg, color = "YOU WIN!", core.Green
	}
	if err := d.DrawText(w/2-30, h/2-20, msg, color); err != nil {
		return err
	}
	if err := d.DrawText(w/2-30, h/2-5, "Score: "+strconv.Itoa(g.score), core.White); err != nil {
		return err
	}
	return d.DrawText(w/2-54, h/2+10, "Press A to restart", core.White)
}
