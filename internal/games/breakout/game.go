// Package breakout implements Logo Breakout: a brick-breaking game played
// against the badge's logo artwork. The brick grid mirrors the logo's native
// cell layout, and destroying a brick reveals the black background behind it.
package breakout

import (
	"image"
	"os"
	"time"

	_ "image/gif" // optional logo overlay formats
	_ "image/png"

	"github.com/badgekit/arcade/internal/config"
	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
	"github.com/badgekit/arcade/internal/registry"
)

// hudHeight is the status bar at the very bottom of the screen.
const hudHeight = 14

// Default launch velocity.
const (
	launchDX = 2
	launchDY = -2
)

// gameConfig holds the tuning applied on the next Reset. The CLI overrides
// it before creating the game.
var gameConfig = config.Default().Breakout

// SetConfig sets the tuning used by new play sessions.
func SetConfig(cfg config.BreakoutConfig) {
	gameConfig = cfg
}

// Game implements the Logo Breakout simulation and rendering.
type Game struct {
	cfg     config.BreakoutConfig
	w, h    int
	paddleY int

	paddleX        int
	ballX, ballY   int
	ballDX, ballDY int
	bricks         [gridRows][gridCols]bool
	score          int
	lives          int
	launched       bool
	gameOver       bool
	ledFlash       int

	logo image.Image
	diff differ
}

// New creates a new Logo Breakout game instance.
func New() *Game {
	return &Game{cfg: gameConfig}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name.
func (g *Game) Title() string { return "Logo Breakout" }

// TickInterval returns the fixed simulation period.
func (g *Game) TickInterval() time.Duration {
	return time.Duration(g.cfg.TickMS) * time.Millisecond
}

// Reset starts a fresh play session on the given surface.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.cfg = gameConfig
	g.w = rt.DisplayW
	g.h = rt.DisplayH
	g.paddleY = g.h - 24

	g.paddleX = g.w/2 - g.cfg.PaddleWidth/2
	g.score = 0
	g.lives = g.cfg.Lives
	g.launched = false
	g.gameOver = false
	g.ledFlash = 0
	for row := range g.bricks {
		for col := range g.bricks[row] {
			g.bricks[row][col] = true
		}
	}
	g.resetBall()

	g.logo = nil
	if g.cfg.Logo != "" {
		if img, err := loadLogo(g.cfg.Logo); err == nil {
			g.logo = img
		}
	}

	g.diff = differ{}
}

// resetBall places the ball above the paddle with the default launch
// velocity, waiting for the next launch.
func (g *Game) resetBall() {
	g.ballX = g.paddleX + g.cfg.PaddleWidth/2
	g.ballY = g.paddleY - g.cfg.BallSize - 1
	g.ballDX = launchDX
	g.ballDY = launchDY
	g.launched = false
}

// bricksRemaining counts alive bricks.
func (g *Game) bricksRemaining() int {
	count := 0
	for row := range g.bricks {
		for col := range g.bricks[row] {
			if g.bricks[row][col] {
				count++
			}
		}
	}
	return count
}

// HandleInput applies sampled button levels: left/right move the paddle
// (clamped to the display), the unlaunched ball tracks the paddle center,
// and A launches.
func (g *Game) HandleInput(in device.InputState) {
	if g.gameOver {
		return
	}

	if in.Left {
		g.paddleX -= g.cfg.PaddleSpeed
	}
	if in.Right {
		g.paddleX += g.cfg.PaddleSpeed
	}
	g.paddleX = core.Clamp(g.paddleX, 0, g.w-g.cfg.PaddleWidth)

	if !g.launched {
		g.ballX = g.paddleX + g.cfg.PaddleWidth/2
		if in.A {
			g.launched = true
		}
	}
}

// Tick advances the simulation by one step.
func (g *Game) Tick() {
	if g.gameOver || !g.launched {
		return
	}

	if g.ledFlash > 0 {
		g.ledFlash--
	}

	size := g.cfg.BallSize
	g.ballX += g.ballDX
	g.ballY += g.ballDY

	g.ballX, g.ballY, g.ballDX, g.ballDY = reflectWalls(g.ballX, g.ballY, g.ballDX, g.ballDY, size, g.w)

	// Ball fell past the paddle.
	if g.ballY+size >= g.h {
		g.lives--
		if g.lives <= 0 {
			g.lives = 0
			g.gameOver = true
		} else {
			g.resetBall()
		}
		return
	}

	if paddleHit(g.ballX, g.ballY, size, g.ballDY, g.paddleX, g.paddleY, g.cfg.PaddleWidth, g.cfg.PaddleHeight) {
		g.ballDY = -core.Abs(g.ballDY)
		g.ballDX = paddleDeflect(g.ballX, size, g.paddleX, g.cfg.PaddleWidth, g.ballDX)
	}

	// Brick scan: fixed row-major order, only the first hit resolves this
	// tick.
	ball := core.NewRect(g.ballX, g.ballY, size, size)
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			if !g.bricks[row][col] {
				continue
			}
			brick := brickRect(row, col)
			if !ball.Intersects(brick) {
				continue
			}

			g.bricks[row][col] = false
			g.score += gridRows - row
			g.ledFlash = g.cfg.LEDFlashTicks

			ballCX, ballCY := ball.Center()
			brickCX, brickCY := brick.Center()
			if bounceAxis(ballCX, ballCY, brickCX, brickCY) == AxisX {
				g.ballDX = -g.ballDX
			} else {
				g.ballDY = -g.ballDY
			}

			if g.bricksRemaining() == 0 {
				g.gameOver = true
			}
			return
		}
	}
}

// State reports score and terminal status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.gameOver && g.bricksRemaining() == 0,
	}
}

// loadLogo decodes the optional overlay image.
func loadLogo(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
