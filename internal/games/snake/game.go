// Package snake implements the grid Snake game: eat food to grow, avoid the
// walls and your own body.
package snake

import (
	"time"

	"github.com/badgekit/arcade/internal/config"
	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
	"github.com/badgekit/arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns the direction's name.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// delta returns the per-tick cell offset for the direction.
func (d Direction) delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

// isOpposite reports whether two directions reverse each other.
func (d Direction) isOpposite(other Direction) bool {
	return (d == DirUp && other == DirDown) ||
		(d == DirDown && other == DirUp) ||
		(d == DirLeft && other == DirRight) ||
		(d == DirRight && other == DirLeft)
}

// initialLength is the body length at the start of a session.
const initialLength = 4

// gameConfig holds the tuning applied on the next Reset.
var gameConfig = config.Default().Snake

// SetConfig sets the tuning used by new play sessions.
func SetConfig(cfg config.SnakeConfig) {
	gameConfig = cfg
}

// Game implements the Snake simulation and rendering.
type Game struct {
	cfg          config.SnakeConfig
	w, h         int
	gridW, gridH int

	body     []core.Point // Head at index 0
	dir      Direction
	nextDir  Direction // Buffered direction for the next tick
	food     core.Point
	score    int
	gameOver bool
	rng      *core.XorShift32

	// version increments whenever the visible state changes; the renderer
	// skips frames where it hasn't.
	version uint64
	frame   renderer
}

// New creates a new Snake game instance.
func New() *Game {
	return &Game{cfg: gameConfig}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// TickInterval returns the fixed simulation period.
func (g *Game) TickInterval() time.Duration {
	return time.Duration(g.cfg.TickMS) * time.Millisecond
}

// Reset starts a fresh play session on the given surface.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.cfg = gameConfig
	g.w = rt.DisplayW
	g.h = rt.DisplayH
	g.gridW = g.w / g.cfg.CellSize
	g.gridH = g.h / g.cfg.CellSize

	seed := rt.Seed
	if seed == 0 {
		seed = g.cfg.Seed
	}
	g.rng = core.NewXorShift32(seed)

	startX := g.gridW / 2
	startY := g.gridH / 2
	g.body = g.body[:0]
	for i := 0; i < initialLength; i++ {
		g.body = append(g.body, core.Point{X: startX - i, Y: startY})
	}
	g.dir = DirRight
	g.nextDir = DirRight
	g.score = 0
	g.gameOver = false
	g.version++
	g.frame = renderer{}

	g.spawnFood()
}

// spawnFood relocates the food to a uniformly sampled free cell, resampling
// until the candidate is outside the body. Termination relies on free cells
// existing, which holds for any reachable snake length on this grid.
func (g *Game) spawnFood() {
	for {
		p := core.Point{X: g.rng.Intn(g.gridW), Y: g.rng.Intn(g.gridH)}
		if !g.bodyContains(p) {
			g.food = p
			return
		}
	}
}

// bodyContains reports whether any body segment occupies the cell.
func (g *Game) bodyContains(p core.Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// HandleInput buffers a direction change from the d-pad levels.
func (g *Game) HandleInput(in device.InputState) {
	switch {
	case in.Up:
		g.nextDir = DirUp
	case in.Down:
		g.nextDir = DirDown
	case in.Left:
		g.nextDir = DirLeft
	case in.Right:
		g.nextDir = DirRight
	}
}

// Tick advances the simulation by one step: adopt the buffered direction
// unless it reverses the current one, move the head one cell, and resolve
// wall/self/food contact.
func (g *Game) Tick() {
	if g.gameOver {
		return
	}

	if !g.nextDir.isOpposite(g.dir) {
		g.dir = g.nextDir
	}

	head := g.body[0]
	d := g.dir.delta()
	newHead := core.Point{X: head.X + d.X, Y: head.Y + d.Y}

	if newHead.X < 0 || newHead.X >= g.gridW || newHead.Y < 0 || newHead.Y >= g.gridH {
		g.gameOver = true
		g.version++
		return
	}

	// Self collision is evaluated against the pre-move body: the tail cell
	// still counts even though it is about to move away.
	if g.bodyContains(newHead) {
		g.gameOver = true
		g.version++
		return
	}

	g.body = append([]core.Point{newHead}, g.body...)

	if newHead == g.food {
		g.score++
		g.spawnFood()
	} else {
		g.body = g.body[:len(g.body)-1]
	}
	g.version++
}

// State reports score and terminal status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      false,
	}
}
