package breakout

import "github.com/badgekit/arcade/internal/core"

// Axis identifies the axis along which a bounce reflects velocity.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// reflectWalls resolves left/right/top wall contact: the ball is clamped to
// the boundary and the perpendicular velocity component is flipped via its
// absolute value, preserving magnitude. The bottom edge is not a wall; the
// caller handles it as a lost ball.
func reflectWalls(x, y, dx, dy, size, w int) (int, int, int, int) {
	if x <= 0 {
		x = 0
		dx = core.Abs(dx)
	}
	if x+size >= w {
		x = w - size
		dx = -core.Abs(dx)
	}
	if y <= 0 {
		y = 0
		dy = core.Abs(dy)
	}
	return x, y, dx, dy
}

// paddleHit reports whether a downward-moving ball is in contact with the
// paddle. Overlap is strict on both axes.
func paddleHit(ballX, ballY, size, dy, paddleX, paddleY, paddleW, paddleH int) bool {
	return dy > 0 &&
		ballY+size >= paddleY &&
		ballY+size <= paddleY+paddleH &&
		ballX+size > paddleX &&
		ballX < paddleX+paddleW
}

// paddleDeflect chooses the horizontal velocity after paddle contact using a
// three-zone split of the contact offset: outer thirds send the ball steeply
// toward that side, the middle third keeps the current horizontal sign at
// moderate speed.
func paddleDeflect(ballX, ballSize, paddleX, paddleW, dx int) int {
	hit := ballX + ballSize/2 - paddleX
	third := paddleW / 3
	switch {
	case hit < third:
		return -3
	case hit > third*2:
		return 3
	case dx > 0:
		return 2
	default:
		return -2
	}
}

// bounceAxis selects the reflection axis for a brick hit by comparing the
// absolute center-to-center distances: the larger distance marks the axis of
// contact. Ties reflect vertically.
func bounceAxis(ballCX, ballCY, brickCX, brickCY int) Axis {
	dx := core.Abs(ballCX - brickCX)
	dy := core.Abs(ballCY - brickCY)
	if dx > dy {
		return AxisX
	}
	return AxisY
}
