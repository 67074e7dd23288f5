package breakout

import "testing"

func TestReflectWalls(t *testing.T) {
	tests := []struct {
		name                   string
		x, y, dx, dy           int
		wantX, wantY           int
		wantDX, wantDY         int
	}{
		{"free flight", 50, 50, 2, -2, 50, 50, 2, -2},
		{"left wall", -1, 50, -2, -2, 0, 50, 2, -2},
		{"right wall", 318, 50, 2, 2, 316, 50, -2, 2},
		{"top wall", 50, -1, 2, -2, 50, 0, 2, 2},
		{"corner", -1, -1, -2, -2, 0, 0, 2, 2},
		{"exactly at left edge", 0, 50, -2, 2, 0, 50, 2, 2},
	}

	const size, w = 4, 320
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, dx, dy := reflectWalls(tc.x, tc.y, tc.dx, tc.dy, size, w)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("position = (%d, %d), expected (%d, %d)", x, y, tc.wantX, tc.wantY)
			}
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Errorf("velocity = (%d, %d), expected (%d, %d)", dx, dy, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestPaddleHit(t *testing.T) {
	// Paddle at (100, 146), 40x6. Ball size 4.
	const px, py, pw, ph = 100, 146, 40, 6

	tests := []struct {
		name         string
		ballX, ballY int
		dy           int
		expected     bool
	}{
		{"descending onto paddle", 110, 143, 2, true},
		{"ascending through paddle", 110, 143, -2, false},
		{"above paddle", 110, 130, 2, false},
		{"left of paddle", 90, 143, 2, false},
		{"right of paddle", 141, 143, 2, false},
		{"grazing left edge", 97, 143, 2, true},
		{"bottom beyond paddle", 110, 149, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := paddleHit(tc.ballX, tc.ballY, 4, tc.dy, px, py, pw, ph)
			if got != tc.expected {
				t.Errorf("paddleHit = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPaddleDeflectZones(t *testing.T) {
	// Paddle at x=100, width 40, so thirds split at offsets 13 and 26.
	const px, pw, size = 100, 40, 4

	tests := []struct {
		name     string
		ballX    int
		dx       int
		expected int
	}{
		{"outer left", 103, 2, -3},
		{"outer right", 130, -2, 3},
		{"center moving right", 115, 2, 2},
		{"center moving left", 115, -2, -2},
		{"center zero keeps left", 115, 0, -2},
		{"first third boundary is center", 111, 2, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := paddleDeflect(tc.ballX, size, px, pw, tc.dx)
			if got != tc.expected {
				t.Errorf("paddleDeflect = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestBounceAxis(t *testing.T) {
	tests := []struct {
		name                           string
		ballCX, ballCY, brickCX, brickCY int
		expected                       Axis
	}{
		{"side contact", 20, 6, 10, 6, AxisX},
		{"top contact", 10, 20, 10, 6, AxisY},
		{"diagonal tie reflects vertically", 16, 12, 10, 6, AxisY},
		{"mostly horizontal", 18, 8, 10, 6, AxisX},
		{"mostly vertical", 12, 16, 10, 6, AxisY},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := bounceAxis(tc.ballCX, tc.ballCY, tc.brickCX, tc.brickCY)
			if got != tc.expected {
				t.Errorf("bounceAxis = %v, expected %v", got, tc.expected)
			}
		})
	}
}
