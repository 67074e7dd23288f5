package snake

import (
	"context"
	"testing"

	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
)

func committedAfterUpdate(t *testing.T, g *Game) []core.Color {
	t.Helper()
	strip := device.NewLEDStrip(5)
	g.UpdateLEDs(strip)
	if err := strip.Commit(context.Background()); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	return strip.Committed()
}

func TestLEDsScoreBarSplit(t *testing.T) {
	tests := []struct {
		score             int
		leftLit, rightLit int
	}{
		{score: 0, leftLit: 0, rightLit: 0},
		{score: 1, leftLit: 1, rightLit: 0},
		{score: 2, leftLit: 2, rightLit: 0},
		{score: 3, leftLit: 2, rightLit: 1},
		{score: 5, leftLit: 2, rightLit: 3},
	}
	for _, tt := range tests {
		g := New()
		g.Reset(testRuntime(42))
		g.score = tt.score

		leds := committedAfterUpdate(t, g)
		left, right := leds[:5], leds[5:]

		// The left bar holds the lower half of the graph, the right bar
		// the rest.
		for i := 0; i < 5; i++ {
			want := core.Black
			if i < tt.leftLit {
				want = ledScoreColor
			}
			if left[i] != want {
				t.Errorf("score %d: left LED %d = %v, want %v", tt.score, i, left[i], want)
			}
			want = core.Black
			if i < tt.rightLit {
				want = ledScoreColor
			}
			if right[i] != want {
				t.Errorf("score %d: right LED %d = %v, want %v", tt.score, i, right[i], want)
			}
		}
	}
}

func TestLEDsScoreCapped(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.score = 7

	leds := committedAfterUpdate(t, g)

	lit := 0
	for _, c := range leds {
		if c == ledScoreColor {
			lit++
		}
	}
	// The graph saturates at the per-bar LED count, not the bank size.
	if lit != 5 {
		t.Fatalf("lit LEDs = %d at score 7, want 5", lit)
	}
	left, right := leds[:5], leds[5:]
	for i := 2; i < 5; i++ {
		if left[i] != core.Black {
			t.Errorf("left LED %d should stay dark", i)
		}
	}
	for i := 0; i < 3; i++ {
		if right[i] != ledScoreColor {
			t.Errorf("right LED %d should be lit", i)
		}
	}
}

func TestLEDsGameOverFill(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.gameOver = true

	for i, c := range committedAfterUpdate(t, g) {
		if c != ledDeadColor {
			t.Errorf("LED %d should be red on game over", i)
		}
	}
}
