package breakout

import (
	"strconv"
	"testing"

	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
)

func TestDrawInitPaintsScene(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	fb := device.NewFramebuffer(320, 170)

	if err := g.DrawInit(fb); err != nil {
		t.Fatalf("DrawInit failed: %v", err)
	}

	// Brick (0,0) is dark green at its top-left.
	if fb.PixelAt(0, 0) != colorDark {
		t.Errorf("brick pixel = %v, expected %v", fb.PixelAt(0, 0), colorDark)
	}
	// Paddle is white.
	if fb.PixelAt(g.paddleX+1, g.paddleY+1) != core.White {
		t.Error("paddle pixel should be white")
	}
	// Ball is white.
	if fb.PixelAt(g.ballX+1, g.ballY+1) != core.White {
		t.Error("ball pixel should be white")
	}
	// HUD shows the zero score.
	if got := fb.TextAt(4, g.h-hudHeight+2); got != "0" {
		t.Errorf("HUD score text = %q, expected %q", got, "0")
	}
}

func TestUnchangedFrameDrawsNothing(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	fb := device.NewFramebuffer(320, 170)

	if err := g.DrawInit(fb); err != nil {
		t.Fatalf("DrawInit failed: %v", err)
	}

	// Unlaunched and untouched: two frames in a row must be free.
	ops := fb.Ops()
	for i := 0; i < 3; i++ {
		g.Tick()
		if err := g.DrawFrame(fb); err != nil {
			t.Fatalf("DrawFrame failed: %v", err)
		}
	}
	if fb.Ops() != ops {
		t.Errorf("unchanged frames performed %d draw ops, expected 0", fb.Ops()-ops)
	}
}

func TestBallMoveErasesOldPixels(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	fb := device.NewFramebuffer(320, 170)

	if err := g.DrawInit(fb); err != nil {
		t.Fatalf("DrawInit failed: %v", err)
	}

	g.launched = true
	oldX, oldY := g.ballX, g.ballY
	g.Tick()
	if err := g.DrawFrame(fb); err != nil {
		t.Fatalf("DrawFrame failed: %v", err)
	}

	// New ball drawn, trailing edge of the old one cleared.
	if fb.PixelAt(g.ballX+1, g.ballY+1) != core.White {
		t.Error("moved ball should be white at its new position")
	}
	if fb.PixelAt(oldX, oldY+g.cfg.BallSize-1) != core.Black {
		t.Error("vacated ball pixel should be black")
	}
}

func TestDestroyedBrickSlotErased(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	fb := device.NewFramebuffer(320, 170)

	if err := g.DrawInit(fb); err != nil {
		t.Fatalf("DrawInit failed: %v", err)
	}
	if fb.PixelAt(5, 5) != colorDark {
		t.Fatal("brick (0,0) should be drawn before the hit")
	}

	g.launched = true
	g.ballX, g.ballY = 4, 13
	g.ballDX, g.ballDY = 0, -2
	g.Tick()
	if g.bricks[0][0] {
		t.Fatal("setup failed: brick (0,0) not destroyed")
	}

	if err := g.DrawFrame(fb); err != nil {
		t.Fatalf("DrawFrame failed: %v", err)
	}

	// The slot rect (cell plus gap padding) is blacked out where the ball
	// isn't covering it.
	if fb.PixelAt(0, 0) != core.Black {
		t.Error("destroyed brick cell should be black")
	}
	if fb.PixelAt(12, 5) != core.Black {
		t.Error("gap padding beside the destroyed brick should be black")
	}

	// Score changed, so the HUD shows the award.
	if got := fb.TextAt(4, g.h-hudHeight+2); got != strconv.Itoa(gridRows) {
		t.Errorf("HUD score text = %q, expected %q", got, strconv.Itoa(gridRows))
	}
}

func TestHUDLifeMarkers(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	fb := device.NewFramebuffer(320, 170)

	if err := g.DrawInit(fb); err != nil {
		t.Fatalf("DrawInit failed: %v", err)
	}

	hudY := g.h - hudHeight
	for i := 0; i < g.lives; i++ {
		if fb.PixelAt(g.w-12-i*10, hudY+2) != core.Red {
			t.Errorf("life marker %d should be red", i)
		}
	}

	// Lose a life; the HUD redraw must drop one marker.
	g.launched = true
	g.ballX, g.ballY = 100, 165
	g.ballDX, g.ballDY = 0, 2
	g.Tick()
	if err := g.DrawFrame(fb); err != nil {
		t.Fatalf("DrawFrame failed: %v", err)
	}

	if fb.PixelAt(g.w-12-2*10, hudY+2) != core.Black {
		t.Error("third life marker should be gone after a lost life")
	}
	if fb.PixelAt(g.w-12-1*10, hudY+2) != core.Red {
		t.Error("second life marker should remain")
	}
}

func TestTitleAndGameOverScreens(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	fb := device.NewFramebuffer(320, 170)

	if err := g.DrawTitle(fb); err != nil {
		t.Fatalf("DrawTitle failed: %v", err)
	}
	if got := fb.TextAt(320/2-39, 170/2-20); got != "LOGO BREAKOUT" {
		t.Errorf("title text = %q", got)
	}

	g.gameOver = true
	if err := g.DrawGameOver(fb); err != nil {
		t.Fatalf("DrawGameOver failed: %v", err)
	}
	if got := fb.TextAt(320/2-30, 170/2-20); got != "TRY HARDER!" {
		t.Errorf("game over text = %q", got)
	}
}
