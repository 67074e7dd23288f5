package snake

import (
	"testing"

	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
)

func TestDrawInitPaintsScene(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	fb := device.NewFramebuffer(320, 170)

	if err := g.DrawInit(fb); err != nil {
		t.Fatalf("DrawInit failed: %v", err)
	}

	cell := g.cfg.CellSize
	head := g.body[0]
	if fb.PixelAt(head.X*cell, head.Y*cell) != snakeColor {
		t.Error("head cell should be green")
	}
	if fb.PixelAt(g.food.X*cell, g.food.Y*cell) != foodColor {
		t.Error("food cell should be red")
	}
	// One-pixel separator between cells stays black.
	if fb.PixelAt(head.X*cell+cell-1, head.Y*cell) != core.Black {
		t.Error("cell border pixel should be black")
	}
	if got := fb.TextAt(4, 4); got != "0" {
		t.Errorf("score text = %q, expected %q", got, "0")
	}
}

func TestUnchangedFrameDrawsNothing(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	fb := device.NewFramebuffer(320, 170)

	if err := g.DrawInit(fb); err != nil {
		t.Fatalf("DrawInit failed: %v", err)
	}

	ops := fb.Ops()
	if err := g.DrawFrame(fb); err != nil {
		t.Fatalf("DrawFrame failed: %v", err)
	}
	if fb.Ops() != ops {
		t.Errorf("frame without a tick performed %d draw ops, expected 0", fb.Ops()-ops)
	}
}

func TestFrameRedrawsAfterTick(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.food = core.Point{X: 0, Y: 0}
	fb := device.NewFramebuffer(320, 170)

	if err := g.DrawInit(fb); err != nil {
		t.Fatalf("DrawInit failed: %v", err)
	}

	tail := g.body[len(g.body)-1]
	g.Tick()
	if err := g.DrawFrame(fb); err != nil {
		t.Fatalf("DrawFrame failed: %v", err)
	}

	cell := g.cfg.CellSize
	if fb.PixelAt(g.body[0].X*cell, g.body[0].Y*cell) != snakeColor {
		t.Error("new head cell should be green")
	}
	if fb.PixelAt(tail.X*cell, tail.Y*cell) != core.Black {
		t.Error("vacated tail cell should be black after the full redraw")
	}
}
