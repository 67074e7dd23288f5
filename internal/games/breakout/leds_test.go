package breakout

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

func TestLEDsFullGridLightsBothBars(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	for i, c := range committedAfterUpdate(t, g) {
		if c != barColor {
			t.Errorf("LED %d should be lit with all bricks alive", i)
		}
	}
}

func TestLEDsProgressRoundsUp(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	// One brick left out of 105 still lights one LED per bar.
	for row := range g.bricks {
		for col := range g.bricks[row] {
			g.bricks[row][col] = false
		}
	}
	g.bricks[0][0] = true

	leds := committedAfterUpdate(t, g)
	left, right := leds[:5], leds[5:]

	if left[0] != barColor || right[0] != barColor {
		t.Error("first LED of each bar should be lit while a brick remains")
	}
	for i := 1; i < 5; i++ {
		if left[i] != core.Black || right[i] != core.Black {
			t.Errorf("LED %d should be dark with one brick left", i)
		}
	}
}

func TestLEDsFlashOverridesBars(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.ledFlash = 6

	want := core.Gray(24) // countdown * 4
	for i, c := range committedAfterUpdate(t, g) {
		if c != want {
			t.Errorf("LED %d = %v during flash, expected %v", i, c, want)
		}
	}
}

func TestLEDFlashDimsWithCountdown(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	g.ledFlash = 2
	leds := committedAfterUpdate(t, g)
	if leds[0] != core.Gray(8) {
		t.Errorf("LED brightness = %v at countdown 2, expected %v", leds[0], core.Gray(8))
	}
}
