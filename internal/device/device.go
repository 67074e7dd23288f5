// Package device defines the peripheral surface the arcade engine draws and
// listens on: a pixel display, a bank of LEDs, discrete buttons, and the
// backlight. The engine only sees these interfaces; hardware details (bus,
// pixel format, GPIO polling, debouncing) live behind them. In-memory
// implementations in this package back the test suite and the terminal
// platform.
package device

import (
	"context"
	"image"

	"github.com/badgekit/arcade/internal/core"
)

// Glyph cell dimensions for monospace text, matching a 6x10 bitmap font.
const (
	GlyphW = 6
	GlyphH = 10
)

// Display accepts filled-rectangle and monospace text draws, plus a one-shot
// full-surface image overlay with a designated transparent color. The origin
// is the top-left corner and coordinates are pixel-addressed.
type Display interface {
	Size() (w, h int)
	FillRect(r core.Rect, c core.Color) error
	DrawText(x, y int, text string, c core.Color) error
	DrawImage(img image.Image, transparent core.Color) error
}

// LEDs is an addressable bank of two symmetric bars plus whole-bank fill and
// clear. Set operations stage state; Commit pushes it to the strip
// asynchronously.
type LEDs interface {
	BarCount() int
	SetLeftBar(colors []core.Color)
	SetRightBar(colors []core.Color)
	Fill(c core.Color)
	Clear()
	Commit(ctx context.Context) error
}

// Button identifies one of the discrete inputs.
type Button int

const (
	ButtonA Button = iota
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight

	buttonCount
)

// String returns the button's name.
func (b Button) String() string {
	switch b {
	case ButtonA:
		return "a"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// Buttons exposes level reads for all buttons and a debounced edge-wait that
// completes once on a clean press.
type Buttons interface {
	Pressed(b Button) bool
	WaitForPress(ctx context.Context, b Button) error
}

// Backlight is the display backlight, binary on/off.
type Backlight interface {
	On() error
	Off() error
}

// InputState is a snapshot of button levels taken once per tick.
type InputState struct {
	Up, Down, Left, Right, A bool
}

// Sample reads the current level of every button.
func Sample(btns Buttons) InputState {
	return InputState{
		Up:    btns.Pressed(ButtonUp),
		Down:  btns.Pressed(ButtonDown),
		Left:  btns.Pressed(ButtonLeft),
		Right: btns.Pressed(ButtonRight),
		A:     btns.Pressed(ButtonA),
	}
}

// NopBacklight satisfies Backlight for surfaces without one.
type NopBacklight struct{}

func (NopBacklight) On() error  { return nil }
func (NopBacklight) Off() error { return nil }
