package device

import (
	"fmt"
	"image"
	"sync"

	"github.com/badgekit/arcade/internal/core"
)

// textCell is one monospace glyph placed on the framebuffer. Glyphs live in
// an overlay rather than being rasterized; a fill that intersects a glyph's
// cell erases it, matching how fills clear text on the physical panel.
type textCell struct {
	ch    byte
	color core.Color
}

// Framebuffer is an in-memory Display. It backs the terminal platform and the
// test suite. A mutex guards it because the terminal view reads pixels from a
// different goroutine than the engine that draws them.
type Framebuffer struct {
	mu     sync.RWMutex
	w, h   int
	pixels []core.Color
	glyphs map[core.Point]textCell
	ops    uint64
}

// NewFramebuffer creates a black framebuffer of the given size.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{
		w:      w,
		h:      h,
		pixels: make([]core.Color, w*h),
		glyphs: make(map[core.Point]textCell),
	}
}

// Size returns the framebuffer dimensions in pixels.
func (f *Framebuffer) Size() (int, int) {
	return f.w, f.h
}

// Ops returns the number of draw operations performed so far. The render
// differ tests use it to verify that an unchanged frame draws nothing.
func (f *Framebuffer) Ops() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.ops
}

// FillRect fills a rectangle, clipped to the framebuffer, and erases any
// glyph whose cell intersects it.
func (f *Framebuffer) FillRect(r core.Rect, c core.Color) error {
	if r.Empty() {
		return fmt.Errorf("device: fill of empty rect %+v", r)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops++

	x0 := core.Clamp(r.X, 0, f.w)
	y0 := core.Clamp(r.Y, 0, f.h)
	x1 := core.Clamp(r.Right(), 0, f.w)
	y1 := core.Clamp(r.Bottom(), 0, f.h)
	for y := y0; y < y1; y++ {
		row := f.pixels[y*f.w : (y+1)*f.w]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}

	for p := range f.glyphs {
		cell := core.NewRect(p.X, p.Y, GlyphW, GlyphH)
		if cell.Intersects(r) {
			delete(f.glyphs, p)
		}
	}
	return nil
}

// DrawText places one glyph per character starting at (x, y).
func (f *Framebuffer) DrawText(x, y int, text string, c core.Color) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops++

	for i := 0; i < len(text); i++ {
		p := core.Point{X: x + i*GlyphW, Y: y}
		if p.X+GlyphW <= 0 || p.X >= f.w || p.Y+GlyphH <= 0 || p.Y >= f.h {
			continue
		}
		f.glyphs[p] = textCell{ch: text[i], color: c}
	}
	return nil
}

// DrawImage copies the image onto the framebuffer, skipping pixels of the
// transparent color. The image is anchored at the origin.
func (f *Framebuffer) DrawImage(img image.Image, transparent core.Color) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops++

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		fy := y - b.Min.Y
		if fy >= f.h {
			break
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			fx := x - b.Min.X
			if fx >= f.w {
				break
			}
			r, g, bl, _ := img.At(x, y).RGBA()
			c := core.RGB(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
			if c == transparent {
				continue
			}
			f.pixels[fy*f.w+fx] = c
		}
	}
	return nil
}

// PixelAt returns the pixel color at (x, y), or black when out of bounds.
func (f *Framebuffer) PixelAt(x, y int) core.Color {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return core.Black
	}
	return f.pixels[y*f.w+x]
}

// GlyphAt returns the character anchored at exactly (x, y) and whether one is
// present.
func (f *Framebuffer) GlyphAt(x, y int) (byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	cell, ok := f.glyphs[core.Point{X: x, Y: y}]
	return cell.ch, ok
}

// TextAt reassembles the string starting at (x, y) by walking consecutive
// glyph cells.
func (f *Framebuffer) TextAt(x, y int) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []byte
	for {
		cell, ok := f.glyphs[core.Point{X: x, Y: y}]
		if !ok {
			break
		}
		out = append(out, cell.ch)
		x += GlyphW
	}
	return string(out)
}

// Snapshot copies the pixel buffer and glyph overlay for rendering. The
// returned slice is row-major, length w*h.
func (f *Framebuffer) Snapshot() ([]core.Color, map[core.Point]rune, map[core.Point]core.Color) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	px := make([]core.Color, len(f.pixels))
	copy(px, f.pixels)
	chars := make(map[core.Point]rune, len(f.glyphs))
	colors := make(map[core.Point]core.Color, len(f.glyphs))
	for p, cell := range f.glyphs {
		chars[p] = rune(cell.ch)
		colors[p] = cell.color
	}
	return px, chars, colors
}
