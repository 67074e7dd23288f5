package term

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/badgekit/arcade/internal/core"
	"github.com/badgekit/arcade/internal/device"
)

// Half-block rendering packs two framebuffer pixels into one terminal cell:
// the upper pixel becomes the foreground of '▀' and the lower pixel the
// background. With scale=1 a 320x170 frame needs a 320x85 terminal.
const halfBlock = '▀'

// styleKey identifies a cached lipgloss style.
type styleKey struct {
	fg    core.Color
	bg    core.Color
	hasBG bool
}

var styleCache = map[styleKey]lipgloss.Style{}

func styleFor(fg, bg core.Color, hasBG bool) lipgloss.Style {
	key := styleKey{fg: fg, bg: bg, hasBG: hasBG}
	if s, ok := styleCache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(fg)))
	if hasBG {
		s = s.Background(lipgloss.Color(hexColor(bg)))
	}
	styleCache[key] = s
	return s
}

func hexColor(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// glyphRun is a horizontal run of text reassembled from the glyph overlay.
type glyphRun struct {
	x, y  int
	text  []rune
	color core.Color
}

// collectRuns groups glyph cells into runs: same row, anchors exactly one
// glyph width apart. Runs render compactly in terminal cells regardless of
// the pixel-space glyph pitch.
func collectRuns(chars map[core.Point]rune, colors map[core.Point]core.Color) []glyphRun {
	points := make([]core.Point, 0, len(chars))
	for p := range chars {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})

	var runs []glyphRun
	for i := 0; i < len(points); {
		p := points[i]
		run := glyphRun{x: p.X, y: p.Y, color: colors[p], text: []rune{chars[p]}}
		j := i + 1
		for j < len(points) &&
			points[j].Y == p.Y &&
			points[j].X == points[j-1].X+device.GlyphW &&
			colors[points[j]] == run.color {
			run.text = append(run.text, chars[points[j]])
			j++
		}
		runs = append(runs, run)
		i = j
	}
	return runs
}

// RenderFrame converts a framebuffer snapshot plus the LED strip into a
// styled string. Adjacent cells with the same colors are grouped to keep
// ANSI escape sequences down.
func RenderFrame(fb *device.Framebuffer, leds *device.LEDStrip, scale int) string {
	if scale < 1 {
		scale = 1
	}
	w, h := fb.Size()
	pixels, chars, colors := fb.Snapshot()

	cols := w / scale
	rows := h / (scale * 2)

	// Text overlay grid: run characters replace pixel cells.
	type overlayCell struct {
		ch    rune
		color core.Color
	}
	overlay := make(map[[2]int]overlayCell)
	for _, run := range collectRuns(chars, colors) {
		row := run.y / (scale * 2)
		col := run.x / scale
		for k, ch := range run.text {
			if col+k >= cols || row >= rows {
				break
			}
			overlay[[2]int{col + k, row}] = overlayCell{ch: ch, color: run.color}
		}
	}

	pixelAt := func(cx, cy int) core.Color {
		x := cx * scale
		y := cy * scale
		if x >= w || y >= h {
			return core.Black
		}
		return pixels[y*w+x]
	}

	var sb strings.Builder
	sb.Grow(cols*rows*4 + rows)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < cols {
			if cell, ok := overlay[[2]int{col, row}]; ok {
				sb.WriteString(styleFor(cell.color, core.Black, false).Render(string(cell.ch)))
				col++
				continue
			}

			top := pixelAt(col, row*2)
			bottom := pixelAt(col, row*2+1)

			// Collect a run of identical cells.
			var run strings.Builder
			for col < cols {
				if _, ok := overlay[[2]int{col, row}]; ok {
					break
				}
				t := pixelAt(col, row*2)
				b := pixelAt(col, row*2+1)
				if t != top || b != bottom {
					break
				}
				if top.IsBlack() && bottom.IsBlack() {
					run.WriteRune(' ')
				} else {
					run.WriteRune(halfBlock)
				}
				col++
			}

			if top.IsBlack() && bottom.IsBlack() {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(top, bottom, true).Render(run.String()))
			}
		}
	}

	sb.WriteRune('\n')
	sb.WriteString(renderLEDs(leds, cols))
	return sb.String()
}

// ledGain brightens LED levels for the terminal. The feedback mappers emit
// hardware brightness values that would be nearly invisible as RGB text
// colors.
const ledGain = 10

// renderLEDs draws the strip as one line of dots, left bar then right bar,
// centered under the frame.
func renderLEDs(leds *device.LEDStrip, cols int) string {
	committed := leds.Committed()
	bars := leds.BarCount()

	var sb strings.Builder
	write := func(colors []core.Color) {
		for _, c := range colors {
			if c.IsBlack() {
				sb.WriteString(styleFor(core.Gray(60), core.Black, false).Render("·"))
				continue
			}
			bright := core.RGB(gain(c.R), gain(c.G), gain(c.B))
			sb.WriteString(styleFor(bright, core.Black, false).Render("●"))
		}
	}
	write(committed[:bars])
	sb.WriteString("  ")
	write(committed[bars:])

	width := bars*2 + 2
	pad := (cols - width) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + sb.String()
}

func gain(v uint8) uint8 {
	n := int(v) * ledGain
	if n > 255 {
		n = 255
	}
	return uint8(n)
}
