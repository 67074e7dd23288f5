package breakout

import "github.com/badgekit/arcade/internal/core"

// Brick grid dimensions. The grid matches the native cell layout of the logo
// artwork, which uses non-uniform cell widths (12px and 11px) with 3-4px
// gaps, so the coordinates are tables rather than a formula.
const (
	gridRows = 5
	gridCols = 21
)

var (
	cellX = [gridCols]int{0, 15, 31, 46, 62, 77, 93, 108, 123, 139, 154, 170, 185, 200, 216, 231, 247, 262, 278, 293, 308}
	cellW = [gridCols]int{12, 12, 11, 12, 11, 12, 11, 12, 12, 11, 12, 11, 12, 12, 11, 12, 11, 12, 11, 12, 12}
	cellY = [gridRows]int{0, 15, 31, 46, 61}
	cellH = [gridRows]int{12, 12, 11, 12, 12}
)

// Slot rectangles for erasing: cell plus surrounding gaps, so that logo
// pixels bleeding into the gaps are cleared along with the brick.
var (
	eraseX = [gridCols]int{0, 13, 29, 44, 60, 75, 91, 106, 121, 137, 152, 168, 183, 198, 214, 229, 245, 260, 276, 291, 306}
	eraseW = [gridCols]int{13, 16, 15, 16, 15, 16, 15, 15, 16, 15, 16, 15, 15, 16, 15, 16, 15, 16, 15, 15, 14}
	eraseY = [gridRows]int{0, 13, 29, 44, 59}
	eraseH = [gridRows]int{13, 16, 15, 15, 14}
)

// Logo colors, sampled from the artwork.
var (
	colorDark   = core.RGB(2, 103, 57)
	colorLight  = core.RGB(141, 198, 63)
	colorMedium = core.RGB(0, 165, 80)
	colorAccent = core.RGB(43, 181, 115)
)

var palette = [4]core.Color{colorDark, colorLight, colorMedium, colorAccent}

// Per-cell palette index: 0=dark, 1=light, 2=medium, 3=accent.
var logoColors = [gridRows][gridCols]uint8{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, // row 0: all dark border
	{2, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 1, 2, 2, 1, 2}, // row 1: lettering top
	{3, 1, 1, 1, 1, 1, 3, 1, 1, 1, 1, 3, 1, 1, 3, 3, 1, 3, 3, 1, 3}, // row 2: lettering mid
	{2, 1, 1, 1, 1, 2, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2}, // row 3: lettering bottom
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, // row 4: all dark border
}

// brickRect returns a brick's visible rectangle.
func brickRect(row, col int) core.Rect {
	return core.NewRect(cellX[col], cellY[row], cellW[col], cellH[row])
}

// slotRect returns a brick's erase rectangle, padding included.
func slotRect(row, col int) core.Rect {
	return core.NewRect(eraseX[col], eraseY[row], eraseW[col], eraseH[row])
}

// brickColor returns a brick's palette color.
func brickColor(row, col int) core.Color {
	return palette[logoColors[row][col]]
}
