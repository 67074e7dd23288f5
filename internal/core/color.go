package core

// Color is a 24-bit RGB color. The display driver owns any conversion to its
// native pixel format.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Gray creates a neutral gray of the given brightness.
func Gray(v uint8) Color {
	return Color{R: v, G: v, B: v}
}

// Predefined colors for game elements.
var (
	Black  = Color{}
	White  = Color{R: 255, G: 255, B: 255}
	Red    = Color{R: 255}
	Green  = Color{G: 255}
	Yellow = Color{R: 255, G: 255}
)

// IsBlack reports whether the color is pure black, the designated transparent
// color for image overlays.
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}
