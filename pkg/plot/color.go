package plot

import (
	"fmt"
	"strings"
)

// Color is an RGBA color. Alpha is in [0,1] where 1 is fully opaque.
type Color struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// Common colors used by charts and the graph renderer.
var (
	Black     = Color{0, 0, 0, 1}
	White     = Color{255, 255, 255, 1}
	Red       = Color{255, 0, 0, 1}
	Green     = Color{0, 128, 0, 1}
	Blue      = Color{0, 0, 255, 1}
	Yellow    = Color{255, 255, 0, 1}
	Orange    = Color{255, 165, 0, 1}
	Purple    = Color{128, 0, 128, 1}
	Cyan      = Color{0, 255, 255, 1}
	Magenta   = Color{255, 0, 255, 1}
	Gray      = Color{128, 128, 128, 1}
	LightGray = Color{211, 211, 211, 1}
	DarkGray  = Color{64, 64, 64, 1}

	// Chrome colors for the assembled figure.
	gridColor = Color{230, 230, 230, 1}
	axisColor = Color{77, 77, 77, 1}
)

// SVG returns the color formatted for use in an SVG attribute.
// Opaque colors render as rgb(...), translucent ones as rgba(...).
func (c Color) SVG() string {
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, c.A)
}

// WithAlpha returns a copy of the color with the given opacity.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// namedColors maps CSS-ish color names to their Color values.
// Both the "grey" and "gray" spellings are accepted.
var namedColors = map[string]Color{
	"black":     Black,
	"white":     White,
	"red":       Red,
	"green":     Green,
	"blue":      Blue,
	"yellow":    Yellow,
	"orange":    Orange,
	"purple":    Purple,
	"cyan":      Cyan,
	"magenta":   Magenta,
	"gray":      Gray,
	"grey":      Gray,
	"lightgray": LightGray,
	"lightgrey": LightGray,
	"darkgray":  DarkGray,
	"darkgrey":  DarkGray,
}

// NamedColor looks up a color by its lowercase name.
func NamedColor(name string) (Color, bool) {
	c, ok := namedColors[strings.ToLower(name)]
	return c, ok
}

// Palette is an ordered color cycle for series without an explicit color.
// It is indexed by series count rather than hidden internal state.
type Palette struct {
	colors []Color
}

// NewPalette creates a palette from the given colors.
// An empty argument list yields the default cycle.
func NewPalette(colors ...Color) Palette {
	if len(colors) == 0 {
		return DefaultPalette()
	}
	return Palette{colors: colors}
}

// DefaultPalette returns the standard ten-color cycle.
func DefaultPalette() Palette {
	return Palette{colors: []Color{
		{31, 119, 180, 1},  // blue
		{255, 127, 14, 1},  // orange
		{44, 160, 44, 1},   // green
		{214, 39, 40, 1},   // red
		{148, 103, 189, 1}, // purple
		{140, 86, 75, 1},   // brown
		{227, 119, 194, 1}, // pink
		{127, 127, 127, 1}, // gray
		{188, 189, 34, 1},  // olive
		{23, 190, 207, 1},  // cyan
	}}
}

// Color returns the color for the i-th series, wrapping around the cycle.
func (p Palette) Color(i int) Color {
	if len(p.colors) == 0 {
		return Black
	}
	return p.colors[((i%len(p.colors))+len(p.colors))%len(p.colors)]
}

// Len returns the number of colors in the cycle.
func (p Palette) Len() int { return len(p.colors) }
