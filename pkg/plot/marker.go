package plot

import "fmt"

// Marker selects the glyph drawn at each point of a scatter series.
type Marker int

const (
	// MarkerNone draws nothing.
	MarkerNone Marker = iota
	// MarkerCircle is a filled circle.
	MarkerCircle
	// MarkerSquare is a filled axis-aligned square.
	MarkerSquare
	// MarkerDiamond is a filled rotated square.
	MarkerDiamond
	// MarkerEllipse is a wide filled ellipse (graphviz default node shape).
	MarkerEllipse
	// MarkerMdiamond is the graphviz Mdiamond outline glyph.
	MarkerMdiamond
	// MarkerMsquare is the graphviz Msquare outline glyph (cut-corner octagon).
	MarkerMsquare
)

// String returns the marker's lowercase name.
func (m Marker) String() string {
	switch m {
	case MarkerCircle:
		return "circle"
	case MarkerSquare:
		return "square"
	case MarkerDiamond:
		return "diamond"
	case MarkerEllipse:
		return "ellipse"
	case MarkerMdiamond:
		return "mdiamond"
	case MarkerMsquare:
		return "msquare"
	default:
		return "none"
	}
}

// Visible reports whether the marker draws anything.
func (m Marker) Visible() bool { return m != MarkerNone }

// SVGElement renders the marker glyph centered at pixel position (x, y).
// Size is the glyph footprint in pixels; color is a resolved SVG color string.
func (m Marker) SVGElement(x, y, size float64, color string) string {
	half := size / 2
	switch m {
	case MarkerCircle:
		return fmt.Sprintf(`<circle cx="%g" cy="%g" r="%g" fill="%s" />`, x, y, half, color)

	case MarkerSquare:
		return fmt.Sprintf(`<rect x="%g" y="%g" width="%g" height="%g" fill="%s" />`,
			x-half, y-half, size, size, color)

	case MarkerDiamond:
		points := fmt.Sprintf("%g,%g %g,%g %g,%g %g,%g",
			x, y-half, x+half, y, x, y+half, x-half, y)
		return fmt.Sprintf(`<polygon points="%s" fill="%s" />`, points, color)

	case MarkerEllipse:
		// Aspect ratio follows graphviz ellipse nodes (roughly 3:2).
		rx := half * 3.6
		ry := half * 2.4
		return fmt.Sprintf(`<ellipse cx="%g" cy="%g" rx="%g" ry="%g" fill="%s" />`, x, y, rx, ry, color)

	case MarkerMdiamond:
		// Wide diamond outline with the four corner ticks graphviz draws.
		w := half * 2.6
		h := half * 1.2
		outline := fmt.Sprintf("%g,%g %g,%g %g,%g %g,%g %g,%g",
			x, y-h, x+w, y, x, y+h, x-w, y, x, y-h)
		ticks := fmt.Sprintf(
			`<polyline fill="none" stroke="black" points="%g,%g %g,%g" />`+
				`<polyline fill="none" stroke="black" points="%g,%g %g,%g" />`+
				`<polyline fill="none" stroke="black" points="%g,%g %g,%g" />`+
				`<polyline fill="none" stroke="black" points="%g,%g %g,%g" />`,
			x-w*0.6, y-h*0.5, x-w*0.6, y,
			x-w*0.2, y-h*0.8, x+w*0.2, y-h*0.8,
			x+w*0.6, y, x+w*0.6, y+h*0.5,
			x+w*0.2, y+h*0.8, x-w*0.2, y+h*0.8)
		return fmt.Sprintf(`<g><polygon points="%s" fill="none" stroke="black"/>%s</g>`, outline, ticks)

	case MarkerMsquare:
		// Square with cut corners plus graphviz's corner polylines.
		s := half
		cut := s * 0.3
		outline := fmt.Sprintf("%g,%g %g,%g %g,%g %g,%g %g,%g %g,%g %g,%g %g,%g",
			x-s+cut, y-s,
			x+s-cut, y-s,
			x+s, y-s+cut,
			x+s, y+s-cut,
			x+s-cut, y+s,
			x-s+cut, y+s,
			x-s, y+s-cut,
			x-s, y-s+cut)
		ticks := fmt.Sprintf(
			`<polyline fill="none" stroke="black" points="%g,%g %g,%g"/>`+
				`<polyline fill="none" stroke="black" points="%g,%g %g,%g"/>`+
				`<polyline fill="none" stroke="black" points="%g,%g %g,%g"/>`+
				`<polyline fill="none" stroke="black" points="%g,%g %g,%g"/>`,
			x-s+cut*2, y-s, x-s, y-s+cut*2,
			x-s, y-cut, x-s+cut, y,
			x+s-cut, y, x+s, y-cut,
			x+s, y+s-cut*2, x+s-cut*2, y+s)
		return fmt.Sprintf(`<g><polygon points="%s" fill="none" stroke="black"/>%s</g>`, outline, ticks)

	default:
		return ""
	}
}
