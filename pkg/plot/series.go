package plot

import (
	"fmt"
	"strings"
)

// SeriesType distinguishes line from scatter series.
type SeriesType int

const (
	// SeriesLine connects points with a polyline.
	SeriesLine SeriesType = iota
	// SeriesScatter draws a marker at each point.
	SeriesScatter
)

// Series is a single plottable data series in data space.
// The zero value is not usable; construct with [Line] or [Scatter].
type Series struct {
	X, Y []float64
	Type SeriesType

	// Color is the stroke/fill color. Nil means "assign from the Axes
	// palette when added".
	Color *Color

	Marker     Marker
	MarkerSize float64
	LineWidth  float64
	Label      string
	Alpha      float64
}

// Line creates a line series through the given points.
func Line(x, y []float64) *Series {
	return &Series{
		X: x, Y: y,
		Type:       SeriesLine,
		Marker:     MarkerNone,
		MarkerSize: 6,
		LineWidth:  2,
		Alpha:      1,
	}
}

// Scatter creates a scatter series at the given points.
func Scatter(x, y []float64) *Series {
	return &Series{
		X: x, Y: y,
		Type:       SeriesScatter,
		Marker:     MarkerCircle,
		MarkerSize: 4,
		LineWidth:  0,
		Alpha:      1,
	}
}

// svg renders the series into pixel space. The caller wraps the output in a
// group translated to the plot-area origin.
func (s *Series) svg(xMin, xMax, yMin, yMax, plotW, plotH float64) string {
	if len(s.X) == 0 || len(s.X) != len(s.Y) {
		return ""
	}

	color := Black
	if s.Color != nil {
		color = *s.Color
	}
	if s.Alpha < 1 {
		color = color.WithAlpha(s.Alpha)
	}

	var b strings.Builder

	if s.Type == SeriesLine && s.LineWidth > 0 && len(s.X) > 1 {
		pts := make([]string, len(s.X))
		for i := range s.X {
			px := MapRange(s.X[i], xMin, xMax, 0, plotW)
			py := MapRange(s.Y[i], yMin, yMax, plotH, 0) // flip Y for screen space
			pts[i] = fmt.Sprintf("%g,%g", px, py)
		}
		fmt.Fprintf(&b, `<polyline fill="none" stroke="%s" stroke-width="%g" points="%s" />`,
			color.SVG(), s.LineWidth, strings.Join(pts, " "))
		b.WriteString("\n")
	}

	if s.Marker.Visible() {
		for i := range s.X {
			px := MapRange(s.X[i], xMin, xMax, 0, plotW)
			py := MapRange(s.Y[i], yMin, yMax, plotH, 0)
			b.WriteString(s.Marker.SVGElement(px, py, s.MarkerSize, color.SVG()))
			b.WriteString("\n")
		}
	}

	return b.String()
}
