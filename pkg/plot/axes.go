package plot

import (
	"fmt"
	"strings"
)

// Figure geometry shared by everything that maps into pixel space.
const (
	// DefaultWidth is the default figure width in pixels.
	DefaultWidth = 800.0
	// DefaultHeight is the default figure height in pixels.
	DefaultHeight = 600.0
	// Margin is the fixed margin between the figure edge and the plot area.
	Margin = 60.0
)

// Axes is a chart container: an ordered list of series plus raw SVG
// fragments, rendered into a single SVG document by [Axes.ToSVG].
//
// Axes is not safe for concurrent use.
type Axes struct {
	Series []*Series

	// Palette supplies colors for series added without one.
	Palette Palette

	XLabel, YLabel, Title string

	// XLim/YLim override the computed data ranges when non-nil.
	XLim, YLim *[2]float64

	Grid        bool
	Legend      bool
	ShowXAxis   bool
	ShowYAxis   bool
	EqualAspect bool

	Background Color
	FontSize   float64

	fragments []string
}

// NewAxes creates axes with grid and axis display enabled and the default
// palette.
func NewAxes() *Axes {
	return &Axes{
		Palette:    DefaultPalette(),
		Grid:       true,
		ShowXAxis:  true,
		ShowYAxis:  true,
		Background: White,
		FontSize:   16,
	}
}

// Add appends a series. A series without an explicit color receives the next
// palette color, indexed by the number of series already present.
func (a *Axes) Add(s *Series) *Series {
	if s.Color == nil {
		c := a.Palette.Color(len(a.Series))
		s.Color = &c
	}
	a.Series = append(a.Series, s)
	return s
}

// Line adds a line series through the given points and returns it for
// further customization.
func (a *Axes) Line(x, y []float64) *Series { return a.Add(Line(x, y)) }

// Scatter adds a scatter series at the given points and returns it for
// further customization.
func (a *Axes) Scatter(x, y []float64) *Series { return a.Add(Scatter(x, y)) }

// AddSVGElement injects a pre-rendered SVG fragment into the figure.
// Fragments are emitted verbatim after all series; callers are responsible
// for transforming their coordinates into pixel space.
func (a *Axes) AddSVGElement(el string) {
	a.fragments = append(a.fragments, el)
}

// Fragments returns the injected raw SVG fragments in insertion order.
func (a *Axes) Fragments() []string { return a.fragments }

// DataRange computes the combined x and y ranges over all series,
// honoring XLim/YLim overrides. Empty axes yield the unit range.
func (a *Axes) DataRange() (xMin, xMax, yMin, yMax float64) {
	var allX, allY []float64
	for _, s := range a.Series {
		allX = append(allX, s.X...)
		allY = append(allY, s.Y...)
	}
	xMin, xMax = CalcRange(allX)
	yMin, yMax = CalcRange(allY)
	if a.XLim != nil {
		xMin, xMax = a.XLim[0], a.XLim[1]
	}
	if a.YLim != nil {
		yMin, yMax = a.YLim[0], a.YLim[1]
	}
	return xMin, xMax, yMin, yMax
}

// ToSVG assembles the figure as a standalone SVG document of the given size.
func (a *Axes) ToSVG(width, height float64) string {
	plotW := width - 2*Margin
	plotH := height - 2*Margin

	xMin, xMax, yMin, yMax := a.DataRange()

	if a.EqualAspect {
		xMin, xMax, yMin, yMax = equalizeAspect(xMin, xMax, yMin, yMax, plotW, plotH)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g" width="%g" height="%g">`+"\n",
		width, height, width, height)

	// Plot-area background.
	fmt.Fprintf(&b, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s" />`+"\n",
		Margin, Margin, plotW, plotH, a.Background.SVG())

	if a.Grid {
		a.writeGrid(&b, xMin, xMax, yMin, yMax, plotW, plotH)
	}

	for _, s := range a.Series {
		fmt.Fprintf(&b, `<g transform="translate(%g,%g)">`+"\n", Margin, Margin)
		b.WriteString(s.svg(xMin, xMax, yMin, yMax, plotW, plotH))
		b.WriteString("</g>\n")
	}

	if a.ShowXAxis || a.ShowYAxis {
		a.writeAxes(&b, xMin, xMax, yMin, yMax, plotW, plotH, height)
	}

	a.writeLabels(&b, width, height)

	for _, el := range a.fragments {
		b.WriteString(el)
		b.WriteString("\n")
	}

	if a.Legend {
		a.writeLegend(&b, width)
	}

	// Outer plot-area border.
	fmt.Fprintf(&b, `<rect x="%g" y="%g" width="%g" height="%g" fill="none" stroke="%s" stroke-width="0.8" />`+"\n",
		Margin, Margin, plotW, plotH, axisColor.SVG())

	b.WriteString("</svg>\n")
	return b.String()
}

// equalizeAspect widens one of the two ranges so both axes share the same
// data-units-per-pixel scale.
func equalizeAspect(xMin, xMax, yMin, yMax, plotW, plotH float64) (float64, float64, float64, float64) {
	xScale := plotW / (xMax - xMin)
	yScale := plotH / (yMax - yMin)
	scale := xScale
	if yScale < scale {
		scale = yScale
	}

	xRange := plotW / scale
	yRange := plotH / scale
	xCenter := (xMin + xMax) / 2
	yCenter := (yMin + yMax) / 2
	return xCenter - xRange/2, xCenter + xRange/2, yCenter - yRange/2, yCenter + yRange/2
}

func (a *Axes) writeGrid(b *strings.Builder, xMin, xMax, yMin, yMax, plotW, plotH float64) {
	stroke := gridColor.SVG()
	for _, t := range Ticks(xMin, xMax, 6) {
		px := Margin + MapRange(t, xMin, xMax, 0, plotW)
		fmt.Fprintf(b, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="1" />`+"\n",
			px, Margin, px, Margin+plotH, stroke)
	}
	for _, t := range Ticks(yMin, yMax, 6) {
		py := Margin + MapRange(t, yMin, yMax, plotH, 0)
		fmt.Fprintf(b, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="1" />`+"\n",
			Margin, py, Margin+plotW, py, stroke)
	}
}

func (a *Axes) writeAxes(b *strings.Builder, xMin, xMax, yMin, yMax, plotW, plotH, height float64) {
	stroke := axisColor.SVG()
	tickFont := a.FontSize * 0.75

	if a.ShowXAxis {
		fmt.Fprintf(b, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="1" />`+"\n",
			Margin, Margin+plotH, Margin+plotW, Margin+plotH, stroke)
		for _, t := range Ticks(xMin, xMax, 6) {
			px := Margin + MapRange(t, xMin, xMax, 0, plotW)
			fmt.Fprintf(b, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="1" />`+"\n",
				px, Margin+plotH, px, Margin+plotH+5, stroke)
			fmt.Fprintf(b, `<text x="%g" y="%g" text-anchor="middle" font-size="%g">%s</text>`+"\n",
				px, Margin+plotH+20, tickFont, FormatNumber(t))
		}
	}

	if a.ShowYAxis {
		fmt.Fprintf(b, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="1" />`+"\n",
			Margin, Margin, Margin, Margin+plotH, stroke)
		for _, t := range Ticks(yMin, yMax, 6) {
			py := Margin + MapRange(t, yMin, yMax, plotH, 0)
			fmt.Fprintf(b, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="1" />`+"\n",
				Margin-5, py, Margin, py, stroke)
			fmt.Fprintf(b, `<text x="%g" y="%g" text-anchor="end" font-size="%g">%s</text>`+"\n",
				Margin-8, py+4, tickFont, FormatNumber(t))
		}
	}
}

func (a *Axes) writeLabels(b *strings.Builder, width, height float64) {
	if a.Title != "" {
		fmt.Fprintf(b, `<text x="%g" y="%g" text-anchor="middle" font-size="%g" font-weight="bold">%s</text>`+"\n",
			width/2, Margin/2, a.FontSize*1.25, escapeText(a.Title))
	}
	if a.XLabel != "" {
		fmt.Fprintf(b, `<text x="%g" y="%g" text-anchor="middle" font-size="%g">%s</text>`+"\n",
			width/2, height-Margin/4, a.FontSize, escapeText(a.XLabel))
	}
	if a.YLabel != "" {
		fmt.Fprintf(b, `<text x="%g" y="%g" text-anchor="middle" font-size="%g" transform="rotate(-90 %g %g)">%s</text>`+"\n",
			Margin/4, height/2, a.FontSize, Margin/4, height/2, escapeText(a.YLabel))
	}
}

func (a *Axes) writeLegend(b *strings.Builder, width float64) {
	x := width - Margin - 150
	y := Margin + 10
	for _, s := range a.Series {
		if s.Label == "" {
			continue
		}
		color := Black
		if s.Color != nil {
			color = *s.Color
		}
		fmt.Fprintf(b, `<rect x="%g" y="%g" width="12" height="12" fill="%s" />`+"\n", x, y, color.SVG())
		fmt.Fprintf(b, `<text x="%g" y="%g" font-size="%g">%s</text>`+"\n",
			x+18, y+10, a.FontSize*0.75, escapeText(s.Label))
		y += 18
	}
}

// escapeText escapes the XML special characters in user-supplied labels.
func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
