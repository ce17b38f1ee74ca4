package dot

import (
	"fmt"
	"math"
	"strings"

	"github.com/graphplot/graphplot/pkg/plot"
)

// Pixel geometry of the plot area, derived from the figure defaults. Raw SVG
// fragments (subgraph fills, arrowheads) are emitted directly in this space.
var (
	plotAreaWidth  = plot.DefaultWidth - 2*plot.Margin
	plotAreaHeight = plot.DefaultHeight - 2*plot.Margin
)

// RenderToAxes draws the laid-out graph into the axes as a stack of series
// and raw SVG fragments. Draw order is subgraph backgrounds, then edges,
// then nodes, then subgraph borders, so borders sit on top and edges run
// under the node glyphs.
//
// ApplyLayout must have run first; nodes still at the zero position all
// collapse onto one point.
func (g *Graph) RenderToAxes(a *plot.Axes) {
	xMin, xMax, yMin, yMax := g.layoutRange()

	for i := range g.subgraphs {
		g.renderSubgraphBackground(a, &g.subgraphs[i], xMin, xMax, yMin, yMax)
	}

	for _, e := range g.edges {
		from, okFrom := g.Node(e.From)
		to, okTo := g.Node(e.To)
		if !okFrom || !okTo {
			continue
		}

		sx, sy := boundaryPoint(from, to, shapeRadius(from.Shape))
		ex, ey := boundaryPoint(to, from, shapeRadius(to.Shape))
		xs, ys := curvedEdge(sx, sy, ex, ey)

		s := plot.Line(xs, ys)
		c := e.Color
		s.Color = &c
		if e.Style == StyleDotted {
			s.LineWidth = 1.5
		} else {
			s.LineWidth = 2.0
		}
		a.Add(s)

		if e.Directed {
			g.renderArrowhead(a, from, to, xMin, xMax, yMin, yMax)
		}
	}

	for _, node := range g.Nodes() {
		s := plot.Scatter([]float64{node.X}, []float64{node.Y})
		s.Marker = shapeMarker(node.Shape)
		s.MarkerSize = markerSize(node.Shape)
		c := node.Color
		s.Color = &c
		s.Label = node.Label
		a.Add(s)
	}

	for i := range g.subgraphs {
		g.renderSubgraphBorder(a, &g.subgraphs[i])
	}
}

// layoutRange computes the coordinate range over all node positions, the
// shared frame for fragments rendered in pixel space.
func (g *Graph) layoutRange() (xMin, xMax, yMin, yMax float64) {
	xs := make([]float64, 0, len(g.order))
	ys := make([]float64, 0, len(g.order))
	for _, node := range g.Nodes() {
		xs = append(xs, node.X)
		ys = append(ys, node.Y)
	}
	xMin, xMax = plot.CalcRange(xs)
	yMin, yMax = plot.CalcRange(ys)
	return xMin, xMax, yMin, yMax
}

// shapeMarker maps a node shape to its scatter marker.
func shapeMarker(s NodeShape) plot.Marker {
	switch s {
	case ShapeCircle:
		return plot.MarkerCircle
	case ShapeRectangle:
		return plot.MarkerSquare
	case ShapeDiamond:
		return plot.MarkerDiamond
	case ShapeMdiamond:
		return plot.MarkerMdiamond
	case ShapeMsquare:
		return plot.MarkerMsquare
	default:
		return plot.MarkerEllipse
	}
}

// markerSize returns the marker size for a shape. The graphviz M-shapes are
// drawn much larger to match their reference rendering.
func markerSize(s NodeShape) float64 {
	if s == ShapeMdiamond || s == ShapeMsquare {
		return 50
	}
	return 15
}

// shapeRadius is the effective boundary radius of a shape in layout units,
// used to start and end edges at the glyph boundary instead of the center.
func shapeRadius(s NodeShape) float64 {
	switch s {
	case ShapeCircle:
		return 0.05
	case ShapeRectangle, ShapeMsquare:
		return 0.06
	case ShapeDiamond, ShapeMdiamond:
		return 0.07
	default:
		return 0.08
	}
}

// boundaryPoint returns the point on node's boundary along the line toward
// the other node. Coincident nodes fall back to the center.
func boundaryPoint(node, toward *Node, radius float64) (float64, float64) {
	dx := toward.X - node.X
	dy := toward.Y - node.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return node.X, node.Y
	}
	return node.X + dx/dist*radius, node.Y + dy/dist*radius
}

// curvedEdge samples a quadratic Bezier between the endpoints with the
// control point offset perpendicular to the chord by 20% of its length.
// Edges shorter than 0.1 stay straight.
func curvedEdge(sx, sy, ex, ey float64) (xs, ys []float64) {
	dx := ex - sx
	dy := ey - sy
	dist := math.Hypot(dx, dy)

	if dist < 0.1 {
		return []float64{sx, ex}, []float64{sy, ey}
	}

	midX := (sx + ex) / 2
	midY := (sy + ey) / 2
	cx := midX - dy*0.2
	cy := midY + dx*0.2

	const samples = 10
	xs = make([]float64, 0, samples+1)
	ys = make([]float64, 0, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / samples
		u := 1 - t
		xs = append(xs, u*u*sx+2*u*t*cx+t*t*ex)
		ys = append(ys, u*u*sy+2*u*t*cy+t*t*ey)
	}
	return xs, ys
}

// renderArrowhead emits an arrow triangle as a raw SVG fragment. Arrow
// geometry is fixed in pixels (8 long, 5 half-wide) so arrows stay the same
// size regardless of how dense the layout is. The tip is pulled back to the
// target's boundary using a radius averaged over the two axes' scales.
func (g *Graph) renderArrowhead(a *plot.Axes, from, to *Node, xMin, xMax, yMin, yMax float64) {
	fromX := plot.MapRange(from.X, xMin, xMax, 0, plotAreaWidth)
	fromY := plot.MapRange(from.Y, yMin, yMax, plotAreaHeight, 0)
	toX := plot.MapRange(to.X, xMin, xMax, 0, plotAreaWidth)
	toY := plot.MapRange(to.Y, yMin, yMax, plotAreaHeight, 0)

	dx := toX - fromX
	dy := toY - fromY
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	const (
		arrowLength = 8.0
		arrowWidth  = 5.0
	)

	unitX := dx / length
	unitY := dy / length

	radius := shapeRadius(to.Shape)
	radiusX := plot.MapRange(radius, 0, xMax-xMin, 0, plotAreaWidth)
	radiusY := plot.MapRange(radius, 0, yMax-yMin, 0, plotAreaHeight)
	radiusPx := (radiusX + radiusY) / 2

	tipX := toX - radiusPx*unitX
	tipY := toY - radiusPx*unitY
	baseX := tipX - arrowLength*unitX
	baseY := tipY - arrowLength*unitY

	perpX, perpY := -unitY, unitX
	leftX := baseX + arrowWidth*perpX
	leftY := baseY + arrowWidth*perpY
	rightX := baseX - arrowWidth*perpX
	rightY := baseY - arrowWidth*perpY

	points := fmt.Sprintf("%g,%g %g,%g %g,%g %g,%g",
		tipX, tipY, leftX, leftY, rightX, rightY, tipX, tipY)
	a.AddSVGElement(fmt.Sprintf(
		`<g transform="translate(%g,%g)"><polygon fill="black" stroke="black" points="%s"/></g>`,
		plot.Margin, plot.Margin, points))
}

// renderSubgraphBackground emits a translucent fill rectangle behind the
// subgraph's nodes when its style is filled. The rectangle pads the member
// bounding box by 0.05 on every side.
func (g *Graph) renderSubgraphBackground(a *plot.Axes, sg *Subgraph, xMin, xMax, yMin, yMax float64) {
	if sg.Style != "filled" {
		return
	}
	minX, maxX, minY, maxY, ok := g.subgraphBounds(sg)
	if !ok {
		return
	}

	fill := sg.FillColor
	if fill == "" {
		fill = "lightgrey"
	}

	cornersX := []float64{minX, maxX, maxX, minX, minX}
	cornersY := []float64{minY, minY, maxY, maxY, minY}

	points := make([]string, 0, len(cornersX))
	for i := range cornersX {
		px := plot.MapRange(cornersX[i], xMin, xMax, 0, plotAreaWidth)
		py := plot.MapRange(cornersY[i], yMin, yMax, plotAreaHeight, 0)
		points = append(points, fmt.Sprintf("%g,%g", px, py))
	}

	a.AddSVGElement(fmt.Sprintf(
		`<g transform="translate(%g,%g)"><polygon fill="%s" fill-opacity="0.3" stroke="none" points="%s"/></g>`,
		plot.Margin, plot.Margin, fill, strings.Join(points, " ")))
}

// renderSubgraphBorder draws the subgraph's padded bounding box as a closed
// line series on top of the nodes.
func (g *Graph) renderSubgraphBorder(a *plot.Axes, sg *Subgraph) {
	minX, maxX, minY, maxY, ok := g.subgraphBounds(sg)
	if !ok {
		return
	}

	s := plot.Line(
		[]float64{minX, maxX, maxX, minX, minX},
		[]float64{minY, minY, maxY, maxY, minY},
	)
	c := borderColor(sg.Color)
	s.Color = &c
	s.LineWidth = 2.0
	a.Add(s)
}

// subgraphBounds computes the member bounding box padded by 0.05.
// ok is false when the subgraph has no resolvable member nodes.
func (g *Graph) subgraphBounds(sg *Subgraph) (minX, maxX, minY, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, id := range sg.Nodes {
		node, found := g.nodes[id]
		if !found {
			continue
		}
		minX = math.Min(minX, node.X)
		maxX = math.Max(maxX, node.X)
		minY = math.Min(minY, node.Y)
		maxY = math.Max(maxY, node.Y)
		ok = true
	}
	if !ok {
		return 0, 0, 0, 0, false
	}
	return minX - 0.05, maxX + 0.05, minY - 0.05, maxY + 0.05, true
}

// borderColor maps a subgraph's declared color to its border stroke color.
func borderColor(name string) plot.Color {
	switch name {
	case "lightgrey", "lightgray":
		return plot.Gray
	case "blue":
		return plot.Blue
	default:
		return plot.Black
	}
}
