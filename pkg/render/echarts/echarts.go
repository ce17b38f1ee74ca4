// Package echarts exports laid-out graphs as interactive HTML pages built on
// the go-echarts graph chart. The computed node positions are carried into
// the chart verbatim (layout "none"), so the page shows the same picture as
// the SVG renderer while adding pan, zoom, and tooltips.
package echarts

import (
	"bytes"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/graphplot/graphplot/pkg/dot"
)

// RenderHTML writes the graph as a standalone HTML page to w.
// ApplyLayout must have run on the graph first.
func RenderHTML(g *dot.Graph, title string, w io.Writer) error {
	page := components.NewPage()
	page.AddCharts(buildChart(g, title))
	return page.Render(w)
}

// Render returns the HTML page as bytes.
func Render(g *dot.Graph, title string) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderHTML(g, title, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildChart(g *dot.Graph, title string) *charts.Graph {
	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	chart.AddSeries(
		"graph",
		chartNodes(g),
		chartLinks(g),
		charts.WithGraphChartOpts(opts.GraphChart{
			// Positions come from the layout engine; echarts must not move
			// them.
			Layout:    "none",
			Roam:      opts.Bool(true),
			Draggable: opts.Bool(true),
			EdgeSymbol: []string{
				"none",
				edgeSymbol(g),
			},
		}),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "top",
		}),
	)
	return chart
}

// chartNodes converts the graph's nodes, flipping Y so the page matches the
// SVG renderer's screen orientation.
func chartNodes(g *dot.Graph) []opts.GraphNode {
	nodes := make([]opts.GraphNode, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		nodes = append(nodes, opts.GraphNode{
			Name:       n.ID,
			X:          float32(n.X * 100),
			Y:          float32((1 - n.Y) * 100),
			Value:      float32(1),
			SymbolSize: symbolSize(n.Shape),
			Symbol:     symbol(n.Shape),
			ItemStyle: &opts.ItemStyle{
				Color: n.Color.SVG(),
			},
		})
	}
	return nodes
}

func chartLinks(g *dot.Graph) []opts.GraphLink {
	links := make([]opts.GraphLink, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		links = append(links, opts.GraphLink{
			Source: e.From,
			Target: e.To,
			Label: &opts.EdgeLabel{
				Show:      opts.Bool(e.Label != ""),
				Formatter: e.Label,
			},
		})
	}
	return links
}

// edgeSymbol returns the target-end symbol: an arrow when any edge in the
// graph is directed, otherwise nothing.
func edgeSymbol(g *dot.Graph) string {
	for _, e := range g.Edges() {
		if e.Directed {
			return "arrow"
		}
	}
	return "none"
}

// symbol maps node shapes onto the echarts symbol vocabulary. The modified
// graphviz glyphs have no echarts equivalent and fall back to their base
// shapes.
func symbol(s dot.NodeShape) string {
	switch s {
	case dot.ShapeRectangle, dot.ShapeMsquare:
		return "rect"
	case dot.ShapeDiamond, dot.ShapeMdiamond:
		return "diamond"
	default:
		return "circle"
	}
}

func symbolSize(s dot.NodeShape) float32 {
	if s == dot.ShapeMdiamond || s == dot.ShapeMsquare {
		return 30
	}
	return 15
}
