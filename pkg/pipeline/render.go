package pipeline

import (
	"context"
	"fmt"

	"github.com/graphplot/graphplot/pkg/dot"
	"github.com/graphplot/graphplot/pkg/graphio"
	"github.com/graphplot/graphplot/pkg/plot"
	"github.com/graphplot/graphplot/pkg/render/echarts"
	"github.com/graphplot/graphplot/pkg/render/graphviz"
)

// renderFormat produces one artifact for an already laid-out graph.
func renderFormat(ctx context.Context, g *dot.Graph, format string, opts *Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return renderSVG(g, opts), nil
	case FormatGraphviz:
		return graphviz.RenderSVG(ctx, graphviz.ToDOT(g))
	case FormatHTML:
		return echarts.Render(g, opts.Title)
	case FormatDOT:
		return []byte(graphviz.ToDOT(g)), nil
	case FormatJSON:
		return graphio.MarshalGraph(g)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// renderSVG assembles the native SVG document via the plot figure.
func renderSVG(g *dot.Graph, opts *Options) []byte {
	a := newAxes(opts)
	g.RenderToAxes(a)
	return []byte(a.ToSVG(opts.Width, opts.Height))
}

// newAxes builds the figure container for the native renderer, applying the
// option overrides including a configured palette.
func newAxes(opts *Options) *plot.Axes {
	a := plot.NewAxes()
	a.Grid = false
	a.ShowXAxis = false
	a.ShowYAxis = false
	a.EqualAspect = opts.EqualAspect
	a.Title = opts.Title
	if len(opts.Palette) > 0 {
		a.Palette = plot.NewPalette(opts.Palette...)
	}
	return a
}
