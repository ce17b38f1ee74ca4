package dot

import (
	"math"
	"strings"
	"testing"

	"github.com/graphplot/graphplot/pkg/plot"
)

func renderGraph(t *testing.T, src string, layout LayoutAlgorithm) (*Graph, *plot.Axes) {
	t.Helper()
	g := mustParse(t, src)
	g.SetLayout(layout)
	g.ApplyLayout()
	a := plot.NewAxes()
	g.RenderToAxes(a)
	return g, a
}

func TestRenderDrawOrder(t *testing.T) {
	g, a := renderGraph(t, `digraph G {
  subgraph cluster_0 {
    a0 -> a1;
  }
  a1 -> end;
}`, LayoutHierarchical)

	// Edges first, then one scatter per node, then the subgraph border.
	wantSeries := g.EdgeCount() + g.NodeCount() + len(g.Subgraphs())
	if len(a.Series) != wantSeries {
		t.Fatalf("series = %d, want %d", len(a.Series), wantSeries)
	}

	for i := 0; i < g.EdgeCount(); i++ {
		if a.Series[i].Type != plot.SeriesLine {
			t.Errorf("series %d type = %v, want line (edge)", i, a.Series[i].Type)
		}
	}
	for i := g.EdgeCount(); i < g.EdgeCount()+g.NodeCount(); i++ {
		if a.Series[i].Type != plot.SeriesScatter {
			t.Errorf("series %d type = %v, want scatter (node)", i, a.Series[i].Type)
		}
	}
	border := a.Series[len(a.Series)-1]
	if border.Type != plot.SeriesLine || len(border.X) != 5 {
		t.Errorf("last series should be the closed 5-point border, got type %v with %d points",
			border.Type, len(border.X))
	}
}

func TestRenderArrowheads(t *testing.T) {
	t.Run("DirectedEdgesGetArrows", func(t *testing.T) {
		_, a := renderGraph(t, "digraph G { a -> b; b -> c; }", LayoutCircular)
		arrows := 0
		for _, f := range a.Fragments() {
			if strings.Contains(f, `<polygon fill="black"`) {
				arrows++
			}
		}
		if arrows != 2 {
			t.Errorf("arrow fragments = %d, want 2", arrows)
		}
	})

	t.Run("UndirectedEdgesGetNone", func(t *testing.T) {
		_, a := renderGraph(t, "graph G { a -- b; }", LayoutCircular)
		if len(a.Fragments()) != 0 {
			t.Errorf("fragments = %d, want 0 for undirected graph", len(a.Fragments()))
		}
	})
}

func TestRenderSubgraphFill(t *testing.T) {
	_, a := renderGraph(t, `digraph G {
  subgraph cluster_0 {
    style=filled;
    color=lightgrey;
    a0 -> a1;
  }
}`, LayoutGrid)

	var fill string
	for _, f := range a.Fragments() {
		if strings.Contains(f, "fill-opacity") {
			fill = f
			break
		}
	}
	if fill == "" {
		t.Fatal("no fill fragment emitted for filled subgraph")
	}
	if !strings.Contains(fill, `fill="lightgrey"`) {
		t.Errorf("fill fragment missing color: %s", fill)
	}
	if !strings.Contains(fill, `fill-opacity="0.3"`) {
		t.Errorf("fill fragment missing opacity: %s", fill)
	}
}

func TestRenderUnfilledSubgraphHasNoFill(t *testing.T) {
	_, a := renderGraph(t, `digraph G {
  subgraph cluster_0 {
    a0 -> a1;
  }
}`, LayoutGrid)
	for _, f := range a.Fragments() {
		if strings.Contains(f, "fill-opacity") {
			t.Errorf("unexpected fill fragment: %s", f)
		}
	}
}

func TestRenderNodeMarkers(t *testing.T) {
	_, a := renderGraph(t, `digraph G {
  a [shape=circle];
  b [shape=box];
  c [shape=diamond];
  d [shape=Mdiamond];
  e [shape=Msquare];
  f;
}`, LayoutGrid)

	want := []struct {
		marker plot.Marker
		size   float64
	}{
		{plot.MarkerCircle, 15},
		{plot.MarkerSquare, 15},
		{plot.MarkerDiamond, 15},
		{plot.MarkerMdiamond, 50},
		{plot.MarkerMsquare, 50},
		{plot.MarkerEllipse, 15},
	}
	if len(a.Series) != len(want) {
		t.Fatalf("series = %d, want %d", len(a.Series), len(want))
	}
	for i, w := range want {
		s := a.Series[i]
		if s.Marker != w.marker {
			t.Errorf("series %d marker = %v, want %v", i, s.Marker, w.marker)
		}
		if s.MarkerSize != w.size {
			t.Errorf("series %d marker size = %g, want %g", i, s.MarkerSize, w.size)
		}
	}
}

func TestRenderEdgeStyles(t *testing.T) {
	_, a := renderGraph(t, `digraph G {
  a -> b [style=dashed];
  b -> c [style=dotted, color=red];
  c -> d;
}`, LayoutCircular)

	widths := []float64{2.0, 1.5, 2.0}
	for i, w := range widths {
		if a.Series[i].LineWidth != w {
			t.Errorf("edge %d line width = %g, want %g", i, a.Series[i].LineWidth, w)
		}
	}
	if *a.Series[1].Color != plot.Red {
		t.Errorf("edge 1 color = %v, want red", *a.Series[1].Color)
	}
}

func TestCurvedEdge(t *testing.T) {
	t.Run("ShortEdgeStaysStraight", func(t *testing.T) {
		xs, ys := curvedEdge(0.5, 0.5, 0.55, 0.5)
		if len(xs) != 2 || len(ys) != 2 {
			t.Errorf("short edge has %d points, want 2", len(xs))
		}
	})

	t.Run("LongEdgeIsSampledCurve", func(t *testing.T) {
		xs, ys := curvedEdge(0.1, 0.1, 0.9, 0.9)
		if len(xs) != 11 || len(ys) != 11 {
			t.Fatalf("curve has %d points, want 11", len(xs))
		}
		if xs[0] != 0.1 || ys[0] != 0.1 || xs[10] != 0.9 || ys[10] != 0.9 {
			t.Error("curve endpoints do not match the edge endpoints")
		}
		// The midpoint must bow away from the straight chord.
		midX, midY := xs[5], ys[5]
		chordX, chordY := 0.5, 0.5
		if math.Hypot(midX-chordX, midY-chordY) < 1e-3 {
			t.Error("curve midpoint sits on the chord, expected curvature")
		}
	})
}

func TestBoundaryPoint(t *testing.T) {
	from := &Node{ID: "a", X: 0.2, Y: 0.5}
	to := &Node{ID: "b", X: 0.8, Y: 0.5}

	x, y := boundaryPoint(from, to, 0.08)
	if math.Abs(x-0.28) > 1e-9 || math.Abs(y-0.5) > 1e-9 {
		t.Errorf("boundary point = (%g,%g), want (0.28,0.5)", x, y)
	}

	// Coincident nodes fall back to the center.
	x, y = boundaryPoint(from, &Node{ID: "c", X: 0.2, Y: 0.5}, 0.08)
	if x != 0.2 || y != 0.5 {
		t.Errorf("coincident boundary point = (%g,%g), want node center", x, y)
	}
}

func TestShapeRadius(t *testing.T) {
	tests := []struct {
		shape NodeShape
		want  float64
	}{
		{ShapeCircle, 0.05},
		{ShapeRectangle, 0.06},
		{ShapeMsquare, 0.06},
		{ShapeDiamond, 0.07},
		{ShapeMdiamond, 0.07},
		{ShapeEllipse, 0.08},
	}
	for _, tt := range tests {
		if got := shapeRadius(tt.shape); got != tt.want {
			t.Errorf("shapeRadius(%v) = %g, want %g", tt.shape, got, tt.want)
		}
	}
}

func TestRenderBorderColor(t *testing.T) {
	_, a := renderGraph(t, `digraph G {
  subgraph cluster_0 {
    color=blue;
    a0;
  }
}`, LayoutGrid)

	border := a.Series[len(a.Series)-1]
	if *border.Color != plot.Blue {
		t.Errorf("border color = %v, want blue", *border.Color)
	}
	if border.LineWidth != 2.0 {
		t.Errorf("border width = %g, want 2.0", border.LineWidth)
	}
}

func TestRenderFullDocument(t *testing.T) {
	_, a := renderGraph(t, `digraph G {
  a [label="Start", shape=box];
  a -> b -> c;
}`, LayoutHierarchical)

	svg := a.ToSVG(plot.DefaultWidth, plot.DefaultHeight)
	if !strings.HasPrefix(svg, "<svg") {
		t.Fatal("output is not an SVG document")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("document not closed")
	}
	if !strings.Contains(svg, "<polygon") {
		t.Error("arrowhead fragments missing from the document")
	}
}
