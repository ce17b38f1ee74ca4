package echarts

import (
	"strings"
	"testing"

	"github.com/graphplot/graphplot/pkg/dot"
)

func mustParse(t *testing.T, src string) *dot.Graph {
	t.Helper()
	g, err := dot.Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g.ApplyLayout()
	return g
}

func TestRenderHTMLDocument(t *testing.T) {
	g := mustParse(t, "digraph G { a -> b; }")

	data, err := Render(g, "Test Graph")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(data)

	for _, want := range []string{"<html>", "echarts", `"a"`, `"b"`, "Test Graph"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEdgeSymbol(t *testing.T) {
	directed := mustParse(t, "digraph G { a -> b; }")
	if got := edgeSymbol(directed); got != "arrow" {
		t.Errorf("directed edge symbol = %q, want arrow", got)
	}

	undirected := mustParse(t, "graph G { a -- b; }")
	if got := edgeSymbol(undirected); got != "none" {
		t.Errorf("undirected edge symbol = %q, want none", got)
	}
}

func TestChartNodesFlipY(t *testing.T) {
	g := mustParse(t, "digraph G { a; }")
	n, _ := g.Node("a")
	n.X = 0.25
	n.Y = 0.9

	nodes := chartNodes(g)
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	if nodes[0].X != 25 {
		t.Errorf("X = %v, want 25", nodes[0].X)
	}
	// Chart Y grows downward, so a high layout Y maps to a small chart Y.
	if nodes[0].Y < 9.99 || nodes[0].Y > 10.01 {
		t.Errorf("Y = %v, want 10", nodes[0].Y)
	}
}

func TestSymbolMapping(t *testing.T) {
	tests := []struct {
		shape dot.NodeShape
		want  string
		size  float32
	}{
		{dot.ShapeEllipse, "circle", 15},
		{dot.ShapeCircle, "circle", 15},
		{dot.ShapeRectangle, "rect", 15},
		{dot.ShapeDiamond, "diamond", 15},
		{dot.ShapeMdiamond, "diamond", 30},
		{dot.ShapeMsquare, "rect", 30},
	}
	for _, tt := range tests {
		if got := symbol(tt.shape); got != tt.want {
			t.Errorf("symbol(%v) = %q, want %q", tt.shape, got, tt.want)
		}
		if got := symbolSize(tt.shape); got != tt.size {
			t.Errorf("symbolSize(%v) = %v, want %v", tt.shape, got, tt.size)
		}
	}
}
