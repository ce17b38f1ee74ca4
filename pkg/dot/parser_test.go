package dot

import (
	"testing"

	"github.com/graphplot/graphplot/pkg/errors"
	"github.com/graphplot/graphplot/pkg/plot"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNodes int
		wantEdges int
		wantErr   bool
		check     func(t *testing.T, g *Graph)
	}{
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "NoNodes",
			input:   "digraph G {\n}\n",
			wantErr: true,
		},
		{
			name:      "SingleNode",
			input:     "digraph G {\n  a;\n}\n",
			wantNodes: 1,
			wantEdges: 0,
			check: func(t *testing.T, g *Graph) {
				n, ok := g.Node("a")
				if !ok {
					t.Fatal("node a missing")
				}
				if n.Label != "a" {
					t.Errorf("label = %q, want %q", n.Label, "a")
				}
				if n.Shape != ShapeEllipse {
					t.Errorf("shape = %v, want ellipse", n.Shape)
				}
			},
		},
		{
			name:      "DirectedEdge",
			input:     "digraph G {\n  a -> b;\n}\n",
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, g *Graph) {
				if !g.Directed() {
					t.Error("graph should be directed")
				}
				e := g.Edges()[0]
				if e.From != "a" || e.To != "b" {
					t.Errorf("edge = %s->%s, want a->b", e.From, e.To)
				}
				if !e.Directed {
					t.Error("edge should be directed")
				}
			},
		},
		{
			name:      "UndirectedGraph",
			input:     "graph G {\n  a -- b;\n}\n",
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, g *Graph) {
				if g.Directed() {
					t.Error("graph should be undirected")
				}
				if g.Edges()[0].Directed {
					t.Error("edge should be undirected")
				}
			},
		},
		{
			name:      "EdgeChain",
			input:     "digraph G {\n  a -> b -> c -> d;\n}\n",
			wantNodes: 4,
			wantEdges: 3,
			check: func(t *testing.T, g *Graph) {
				want := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}}
				for i, e := range g.Edges() {
					if e.From != want[i][0] || e.To != want[i][1] {
						t.Errorf("edge %d = %s->%s, want %s->%s",
							i, e.From, e.To, want[i][0], want[i][1])
					}
				}
			},
		},
		{
			name:      "NodeAttributes",
			input:     "digraph G {\n  a [label=\"Start Here\", shape=box, color=red];\n}\n",
			wantNodes: 1,
			check: func(t *testing.T, g *Graph) {
				n, _ := g.Node("a")
				if n.Label != "Start Here" {
					t.Errorf("label = %q, want %q", n.Label, "Start Here")
				}
				if n.Shape != ShapeRectangle {
					t.Errorf("shape = %v, want rectangle", n.Shape)
				}
				if n.Color != plot.Red {
					t.Errorf("color = %v, want red", n.Color)
				}
			},
		},
		{
			name: "LastDefinitionWins",
			input: `digraph G {
  a [label=first, shape=circle];
  a [label=second];
}`,
			wantNodes: 1,
			check: func(t *testing.T, g *Graph) {
				n, _ := g.Node("a")
				if n.Label != "second" {
					t.Errorf("label = %q, want %q", n.Label, "second")
				}
				if n.Shape != ShapeEllipse {
					t.Errorf("shape = %v, want ellipse (redefinition resets to defaults)", n.Shape)
				}
			},
		},
		{
			name:      "AutoVivifiedEndpoints",
			input:     "digraph G {\n  x -> y;\n}\n",
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, g *Graph) {
				for _, id := range []string{"x", "y"} {
					n, ok := g.Node(id)
					if !ok {
						t.Fatalf("node %s missing", id)
					}
					if n.Label != id || n.Shape != ShapeEllipse || n.Color != plot.Black {
						t.Errorf("node %s = %+v, want defaults", id, n)
					}
				}
			},
		},
		{
			name: "QuotedNames",
			input: `digraph G {
  "node one" -> "node two";
}`,
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, g *Graph) {
				if _, ok := g.Node("node one"); !ok {
					t.Error("quoted node name not stripped")
				}
			},
		},
		{
			name: "CommentsSkipped",
			input: `digraph G {
  // this line is ignored
  a;
}`,
			wantNodes: 1,
		},
		{
			name: "EdgeAttributes",
			input: `digraph G {
  a -> b [label=yes, style=dashed, color=blue];
}`,
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, g *Graph) {
				e := g.Edges()[0]
				if e.Label != "yes" {
					t.Errorf("label = %q, want yes", e.Label)
				}
				if e.Style != StyleDashed {
					t.Errorf("style = %v, want dashed", e.Style)
				}
				if e.Color != plot.Blue {
					t.Errorf("color = %v, want blue", e.Color)
				}
			},
		},
		{
			name: "ParallelEdges",
			input: `digraph G {
  a -> b;
  a -> b;
}`,
			wantNodes: 2,
			wantEdges: 2,
		},
		{
			name: "Subgraph",
			input: `digraph G {
  subgraph cluster_0 {
    style=filled;
    color=lightgrey;
    label = "process #1";
    a0 -> a1;
  }
  a1 -> end;
}`,
			wantNodes: 3,
			wantEdges: 2,
			check: func(t *testing.T, g *Graph) {
				sgs := g.Subgraphs()
				if len(sgs) != 1 {
					t.Fatalf("subgraphs = %d, want 1", len(sgs))
				}
				sg := sgs[0]
				if sg.ID != "cluster_0" {
					t.Errorf("id = %q, want cluster_0", sg.ID)
				}
				if sg.Label != "process #1" {
					t.Errorf("label = %q, want %q", sg.Label, "process #1")
				}
				if sg.Style != "filled" {
					t.Errorf("style = %q, want filled", sg.Style)
				}
				if sg.FillColor != "lightgrey" {
					t.Errorf("fill color = %q, want lightgrey", sg.FillColor)
				}
				if len(sg.Nodes) != 2 {
					t.Fatalf("members = %v, want [a0 a1]", sg.Nodes)
				}
				if g.SubgraphOf("a0") != "cluster_0" || g.SubgraphOf("a1") != "cluster_0" {
					t.Error("edge endpoints inside subgraph should join it")
				}
				if g.SubgraphOf("end") != "" {
					t.Error("end should belong to no subgraph")
				}
			},
		},
		{
			name: "SubgraphNodeDefaultFill",
			input: `digraph G {
  subgraph cluster_1 {
    node [style=filled];
    b0 -> b1;
  }
}`,
			wantNodes: 2,
			check: func(t *testing.T, g *Graph) {
				sg := g.Subgraphs()[0]
				if sg.FillColor != "lightgrey" {
					t.Errorf("fill color = %q, want lightgrey default", sg.FillColor)
				}
				n, _ := g.Node("b0")
				if n.Color != plot.Gray {
					t.Errorf("member color = %v, want inherited gray", n.Color)
				}
			},
		},
		{
			name: "TwoSubgraphs",
			input: `digraph G {
  subgraph cluster_0 {
    a0;
  }
  subgraph cluster_1 {
    b0;
  }
  a0 -> b0;
}`,
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, g *Graph) {
				if len(g.Subgraphs()) != 2 {
					t.Fatalf("subgraphs = %d, want 2", len(g.Subgraphs()))
				}
				if g.SubgraphOf("a0") != "cluster_0" || g.SubgraphOf("b0") != "cluster_1" {
					t.Error("membership not split across subgraphs")
				}
			},
		},
		{
			name: "MalformedLinesSkipped",
			input: `digraph G {
  a;
  this is not a statement
  ===
  b;
}`,
			wantNodes: 2,
		},
		{
			name:      "NoBracesStillParses",
			input:     "a -> b;\n",
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, g *Graph) {
				if !g.Directed() {
					t.Error("directedness should default to directed")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, errors.ErrCodeEmptyGraph) {
					t.Errorf("error code = %v, want EMPTY_GRAPH", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}

			if got := g.NodeCount(); got != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", got, tt.wantNodes)
			}
			if tt.wantEdges > 0 || g.EdgeCount() != 0 {
				if got := g.EdgeCount(); got != tt.wantEdges {
					t.Errorf("edges = %d, want %d", got, tt.wantEdges)
				}
			}

			if tt.check != nil {
				tt.check(t, g)
			}
		})
	}
}

func TestParseNodeOrder(t *testing.T) {
	g, err := Parse("digraph G {\n  c;\n  a;\n  b;\n  a [label=again];\n}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var order []string
	for _, n := range g.Nodes() {
		order = append(order, n.ID)
	}
	want := []string{"c", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s (redefinition must keep position)", i, order[i], want[i])
		}
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want NodeShape
	}{
		{"box", ShapeRectangle},
		{"rectangle", ShapeRectangle},
		{"circle", ShapeCircle},
		{"diamond", ShapeDiamond},
		{"ellipse", ShapeEllipse},
		{"Mdiamond", ShapeMdiamond},
		{"Msquare", ShapeMsquare},
		{"hexagon", ShapeEllipse},
		{"", ShapeEllipse},
	}
	for _, tt := range tests {
		if got := ParseShape(tt.in); got != tt.want {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in      string
		want    LayoutAlgorithm
		wantErr bool
	}{
		{"", LayoutHierarchical, false},
		{"hierarchical", LayoutHierarchical, false},
		{"circular", LayoutCircular, false},
		{"force", LayoutForceDirected, false},
		{"force-directed", LayoutForceDirected, false},
		{"grid", LayoutGrid, false},
		{"GRID", LayoutGrid, false},
		{"spring", LayoutHierarchical, true},
	}
	for _, tt := range tests {
		got, err := ParseLayout(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLayout(%q): expected error", tt.in)
			} else if !errors.Is(err, errors.ErrCodeInvalidLayout) {
				t.Errorf("ParseLayout(%q): code = %v, want INVALID_LAYOUT", tt.in, errors.GetCode(err))
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLayout(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLayout(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
