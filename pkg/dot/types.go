package dot

import (
	"fmt"
	"strings"

	"github.com/graphplot/graphplot/pkg/errors"
	"github.com/graphplot/graphplot/pkg/plot"
)

// NodeShape is the glyph a node is drawn with.
type NodeShape int

const (
	// ShapeEllipse is the default node shape, matching graphviz.
	ShapeEllipse NodeShape = iota
	// ShapeCircle is a plain circle.
	ShapeCircle
	// ShapeRectangle covers the DOT "box" and "rectangle" shape names.
	ShapeRectangle
	// ShapeDiamond is a rotated square.
	ShapeDiamond
	// ShapeMdiamond is the graphviz modified diamond.
	ShapeMdiamond
	// ShapeMsquare is the graphviz modified square.
	ShapeMsquare
)

// ParseShape maps a DOT shape attribute value to a NodeShape.
// Unrecognized values default to ShapeEllipse, like graphviz.
func ParseShape(s string) NodeShape {
	switch s {
	case "box", "rectangle":
		return ShapeRectangle
	case "diamond":
		return ShapeDiamond
	case "ellipse":
		return ShapeEllipse
	case "Mdiamond":
		return ShapeMdiamond
	case "Msquare":
		return ShapeMsquare
	case "circle":
		return ShapeCircle
	default:
		return ShapeEllipse
	}
}

// String returns the DOT name of the shape.
func (s NodeShape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "box"
	case ShapeDiamond:
		return "diamond"
	case ShapeMdiamond:
		return "Mdiamond"
	case ShapeMsquare:
		return "Msquare"
	default:
		return "ellipse"
	}
}

// EdgeStyle is the stroke style of an edge.
type EdgeStyle int

const (
	// StyleSolid is the default edge style.
	StyleSolid EdgeStyle = iota
	// StyleDashed is a dashed stroke.
	StyleDashed
	// StyleDotted is a dotted stroke.
	StyleDotted
)

// ParseEdgeStyle maps a DOT style attribute value to an EdgeStyle.
// Unrecognized values default to StyleSolid.
func ParseEdgeStyle(s string) EdgeStyle {
	switch s {
	case "dashed":
		return StyleDashed
	case "dotted":
		return StyleDotted
	default:
		return StyleSolid
	}
}

// String returns the DOT name of the style.
func (s EdgeStyle) String() string {
	switch s {
	case StyleDashed:
		return "dashed"
	case StyleDotted:
		return "dotted"
	default:
		return "solid"
	}
}

// Node is a vertex of the graph. X and Y are positions in the normalized
// [0,1]x[0,1] layout space; they are zero until ApplyLayout runs and are
// only mutated by the layout engine.
type Node struct {
	ID    string
	Label string
	Shape NodeShape
	Color plot.Color
	X, Y  float64
}

// Edge is a connection between two nodes, referenced by ID.
// Directed is resolved per statement from the -> vs -- token, independent of
// the graph-level default. Parallel edges between the same pair are allowed.
type Edge struct {
	From     string
	To       string
	Label    string
	Color    plot.Color
	Style    EdgeStyle
	Directed bool
}

// Subgraph is a named cluster of nodes. Style, Color, and FillColor hold the
// raw attribute strings from the source text; FillColor is the color actually
// used for a filled background (set whenever color= appears, or inherited
// from a node default line, so a style=filled in any order can use it).
type Subgraph struct {
	ID        string
	Label     string
	Style     string
	Color     string
	FillColor string
	Nodes     []string
}

// AddMember appends a node ID to the subgraph's member list if not present.
func (sg *Subgraph) AddMember(id string) {
	for _, n := range sg.Nodes {
		if n == id {
			return
		}
	}
	sg.Nodes = append(sg.Nodes, id)
}

// LayoutAlgorithm selects how ApplyLayout positions nodes.
type LayoutAlgorithm int

const (
	// LayoutHierarchical is the default: topological layering with cycle
	// repair and subgraph-aware columns.
	LayoutHierarchical LayoutAlgorithm = iota
	// LayoutCircular places nodes evenly on a circle.
	LayoutCircular
	// LayoutForceDirected runs a fixed-iteration attraction-only relaxation.
	LayoutForceDirected
	// LayoutGrid arranges nodes on a near-square grid.
	LayoutGrid
)

// ParseLayout maps a layout name to its LayoutAlgorithm.
func ParseLayout(s string) (LayoutAlgorithm, error) {
	switch strings.ToLower(s) {
	case "", "hierarchical":
		return LayoutHierarchical, nil
	case "circular":
		return LayoutCircular, nil
	case "force", "force-directed", "forcedirected":
		return LayoutForceDirected, nil
	case "grid":
		return LayoutGrid, nil
	default:
		return LayoutHierarchical, errors.New(errors.ErrCodeInvalidLayout,
			"invalid layout: %q (must be hierarchical, circular, force, or grid)", s)
	}
}

// String returns the layout's lowercase name.
func (l LayoutAlgorithm) String() string {
	switch l {
	case LayoutCircular:
		return "circular"
	case LayoutForceDirected:
		return "force"
	case LayoutGrid:
		return "grid"
	default:
		return "hierarchical"
	}
}

// Graph owns all nodes, edges, and subgraphs parsed from one source text.
// Nodes are keyed by ID with insertion order preserved (fallback layouts
// depend on it); edges keep statement order (draw order). The model is
// write-once-then-read: the parser populates it, ApplyLayout mutates node
// positions in place, and rendering reads it.
//
// Graph is not safe for concurrent use.
type Graph struct {
	nodes     map[string]*Node
	order     []string
	edges     []Edge
	subgraphs []Subgraph
	directed  bool
	layout    LayoutAlgorithm
}

// New creates an empty graph with the given directedness default.
func New(directed bool) *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		directed: directed,
		layout:   LayoutHierarchical,
	}
}

// Directed reports the graph-level directedness (digraph vs graph keyword).
func (g *Graph) Directed() bool { return g.directed }

// Layout returns the selected layout algorithm.
func (g *Graph) Layout() LayoutAlgorithm { return g.layout }

// SetLayout selects the layout algorithm used by ApplyLayout.
func (g *Graph) SetLayout(l LayoutAlgorithm) { g.layout = l }

// AddNode inserts or updates a node. An existing node with the same ID is
// updated in place (last definition wins for label, shape, and color) while
// keeping its original insertion position. Returns an error for an empty ID.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return fmt.Errorf("node ID must not be empty")
	}
	if existing, ok := g.nodes[n.ID]; ok {
		existing.Label = n.Label
		existing.Shape = n.Shape
		existing.Color = n.Color
		return nil
	}
	node := n
	g.nodes[node.ID] = &node
	g.order = append(g.order, node.ID)
	return nil
}

// AddEdge appends an edge. Both endpoints must already exist.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("unknown source node %q", e.From)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("unknown target node %q", e.To)
	}
	g.edges = append(g.edges, e)
	return nil
}

// AddSubgraph appends a subgraph to the declared list.
func (g *Graph) AddSubgraph(sg Subgraph) {
	g.subgraphs = append(g.subgraphs, sg)
}

// Node returns the node with the given ID, or nil and false if absent.
// The pointer refers to the stored node, so position mutations stick.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
// The slice contains pointers to the stored nodes.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Edges returns the edges in statement order.
func (g *Graph) Edges() []Edge { return g.edges }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Subgraphs returns the subgraphs in declaration order.
func (g *Graph) Subgraphs() []Subgraph { return g.subgraphs }

// SubgraphOf returns the ID of the first declared subgraph containing the
// node, or "" when the node belongs to none. A node belongs to at most one
// subgraph in this model.
func (g *Graph) SubgraphOf(nodeID string) string {
	for i := range g.subgraphs {
		for _, id := range g.subgraphs[i].Nodes {
			if id == nodeID {
				return g.subgraphs[i].ID
			}
		}
	}
	return ""
}
