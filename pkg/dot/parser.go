package dot

import (
	"strings"

	"github.com/graphplot/graphplot/pkg/errors"
	"github.com/graphplot/graphplot/pkg/plot"
)

// Parse reads graph description text and returns the populated graph model.
//
// The scan is line-oriented and single-pass: directedness comes from the
// first digraph/graph keyword (directed when undetermined), a brace-depth
// counter tracks subgraph scope (one active subgraph at a time, nesting
// inside a subgraph is not supported), and statements are dispatched by
// their surface form. Edge endpoints that were never declared are created
// implicitly, so edge referential integrity holds by construction.
//
// Malformed lines are skipped. The only failure is a source text with no
// identifiable nodes, reported as an EMPTY_GRAPH error.
func Parse(text string) (*Graph, error) {
	p := &parser{graph: New(detectDirected(text))}

	braceDepth := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		oldDepth := braceDepth
		braceDepth += strings.Count(line, "{") - strings.Count(line, "}")
		// Leaving depth 2 closes the active subgraph scope.
		if oldDepth == 2 && braceDepth == 1 && p.active != nil {
			p.graph.AddSubgraph(*p.active)
			p.active = nil
		}

		p.statement(line)
	}

	// An unclosed subgraph at end of input still counts.
	if p.active != nil {
		p.graph.AddSubgraph(*p.active)
	}

	if p.graph.NodeCount() == 0 {
		return nil, errors.New(errors.ErrCodeEmptyGraph, "no nodes found in graph description")
	}
	return p.graph, nil
}

// detectDirected resolves graph-level directedness from the first line that
// opens the graph. Defaults to directed when undetermined.
func detectDirected(text string) bool {
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "digraph") {
			return true
		}
		if strings.HasPrefix(line, "graph") {
			return false
		}
	}
	return true
}

// parser holds the per-parse state: the graph under construction and the
// single active-subgraph slot.
type parser struct {
	graph  *Graph
	active *Subgraph
}

// statement dispatches one trimmed, non-empty source line.
func (p *parser) statement(line string) {
	switch {
	case strings.HasPrefix(line, "digraph"), strings.HasPrefix(line, "graph"),
		line == "{", line == "}":
		return

	case strings.HasPrefix(line, "subgraph"):
		p.openSubgraph(line)

	case p.active != nil && p.subgraphAttribute(line):
		return

	case strings.Contains(line, "->") || strings.Contains(line, "--"):
		p.edgeStatement(line)

	case strings.Contains(line, "[") && strings.Contains(line, "]"):
		p.attributedNode(line)

	case strings.HasSuffix(line, ";") &&
		!strings.HasPrefix(line, "label") &&
		!strings.HasPrefix(line, "style") &&
		!strings.HasPrefix(line, "color"):
		p.bareNode(line)
	}
}

// openSubgraph starts a new active subgraph scope. Only one subgraph may be
// open at a time; an unclosed previous scope is finalized first so its nodes
// are not silently merged into the new one.
func (p *parser) openSubgraph(line string) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return
	}
	if p.active != nil {
		p.graph.AddSubgraph(*p.active)
	}
	p.active = &Subgraph{ID: strings.TrimSuffix(parts[1], "{")}
}

// subgraphAttribute handles label=/style=/color= lines and node-default
// lines inside an active subgraph scope. Returns false when the line is not
// a subgraph attribute so normal statement dispatch continues.
func (p *parser) subgraphAttribute(line string) bool {
	// node [style=filled, color=x] sets the fill default only when the
	// subgraph has no explicit color of its own yet.
	if strings.HasPrefix(line, "node") && strings.Contains(line, "[") {
		attrs := parseAttributes(line)
		if attrs["style"] == "filled" && p.active.Color == "" {
			if c, ok := attrs["color"]; ok {
				p.active.FillColor = c
			} else {
				p.active.FillColor = "lightgrey"
			}
		}
		return true
	}

	if strings.Contains(line, "->") || strings.Contains(line, "--") || strings.Contains(line, "[") {
		return false
	}

	switch {
	case strings.HasPrefix(line, "label"):
		p.active.Label = attributeValue(line)
	case strings.HasPrefix(line, "style"):
		p.active.Style = attributeValue(line)
	case strings.HasPrefix(line, "color"):
		c := attributeValue(line)
		p.active.Color = c
		// Always record the fill color so a style=filled in any order
		// (before or after color=) can use it.
		p.active.FillColor = c
	default:
		return false
	}
	return true
}

// edgeStatement handles single edges and chains. The separator token decides
// directedness for the whole statement, independent of the graph default.
func (p *parser) edgeStatement(line string) {
	sep := "--"
	if strings.Contains(line, "->") {
		sep = "->"
	}
	directed := sep == "->"

	// A trailing bracketed attribute list applies to every edge created by
	// the statement.
	attrs := map[string]string{}
	if i := strings.Index(line, "["); i >= 0 {
		attrs = parseAttributes(line)
		line = line[:i]
	}

	names := []string{}
	for _, part := range strings.Split(line, sep) {
		name := cleanNodeName(part)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if len(names) < 2 {
		return
	}

	color := plot.Black
	if c, ok := attrs["color"]; ok {
		color = parseColor(c)
	}
	style := ParseEdgeStyle(attrs["style"])

	for i, name := range names {
		p.ensureNode(name)
		if i > 0 {
			p.graph.AddEdge(Edge{
				From:     names[i-1],
				To:       name,
				Label:    attrs["label"],
				Color:    color,
				Style:    style,
				Directed: directed,
			})
		}
	}
}

// attributedNode handles `name [key=value, ...];` statements. The last
// attribute-bearing definition wins: the node is rebuilt from defaults plus
// the given attributes, so attributes omitted here reset.
func (p *parser) attributedNode(line string) {
	name := cleanNodeName(line[:strings.Index(line, "[")])
	if name == "" {
		return
	}
	attrs := parseAttributes(line)

	node := Node{
		ID:    name,
		Label: name,
		Shape: ShapeEllipse,
		Color: plot.Black,
	}

	if label, ok := attrs["label"]; ok {
		node.Label = label
	}
	if shape, ok := attrs["shape"]; ok {
		node.Shape = ParseShape(shape)
	}
	if color, ok := attrs["color"]; ok {
		node.Color = parseColor(color)
	}

	if p.active != nil {
		p.active.AddMember(name)
		if p.active.FillColor != "" {
			node.Color = parseColor(p.active.FillColor)
		}
	}

	p.graph.AddNode(node)
}

// bareNode handles `name;` statements.
func (p *parser) bareNode(line string) {
	name := cleanNodeName(line)
	if name == "" {
		return
	}
	p.ensureNode(name)
}

// ensureNode auto-vivifies a node with default attributes and, when a
// subgraph is active, records membership and applies its fill color.
func (p *parser) ensureNode(name string) {
	if p.active != nil {
		p.active.AddMember(name)
	}
	if _, ok := p.graph.Node(name); ok {
		return
	}
	node := Node{
		ID:    name,
		Label: name,
		Shape: ShapeEllipse,
		Color: plot.Black,
	}
	if p.active != nil && p.active.FillColor != "" {
		node.Color = parseColor(p.active.FillColor)
	}
	p.graph.AddNode(node)
}

// attributeValue extracts the value of a `key=value;` line, trimming
// whitespace, the trailing semicolon, and one pair of surrounding quotes.
func attributeValue(line string) string {
	_, value, ok := strings.Cut(line, "=")
	if !ok {
		return ""
	}
	value = strings.TrimSpace(value)
	value = strings.TrimSuffix(value, ";")
	value = strings.TrimSpace(value)
	return unquote(value)
}

// parseAttributes reads the `[key=value, ...]` section of a statement.
// Values may be quoted; pairs without an equals sign are skipped.
func parseAttributes(line string) map[string]string {
	attrs := make(map[string]string)
	start := strings.Index(line, "[")
	end := strings.Index(line, "]")
	if start < 0 || end < 0 || end <= start {
		return attrs
	}
	for _, pair := range strings.Split(line[start+1:end], ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		attrs[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}
	return attrs
}

// cleanNodeName trims whitespace and the statement terminator from a node
// reference and strips one pair of surrounding double quotes.
func cleanNodeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ";")
	name = strings.TrimSpace(name)
	return unquote(name)
}

// unquote strips a single pair of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// parseColor maps a DOT color name to a concrete color.
// Unrecognized names default to black.
func parseColor(name string) plot.Color {
	switch strings.ToLower(name) {
	case "red":
		return plot.Red
	case "blue":
		return plot.Blue
	case "green":
		return plot.Green
	case "white":
		return plot.White
	case "black":
		return plot.Black
	case "lightgrey", "lightgray":
		return plot.Gray
	default:
		return plot.Black
	}
}
