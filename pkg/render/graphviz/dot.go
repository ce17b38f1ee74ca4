// Package graphviz re-emits parsed graphs as canonical DOT text and renders
// them through the Graphviz engine as an alternative backend to the native
// SVG renderer.
package graphviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/graphplot/graphplot/pkg/dot"
	"github.com/graphplot/graphplot/pkg/plot"
)

// ToDOT converts a graph back to DOT text. The output is canonical: one
// statement per line, all node attributes explicit, subgraphs emitted as
// clusters. It parses back into an equivalent graph and feeds [RenderSVG].
func ToDOT(g *dot.Graph) string {
	var buf bytes.Buffer

	keyword, sep := "digraph", "->"
	if !g.Directed() {
		keyword, sep = "graph", "--"
	}
	fmt.Fprintf(&buf, "%s G {\n", keyword)

	inSubgraph := make(map[string]bool)
	for _, sg := range g.Subgraphs() {
		fmt.Fprintf(&buf, "  subgraph %s {\n", sg.ID)
		if sg.Style != "" {
			fmt.Fprintf(&buf, "    style=%s;\n", sg.Style)
		}
		if sg.Color != "" {
			fmt.Fprintf(&buf, "    color=%s;\n", sg.Color)
		}
		if sg.Label != "" {
			fmt.Fprintf(&buf, "    label=%q;\n", sg.Label)
		}
		for _, id := range sg.Nodes {
			if node, ok := g.Node(id); ok && !inSubgraph[id] {
				fmt.Fprintf(&buf, "    %s;\n", nodeStatement(node))
				inSubgraph[id] = true
			}
		}
		buf.WriteString("  }\n")
	}

	for _, n := range g.Nodes() {
		if !inSubgraph[n.ID] {
			fmt.Fprintf(&buf, "  %s;\n", nodeStatement(n))
		}
	}

	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q %s %q", e.From, sep, e.To)
		if attrs := edgeAttrs(e); len(attrs) > 0 {
			fmt.Fprintf(&buf, " [%s]", strings.Join(attrs, ", "))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeStatement(n *dot.Node) string {
	attrs := []string{fmt.Sprintf("label=%q", n.Label)}
	if n.Shape != dot.ShapeEllipse {
		attrs = append(attrs, "shape="+n.Shape.String())
	}
	if name, ok := colorName(n.Color); ok && name != "black" {
		attrs = append(attrs, "color="+name)
	}
	return fmt.Sprintf("%q [%s]", n.ID, strings.Join(attrs, ", "))
}

func edgeAttrs(e dot.Edge) []string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	if e.Style != dot.StyleSolid {
		attrs = append(attrs, "style="+e.Style.String())
	}
	if name, ok := colorName(e.Color); ok && name != "black" {
		attrs = append(attrs, "color="+name)
	}
	return attrs
}

// colorName maps the renderer's color values back to the DOT names the
// parser accepts, keeping ToDOT/Parse a closed loop.
func colorName(c plot.Color) (string, bool) {
	switch c {
	case plot.Black:
		return "black", true
	case plot.White:
		return "white", true
	case plot.Red:
		return "red", true
	case plot.Green:
		return "green", true
	case plot.Blue:
		return "blue", true
	case plot.Gray:
		return "lightgrey", true
	default:
		return "", false
	}
}

// RenderSVG renders DOT text to SVG using the Graphviz engine.
func RenderSVG(ctx context.Context, dotText string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotText))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz <svg> tag so the viewBox starts at
// the origin and explicit pixel dimensions are present, which makes the
// output embed cleanly alongside the native renderer's documents.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
