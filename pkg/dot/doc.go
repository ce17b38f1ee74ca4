// Package dot parses a practical subset of the DOT graph description
// language, computes 2D node positions, and renders the result into a
// plot.Axes chart container.
//
// # Pipeline
//
// The three stages are independent and run in order:
//
//	g, err := dot.Parse(src)       // text -> graph model
//	g.SetLayout(dot.LayoutCircular)
//	g.ApplyLayout()                // assign node positions in [0,1]x[0,1]
//	g.RenderToAxes(axes)           // push series and fragments into the axes
//
// # Language subset
//
// Statements are line-oriented: one statement per line, terminated by a
// semicolon. Supported forms are bare nodes (`a;`), attributed nodes
// (`a [shape=box, color=red];`), edges (`a -> b;` directed, `a -- b;`
// undirected), edge chains (`a -> b -> c;`), and single-level subgraphs with
// label/style/color attributes. Lines starting with `//` are comments.
// Malformed lines are skipped rather than rejected; the only parse error is
// a graph with no nodes at all.
//
// # Layouts
//
// Four layout algorithms are available: hierarchical (topological layering
// with cycle repair and subgraph columns), circular, force-directed (a
// fixed-iteration attraction-only relaxation), and grid. All of them place
// nodes inside the normalized [0,1]x[0,1] layout square.
package dot
