// Package pkg provides the core libraries for graphplot graph rendering.
//
// # Overview
//
// graphplot turns a DOT-like graph description into a picture. The pkg
// directory is organized by pipeline stage:
//
//  1. [dot] - Graph language parsing, layout algorithms, native rendering
//  2. [plot] - SVG figure assembly (axes, series, markers, colors)
//  3. [render] - Alternative backends (Graphviz SVG, echarts HTML)
//  4. [graphio] - JSON interchange including computed positions
//  5. [pipeline] - Orchestration (parse → layout → render) with caching
//
// # Architecture
//
// The typical data flow:
//
//	DOT-like source text
//	         ↓
//	    [dot] package (parse into Graph)
//	         ↓
//	    [dot] layouts (circular, grid, force-directed, hierarchical)
//	         ↓
//	    [plot] / [render/graphviz] / [render/echarts] / [graphio]
//	         ↓
//	    SVG / HTML / DOT / JSON output
//
// # Quick Start
//
// Parse, lay out, and render a graph:
//
//	import (
//	    "github.com/graphplot/graphplot/pkg/dot"
//	    "github.com/graphplot/graphplot/pkg/plot"
//	)
//
//	g, err := dot.Parse(`digraph G { a -> b -> c; }`)
//	if err != nil {
//	    return err
//	}
//	g.ApplyLayout()
//
//	a := plot.NewAxes()
//	a.Grid = false
//	g.RenderToAxes(a)
//	svg := a.ToSVG(plot.DefaultWidth, plot.DefaultHeight)
//
// Or run the whole pipeline with caching:
//
//	runner := pipeline.NewRunner(pipeline.WithCache(fileCache))
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  source,
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatHTML},
//	})
//
// # Main Packages
//
// [dot] - The graph model, the line-oriented parser, the four layout
// algorithms, and the native renderer that draws nodes, curved edges,
// arrowheads, and subgraph boxes onto plot axes.
//
// [plot] - A small SVG charting layer: axes with grid, ticks, legend, line
// and scatter series, marker glyphs, and a color palette.
//
// [render/graphviz] - Canonical DOT text generation and SVG rendering
// through the embedded Graphviz engine.
//
// [render/echarts] - Interactive HTML pages carrying the computed layout.
//
// [graphio] - Graph interchange JSON with positions, for export and
// re-import without reparsing.
//
// [pipeline] - Ties it together: one Execute call per source text, artifact
// caching keyed by content hash plus render options.
//
// [cache] - Byte-oriented cache interface with file-backed and null
// implementations, plus the content-hash key scheme.
//
// [config] - Optional graphplot.toml with rendering defaults.
//
// [observability] - Hook interfaces for pipeline and cache events, no-op by
// default, registered by the application.
//
// [errors] - Structured errors with machine-readable codes.
//
// [dot]: https://pkg.go.dev/github.com/graphplot/graphplot/pkg/dot
// [plot]: https://pkg.go.dev/github.com/graphplot/graphplot/pkg/plot
// [render/graphviz]: https://pkg.go.dev/github.com/graphplot/graphplot/pkg/render/graphviz
// [render/echarts]: https://pkg.go.dev/github.com/graphplot/graphplot/pkg/render/echarts
// [graphio]: https://pkg.go.dev/github.com/graphplot/graphplot/pkg/graphio
// [pipeline]: https://pkg.go.dev/github.com/graphplot/graphplot/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/graphplot/graphplot/pkg/cache
// [config]: https://pkg.go.dev/github.com/graphplot/graphplot/pkg/config
// [observability]: https://pkg.go.dev/github.com/graphplot/graphplot/pkg/observability
// [errors]: https://pkg.go.dev/github.com/graphplot/graphplot/pkg/errors
package pkg
