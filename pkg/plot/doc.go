// Package plot provides the chart container the graph renderer draws into.
//
// # Overview
//
// An [Axes] owns a list of line/scatter [Series] in data space plus any raw
// SVG fragments injected via [Axes.AddSVGElement]. Calling [Axes.ToSVG]
// computes the data ranges, maps everything into pixel space (Y flipped, as
// SVG expects), and assembles a standalone SVG document.
//
// # Coordinate model
//
// Series coordinates live in data space. The pixel frame is the figure size
// minus a fixed margin on each side ([Margin]); with the default 800x600
// figure the plot area is 680x480. Raw fragments bypass the data-space
// mapping entirely: callers that inject them must perform the same
// normalized-to-pixel transformation themselves (see pkg/dot).
//
// # Colors
//
// Series without an explicit color are assigned one from the Axes' [Palette],
// indexed by the number of series already added. The palette is plain data
// owned by the Axes; there is no global color-cycle counter, so rendering is
// reproducible from inputs alone.
package plot
