// Package pipeline runs the full source-to-artifact flow: parse DOT text,
// apply a layout, and render the laid-out graph to one or more output
// formats, with content-addressed caching of the rendered artifacts.
package pipeline

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/graphplot/graphplot/pkg/cache"
	"github.com/graphplot/graphplot/pkg/dot"
	"github.com/graphplot/graphplot/pkg/errors"
	"github.com/graphplot/graphplot/pkg/plot"
)

// Output formats supported by the pipeline.
const (
	// FormatSVG is the native renderer's standalone SVG document.
	FormatSVG = "svg"
	// FormatGraphviz is an SVG rendered through the Graphviz engine.
	FormatGraphviz = "graphviz"
	// FormatHTML is an interactive echarts page.
	FormatHTML = "html"
	// FormatDOT is canonical DOT text regenerated from the parsed graph.
	FormatDOT = "dot"
	// FormatJSON is the interchange JSON including computed positions.
	FormatJSON = "json"
)

// ValidFormats is the set of formats the pipeline can produce.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatGraphviz: true,
	FormatHTML:     true,
	FormatDOT:      true,
	FormatJSON:     true,
}

// ValidateFormat checks a single format name.
func ValidateFormat(f string) error {
	if !ValidFormats[f] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be one of svg, graphviz, html, dot, json)", f)
	}
	return nil
}

// Options configures a pipeline run.
type Options struct {
	// Source is the DOT text to parse.
	Source string

	// Layout overrides the layout algorithm. Empty keeps the graph's
	// default.
	Layout string

	// Formats lists the artifacts to produce. Empty defaults to SVG.
	Formats []string

	// Width and Height are the SVG viewport dimensions. Zero means the
	// plot defaults.
	Width, Height float64

	// EqualAspect forces both axes onto the same scale.
	EqualAspect bool

	// Palette overrides the color cycle for series drawn without an
	// explicit color. Nil keeps the default cycle.
	Palette []plot.Color

	// Title is used by formats that carry a document title.
	Title string

	// Refresh bypasses cached artifacts and re-renders.
	Refresh bool

	// Logger receives progress output. Nil means the default logger.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults normalizes the options in place. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	for i, f := range o.Formats {
		o.Formats[i] = strings.ToLower(strings.TrimSpace(f))
		if err := ValidateFormat(o.Formats[i]); err != nil {
			return err
		}
	}

	// Normalize the layout to its canonical name so aliases like
	// "force-directed" key and log the same as "force".
	alg, err := dot.ParseLayout(o.Layout)
	if err != nil {
		return err
	}
	o.Layout = alg.String()

	if o.Width == 0 {
		o.Width = plot.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = plot.DefaultHeight
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"dimensions must be positive, got %gx%g", o.Width, o.Height)
	}

	if o.Logger == nil {
		o.Logger = log.Default()
	}

	o.validated = true
	return nil
}

// artifactKeyOpts derives the cache key options for one format.
func (o *Options) artifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Layout:      o.Layout,
		Format:      format,
		Width:       o.Width,
		Height:      o.Height,
		EqualAspect: o.EqualAspect,
		Palette:     o.Palette,
	}
}

// Stats reports timing and size information for one run.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo reports which artifacts were served from cache.
type CacheInfo struct {
	// Hits maps format name to whether the artifact came from cache.
	Hits map[string]bool
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Graph is the parsed, laid-out graph.
	Graph *dot.Graph

	// SourceHash is the content hash of the input text.
	SourceHash string

	// Artifacts maps format name to rendered bytes.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}
