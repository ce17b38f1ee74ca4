package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/graphplot/graphplot/pkg/cache"
	"github.com/graphplot/graphplot/pkg/config"
	"github.com/graphplot/graphplot/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string  // output file path (or base path for multiple formats)
	layout      string  // layout algorithm override
	width       float64 // viewport width in pixels
	height      float64 // viewport height in pixels
	equalAspect bool    // same scale on both axes
	title       string  // document title
	noCache     bool    // disable the artifact cache entirely
	refresh     bool    // re-render even when a cached artifact exists
}

// formatExt maps pipeline formats to output file extensions.
var formatExt = map[string]string{
	pipeline.FormatSVG:      "svg",
	pipeline.FormatGraphviz: "gv.svg",
	pipeline.FormatHTML:     "html",
	pipeline.FormatDOT:      "dot",
	pipeline.FormatJSON:     "json",
}

// newRenderCmd creates the render command. It reads a graph description
// file, runs the pipeline, and writes one file per requested format.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph description to one or more output formats",
		Long: `Render parses a DOT-like graph description, computes node positions, and
writes the result in the requested formats.

Formats:
  svg       native SVG renderer (default)
  graphviz  SVG via the Graphviz engine
  html      interactive echarts page
  dot       canonical DOT text
  json      graph interchange JSON with positions

Examples:
  graphplot render graph.dot
  graphplot render graph.dot -f svg,html -o out/graph
  graphplot render graph.dot --layout circular --equal-aspect`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], parseFormats(formatsStr), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), graphviz, html, dot, json (comma-separated)")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "layout algorithm: hierarchical, circular, force, grid")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height (default from config)")
	cmd.Flags().BoolVar(&opts.equalAspect, "equal-aspect", false, "use the same scale on both axes")
	cmd.Flags().StringVar(&opts.title, "title", "", "document title")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached artifact exists")

	return cmd
}

// parseFormats parses the --format flag; empty defaults to svg.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// runRender loads the source, runs the pipeline, and writes the artifacts.
func runRender(ctx context.Context, input string, formats []string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	source, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	cfg, err := config.Discover()
	if err != nil {
		return err
	}
	if opts.width == 0 {
		opts.width = cfg.Width
	}
	if opts.height == 0 {
		opts.height = cfg.Height
	}
	if opts.layout == "" && cfg.Layout != "" {
		opts.layout = cfg.Layout
	}

	runner, err := newRunner(cfg, opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	track := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Source:      string(source),
		Layout:      opts.layout,
		Formats:     formats,
		Width:       opts.width,
		Height:      opts.height,
		EqualAspect: opts.equalAspect || cfg.EqualAspect,
		Palette:     cfg.PlotPalette(),
		Title:       opts.title,
		Refresh:     opts.refresh,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	track.done(fmt.Sprintf("Rendered %d nodes, %d edges", result.Stats.NodeCount, result.Stats.EdgeCount))

	return writeArtifacts(ctx, result, formats, input, opts)
}

// newRunner builds a pipeline runner backed by the file cache, or an
// uncached one when caching is disabled.
func newRunner(cfg config.Config, noCache bool, logger *log.Logger) (*pipeline.Runner, error) {
	if noCache {
		return pipeline.NewRunner(), nil
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return nil, err
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Warnf("Artifact cache disabled: %v", err)
		return pipeline.NewRunner(), nil
	}
	return pipeline.NewRunner(pipeline.WithCache(fc)), nil
}

// writeArtifacts writes each rendered format to its output file.
func writeArtifacts(ctx context.Context, result *pipeline.Result, formats []string, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	if len(formats) == 1 {
		path := opts.output
		if path == "" {
			path = basePath("", input) + "." + formatExt[formats[0]]
		}
		return writeFile(ctx, path, result.Artifacts[formats[0]])
	}

	base := basePath(opts.output, input)
	for _, format := range formats {
		path := fmt.Sprintf("%s.%s", base, formatExt[format])
		if err := writeFile(ctx, path, result.Artifacts[format]); err != nil {
			return err
		}
	}
	logger.Debugf("Wrote %d artifacts", len(formats))
	return nil
}

func writeFile(ctx context.Context, path string, data []byte) error {
	logger := loggerFromContext(ctx)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logger.Infof("Generated %s (%d bytes)", path, len(data))
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty it strips the extension from input; if output carries a
// known format extension that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	for _, known := range formatExt {
		if ext == known || "gv."+ext == known {
			return strings.TrimSuffix(output, "."+ext)
		}
	}
	return output
}

// cacheDir resolves the artifact cache directory: the config override when
// set, the platform user cache directory otherwise.
func cacheDir(cfg config.Config) (string, error) {
	if cfg.CacheDir != "" {
		return cfg.CacheDir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("get cache dir: %w", err)
	}
	return filepath.Join(dir, "graphplot"), nil
}
