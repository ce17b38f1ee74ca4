package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/graphplot/graphplot/pkg/cache"
	"github.com/graphplot/graphplot/pkg/dot"
	"github.com/graphplot/graphplot/pkg/observability"
)

// Runner executes pipeline runs against a shared artifact cache.
type Runner struct {
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithCache sets the artifact cache. The default is no caching.
func WithCache(c cache.Cache) RunnerOption {
	return func(r *Runner) { r.cache = c }
}

// WithKeyer sets the cache key scheme.
func WithKeyer(k cache.Keyer) RunnerOption {
	return func(r *Runner) { r.keyer = k }
}

// WithLogger sets the runner's logger.
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a runner. Without options it caches nothing and logs
// through the default logger.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		cache:  cache.NewNullCache(),
		keyer:  cache.NewDefaultKeyer(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Close releases the underlying cache.
func (r *Runner) Close() error {
	return r.cache.Close()
}

// Execute runs the full pipeline: parse, layout, render each requested
// format. Rendered artifacts are cached by source hash plus render options;
// parse and layout always run so the result carries the graph itself.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.logger
	}

	g, parseTime, err := r.parse(ctx, opts.Source)
	if err != nil {
		return nil, err
	}
	logger.Debugf("parsed %d nodes, %d edges in %s", g.NodeCount(), g.EdgeCount(), parseTime.Round(time.Microsecond))

	// Layout is canonical after validation.
	layout, err := dot.ParseLayout(opts.Layout)
	if err != nil {
		return nil, err
	}
	g.SetLayout(layout)

	layoutTime := r.layout(ctx, g)
	logger.Debugf("%s layout in %s", g.Layout(), layoutTime.Round(time.Microsecond))

	result := &Result{
		Graph:      g,
		SourceHash: cache.Hash([]byte(opts.Source)),
		Artifacts:  make(map[string][]byte, len(opts.Formats)),
		Stats: Stats{
			NodeCount:  g.NodeCount(),
			EdgeCount:  g.EdgeCount(),
			ParseTime:  parseTime,
			LayoutTime: layoutTime,
		},
		CacheInfo: CacheInfo{Hits: make(map[string]bool, len(opts.Formats))},
	}

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	var renderErr error
	for _, format := range opts.Formats {
		data, hit, err := r.artifact(ctx, g, result.SourceHash, format, &opts)
		if err != nil {
			renderErr = fmt.Errorf("render %s: %w", format, err)
			break
		}
		result.Artifacts[format] = data
		result.CacheInfo.Hits[format] = hit
	}
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, renderErr)
	if renderErr != nil {
		return nil, renderErr
	}

	return result, nil
}

func (r *Runner) parse(ctx context.Context, source string) (*dot.Graph, time.Duration, error) {
	observability.Pipeline().OnParseStart(ctx, len(source))
	start := time.Now()
	g, err := dot.Parse(source)
	elapsed := time.Since(start)

	nodes := 0
	if g != nil {
		nodes = g.NodeCount()
	}
	observability.Pipeline().OnParseComplete(ctx, nodes, elapsed, err)
	return g, elapsed, err
}

func (r *Runner) layout(ctx context.Context, g *dot.Graph) time.Duration {
	observability.Pipeline().OnLayoutStart(ctx, g.Layout().String(), g.NodeCount())
	start := time.Now()
	g.ApplyLayout()
	elapsed := time.Since(start)
	observability.Pipeline().OnLayoutComplete(ctx, g.Layout().String(), elapsed)
	return elapsed
}

// artifact returns the rendered bytes for one format, consulting the cache
// first unless a refresh was requested.
func (r *Runner) artifact(ctx context.Context, g *dot.Graph, sourceHash, format string, opts *Options) (data []byte, hit bool, err error) {
	key := r.keyer.ArtifactKey(sourceHash, opts.artifactKeyOpts(format))

	if !opts.Refresh {
		cached, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			return nil, false, fmt.Errorf("cache get: %w", err)
		}
		if ok {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return cached, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	data, err = renderFormat(ctx, g, format, opts)
	if err != nil {
		return nil, false, err
	}

	if err := r.cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		return nil, false, fmt.Errorf("cache set: %w", err)
	}
	observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	return data, false, nil
}
