package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/graphplot/graphplot/pkg/config"
	pkgerrors "github.com/graphplot/graphplot/pkg/errors"
	"github.com/graphplot/graphplot/pkg/pipeline"
	"github.com/graphplot/graphplot/pkg/plot"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	noCache bool   // disable the artifact cache
}

// newServeCmd creates the serve command, an HTTP front end to the pipeline.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an HTTP render server",
		Long: `Serve exposes the render pipeline over HTTP.

Endpoints:
  POST /api/render   render DOT text to one or more formats
  GET  /healthz      liveness check

The render endpoint accepts a JSON body with "source" plus the same options
as the render command, and responds with the rendered artifacts keyed by
format. Every render is assigned an id for log correlation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// renderRequest is the POST /api/render body.
type renderRequest struct {
	Source      string   `json:"source"`
	Layout      string   `json:"layout,omitempty"`
	Formats     []string `json:"formats,omitempty"`
	Width       float64  `json:"width,omitempty"`
	Height      float64  `json:"height,omitempty"`
	EqualAspect bool     `json:"equal_aspect,omitempty"`
	Title       string   `json:"title,omitempty"`
	Refresh     bool     `json:"refresh,omitempty"`
}

// renderResponse is the POST /api/render reply. Artifacts are keyed by
// format; all supported formats are text.
type renderResponse struct {
	ID         string            `json:"id"`
	SourceHash string            `json:"source_hash"`
	NodeCount  int               `json:"node_count"`
	EdgeCount  int               `json:"edge_count"`
	Artifacts  map[string]string `json:"artifacts"`
}

type errorResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// server holds the shared pipeline runner behind the HTTP handlers.
type server struct {
	runner *pipeline.Runner

	// palette is the configured color-cycle override, applied to every
	// render.
	palette []plot.Color
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Discover()
	if err != nil {
		return err
	}
	runner, err := newRunner(cfg, opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	s := &server{runner: runner, palette: cfg.PlotPalette()}

	httpServer := &http.Server{
		Addr:              opts.addr,
		Handler:           s.routes(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", opts.addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("Shutting down")
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *server) routes(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Carry the CLI logger into every request context.
	logger := loggerFromContext(ctx)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), logger)))
		})
	})

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/render", s.handleRender)
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())
	id := uuid.NewString()

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{ID: id, Error: "invalid JSON body"})
		return
	}
	if req.Source == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{ID: id, Error: "source is required"})
		return
	}

	track := newProgress(logger)
	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Source:      req.Source,
		Layout:      req.Layout,
		Formats:     req.Formats,
		Width:       req.Width,
		Height:      req.Height,
		EqualAspect: req.EqualAspect,
		Palette:     s.palette,
		Title:       req.Title,
		Refresh:     req.Refresh,
		Logger:      logger,
	})
	if err != nil {
		status, code := renderErrorStatus(err)
		logger.Warnf("render %s failed: %v", id, err)
		writeJSON(w, status, errorResponse{ID: id, Error: err.Error(), Code: code})
		return
	}
	track.done("Rendered " + id)

	resp := renderResponse{
		ID:         id,
		SourceHash: result.SourceHash,
		NodeCount:  result.Stats.NodeCount,
		EdgeCount:  result.Stats.EdgeCount,
		Artifacts:  make(map[string]string, len(result.Artifacts)),
	}
	for format, data := range result.Artifacts {
		resp.Artifacts[format] = string(data)
	}
	writeJSON(w, http.StatusOK, resp)
}

// renderErrorStatus maps pipeline failures to HTTP statuses: the
// input-validation codes are 400s, everything else is a 500.
func renderErrorStatus(err error) (int, string) {
	var coded *pkgerrors.Error
	if !errors.As(err, &coded) {
		return http.StatusInternalServerError, ""
	}
	switch coded.Code {
	case pkgerrors.ErrCodeEmptyGraph,
		pkgerrors.ErrCodeInvalidInput,
		pkgerrors.ErrCodeInvalidFormat,
		pkgerrors.ErrCodeInvalidLayout:
		return http.StatusBadRequest, string(coded.Code)
	default:
		return http.StatusInternalServerError, string(coded.Code)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
