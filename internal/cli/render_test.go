package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/graphplot/graphplot/pkg/pipeline"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"DerivedFromInput", "", "graph.dot", "graph"},
		{"DerivedKeepsDirectory", "", "out/graph.dot", "out/graph"},
		{"OutputWithoutExtension", "result", "graph.dot", "result"},
		{"OutputStripsFormatExtension", "result.svg", "graph.dot", "result"},
		{"OutputStripsJSONExtension", "result.json", "graph.dot", "result"},
		{"OutputKeepsUnknownExtension", "result.txt", "graph.dot", "result.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != pipeline.FormatSVG {
		t.Errorf("empty flag = %v, want [svg]", got)
	}
	got := parseFormats("svg,json")
	if len(got) != 2 || got[0] != "svg" || got[1] != "json" {
		t.Errorf("parseFormats = %v, want [svg json]", got)
	}
}

func TestRunRenderWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.dot")
	if err := os.WriteFile(input, []byte("digraph G { a -> b; }"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := renderOpts{noCache: true}
	formats := []string{pipeline.FormatSVG, pipeline.FormatJSON}
	if err := runRender(context.Background(), input, formats, &opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "graph.svg"))
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("svg output is not an SVG document")
	}
	if _, err := os.Stat(filepath.Join(dir, "graph.json")); err != nil {
		t.Errorf("json output missing: %v", err)
	}
}

func TestRunRenderSingleFormatOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.dot")
	if err := os.WriteFile(input, []byte("digraph G { a -> b; }"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "custom.svg")
	opts := renderOpts{output: out, noCache: true}
	if err := runRender(context.Background(), input, []string{pipeline.FormatSVG}, &opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("explicit output missing: %v", err)
	}
}

func TestRunRenderWithConfiguredPalette(t *testing.T) {
	dir := t.TempDir()
	cfgFile := `
layout = "grid"
palette = [[10, 20, 30], [40, 50, 60]]
`
	if err := os.WriteFile(filepath.Join(dir, "graphplot.toml"), []byte(cfgFile), 0o644); err != nil {
		t.Fatal(err)
	}
	input := filepath.Join(dir, "graph.dot")
	if err := os.WriteFile(input, []byte("digraph G { a -> b; }"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	opts := renderOpts{noCache: true}
	if err := runRender(context.Background(), input, []string{pipeline.FormatSVG}, &opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "graph.svg")); err != nil {
		t.Errorf("svg output missing: %v", err)
	}
	// The config's layout default applied.
	if opts.layout != "grid" {
		t.Errorf("layout = %q, want grid from config", opts.layout)
	}
}

func TestRunRenderMissingFile(t *testing.T) {
	opts := renderOpts{noCache: true}
	err := runRender(context.Background(), filepath.Join(t.TempDir(), "nope.dot"), []string{pipeline.FormatSVG}, &opts)
	if err == nil {
		t.Error("missing input should fail")
	}
}
