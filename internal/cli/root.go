package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/graphplot/graphplot/pkg/buildinfo"
)

// Execute runs the graphplot CLI and returns an error if any command fails.
// The context is threaded through to all commands, so canceling it stops
// long-running ones like serve.
//
// The root command wires up the render, parse, serve, cache, and completion
// subcommands. Logging defaults to info level on stderr; --verbose (-v)
// switches to debug. The logger is attached to the command context and
// retrieved by subcommands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "graphplot",
		Short:        "graphplot renders graph descriptions as diagrams",
		Long:         `graphplot parses a DOT-like graph language, computes node positions with one of four layout algorithms, and renders the result as SVG, interactive HTML, canonical DOT, or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
