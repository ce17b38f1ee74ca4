package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/graphplot/graphplot/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if ctx.Err() != nil {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		os.Exit(1)
	}
}
