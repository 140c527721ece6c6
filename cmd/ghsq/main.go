// ghsq is the command-line client for GHS Label Quick Search.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rjsky311/GHS-label-quick-search/internal/interfaces/cli"
)

// Build-time variables injected via ldflags.
var (
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cli.GitCommit = commit
	cli.BuildDate = buildDate

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
