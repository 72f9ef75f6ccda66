// Package main is the entry point for cachesweep.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/idelchi/cachesweep/internal/cli"
)

// version is set via ldflags at build time.
var version = "unknown - unofficial & generated by unknown"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.New(version).Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "cachesweep: %v\n", err) //nolint:errcheck // best-effort stderr write

		return 1
	}

	return 0
}
