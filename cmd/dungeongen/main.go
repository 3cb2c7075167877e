// Command dungeongen is the CLI entry point for the dungeon layout
// generator core, grounded on matzehuels-stacktower's cmd/stacktower/main.go:
// a thin main that wires signal-based cancellation into the root
// cobra.Command's context and reports errors to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ko-stant/dungeon-layout-core/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr)
	root := c.RootCommand()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
