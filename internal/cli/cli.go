// Package cli implements the dungeongen command-line interface,
// grounded on matzehuels-stacktower's internal/cli package: a thin
// cmd/<name>/main.go delegates to a CLI type here that owns the root
// cobra.Command and shared state (the logger), while cmd/dungeongen
// stays a handful of lines.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Ko-stant/dungeon-layout-core/internal/genlog"
)

// CLI holds state shared across every subcommand.
type CLI struct {
	Logger genlog.Logger
}

// New creates a CLI logging to w.
func New(w io.Writer) *CLI {
	return &CLI{Logger: genlog.New(w, "dungeongen: ")}
}

// RootCommand builds the root cobra.Command with every subcommand
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "dungeongen",
		Short:        "dungeongen generates dungeon-style level layouts from a room/corridor graph",
		Long:         "dungeongen assigns a concrete shape and position to every room and corridor in a level description, using simulated annealing over a configuration-space model of legal room adjacencies.",
		SilenceUsage: true,
	}

	root.AddCommand(c.generateCommand())
	return root
}
