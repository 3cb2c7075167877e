package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Ko-stant/dungeon-layout-core/internal/doorhandler"
	"github.com/Ko-stant/dungeon-layout-core/internal/events"
	"github.com/Ko-stant/dungeon-layout-core/internal/generator"
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/mapdesc"
	"github.com/Ko-stant/dungeon-layout-core/internal/wsbridge"
)

type generateFlags struct {
	levelPath string
	seed      int64
	watch     bool
	watchAddr string
	timeout   time.Duration
}

func (c *CLI) generateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a layout for a level description file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.levelPath, "level", "", "path to a level description JSON file (required)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "PRNG seed")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "serve a websocket event stream of intermediate layouts while generating")
	cmd.Flags().StringVar(&flags.watchAddr, "watch-addr", ":8080", "address to listen on when --watch is set")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "abort generation after this long (0 disables)")
	_ = cmd.MarkFlagRequired("level")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, flags *generateFlags) error {
	level, err := mapdesc.LoadLevelDescriptionFromFile(flags.levelPath)
	if err != nil {
		return fmt.Errorf("dungeongen: %w", err)
	}

	runID := uuid.NewString()
	cfg := generator.DefaultConfiguration()
	cfg.Seed = flags.seed
	cfg.EarlyStopIfTimeExceeded = flags.timeout

	opts := generator.Options{
		Level:   level,
		Config:  cfg,
		Doors:   doorhandler.Default{},
		Overlap: geometry.DefaultOverlapTester{},
		Logger:  c.Logger,
	}

	if flags.watch {
		stop, err := c.serveWatch(ctx, runID, flags.watchAddr, &opts)
		if err != nil {
			return err
		}
		defer stop()
	}

	result, err := generator.GenerateLayout(runID, opts)
	if err != nil {
		return fmt.Errorf("dungeongen: %w", err)
	}

	return printResult(result)
}

// serveWatch starts a websocket event stream on addr that forwards
// every Perturbed/PartialValid/Valid snapshot from this run. The live
// stream carries the raw internal layout (dense node indices, no
// caller-facing IDs) since the ID mapping is only known once
// GenerateLayout returns; only the final printed result uses
// internal/layoutconv's caller-facing node IDs. It wires opts.Sink and
// returns a function that shuts the server down.
func (c *CLI) serveWatch(ctx context.Context, runID, addr string, opts *generator.Options) (func(), error) {
	hub := events.NewHub(runID)
	sub := hub.Subscribe(32)
	bridge := wsbridge.NewBridge(sub, nil)
	opts.Sink = hub

	mux := http.NewServeMux()
	mux.Handle("/stream", bridge)
	srv := &http.Server{Addr: addr, Handler: mux}

	bridgeCtx, cancelBridge := context.WithCancel(ctx)
	go bridge.Run(bridgeCtx)

	go func() {
		c.Logger.Printf("dungeongen: watch server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			c.Logger.Printf("dungeongen: watch server error: %v", err)
		}
	}()

	return func() {
		cancelBridge()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		hub.Unsubscribe(sub)
	}, nil
}

func printResult(result *generator.Result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
