// Package generator implements the top-level GenerateLayout
// orchestration (spec.md §6, §7): it wires the map description, the
// configuration-space builder, chain decomposition, the constraint set,
// the controller, the simulated-annealing evolver and the planner into
// a single call, and translates every failure mode into one of the
// three typed errors spec.md §7 defines. Grounded on the teacher's
// cmd/server/engine.go GameEngineImpl: a constructor-injected set of
// collaborators behind one orchestrating entry point that wraps
// sub-call errors with %w.
package generator

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Ko-stant/dungeon-layout-core/internal/anneal"
	"github.com/Ko-stant/dungeon-layout-core/internal/chains"
	"github.com/Ko-stant/dungeon-layout-core/internal/configspace"
	"github.com/Ko-stant/dungeon-layout-core/internal/constraints"
	"github.com/Ko-stant/dungeon-layout-core/internal/controller"
	"github.com/Ko-stant/dungeon-layout-core/internal/doorhandler"
	"github.com/Ko-stant/dungeon-layout-core/internal/events"
	"github.com/Ko-stant/dungeon-layout-core/internal/genlog"
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/layoutconv"
	"github.com/Ko-stant/dungeon-layout-core/internal/mapdesc"
	"github.com/Ko-stant/dungeon-layout-core/internal/planner"
	"github.com/Ko-stant/dungeon-layout-core/internal/rng"
)

// Options bundles a single GenerateLayout call: the level description,
// the GeneratorConfiguration, the externally-supplied capability
// objects (spec.md §1/§2), and the optional observability hooks.
type Options struct {
	Level  mapdesc.LevelDescription
	Config Configuration

	Doors   doorhandler.DoorHandler
	Overlap geometry.PolygonOverlapTester

	// Sink receives Perturbed/PartialValid/Valid events as the run
	// progresses; nil discards them.
	Sink events.Sink
	// Logger receives diagnostic messages; nil discards them.
	Logger genlog.Logger

	// Cancel, if non-nil, lets the caller cooperatively abort a run in
	// progress. Setting it together with either
	// EarlyStopIfIterationsExceeded or EarlyStopIfTimeExceeded is a
	// ConfigurationError: spec.md §6 allows at most one cancellation
	// source per run.
	Cancel *atomic.Bool
}

// Result is the outcome of a successful GenerateLayout call.
type Result struct {
	RunID      string
	Layout     layoutconv.MapLayout
	Iterations int
	Elapsed    time.Duration
}

// GenerateLayout runs the full pipeline spec.md §4 describes end to
// end: map description, configuration-space precomputation, chain
// decomposition, then the planner driving the simulated-annealing
// evolver one chain at a time, finally converted to the caller's
// node-ID space by internal/layoutconv.
func GenerateLayout(runID string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = genlog.Discard{}
	}

	if opts.Cancel != nil && (opts.Config.EarlyStopIfIterationsExceeded > 0 || opts.Config.EarlyStopIfTimeExceeded > 0) {
		return nil, &ConfigurationError{
			Code:    "conflicting_cancellation",
			Message: "an external Cancel token and an EarlyStop* bound may not be set on the same run",
		}
	}
	if opts.Doors == nil || opts.Overlap == nil {
		return nil, &ConfigurationError{Code: "missing_collaborator", Message: "Doors and Overlap must both be supplied"}
	}

	mapping, err := mapdesc.Build(opts.Level)
	if err != nil {
		return nil, &ConfigurationError{Code: "invalid_level", Message: err.Error()}
	}
	g := mapping.Graph

	for _, n := range g.Nodes {
		if len(n.Shapes) == 0 {
			return nil, &ConfigurationError{
				Code:    "missing_shapes",
				Message: fmt.Sprintf("node %q has no candidate shapes", mapping.IDFor(n.Index)),
			}
		}
	}

	builder := configspace.NewBuilder(opts.Doors, opts.Overlap)
	table := builder.Build(g.Nodes)

	sink := opts.Sink
	if sink == nil {
		sink = events.NullSink{}
	}

	active := buildConstraints(opts)
	constraintInput := constraints.Input{
		Graph:                       g,
		ConfigSpaces:                table,
		MinimumRoomDistance:         opts.Level.MinimumRoomDistance,
		OptimizeCorridorConstraints: opts.Config.OptimizeCorridorConstraints,
	}

	shapes := controller.RoomShapesHandler{
		Override:                      opts.Config.RepeatModeOverride,
		ThrowIfRepeatModeNotSatisfied: opts.Config.ThrowIfRepeatModeNotSatisfied,
	}
	ctl := controller.New(g, table, active, shapes, constraintInput)

	decomposed := chains.Decompose(g, opts.Config.ChainDecomposition.toChainsOptions())

	state := &runState{
		external:      opts.Cancel,
		maxIterations: opts.Config.EarlyStopIfIterationsExceeded,
		maxDuration:   opts.Config.EarlyStopIfTimeExceeded,
		start:         time.Now(),
	}

	evolver := anneal.New(ctl, sink, state)
	p := planner.New(evolver, decomposed, state)

	r := rng.New(opts.Config.Seed)
	start := time.Now()
	logger.Printf("generate %s: starting, %d nodes, %d chains", runID, len(g.Nodes), len(decomposed))

	result, ok := p.Run(r, opts.Config.annealConfigFor, planner.Config{MaxBranching: opts.Config.SimulatedAnnealingMaxBranching})
	elapsed := time.Since(start)

	if !ok {
		if state.cancelledByCaller() {
			return nil, &GenerationFailure{
				Code:    "cancelled",
				Message: "generation was cancelled before reaching a valid layout",
				Partial: result,
			}
		}
		return nil, &GenerationFailure{
			Code:    "planner_exhausted",
			Message: "planner backtracking exhausted without reaching a valid layout",
			Partial: result,
		}
	}

	if err := checkInvariants(result); err != nil {
		return nil, err
	}

	sink.OnValid(result)

	converter := layoutconv.New(opts.Doors)
	mapLayout, err := converter.Convert(mapping, result, table)
	if err != nil {
		return nil, &InvariantViolation{
			Message:      fmt.Sprintf("layout conversion failed on a reportedly valid layout: %v", err),
			EnergyVector: result.EnergyVector(),
		}
	}

	logger.Printf("generate %s: done in %s, %d iterations", runID, elapsed, state.iterations)

	return &Result{
		RunID:      runID,
		Layout:     mapLayout,
		Iterations: state.iterations,
		Elapsed:    elapsed,
	}, nil
}

// buildConstraints assembles the active constraint set from
// GeneratorConfiguration: overlap and corridor constraints always
// apply (a graph with no corridor nodes simply never triggers the
// latter), minimum distance only if the caller set a positive
// threshold.
func buildConstraints(opts Options) []constraints.Constraint {
	active := []constraints.Constraint{
		constraints.NewOverlapConstraint(opts.Overlap),
		constraints.NewCorridorConstraint(),
	}
	if opts.Level.MinimumRoomDistance > 0 {
		active = append(active, constraints.NewMinDistanceConstraint(opts.Level.MinimumRoomDistance))
	}
	return active
}
