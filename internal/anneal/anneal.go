// Package anneal implements the simulated-annealing evolver (spec.md
// §4.5): a two-stage cooling + random-restart state machine that
// places one chain's nodes at a time. Grounded on the teacher's
// explicit state-machine-over-named-stages style (turn_system.go,
// dynamic_turn_order.go): named stage functions, early return on
// terminal conditions, no hidden recursion.
package anneal

import (
	"math"

	"github.com/Ko-stant/dungeon-layout-core/internal/controller"
	"github.com/Ko-stant/dungeon-layout-core/internal/events"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
	"github.com/Ko-stant/dungeon-layout-core/internal/rng"
)

// Config holds the cooling schedule and retry bounds, with spec.md
// §4.5's defaults.
type Config struct {
	Cycles                      int
	TrialsPerCycle              int
	InitialTemperature          float64
	Alpha                       float64
	MaxIterationsWithoutSuccess int
	MaxStageTwoFailures         int
	// HandleTreesGreedily alters stage 2 for tree chains (spec.md
	// §4.2): instead of handing them to the cooling state machine, each
	// unplaced node tries every offset in configuration space in a
	// fixed order and takes the first zero-energy placement.
	HandleTreesGreedily bool
}

func DefaultConfig() Config {
	return Config{
		Cycles:                      50,
		TrialsPerCycle:              100,
		InitialTemperature:          10.0,
		Alpha:                       0.9,
		MaxIterationsWithoutSuccess: 10000,
		MaxStageTwoFailures:         10000,
	}
}

// Canceller is polled at trial boundaries; spec.md §5 requires this
// check at least once per TrialsPerCycle, here it is checked every
// trial.
type Canceller interface {
	Cancelled() bool
}

// Evolver runs the cooling state machine for one chain at a time.
type Evolver struct {
	Controller *controller.Controller
	Events     events.Sink
	Cancel     Canceller
}

func New(c *controller.Controller, sink events.Sink, cancel Canceller) *Evolver {
	if sink == nil {
		sink = events.NullSink{}
	}
	return &Evolver{Controller: c, Events: sink, Cancel: cancel}
}

// Solve places chain's nodes into layout, returning the resulting
// layout and whether it is fully valid (every chain node placed with
// zero energy). base is the layout inherited from earlier chains,
// already containing the shared node(s) this chain connects through.
func (e *Evolver) Solve(r rng.PRNG, cfg Config, base model.Layout, chain model.Chain, chainIndex int) (model.Layout, bool) {
	if !chain.IsFromFace && cfg.HandleTreesGreedily {
		result, ok := e.solveGreedy(base, chain)
		if ok {
			e.Events.OnPartialValid(chainIndex, result)
		}
		return result, ok
	}

	seed := e.initializeChain(r, base, chain)

	result, ok := e.stage1(r, cfg, seed, chain, chainIndex)
	if ok {
		e.Events.OnPartialValid(chainIndex, result)
		return result, true
	}
	if chain.IsFromFace {
		// spec.md §9 flags this skip as unexplained in the source this
		// spec was distilled from; preserved here rather than
		// "corrected," per the spec's explicit instruction to
		// preserve-but-flag.
		return result, false
	}

	for attempt := 0; attempt < cfg.MaxStageTwoFailures; attempt++ {
		if e.cancelled() {
			return result, false
		}
		reseeded := e.reseedChain(r, base, chain)
		attemptResult, ok := e.stage1(r, cfg, reseeded, chain, chainIndex)
		if ok {
			e.Events.OnPartialValid(chainIndex, attemptResult)
			return attemptResult, true
		}
		result = attemptResult
	}
	return result, false
}

// stage1 runs the cooling schedule: Cycles iterations at geometrically
// decreasing temperature, TrialsPerCycle perturbations each, accepting
// energy-reducing perturbations unconditionally and energy-increasing
// ones with probability exp(-ΔE/T).
func (e *Evolver) stage1(r rng.PRNG, cfg Config, seed model.Layout, chain model.Chain, chainIndex int) (model.Layout, bool) {
	current := seed
	best := seed
	bestEnergy := e.Controller.ChainEnergy(seed, chain.Nodes)
	iterationsWithoutImprovement := 0
	cycleRetries := 0
	// No-accept cycles retry the same temperature rather than advancing
	// the schedule; cap total retries so a chain that can never accept
	// a perturbation (e.g. a single node with no alternative shape and
	// no neighbors) still terminates.
	maxCycleRetries := cfg.Cycles * cfg.TrialsPerCycle

	for cycle := 0; cycle < cfg.Cycles; cycle++ {
		temperature := cfg.InitialTemperature * math.Pow(cfg.Alpha, float64(cycle))
		acceptedAny := false

		for trial := 0; trial < cfg.TrialsPerCycle; trial++ {
			if e.cancelled() {
				return current, e.Controller.ChainValid(current, chain.Nodes)
			}

			candidate, err := e.Controller.Perturb(r, current, chain.Nodes)
			if err != nil {
				continue
			}

			oldEnergy := e.Controller.ChainEnergy(current, chain.Nodes)
			newEnergy := e.Controller.ChainEnergy(candidate, chain.Nodes)
			delta := newEnergy - oldEnergy

			accept := delta <= 0
			if !accept && temperature > 0 {
				accept = r.Float64() < math.Exp(-delta/temperature)
			}

			if !accept {
				iterationsWithoutImprovement++
				continue
			}

			current = candidate
			acceptedAny = true
			e.Events.OnPerturbed(chainIndex, current)

			if newEnergy < bestEnergy {
				best = current
				bestEnergy = newEnergy
				iterationsWithoutImprovement = 0
			} else {
				iterationsWithoutImprovement++
			}

			if newEnergy == 0 {
				return current, true
			}

			if iterationsWithoutImprovement >= cfg.MaxIterationsWithoutSuccess {
				current = best
				iterationsWithoutImprovement = 0
			}
		}

		if !acceptedAny && cycleRetries < maxCycleRetries {
			// "Reset the cycle if no accept occurs": retry the same
			// temperature rather than cooling further.
			cycle--
			cycleRetries++
		}
	}

	return best, e.Controller.ChainValid(best, chain.Nodes)
}

// solveGreedy implements the "handle trees greedily" policy (spec.md
// §4.2): for each unplaced node in chain order, try every allowed
// shape in order and every configuration-space offset in a fixed
// order, accepting the first zero-energy placement. Deterministic
// given base and chain alone — no PRNG draw.
func (e *Evolver) solveGreedy(base model.Layout, chain model.Chain) (model.Layout, bool) {
	layout := base
	for _, node := range chain.Nodes {
		if layout.Has(node) {
			continue
		}
		candidates, err := e.Controller.CandidateShapes(layout, node)
		if err != nil {
			return layout, false
		}

		placed := false
		for _, shape := range candidates {
			for _, offset := range e.Controller.CandidateOffsetsSorted(layout, node, shape.Alias) {
				cfg := model.Configuration{Node: node, ShapeID: shape.ID, Alias: shape.Alias, Offset: offset}
				trial := e.Controller.Place(layout, node, cfg)
				if after, ok := trial.Get(node); ok && after.Energy.Total == 0 {
					layout = trial
					placed = true
					break
				}
			}
			if placed {
				break
			}
		}
		if !placed {
			return layout, false
		}
	}
	return layout, e.Controller.ChainValid(layout, chain.Nodes)
}

// initializeChain assigns an initial shape and offset to every node of
// chain not already present in base (nodes shared with an earlier
// chain keep their existing configuration).
func (e *Evolver) initializeChain(r rng.PRNG, base model.Layout, chain model.Chain) model.Layout {
	layout := base
	for _, node := range chain.Nodes {
		if layout.Has(node) {
			continue
		}
		layout = e.placeInitial(r, layout, node)
	}
	return layout
}

// reseedChain is stage 2's random restart: it places the chain's root
// node (its first node) at a fresh random valid offset unless base
// already holds it, in which case the root keeps its placement, and
// reinitializes the rest of the chain from there.
func (e *Evolver) reseedChain(r rng.PRNG, base model.Layout, chain model.Chain) model.Layout {
	layout := base
	root, ok := chain.Root()
	if ok && !layout.Has(root) {
		layout = e.placeInitial(r, layout, root)
	}
	for _, node := range chain.Nodes {
		if node == root {
			continue
		}
		layout = e.placeInitial(r, layout, node)
	}
	return layout
}

func (e *Evolver) placeInitial(r rng.PRNG, layout model.Layout, node int) model.Layout {
	candidates, err := e.Controller.CandidateShapes(layout, node)
	if err != nil || len(candidates) == 0 {
		return layout
	}
	shape := candidates[r.Intn(len(candidates))]
	offset := e.Controller.InitialOffsetFor(r, layout, node, shape.Alias)
	cfg := model.Configuration{Node: node, ShapeID: shape.ID, Alias: shape.Alias, Offset: offset}
	return e.Controller.Place(layout, node, cfg)
}

func (e *Evolver) cancelled() bool {
	return e.Cancel != nil && e.Cancel.Cancelled()
}
