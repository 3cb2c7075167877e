// Package planner implements the generator planner (spec.md §4.6): a
// backtracking stack of PlannerNodes driving chain placement in order,
// discarding an ancestor once it has expanded SimulatedAnnealingMaxBranching
// times without yielding a final layout. Grounded on the teacher's
// stack-of-state-objects management style (game_manager.go,
// lobby_manager.go: push/pop a typed stack, bounded retry per frame).
package planner

import (
	"github.com/Ko-stant/dungeon-layout-core/internal/anneal"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
	"github.com/Ko-stant/dungeon-layout-core/internal/rng"
)

// Config bounds planner backtracking.
type Config struct {
	MaxBranching int
}

func DefaultConfig() Config {
	return Config{MaxBranching: 5}
}

// Canceller is polled once per planner step, the same interface the
// evolver polls per trial.
type Canceller interface {
	Cancelled() bool
}

// Planner drives Chains through Evolver in order, maintaining the
// PlannerNode stack spec.md §4.6 describes.
type Planner struct {
	Evolver *anneal.Evolver
	Chains  []model.Chain
	Cancel  Canceller
}

func New(evolver *anneal.Evolver, chains []model.Chain, cancel Canceller) *Planner {
	return &Planner{Evolver: evolver, Chains: chains, Cancel: cancel}
}

// Run drives the full chain sequence to a valid layout or exhausts the
// planner stack. annealCfgFor resolves the cooling schedule for a given
// chain index, letting GeneratorConfiguration.PerChainOverrides (spec.md
// §6) vary the schedule per chain. Run returns the best-so-far layout
// (possibly invalid, or empty on total failure before any chain placed)
// and whether that layout is a complete, valid solution.
func (p *Planner) Run(r rng.PRNG, annealCfgFor func(chainIndex int) anneal.Config, plannerCfg Config) (model.Layout, bool) {
	stack := []model.PlannerNode{{Layout: model.NewLayout(), ChainIndex: 0, Expansions: 0}}
	best := model.NewLayout()

	for len(stack) > 0 {
		if p.cancelled() {
			return best, false
		}

		top := &stack[len(stack)-1]
		if top.ChainIndex > len(best.Configurations) {
			best = top.Layout
		}

		if top.ChainIndex >= len(p.Chains) {
			return top.Layout, top.Layout.IsValid()
		}

		chain := p.Chains[top.ChainIndex]
		result, ok := p.Evolver.Solve(r, annealCfgFor(top.ChainIndex), top.Layout, chain, top.ChainIndex)
		top.Expansions++

		if ok {
			if len(result.Configurations) > len(best.Configurations) {
				best = result
			}
			stack = append(stack, model.PlannerNode{Layout: result, ChainIndex: top.ChainIndex + 1, Expansions: 0})
			continue
		}

		if !top.CanExpand(plannerCfg.MaxBranching) {
			stack = stack[:len(stack)-1]
		}
	}

	return best, false
}

func (p *Planner) cancelled() bool {
	return p.Cancel != nil && p.Cancel.Cancelled()
}
