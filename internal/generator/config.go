package generator

import (
	"time"

	"github.com/Ko-stant/dungeon-layout-core/internal/anneal"
	"github.com/Ko-stant/dungeon-layout-core/internal/chains"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// ChainDecompositionConfig configures stage-2 tree handling (spec.md
// §4.2, §6).
type ChainDecompositionConfig struct {
	MaxTreeChainSize    int
	HandleTreesGreedily bool
}

func (c ChainDecompositionConfig) toChainsOptions() chains.Options {
	return chains.Options{MaxTreeChainSize: c.MaxTreeChainSize}
}

// SimulatedAnnealingConfig configures the evolver's cooling schedule
// (spec.md §4.5, §6). PerChainOverrides lets a specific chain index use
// a different schedule than the default.
type SimulatedAnnealingConfig struct {
	Cycles                      int
	TrialsPerCycle              int
	InitialTemperature          float64
	Alpha                       float64
	MaxIterationsWithoutSuccess int
	MaxStageTwoFailures         int
	PerChainOverrides           map[int]SimulatedAnnealingConfig
}

func defaultSAConfig() SimulatedAnnealingConfig {
	return SimulatedAnnealingConfig{
		Cycles:                      50,
		TrialsPerCycle:              100,
		InitialTemperature:          10.0,
		Alpha:                       0.9,
		MaxIterationsWithoutSuccess: 10000,
		MaxStageTwoFailures:         10000,
	}
}

// Configuration is GeneratorConfiguration (spec.md §6): every knob the
// caller supplies beyond the level description and capability objects.
type Configuration struct {
	ChainDecomposition             ChainDecompositionConfig
	SimulatedAnnealing             SimulatedAnnealingConfig
	SimulatedAnnealingMaxBranching int
	OptimizeCorridorConstraints    bool
	RepeatModeOverride             *model.RepeatMode
	ThrowIfRepeatModeNotSatisfied  bool

	// EarlyStopIfIterationsExceeded and EarlyStopIfTimeExceeded bound a
	// run without an external cancellation token; 0 means unset. Setting
	// either one together with an external Cancel token on Options is a
	// ConfigurationError (spec.md §6: at most one cancellation source).
	EarlyStopIfIterationsExceeded int
	EarlyStopIfTimeExceeded       time.Duration

	Seed int64
}

// DefaultConfiguration returns spec.md §4's documented defaults.
func DefaultConfiguration() Configuration {
	return Configuration{
		SimulatedAnnealing:             defaultSAConfig(),
		SimulatedAnnealingMaxBranching: 5,
	}
}

// annealConfigFor resolves the cooling schedule for a given chain index,
// honoring PerChainOverrides.
func (c Configuration) annealConfigFor(chainIndex int) anneal.Config {
	sa := c.SimulatedAnnealing
	if override, ok := sa.PerChainOverrides[chainIndex]; ok {
		sa = override
	}
	return anneal.Config{
		Cycles:                      sa.Cycles,
		TrialsPerCycle:              sa.TrialsPerCycle,
		InitialTemperature:          sa.InitialTemperature,
		Alpha:                       sa.Alpha,
		MaxIterationsWithoutSuccess: sa.MaxIterationsWithoutSuccess,
		MaxStageTwoFailures:         sa.MaxStageTwoFailures,
		HandleTreesGreedily:         c.ChainDecomposition.HandleTreesGreedily,
	}
}
