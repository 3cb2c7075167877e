package model

import (
	"sort"

	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
)

// ConfigSpace is the precomputed set of relative offsets under which
// two shape variants connect through at least one door pair without
// overlapping (spec.md §3/§4.1).
type ConfigSpace struct {
	Offsets map[geometry.Point]struct{}
}

func NewConfigSpace() ConfigSpace {
	return ConfigSpace{Offsets: make(map[geometry.Point]struct{})}
}

func (cs ConfigSpace) Add(p geometry.Point) { cs.Offsets[p] = struct{}{} }

func (cs ConfigSpace) Contains(p geometry.Point) bool {
	_, ok := cs.Offsets[p]
	return ok
}

// Slice returns the offsets as a slice sorted by (X, Y). Map iteration
// order is randomized per run, so callers that index the result with a
// PRNG draw (controller.randomPoint) need a total order here to keep
// the same seed picking the same offset across runs (spec.md §5's
// determinism invariant).
func (cs ConfigSpace) Slice() []geometry.Point {
	out := make([]geometry.Point, 0, len(cs.Offsets))
	for p := range cs.Offsets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// Intersect returns the offsets common to both configuration spaces.
func (cs ConfigSpace) Intersect(other ConfigSpace) ConfigSpace {
	out := NewConfigSpace()
	small, big := cs, other
	if len(other.Offsets) < len(cs.Offsets) {
		small, big = other, cs
	}
	for p := range small.Offsets {
		if big.Contains(p) {
			out.Add(p)
		}
	}
	return out
}

// Union returns the offsets present in either configuration space.
func (cs ConfigSpace) Union(other ConfigSpace) ConfigSpace {
	out := NewConfigSpace()
	for p := range cs.Offsets {
		out.Add(p)
	}
	for p := range other.Offsets {
		out.Add(p)
	}
	return out
}

// ShapePairKey identifies an ordered pair of shape aliases under a
// specific edge kind: a room-room pair and a room-corridor pair for
// the same two aliases generally admit different offsets (spec.md
// §4.1's door-length matching applies only to corridor joins), so the
// two are kept as distinct entries rather than overwriting one another.
type ShapePairKey struct {
	AliasU, AliasV int
	Kind           EdgeKind
}

// ConfigSpaceTable is the bidirectional lookup from spec.md §3: for an
// ordered pair of shape aliases and an edge kind, the configuration
// space connecting them. Built once per generation and immutable
// thereafter.
type ConfigSpaceTable struct {
	Spaces  map[ShapePairKey]ConfigSpace
	Aliases IntAliasMapping
}

func NewConfigSpaceTable() *ConfigSpaceTable {
	return &ConfigSpaceTable{
		Spaces:  make(map[ShapePairKey]ConfigSpace),
		Aliases: make(IntAliasMapping),
	}
}

func (t *ConfigSpaceTable) Get(aliasU, aliasV int, kind EdgeKind) (ConfigSpace, bool) {
	cs, ok := t.Spaces[ShapePairKey{AliasU: aliasU, AliasV: aliasV, Kind: kind}]
	return cs, ok
}

func (t *ConfigSpaceTable) Set(aliasU, aliasV int, kind EdgeKind, cs ConfigSpace) {
	t.Spaces[ShapePairKey{AliasU: aliasU, AliasV: aliasV, Kind: kind}] = cs
}
