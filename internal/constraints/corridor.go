package constraints

import (
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// CorridorConstraint implements spec.md §4.3's corridor constraint:
// for each triple (a, c, b) where c is a corridor node between rooms a
// and b, energy is zero iff some corridor shape variant connects a to
// b through c, i.e. pos(b)-pos(a) lies in CS(A,C) ⊕ CS(C,B) for some
// corridor shape C; otherwise a penalty proportional to the L1 gap
// between the required offset and the closest reachable one. The
// constraint adds energy only to room nodes a and b that have a corridor
// neighbor in common; it does not look at where the corridor node itself
// is placed. The evolver places corridor nodes like any other chain node,
// and layoutconv resolves only corridor nodes the layout does not hold.
type CorridorConstraint struct {
	// PenaltyWeight scales the L1 gap into an energy contribution.
	PenaltyWeight float64
}

func NewCorridorConstraint() CorridorConstraint {
	return CorridorConstraint{PenaltyWeight: 10.0}
}

func (c CorridorConstraint) Name() string { return "corridor" }

func (c CorridorConstraint) Compute(in Input, layout model.Layout, node int, candidate model.Configuration) float64 {
	total := 0.0
	for _, corridor := range in.Graph.Neighbors(node) {
		if !isCorridor(in.Graph, corridor) {
			continue
		}
		other, ok := theOtherRoomNeighbor(in.Graph, corridor, node)
		if !ok {
			continue
		}
		otherCfg, placed := layout.Get(other)
		if !placed {
			continue
		}
		total += c.tripleEnergy(in, node, candidate, corridor, other, otherCfg)
	}
	return total
}

func (c CorridorConstraint) Update(in Input, layout model.Layout, perturbedNode int, newConfig model.Configuration, neighbor int, old model.EnergyData) float64 {
	return c.Compute(in, layout.WithConfiguration(perturbedNode, newConfig), neighbor, mustGet(layout, neighbor))
}

func mustGet(layout model.Layout, node int) model.Configuration {
	cfg, _ := layout.Get(node)
	return cfg
}

// tripleEnergy evaluates one (a, corridor, b) triple where a is node
// placed at candidate and b is other placed at otherCfg.
func (c CorridorConstraint) tripleEnergy(in Input, a int, aCfg model.Configuration, corridor, b int, bCfg model.Configuration) float64 {
	required := bCfg.Offset.Sub(aCfg.Offset)

	best := -1
	for _, corridorShape := range in.Graph.Nodes[corridor].Shapes {
		csAC, ok := in.ConfigSpaces.Get(aCfg.Alias, corridorShape.Alias, model.EdgeRoomCorridor)
		if !ok {
			continue
		}
		csCB, ok := in.ConfigSpaces.Get(corridorShape.Alias, bCfg.Alias, model.EdgeRoomCorridor)
		if !ok {
			continue
		}
		combined := minkowskiSum(csAC, csCB)
		if combined.Contains(required) {
			return 0
		}
		if gap := nearestL1Gap(combined, required); best == -1 || gap < best {
			best = gap
		}
	}
	if best == -1 {
		return c.PenaltyWeight
	}
	return float64(best) * c.PenaltyWeight
}

// theOtherRoomNeighbor returns corridor's neighbor that isn't from,
// the corridor's sole other endpoint (corridor nodes always have
// degree exactly 2, enforced by model.Graph.Validate).
func theOtherRoomNeighbor(g model.Graph, corridor, from int) (int, bool) {
	for _, nb := range g.Neighbors(corridor) {
		if nb != from {
			return nb, true
		}
	}
	return 0, false
}

func minkowskiSum(a, b model.ConfigSpace) model.ConfigSpace {
	out := model.NewConfigSpace()
	for p := range a.Offsets {
		for q := range b.Offsets {
			out.Add(p.Add(q))
		}
	}
	return out
}

func nearestL1Gap(cs model.ConfigSpace, target geometry.Point) int {
	best := -1
	for p := range cs.Offsets {
		d := l1(p, target)
		if best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return 0
	}
	return best
}

func l1(a, b geometry.Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
