// Package layoutconv converts the internal, dense-indexed Layout into
// the caller-facing MapLayout (spec.md §2, §6): absolute positions
// keyed by the caller's original node IDs, plus resolved corridor
// placements and door-pair assignments per edge. Grounded on the
// teacher's internal/protocol/snapshot.go (assembling a wire-facing
// Snapshot from the internal GameState).
package layoutconv

import (
	"fmt"

	"github.com/Ko-stant/dungeon-layout-core/internal/doorhandler"
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/mapdesc"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// PlacedNode is one node's resolved placement in caller-facing terms.
type PlacedNode struct {
	ID       string
	ShapeID  string
	Position geometry.Point
}

// DoorAssignment records which door line on each side of an edge the
// two nodes connect through.
type DoorAssignment struct {
	A, B  string
	DoorA geometry.DoorLine
	DoorB geometry.DoorLine
}

// MapLayout is the full external output (spec.md §6).
type MapLayout struct {
	Nodes []PlacedNode
	Doors []DoorAssignment
}

// Converter resolves, at conversion time, the placement of any corridor
// node the layout does not already hold. A corridor node the evolver
// placed keeps that placement.
type Converter struct {
	Doors doorhandler.DoorHandler
}

func New(doors doorhandler.DoorHandler) *Converter {
	return &Converter{Doors: doors}
}

// Convert turns an internal Layout (indexed by dense node index) into
// a MapLayout indexed by the caller's original node IDs, resolving the
// shape and position of every corridor node missing from layout along
// the way.
func (c *Converter) Convert(mapping *mapdesc.Mapping, layout model.Layout, spaces *model.ConfigSpaceTable) (MapLayout, error) {
	g := mapping.Graph
	resolved := layout.Clone()

	for _, n := range g.Nodes {
		if !n.IsCorridor {
			continue
		}
		if resolved.Has(n.Index) {
			continue
		}
		cfg, err := c.resolveCorridor(g, resolved, spaces, n.Index)
		if err != nil {
			return MapLayout{}, err
		}
		resolved = resolved.WithConfiguration(n.Index, cfg)
	}

	out := MapLayout{}
	for _, n := range g.Nodes {
		cfg, ok := resolved.Get(n.Index)
		if !ok {
			return MapLayout{}, fmt.Errorf("layoutconv: node %q has no resolved placement", mapping.IDFor(n.Index))
		}
		out.Nodes = append(out.Nodes, PlacedNode{ID: mapping.IDFor(n.Index), ShapeID: cfg.ShapeID, Position: cfg.Offset})
	}

	for _, e := range g.Edges {
		cfgA, okA := resolved.Get(e.A)
		cfgB, okB := resolved.Get(e.B)
		if !okA || !okB {
			continue
		}
		shapeA, _ := g.Nodes[e.A].ShapeByID(cfgA.ShapeID)
		shapeB, _ := g.Nodes[e.B].ShapeByID(cfgB.ShapeID)
		doorA, doorB, ok := coincidentDoorPair(c.Doors, shapeA, cfgA.Offset, shapeB, cfgB.Offset, e.Kind)
		if !ok {
			continue
		}
		out.Doors = append(out.Doors, DoorAssignment{
			A: mapping.IDFor(e.A), B: mapping.IDFor(e.B),
			DoorA: doorA, DoorB: doorB,
		})
	}

	return out, nil
}

// resolveCorridor finds a corridor shape variant and position
// connecting node's two room neighbors (both already placed), the
// same membership test the corridor constraint performs, but choosing
// a concrete decomposition of the required offset into the two legs
// instead of merely testing feasibility.
func (c *Converter) resolveCorridor(g model.Graph, layout model.Layout, spaces *model.ConfigSpaceTable, node int) (model.Configuration, error) {
	neighbors := g.Neighbors(node)
	if len(neighbors) != 2 {
		return model.Configuration{}, fmt.Errorf("layoutconv: corridor node %d does not have exactly 2 neighbors", node)
	}
	a, b := neighbors[0], neighbors[1]
	cfgA, okA := layout.Get(a)
	cfgB, okB := layout.Get(b)
	if !okA || !okB {
		return model.Configuration{}, fmt.Errorf("layoutconv: corridor node %d's neighbors are not both placed", node)
	}
	required := cfgB.Offset.Sub(cfgA.Offset)

	for _, shape := range g.Nodes[node].Shapes {
		csAC, ok := spaces.Get(cfgA.Alias, shape.Alias, model.EdgeRoomCorridor)
		if !ok {
			continue
		}
		csCB, ok := spaces.Get(shape.Alias, cfgB.Alias, model.EdgeRoomCorridor)
		if !ok {
			continue
		}
		for p := range csAC.Offsets {
			q := required.Sub(p)
			if csCB.Contains(q) {
				return model.Configuration{
					Node:    node,
					ShapeID: shape.ID,
					Alias:   shape.Alias,
					Offset:  cfgA.Offset.Add(p),
				}, nil
			}
		}
	}
	return model.Configuration{}, fmt.Errorf("layoutconv: no corridor shape connects node %d's neighbors %d and %d", node, a, b)
}

func coincidentDoorPair(doors doorhandler.DoorHandler, shapeA model.ShapeVariant, offsetA geometry.Point, shapeB model.ShapeVariant, offsetB geometry.Point, kind model.EdgeKind) (geometry.DoorLine, geometry.DoorLine, bool) {
	for _, da := range doors.Doors(shapeA) {
		placedA := da.Translate(offsetA)
		for _, db := range doors.Doors(shapeB) {
			placedB := db.Translate(offsetB)
			if !doors.Compatible(da, db, kind) {
				continue
			}
			if placedA.From == placedB.From && placedA.To == placedB.To {
				return da, db, true
			}
		}
	}
	return geometry.DoorLine{}, geometry.DoorLine{}, false
}
