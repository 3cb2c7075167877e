// Package mapdesc implements the map description mapping (spec.md
// §2): canonicalizing user-supplied node identifiers to dense integer
// indices and assembling the immutable Graph the rest of the core
// operates on.
package mapdesc

import (
	"fmt"
	"sort"

	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// NodeSpec is a caller-supplied node: an opaque ID, the allowed shape
// variants, whether it is a corridor, and its repeat-mode policy.
type NodeSpec struct {
	ID         string
	Shapes     []model.ShapeVariant
	IsCorridor bool
	Repeat     model.RepeatMode
}

// EdgeSpec is a caller-supplied edge between two opaque node IDs.
type EdgeSpec struct {
	A, B string
	Kind model.EdgeKind
}

// LevelDescription is the full external input (spec.md §6): the
// caller's graph expressed over opaque IDs, plus the minimum room
// distance.
type LevelDescription struct {
	Nodes               []NodeSpec
	Edges               []EdgeSpec
	MinimumRoomDistance int
}

// Mapping canonicalizes a LevelDescription into a dense-indexed Graph,
// remembering the original ID for each dense index so layoutconv can
// convert back (spec.md §2's "map description mapping").
type Mapping struct {
	Graph     model.Graph
	IndexByID map[string]int
	IDByIndex []string
}

// Build canonicalizes node IDs in first-seen order to indices 0..N-1
// and assembles the Graph. It returns a *model.GraphError (a
// ConfigurationError per spec.md §7) if the assembled graph fails
// validation, and a plain error for a duplicate node ID or an edge
// naming an unknown node.
func Build(level LevelDescription) (*Mapping, error) {
	indexByID := make(map[string]int, len(level.Nodes))
	idByIndex := make([]string, 0, len(level.Nodes))
	nodes := make([]model.NodeDescription, 0, len(level.Nodes))

	for _, n := range level.Nodes {
		if _, exists := indexByID[n.ID]; exists {
			return nil, fmt.Errorf("mapdesc: duplicate node id %q", n.ID)
		}
		idx := len(idByIndex)
		indexByID[n.ID] = idx
		idByIndex = append(idByIndex, n.ID)
		nodes = append(nodes, model.NodeDescription{
			Index:      idx,
			Shapes:     n.Shapes,
			IsCorridor: n.IsCorridor,
			Repeat:     n.Repeat,
		})
	}

	edges := make([]model.Edge, 0, len(level.Edges))
	for _, e := range level.Edges {
		a, ok := indexByID[e.A]
		if !ok {
			return nil, fmt.Errorf("mapdesc: edge references unknown node %q", e.A)
		}
		b, ok := indexByID[e.B]
		if !ok {
			return nil, fmt.Errorf("mapdesc: edge references unknown node %q", e.B)
		}
		edges = append(edges, model.Edge{A: a, B: b, Kind: e.Kind})
	}

	graph := model.Graph{Nodes: nodes, Edges: edges}
	if err := graph.Validate(); err != nil {
		return nil, err
	}

	return &Mapping{Graph: graph, IndexByID: indexByID, IDByIndex: idByIndex}, nil
}

// IDFor returns the caller's original ID for a dense node index.
func (m *Mapping) IDFor(index int) string {
	if index < 0 || index >= len(m.IDByIndex) {
		return ""
	}
	return m.IDByIndex[index]
}

// SortedIndices returns every node index in ascending order. Nothing in
// this module calls it; chain decomposition breaks ties on node index
// directly.
func (m *Mapping) SortedIndices() []int {
	out := make([]int, len(m.IDByIndex))
	for i := range out {
		out[i] = i
	}
	sort.Ints(out)
	return out
}
