package chains

import (
	"testing"

	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

func nodes(n int) []model.NodeDescription {
	out := make([]model.NodeDescription, n)
	for i := range out {
		out[i] = model.NodeDescription{Index: i}
	}
	return out
}

func TestDecompose_EveryNodeCoveredByAChain(t *testing.T) {
	// A square (0-1-2-3-0) with a tail (3-4).
	g := model.Graph{
		Nodes: nodes(5),
		Edges: []model.Edge{
			{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 0},
			{A: 3, B: 4},
		},
	}

	result := Decompose(g, Options{})

	seenNode := make(map[int]int)
	for _, c := range result {
		for _, n := range c.Nodes {
			seenNode[n]++
		}
	}

	for n := 0; n < len(g.Nodes); n++ {
		if seenNode[n] == 0 {
			t.Fatalf("node %d missing from every chain", n)
		}
	}
}

func TestDecompose_FaceChainFoundForSquare(t *testing.T) {
	g := model.Graph{
		Nodes: nodes(4),
		Edges: []model.Edge{
			{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 0},
		},
	}
	result := Decompose(g, Options{})
	if len(result) == 0 {
		t.Fatalf("expected at least one chain")
	}
	if !result[0].IsFromFace {
		t.Fatalf("expected first chain to be a face chain for a pure cycle graph")
	}
	if len(result[0].Nodes) != 4 {
		t.Fatalf("expected the face chain to cover all 4 nodes of the square, got %d", len(result[0].Nodes))
	}
}

func TestDecompose_PureTreeHasNoFaceChains(t *testing.T) {
	// A star: 0 is the center, 1..3 are leaves.
	g := model.Graph{
		Nodes: nodes(4),
		Edges: []model.Edge{{A: 0, B: 1}, {A: 0, B: 2}, {A: 0, B: 3}},
	}
	result := Decompose(g, Options{})
	for _, c := range result {
		if c.IsFromFace {
			t.Fatalf("tree graph should produce no face chains, got one: %+v", c)
		}
	}
}

func TestDecompose_LaterChainSharesNodeWithEarlierUnion(t *testing.T) {
	g := model.Graph{
		Nodes: nodes(5),
		Edges: []model.Edge{
			{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 0},
			{A: 3, B: 4},
		},
	}
	result := Decompose(g, Options{})
	seen := make(map[int]bool)
	for i, c := range result {
		if i > 0 {
			shared := false
			for _, n := range c.Nodes {
				if seen[n] {
					shared = true
					break
				}
			}
			if !shared {
				t.Fatalf("chain %d shares no node with the union of earlier chains", i)
			}
		}
		for _, n := range c.Nodes {
			seen[n] = true
		}
	}
}
