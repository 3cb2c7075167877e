package model

import "testing"

func TestGraphValidate_RejectsSelfLoop(t *testing.T) {
	g := Graph{
		Nodes: []NodeDescription{{Index: 0}},
		Edges: []Edge{{A: 0, B: 0}},
	}
	if err := g.Validate(); err == nil {
		t.Fatalf("expected self-loop to be rejected")
	}
}

func TestGraphValidate_RejectsDisconnected(t *testing.T) {
	g := Graph{
		Nodes: []NodeDescription{{Index: 0}, {Index: 1}, {Index: 2}},
		Edges: []Edge{{A: 0, B: 1}},
	}
	if err := g.Validate(); err == nil {
		t.Fatalf("expected disconnected graph to be rejected")
	}
}

func TestGraphValidate_RejectsBadCorridorDegree(t *testing.T) {
	g := Graph{
		Nodes: []NodeDescription{{Index: 0}, {Index: 1, IsCorridor: true}, {Index: 2}},
		Edges: []Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 2}},
	}
	// corridor node 1 has degree 2 here, so this should pass.
	if err := g.Validate(); err != nil {
		t.Fatalf("expected valid graph, got %v", err)
	}

	g2 := Graph{
		Nodes: []NodeDescription{{Index: 0}, {Index: 1, IsCorridor: true}, {Index: 2}},
		Edges: []Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 0, B: 2}, {A: 1, B: 2}},
	}
	// the duplicate edge gives corridor node 1 degree 3.
	if err := g2.Validate(); err == nil {
		t.Fatalf("expected corridor node with degree 3 to be rejected")
	}
}

func TestGraphNeighborsAndDegree(t *testing.T) {
	g := Graph{
		Nodes: []NodeDescription{{Index: 0}, {Index: 1}, {Index: 2}},
		Edges: []Edge{{A: 0, B: 1}, {A: 1, B: 2}},
	}
	if got := g.Degree(1); got != 2 {
		t.Fatalf("expected degree 2 for node 1, got %d", got)
	}
	if !g.AreAdjacent(0, 1) {
		t.Fatalf("expected 0 and 1 to be adjacent")
	}
	if g.AreAdjacent(0, 2) {
		t.Fatalf("expected 0 and 2 to not be adjacent")
	}
}
