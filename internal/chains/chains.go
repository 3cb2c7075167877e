// Package chains implements chain decomposition (spec.md §4.2): a
// two-stage split of the input graph into ordered node sequences the
// evolver and planner place one chain at a time. Stage 1 extracts
// faces (small cycles) shortest-first; stage 2 walks the remaining
// tree edges breadth-first from the face cover, the same slice-queue
// BFS idiom used by internal/geometry's flood fill, generalized from
// rectangle adjacency to graph adjacency.
package chains

import (
	"sort"

	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// Options configures stage-2 behavior. The "handle trees greedily"
// policy (spec.md §4.2) does not change decomposition itself — it only
// changes how the evolver solves a tree chain once produced, so it is
// an evolver option (anneal.Config.HandleTreesGreedily), not one here;
// callers distinguish tree chains from face chains via Chain.IsFromFace.
type Options struct {
	// MaxTreeChainSize caps how many nodes a single stage-2 BFS chain
	// may accumulate before a new chain is started; zero means
	// unbounded (a chain ends only at a branch or when the tree runs out).
	// The count includes the already-visited node a chain starts from,
	// and a chain started at a branch or at the cap always holds that
	// node plus one new node, so a cap of 1 still yields two-node chains.
	MaxTreeChainSize int
}

// Decompose splits g into chains: every node appears in at least one
// chain, every edge is walked by exactly one face or tree step, and the
// order is stable given g and opts. A node where a chain attaches to
// earlier ones appears in each of those chains, so every tree chain
// shares a node with the union of earlier chains. All face chains are
// emitted before any tree chain, so a face chain that touches no earlier
// face shares no node with the chains before it.
func Decompose(g model.Graph, opts Options) []model.Chain {
	usedEdges := make(map[edgeKey]bool)
	inChain := make([]bool, len(g.Nodes))

	var out []model.Chain
	out = append(out, extractFaces(g, usedEdges, inChain)...)
	out = append(out, extendTrees(g, opts, usedEdges, inChain)...)

	for i := range out {
		out[i].Sequence = i
	}
	return out
}

type edgeKey struct{ a, b int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// extractFaces repeatedly finds the shortest cycle through an unused
// edge and emits it as a chain, smallest cycles first and ties broken
// by the earliest-touched node, until no unused edge lies on any
// cycle.
func extractFaces(g model.Graph, usedEdges map[edgeKey]bool, inChain []bool) []model.Chain {
	var faces []model.Chain

	for {
		var best []int
		bestTouch := -1

		for _, e := range g.Edges {
			key := newEdgeKey(e.A, e.B)
			if usedEdges[key] {
				continue
			}
			cycle := shortestCycleThrough(g, e, usedEdges)
			if cycle == nil {
				continue
			}
			touch := earliestTouchedNode(cycle)
			if best == nil || len(cycle) < len(best) || (len(cycle) == len(best) && touch < bestTouch) {
				best = cycle
				bestTouch = touch
			}
		}

		if best == nil {
			break
		}
		for i := 0; i < len(best); i++ {
			a, b := best[i], best[(i+1)%len(best)]
			usedEdges[newEdgeKey(a, b)] = true
			inChain[a] = true
			inChain[b] = true
		}
		faces = append(faces, model.Chain{Nodes: best, IsFromFace: true})
	}

	sort.SliceStable(faces, func(i, j int) bool {
		if len(faces[i].Nodes) != len(faces[j].Nodes) {
			return len(faces[i].Nodes) < len(faces[j].Nodes)
		}
		return earliestTouchedNode(faces[i].Nodes) < earliestTouchedNode(faces[j].Nodes)
	})
	return faces
}

func earliestTouchedNode(nodes []int) int {
	min := nodes[0]
	for _, n := range nodes[1:] {
		if n < min {
			min = n
		}
	}
	return min
}

// shortestCycleThrough finds the shortest cycle containing edge e by
// BFS from e.A to e.B over edges other than e itself, then closing the
// loop with e. Returns nil if e lies on no cycle (a bridge).
func shortestCycleThrough(g model.Graph, e model.Edge, usedEdges map[edgeKey]bool) []int {
	exclude := newEdgeKey(e.A, e.B)

	prev := make(map[int]int)
	visited := map[int]bool{e.A: true}
	queue := []int{e.A}
	found := false

	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.Neighbors(cur) {
			if newEdgeKey(cur, nb) == exclude {
				continue
			}
			if visited[nb] {
				continue
			}
			visited[nb] = true
			prev[nb] = cur
			if nb == e.B {
				found = true
				break
			}
			queue = append(queue, nb)
		}
	}

	if !found {
		return nil
	}

	var path []int
	for cur := e.B; ; {
		path = append([]int{cur}, path...)
		if cur == e.A {
			break
		}
		cur = prev[cur]
	}
	return path
}

// extendTrees walks the remaining edges breadth-first from every node
// already placed in a face, emitting a new chain whenever the frontier
// branches or hits opts.MaxTreeChainSize, then continues with any
// still-unvisited nodes (graphs with no faces at all).
func extendTrees(g model.Graph, opts Options, usedEdges map[edgeKey]bool, inChain []bool) []model.Chain {
	var chains []model.Chain
	visited := make([]bool, len(g.Nodes))
	for i, used := range inChain {
		visited[i] = used
	}

	roots := make([]int, 0)
	for i, used := range inChain {
		if used {
			roots = append(roots, i)
		}
	}
	if len(roots) == 0 && len(g.Nodes) > 0 {
		roots = append(roots, 0)
	}

	for _, root := range roots {
		chains = append(chains, bfsTreeChains(g, root, opts, usedEdges, visited)...)
	}

	// Any node still unvisited belongs to a disconnected-from-faces
	// component reachable only through edges already walked from a
	// different root; sweep remaining nodes in index order for determinism.
	for i := range g.Nodes {
		if !visited[i] {
			chains = append(chains, bfsTreeChains(g, i, opts, usedEdges, visited)...)
		}
	}

	return chains
}

func bfsTreeChains(g model.Graph, root int, opts Options, usedEdges map[edgeKey]bool, visited []bool) []model.Chain {
	var chains []model.Chain
	// Every tree chain starts with the already-visited node it hangs
	// from, so it shares that node with the chains emitted before it;
	// hasNew keeps a chain holding no newly visited node from being emitted.
	current := model.Chain{Nodes: []int{root}, IsFromFace: false}
	hasNew := !visited[root]
	visited[root] = true

	queue := []int{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		var fresh []int
		for _, nb := range g.Neighbors(cur) {
			key := newEdgeKey(cur, nb)
			if usedEdges[key] {
				continue
			}
			usedEdges[key] = true
			if visited[nb] {
				continue
			}
			visited[nb] = true
			fresh = append(fresh, nb)
		}

		branches := len(fresh) > 1
		for _, nb := range fresh {
			if branches || (opts.MaxTreeChainSize > 0 && len(current.Nodes) >= opts.MaxTreeChainSize) {
				if hasNew {
					chains = append(chains, current)
				}
				current = model.Chain{Nodes: []int{cur, nb}, IsFromFace: false}
			} else {
				current.Nodes = append(current.Nodes, nb)
			}
			hasNew = true
			queue = append(queue, nb)
		}
	}

	if hasNew {
		chains = append(chains, current)
	}
	return chains
}
