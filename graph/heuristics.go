// Vertex-elimination-order heuristics, grounded on
// original_source/include/tree_decomposition/heuristics.hpp's four
// boost::graph-based orderings, adapted to this package's index-based
// multigraph. Every heuristic runs against a Clone of its input so the
// caller's Graph is never mutated (spec.md §4.E: "all four operate on a
// copy of the graph").
package graph

import "sort"

// Heuristic produces a full vertex elimination order (a permutation of
// 0..N-1) for g, without mutating g.
type Heuristic func(g *Graph) []int

// GreedyDegree repeatedly eliminates the alive vertex of minimum degree,
// breaking ties by the lowest vertex index (spec.md §4.E: "whichever
// element min_element encounters first in vertex-iteration order", which
// for this package's increasing-index iteration is simply the lowest id).
func GreedyDegree(g *Graph) []int {
	work := g.Clone()
	order := make([]int, 0, work.N())
	for work.NumAlive() > 0 {
		v := minAliveBy(work, work.Degree)
		order = append(order, v)
		work.EliminateVertex(v)
	}
	return order
}

// GreedyFillIn repeatedly eliminates the alive vertex minimizing
// fillInCost.
//
// fillInCost counts, for each ordered pair (u,z) of v's distinct
// neighbors, whether u and z are already adjacent — the literal behavior
// of the reference tool's num_non_adjacent_neighbors, which (despite its
// name) counts adjacent pairs, not non-adjacent ones. SPEC_FULL.md §3.6
// resolves this in favor of bit-for-bit parity with the reference rather
// than "fixing" the name's implied minimum-fill-in semantics; a caller
// relying on the name alone would be misled, so this is documented here
// and in DESIGN.md.
func GreedyFillIn(g *Graph) []int {
	work := g.Clone()
	order := make([]int, 0, work.N())
	for work.NumAlive() > 0 {
		v := minAliveBy(work, fillInCost(work))
		order = append(order, v)
		work.EliminateVertex(v)
	}
	return order
}

// GreedyLocalDegree starts at the global minimum-degree vertex, then at
// each step advances to the minimum-degree vertex among the *current*
// vertex's neighbors (computed before eliminating it), rather than
// re-scanning the whole graph. Falls back to a global rescan only when
// the current vertex has no remaining neighbors (possible only for the
// last vertex, per spec.md §4.E).
func GreedyLocalDegree(g *Graph) []int {
	return localGreedyOrder(g, func(work *Graph) func(int) int { return work.Degree })
}

// GreedyLocalFillIn is GreedyLocalDegree's analogue using fillInCost as
// the comparator, matching SPEC_FULL.md §3.6's resolution of the
// "local-degree: all remaining vertices, or current's neighbors?" open
// question in favor of the neighbors variant (matching the name "local").
func GreedyLocalFillIn(g *Graph) []int {
	return localGreedyOrder(g, fillInCost)
}

// localGreedyOrder implements the "start at the global minimum, then walk
// to the minimum among the current vertex's neighbors" pattern shared by
// GreedyLocalDegree and GreedyLocalFillIn, parameterized over which
// per-vertex cost function (recomputed against the live working graph on
// every call, since eliminations change degrees/fill-in costs) drives the
// comparator.
func localGreedyOrder(g *Graph, costFor func(*Graph) func(int) int) []int {
	work := g.Clone()
	cost := costFor(work)
	order := make([]int, 0, work.N())
	current := minAliveBy(work, cost)
	for work.NumAlive() > 0 {
		order = append(order, current)
		next := -1
		for _, u := range work.NeighborSet(current) {
			if next == -1 || cost(u) < cost(next) {
				next = u
			}
		}
		work.EliminateVertex(current)
		if next != -1 {
			current = next
		} else if work.NumAlive() > 0 {
			current = minAliveBy(work, cost)
		}
	}
	return order
}

// minAliveBy returns the alive vertex of lowest cost, preferring the
// lowest index on ties.
func minAliveBy(g *Graph, cost func(v int) int) int {
	best := -1
	for v := 0; v < g.N(); v++ {
		if !g.Alive(v) {
			continue
		}
		if best == -1 || cost(v) < cost(best) {
			best = v
		}
	}
	return best
}

// fillInCost returns, for a given graph snapshot, a function computing
// the literal-reference-behavior fill-in cost of a vertex (see
// GreedyFillIn's doc comment for the adjacent-vs-non-adjacent caveat).
func fillInCost(g *Graph) func(v int) int {
	return func(v int) int {
		neighbors := g.NeighborSet(v)
		n := 0
		for _, u := range neighbors {
			for _, z := range neighbors {
				if u != z && g.HasEdge(u, z) {
					n++
				}
			}
		}
		return n
	}
}

// sortedCopy returns a sorted copy of vs; used only by tests to compare
// orders irrespective of heuristic tie-break ordering where no tie-break
// is actually specified (e.g. asserting an order is a permutation).
func sortedCopy(vs []int) []int {
	out := make([]int, len(vs))
	copy(out, vs)
	sort.Ints(out)
	return out
}
