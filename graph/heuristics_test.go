package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allHeuristics() []Heuristic {
	return []Heuristic{GreedyDegree, GreedyFillIn, GreedyLocalDegree, GreedyLocalFillIn}
}

func TestHeuristicsProduceAPermutation(t *testing.T) {
	g := NewFromPairs(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}})
	want := []int{0, 1, 2, 3, 4}
	for _, h := range allHeuristics() {
		order := h(g)
		require.Equal(t, want, sortedCopy(order))
	}
}

func TestHeuristicsDoNotMutateInput(t *testing.T) {
	g := NewFromPairs(3, [][2]int{{0, 1}, {1, 2}})
	for _, h := range allHeuristics() {
		h(g)
		require.Equal(t, 3, g.NumAlive())
		require.False(t, g.HasEdge(0, 2))
	}
}

func TestHeuristicsDeterministic(t *testing.T) {
	g := NewFromPairs(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 3}})
	for _, h := range allHeuristics() {
		first := h(g)
		second := h(g)
		require.Equal(t, first, second)
	}
}

func TestGreedyDegreePicksLowestTieBreak(t *testing.T) {
	// Three isolated vertices (degree 0) tie; lowest index wins first.
	g := New(3)
	order := GreedyDegree(g)
	require.Equal(t, []int{0, 1, 2}, order)
}
