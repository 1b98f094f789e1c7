package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuttengine/tuttengine/graph"
)

func triangle() *graph.Graph {
	return graph.NewFromPairs(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
}

func TestNewFromPairsPreservesParallelEdgesAndSelfLoops(t *testing.T) {
	g := graph.NewFromPairs(2, [][2]int{{0, 1}, {0, 1}, {0, 0}})
	require.Equal(t, 3, len(g.EdgesAt(0)))
	require.True(t, g.HasEdge(0, 1))
}

func TestDegreeCountsParallelEdges(t *testing.T) {
	g := graph.NewFromPairs(2, [][2]int{{0, 1}, {0, 1}})
	require.Equal(t, 2, g.Degree(0))
	require.Equal(t, 2, g.Degree(1))
}

func TestEliminateVertexFillsInNeighbors(t *testing.T) {
	g := graph.NewFromPairs(3, [][2]int{{0, 1}, {1, 2}})
	require.False(t, g.HasEdge(0, 2))
	filled := g.EliminateVertex(1)
	require.Len(t, filled, 1)
	require.True(t, g.HasEdge(0, 2))
	require.False(t, g.Alive(1))
}

func TestCloneIsIndependent(t *testing.T) {
	g := triangle()
	clone := g.Clone()
	clone.EliminateVertex(0)
	require.True(t, g.Alive(0))
	require.False(t, clone.Alive(0))
}

func TestIsConnected(t *testing.T) {
	require.True(t, triangle().IsConnected())

	disconnected := graph.NewFromPairs(4, [][2]int{{0, 1}, {2, 3}})
	require.False(t, disconnected.IsConnected())
}

func TestIsConnectedTrivialForSingleVertex(t *testing.T) {
	require.True(t, graph.New(1).IsConnected())
}

func TestNumEdgesCountsEachEdgeOnce(t *testing.T) {
	require.Equal(t, 3, triangle().NumEdges())

	g := graph.NewFromPairs(2, [][2]int{{0, 1}, {0, 1}, {0, 0}})
	require.Equal(t, 3, g.NumEdges())
}
