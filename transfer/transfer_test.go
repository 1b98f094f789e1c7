package transfer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuttengine/tuttengine/bigint"
	"github.com/tuttengine/tuttengine/decomp"
	"github.com/tuttengine/tuttengine/graph"
	"github.com/tuttengine/tuttengine/transfer"
	"github.com/tuttengine/tuttengine/tutte"
)

func ops(q, v int64) tutte.Operators[bigint.Int] {
	return tutte.New(bigint.FromInt64(1), bigint.FromInt64(q), bigint.FromInt64(v))
}

// Transfer computes Z_G(Q,v) = Σ_{A⊆E} Q^{components(V,A)} v^{|A|}, the
// Fortuin-Kasteleyn representation the reference tool's transfer-matrix
// recursion evaluates (spec.md §3's defining sum).

func TestTransferSingleVertexEqualsQ(t *testing.T) {
	g := graph.New(1)
	root, err := decomp.NewFromOrder(g, []int{0})
	require.NoError(t, err)

	w := transfer.Transfer(ops(2, 3), root)
	require.True(t, w.Equal(bigint.FromInt64(2)))
}

func TestTransferSingleEdgeMatchesClosedForm(t *testing.T) {
	g := graph.NewFromPairs(2, [][2]int{{0, 1}})
	root, err := decomp.NewFromOrder(g, []int{0, 1})
	require.NoError(t, err)

	w := transfer.Transfer(ops(2, 3), root)
	// Q*(Q+v) = 2*(2+3) = 10.
	require.True(t, w.Equal(bigint.FromInt64(10)))
}

func TestTransferTriangleMatchesDirectEnumeration(t *testing.T) {
	g := graph.NewFromPairs(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	root, err := decomp.NewFromOrder(g, []int{0, 1, 2})
	require.NoError(t, err)

	w := transfer.Transfer(ops(2, 3), root)
	// Q^3 + 3Q^2v + 3Qv^2 + Qv^3 = 8 + 36 + 54 + 54 = 152.
	require.True(t, w.Equal(bigint.FromInt64(152)))
}

func TestTransferIsInvariantToEliminationOrder(t *testing.T) {
	g := graph.NewFromPairs(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}})

	rootA, err := decomp.NewFromOrder(g, []int{0, 1, 2, 3})
	require.NoError(t, err)
	rootB, err := decomp.NewFromOrder(g, []int{3, 2, 1, 0})
	require.NoError(t, err)

	wA := transfer.Transfer(ops(5, 7), rootA)
	wB := transfer.Transfer(ops(5, 7), rootB)
	require.True(t, wA.Equal(wB))
}
