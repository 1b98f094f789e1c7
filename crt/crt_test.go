package crt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuttengine/tuttengine/bigint"
	"github.com/tuttengine/tuttengine/bigpoly"
	"github.com/tuttengine/tuttengine/crt"
	"github.com/tuttengine/tuttengine/decomp"
	"github.com/tuttengine/tuttengine/graph"
	"github.com/tuttengine/tuttengine/transfer"
	"github.com/tuttengine/tuttengine/tutte"
)

func directTutte(root *decomp.Bag) bigpoly.Poly[bigint.Int] {
	one := bigint.FromInt64(1)
	op := tutte.New(bigpoly.FromConst(one), bigpoly.Q(one), bigpoly.V(one))
	return transfer.Transfer(op, root)
}

func TestComputeMatchesDirectBigIntegerPathForSingleEdge(t *testing.T) {
	g := graph.NewFromPairs(2, [][2]int{{0, 1}})
	root, err := decomp.NewFromOrder(g, []int{0, 1})
	require.NoError(t, err)

	direct := directTutte(root)
	result, err := crt.Compute(root, nil, nil)
	require.NoError(t, err)
	require.True(t, result.Equal(direct))
	// T(K2; Q, v) = Q^2 + Q*v, printed in ascending-i term order.
	require.Equal(t, "1*Q*v + 1*Q^2", result.String())
}

func TestComputeMatchesDirectBigIntegerPathForTriangle(t *testing.T) {
	g := graph.NewFromPairs(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	root, err := decomp.NewFromOrder(g, []int{0, 1, 2})
	require.NoError(t, err)

	direct := directTutte(root)
	result, err := crt.Compute(root, nil, nil)
	require.NoError(t, err)
	require.True(t, result.Equal(direct))
}

func TestComputeConvergesOnSecondIterationForSmallGraphs(t *testing.T) {
	g := graph.New(1)
	root, err := decomp.NewFromOrder(g, []int{0})
	require.NoError(t, err)

	var seen []uint64
	_, err = crt.Compute(root, nil, func(prime uint64, _ bigpoly.Poly[bigint.Int]) {
		seen = append(seen, prime)
	})
	require.NoError(t, err)
	// The first prime's result differs from the initial zero result, so
	// convergence is detected once the second prime reproduces it.
	require.Len(t, seen, 2)
	require.Equal(t, crt.Primes[0], seen[0])
}
