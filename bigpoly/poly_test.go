package bigpoly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuttengine/tuttengine/bigint"
	"github.com/tuttengine/tuttengine/bigpoly"
)

func one() bigint.Int { return bigint.FromInt64(1) }

func TestQAndVAreDistinctMonomials(t *testing.T) {
	q := bigpoly.Q(one())
	v := bigpoly.V(one())
	require.False(t, q.Equal(v))
	require.Equal(t, "1*Q", q.String())
	require.Equal(t, "1*v", v.String())
}

func TestAddCombinesLikeTerms(t *testing.T) {
	q := bigpoly.Q(one())
	sum := q.Add(q)
	require.Equal(t, "2*Q", sum.String())
}

func TestSubToZeroLeavesEmptyPolynomial(t *testing.T) {
	q := bigpoly.Q(one())
	diff := q.Sub(q)
	require.True(t, diff.IsZero())
	require.Equal(t, "0", diff.String())
}

func TestMulDistributesOverAdd(t *testing.T) {
	q := bigpoly.Q(one())
	v := bigpoly.V(one())
	qPlusV := q.Add(v)
	lhs := qPlusV.Mul(qPlusV)
	rhs := q.Mul(q).Add(q.Mul(v)).Add(v.Mul(q)).Add(v.Mul(v))
	require.True(t, lhs.Equal(rhs))
}

func TestNegIsAdditiveInverse(t *testing.T) {
	q := bigpoly.Q(one())
	require.True(t, q.Add(q.Neg()).IsZero())
}

func TestAddScalarTouchesOnlyConstantTerm(t *testing.T) {
	q := bigpoly.Q(one())
	withConst := q.AddScalar(bigint.FromInt64(5))
	require.Equal(t, "5 + 1*Q", withConst.String())
}

func TestMulScalarByZeroYieldsZero(t *testing.T) {
	q := bigpoly.Q(one())
	require.True(t, q.MulScalar(bigint.FromInt64(0)).IsZero())
}

func TestFromConstZeroIsZeroPolynomial(t *testing.T) {
	p := bigpoly.FromConst(bigint.FromInt64(0))
	require.True(t, p.IsZero())
}

func TestMapCoeffsConvertsRing(t *testing.T) {
	q := bigpoly.Q(bigint.FromInt64(1)).AddScalar(bigint.FromInt64(-1))
	lifted := bigpoly.MapCoeffs(q, func(c bigint.Int) bigint.Int {
		// identity conversion exercising the generic signature; a real
		// caller (crt) converts bigint.Int <-> zp.Element instead.
		return c
	})
	require.True(t, q.Equal(lifted))
}
