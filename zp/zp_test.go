package zp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuttengine/tuttengine/zp"
)

const testPrime = uint64(4294967291) // largest prime in crt's table

func TestFromInt64Sign(t *testing.T) {
	a := zp.FromInt64(-1, testPrime)
	require.Equal(t, testPrime-1, a.Uint64())

	b := zp.FromInt64(5, testPrime)
	require.Equal(t, uint64(5), b.Uint64())

	zero := zp.FromInt64(0, testPrime)
	require.Zero(t, zero.Uint64())
}

func TestAddWrapsAroundModulus(t *testing.T) {
	a := zp.FromInt64(int64(testPrime-1), testPrime)
	one := zp.FromInt64(1, testPrime)
	sum := a.Add(one)
	require.Zero(t, sum.Uint64(), "p-1 + 1 should wrap to 0")
}

func TestSubUnderflowsAcrossModulus(t *testing.T) {
	zero := zp.FromInt64(0, testPrime)
	one := zp.FromInt64(1, testPrime)
	diff := zero.Sub(one)
	require.Equal(t, testPrime-1, diff.Uint64(), "0 - 1 should wrap to p-1")
}

func TestMulAgreesWithBigArithmeticSmallCase(t *testing.T) {
	a := zp.FromInt64(6, testPrime)
	b := zp.FromInt64(7, testPrime)
	prod := a.Mul(b)
	require.Equal(t, uint64(42), prod.Uint64())
}

func TestMulNearModulusBoundary(t *testing.T) {
	a := zp.FromInt64(int64(testPrime-1), testPrime)
	b := zp.FromInt64(int64(testPrime-1), testPrime)
	prod := a.Mul(b)
	// (p-1)*(p-1) mod p == 1
	require.Equal(t, uint64(1), prod.Uint64())
}

func TestNegOfZeroIsZero(t *testing.T) {
	zero := zp.FromInt64(0, testPrime)
	neg := zero.Neg()
	require.Zero(t, neg.Uint64())
}

func TestIsZeroAndEqual(t *testing.T) {
	zero := zp.FromInt64(0, testPrime)
	nonzero := zp.FromInt64(3, testPrime)
	require.True(t, zero.IsZero())
	require.False(t, nonzero.IsZero())
	require.True(t, zero.Equal(zero))
	require.False(t, zero.Equal(nonzero))
}

func TestZeroValueDefersModulusToOtherOperand(t *testing.T) {
	var zeroCtxFree zp.Element // never constructed via New/FromInt64
	one := zp.FromInt64(1, testPrime)
	sum := zeroCtxFree.Add(one)
	require.Equal(t, uint64(1), sum.Uint64())
	require.Equal(t, testPrime, sum.Modulus())
}

func TestMismatchedModuliPanics(t *testing.T) {
	a := zp.FromInt64(1, testPrime)
	b := zp.FromInt64(1, 97)
	require.Panics(t, func() { a.Add(b) })
}
