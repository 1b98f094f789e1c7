package bigint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuttengine/tuttengine/bigint"
)

func TestZeroValueIsUsableZero(t *testing.T) {
	var z bigint.Int
	require.True(t, z.IsZero())
	require.Equal(t, "0", z.String())
}

func TestArithmetic(t *testing.T) {
	a := bigint.FromInt64(7)
	b := bigint.FromInt64(3)
	require.Equal(t, "10", a.Add(b).String())
	require.Equal(t, "4", a.Sub(b).String())
	require.Equal(t, "21", a.Mul(b).String())
	require.Equal(t, "-7", a.Neg().String())
}

func TestEqual(t *testing.T) {
	a := bigint.FromInt64(42)
	b := bigint.FromInt64(42)
	c := bigint.FromInt64(43)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestOperationsDoNotMutateOperands(t *testing.T) {
	a := bigint.FromInt64(5)
	b := bigint.FromInt64(2)
	_ = a.Add(b)
	require.Equal(t, "5", a.String())
	require.Equal(t, "2", b.String())
}
