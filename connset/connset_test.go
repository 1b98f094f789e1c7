package connset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuttengine/tuttengine/connset"
)

func TestNewIsAllSingletons(t *testing.T) {
	s := connset.New(4)
	require.Equal(t, 4, s.Len())
	for i := 0; i < 4; i++ {
		require.True(t, s.Singleton(i))
	}
}

func TestConnectMergesComponents(t *testing.T) {
	s := connset.New(3)
	s.Connect(0, 1)
	require.True(t, s.Connected(0, 1))
	require.False(t, s.Connected(0, 2))
	require.False(t, s.Singleton(0))
	require.False(t, s.Singleton(1))
	require.True(t, s.Singleton(2))
}

func TestConnectIsTransitiveThroughSharedLabel(t *testing.T) {
	s := connset.New(3)
	s.Connect(0, 1)
	s.Connect(1, 2)
	require.True(t, s.Connected(0, 2))
}

func TestCanonicalizeAssignsFirstAppearanceOrder(t *testing.T) {
	s := connset.New(4)
	s.Connect(0, 3) // labels become [1,2,3,1] before canonicalization
	s.Canonicalize()
	require.Equal(t, byte(1), s.Label(0))
	require.Equal(t, byte(2), s.Label(1))
	require.Equal(t, byte(3), s.Label(2))
	require.Equal(t, byte(1), s.Label(3))
}

func TestEqualRequiresCanonicalForm(t *testing.T) {
	a := connset.New(2)
	b := connset.New(2)
	a.Connect(0, 1)
	b.Connect(1, 0)
	a.Canonicalize()
	b.Canonicalize()
	require.True(t, a.Equal(b))
}

func TestDeleteNodeShrinksAndShifts(t *testing.T) {
	s := connset.New(3)
	s.DeleteNode(1)
	require.Equal(t, 2, s.Len())
	require.Equal(t, byte(1), s.Label(0))
	require.Equal(t, byte(3), s.Label(1))
}

func TestDetachPreventsFutureConnection(t *testing.T) {
	s := connset.New(2)
	s.Detach(0)
	require.False(t, s.Connected(0, 1))
}

func TestDecomposeReplaysEarlierRepeats(t *testing.T) {
	s := connset.New(4)
	s.Connect(0, 2)
	s.Connect(1, 3)
	s.Canonicalize()

	var pairs [][2]int
	s.Decompose(func(p, i int) { pairs = append(pairs, [2]int{p, i}) })
	require.Equal(t, [][2]int{{0, 2}, {1, 3}}, pairs)
}

func TestHashIsStableAcrossClones(t *testing.T) {
	s := connset.New(3)
	s.Connect(0, 1)
	s.Canonicalize()
	clone := s.Clone()
	require.Equal(t, s.Hash(), clone.Hash())
	require.Equal(t, s.Key(), clone.Key())
}
