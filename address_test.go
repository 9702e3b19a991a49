package binsearch

import "testing"

import "github.com/stretchr/testify/require"

func TestAddress(t *testing.T) {
	require.Equal(t, uint64(0), Address(20, 0, 0))
	require.Equal(t, uint64(20), Address(20, 0, 1))
	require.Equal(t, uint64(24), Address(20, 4, 1))
}

func TestColumnAddr(t *testing.T) {
	addr := columnAddr(4)
	require.Equal(t, uint64(0), addr(0))
	require.Equal(t, uint64(12), addr(3))
}
