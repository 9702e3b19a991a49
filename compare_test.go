package binsearch

import "testing"

import "github.com/stretchr/testify/require"

func TestCompare(t *testing.T) {
	require.Equal(t, -1, compare(uint32(1), uint32(2)))
	require.Equal(t, 1, compare(uint32(2), uint32(1)))
	require.Equal(t, 0, compare(uint32(2), uint32(2)))
}

func TestCompareUint128(t *testing.T) {
	require.Equal(t, -1, compareUint128(Uint128{Hi: 0, Lo: 5}, Uint128{Hi: 1, Lo: 0}))
	require.Equal(t, 1, compareUint128(Uint128{Hi: 1, Lo: 0}, Uint128{Hi: 0, Lo: 5}))
	require.Equal(t, 0, compareUint128(Uint128{Hi: 1, Lo: 5}, Uint128{Hi: 1, Lo: 5}))
}
