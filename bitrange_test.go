package binsearch

import "testing"

import "github.com/stretchr/testify/require"

func TestExtractBits_MSBIndexed(t *testing.T) {
	// 0b1011_0010: bits 0..3 (high nibble) = 1011 = 0xB, bits 4..7 (low
	// nibble) = 0010 = 0x2.
	v := uint8(0xB2)
	require.Equal(t, uint8(0xB), extractBits(v, BitSubrange{BitStart: 0, BitEnd: 3}))
	require.Equal(t, uint8(0x2), extractBits(v, BitSubrange{BitStart: 4, BitEnd: 7}))
	require.Equal(t, v, extractBits(v, BitSubrange{BitStart: 0, BitEnd: 7}))
}

func TestIdentity(t *testing.T) {
	require.Equal(t, uint32(42), identity(uint32(42)))
}
