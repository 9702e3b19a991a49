package binsearch

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBE_LE_RoundTrip(t *testing.T) {
	be := make([]byte, 4)
	binary.BigEndian.PutUint32(be, 0xdeadbeef)
	require.Equal(t, uint32(0xdeadbeef), decodeBE[uint32](be, 0))

	le := make([]byte, 4)
	binary.LittleEndian.PutUint32(le, 0xdeadbeef)
	require.Equal(t, uint32(0xdeadbeef), decodeLE[uint32](le, 0))
}

func TestDecodeColumnLE_MatchesGeneralDecoder(t *testing.T) {
	le := make([]byte, 8)
	binary.LittleEndian.PutUint64(le, 0x0102030405060708)
	require.Equal(t, decodeLE[uint64](le, 0), decodeColumnLE[uint64](le, 0))
}

func TestDecodeUint128_HiLoByteOrder(t *testing.T) {
	be := make([]byte, 16)
	binary.BigEndian.PutUint64(be[0:], 1)
	binary.BigEndian.PutUint64(be[8:], 2)
	require.Equal(t, Uint128{Hi: 1, Lo: 2}, DecodeUint128BE(be, 0))

	le := make([]byte, 16)
	binary.LittleEndian.PutUint64(le[0:], 2)
	binary.LittleEndian.PutUint64(le[8:], 1)
	require.Equal(t, Uint128{Hi: 1, Lo: 2}, DecodeUint128LE(le, 0))
}
