package binsearch

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasNextPrevBE_WithinRun(t *testing.T) {
	mem := build100BE32(t)
	first, rng := FindFirstBE[uint32](mem, 20, 0, Range{First: 0, Last: 99}, 5)
	require.True(t, HasNextBE[uint32](mem, 20, 0, Range{First: 0, Last: 99}, first))
	require.False(t, HasPrevBE[uint32](mem, 20, 0, Range{First: 0, Last: 99}, first))

	last, _ := FindLastBE[uint32](mem, 20, 0, Range{First: 0, Last: 99}, 5)
	require.False(t, HasNextBE[uint32](mem, 20, 0, Range{First: 0, Last: 99}, last))
	require.True(t, HasPrevBE[uint32](mem, 20, 0, Range{First: 0, Last: 99}, last))
	_ = rng
}

func TestHasNextBE_AtRangeBoundary(t *testing.T) {
	mem := build100BE32(t)
	require.False(t, HasNextBE[uint32](mem, 20, 0, Range{First: 0, Last: 99}, 99), "last record in range has no next")
	require.False(t, HasPrevBE[uint32](mem, 20, 0, Range{First: 0, Last: 99}, 0), "first record in range has no prev")
}

func TestHasNextSubLE_ComparesOnlySub(t *testing.T) {
	buf := []byte{0x05, 0x15} // low nibble 5 on both
	sub := BitSubrange{BitStart: 4, BitEnd: 7}
	require.True(t, HasNextSubLE[uint8](buf, 1, 0, sub, Range{First: 0, Last: 1}, 0))
	require.True(t, HasPrevSubLE[uint8](buf, 1, 0, sub, Range{First: 0, Last: 1}, 1))
}

func TestHasNextColumnLE(t *testing.T) {
	vals := []uint16{1, 1, 3}
	buf := make([]byte, len(vals)*2)
	for i, v := range vals {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	require.True(t, HasNextColumnLE[uint16](buf, Range{First: 0, Last: 2}, 0))
	require.False(t, HasNextColumnLE[uint16](buf, Range{First: 0, Last: 2}, 1))
	require.True(t, HasPrevColumnLE[uint16](buf, Range{First: 0, Last: 2}, 1))
	require.False(t, HasPrevColumnLE[uint16](buf, Range{First: 0, Last: 2}, 0))
}
