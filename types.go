package binsearch

// Unsigned is the set of key widths the search kernel is instantiated over.
// W=128 (Uint128) is handled separately: it has no has-next/has-prev or
// bit-subrange variants, so it does not share this constraint.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Range is a pair of inclusive record indices delimiting the current
// binary-search interval. During a search the invariant first <= last+1
// holds; first > last terminates the search. See the Find* functions for
// how it is mutated and returned.
type Range struct {
	First uint64
	Last  uint64
}

// BitSubrange names a contiguous, MSB-indexed bit field inside a decoded
// key: bit 0 is the most significant bit of the decoded width. BitStart and
// BitEnd are inclusive.
type BitSubrange struct {
	BitStart uint8
	BitEnd   uint8
}

// Uint128 is a 128-bit unsigned integer split into two 64-bit halves. Hi
// sits at the lower file address when decoded big-endian, and at the
// higher file address when decoded little-endian (see DecodeUint128BE /
// DecodeUint128LE). Ordering is lexicographic on (Hi, Lo), each treated as
// unsigned 64-bit.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// widthOf returns the byte width of T. Implemented as a type switch rather
// than unsafe.Sizeof so the block-layout decode path never needs to import
// "unsafe"; only the column fast path (decode_column.go) does, for its
// aligned-load shortcut.
func widthOf[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		panic("binsearch: unsupported key width")
	}
}
