package binsearch

// hasNextCore reports whether the record immediately after item (which
// must lie in [rng.First, rng.Last]) carries the same extracted key as
// item itself — the O(1) companion to findFirstCore/findLastCore used to
// walk a run of equal keys forward without re-running the search.
func hasNextCore[T Unsigned](addr func(uint64) uint64, decode func(uint64) T, extract func(T) T, rng Range, item uint64) bool {
	if item >= rng.Last {
		return false
	}
	v1 := extract(decode(addr(item)))
	v2 := extract(decode(addr(item + 1)))
	return v1 == v2
}

// hasPrevCore is hasNextCore's mirror: it looks at item-1 instead of
// item+1, guarded against underflow by the rng.First boundary check.
func hasPrevCore[T Unsigned](addr func(uint64) uint64, decode func(uint64) T, extract func(T) T, rng Range, item uint64) bool {
	if item <= rng.First {
		return false
	}
	v1 := extract(decode(addr(item)))
	v2 := extract(decode(addr(item - 1)))
	return v1 == v2
}

// --- block layout, no bit-subrange ---

// HasNextBE reports whether record item+1 shares item's big-endian key,
// i.e. whether item is not the last record of its equal-key run.
func HasNextBE[T Unsigned](mem []byte, blklen, blkpos uint64, rng Range, item uint64) bool {
	return hasNextCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeBE[T](mem, i) }, identity[T], rng, item)
}

// HasNextLE is HasNextBE over little-endian-encoded keys.
func HasNextLE[T Unsigned](mem []byte, blklen, blkpos uint64, rng Range, item uint64) bool {
	return hasNextCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeLE[T](mem, i) }, identity[T], rng, item)
}

// HasPrevBE reports whether record item-1 shares item's big-endian key.
func HasPrevBE[T Unsigned](mem []byte, blklen, blkpos uint64, rng Range, item uint64) bool {
	return hasPrevCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeBE[T](mem, i) }, identity[T], rng, item)
}

// HasPrevLE is HasPrevBE over little-endian-encoded keys.
func HasPrevLE[T Unsigned](mem []byte, blklen, blkpos uint64, rng Range, item uint64) bool {
	return hasPrevCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeLE[T](mem, i) }, identity[T], rng, item)
}

// --- block layout, bit-subrange ---

// HasNextSubBE is HasNextBE comparing only the sub bit-field.
func HasNextSubBE[T Unsigned](mem []byte, blklen, blkpos uint64, sub BitSubrange, rng Range, item uint64) bool {
	extract := func(v T) T { return extractBits(v, sub) }
	return hasNextCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeBE[T](mem, i) }, extract, rng, item)
}

// HasNextSubLE is HasNextSubBE over little-endian-encoded keys.
func HasNextSubLE[T Unsigned](mem []byte, blklen, blkpos uint64, sub BitSubrange, rng Range, item uint64) bool {
	extract := func(v T) T { return extractBits(v, sub) }
	return hasNextCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeLE[T](mem, i) }, extract, rng, item)
}

// HasPrevSubBE is HasPrevBE comparing only the sub bit-field.
func HasPrevSubBE[T Unsigned](mem []byte, blklen, blkpos uint64, sub BitSubrange, rng Range, item uint64) bool {
	extract := func(v T) T { return extractBits(v, sub) }
	return hasPrevCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeBE[T](mem, i) }, extract, rng, item)
}

// HasPrevSubLE is HasPrevSubBE over little-endian-encoded keys.
func HasPrevSubLE[T Unsigned](mem []byte, blklen, blkpos uint64, sub BitSubrange, rng Range, item uint64) bool {
	extract := func(v T) T { return extractBits(v, sub) }
	return hasPrevCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeLE[T](mem, i) }, extract, rng, item)
}

// --- column layout (little-endian only) ---

// HasNextColumnLE is HasNextLE specialised for a packed column, using the
// aligned decodeColumnLE fast path.
func HasNextColumnLE[T Unsigned](mem []byte, rng Range, item uint64) bool {
	width := uint64(widthOf[T]())
	return hasNextCore(columnAddr(width), func(i uint64) T { return decodeColumnLE[T](mem, i) }, identity[T], rng, item)
}

// HasPrevColumnLE is HasPrevLE specialised for a packed column.
func HasPrevColumnLE[T Unsigned](mem []byte, rng Range, item uint64) bool {
	width := uint64(widthOf[T]())
	return hasPrevCore(columnAddr(width), func(i uint64) T { return decodeColumnLE[T](mem, i) }, identity[T], rng, item)
}

// HasNextColumnSubLE is HasNextColumnLE comparing only the sub bit-field.
func HasNextColumnSubLE[T Unsigned](mem []byte, sub BitSubrange, rng Range, item uint64) bool {
	width := uint64(widthOf[T]())
	extract := func(v T) T { return extractBits(v, sub) }
	return hasNextCore(columnAddr(width), func(i uint64) T { return decodeColumnLE[T](mem, i) }, extract, rng, item)
}

// HasPrevColumnSubLE is HasPrevColumnLE comparing only the sub bit-field.
func HasPrevColumnSubLE[T Unsigned](mem []byte, sub BitSubrange, rng Range, item uint64) bool {
	width := uint64(widthOf[T]())
	extract := func(v T) T { return extractBits(v, sub) }
	return hasPrevCore(columnAddr(width), func(i uint64) T { return decodeColumnLE[T](mem, i) }, extract, rng, item)
}
