package binsearch

// findFirstCore is the first of the two binary-search template kernels
// (find-first / find-last; has-next / has-prev live in neighbor.go). It is
// parameterised by how to turn a record index into a byte offset (addr),
// how to decode the key at that offset (decode), and how to narrow a
// decoded key down to the bits under comparison (extract) — every public
// find-first variant in this package is addr/decode/extract bound
// differently over this one loop.
//
// The control flow mirrors the original C find_first_T macro exactly,
// including the early return when a match lands on record 0 without
// updating the output range, and the early return via the recorded
// "found" candidate when a decrement below zero would otherwise underflow.
func findFirstCore[T Unsigned](addr func(uint64) uint64, decode func(uint64) T, extract func(T) T, rng Range, search T) (uint64, Range) {
	first, last := rng.First, rng.Last
	found := last + 1
	search = extract(search)
	for first <= last {
		mid := (first + last) >> 1
		x := extract(decode(addr(mid)))
		switch {
		case x == search:
			if mid == 0 {
				return mid, Range{First: first, Last: last}
			}
			found = mid
			last = mid - 1
		case compare(x, search) < 0:
			first = mid + 1
		default:
			if mid > 0 {
				last = mid - 1
			} else {
				return found, Range{First: first, Last: last}
			}
		}
	}
	return found, Range{First: first, Last: last}
}

// findLastCore is find-first's mirror image: on a match it keeps searching
// to the right instead of the left, and — because advancing first = mid+1
// can never underflow — has no mid==0 special case on a match. The
// greater-than branch keeps the same mid==0 underflow guard as find-first.
func findLastCore[T Unsigned](addr func(uint64) uint64, decode func(uint64) T, extract func(T) T, rng Range, search T) (uint64, Range) {
	first, last := rng.First, rng.Last
	found := last + 1
	search = extract(search)
	for first <= last {
		mid := (first + last) >> 1
		x := extract(decode(addr(mid)))
		switch {
		case x == search:
			found = mid
			first = mid + 1
		case compare(x, search) < 0:
			first = mid + 1
		default:
			if mid > 0 {
				last = mid - 1
			} else {
				return found, Range{First: first, Last: last}
			}
		}
	}
	return found, Range{First: first, Last: last}
}

// --- block layout, no bit-subrange ---

// FindFirstBE returns the smallest record index in rng whose big-endian
// key at byte offset Address(blklen, blkpos, index) equals search, or
// rng.Last+1 if none match. The updated Range reports the lower-bound
// insertion point in First and the position before the match (or before
// the last strictly-greater candidate) in Last — see spec.md §4.5.
func FindFirstBE[T Unsigned](mem []byte, blklen, blkpos uint64, rng Range, search T) (uint64, Range) {
	return findFirstCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeBE[T](mem, i) }, identity[T], rng, search)
}

// FindFirstLE is FindFirstBE over little-endian-encoded keys.
func FindFirstLE[T Unsigned](mem []byte, blklen, blkpos uint64, rng Range, search T) (uint64, Range) {
	return findFirstCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeLE[T](mem, i) }, identity[T], rng, search)
}

// FindLastBE returns the largest record index in rng whose big-endian key
// equals search, or rng.Last+1 if none match.
func FindLastBE[T Unsigned](mem []byte, blklen, blkpos uint64, rng Range, search T) (uint64, Range) {
	return findLastCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeBE[T](mem, i) }, identity[T], rng, search)
}

// FindLastLE is FindLastBE over little-endian-encoded keys.
func FindLastLE[T Unsigned](mem []byte, blklen, blkpos uint64, rng Range, search T) (uint64, Range) {
	return findLastCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeLE[T](mem, i) }, identity[T], rng, search)
}

// --- block layout, bit-subrange ---

// FindFirstSubBE is FindFirstBE restricted to the bit-field sub: both the
// stored key and search are masked down to sub before comparison. The file
// must be sorted by the extracted sub-value, a stricter precondition than
// raw-key sort (spec.md §4.5's "Ordering assumption").
func FindFirstSubBE[T Unsigned](mem []byte, blklen, blkpos uint64, sub BitSubrange, rng Range, search T) (uint64, Range) {
	extract := func(v T) T { return extractBits(v, sub) }
	return findFirstCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeBE[T](mem, i) }, extract, rng, search)
}

// FindFirstSubLE is FindFirstSubBE over little-endian-encoded keys.
func FindFirstSubLE[T Unsigned](mem []byte, blklen, blkpos uint64, sub BitSubrange, rng Range, search T) (uint64, Range) {
	extract := func(v T) T { return extractBits(v, sub) }
	return findFirstCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeLE[T](mem, i) }, extract, rng, search)
}

// FindLastSubBE is FindLastBE restricted to the bit-field sub.
func FindLastSubBE[T Unsigned](mem []byte, blklen, blkpos uint64, sub BitSubrange, rng Range, search T) (uint64, Range) {
	extract := func(v T) T { return extractBits(v, sub) }
	return findLastCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeBE[T](mem, i) }, extract, rng, search)
}

// FindLastSubLE is FindLastSubBE over little-endian-encoded keys.
func FindLastSubLE[T Unsigned](mem []byte, blklen, blkpos uint64, sub BitSubrange, rng Range, search T) (uint64, Range) {
	extract := func(v T) T { return extractBits(v, sub) }
	return findLastCore(blockAddr(blklen, blkpos), func(i uint64) T { return decodeLE[T](mem, i) }, extract, rng, search)
}

// --- column layout (little-endian only, per spec.md §6) ---

// FindFirstColumnLE is FindFirstLE specialised for a packed column: blklen
// is taken to be width(T) and blkpos 0, and the aligned decodeColumnLE
// fast path is used in place of the general byte-wise decoder. The column
// must be naturally aligned; mappedfile.ConfigureColumns enforces this by
// rejecting any column whose offset is not a multiple of its width.
func FindFirstColumnLE[T Unsigned](mem []byte, rng Range, search T) (uint64, Range) {
	width := uint64(widthOf[T]())
	return findFirstCore(columnAddr(width), func(i uint64) T { return decodeColumnLE[T](mem, i) }, identity[T], rng, search)
}

// FindLastColumnLE is FindLastLE specialised for a packed column.
func FindLastColumnLE[T Unsigned](mem []byte, rng Range, search T) (uint64, Range) {
	width := uint64(widthOf[T]())
	return findLastCore(columnAddr(width), func(i uint64) T { return decodeColumnLE[T](mem, i) }, identity[T], rng, search)
}

// FindFirstColumnSubLE is FindFirstColumnLE restricted to the bit-field sub.
func FindFirstColumnSubLE[T Unsigned](mem []byte, sub BitSubrange, rng Range, search T) (uint64, Range) {
	width := uint64(widthOf[T]())
	extract := func(v T) T { return extractBits(v, sub) }
	return findFirstCore(columnAddr(width), func(i uint64) T { return decodeColumnLE[T](mem, i) }, extract, rng, search)
}

// FindLastColumnSubLE is FindLastColumnLE restricted to the bit-field sub.
func FindLastColumnSubLE[T Unsigned](mem []byte, sub BitSubrange, rng Range, search T) (uint64, Range) {
	width := uint64(widthOf[T]())
	extract := func(v T) T { return extractBits(v, sub) }
	return findLastCore(columnAddr(width), func(i uint64) T { return decodeColumnLE[T](mem, i) }, extract, rng, search)
}

// --- Uint128, find-first/find-last only (spec.md: "and, where noted, 128") ---

// FindFirstUint128BE is FindFirstBE for 16-byte big-endian keys, compared
// lexicographically via compareUint128.
func FindFirstUint128BE(mem []byte, blklen, blkpos uint64, rng Range, search Uint128) (uint64, Range) {
	return findFirstCoreUint128(blockAddr(blklen, blkpos), func(i uint64) Uint128 { return DecodeUint128BE(mem, i) }, rng, search)
}

// FindFirstUint128LE is FindFirstUint128BE over little-endian-encoded keys.
func FindFirstUint128LE(mem []byte, blklen, blkpos uint64, rng Range, search Uint128) (uint64, Range) {
	return findFirstCoreUint128(blockAddr(blklen, blkpos), func(i uint64) Uint128 { return DecodeUint128LE(mem, i) }, rng, search)
}

// FindLastUint128BE is FindLastBE for 16-byte big-endian keys.
func FindLastUint128BE(mem []byte, blklen, blkpos uint64, rng Range, search Uint128) (uint64, Range) {
	return findLastCoreUint128(blockAddr(blklen, blkpos), func(i uint64) Uint128 { return DecodeUint128BE(mem, i) }, rng, search)
}

// FindLastUint128LE is FindLastUint128BE over little-endian-encoded keys.
func FindLastUint128LE(mem []byte, blklen, blkpos uint64, rng Range, search Uint128) (uint64, Range) {
	return findLastCoreUint128(blockAddr(blklen, blkpos), func(i uint64) Uint128 { return DecodeUint128LE(mem, i) }, rng, search)
}

// findFirstCoreUint128 and findLastCoreUint128 duplicate the Unsigned
// kernels above with compareUint128 in place of the generic compare — a
// second, non-generic instantiation, since Uint128 is a struct and cannot
// satisfy the Unsigned constraint.
func findFirstCoreUint128(addr func(uint64) uint64, decode func(uint64) Uint128, rng Range, search Uint128) (uint64, Range) {
	first, last := rng.First, rng.Last
	found := last + 1
	for first <= last {
		mid := (first + last) >> 1
		x := decode(addr(mid))
		cmp := compareUint128(x, search)
		switch {
		case cmp == 0:
			if mid == 0 {
				return mid, Range{First: first, Last: last}
			}
			found = mid
			last = mid - 1
		case cmp < 0:
			first = mid + 1
		default:
			if mid > 0 {
				last = mid - 1
			} else {
				return found, Range{First: first, Last: last}
			}
		}
	}
	return found, Range{First: first, Last: last}
}

func findLastCoreUint128(addr func(uint64) uint64, decode func(uint64) Uint128, rng Range, search Uint128) (uint64, Range) {
	first, last := rng.First, rng.Last
	found := last + 1
	for first <= last {
		mid := (first + last) >> 1
		x := decode(addr(mid))
		cmp := compareUint128(x, search)
		switch {
		case cmp == 0:
			found = mid
			first = mid + 1
		case cmp < 0:
			first = mid + 1
		default:
			if mid > 0 {
				last = mid - 1
			} else {
				return found, Range{First: first, Last: last}
			}
		}
	}
	return found, Range{First: first, Last: last}
}
