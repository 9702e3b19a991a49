package binsearch

// Address returns the first byte position of record item in a block layout
// where blklen is the byte stride between adjacent records and blkpos is
// the byte offset of the key within one record.
//
// Address(blklen, blkpos, i) - Address(blklen, blkpos, j) == blklen*(i-j)
// for any i, j, blklen, blkpos — the kernel relies on this to walk forward
// and backward by a constant stride.
func Address(blklen, blkpos, item uint64) uint64 {
	return blklen*item + blkpos
}

// blockAddr closes over a fixed (blklen, blkpos) pair for the binary-search
// kernel, which only ever needs to map a record index to a byte offset.
func blockAddr(blklen, blkpos uint64) func(uint64) uint64 {
	return func(item uint64) uint64 {
		return Address(blklen, blkpos, item)
	}
}

// columnAddr is the column-layout specialisation of blockAddr: blklen is
// the column's own width and blkpos is zero, so it reduces to a direct
// indexed load. Kept as a named function (rather than inlining
// blockAddr(width, 0)) so the column fast-path decoders in decode_column.go
// can assume naturally aligned access per spec.
func columnAddr(width uint64) func(uint64) uint64 {
	return func(item uint64) uint64 {
		return width * item
	}
}
