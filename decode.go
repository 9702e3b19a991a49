package binsearch

// decodeBE reads the width(T)-byte big-endian unsigned integer at byte
// offset i in mem: the byte at the lowest address is the most significant.
// No alignment is required; multi-byte values are assembled byte-wise, the
// same fallback the original C bytes_to_uintN_t functions use
// unconditionally.
func decodeBE[T Unsigned](mem []byte, i uint64) T {
	width := widthOf[T]()
	var v T
	for k := 0; k < width; k++ {
		v = v<<8 | T(mem[int(i)+k])
	}
	return v
}

// decodeLE reads the width(T)-byte little-endian unsigned integer at byte
// offset i in mem: the byte at the lowest address is the least
// significant.
func decodeLE[T Unsigned](mem []byte, i uint64) T {
	width := widthOf[T]()
	var v T
	for k := width - 1; k >= 0; k-- {
		v = v<<8 | T(mem[int(i)+k])
	}
	return v
}

// DecodeUint128BE decodes a 16-byte big-endian value at offset i: Hi is the
// 8 bytes at the lower address, Lo the 8 bytes at the higher address.
func DecodeUint128BE(mem []byte, i uint64) Uint128 {
	return Uint128{
		Hi: decodeBE[uint64](mem, i),
		Lo: decodeBE[uint64](mem, i+8),
	}
}

// DecodeUint128LE decodes a 16-byte little-endian value at offset i: Hi is
// the 8 bytes at the higher address, Lo the 8 bytes at the lower address —
// the mirror image of DecodeUint128BE, consistent with how decodeLE mirrors
// decodeBE for every other width.
func DecodeUint128LE(mem []byte, i uint64) Uint128 {
	return Uint128{
		Hi: decodeLE[uint64](mem, i+8),
		Lo: decodeLE[uint64](mem, i),
	}
}
