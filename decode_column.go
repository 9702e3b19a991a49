package binsearch

import "unsafe"

// decodeColumnLE reads the width(T)-byte little-endian unsigned integer at
// byte offset i in mem via a direct aligned typed load, instead of the
// byte-wise assembly in decodeLE. This is the "layout specialisation" fast
// path spec names for the column-oriented case: it is only correct when
// mem[i] is naturally aligned for T, which is why
// (*mappedfile.MappedFile).ConfigureColumns rejects any column whose
// computed offset is not a multiple of its own width (see layout.go in
// package mappedfile).
//
// It also assumes a little-endian host (amd64, arm64 — every platform this
// module targets), matching the table in spec.md §6 where the
// column-oriented layout is parenthesised "(LE)" only. Reusing decodeLE
// here would be equally correct but would not exercise the aligned-load
// shortcut the spec calls out; the byte-wise decoder remains available and
// is what mem's block-layout callers use.
func decodeColumnLE[T Unsigned](mem []byte, i uint64) T {
	return *(*T)(unsafe.Pointer(&mem[i]))
}
