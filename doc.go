// Package binsearch searches big-endian or little-endian unsigned integers
// inside a memory-mapped region made of adjacent, constant-length binary
// blocks (or a packed column) sorted in ascending order.
//
// For example, the first 4 bytes of each 8-byte block below represent a
// uint32 in big-endian, sorted in ascending order:
//
//	2f 81 f5 77 1a cc 7b 43
//	2f 81 f5 78 76 5f 63 b8
//	2f 81 f5 79 ca a9 a6 52
//
// This package ports the search kernel of the tecnickcom/binsearch C
// library: find-first and find-last locate the boundary of an equal-key
// run in O(log N); has-next and has-prev then walk that run in O(1)
// amortized per step. Every entry point is a pure function over a caller-
// supplied byte slice — there is no write path, no sort, and no locking.
// Package mappedfile supplies that byte slice by memory-mapping a file and
// locating its columns.
package binsearch
