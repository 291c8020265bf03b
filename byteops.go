// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Westlund Embedded
// Source: github.com/westlund-embedded/bsdiff

package bsdiff

// Byte-wise modular arithmetic used by the differ (emitting diff bytes) and the
// patcher (reconstituting new bytes from old+diff). Both must use wrapping 8-bit
// arithmetic; Go's byte subtraction/addition already wraps on overflow, but the
// wrapping is spelled out here as named helpers so the call sites read as
// intentional rather than incidental.

// diffByte returns newByte - oldByte mod 256, the byte the differ writes into
// the diff stream for a matched position.
func diffByte(newByte, oldByte byte) byte {
	return newByte - oldByte
}

// patchByte returns oldByte + diffByte mod 256, the byte the patcher writes
// into new for a matched position. oldByte is 0 for positions at or beyond
// oldsize (spec §4.6 step 3: "out-of-range old positions contribute 0").
func patchByte(oldByte, diff byte) byte {
	return oldByte + diff
}
