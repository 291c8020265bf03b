// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Westlund Embedded
// Source: github.com/westlund-embedded/bsdiff

package bsdiff

// matchlen returns the length of the longest common byte prefix of a and b,
// bounded by min(len(a), len(b)). Spec §4.3.
func matchlen(a, b []byte) int64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[i] {
			break
		}
	}

	return int64(i)
}

// search finds, among the suffixes indexed by sa.I[st:en+1], the one whose
// prefix best matches newSlice, using bisection by byte-wise lexicographic
// comparison. It returns the old-position of that suffix and the match
// length. This is not guaranteed to find the globally longest match — the
// bisection follows suffix-array (lexicographic) order, which can differ from
// match-length order — but it is sufficient for the greedy caller (spec
// §4.3).
func (sa *SuffixArray) search(newSlice []byte, st, en int64) (pos, length int64) {
	if en-st < 2 {
		xPos := sa.I[st]
		x := matchlen(sa.old[xPos:], newSlice)

		yPos := sa.I[en]
		y := matchlen(sa.old[yPos:], newSlice)

		if x > y {
			return xPos, x
		}
		return yPos, y
	}

	mid := st + (en-st)/2
	if lessPrefix(sa.old[sa.I[mid]:], newSlice) {
		return sa.search(newSlice, mid, en)
	}
	return sa.search(newSlice, st, mid)
}

// lessPrefix reports whether a compares less than b over their shared length
// (the C original's memcmp(old+I[x], new, min(oldsize-I[x], newsize)) < 0).
func lessPrefix(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
